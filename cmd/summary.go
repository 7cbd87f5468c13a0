package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/spending"
	"github.com/etnz/spending/date"
	"github.com/etnz/spending/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct {
	date   string
	period string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "totals per category over a period" }
func (*summaryCmd) Usage() string {
	return `spend summary [-d <date>] [-p <period>]

  Displays the daily expenses totals per category over the period
  (day, week, month, quarter, year) containing <date>, and the status of
  recurring expenses.

Usage Examples:
# Current month.
$ spend summary
# Whole year 2024.
$ spend summary -d 2024-06-01 -p year

`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "A date in the period (YYYY-MM-DD)")
	f.StringVar(&c.period, "p", "month", "Period: day, week, month, quarter or year")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid date: %v\n", err)
		return subcommands.ExitUsageError
	}
	p, err := date.ParsePeriod(c.period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	e, s, err := openEditor()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	sum := spending.NewSummary(e.Ledger(), p.Range(on))
	printMarkdown(renderer.SummaryMarkdown(sum, s.currency))
	return subcommands.ExitSuccess
}
