package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/spending"
	"github.com/etnz/spending/date"
	"github.com/google/subcommands"
)

type paidCmd struct {
	date string
}

func (*paidCmd) Name() string     { return "paid" }
func (*paidCmd) Synopsis() string { return "mark a recurring expense as paid" }
func (*paidCmd) Usage() string {
	return `spend paid [-d <date>] <index>

  Marks the recurring expense at <index> as paid on <date>, today by default.
`
}

func (c *paidCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Payment date (YYYY-MM-DD)")
}

func (c *paidCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid date: %v\n", err)
		return subcommands.ExitUsageError
	}
	i, err := argIndex(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	return update(f, func(l *spending.Ledger) bool { return l.MarkPaid(i, on) })
}

type unpaidCmd struct{}

func (*unpaidCmd) Name() string     { return "unpaid" }
func (*unpaidCmd) Synopsis() string { return "mark a recurring expense as not paid" }
func (*unpaidCmd) Usage() string {
	return `spend unpaid <index>

  Clears the payment date of the recurring expense at <index>.
`
}

func (*unpaidCmd) SetFlags(f *flag.FlagSet) {}

func (*unpaidCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	i, err := argIndex(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	return update(f, func(l *spending.Ledger) bool { return l.MarkUnpaid(i) })
}
