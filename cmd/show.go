package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/spending/renderer"
	"github.com/google/subcommands"
)

type showCmd struct {
	raw bool
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display the spending document" }
func (*showCmd) Usage() string {
	return `spend show [-raw]

  Displays the daily and recurring expenses with their row index.
  Use -raw to print the canonical document instead.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.raw, "raw", false, "Print the canonical Markdown document")
}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e, s, err := openEditor()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	l := e.Ledger()
	if c.raw {
		fmt.Fprint(stdout, l.String())
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.LedgerMarkdown(l, s.currency))
	return subcommands.ExitSuccess
}

type categoriesCmd struct{}

func (*categoriesCmd) Name() string     { return "categories" }
func (*categoriesCmd) Synopsis() string { return "list the daily expense categories" }
func (*categoriesCmd) Usage() string {
	return `spend categories

  Lists the distinct categories used by daily expenses, one per line.
`
}

func (*categoriesCmd) SetFlags(f *flag.FlagSet) {}

func (*categoriesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e, _, err := openEditor()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	for _, c := range e.Ledger().Categories() {
		fmt.Fprintln(stdout, c)
	}
	return subcommands.ExitSuccess
}
