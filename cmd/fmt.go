package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/spending"
	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "rewrites the spending document into its canonical form"
}
func (*fmtCmd) Usage() string {
	return `spend fmt

  Reads the spending document and writes it back in its canonical form:
  aligned tables, rows that cannot be read are dropped.

Usage Examples:
$ spend fmt

`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (*fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	status := update(f, func(*spending.Ledger) bool { return true })
	if status == subcommands.ExitSuccess {
		fmt.Fprintf(os.Stderr, "✅ Successfully formatted the spending document.\n")
	}
	return status
}
