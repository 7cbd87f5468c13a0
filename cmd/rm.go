package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/spending"
	"github.com/google/subcommands"
)

type rmCmd struct{}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete a daily expense" }
func (*rmCmd) Usage() string {
	return `spend rm <index>

  Deletes the daily expense at <index>, as listed by 'spend show'.
`
}

func (*rmCmd) SetFlags(f *flag.FlagSet) {}

func (*rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	i, err := argIndex(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	return update(f, func(l *spending.Ledger) bool { return l.DeleteDaily(i) })
}

type rmRecurringCmd struct{}

func (*rmRecurringCmd) Name() string     { return "rm-recurring" }
func (*rmRecurringCmd) Synopsis() string { return "delete a recurring expense" }
func (*rmRecurringCmd) Usage() string {
	return `spend rm-recurring <index>

  Deletes the recurring expense at <index>, as listed by 'spend show'.
`
}

func (*rmRecurringCmd) SetFlags(f *flag.FlagSet) {}

func (*rmRecurringCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	i, err := argIndex(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	return update(f, func(l *spending.Ledger) bool { return l.DeleteRecurring(i) })
}
