package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/spending"
	"github.com/google/subcommands"
)

type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "evaluate a JSONPath expression on the ledger" }
func (*queryCmd) Usage() string {
	return `spend query <jsonpath>

  Evaluates a JSONPath expression on the JSON form of the ledger and prints
  the result as JSON. Without expression, prints the whole ledger.

  The ledger is an object with two arrays:
  "daily" of {date, category, cost} and
  "recurring" of {category, item, due, amount, paid}.

Usage Examples:
$ spend query '$.daily[?(@.category=="FOOD")].cost'
$ spend query '$.recurring[?(@.paid=="")].item'

`
}

func (*queryCmd) SetFlags(f *flag.FlagSet) {}

func (*queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 1 {
		fmt.Fprintf(os.Stderr, "Error: expected at most one JSONPath expression\n")
		return subcommands.ExitUsageError
	}
	e, _, err := openEditor()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	if f.NArg() == 0 {
		if err := spending.EncodeJSON(stdout, e.Ledger()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	v, err := spending.Query(e.Ledger(), f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
