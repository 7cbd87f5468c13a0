package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/spending"
	"github.com/google/subcommands"
)

type htmlCmd struct {
	output string
}

func (*htmlCmd) Name() string     { return "html" }
func (*htmlCmd) Synopsis() string { return "export the spending document as HTML" }
func (*htmlCmd) Usage() string {
	return `spend html [-o <file>]

  Renders the canonical spending document to HTML, on the standard output
  or into <file>.
`
}

func (c *htmlCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file, standard output by default")
}

func (c *htmlCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e, _, err := openEditor()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	var w io.Writer = stdout
	if c.output != "" {
		out, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		defer out.Close()
		w = out
	}
	if err := spending.RenderHTML(w, e.Ledger().String()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not render HTML: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
