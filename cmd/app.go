// Package cmd implements the spend command line application.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/spending"
	"github.com/etnz/spending/config"
	"github.com/etnz/spending/logger"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// group is a set of commands listed together in the help.
type group struct {
	name     string
	commands []subcommands.Command
}

var groups = []group{
	{"ledger", []subcommands.Command{
		&addCmd{}, &addRecurringCmd{},
		&rmCmd{}, &rmRecurringCmd{},
		&paidCmd{}, &unpaidCmd{},
		&fmtCmd{},
	}},
	{"reports", []subcommands.Command{
		&showCmd{}, &categoriesCmd{}, &summaryCmd{}, &queryCmd{}, &htmlCmd{},
	}},
	{"documentation", []subcommands.Command{&topicCmd{}}},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, g := range groups {
		for _, cmd := range g.commands {
			c.Register(cmd, g.name)
		}
	}
}

// Has reports whether name is a builtin command.
func Has(name string) bool {
	for _, g := range groups {
		for _, cmd := range g.commands {
			if cmd.Name() == name {
				return true
			}
		}
	}
	return false
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

const defaultLedgerFile = "spending.md"

var (
	ledgerFile = flag.String("ledger-file", "", "Path to the spending document (default "+defaultLedgerFile+")")
	configFile = flag.String("config", ".spend.yaml", "Path to the optional YAML configuration file, overridden by flags and environment variables")
	plain      = flag.Bool("plain", false, "Print Markdown as is, without terminal rendering")
	Verbose    = flag.Bool("v", false, "Print diagnostics on stderr")
)

// stdout is where commands print their result.
var stdout io.Writer = os.Stdout

// settings are the effective application settings.
type settings struct {
	ledgerFile string
	currency   string
}

// loadSettings resolves the settings: flags first, then the environment,
// then the configuration file.
func loadSettings() (settings, error) {
	s := settings{ledgerFile: defaultLedgerFile, currency: spending.DefaultCurrency}

	cfg, err := config.Load(*configFile)
	if err != nil {
		return s, err
	}
	if cfg.LedgerFile != "" {
		s.ledgerFile = cfg.LedgerFile
	}
	if cfg.Currency != "" {
		s.currency = cfg.Currency
	}

	if v := os.Getenv(EnvLedgerFile); v != "" {
		s.ledgerFile = v
	}
	if v := os.Getenv(EnvCurrency); v != "" {
		s.currency = v
	}

	if *ledgerFile != "" {
		s.ledgerFile = *ledgerFile
	}
	logger.Debug("settings", zap.String("ledger-file", s.ledgerFile), zap.String("currency", s.currency))
	return s, nil
}

// openEditor opens the ledger file.
func openEditor() (*spending.Editor, settings, error) {
	s, err := loadSettings()
	if err != nil {
		return nil, s, err
	}
	e, err := spending.Open(spending.File(s.ledgerFile))
	if err != nil {
		return nil, s, err
	}
	l := e.Ledger()
	logger.Debug("ledger loaded",
		zap.String("file", s.ledgerFile),
		zap.Int("daily", len(l.Daily)),
		zap.Int("recurring", len(l.Recurring)))
	return e, s, nil
}

// update applies a mutation to the ledger file. A rejected mutation is a
// usage error.
func update(f *flag.FlagSet, mutate func(*spending.Ledger) bool) subcommands.ExitStatus {
	e, s, err := openEditor()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	changed, err := e.Update(mutate)
	if err != nil {
		logger.Error("save failed", zap.String("file", s.ledgerFile), zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if !changed {
		f.Usage()
		return subcommands.ExitUsageError
	}
	logger.Info("ledger saved", zap.String("file", s.ledgerFile))
	return subcommands.ExitSuccess
}

// argIndex reads the row index given as first argument.
func argIndex(f *flag.FlagSet) (int, error) {
	if f.NArg() != 1 {
		return 0, errors.New("expected exactly one row index")
	}
	i, err := strconv.Atoi(f.Arg(0))
	if err != nil {
		return 0, fmt.Errorf("invalid row index %q: %w", f.Arg(0), err)
	}
	return i, nil
}

// printMarkdown renders md for the terminal.
func printMarkdown(md string) {
	if *plain {
		fmt.Fprint(stdout, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Fprint(stdout, out)
			return
		}
	}
	logger.Debug("markdown rendering failed", zap.Error(err))
	fmt.Fprint(stdout, md)
}
