package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/etnz/spending/logger"
	"go.uber.org/zap"
)

const (
	EnvLedgerFile = "SPEND_LEDGER_FILE"
	EnvCurrency   = "SPEND_CURRENCY"
	EnvVerbose    = "SPEND_VERBOSE"
)

// RunExtension attempts to find and execute an external spend-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
//
// The effective settings are passed to the extension as environment variables.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := "spend-" + subcommand

	lp, err := exec.LookPath(name)
	if err != nil {
		logger.Debug("extension not found", zap.String("name", name), zap.Error(err))
		return false, 0
	}

	s, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return true, 1
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(),
		EnvLedgerFile+"="+s.ledgerFile,
		EnvCurrency+"="+s.currency,
		EnvVerbose+"="+strconv.FormatBool(*Verbose),
	)

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return true, exitErr.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", name, err)
		return true, 1
	}
	return true, 0
}
