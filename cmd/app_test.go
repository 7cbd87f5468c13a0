package cmd

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/spending"
	"github.com/google/go-cmp/cmp"
	"github.com/google/subcommands"
)

// setup points the global flags to a ledger file in a temporary directory,
// with content if not empty, and captures the commands output.
func setup(t *testing.T, content string) (string, *bytes.Buffer) {
	t.Helper()
	dir := t.TempDir()
	file := filepath.Join(dir, "spending.md")
	if content != "" {
		if err := os.WriteFile(file, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write ledger file: %v", err)
		}
	}
	noConfig := filepath.Join(dir, "missing.yaml")
	yes := true
	out := &bytes.Buffer{}

	oldLedgerFile, oldConfigFile, oldPlain, oldStdout := ledgerFile, configFile, plain, stdout
	ledgerFile, configFile, plain, stdout = &file, &noConfig, &yes, out
	t.Cleanup(func() {
		ledgerFile, configFile, plain, stdout = oldLedgerFile, oldConfigFile, oldPlain, oldStdout
	})
	return file, out
}

// run parses args as the command flags and executes it.
func run(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("Failed to parse %q: %v", args, err)
	}
	return c.Execute(context.Background(), f)
}

func readLedger(t *testing.T, file string) *spending.Ledger {
	t.Helper()
	content, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("Failed to read ledger file: %v", err)
	}
	return spending.Decode(string(content))
}

func testLedger() *spending.Ledger {
	return &spending.Ledger{
		Daily: []spending.Daily{
			{Date: "2025-01-20", Category: "GROCERIES", Cost: 1500},
			{Date: "2025-01-05", Category: "COFFEE", Cost: 25},
		},
		Recurring: []spending.Recurring{
			{Category: "HOME", Item: "INSURANCE", Due: "June", Amount: "500 lei"},
			{Category: "CAR", Item: "TAX", Due: "March", Amount: "200 lei", Paid: "2025-01-10"},
		},
	}
}

func TestSettings(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "spend.yaml")
	if err := os.WriteFile(cfgFile, []byte("ledger-file: from-config.md\ncurrency: EUR\n"), 0644); err != nil {
		t.Fatal(err)
	}
	empty, missing := "", filepath.Join(dir, "missing.yaml")
	oldLedgerFile, oldConfigFile := ledgerFile, configFile
	t.Cleanup(func() { ledgerFile, configFile = oldLedgerFile, oldConfigFile })

	t.Setenv(EnvLedgerFile, "")
	t.Setenv(EnvCurrency, "")

	tests := []struct {
		name         string
		env          string
		envCurrency  string
		config       string
		flag         string
		wantFile     string
		wantCurrency string
	}{
		{name: "default", config: missing, wantFile: "spending.md", wantCurrency: spending.DefaultCurrency},
		{name: "config", config: cfgFile, wantFile: "from-config.md", wantCurrency: "EUR"},
		{name: "env", env: "from-env.md", config: missing, wantFile: "from-env.md", wantCurrency: spending.DefaultCurrency},
		{name: "env over config", env: "from-env.md", envCurrency: "USD", config: cfgFile, wantFile: "from-env.md", wantCurrency: "USD"},
		{name: "flag over env", env: "from-env.md", config: cfgFile, flag: "from-flag.md", wantFile: "from-flag.md", wantCurrency: "EUR"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(EnvLedgerFile, tc.env)
			t.Setenv(EnvCurrency, tc.envCurrency)
			flagValue, config := tc.flag, tc.config
			ledgerFile, configFile = &flagValue, &config
			if flagValue == "" {
				ledgerFile = &empty
			}

			s, err := loadSettings()
			if err != nil {
				t.Fatalf("loadSettings() error: %v", err)
			}
			if s.ledgerFile != tc.wantFile {
				t.Errorf("ledger file = %q, want %q", s.ledgerFile, tc.wantFile)
			}
			if s.currency != tc.wantCurrency {
				t.Errorf("currency = %q, want %q", s.currency, tc.wantCurrency)
			}
		})
	}
}

func TestSettingsInvalidConfig(t *testing.T) {
	setup(t, "")
	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("ledger-file: [unclosed\n"), 0644); err != nil {
		t.Fatal(err)
	}
	configFile = &bad

	if status := run(t, &showCmd{}); status != subcommands.ExitFailure {
		t.Errorf("show with an invalid config = %v, want ExitFailure", status)
	}
}

func TestHas(t *testing.T) {
	for _, name := range []string{"add", "rm-recurring", "summary", "topic"} {
		if !Has(name) {
			t.Errorf("Has(%q) = false, want true", name)
		}
	}
	if Has("hello") {
		t.Errorf("Has(%q) = true, want false", "hello")
	}
}

func TestAdd(t *testing.T) {
	file, _ := setup(t, "")

	if status := run(t, &addCmd{}, "-d", "2025-01-02", "-c", "food", "-a", "12"); status != subcommands.ExitSuccess {
		t.Fatalf("add = %v, want ExitSuccess", status)
	}
	if status := run(t, &addCmd{}, "-d", "2025-01-03", "-c", " coffee ", "-a", "3"); status != subcommands.ExitSuccess {
		t.Fatalf("add = %v, want ExitSuccess", status)
	}

	want := []spending.Daily{
		{Date: "2025-01-03", Category: "COFFEE", Cost: 3},
		{Date: "2025-01-02", Category: "FOOD", Cost: 12},
	}
	if diff := cmp.Diff(want, readLedger(t, file).Daily); diff != "" {
		t.Errorf("daily records mismatch (-want +got):\n%s", diff)
	}
}

func TestAddRejected(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "zero cost", args: []string{"-d", "2025-01-02", "-c", "food", "-a", "0"}},
		{name: "negative cost", args: []string{"-d", "2025-01-02", "-c", "food", "-a", "-5"}},
		{name: "blank category", args: []string{"-d", "2025-01-02", "-c", "  ", "-a", "5"}},
		{name: "invalid date", args: []string{"-d", "yesterday", "-c", "food", "-a", "5"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			file, _ := setup(t, "")
			if status := run(t, &addCmd{}, tc.args...); status != subcommands.ExitUsageError {
				t.Errorf("add %q = %v, want ExitUsageError", tc.args, status)
			}
			if _, err := os.Stat(file); !os.IsNotExist(err) {
				t.Errorf("ledger file was written by a rejected add")
			}
		})
	}
}

func TestAddRecurring(t *testing.T) {
	file, _ := setup(t, testLedger().String())

	status := run(t, &addRecurringCmd{}, "-c", "phone", "-i", "plan", "-due", "monthly", "-a", "30 lei")
	if status != subcommands.ExitSuccess {
		t.Fatalf("add-recurring = %v, want ExitSuccess", status)
	}
	got := readLedger(t, file).Recurring
	want := spending.Recurring{Category: "PHONE", Item: "PLAN", Due: "monthly", Amount: "30 lei"}
	if len(got) != 3 || got[2] != want {
		t.Errorf("recurring records = %v, want %v appended", got, want)
	}

	if status := run(t, &addRecurringCmd{}, "-c", "phone"); status != subcommands.ExitUsageError {
		t.Errorf("add-recurring with missing fields = %v, want ExitUsageError", status)
	}
}

func TestRm(t *testing.T) {
	file, _ := setup(t, testLedger().String())

	if status := run(t, &rmCmd{}, "0"); status != subcommands.ExitSuccess {
		t.Fatalf("rm 0 = %v, want ExitSuccess", status)
	}
	if status := run(t, &rmRecurringCmd{}, "1"); status != subcommands.ExitSuccess {
		t.Fatalf("rm-recurring 1 = %v, want ExitSuccess", status)
	}

	l := readLedger(t, file)
	wantDaily := testLedger().Daily[1:]
	if diff := cmp.Diff(wantDaily, l.Daily); diff != "" {
		t.Errorf("daily records mismatch (-want +got):\n%s", diff)
	}
	wantRecurring := testLedger().Recurring[:1]
	if diff := cmp.Diff(wantRecurring, l.Recurring); diff != "" {
		t.Errorf("recurring records mismatch (-want +got):\n%s", diff)
	}

	for _, args := range [][]string{{"5"}, {"--", "-1"}, {"abc"}, {}} {
		if status := run(t, &rmCmd{}, args...); status != subcommands.ExitUsageError {
			t.Errorf("rm %q = %v, want ExitUsageError", args, status)
		}
	}
}

func TestPaidUnpaid(t *testing.T) {
	file, _ := setup(t, testLedger().String())

	if status := run(t, &paidCmd{}, "-d", "2025-02-03", "0"); status != subcommands.ExitSuccess {
		t.Fatalf("paid = %v, want ExitSuccess", status)
	}
	if got := readLedger(t, file).Recurring[0].Paid; got != "2025-02-03" {
		t.Errorf("paid = %q, want %q", got, "2025-02-03")
	}

	if status := run(t, &unpaidCmd{}, "0"); status != subcommands.ExitSuccess {
		t.Fatalf("unpaid = %v, want ExitSuccess", status)
	}
	if got := readLedger(t, file).Recurring[0].Paid; got != "" {
		t.Errorf("paid = %q, want empty", got)
	}

	if status := run(t, &paidCmd{}, "-d", "someday", "0"); status != subcommands.ExitUsageError {
		t.Errorf("paid with invalid date = %v, want ExitUsageError", status)
	}
	if status := run(t, &unpaidCmd{}, "9"); status != subcommands.ExitUsageError {
		t.Errorf("unpaid out of range = %v, want ExitUsageError", status)
	}
}

func TestFmt(t *testing.T) {
	messy := `# Spending

## Daily Expenses

|Date|Category|Cost (lei)|
|-|-|-|
|2025-01-02|food|12|
| not a row |
---
## Yearly Recurring Expenses
|Category|Item|Due|Amount|Paid|
|--|--|--|--|--|
|HOME|RENT|monthly|900 lei|-|
`
	file, _ := setup(t, messy)

	if status := run(t, &fmtCmd{}); status != subcommands.ExitSuccess {
		t.Fatalf("fmt = %v, want ExitSuccess", status)
	}
	got, err := os.ReadFile(file)
	if err != nil {
		t.Fatal(err)
	}
	want := spending.Decode(messy).String()
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Errorf("formatted document mismatch (-want +got):\n%s", diff)
	}
}

func TestShow(t *testing.T) {
	l := testLedger()
	_, out := setup(t, l.String())

	if status := run(t, &showCmd{}, "-raw"); status != subcommands.ExitSuccess {
		t.Fatalf("show -raw = %v, want ExitSuccess", status)
	}
	if diff := cmp.Diff(l.String(), out.String()); diff != "" {
		t.Errorf("show -raw mismatch (-want +got):\n%s", diff)
	}

	out.Reset()
	if status := run(t, &showCmd{}); status != subcommands.ExitSuccess {
		t.Fatalf("show = %v, want ExitSuccess", status)
	}
	for _, want := range []string{"GROCERIES", "1.500 lei", "✅ 2025-01-10"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("show output does not contain %q:\n%s", want, out)
		}
	}
}

func TestCategories(t *testing.T) {
	_, out := setup(t, testLedger().String())

	if status := run(t, &categoriesCmd{}); status != subcommands.ExitSuccess {
		t.Fatalf("categories = %v, want ExitSuccess", status)
	}
	if got, want := out.String(), "COFFEE\nGROCERIES\n"; got != want {
		t.Errorf("categories = %q, want %q", got, want)
	}
}

func TestSummary(t *testing.T) {
	_, out := setup(t, testLedger().String())

	if status := run(t, &summaryCmd{}, "-d", "2025-01-15", "-p", "month"); status != subcommands.ExitSuccess {
		t.Fatalf("summary = %v, want ExitSuccess", status)
	}
	for _, want := range []string{"January 2025", "GROCERIES", "COFFEE", "1 paid, 1 still to pay."} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("summary output does not contain %q:\n%s", want, out)
		}
	}

	if status := run(t, &summaryCmd{}, "-p", "decade"); status != subcommands.ExitUsageError {
		t.Errorf("summary with unknown period = %v, want ExitUsageError", status)
	}
}

func TestQuery(t *testing.T) {
	_, out := setup(t, testLedger().String())

	if status := run(t, &queryCmd{}, "$.daily[*].cost"); status != subcommands.ExitSuccess {
		t.Fatalf("query = %v, want ExitSuccess", status)
	}
	if got, want := out.String(), "[\n  1500,\n  25\n]\n"; got != want {
		t.Errorf("query = %q, want %q", got, want)
	}

	if status := run(t, &queryCmd{}, "$.nope"); status != subcommands.ExitFailure {
		t.Errorf("query on unknown key = %v, want ExitFailure", status)
	}
}

func TestHTML(t *testing.T) {
	_, out := setup(t, testLedger().String())
	output := filepath.Join(t.TempDir(), "spending.html")

	if status := run(t, &htmlCmd{}, "-o", output); status != subcommands.ExitSuccess {
		t.Fatalf("html = %v, want ExitSuccess", status)
	}
	if out.Len() != 0 {
		t.Errorf("html -o wrote on stdout: %q", out)
	}
	got, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"<h1>Spending</h1>", "<table>", "<td>GROCERIES</td>"} {
		if !strings.Contains(string(got), want) {
			t.Errorf("html output does not contain %q:\n%s", want, got)
		}
	}
}

func TestTopic(t *testing.T) {
	_, out := setup(t, "")

	if status := run(t, &topicCmd{}); status != subcommands.ExitSuccess {
		t.Fatalf("topic = %v, want ExitSuccess", status)
	}
	if !strings.Contains(out.String(), "# spend") {
		t.Errorf("topic output does not contain the readme:\n%s", out)
	}

	if status := run(t, &topicCmd{}, "nope"); status != subcommands.ExitFailure {
		t.Errorf("topic nope = %v, want ExitFailure", status)
	}
}

func TestCompletion(t *testing.T) {
	c := Completion()
	add, ok := c.Sub["add"]
	if !ok {
		t.Fatalf("no completion for the add command")
	}
	for _, name := range []string{"d", "c", "a"} {
		if _, ok := add.Flags[name]; !ok {
			t.Errorf("no completion for add -%s", name)
		}
	}
	if _, ok := c.Flags["ledger-file"]; !ok {
		t.Errorf("no completion for -ledger-file")
	}
	if c.Sub["topic"].Args == nil {
		t.Errorf("no completion for topic arguments")
	}
}
