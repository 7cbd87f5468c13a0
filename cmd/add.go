package cmd

import (
	"context"
	"flag"

	"github.com/etnz/spending"
	"github.com/etnz/spending/date"
	"github.com/google/subcommands"
)

type addCmd struct {
	date     string
	category string
	cost     int64
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a daily expense" }
func (*addCmd) Usage() string {
	return `spend add [-d <date>] -c <category> -a <cost>

  Records a daily expense at the top of the daily table.
  The category is stored in upper case. The cost is a whole number of lei.

Usage Examples:
# Records a grocery bill for today.
$ spend add -c groceries -a 120

`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Date of the expense (YYYY-MM-DD)")
	f.StringVar(&c.category, "c", "", "Category of the expense")
	f.Int64Var(&c.cost, "a", 0, "Cost of the expense, strictly positive")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return update(f, func(l *spending.Ledger) bool {
		return l.AddDaily(c.date, c.category, c.cost)
	})
}

type addRecurringCmd struct {
	category string
	item     string
	due      string
	amount   string
}

func (*addRecurringCmd) Name() string     { return "add-recurring" }
func (*addRecurringCmd) Synopsis() string { return "record a yearly recurring expense" }
func (*addRecurringCmd) Usage() string {
	return `spend add-recurring -c <category> -i <item> -due <due> -a <amount>

  Appends an unpaid recurring expense to the yearly table.
  All flags are required. Category and item are stored in upper case.

Usage Examples:
$ spend add-recurring -c car -i insurance -due "March 1" -a 1200

`
}

func (c *addRecurringCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "c", "", "Category of the expense")
	f.StringVar(&c.item, "i", "", "Item paid for")
	f.StringVar(&c.due, "due", "", "When the expense is due, free text")
	f.StringVar(&c.amount, "a", "", "Amount, free text")
}

func (c *addRecurringCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return update(f, func(l *spending.Ledger) bool {
		return l.AddRecurring(c.category, c.item, c.due, c.amount)
	})
}
