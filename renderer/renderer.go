// Package renderer turns spending data into Markdown reports meant to be read,
// as opposed to the ledger document itself which is meant to be edited.
package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/spending"
	md "github.com/nao1215/markdown"
)

// LedgerMarkdown renders the ledger as the editor shows it: rows are numbered
// with the index commands expect, and costs are grouped for reading.
func LedgerMarkdown(l *spending.Ledger, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Spending")

	doc.H2("Daily Expenses")
	daily := md.TableSet{Header: []string{"#", "Date", "Category", "Cost"}}
	for i, r := range l.Daily {
		daily.Rows = append(daily.Rows, []string{
			strconv.Itoa(i), r.Date, r.Category, spending.FormatCost(r.Cost, currency),
		})
	}
	doc.Table(daily)

	doc.H2("Yearly Recurring Expenses")
	recurring := md.TableSet{Header: []string{"#", "Category", "Item", "Due", "Amount", "Paid"}}
	for i, r := range l.Recurring {
		recurring.Rows = append(recurring.Rows, []string{
			strconv.Itoa(i), r.Category, r.Item, r.Due, r.Amount, paidLabel(r),
		})
	}
	doc.Table(recurring)

	return doc.String()
}

func paidLabel(r spending.Recurring) string {
	if !r.IsPaid() {
		return "-"
	}
	return fmt.Sprintf("✅ %s", r.Paid)
}
