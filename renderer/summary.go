package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/spending"
	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
)

// SummaryMarkdown renders a spending summary.
func SummaryMarkdown(s *spending.Summary, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Spending Summary for %s", s.Range.Name()))
	doc.PlainText(fmt.Sprintf("Total: %s in %d expenses, %s %s per day on average.",
		spending.FormatCost(s.Total, currency), s.Count, s.AveragePerDay.StringFixed(2), currency))

	if len(s.Categories) > 0 {
		doc.H2("By Category")
		table := md.TableSet{Header: []string{"Category", "Count", "Total", "Share"}}
		for _, ct := range s.Categories {
			table.Rows = append(table.Rows, []string{
				ct.Category,
				strconv.Itoa(ct.Count),
				spending.FormatCost(ct.Total, currency),
				share(ct.Total, s.Total),
			})
		}
		doc.Table(table)
	}

	doc.H2("Yearly Recurring Expenses")
	doc.PlainText(fmt.Sprintf("%d paid, %d still to pay.", len(s.Paid), len(s.Unpaid)))
	if len(s.Unpaid) > 0 {
		table := md.TableSet{Header: []string{"Category", "Item", "Due", "Amount"}}
		for _, r := range s.Unpaid {
			table.Rows = append(table.Rows, []string{r.Category, r.Item, r.Due, r.Amount})
		}
		doc.Table(table)
	}
	return doc.String()
}

// share returns part as a percentage of total.
func share(part, total int64) string {
	if total == 0 {
		return "-"
	}
	return decimal.NewFromInt(part).Shift(2).Div(decimal.NewFromInt(total)).StringFixed(1) + "%"
}
