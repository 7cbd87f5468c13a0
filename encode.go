package spending

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	title          = "# Spending"
	dailyTitle     = "## Daily Expenses"
	recurringTitle = "## Yearly Recurring Expenses"
	sectionRule    = "---"
)

// column describes one table column. Its width is the largest of the floor
// and the widest cell, unless it is fixed.
type column struct {
	header string
	floor  int
	fixed  bool
}

var (
	dailyColumns = []column{
		{header: "Date", floor: len(date10), fixed: true},
		{header: "Category", floor: 8},
		{header: "Cost (lei)", floor: 10},
	}
	recurringColumns = []column{
		{header: "Category", floor: 8},
		{header: "Item", floor: 4},
		{header: "Due", floor: 3},
		{header: "Amount", floor: 6},
		{header: "Paid", floor: 4},
	}
)

// date10 is the shape of a date cell.
const date10 = "YYYY-MM-DD"

// Serialize renders the records as a spending document.
//
// The output only depends on the records: tables are always written, even
// when empty, and the column widths are recomputed on every call.
func Serialize(daily []Daily, recurring []Recurring) string {
	var b strings.Builder
	b.WriteString(title + "\n\n" + dailyTitle + "\n\n")

	rows := make([][]string, 0, len(daily))
	for _, r := range daily {
		rows = append(rows, []string{r.Date, r.Category, strconv.FormatInt(r.Cost, 10)})
	}
	writeTable(&b, dailyColumns, rows)

	b.WriteString("\n" + sectionRule + "\n\n" + recurringTitle + "\n\n")

	rows = make([][]string, 0, len(recurring))
	for _, r := range recurring {
		rows = append(rows, []string{r.Category, r.Item, r.Due, r.Amount, r.paidCell()})
	}
	writeTable(&b, recurringColumns, rows)

	return b.String()
}

// writeTable writes the header, the rule and the rows of a table, every cell
// padded to its column width.
func writeTable(b *strings.Builder, columns []column, rows [][]string) {
	widths := columnWidths(columns, rows)

	cells := make([]string, len(columns))
	for i, c := range columns {
		cells[i] = c.header
	}
	writeRow(b, widths, cells)

	for i, w := range widths {
		cells[i] = strings.Repeat("-", w)
	}
	writeRow(b, widths, cells)

	for _, row := range rows {
		writeRow(b, widths, row)
	}
}

// columnWidths computes the canonical width of each column.
func columnWidths(columns []column, rows [][]string) []int {
	widths := make([]int, len(columns))
	for i, c := range columns {
		widths[i] = c.floor
		if c.fixed {
			continue
		}
		for _, row := range rows {
			widths[i] = max(widths[i], runewidth.StringWidth(row[i]))
		}
	}
	return widths
}

func writeRow(b *strings.Builder, widths []int, cells []string) {
	b.WriteString("|")
	for i, cell := range cells {
		b.WriteString(" ")
		b.WriteString(pad(cell, widths[i]))
		b.WriteString(" |")
	}
	b.WriteString("\n")
}

// pad right-pads s with spaces up to width. It never truncates.
func pad(s string, width int) string {
	if n := width - runewidth.StringWidth(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
