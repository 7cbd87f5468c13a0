package spending

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// sectionRE matches the horizontal rule separating the two tables, with
	// either line ending.
	sectionRE = regexp.MustCompile(`(?m)^---\r?$`)
	// dailyRE matches a daily data row: | date | category | cost |
	dailyRE = regexp.MustCompile(`^\|\s*(\d{4}-\d{2}-\d{2})\s*\|\s*(.+?)\s*\|\s*(\d+)\s*\|`)
)

// recurringCells is the minimum number of non empty cells in a recurring row.
const recurringCells = 5

// Parse decodes a spending document into its daily and recurring records, in
// document order.
//
// Parse never fails. Empty text yields two empty sequences, and lines that
// are not data rows (headings, table headers, rule rows, blank or malformed
// lines) are skipped.
func Parse(text string) (daily []Daily, recurring []Recurring) {
	daily, recurring = []Daily{}, []Recurring{}
	if text == "" {
		return daily, recurring
	}

	sections := sectionRE.Split(text, -1)
	if len(sections) < 2 {
		return parseDaily(strings.Split(text, "\n")), recurring
	}
	// Everything after the first rule belongs to the recurring table, later
	// rules included.
	rest := strings.Join(sections[1:], "---")
	return parseDaily(strings.Split(sections[0], "\n")), parseRecurring(strings.Split(rest, "\n"))
}

// parseDaily decodes daily rows, skipping any other line.
func parseDaily(lines []string) []Daily {
	rows := []Daily{}
	for _, line := range lines {
		match := dailyRE.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		cost, err := strconv.ParseInt(match[3], 10, 64)
		if err != nil {
			// only too many digits can get here.
			continue
		}
		rows = append(rows, Daily{
			Date:     match[1],
			Category: strings.TrimSpace(match[2]),
			Cost:     cost,
		})
	}
	return rows
}

// parseRecurring decodes recurring rows, skipping any other line.
func parseRecurring(lines []string) []Recurring {
	rows := []Recurring{}
	for _, line := range lines {
		cells := splitCells(line)
		if len(cells) < recurringCells || strings.HasPrefix(cells[0], "--") || cells[0] == "Category" {
			continue
		}
		paid := cells[4]
		if paid == unpaid {
			paid = ""
		}
		rows = append(rows, Recurring{
			Category: cells[0],
			Item:     cells[1],
			Due:      cells[2],
			Amount:   cells[3],
			Paid:     paid,
		})
	}
	return rows
}

// splitCells splits a table line on '|' and returns the trimmed, non empty
// cells.
func splitCells(line string) []string {
	var cells []string
	for _, cell := range strings.Split(line, "|") {
		if cell = strings.TrimSpace(cell); cell != "" {
			cells = append(cells, cell)
		}
	}
	return cells
}
