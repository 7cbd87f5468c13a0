package spending

import (
	"cmp"
	"slices"

	"github.com/etnz/spending/date"
	"github.com/shopspring/decimal"
)

// CategoryTotal is the spending of one category over a period.
type CategoryTotal struct {
	Category string
	Count    int
	Total    int64
}

// Summary aggregates the daily expenses over a date range and the status of
// the recurring expenses.
type Summary struct {
	Range         date.Range
	Categories    []CategoryTotal // biggest spending first
	Count         int
	Total         int64
	AveragePerDay decimal.Decimal
	Paid          []Recurring
	Unpaid        []Recurring
}

// NewSummary computes the summary of l over r.
//
// Daily records whose date cannot be read are not counted.
func NewSummary(l *Ledger, r date.Range) *Summary {
	s := &Summary{Range: r}

	totals := make(map[string]*CategoryTotal)
	for _, rec := range l.Daily {
		on, err := date.Parse(rec.Date)
		if err != nil || !r.Contains(on) {
			continue
		}
		ct, ok := totals[rec.Category]
		if !ok {
			ct = &CategoryTotal{Category: rec.Category}
			totals[rec.Category] = ct
		}
		ct.Count++
		ct.Total += rec.Cost
		s.Count++
		s.Total += rec.Cost
	}
	for _, ct := range totals {
		s.Categories = append(s.Categories, *ct)
	}
	slices.SortFunc(s.Categories, func(a, b CategoryTotal) int {
		if c := cmp.Compare(b.Total, a.Total); c != 0 {
			return c
		}
		return cmp.Compare(a.Category, b.Category)
	})

	s.AveragePerDay = decimal.NewFromInt(s.Total).
		Div(decimal.NewFromInt(int64(r.Days()))).
		Round(2)

	for _, rec := range l.Recurring {
		if rec.IsPaid() {
			s.Paid = append(s.Paid, rec)
		} else {
			s.Unpaid = append(s.Unpaid, rec)
		}
	}
	return s
}
