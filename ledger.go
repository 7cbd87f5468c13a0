package spending

import (
	"slices"
	"strings"

	"github.com/etnz/spending/date"
)

// Ledger is the in-memory content of a spending document.
//
// New daily records are prepended, so the table reads most recent first.
// New recurring records are appended. Mutations replace records in place and
// never reorder the others.
type Ledger struct {
	Daily     []Daily
	Recurring []Recurring
}

// Decode parses text into a new Ledger. See Parse.
func Decode(text string) *Ledger {
	daily, recurring := Parse(text)
	return &Ledger{Daily: daily, Recurring: recurring}
}

// String returns the ledger as a spending document. See Serialize.
func (l *Ledger) String() string { return Serialize(l.Daily, l.Recurring) }

// AddDaily records a new expense at the top of the daily table.
//
// on must be a valid date, category must not be blank, and cost must be
// strictly positive. Otherwise nothing is added and AddDaily returns false.
// The category is stored in upper case.
func (l *Ledger) AddDaily(on, category string, cost int64) bool {
	category = strings.TrimSpace(category)
	if on == "" || category == "" || cost <= 0 {
		return false
	}
	day, err := date.Parse(strings.TrimSpace(on))
	if err != nil {
		return false
	}
	rec := Daily{Date: day.String(), Category: strings.ToUpper(category), Cost: cost}
	l.Daily = slices.Insert(l.Daily, 0, rec)
	return true
}

// AddRecurring appends a new, unpaid, recurring expense.
//
// All fields are required. Category and item are stored in upper case.
func (l *Ledger) AddRecurring(category, item, due, amount string) bool {
	category = strings.ToUpper(strings.TrimSpace(category))
	item = strings.ToUpper(strings.TrimSpace(item))
	amount = strings.TrimSpace(amount)
	if category == "" || item == "" || strings.TrimSpace(due) == "" || amount == "" {
		return false
	}
	l.Recurring = append(l.Recurring, Recurring{
		Category: category,
		Item:     item,
		Due:      strings.TrimSpace(due),
		Amount:   amount,
	})
	return true
}

// DeleteDaily removes the i-th daily record.
func (l *Ledger) DeleteDaily(i int) bool {
	if i < 0 || i >= len(l.Daily) {
		return false
	}
	l.Daily = slices.Delete(l.Daily, i, i+1)
	return true
}

// DeleteRecurring removes the i-th recurring record.
func (l *Ledger) DeleteRecurring(i int) bool {
	if i < 0 || i >= len(l.Recurring) {
		return false
	}
	l.Recurring = slices.Delete(l.Recurring, i, i+1)
	return true
}

// MarkPaid sets the paid date of the i-th recurring record.
func (l *Ledger) MarkPaid(i int, on date.Date) bool {
	return l.setPaid(i, on.String())
}

// MarkUnpaid clears the paid date of the i-th recurring record.
func (l *Ledger) MarkUnpaid(i int) bool {
	return l.setPaid(i, "")
}

func (l *Ledger) setPaid(i int, paid string) bool {
	if i < 0 || i >= len(l.Recurring) {
		return false
	}
	rec := l.Recurring[i]
	rec.Paid = paid
	l.Recurring[i] = rec
	return true
}

// Categories returns the sorted list of distinct daily categories.
func (l *Ledger) Categories() []string {
	cats := make([]string, 0, len(l.Daily))
	for _, r := range l.Daily {
		cats = append(cats, r.Category)
	}
	slices.Sort(cats)
	return slices.Compact(cats)
}
