package spending

// Daily is one expense event on an exact date.
type Daily struct {
	Date     string // YYYY-MM-DD
	Category string
	Cost     int64 // whole currency units
}

// Recurring is a yearly obligation with a due date and a paid status.
//
// Due and Amount are free text, the codec never interprets them.
type Recurring struct {
	Category string
	Item     string
	Due      string
	Amount   string
	Paid     string // date it was paid, "" when not paid yet
}

// IsPaid reports whether r has been marked paid.
func (r Recurring) IsPaid() bool { return r.Paid != "" }

// unpaid is how an empty Paid is written in the document.
const unpaid = "-"

// paidCell returns the document form of r.Paid.
func (r Recurring) paidCell() string {
	if r.Paid == "" {
		return unpaid
	}
	return r.Paid
}
