package spending

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
)

// MarshalJSON writes the fields in table order.
func (r Daily) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", r.Date)
	w.Append("category", r.Category)
	w.Append("cost", r.Cost)
	return w.MarshalJSON()
}

// MarshalJSON writes the fields in table order. Paid is always present, ""
// meaning not paid.
func (r Recurring) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("category", r.Category)
	w.Append("item", r.Item)
	w.Append("due", r.Due)
	w.Append("amount", r.Amount)
	w.Append("paid", r.Paid)
	return w.MarshalJSON()
}

// MarshalJSON writes the ledger as {"daily":[...],"recurring":[...]}.
func (l *Ledger) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("daily", nonNil(l.Daily))
	w.Append("recurring", nonNil(l.Recurring))
	return w.MarshalJSON()
}

// nonNil makes sure empty tables are written as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// EncodeJSON writes the ledger to w as indented JSON.
func EncodeJSON(w io.Writer, l *Ledger) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(l); err != nil {
		return fmt.Errorf("failed to encode ledger: %w", err)
	}
	return nil
}

// Query evaluates a JSONPath expression against the JSON form of the ledger,
// for instance `$.recurring[?(@.paid=="")].item`.
func Query(l *Ledger, path string) (any, error) {
	data, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("failed to encode ledger: %w", err)
	}
	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		return nil, fmt.Errorf("failed to decode ledger: %w", err)
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	return jval, nil
}
