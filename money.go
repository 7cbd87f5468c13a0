package spending

import "github.com/Rhymond/go-money"

// DefaultCurrency is the currency of the "Cost (lei)" column.
const DefaultCurrency = money.RON

// leiFormatter writes whole lei with Romanian grouping, e.g. "1.500 lei".
var leiFormatter = money.NewFormatter(0, ",", ".", "lei", "1 $")

// FormatCost returns the grouped display form of a cost in whole units of
// currency. It is meant for display only, the document always holds plain
// digits.
func FormatCost(cost int64, currency string) string {
	if currency == "" || currency == DefaultCurrency {
		return leiFormatter.Format(cost)
	}
	// to get a never nil currency I need to call the Money constructor
	cur := *money.New(0, currency).Currency()
	if cur.Template == "" {
		// unknown to go-money, keep the code as symbol.
		cur.Template, cur.Grapheme, cur.Thousand = "1 $", cur.Code, ","
	}
	return money.NewFormatter(0, cur.Decimal, cur.Thousand, cur.Grapheme, cur.Template).Format(cost)
}
