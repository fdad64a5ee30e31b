package aging

import (
	"github.com/shopspring/decimal"
)

// Bucket column headings, in sheet order. The detail parser folds the
// QuickBooks 91-120 and 120+ tail into the single '> 90' column so that
// every run writes the same row shape.
var Buckets = []string{"Current", "1 - 30", "31 - 60", "61 - 90", "> 90"}

// Record is one customer's outstanding balance split across the aging
// buckets. Amounts may be zero or negative (credit memos and unapplied
// payments come through as negative balances).
type Record struct {
	Name    string
	Current decimal.Decimal
	Days30  decimal.Decimal
	Days60  decimal.Decimal
	Days90  decimal.Decimal
	Over90  decimal.Decimal
	Total   decimal.Decimal
}

// Sum returns the total of the five buckets.
func (r Record) Sum() decimal.Decimal {
	return r.Current.Add(r.Days30).Add(r.Days60).Add(r.Days90).Add(r.Over90)
}
