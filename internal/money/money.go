// Package money renders decimal amounts the way the storefront API reports
// them: a JSON string with two fraction digits.
package money

import "github.com/shopspring/decimal"

// Amount is a decimal that always marshals with two fraction digits.
type Amount struct{ decimal.Decimal }

func New(d decimal.Decimal) Amount { return Amount{d} }

// Parse reads a NUMERIC scanned as text.
func Parse(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, err
	}
	return Amount{d}, nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.StringFixed(2) + `"`), nil
}
