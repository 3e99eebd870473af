package models

import (
	"github.com/shopspring/decimal"
)

// Price is a fixed-point amount quoted by the upstream market data.
//
// It decodes from JSON numbers or strings and always encodes as a bare JSON
// number, so clients see the same shape the upstream service produced.
type Price struct {
	decimal.Decimal
}

// NewPriceFromString parses s into a Price.
func NewPriceFromString(s string) (Price, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, err
	}
	return Price{Decimal: d}, nil
}

// MarshalJSON encodes the price without quotes.
func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(p.Decimal.String()), nil
}
