// Package item defines the Item record and its validated construction from a
// JSON request body.
package item

import (
	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// Item describes a purchasable thing. It only lives for the request that
// carried it.
type Item struct {
	Name        string
	Description *string
	Price       decimal.Decimal
	Tax         *decimal.Decimal
}

// PriceWithTax returns price * (1 + tax). The boolean is false when no
// non-zero tax was supplied.
func (i Item) PriceWithTax() (decimal.Decimal, bool) {
	if i.Tax == nil || i.Tax.IsZero() {
		return decimal.Zero, false
	}
	return i.Price.Mul(one.Add(*i.Tax)), true
}

// Record is the JSON rendering of an Item. Optional fields that were not
// supplied render as null; PriceWithTax is left out entirely.
type Record struct {
	Name         string   `json:"name"`
	Description  *string  `json:"description"`
	Price        float64  `json:"price"`
	Tax          *float64 `json:"tax"`
	PriceWithTax *float64 `json:"price_with_tax,omitempty"`
}

// Dump renders the item, adding price_with_tax when a tax applies.
func (i Item) Dump() Record {
	r := Record{
		Name:        i.Name,
		Description: i.Description,
		Price:       i.Price.InexactFloat64(),
	}
	if i.Tax != nil {
		t := i.Tax.InexactFloat64()
		r.Tax = &t
	}
	if pwt, ok := i.PriceWithTax(); ok {
		f := pwt.InexactFloat64()
		r.PriceWithTax = &f
	}
	return r
}
