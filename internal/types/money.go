package types

import (
	"github.com/shopspring/decimal"
)

// Money is an amount in minor currency units (agorot). All storage and wire
// amounts use Money; major units (shekels) exist only at the presentation
// edge, converted exactly once at the boundary.
type Money int64

// minorUnitsPerMajor is the scale between display currency and Money
var minorUnitsPerMajor = decimal.NewFromInt(100)

// VATRate is the fixed VAT rate applied to quote subtotals (18%)
var VATRate = decimal.NewFromFloat(0.18)

// MoneyFromMajorUnits converts a major-unit amount to Money, rounding
// half-up to the nearest minor unit. Must be applied consistently on every
// write path that accepts major units, otherwise stored amounts drift.
func MoneyFromMajorUnits(major decimal.Decimal) Money {
	return Money(major.Mul(minorUnitsPerMajor).Round(0).IntPart())
}

// ToMajorUnits converts Money back to a major-unit decimal for display
func (m Money) ToMajorUnits() decimal.Decimal {
	return decimal.NewFromInt(int64(m)).Div(minorUnitsPerMajor)
}

// MulQuantity returns the amount for qty units at this unit price
func (m Money) MulQuantity(qty int64) Money {
	return Money(int64(m) * qty)
}

// Add returns the sum of two amounts
func (m Money) Add(other Money) Money {
	return m + other
}

// IsNegative reports whether the amount is below zero
func (m Money) IsNegative() bool {
	return m < 0
}

// ComputeVAT returns round(subtotal * VATRate). VAT is applied once to the
// aggregate subtotal, never per line item; per-line rounding would produce
// different totals.
func ComputeVAT(subtotal Money) Money {
	vat := decimal.NewFromInt(int64(subtotal)).Mul(VATRate).Round(0)
	return Money(vat.IntPart())
}
