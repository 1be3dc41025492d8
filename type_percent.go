package valuation

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Percent is a percentage value (20.5 means 20.5%).
//
// It is backed by an exact decimal; rounding to display precision happens
// only in String and SignedString, never mid-calculation.
type Percent struct {
	value decimal.Decimal
}

// P builds a Percent from any numeric value.
func P[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Percent {
	return Percent{value: newDecimal(value)}
}

// PercentOfRatio converts a ratio (0.205) into a Percent (20.5%).
func PercentOfRatio(ratio decimal.Decimal) Percent {
	return Percent{value: ratio.Shift(2)}
}

// Ratio returns the percent as a plain ratio (20.5% -> 0.205).
func (p Percent) Ratio() decimal.Decimal { return p.value.Shift(-2) }

// Decimal returns the raw percentage figure (20.5% -> 20.5).
func (p Percent) Decimal() decimal.Decimal { return p.value }

// Equal compares two percents with a small tolerance, suitable for
// asserting on results of inexact steps such as fractional exponentiation.
func (p Percent) Equal(q Percent) bool {
	const precision = "0.0001"
	diff := p.value.Sub(q.value).Abs()
	return diff.LessThan(decimal.RequireFromString(precision))
}

func (p Percent) IsZero() bool     { return p.value.IsZero() }
func (p Percent) IsNegative() bool { return p.value.IsNegative() }

// Abs returns the absolute value of the percent.
func (p Percent) Abs() Percent { return Percent{value: p.value.Abs()} }

// Neg returns the negated percent.
func (p Percent) Neg() Percent { return Percent{value: p.value.Neg()} }

func (p Percent) String() string {
	return fmt.Sprintf("%s%%", p.value.Round(2))
}

func (p Percent) SignedString() string {
	r := p.value.Round(2)
	if r.IsZero() {
		return "-"
	}
	if r.IsPositive() {
		return fmt.Sprintf("+%s%%", r)
	}
	return fmt.Sprintf("%s%%", r)
}
