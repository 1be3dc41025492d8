package valuation

import "github.com/shopspring/decimal"

// cagrPrecision is the number of significant digits kept by the fractional
// exponentiation. This is the only inexact step of the calculation; every
// other operation stays exact, and rounding to display precision happens
// at presentation time only.
const cagrPrecision = 16

var daysPerYear = decimal.NewFromFloat(365.25)

// CAGR computes the compound annual growth rate:
//
//	(EV / BV)^(1/years) - 1
//
// A non-positive beginning value or elapsed time yields an unavailable
// metric.
func CAGR(beginning, ending Money, years decimal.Decimal) Metric {
	bv := beginning.Amount()
	if !bv.IsPositive() {
		return Unavailable(NonPositiveBeginningValue)
	}
	if !years.IsPositive() {
		return Unavailable(NonPositivePeriod)
	}
	ev := ending.Amount()
	if ev.IsNegative() {
		// No real annual rate connects a positive start to a negative end.
		return Unavailable(NonPositiveDenominator)
	}

	exponent := decimal.NewFromInt(1).Div(years)
	grown, err := ev.Div(bv).PowWithPrecision(exponent, cagrPrecision)
	if err != nil {
		return Unavailable(DivisionByZero)
	}
	return Available(PercentOfRatio(grown.Sub(decimal.NewFromInt(1))))
}

// AnnualizedReturn is CAGR over a date range, with elapsed years derived
// from the day count over the mean year length.
func AnnualizedReturn(beginning, ending Money, period Range) Metric {
	years := decimal.NewFromInt(int64(period.Days())).Div(daysPerYear)
	return CAGR(beginning, ending, years)
}
