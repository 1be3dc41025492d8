package valuation

import "github.com/shopspring/decimal"

// ModifiedDietz computes the cash-flow-time-weighted return between two
// valuations:
//
//	return = (EV - BV - ΣCF) / (BV + Σ(CF_i × W_i))
//
// where W_i is the fraction of the period the flow was in the portfolio: a
// contribution on the first day weighs 1.0, one on the last day weighs 0.
//
// Every cash flow must fall inside the period, boundaries included; a flow
// outside it is a structural fault (*CashFlowOutOfRangeError), not a
// silent exclusion. Numeric edge cases are expected outcomes and come back
// as unavailable metrics: a non-positive beginning value, or a weighted
// denominator that is zero or negative.
func ModifiedDietz(beginning, ending Money, flows []CashFlow, period Range) (Metric, error) {
	for _, f := range flows {
		if !period.Contains(f.Date) {
			return Metric{}, &CashFlowOutOfRangeError{Flow: f, Period: period}
		}
	}

	bv := beginning.Amount()
	if !bv.IsPositive() {
		return Unavailable(NonPositiveBeginningValue), nil
	}

	days := period.Days()
	netFlow := decimal.Zero
	weightedFlow := decimal.Zero
	for _, f := range flows {
		amount := f.Amount.Amount()
		netFlow = netFlow.Add(amount)
		if days == 0 {
			// Degenerate single-day period: the flow is in the portfolio
			// for none of it.
			continue
		}
		weight := decimal.NewFromInt(int64(period.To.Sub(f.Date))).
			Div(decimal.NewFromInt(int64(days)))
		weightedFlow = weightedFlow.Add(amount.Mul(weight))
	}

	denominator := bv.Add(weightedFlow)
	if !denominator.IsPositive() {
		return Unavailable(NonPositiveDenominator), nil
	}

	ratio := ending.Amount().Sub(bv).Sub(netFlow).Div(denominator)
	return Available(PercentOfRatio(ratio)), nil
}
