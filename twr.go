package valuation

import "github.com/shopspring/decimal"

// CumulativeTWR compounds an ordered sequence of sub-period returns into a
// cumulative time-weighted return:
//
//	TWR = Π(1 + r_i) - 1
//
// At least one sub-period (two snapshots) is required. When a sub-period
// is itself unavailable, the whole chain is unavailable with the first
// such reason; there is no partial or interpolated result.
func CumulativeTWR(subPeriods []Metric) Metric {
	if len(subPeriods) < 1 {
		return Unavailable(InsufficientSnapshots)
	}
	factor := decimal.NewFromInt(1)
	for _, m := range subPeriods {
		if !m.Available() {
			return Unavailable(m.Reason())
		}
		factor = factor.Mul(decimal.NewFromInt(1).Add(m.Percent().Ratio()))
	}
	return Available(PercentOfRatio(factor.Sub(decimal.NewFromInt(1))))
}

// TimeWeightedReturn chains Modified Dietz returns over every consecutive
// snapshot pair of the index inside the period, boundaries included.
//
// Each sub-period return uses the composite views at the pair's dates as
// the beginning and ending values, and the cash flows dated strictly
// between them. Flows dated exactly on a snapshot are assumed to already
// be reflected in that snapshot's recorded values.
//
// Structural faults stop the chain immediately; an unavailable sub-period
// propagates as an unavailable result.
func (ix *RecordIndex) TimeWeightedReturn(flows []CashFlow, period Range) (Metric, error) {
	var dates []Date
	for on := range ix.DatesBetween(period) {
		dates = append(dates, on)
	}
	if len(dates) < 2 {
		return Unavailable(InsufficientSnapshots), nil
	}

	prev, err := ix.Resolve(dates[0])
	if err != nil {
		return Metric{}, err
	}

	subPeriods := make([]Metric, 0, len(dates)-1)
	for _, on := range dates[1:] {
		view, err := ix.Resolve(on)
		if err != nil {
			return Metric{}, err
		}
		sub := NewRange(prev.On(), view.On())
		m, err := ModifiedDietz(prev.Total(), view.Total(), flowsBetween(flows, prev.On(), view.On()), sub)
		if err != nil {
			return Metric{}, err
		}
		subPeriods = append(subPeriods, m)
		prev = view
	}
	return CumulativeTWR(subPeriods), nil
}

// flowsBetween selects the cash flows dated strictly between from and to.
func flowsBetween(flows []CashFlow, from, to Date) []CashFlow {
	var selected []CashFlow
	for _, f := range flows {
		if f.Date.After(from) && f.Date.Before(to) {
			selected = append(selected, f)
		}
	}
	return selected
}
