package valuation

// PerformanceReport aggregates, for one target date, the metrics the
// presentation layer renders together: the composite total, the standard
// lookback growth rates, and the inception-to-date time-weighted and
// annualized returns.
type PerformanceReport struct {
	View   *CompositeView
	Growth map[Lookback]Metric
	TWR    Metric
	CAGR   Metric
}

// NewPerformanceReport resolves the composite view at 'on' and computes
// the report's metrics. Lookback priors use the closest snapshot at or
// before each ideal lookback date, subject to the staleness threshold.
// Structural faults abort the report.
func NewPerformanceReport(ix *RecordIndex, flows []CashFlow, on Date, stalenessDays int) (*PerformanceReport, error) {
	view, err := ix.Resolve(on)
	if err != nil {
		return nil, err
	}
	r := &PerformanceReport{View: view, Growth: make(map[Lookback]Metric, len(Lookbacks))}

	for _, lb := range Lookbacks {
		ideal := lb.IdealDate(on)
		var prior *CompositeView
		if priorDate, ok := ix.ClosestAtOrBefore(ideal); ok {
			prior, err = ix.Resolve(priorDate)
			if err != nil {
				return nil, err
			}
		}
		r.Growth[lb] = PeriodGrowthRate(view, prior, ideal, stalenessDays)
	}

	inception := NewRange(ix.Earliest(), on)
	r.TWR, err = ix.TimeWeightedReturn(flows, inception)
	if err != nil {
		return nil, err
	}

	first, err := ix.Resolve(ix.Earliest())
	if err != nil {
		return nil, err
	}
	r.CAGR = AnnualizedReturn(first.Total(), view.Total(), inception)

	return r, nil
}
