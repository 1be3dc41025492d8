package valuation

import "fmt"

// DefaultStalenessDays is the maximum gap, in days, tolerated between the
// ideal lookback date and the closest available snapshot before a period
// growth rate is declared unavailable. It is a default, not a hidden
// constant: the threshold is an explicit parameter of PeriodGrowthRate.
const DefaultStalenessDays = 14

// Lookback is a standard period over which a growth rate is reported.
type Lookback int

const (
	OneMonth Lookback = iota
	ThreeMonths
	OneYear
)

// Lookbacks lists the standard lookback windows in reporting order.
var Lookbacks = []Lookback{OneMonth, ThreeMonths, OneYear}

func (l Lookback) String() string {
	switch l {
	case OneMonth:
		return "1M"
	case ThreeMonths:
		return "3M"
	case OneYear:
		return "1Y"
	default:
		panic(fmt.Sprintf("unknown lookback %d", l))
	}
}

// IdealDate returns the date exactly one lookback period before target.
func (l Lookback) IdealDate(target Date) Date {
	switch l {
	case OneMonth:
		return target.AddMonth(-1)
	case ThreeMonths:
		return target.AddMonth(-3)
	case OneYear:
		return target.AddYear(-1)
	default:
		panic(fmt.Sprintf("unknown lookback %d", l))
	}
}

// GrowthRate is the simple percentage change between two composite views:
// (current - prior) / prior. A zero prior total yields an unavailable
// metric, never a division fault.
func GrowthRate(current, prior *CompositeView) Metric {
	priorTotal := prior.Total().Amount()
	if priorTotal.IsZero() {
		return Unavailable(DivisionByZero)
	}
	ratio := current.Total().Amount().Sub(priorTotal).Div(priorTotal)
	return Available(PercentOfRatio(ratio))
}

// PeriodGrowthRate computes the growth of current relative to a prior view
// the caller resolved for the closest snapshot at or before idealDate.
//
// The calculator does not search history itself: it only performs the
// arithmetic and the staleness check. A nil prior (no snapshot in the
// window) or a prior more than stalenessDays older than idealDate yields
// an unavailable metric.
func PeriodGrowthRate(current, prior *CompositeView, idealDate Date, stalenessDays int) Metric {
	if prior == nil {
		return Unavailable(NoDataInWindow)
	}
	if idealDate.Sub(prior.On()) > stalenessDays {
		return Unavailable(NoDataInWindow)
	}
	return GrowthRate(current, prior)
}
