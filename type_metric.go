package valuation

import "fmt"

// Reason identifies why a metric could not be computed.
//
// These are expected outcomes of valid data (a brand-new portfolio has no
// history to compute returns from), not faults. The set is finite and
// stable so that presentation layers can map each code to a localized
// message.
type Reason int

const (
	// DivisionByZero: the prior or base value of a ratio is zero.
	DivisionByZero Reason = iota + 1
	// NonPositiveBeginningValue: a return calculation requires a strictly
	// positive beginning value.
	NonPositiveBeginningValue
	// NonPositiveDenominator: the cash-flow-weighted denominator of a
	// Modified Dietz return is zero or negative.
	NonPositiveDenominator
	// InsufficientSnapshots: fewer snapshots than the calculation requires.
	InsufficientSnapshots
	// NoDataInWindow: no snapshot within the lookback window, or the
	// closest one is staler than the allowed threshold.
	NoDataInWindow
	// NonPositivePeriod: annualization over zero or negative elapsed time.
	NonPositivePeriod
)

// Code returns the stable persistence identifier of the reason.
// It is mapped explicitly and independently from Label.
func (r Reason) Code() string {
	switch r {
	case DivisionByZero:
		return "division_by_zero"
	case NonPositiveBeginningValue:
		return "non_positive_beginning_value"
	case NonPositiveDenominator:
		return "non_positive_denominator"
	case InsufficientSnapshots:
		return "insufficient_snapshots"
	case NoDataInWindow:
		return "no_data_in_window"
	case NonPositivePeriod:
		return "non_positive_period"
	default:
		return "unknown"
	}
}

// Label returns a short human-readable description of the reason. The
// authoritative user-facing wording belongs to the presentation layer;
// this is the fallback.
func (r Reason) Label() string {
	switch r {
	case DivisionByZero:
		return "prior value is zero"
	case NonPositiveBeginningValue:
		return "beginning value is not positive"
	case NonPositiveDenominator:
		return "cash-flow-adjusted base is not positive"
	case InsufficientSnapshots:
		return "not enough snapshots"
	case NoDataInWindow:
		return "no snapshot close enough to the lookback date"
	case NonPositivePeriod:
		return "elapsed time is not positive"
	default:
		return "unknown"
	}
}

func (r Reason) String() string { return r.Code() }

// ParseReason parses a persistence code back into a Reason.
func ParseReason(code string) (Reason, error) {
	for _, r := range []Reason{
		DivisionByZero,
		NonPositiveBeginningValue,
		NonPositiveDenominator,
		InsufficientSnapshots,
		NoDataInWindow,
		NonPositivePeriod,
	} {
		if r.Code() == code {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown metric reason %q", code)
}

// Metric is the result of a return calculation: either an available
// Percent or an unavailability Reason. The zero Metric is unavailable
// with an unknown reason.
type Metric struct {
	value  Percent
	reason Reason
	ok     bool
}

// Available wraps a computed percent into an available Metric.
func Available(p Percent) Metric { return Metric{value: p, ok: true} }

// Unavailable builds a Metric carrying the reason the value could not be
// computed.
func Unavailable(r Reason) Metric { return Metric{reason: r} }

// Available reports whether the metric holds a value.
func (m Metric) Available() bool { return m.ok }

// Percent returns the computed value. It is only meaningful when
// Available() is true; otherwise it is the zero Percent.
func (m Metric) Percent() Percent { return m.value }

// Reason returns why the metric is unavailable, or 0 when it is available.
func (m Metric) Reason() Reason {
	if m.ok {
		return 0
	}
	return m.reason
}

func (m Metric) String() string {
	if m.ok {
		return m.value.String()
	}
	return fmt.Sprintf("n/a (%s)", m.reason.Label())
}
