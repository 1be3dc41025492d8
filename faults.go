package valuation

import "fmt"

// Structural faults indicate that the caller violated the data-loading
// contract. They abort the requested computation and must be fixed at the
// source; they are never folded into an unavailable Metric.

// DuplicateSnapshotDateError reports two snapshots sharing the same date in
// the collection handed to NewRecordIndex.
type DuplicateSnapshotDateError struct {
	Date Date
}

func (e *DuplicateSnapshotDateError) Error() string {
	return fmt.Sprintf("duplicate snapshot date %s", e.Date)
}

// SnapshotNotFoundError reports a resolution request for a date with no
// snapshot in the index.
type SnapshotNotFoundError struct {
	Date Date
}

func (e *SnapshotNotFoundError) Error() string {
	return fmt.Sprintf("no snapshot recorded on %s", e.Date)
}

// CashFlowOutOfRangeError reports a cash flow whose date falls outside the
// period it was supplied for. The calculator rejects it rather than
// silently including or excluding it.
type CashFlowOutOfRangeError struct {
	Flow   CashFlow
	Period Range
}

func (e *CashFlowOutOfRangeError) Error() string {
	return fmt.Sprintf("cash flow %q on %s is outside period %s",
		e.Flow.Description, e.Flow.Date, e.Period)
}
