package valuation

import "strings"

// The engine consumes already-loaded, already-validated records. All
// relationships are materialized by the caller before the records are
// handed in; nothing here triggers lazy loading or I/O.

// AssetValue is the market value of one asset recorded directly on one
// snapshot date. An asset is identified by its (name, platform) pair and
// classified under a category. Immutable once recorded.
type AssetValue struct {
	Name     string
	Platform string
	Category string
	Value    Money
}

// Snapshot is the collection of asset values recorded directly on a single
// calendar day. Dates are unique within the collection given to the engine.
type Snapshot struct {
	On     Date
	Values []AssetValue
}

// CashFlow is an external contribution to (positive) or withdrawal from
// (negative) the portfolio. Only the Modified Dietz calculator consumes
// cash flows.
type CashFlow struct {
	Date        Date
	Amount      Money
	Description string
}

// Category is read-only reference data: an identifier plus an optional
// target allocation percentage. A nil Target means the category is
// informational and produces no rebalancing suggestion.
type Category struct {
	Name   string
	Target *Percent
}

// NewCategory creates a category without a target allocation.
func NewCategory(name string) Category { return Category{Name: name} }

// NewTargetedCategory creates a category with a target allocation in
// percent of the portfolio's grand total.
func NewTargetedCategory(name string, target Percent) Category {
	return Category{Name: name, Target: &target}
}

// PlatformKey normalizes a platform identifier for comparison. Display
// code keeps the originally recorded casing.
func PlatformKey(platform string) string {
	return strings.ToLower(strings.TrimSpace(platform))
}
