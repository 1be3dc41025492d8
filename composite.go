package valuation

import (
	"fmt"
	"iter"
	"sort"
)

// Provenance records where a platform's values in a composite view came
// from: recorded directly on the view's date, or carried forward from the
// most recent earlier snapshot that observed the platform.
type Provenance struct {
	carried bool
	from    Date
}

// Direct is the provenance of values recorded on the view's own date.
func Direct() Provenance { return Provenance{} }

// CarriedForward is the provenance of values substituted from an earlier
// snapshot date.
func CarriedForward(from Date) Provenance { return Provenance{carried: true, from: from} }

// IsDirect reports whether the values were recorded on the view's date.
func (p Provenance) IsDirect() bool { return !p.carried }

// From returns the source snapshot date of carried-forward values, or the
// zero Date for direct ones.
func (p Provenance) From() Date { return p.from }

func (p Provenance) String() string {
	if !p.carried {
		return "direct"
	}
	return fmt.Sprintf("carried forward from %s", p.from)
}

// PlatformValue is one platform's contribution to a composite view: the
// whole asset-value set from its source snapshot, its total, and its
// provenance. A platform contributes at most one value set per view.
type PlatformValue struct {
	Platform string
	Values   []AssetValue
	Total    Money
	Source   Provenance
}

// CompositeView is the resolved portfolio state for one snapshot date:
// direct and carried-forward platform values, per-category totals, and the
// grand total. It is built fresh on each resolution and never cached.
type CompositeView struct {
	on         Date
	platforms  []PlatformValue
	categories map[string]Money
	total      Money
}

// On returns the date the view was resolved for.
func (v *CompositeView) On() Date { return v.on }

// Total returns the grand total: the sum of all included platform totals.
func (v *CompositeView) Total() Money { return v.total }

// Platforms returns the included platform value sets, ordered by
// normalized platform identifier.
func (v *CompositeView) Platforms() []PlatformValue { return v.platforms }

// CategoryTotal returns the summed value of a category across all included
// platforms. Unknown categories total zero.
func (v *CompositeView) CategoryTotal(category string) Money {
	if m, ok := v.categories[category]; ok {
		return m
	}
	return M(0, v.total.Currency())
}

// Categories returns an iterator over category names and totals, ordered
// by name.
func (v *CompositeView) Categories() iter.Seq2[string, Money] {
	names := make([]string, 0, len(v.categories))
	for name := range v.categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return func(yield func(string, Money) bool) {
		for _, name := range names {
			if !yield(name, v.categories[name]) {
				return
			}
		}
	}
}

// Resolve builds the composite view for a target snapshot date.
//
// The snapshot at targetDate contributes its platforms directly. Every
// other platform known to the index contributes its latest observation
// strictly before targetDate, whole, tagged carried-forward; platforms
// never observed before targetDate contribute nothing. The cost is one
// ordered lookup per distinct platform, independent of the total snapshot
// or record count.
//
// It fails with a *SnapshotNotFoundError when no snapshot exists at
// targetDate.
func (ix *RecordIndex) Resolve(targetDate Date) (*CompositeView, error) {
	if _, ok := ix.byDate[targetDate]; !ok {
		return nil, &SnapshotNotFoundError{Date: targetDate}
	}

	view := &CompositeView{
		on:         targetDate,
		categories: make(map[string]Money),
	}

	for _, key := range ix.platforms {
		tl := ix.timelines[key]

		entry, ok := tl.on(targetDate)
		source := Direct()
		if !ok {
			entry, ok = tl.lastBefore(targetDate)
			if !ok {
				continue // platform has no observation on or before the target
			}
			source = CarriedForward(entry.on)
		}

		pv := PlatformValue{
			Platform: tl.platform,
			Values:   entry.values,
			Source:   source,
		}
		for _, av := range entry.values {
			pv.Total = pv.Total.Add(av.Value)
			view.categories[av.Category] = view.categories[av.Category].Add(av.Value)
		}
		view.total = view.total.Add(pv.Total)
		view.platforms = append(view.platforms, pv)
	}

	return view, nil
}

// Views resolves composite views for a series of dates in the given order.
// It yields each view with a nil error until the first structural fault,
// which is yielded with a nil view and stops the series. Breaking out of
// the loop terminates the series early; no resolution happens past the
// break.
func (ix *RecordIndex) Views(dates ...Date) iter.Seq2[*CompositeView, error] {
	return func(yield func(*CompositeView, error) bool) {
		for _, on := range dates {
			view, err := ix.Resolve(on)
			if !yield(view, err) {
				return
			}
			if err != nil {
				return
			}
		}
	}
}
