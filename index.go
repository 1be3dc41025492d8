package valuation

import (
	"iter"
	"slices"
	"sort"
)

// platformEntry is one dated observation of a platform: the complete set of
// asset values that platform recorded in the snapshot on that date.
// Carry-forward is atomic at this level: an entry is always included whole.
type platformEntry struct {
	on     Date
	values []AssetValue
}

// platformTimeline is the chronological list of a platform's direct
// observations, ascending by date.
type platformTimeline struct {
	platform string // display casing from the first occurrence
	entries  []platformEntry
}

// lastBefore returns the latest entry strictly before target, if any.
// The entries are sorted, so this is a binary search.
func (t *platformTimeline) lastBefore(target Date) (platformEntry, bool) {
	i, _ := slices.BinarySearchFunc(t.entries, target, func(e platformEntry, d Date) int {
		return e.on.Compare(d)
	})
	// `i` is the position of target (when found) or its insertion point:
	// either way the last strictly-earlier entry is at i-1.
	if i == 0 {
		return platformEntry{}, false
	}
	return t.entries[i-1], true
}

// on returns the entry exactly at target, if any.
func (t *platformTimeline) on(target Date) (platformEntry, bool) {
	i, found := slices.BinarySearchFunc(t.entries, target, func(e platformEntry, d Date) int {
		return e.on.Compare(d)
	})
	if !found {
		return platformEntry{}, false
	}
	return t.entries[i], true
}

// RecordIndex is the ordered form of a snapshot collection: snapshots
// sorted ascending by date, plus a per-platform timeline of direct
// observations.
//
// The index is read-only after construction and safe for concurrent use;
// every resolution builds a fresh view and shares only the indexed records.
type RecordIndex struct {
	snapshots []Snapshot
	byDate    map[Date]int
	timelines map[string]*platformTimeline // by PlatformKey
	platforms []string                     // normalized keys, sorted
}

// NewRecordIndex builds an index over an unordered collection of
// snapshots. It fails with a *DuplicateSnapshotDateError if two snapshots
// share a date. Construction cost is one pass over all asset-value records
// plus the snapshot sort.
func NewRecordIndex(snapshots []Snapshot) (*RecordIndex, error) {
	sorted := make([]Snapshot, len(snapshots))
	copy(sorted, snapshots)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].On.Before(sorted[j].On) })

	ix := &RecordIndex{
		snapshots: sorted,
		byDate:    make(map[Date]int, len(sorted)),
		timelines: make(map[string]*platformTimeline),
	}

	for i, s := range sorted {
		if _, dup := ix.byDate[s.On]; dup {
			return nil, &DuplicateSnapshotDateError{Date: s.On}
		}
		ix.byDate[s.On] = i

		// Group the snapshot's records by platform. Snapshots arrive in
		// date order, so appending keeps each timeline sorted.
		grouped := make(map[string]*platformEntry)
		for _, v := range s.Values {
			key := PlatformKey(v.Platform)
			e, ok := grouped[key]
			if !ok {
				tl, seen := ix.timelines[key]
				if !seen {
					tl = &platformTimeline{platform: v.Platform}
					ix.timelines[key] = tl
					ix.platforms = append(ix.platforms, key)
				}
				tl.entries = append(tl.entries, platformEntry{on: s.On})
				e = &tl.entries[len(tl.entries)-1]
				grouped[key] = e
			}
			e.values = append(e.values, v)
		}
	}

	sort.Strings(ix.platforms)
	return ix, nil
}

// Len returns the number of snapshots in the index.
func (ix *RecordIndex) Len() int { return len(ix.snapshots) }

// Earliest returns the date of the first snapshot, or the zero Date for an
// empty index.
func (ix *RecordIndex) Earliest() Date {
	if len(ix.snapshots) == 0 {
		return Date{}
	}
	return ix.snapshots[0].On
}

// Latest returns the date of the last snapshot, or the zero Date for an
// empty index.
func (ix *RecordIndex) Latest() Date {
	if len(ix.snapshots) == 0 {
		return Date{}
	}
	return ix.snapshots[len(ix.snapshots)-1].On
}

// Dates returns an iterator over all snapshot dates in chronological order.
func (ix *RecordIndex) Dates() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for _, s := range ix.snapshots {
			if !yield(s.On) {
				return
			}
		}
	}
}

// DatesBetween returns an iterator over the snapshot dates within the
// range, boundaries included, in chronological order.
func (ix *RecordIndex) DatesBetween(r Range) iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for _, s := range ix.snapshots {
			if s.On.Before(r.From) {
				continue
			}
			if s.On.After(r.To) {
				return
			}
			if !yield(s.On) {
				return
			}
		}
	}
}

// Contains reports whether a snapshot exists at the given date.
func (ix *RecordIndex) Contains(on Date) bool {
	_, ok := ix.byDate[on]
	return ok
}

// ClosestAtOrBefore returns the date of the latest snapshot at or before
// target, if any. This is the lookup callers use to pick the prior view of
// a lookback growth calculation.
func (ix *RecordIndex) ClosestAtOrBefore(target Date) (Date, bool) {
	i, found := slices.BinarySearchFunc(ix.snapshots, target, func(s Snapshot, d Date) int {
		return s.On.Compare(d)
	})
	if found {
		return ix.snapshots[i].On, true
	}
	if i == 0 {
		return Date{}, false
	}
	return ix.snapshots[i-1].On, true
}

// Platforms returns the display identifiers of every platform observed
// anywhere in the input, in normalized order.
func (ix *RecordIndex) Platforms() []string {
	names := make([]string, 0, len(ix.platforms))
	for _, key := range ix.platforms {
		names = append(names, ix.timelines[key].platform)
	}
	return names
}
