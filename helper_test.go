package valuation

import "testing"

// Test fixtures share one display currency, as the engine's contract
// assumes conversion happened upstream.

func eur(v float64) Money { return M(v, "EUR") }

func av(name, platform, category string, value float64) AssetValue {
	return AssetValue{Name: name, Platform: platform, Category: category, Value: eur(value)}
}

func snap(date string, values ...AssetValue) Snapshot {
	return Snapshot{On: MustDate(date), Values: values}
}

func flow(date string, amount float64, desc string) CashFlow {
	return CashFlow{Date: MustDate(date), Amount: eur(amount), Description: desc}
}

func mustIndex(t *testing.T, snapshots ...Snapshot) *RecordIndex {
	t.Helper()
	ix, err := NewRecordIndex(snapshots)
	if err != nil {
		t.Fatalf("NewRecordIndex() error = %v", err)
	}
	return ix
}

func mustResolve(t *testing.T, ix *RecordIndex, date string) *CompositeView {
	t.Helper()
	view, err := ix.Resolve(MustDate(date))
	if err != nil {
		t.Fatalf("Resolve(%s) error = %v", date, err)
	}
	return view
}
