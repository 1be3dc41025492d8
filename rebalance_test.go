package valuation

import (
	"testing"
)

func rebalanceFixture(t *testing.T) *CompositeView {
	t.Helper()
	ix := mustIndex(t,
		snap("2025-06-30",
			av("World ETF", "Broker", "Equity", 700),
			av("Bond Fund", "Broker", "Bonds", 200),
			av("Checking", "Bank", "Cash", 100),
		),
	)
	return mustResolve(t, ix, "2025-06-30")
}

func TestRebalance_AdjustmentsSumToZero(t *testing.T) {
	// Targets cover the full portfolio (60+30+10 = 100), so the suggested
	// adjustments must cancel out exactly.
	view := rebalanceFixture(t)
	plan := Rebalance(view, []Category{
		NewTargetedCategory("Equity", P(60)),
		NewTargetedCategory("Bonds", P(30)),
		NewTargetedCategory("Cash", P(10)),
	})
	if !plan.Available() {
		t.Fatalf("Rebalance() = unavailable(%v), want available", plan.Reason())
	}
	if len(plan.Suggestions) != 3 {
		t.Fatalf("Suggestions = %d, want 3", len(plan.Suggestions))
	}

	sum := eur(0)
	for _, s := range plan.Suggestions {
		sum = sum.Add(s.Adjustment)
	}
	if !sum.IsZero() {
		t.Errorf("adjustments sum = %v, want zero", sum)
	}
}

func TestRebalance_SuggestionArithmetic(t *testing.T) {
	view := rebalanceFixture(t) // total 1000: Equity 70%, Bonds 20%, Cash 10%
	plan := Rebalance(view, []Category{
		NewTargetedCategory("Equity", P(60)),
		NewTargetedCategory("Bonds", P(30)),
	})

	byCategory := map[string]Suggestion{}
	for _, s := range plan.Suggestions {
		byCategory[s.Category] = s
	}

	equity := byCategory["Equity"]
	if want := P(70); !equity.Current.Equal(want) {
		t.Errorf("Equity current = %v, want %v", equity.Current, want)
	}
	if want := P(-10); !equity.Delta.Equal(want) {
		t.Errorf("Equity delta = %v, want %v", equity.Delta, want)
	}
	if want := eur(-100); !equity.Adjustment.Equal(want) { // sell 100
		t.Errorf("Equity adjustment = %v, want %v", equity.Adjustment, want)
	}

	bonds := byCategory["Bonds"]
	if want := eur(100); !bonds.Adjustment.Equal(want) { // buy 100
		t.Errorf("Bonds adjustment = %v, want %v", bonds.Adjustment, want)
	}
}

func TestRebalance_ZeroHoldingIsFullBuy(t *testing.T) {
	view := rebalanceFixture(t)
	plan := Rebalance(view, []Category{
		NewTargetedCategory("Commodities", P(5)),
	})
	if len(plan.Suggestions) != 1 {
		t.Fatalf("Suggestions = %d, want 1", len(plan.Suggestions))
	}
	s := plan.Suggestions[0]
	if !s.Current.IsZero() {
		t.Errorf("current = %v, want zero", s.Current)
	}
	if want := eur(50); !s.Adjustment.Equal(want) { // 5% of 1000
		t.Errorf("adjustment = %v, want full buy of %v", s.Adjustment, want)
	}
}

func TestRebalance_Ordering(t *testing.T) {
	view := rebalanceFixture(t) // Equity 70%, Bonds 20%, Cash 10%
	plan := Rebalance(view, []Category{
		NewTargetedCategory("Cash", P(10)),   // delta 0
		NewTargetedCategory("Equity", P(60)), // delta -10
		NewTargetedCategory("Bonds", P(30)),  // delta +10
		NewTargetedCategory("Gold", P(25)),   // delta +25, largest
	})

	var got []string
	for _, s := range plan.Suggestions {
		got = append(got, s.Category)
	}
	// Largest absolute imbalance first; the |±10| tie breaks by category
	// identifier ascending.
	want := []string{"Gold", "Bonds", "Equity", "Cash"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Suggestions order = %v, want %v", got, want)
		}
	}
}

func TestRebalance_UntargetedIsInformational(t *testing.T) {
	view := rebalanceFixture(t)
	plan := Rebalance(view, []Category{
		NewTargetedCategory("Equity", P(60)),
		NewCategory("Cash"),
	})
	if len(plan.Suggestions) != 1 {
		t.Fatalf("Suggestions = %d, want 1", len(plan.Suggestions))
	}
	if len(plan.Informational) != 1 {
		t.Fatalf("Informational = %d, want 1", len(plan.Informational))
	}
	info := plan.Informational[0]
	if info.Category != "Cash" {
		t.Errorf("informational category = %q, want Cash", info.Category)
	}
	if want := P(10); !info.Current.Equal(want) {
		t.Errorf("Cash weight = %v, want %v", info.Current, want)
	}
}

func TestRebalance_ZeroTotalIsUnavailable(t *testing.T) {
	ix := mustIndex(t,
		snap("2025-06-30", av("Empty", "Broker", "Equity", 0)),
	)
	view := mustResolve(t, ix, "2025-06-30")
	plan := Rebalance(view, []Category{NewTargetedCategory("Equity", P(60))})
	if plan.Available() || plan.Reason() != DivisionByZero {
		t.Errorf("Rebalance() availability = %v/%v, want unavailable(%v)",
			plan.Available(), plan.Reason(), DivisionByZero)
	}
	if len(plan.Suggestions) != 0 {
		t.Errorf("Suggestions = %d, want none on an empty total", len(plan.Suggestions))
	}
}
