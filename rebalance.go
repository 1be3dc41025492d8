package valuation

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Suggestion is one actionable rebalancing adjustment for a category with
// a defined target allocation. A positive adjustment is a buy, a negative
// one a sell.
type Suggestion struct {
	Category   string
	Target     Percent
	Current    Percent
	Delta      Percent // Target - Current
	Adjustment Money   // Delta/100 × grand total
}

// CategoryWeight reports the current weight of a category without a
// target. It is informational, never actionable.
type CategoryWeight struct {
	Category string
	Value    Money
	Current  Percent
}

// RebalancePlan holds the suggestions derived from comparing a composite
// view against the category targets.
//
// Suggestions are ordered by absolute delta descending (largest imbalance
// first); exact ties break by category identifier ascending. When the
// view's grand total is zero no weight is defined and the whole plan is
// unavailable.
type RebalancePlan struct {
	On            Date
	Total         Money
	Suggestions   []Suggestion
	Informational []CategoryWeight
	reason        Reason
	ok            bool
}

// Available reports whether the plan holds computable suggestions.
func (p *RebalancePlan) Available() bool { return p.ok }

// Reason returns why the plan is unavailable, or 0 when it is available.
func (p *RebalancePlan) Reason() Reason {
	if p.ok {
		return 0
	}
	return p.reason
}

// Rebalance compares the current category allocations of a composite view
// to the target allocations and emits suggested adjustments.
//
// Every category with a target produces a suggestion, including ones with
// zero current holdings (a full buy). Categories without a target are
// reported separately as informational weights.
func Rebalance(view *CompositeView, categories []Category) *RebalancePlan {
	plan := &RebalancePlan{On: view.On(), Total: view.Total()}
	total := view.Total().Amount()
	if total.IsZero() {
		plan.reason = DivisionByZero
		return plan
	}
	plan.ok = true

	hundred := decimal.NewFromInt(100)
	for _, c := range categories {
		value := view.CategoryTotal(c.Name)
		current := P(value.Amount().Div(total).Mul(hundred))

		if c.Target == nil {
			plan.Informational = append(plan.Informational, CategoryWeight{
				Category: c.Name,
				Value:    value,
				Current:  current,
			})
			continue
		}

		delta := P(c.Target.Decimal().Sub(current.Decimal()))
		plan.Suggestions = append(plan.Suggestions, Suggestion{
			Category:   c.Name,
			Target:     *c.Target,
			Current:    current,
			Delta:      delta,
			Adjustment: view.Total().Mul(delta.Decimal().Div(hundred)),
		})
	}

	sort.SliceStable(plan.Suggestions, func(i, j int) bool {
		a, b := plan.Suggestions[i].Delta.Abs().Decimal(), plan.Suggestions[j].Delta.Abs().Decimal()
		if !a.Equal(b) {
			return a.GreaterThan(b)
		}
		return plan.Suggestions[i].Category < plan.Suggestions[j].Category
	})
	sort.SliceStable(plan.Informational, func(i, j int) bool {
		return plan.Informational[i].Category < plan.Informational[j].Category
	})

	return plan
}
