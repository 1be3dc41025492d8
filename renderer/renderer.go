// Package renderer turns the engine's value objects into markdown
// reports. It owns presentation concerns only: the engine stays free of
// formatting, and unavailability reasons are rendered as short
// reason-specific placeholders.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/nao1215/markdown"

	"github.com/quanterra/valuation"
)

// metric renders an available metric as a signed percentage and an
// unavailable one as its reason placeholder.
func metric(m valuation.Metric) string {
	if !m.Available() {
		return fmt.Sprintf("n/a (%s)", m.Reason().Label())
	}
	return m.Percent().SignedString()
}

// ViewMarkdown renders a composite snapshot view: every included platform
// with its total and provenance, then the category totals.
func ViewMarkdown(v *valuation.CompositeView) string {
	var buf bytes.Buffer
	doc := markdown.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Portfolio on %s", v.On()))
	doc.PlainText(fmt.Sprintf("Total value: %s", v.Total()))

	doc.H2("Platforms")
	platforms := markdown.TableSet{
		Alignment: []markdown.TableAlignment{
			markdown.AlignLeft,
			markdown.AlignRight,
			markdown.AlignLeft,
		},
		Header: []string{"Platform", "Value", "Source"},
		Rows:   [][]string{},
	}
	for _, pv := range v.Platforms() {
		platforms.Rows = append(platforms.Rows, []string{
			pv.Platform,
			pv.Total.String(),
			pv.Source.String(),
		})
	}
	doc.Table(platforms)

	doc.H2("Categories")
	categories := markdown.TableSet{
		Alignment: []markdown.TableAlignment{
			markdown.AlignLeft,
			markdown.AlignRight,
		},
		Header: []string{"Category", "Value"},
		Rows:   [][]string{},
	}
	for name, total := range v.Categories() {
		categories.Rows = append(categories.Rows, []string{name, total.String()})
	}
	doc.Table(categories)

	return doc.String()
}

// PerformanceMarkdown renders a performance report: the composite total
// and the period metrics, one row per metric.
func PerformanceMarkdown(r *valuation.PerformanceReport) string {
	var buf bytes.Buffer
	doc := markdown.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Performance on %s", r.View.On()))
	doc.PlainText(fmt.Sprintf("Total value: %s", r.View.Total()))

	table := markdown.TableSet{
		Alignment: []markdown.TableAlignment{
			markdown.AlignLeft,
			markdown.AlignRight,
		},
		Header: []string{"Period", "Return"},
		Rows:   [][]string{},
	}
	for _, lb := range valuation.Lookbacks {
		table.Rows = append(table.Rows, []string{lb.String(), metric(r.Growth[lb])})
	}
	table.Rows = append(table.Rows,
		[]string{"TWR (inception)", metric(r.TWR)},
		[]string{"CAGR (inception)", metric(r.CAGR)},
	)
	doc.Table(table)

	return doc.String()
}

// RebalanceMarkdown renders a rebalance plan: actionable suggestions in
// their imbalance order, then the informational category weights.
func RebalanceMarkdown(p *valuation.RebalancePlan) string {
	var buf bytes.Buffer
	doc := markdown.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Rebalancing on %s", p.On))

	if !p.Available() {
		doc.PlainText(fmt.Sprintf("No plan: %s.", p.Reason().Label()))
		return doc.String()
	}

	doc.PlainText(fmt.Sprintf("Total value: %s", p.Total))

	if len(p.Suggestions) > 0 {
		doc.H2("Suggestions")
		table := markdown.TableSet{
			Alignment: []markdown.TableAlignment{
				markdown.AlignLeft,
				markdown.AlignRight,
				markdown.AlignRight,
				markdown.AlignRight,
				markdown.AlignRight,
			},
			Header: []string{"Category", "Current", "Target", "Delta", "Adjustment"},
			Rows:   [][]string{},
		}
		for _, s := range p.Suggestions {
			table.Rows = append(table.Rows, []string{
				s.Category,
				s.Current.String(),
				s.Target.String(),
				s.Delta.SignedString(),
				s.Adjustment.SignedString(),
			})
		}
		doc.Table(table)
	}

	if len(p.Informational) > 0 {
		doc.H2("Without target")
		table := markdown.TableSet{
			Alignment: []markdown.TableAlignment{
				markdown.AlignLeft,
				markdown.AlignRight,
				markdown.AlignRight,
			},
			Header: []string{"Category", "Value", "Weight"},
			Rows:   [][]string{},
		}
		for _, w := range p.Informational {
			table.Rows = append(table.Rows, []string{
				w.Category,
				w.Value.String(),
				w.Current.String(),
			})
		}
		doc.Table(table)
	}

	return doc.String()
}
