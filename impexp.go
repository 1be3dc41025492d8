package valuation

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// RecordSet is the fully materialized input universe of the engine: the
// display currency, the category reference data, the snapshots, and the
// external cash flows.
type RecordSet struct {
	Currency   string
	Categories []Category
	Snapshots  []Snapshot
	CashFlows  []CashFlow
}

// Index builds the record index over the set's snapshots.
func (rs *RecordSet) Index() (*RecordIndex, error) {
	return NewRecordIndex(rs.Snapshots)
}

// DecodeRecords reads an exported portfolio document (JSON) into a
// RecordSet.
//
// Fields are extracted by path rather than by rigid struct decoding, so a
// document whose envelope gained extra keys between app versions still
// loads. Validation gates (duplicate dates) run at index construction, not
// here.
func DecodeRecords(r io.Reader) (*RecordSet, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("decoding records document: %w", err)
	}

	rs := &RecordSet{}
	cur, err := jsonpath.Get("$.currency", jobj)
	if err != nil {
		return nil, fmt.Errorf("records document has no currency: %w", err)
	}
	rs.Currency, _ = cur.(string)
	if rs.Currency == "" {
		return nil, fmt.Errorf("records document has an empty currency")
	}

	if jcats, err := jsonpath.Get("$.categories[*]", jobj); err == nil {
		for i, jc := range asList(jcats) {
			c, err := decodeCategory(jc)
			if err != nil {
				return nil, fmt.Errorf("category %d: %w", i, err)
			}
			rs.Categories = append(rs.Categories, c)
		}
	}

	jsnaps, err := jsonpath.Get("$.snapshots[*]", jobj)
	if err != nil {
		return nil, fmt.Errorf("records document has no snapshots: %w", err)
	}
	for i, js := range asList(jsnaps) {
		s, err := decodeSnapshot(js, rs.Currency)
		if err != nil {
			return nil, fmt.Errorf("snapshot %d: %w", i, err)
		}
		rs.Snapshots = append(rs.Snapshots, s)
	}

	if jflows, err := jsonpath.Get("$.cashflows[*]", jobj); err == nil {
		for i, jf := range asList(jflows) {
			f, err := decodeCashFlow(jf, rs.Currency)
			if err != nil {
				return nil, fmt.Errorf("cash flow %d: %w", i, err)
			}
			rs.CashFlows = append(rs.CashFlows, f)
		}
	}

	return rs, nil
}

// asList normalizes a jsonpath result, which may come back as a single
// answer or a list of answers.
func asList(jval any) []any {
	if jlist, ok := jval.([]any); ok {
		return jlist
	}
	return []any{jval}
}

func decodeCategory(jc any) (Category, error) {
	obj, ok := jc.(map[string]any)
	if !ok {
		return Category{}, fmt.Errorf("not an object")
	}
	name, _ := obj["name"].(string)
	if name == "" {
		return Category{}, fmt.Errorf("missing name")
	}
	c := Category{Name: name}
	if jt, ok := obj["target"]; ok && jt != nil {
		target, err := decodeDecimal(jt)
		if err != nil {
			return Category{}, fmt.Errorf("target of %q: %w", name, err)
		}
		p := P(target)
		c.Target = &p
	}
	return c, nil
}

func decodeSnapshot(js any, currency string) (Snapshot, error) {
	obj, ok := js.(map[string]any)
	if !ok {
		return Snapshot{}, fmt.Errorf("not an object")
	}
	dateStr, _ := obj["date"].(string)
	on, err := ParseDate(dateStr)
	if err != nil {
		return Snapshot{}, err
	}
	s := Snapshot{On: on}
	values, _ := obj["values"].([]any)
	for i, jv := range values {
		av, err := decodeAssetValue(jv, currency)
		if err != nil {
			return Snapshot{}, fmt.Errorf("value %d: %w", i, err)
		}
		s.Values = append(s.Values, av)
	}
	return s, nil
}

func decodeAssetValue(jv any, currency string) (AssetValue, error) {
	obj, ok := jv.(map[string]any)
	if !ok {
		return AssetValue{}, fmt.Errorf("not an object")
	}
	av := AssetValue{}
	av.Name, _ = obj["asset"].(string)
	av.Platform, _ = obj["platform"].(string)
	av.Category, _ = obj["category"].(string)
	if av.Name == "" || av.Platform == "" {
		return AssetValue{}, fmt.Errorf("missing asset or platform")
	}
	amount, err := decodeDecimal(obj["amount"])
	if err != nil {
		return AssetValue{}, fmt.Errorf("amount of %q: %w", av.Name, err)
	}
	av.Value = M(amount, currency)
	return av, nil
}

func decodeCashFlow(jf any, currency string) (CashFlow, error) {
	obj, ok := jf.(map[string]any)
	if !ok {
		return CashFlow{}, fmt.Errorf("not an object")
	}
	dateStr, _ := obj["date"].(string)
	on, err := ParseDate(dateStr)
	if err != nil {
		return CashFlow{}, err
	}
	amount, err := decodeDecimal(obj["amount"])
	if err != nil {
		return CashFlow{}, fmt.Errorf("amount: %w", err)
	}
	desc, _ := obj["description"].(string)
	return CashFlow{Date: on, Amount: M(amount, currency), Description: desc}, nil
}

// decodeDecimal accepts an amount encoded either as a JSON number or as a
// string, the two shapes exports have used.
func decodeDecimal(jval any) (decimal.Decimal, error) {
	switch v := jval.(type) {
	case string:
		return decimal.NewFromString(v)
	case float64:
		return decimal.NewFromFloat(v), nil
	case json.Number:
		return decimal.NewFromString(v.String())
	default:
		return decimal.Decimal{}, fmt.Errorf("not a number: %v", jval)
	}
}

// --- encode ---

type recordsDoc struct {
	Currency   string        `json:"currency"`
	Categories []categoryDoc `json:"categories,omitempty"`
	Snapshots  []snapshotDoc `json:"snapshots"`
	CashFlows  []cashFlowDoc `json:"cashflows,omitempty"`
}

type categoryDoc struct {
	Name   string           `json:"name"`
	Target *decimal.Decimal `json:"target,omitempty"`
}

type snapshotDoc struct {
	Date   Date            `json:"date"`
	Values []assetValueDoc `json:"values"`
}

type assetValueDoc struct {
	Asset    string          `json:"asset"`
	Platform string          `json:"platform"`
	Category string          `json:"category,omitempty"`
	Amount   decimal.Decimal `json:"amount"`
}

type cashFlowDoc struct {
	Date        Date            `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
}

// EncodeRecords writes the record set back in its canonical document form.
func EncodeRecords(w io.Writer, rs *RecordSet) error {
	doc := recordsDoc{Currency: rs.Currency}
	for _, c := range rs.Categories {
		cd := categoryDoc{Name: c.Name}
		if c.Target != nil {
			t := c.Target.Decimal()
			cd.Target = &t
		}
		doc.Categories = append(doc.Categories, cd)
	}
	for _, s := range rs.Snapshots {
		sd := snapshotDoc{Date: s.On}
		for _, v := range s.Values {
			sd.Values = append(sd.Values, assetValueDoc{
				Asset:    v.Name,
				Platform: v.Platform,
				Category: v.Category,
				Amount:   v.Value.Amount(),
			})
		}
		doc.Snapshots = append(doc.Snapshots, sd)
	}
	for _, f := range rs.CashFlows {
		doc.CashFlows = append(doc.CashFlows, cashFlowDoc{
			Date:        f.Date,
			Amount:      f.Amount.Amount(),
			Description: f.Description,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
