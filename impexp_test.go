package valuation

import (
	"bytes"
	"strings"
	"testing"
)

const recordsDocJSON = `{
  "version": 3,
  "currency": "EUR",
  "categories": [
    {"name": "Equity", "target": 60},
    {"name": "Cash"}
  ],
  "snapshots": [
    {
      "date": "2025-01-31",
      "values": [
        {"asset": "World ETF", "platform": "Broker A", "category": "Equity", "amount": "1000.50"},
        {"asset": "Checking", "platform": "Bank", "category": "Cash", "amount": 499.50}
      ]
    },
    {
      "date": "2025-02-28",
      "values": [
        {"asset": "World ETF", "platform": "Broker A", "category": "Equity", "amount": "1100"}
      ]
    }
  ],
  "cashflows": [
    {"date": "2025-02-10", "amount": "250", "description": "monthly savings"}
  ]
}`

func TestDecodeRecords(t *testing.T) {
	rs, err := DecodeRecords(strings.NewReader(recordsDocJSON))
	if err != nil {
		t.Fatalf("DecodeRecords() error = %v", err)
	}

	if got, want := rs.Currency, "EUR"; got != want {
		t.Errorf("Currency = %q, want %q", got, want)
	}
	if len(rs.Categories) != 2 {
		t.Fatalf("Categories = %d, want 2", len(rs.Categories))
	}
	if rs.Categories[0].Target == nil || !rs.Categories[0].Target.Equal(P(60)) {
		t.Errorf("Equity target = %v, want 60%%", rs.Categories[0].Target)
	}
	if rs.Categories[1].Target != nil {
		t.Errorf("Cash target = %v, want unset", rs.Categories[1].Target)
	}
	if len(rs.Snapshots) != 2 {
		t.Fatalf("Snapshots = %d, want 2", len(rs.Snapshots))
	}
	if len(rs.CashFlows) != 1 || !rs.CashFlows[0].Amount.Equal(eur(250)) {
		t.Fatalf("CashFlows = %v, want one +250 flow", rs.CashFlows)
	}

	// The decoded set feeds straight into the engine.
	ix, err := rs.Index()
	if err != nil {
		t.Fatalf("Index() error = %v", err)
	}
	view := mustResolve(t, ix, "2025-02-28")
	// Bank is carried forward from 2025-01-31: 1100 + 499.50.
	if got, want := view.Total(), eur(1599.50); !got.Equal(want) {
		t.Errorf("Total() = %v, want %v", got, want)
	}
}

func TestDecodeRecords_MissingCurrency(t *testing.T) {
	_, err := DecodeRecords(strings.NewReader(`{"snapshots": []}`))
	if err == nil {
		t.Fatal("DecodeRecords() error = nil, want missing-currency error")
	}
}

func TestEncodeRecords_RoundTrip(t *testing.T) {
	in, err := DecodeRecords(strings.NewReader(recordsDocJSON))
	if err != nil {
		t.Fatalf("DecodeRecords() error = %v", err)
	}

	var buf bytes.Buffer
	if err := EncodeRecords(&buf, in); err != nil {
		t.Fatalf("EncodeRecords() error = %v", err)
	}
	out, err := DecodeRecords(&buf)
	if err != nil {
		t.Fatalf("DecodeRecords(encoded) error = %v", err)
	}

	if out.Currency != in.Currency {
		t.Errorf("currency = %q, want %q", out.Currency, in.Currency)
	}
	if len(out.Snapshots) != len(in.Snapshots) {
		t.Fatalf("snapshots = %d, want %d", len(out.Snapshots), len(in.Snapshots))
	}
	for i := range in.Snapshots {
		if out.Snapshots[i].On != in.Snapshots[i].On {
			t.Errorf("snapshot %d date = %v, want %v", i, out.Snapshots[i].On, in.Snapshots[i].On)
		}
		if len(out.Snapshots[i].Values) != len(in.Snapshots[i].Values) {
			t.Fatalf("snapshot %d values = %d, want %d", i, len(out.Snapshots[i].Values), len(in.Snapshots[i].Values))
		}
		for j, v := range in.Snapshots[i].Values {
			if !out.Snapshots[i].Values[j].Value.Equal(v.Value) {
				t.Errorf("snapshot %d value %d = %v, want %v", i, j, out.Snapshots[i].Values[j].Value, v.Value)
			}
		}
	}
	if len(out.CashFlows) != 1 || !out.CashFlows[0].Amount.Equal(in.CashFlows[0].Amount) {
		t.Errorf("cash flows = %v, want %v", out.CashFlows, in.CashFlows)
	}
}
