package valuation

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want Date
		ok   bool
	}{
		{"2025-01-31", NewDate(2025, time.January, 31), true},
		{"2025-7-1", NewDate(2025, time.July, 1), true},
		{" 2025-02-28 ", NewDate(2025, time.February, 28), true},
		{"31/01/2025", Date{}, false},
		{"", Date{}, false},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.in)
		if (err == nil) != tt.ok {
			t.Errorf("ParseDate(%q) error = %v, want ok=%v", tt.in, err, tt.ok)
			continue
		}
		if tt.ok && got != tt.want {
			t.Errorf("ParseDate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDate_Arithmetic(t *testing.T) {
	d := NewDate(2025, time.March, 15)

	if got, want := d.Add(20), NewDate(2025, time.April, 4); got != want {
		t.Errorf("Add(20) = %v, want %v", got, want)
	}
	if got, want := d.AddMonth(-1), NewDate(2025, time.February, 15); got != want {
		t.Errorf("AddMonth(-1) = %v, want %v", got, want)
	}
	if got, want := d.AddYear(-1), NewDate(2024, time.March, 15); got != want {
		t.Errorf("AddYear(-1) = %v, want %v", got, want)
	}
	if got, want := d.Sub(NewDate(2025, time.March, 1)), 14; got != want {
		t.Errorf("Sub() = %d, want %d", got, want)
	}
	if got, want := NewDate(2025, time.March, 1).Sub(d), -14; got != want {
		t.Errorf("Sub() reversed = %d, want %d", got, want)
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	in := NewDate(2025, time.August, 26)
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if got, want := string(data), `"2025-08-26"`; got != want {
		t.Errorf("Marshal() = %s, want %s", got, want)
	}
	var out Date
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if out != in {
		t.Errorf("round trip = %v, want %v", out, in)
	}
}

func TestRange(t *testing.T) {
	r := NewRange(MustDate("2025-01-10"), MustDate("2025-01-01"))
	if r.From.After(r.To) {
		t.Fatalf("NewRange did not swap reversed bounds: %v", r)
	}
	if got, want := r.Days(), 9; got != want {
		t.Errorf("Days() = %d, want %d", got, want)
	}
	for _, tt := range []struct {
		date string
		want bool
	}{
		{"2025-01-01", true},
		{"2025-01-10", true},
		{"2025-01-05", true},
		{"2024-12-31", false},
		{"2025-01-11", false},
	} {
		if got := r.Contains(MustDate(tt.date)); got != tt.want {
			t.Errorf("Contains(%s) = %v, want %v", tt.date, got, tt.want)
		}
	}
}
