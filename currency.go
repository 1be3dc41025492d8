package valuation

import (
	"fmt"

	"github.com/Rhymond/go-money"
)

// CurrencyInfo is the immutable metadata of one currency: its ISO code,
// display grapheme, and the number of fraction digits used at display time.
type CurrencyInfo struct {
	Code     string
	Grapheme string
	Fraction int
}

// CurrencyTable is an immutable reference table of currency metadata.
//
// It is constructed once at process start and passed by reference to any
// consumer that needs display metadata. There is no package-level mutable
// state behind it.
type CurrencyTable struct {
	byCode map[string]CurrencyInfo
}

// NewCurrencyTable builds a table for the given ISO codes from the
// go-money currency registry. Unknown codes are an error: the display
// currency of a record set must be well defined before any rendering.
func NewCurrencyTable(codes ...string) (*CurrencyTable, error) {
	t := &CurrencyTable{byCode: make(map[string]CurrencyInfo, len(codes))}
	for _, code := range codes {
		c := money.GetCurrency(code)
		if c == nil {
			return nil, fmt.Errorf("unknown currency code %q", code)
		}
		t.byCode[code] = CurrencyInfo{Code: c.Code, Grapheme: c.Grapheme, Fraction: c.Fraction}
	}
	return t, nil
}

// Get returns the metadata for a code, and whether it is in the table.
func (t *CurrencyTable) Get(code string) (CurrencyInfo, bool) {
	info, ok := t.byCode[code]
	return info, ok
}

// Has reports whether the table knows the code.
func (t *CurrencyTable) Has(code string) bool {
	_, ok := t.byCode[code]
	return ok
}
