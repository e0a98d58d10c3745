package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a raw user-entered numeric field. Blank or unparsable
// input degrades to zero so arithmetic never fails; the raw text stays in
// the draft untouched.
func ParseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParseAmountStrict parses a numeric field and reports whether it parsed.
// Used where "unset" and "zero" must stay distinguishable (KM difference).
func ParseAmountStrict(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// FormatAmount renders money/KM values with exactly two fraction digits,
// the form the persistence layer expects.
func FormatAmount(d decimal.Decimal) string {
	return d.Round(2).StringFixed(2)
}
