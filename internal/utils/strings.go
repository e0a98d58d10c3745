package utils

import "strings"

// IsDigits reports whether s consists of exactly n ASCII digits.
func IsDigits(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// IsNotApplicable reports whether a contact field was filled with an
// explicit "no value" marker instead of a number.
func IsNotApplicable(s string) bool {
	v := strings.ToUpper(strings.TrimSpace(s))
	return v == "NA" || v == "N/A"
}
