// Package sanitize validates and normalizes the fixed-width numeric
// identifiers of the roster (account number, managing branch). Violations
// are collected across the whole dataset so a user sees every bad row at
// once instead of fixing them one by one.
package sanitize

import (
	"strings"

	"pfgen/internal/rostererror"
)

// Sanitize trims each value and left-pads all-digit values shorter than
// width with zeros. Values that are not all-digit, or longer than width,
// are returned unchanged. invalid[i] is true when the returned value is
// not exactly width digits.
func Sanitize(values []string, width int) (padded []string, invalid []bool) {
	padded = make([]string, len(values))
	invalid = make([]bool, len(values))
	for i, v := range values {
		v = strings.TrimSpace(v)
		if isDigits(v) && len(v) <= width {
			v = strings.Repeat("0", width-len(v)) + v
		}
		padded[i] = v
		invalid[i] = len(v) != width || !isDigits(v)
	}
	return padded, invalid
}

// Violations runs Sanitize and returns one entry per invalid value, with
// 1-based row indices and the value as read (before padding), ready for
// error reporting.
func Violations(values []string, width int) []rostererror.Violation {
	_, invalid := Sanitize(values, width)
	var violations []rostererror.Violation
	for i, bad := range invalid {
		if bad {
			violations = append(violations, rostererror.Violation{
				Row:   i + 1,
				Value: values[i],
			})
		}
	}
	return violations
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
