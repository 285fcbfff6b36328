// Package scan provides small cursor-style helpers for pulling numbers and
// literals off the front of a string.
package scan

import "strings"

// Decimal reads the leading run of ASCII digits from s and returns its
// value together with the unconsumed remainder. Scanning stops at the first
// non-digit, so "1_000_000" yields 1 with rest "_000_000". ok is false when
// s does not start with a digit.
func Decimal(s string) (n int, rest string, ok bool) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		n = n*10 + int(s[i]-'0')
		i++
	}
	return n, s[i:], i > 0
}

// Int is Decimal with an optional leading minus sign.
func Int(s string) (n int, rest string, ok bool) {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	n, rest, ok = Decimal(s)
	if neg {
		n = -n
	}
	return n, rest, ok
}

// Literal consumes an exact prefix.
func Literal(s, prefix string) (rest string, ok bool) {
	if !strings.HasPrefix(s, prefix) {
		return s, false
	}
	return s[len(prefix):], true
}

// CountDigits returns the number of decimal digits of n. n must be
// non-negative; CountDigits(0) is 1.
func CountDigits(n int) int {
	digits := 1
	for n >= 10 {
		n /= 10
		digits++
	}
	return digits
}
