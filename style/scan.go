// Package style parses CSS-inspired value strings into typed UI style
// values: angles, dimensions, colors and box-shorthand rects.
//
// Every grammar follows the same shape: an unexported parser consumes the
// longest matching prefix and returns the value, the unconsumed remainder
// and a success flag, leaving the input untouched on failure. The exported
// Parse* entry points require full consumption of the input apart from
// boundary whitespace and collapse every failure into a plain "no value"
// result.
package style

import (
	"errors"
	"strconv"
	"strings"
)

// Whitespace accepted between and around tokens.
const spaceCutset = " \t\r\n"

func skipSpace(s string) string {
	return strings.TrimLeft(s, spaceCutset)
}

// scanFloat consumes the longest signed decimal float literal prefix of s.
// Accepted forms: -?D+, -?D+.D*, -?.D+ with at least one digit present;
// exponents and a leading + are not part of the grammar. Whitespace handling
// is the caller's job.
func scanFloat(s string) (float32, string, bool) {
	n := 0
	if n < len(s) && s[n] == '-' {
		n++
	}
	digits := 0
	for n < len(s) && isDigit(s[n]) {
		n++
		digits++
	}
	if n < len(s) && s[n] == '.' {
		n++
		for n < len(s) && isDigit(s[n]) {
			n++
			digits++
		}
	}
	if digits == 0 {
		return 0, s, false
	}
	v, err := strconv.ParseFloat(s[:n], 32)
	if err != nil {
		// a scanned prefix cannot be malformed, but it can overflow;
		// out-of-range literals saturate to ±Inf
		if !errors.Is(err, strconv.ErrRange) {
			return 0, s, false
		}
	}
	return float32(v), s[n:], true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// formatFloat renders v as the shortest plain decimal literal that parses
// back to the same float32. The 'f' format keeps the output inside the
// grammar this package accepts (no exponents).
func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}
