package missions

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseYear reads the leading integer of raw. Leading Unicode whitespace
// or byte order marks and a single sign are accepted, and trailing
// characters are ignored, so "1957.0" and "1957 " both yield 1957. Input
// without leading digits, or digits that overflow int, yields 0.
func ParseYear(raw string) int {
	s := strings.TrimLeftFunc(raw, isYearSpace)
	negative := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	if negative {
		return -n
	}
	return n
}

// isYearSpace matches Unicode white space and the byte order mark, both
// of which precede years in exported spreadsheets.
func isYearSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\ufeff'
}
