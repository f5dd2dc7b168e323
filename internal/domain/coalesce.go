package domain

import (
	"strconv"
	"strings"
)

// CoalesceStr returns the first non-empty string from vals.
func CoalesceStr(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// LeadingInt parses the leading base-10 integer of s after skipping leading
// whitespace, ignoring any trailing text ("3 kids" -> 3). It returns the
// fallback when s has no leading digits or the value is negative.
func LeadingInt(s string, fallback int) int {
	s = strings.TrimLeft(s, " \t\r\n")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return fallback
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil || n < 0 {
		return fallback
	}
	return n
}

func normalizeEnum(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s)
}

func quote(s string) string {
	return strconv.Quote(s)
}
