package token

import "strings"

// SplitUnquoted splits s by delim at positions outside double quotes and
// trims surrounding whitespace from every cell. Backslash escapes inside
// quotes are honored, so a quoted cell may contain the delimiter or
// escaped quotes. A trailing delimiter yields a trailing empty cell.
func SplitUnquoted(s string, delim Delim) []string {
	res := make([]string, 0, strings.Count(s, string(byte(delim)))+1)
	start := 0
	inQuotes := false
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '\\' && inQuotes:
			i++
		case c == '"':
			inQuotes = !inQuotes
		case c == byte(delim) && !inQuotes:
			res = append(res, strings.TrimSpace(s[start:i]))
			start = i + 1
		}
	}
	return append(res, strings.TrimSpace(s[start:]))
}

// FirstUnquoted returns the index of the first occurrence of c in s that
// lies outside double quotes, or -1. The tabular-row lookahead and key
// splitting are built on it.
func FirstUnquoted(s string, c byte) int {
	inQuotes := false
	for i := 0; i < len(s); i++ {
		switch b := s[i]; {
		case b == '\\' && inQuotes:
			i++
		case b == '"':
			inQuotes = !inQuotes
		case b == c && !inQuotes:
			return i
		}
	}
	return -1
}
