package token

import "strings"

// NumericLike reports whether s matches the decimal grammar
// -?DIGITS(.DIGITS)?((e|E)(+|-)?DIGITS)? with any digit run allowed, so
// leading-zero forms like 05 also match. The encoder quotes any string
// value for which this holds.
func NumericLike(s string) bool {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	n := asciiDigits(s[i:])
	if n == 0 {
		return false
	}
	i += n
	if i < len(s) && s[i] == '.' {
		i++
		n = asciiDigits(s[i:])
		if n == 0 {
			return false
		}
		i += n
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		n = asciiDigits(s[i:])
		if n == 0 {
			return false
		}
		i += n
	}
	return i == len(s)
}

// HasLeadingZero reports whether the integer part of s starts with a
// forbidden zero: 05 and -007 do, 0 and 0.5 do not. Such tokens decode as
// strings, never numbers.
func HasLeadingZero(s string) bool {
	s = strings.TrimPrefix(s, "-")
	return len(s) > 1 && s[0] == '0' && asciiDigit(s[1])
}

func asciiDigits(s string) int {
	i := 0
	for i < len(s) && asciiDigit(s[i]) {
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
