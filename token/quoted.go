package token

import (
	"fmt"
	"strings"
)

// Quote escapes v and wraps it in double quotes. Exactly five sequences
// are ever produced: \\ \" \n \r \t. All other bytes pass through.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	for i := 0; i < len(v); i++ {
		switch c := v[i]; c {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			d = append(d, c)
		}
	}
	return string(append(d, '"'))
}

// Unquote reverses Quote: v must be a complete double-quoted token. The
// five escape sequences are decoded; any other backslash sequence is
// ErrBadEscape, and a missing closing quote or content after it is
// ErrUnterminated. These are hard errors in every mode.
func Unquote(v string) (string, error) {
	if len(v) < 2 || v[0] != '"' {
		return "", ErrUnterminated
	}
	var b strings.Builder
	b.Grow(len(v) - 2)
	i := 1
	for i < len(v) {
		switch c := v[i]; c {
		case '"':
			if i != len(v)-1 {
				return "", fmt.Errorf("%w: content after closing quote", ErrUnterminated)
			}
			return b.String(), nil
		case '\\':
			if i == len(v)-1 {
				return "", ErrUnterminated
			}
			i++
			switch e := v[i]; e {
			case '\\':
				b.WriteByte('\\')
			case '"':
				b.WriteByte('"')
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case 't':
				b.WriteByte('\t')
			default:
				return "", fmt.Errorf("%w: \\%c", ErrBadEscape, e)
			}
			i++
		default:
			b.WriteByte(c)
			i++
		}
	}
	return "", ErrUnterminated
}

// QuotedEnd returns the index of the closing quote of the quoted token
// that starts s, or -1 when the token never closes. Escaped quotes do not
// close the token.
func QuotedEnd(s string) int {
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return i
		}
	}
	return -1
}

// NeedsQuote reports whether a string value must be quoted to survive a
// round trip under the given delimiter. The conditions: empty; leading or
// trailing whitespace; the literals true, false, null; anything that reads
// as a number (including forbidden leading-zero forms); a leading '-';
// structural characters, the three escaped control characters, or the
// delimiter itself anywhere in the value.
func NeedsQuote(v string, delim Delim) bool {
	if v == "" ||
		v != strings.TrimSpace(v) ||
		v == "true" || v == "false" || v == "null" ||
		NumericLike(v) ||
		v[0] == '-' {
		return true
	}
	if strings.ContainsAny(v, ":\"\\[]{}\n\r\t") {
		return true
	}
	return strings.IndexByte(v, byte(delim)) >= 0
}

// KeyNeedsQuote reports whether an object key must be quoted. Unquoted
// keys are limited to an identifier form: a letter or underscore followed
// by letters, digits, underscores, or dots.
func KeyNeedsQuote(k string) bool {
	if k == "" {
		return true
	}
	for i := 0; i < len(k); i++ {
		c := k[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
		case i > 0 && (c >= '0' && c <= '9' || c == '.'):
		default:
			return true
		}
	}
	return false
}
