package token

import "strings"

// Line is one physical line of input. Indent counts leading spaces, Text
// is the content with leading whitespace and any trailing CR removed, and
// Num is the 1-based line number. Tab records whether a tab occurred in
// the leading whitespace; the decoder decides what to do about it.
type Line struct {
	Indent int
	Text   string
	Num    int
	Tab    bool
}

// Blank reports whether the line has no content.
func (l Line) Blank() bool {
	return l.Text == ""
}

// Lines splits input on LF into content lines. A trailing CR per line is
// dropped, so CRLF input reads the same as LF input. The final line is
// kept whether or not the input ends in a newline.
func Lines(data []byte) []Line {
	raw := strings.Split(string(data), "\n")
	res := make([]Line, len(raw))
	for i, s := range raw {
		s = strings.TrimSuffix(s, "\r")
		indent, tab := 0, false
	scan:
		for _, c := range []byte(s) {
			switch c {
			case ' ':
				indent++
			case '\t':
				indent++
				tab = true
			default:
				break scan
			}
		}
		res[i] = Line{
			Indent: indent,
			Text:   strings.TrimSpace(s[indent:]),
			Num:    i + 1,
			Tab:    tab,
		}
	}
	return res
}
