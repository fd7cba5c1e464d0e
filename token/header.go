package token

import (
	"fmt"
	"strconv"
	"strings"
)

// Delim is an array delimiter. The zero value is not valid; absence of a
// delimiter symbol in a header always means Comma, never an inherited
// value from an enclosing scope.
type Delim byte

const (
	Comma    Delim = ','
	TabDelim Delim = '\t'
	Pipe     Delim = '|'
)

func (d Delim) String() string {
	switch d {
	case Comma:
		return "comma"
	case TabDelim:
		return "tab"
	case Pipe:
		return "pipe"
	}
	return fmt.Sprintf("delim(%q)", byte(d))
}

// ParseDelim reads a delimiter name or literal: "comma", "tab", "pipe",
// or the characters themselves.
func ParseDelim(s string) (Delim, error) {
	switch s {
	case "comma", ",":
		return Comma, nil
	case "tab", "\t":
		return TabDelim, nil
	case "pipe", "|":
		return Pipe, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadDelim, s)
}

func (d Delim) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Delim) UnmarshalText(text []byte) error {
	v, err := ParseDelim(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Header is one parsed array header: [N], [N<delim>], or either form
// followed by {fields} for tabular arrays. Fields is nil when no brace
// segment was present; Marker records a leading # inside the brackets,
// which is accepted and otherwise ignored.
type Header struct {
	Length int
	Delim  Delim
	Fields []string
	Marker bool
}

// Tabular reports whether the header declares a field list.
func (h *Header) Tabular() bool {
	return h.Fields != nil
}

// ParseHeader parses a line suffix that starts at '['. It returns the
// header and the inline text after the terminating colon, trimmed. The
// field list is split by the header's own delimiter, with names quoted or
// bare. A missing colon is ErrMissingColon; everything else malformed in
// the bracket or brace segments is ErrBadHeader.
func ParseHeader(s string) (*Header, string, error) {
	if len(s) == 0 || s[0] != '[' {
		return nil, "", fmt.Errorf("%w: expected '['", ErrBadHeader)
	}
	end := strings.IndexByte(s, ']')
	if end < 0 {
		return nil, "", fmt.Errorf("%w: missing ']'", ErrBadHeader)
	}
	inner := s[1:end]
	h := &Header{Delim: Comma}
	if strings.HasPrefix(inner, "#") {
		h.Marker = true
		inner = inner[1:]
	}
	if n := len(inner); n > 0 {
		switch inner[n-1] {
		case '\t':
			h.Delim = TabDelim
			inner = inner[:n-1]
		case '|':
			h.Delim = Pipe
			inner = inner[:n-1]
		}
	}
	if inner == "" {
		return nil, "", fmt.Errorf("%w: missing length", ErrBadHeader)
	}
	if asciiDigits(inner) != len(inner) {
		return nil, "", fmt.Errorf("%w: bad length %q", ErrBadHeader, inner)
	}
	length, err := strconv.Atoi(inner)
	if err != nil {
		return nil, "", fmt.Errorf("%w: length %q out of range", ErrBadHeader, inner)
	}
	h.Length = length

	rest := s[end+1:]
	if strings.HasPrefix(rest, "{") {
		// Quote-aware scan: a quoted field name may contain '}'.
		fEnd := FirstUnquoted(rest, '}')
		if fEnd < 0 {
			return nil, "", fmt.Errorf("%w: missing '}'", ErrBadHeader)
		}
		fieldsStr := rest[1:fEnd]
		rest = rest[fEnd+1:]
		h.Fields = []string{}
		if fieldsStr != "" {
			for _, cell := range SplitUnquoted(fieldsStr, h.Delim) {
				if strings.HasPrefix(cell, "\"") {
					name, err := Unquote(cell)
					if err != nil {
						return nil, "", err
					}
					h.Fields = append(h.Fields, name)
				} else {
					h.Fields = append(h.Fields, cell)
				}
			}
		}
	}
	if !strings.HasPrefix(rest, ":") {
		return nil, "", ErrMissingColon
	}
	return h, strings.TrimSpace(rest[1:]), nil
}
