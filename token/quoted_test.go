package token

import (
	"errors"
	"testing"
)

func TestQuoteUnquote(t *testing.T) {
	tests := []struct {
		in     string
		quoted string
	}{
		{"", `""`},
		{"plain", `"plain"`},
		{"a\nb", `"a\nb"`},
		{"tab\there", `"tab\there"`},
		{"cr\rhere", `"cr\rhere"`},
		{`back\slash`, `"back\\slash"`},
		{`say "hi"`, `"say \"hi\""`},
		{"héllo", `"héllo"`},
	}
	for _, tt := range tests {
		if got := Quote(tt.in); got != tt.quoted {
			t.Errorf("Quote(%q) = %s, want %s", tt.in, got, tt.quoted)
			continue
		}
		back, err := Unquote(tt.quoted)
		if err != nil {
			t.Errorf("Unquote(%s): %v", tt.quoted, err)
			continue
		}
		if back != tt.in {
			t.Errorf("Unquote(Quote(%q)) = %q", tt.in, back)
		}
	}
}

func TestUnquoteErrors(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{`"abc`, ErrUnterminated},
		{`"`, ErrUnterminated},
		{`abc"`, ErrUnterminated},
		{`"ab\`, ErrUnterminated},
		{`"ab\"`, ErrUnterminated},
		{`"a"junk`, ErrUnterminated},
		{`"bad\qescape"`, ErrBadEscape},
		{`"\x41"`, ErrBadEscape},
		{`"\u0041"`, ErrBadEscape},
	}
	for _, tt := range tests {
		if _, err := Unquote(tt.in); !errors.Is(err, tt.want) {
			t.Errorf("Unquote(%s) error = %v, want %v", tt.in, err, tt.want)
		}
	}
}

func TestNeedsQuote(t *testing.T) {
	quoted := []string{
		"", " x", "x ", "true", "false", "null",
		"42", "3.14", "1e-6", "05", "-", "-start", "-5",
		"has:colon", `has"quote`, `back\slash`, "br[acket", "brace}",
		"line\nbreak", "tab\tinside", "a,b",
	}
	for _, v := range quoted {
		if !NeedsQuote(v, Comma) {
			t.Errorf("NeedsQuote(%q, comma) = false, want true", v)
		}
	}
	unquoted := []string{"hello", "hello world", "TRUE", "Null", "x2", "a.b", "a|b"}
	for _, v := range unquoted {
		if NeedsQuote(v, Comma) {
			t.Errorf("NeedsQuote(%q, comma) = true, want false", v)
		}
	}

	// The context delimiter changes the answer; comma does not matter
	// under pipe, and vice versa.
	if NeedsQuote("a,b", Pipe) {
		t.Error("comma needs no quoting under pipe")
	}
	if !NeedsQuote("a|b", Pipe) {
		t.Error("pipe needs quoting under pipe")
	}
}

func TestKeyNeedsQuote(t *testing.T) {
	plain := []string{"a", "A", "_x", "key_2", "a.b.c", "snake_case"}
	for _, k := range plain {
		if KeyNeedsQuote(k) {
			t.Errorf("KeyNeedsQuote(%q) = true, want false", k)
		}
	}
	needy := []string{"", "2fast", "key with space", "key-dash", "ключ", ".dot", `qu"ote`}
	for _, k := range needy {
		if !KeyNeedsQuote(k) {
			t.Errorf("KeyNeedsQuote(%q) = false, want true", k)
		}
	}
}
