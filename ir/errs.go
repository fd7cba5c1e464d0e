package ir

import "errors"

// Error kinds shared by the decoder and encoder. Every error returned from
// parse or encode wraps exactly one of these, so callers dispatch with
// errors.Is.
var (
	// ErrSyntax covers token-level failures: a missing colon after a key
	// or header, an unknown escape sequence, an unterminated quoted
	// string. These stay fatal even in lenient mode.
	ErrSyntax = errors.New("syntax error")

	// ErrStructure covers line-shape failures: indentation that is not a
	// multiple of the indent unit, tabs used as indentation, blank lines
	// inside an array body, an ambiguous root form, duplicate keys.
	ErrStructure = errors.New("structure error")

	// ErrCountMismatch reports a declared array length that does not
	// match the number of items or rows found, or a tabular row whose
	// width differs from the field list.
	ErrCountMismatch = errors.New("count mismatch")

	// ErrEmptyInput reports a document with no content lines.
	ErrEmptyInput = errors.New("empty input")

	// ErrUnsupportedValue reports a tree handed to the encoder that holds
	// a node outside the closed Type set.
	ErrUnsupportedValue = errors.New("unsupported value")
)
