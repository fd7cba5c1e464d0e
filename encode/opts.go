package encode

import (
	"math"

	"github.com/toon-format/toon-go/token"
)

// EncodeOption configures an Encode call.
type EncodeOption func(*EncState)

// EncodeIndent sets the number of spaces per nesting level. The default
// is 2; values below 1 make Encode return an error.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) {
		es.indent = n
	}
}

// EncodeDelim sets the delimiter used in inline arrays, tabular rows,
// and header field lists. The default is token.Comma.
func EncodeDelim(d token.Delim) EncodeOption {
	return func(es *EncState) {
		es.delim = d
	}
}

// LengthMarker adds a '#' before the element count in array headers, as
// in [#3].
func LengthMarker(on bool) EncodeOption {
	return func(es *EncState) {
		es.marker = on
	}
}

// FoldKeys collapses top-level chains of single-field objects into
// dotted keys, so {"a": {"b": 1}} encodes as a.b: 1. Folding never
// produces a key that collides with an existing sibling.
func FoldKeys(on bool) EncodeOption {
	return func(es *EncState) {
		es.fold = on
	}
}

// FoldDepth caps the number of key segments a folded chain may join.
// Values below 1 mean no cap. A cap of 1 disables folding, since a fold
// needs at least two segments.
func FoldDepth(n int) EncodeOption {
	return func(es *EncState) {
		if n < 1 {
			n = math.MaxInt
		}
		es.foldDepth = n
	}
}

// EncodeColors sets the color scheme applied to encoded output. Without
// it output is plain text.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		es.Color = c.Color
	}
}
