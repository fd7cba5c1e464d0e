package encode

import (
	"bytes"

	"github.com/toon-format/toon-go/ir"
)

// String encodes node to a string.
func String(node *ir.Node, opts ...EncodeOption) (string, error) {
	var buf bytes.Buffer
	if err := Encode(node, &buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// MustString encodes node to a string and panics on error. It is
// intended for tests and for nodes known to contain no unsupported
// values.
func MustString(node *ir.Node, opts ...EncodeOption) string {
	s, err := String(node, opts...)
	if err != nil {
		panic(err)
	}
	return s
}
