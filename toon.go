// Package toon converts between Go values and TOON documents.
//
// TOON is an indentation-based notation for the JSON data model, built
// for compactness: arrays carry their length in a bracket header and
// uniform object arrays collapse into delimiter-separated rows.
//
// # Usage
//
//	doc, err := toon.Encode(map[string]any{
//		"id":   123,
//		"tags": []any{"reading", "gaming"},
//	})
//	// id: 123
//	// tags[2]: reading,gaming
//
//	v, err := toon.Decode([]byte(doc))
//	// map[string]any{"id": int64(123), "tags": []any{...}}
//
// Load and Dump are the io.Reader/io.Writer forms. Callers that need
// field order or type detail work with ir.Node through the parse and
// encode packages directly.
package toon

import (
	"io"

	"github.com/toon-format/toon-go/encode"
	"github.com/toon-format/toon-go/ir"
	"github.com/toon-format/toon-go/parse"
)

// Encode renders v as a TOON document. Values convert per ir.FromGo:
// maps encode with sorted keys, NaN and infinities become null, and
// integers beyond int64 range encode as quoted decimal strings.
func Encode(v any, opts ...encode.EncodeOption) (string, error) {
	node, err := ir.FromGo(v)
	if err != nil {
		return "", err
	}
	return encode.String(node, opts...)
}

// Decode parses a TOON document into plain Go values: map[string]any,
// []any, int64, float64, string, bool, and nil.
func Decode(data []byte, opts ...parse.ParseOption) (any, error) {
	node, err := parse.Parse(data, opts...)
	if err != nil {
		return nil, err
	}
	return ir.ToGo(node), nil
}

// Load reads a complete document from r and decodes it.
func Load(r io.Reader, opts ...parse.ParseOption) (any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Decode(data, opts...)
}

// Dump encodes v and writes the document to w.
func Dump(w io.Writer, v any, opts ...encode.EncodeOption) error {
	node, err := ir.FromGo(v)
	if err != nil {
		return err
	}
	return encode.Encode(node, w, opts...)
}
