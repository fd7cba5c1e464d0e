// Package ir provides the value tree for TOON documents.
//
// # Overview
//
// The ir package defines the data structures representing a TOON document
// as a tree of nodes. All documents, whether parsed from text or created
// programmatically, are ir.Node trees; the parse package produces them and
// the encode package consumes them.
//
// The tree carries no position information and no formatting state. It is
// purely semantic, which makes it the stable surface between decoding,
// encoding, and conversion to other formats.
//
// # Node Structure
//
// A Node is a tagged union over the closed Type set:
//
//   - NullType: null
//   - BoolType: boolean
//   - IntType: 64-bit signed integer
//   - FloatType: 64-bit IEEE float
//   - StringType: string
//   - ArrayType: ordered list of nodes
//   - ObjectType: ordered key-value pairs
//
// Integers and floats are distinct types so that a document round trips
// without 1 turning into 1.0. For ObjectType nodes, Keys[i] names
// Values[i]; key order is the order fields appeared in, and encoding
// walks fields in exactly that order.
//
// # Creating Nodes
//
// Use the constructor functions:
//
//	s := ir.FromString("hello")
//	n := ir.FromInt(42)
//	arr := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})
//	obj := ir.FromKeyVals(
//	    ir.KeyVal{Key: "name", Val: ir.FromString("alice")},
//	    ir.KeyVal{Key: "age", Val: ir.FromInt(30)},
//	)
//
// FromGo normalizes arbitrary Go values into a tree (map keys are sorted
// for determinism); ToGo converts back to plain Go values.
//
// # Comparison
//
// Compare defines a total order over trees and Equal reports semantic
// equality. Two nodes of different numeric types are never Equal, so
// equality implies identical encoded text.
//
// # Errors
//
// The error sentinels used across the codec live here: ErrSyntax,
// ErrStructure, ErrCountMismatch, ErrEmptyInput, ErrUnsupportedValue.
// Errors returned by parse and encode wrap one of them.
//
// # JSON Interoperability
//
// Node implements json.Marshaler and json.Unmarshaler at the value level:
// the JSON form of a tree is the document it represents, with object order
// preserved in both directions. See also FromJSON and ToJSON.
//
// # Thread Safety
//
// Nodes are not synchronized. Trees returned by the parser are fresh and
// may be used freely; separate goroutines sharing one tree must either
// treat it as read-only or clone it.
//
// # Related Packages
//
//   - github.com/toon-format/toon-go/parse - parses text into trees
//   - github.com/toon-format/toon-go/encode - encodes trees to text
//   - github.com/toon-format/toon-go/token - lexical layer shared by both
package ir
