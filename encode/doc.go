// Package encode renders IR nodes as TOON text.
//
// # Usage
//
// Encode writes a node to an io.Writer and String captures the result
// directly:
//
//	doc := ir.FromKeyVals(
//		ir.KeyVal{Key: "id", Val: ir.FromInt(7)},
//		ir.KeyVal{Key: "tags", Val: ir.FromSlice([]*ir.Node{ir.FromString("a"), ir.FromString("b")})},
//	)
//	s, err := encode.String(doc)
//	// id: 7
//	// tags[2]: a,b
//
// Options select the delimiter, indentation width, length markers, key
// folding, and colored output:
//
//	s, err := encode.String(doc,
//		encode.EncodeDelim(token.Pipe),
//		encode.LengthMarker(true),
//	)
//
// Arrays encode inline when every element is primitive, as tabular rows
// when the elements are uniform flat objects, and as expanded hyphen
// items otherwise. Output contains no trailing newline.
//
// # Related Packages
//
// Package parse reads TOON text back into IR nodes. Package ir defines
// the node type and its constructors. Package token holds the quoting
// and header rules shared with the parser.
package encode
