// Package parse decodes TOON text into IR nodes.
//
// # Usage
//
//	// Decode a document
//	node, err := parse.Parse([]byte("tags[3]: admin,ops,dev"))
//	if err != nil {
//	    return err
//	}
//
//	// Decode from a string
//	node, err := parse.ParseString("id: 7")
//
//	// Decode with options
//	node, err := parse.Parse(data, parse.ParseStrict(false))
//
// The decoder validates declared array lengths, indentation, and escape
// sequences. ParseStrict(false) downgrades the structural and count checks
// to best-effort behavior; syntax errors stay fatal in both modes. Every
// returned error wraps one of the ir error kinds, so callers can dispatch
// with errors.Is.
//
// # Related Packages
//
//   - github.com/toon-format/toon-go/ir - IR representation
//   - github.com/toon-format/toon-go/encode - Encode IR to text
//   - github.com/toon-format/toon-go/token - Line and token lexing
package parse
