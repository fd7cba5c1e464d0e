// Package format names the document formats the tooling reads and
// writes, and converts trees between them.
//
// # Usage
//
//	// Detect a format from a path, then read the file into a tree
//	f, ok := format.DetectPath("deploy.yaml")
//	node, err := format.Decode(f, data)
//
//	// Render the tree in another format
//	out, err := format.Encode(format.ToonFormat, node)
//
// JSON and YAML conversion preserve object field order.
//
// # Related Packages
//
//   - github.com/toon-format/toon-go/parse - Parse TOON text to IR
//   - github.com/toon-format/toon-go/encode - Encode IR to TOON text
package format
