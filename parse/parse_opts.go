package parse

type parseOpts struct {
	strict bool
	indent int
	expand ExpandMode
}

type ParseOption func(*parseOpts)

// ParseStrict selects between the full validation catalogue (true, the
// default) and best-effort decoding. Lenient decoding tolerates loose
// indentation, blank lines between array items, extra or missing items
// against a declared length, and duplicate keys; it never tolerates bad
// escapes, unterminated strings, or missing colons.
func ParseStrict(v bool) ParseOption {
	return func(o *parseOpts) { o.strict = v }
}

// ParseIndent fixes the spaces-per-level unit. The default of 0 detects
// the unit from the first indented line, falling back to 2.
func ParseIndent(n int) ParseOption {
	return func(o *parseOpts) { o.indent = n }
}

// ParseExpandPaths turns dotted keys into nested objects after decoding.
func ParseExpandPaths(m ExpandMode) ParseOption {
	return func(o *parseOpts) { o.expand = m }
}
