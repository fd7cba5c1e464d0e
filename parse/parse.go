package parse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/toon-format/toon-go/ir"
	"github.com/toon-format/toon-go/token"
)

// Parse decodes a TOON document into an IR tree. Errors wrap one of the
// ir error kinds and name the offending line where one exists.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{strict: true}
	for _, f := range opts {
		f(pOpts)
	}
	if pOpts.indent < 0 {
		return nil, fmt.Errorf("indent must not be negative: %d", pOpts.indent)
	}
	lines := token.Lines(d)
	p := &parser{lines: lines, opts: pOpts, unit: pOpts.indent}
	if p.unit == 0 {
		p.unit = detectIndent(lines)
	}
	res, err := p.parseRoot()
	if err != nil {
		return nil, err
	}
	if pOpts.expand != ExpandOff {
		return expandNode(res, pOpts)
	}
	return res, nil
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

type parser struct {
	lines []token.Line
	pos   int
	unit  int
	opts  *parseOpts
}

// errAt builds a decode error of one taxonomy kind at a line.
func errAt(kind error, num int, format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", kind, num, fmt.Sprintf(format, args...))
}

// detectIndent returns the spaces-per-level unit: the leading whitespace
// width of the first indented content line, or 2 when nothing is indented.
func detectIndent(lines []token.Line) int {
	for _, ln := range lines {
		if !ln.Blank() && ln.Indent > 0 {
			return ln.Indent
		}
	}
	return 2
}

// depthOf converts leading whitespace into a depth. Strict mode rejects
// tabs and widths that are not whole multiples of the unit; lenient mode
// floors.
func (p *parser) depthOf(ln token.Line) (int, error) {
	if ln.Tab && p.opts.strict {
		return 0, errAt(ir.ErrStructure, ln.Num, "tab indentation")
	}
	if p.opts.strict && ln.Indent%p.unit != 0 {
		return 0, errAt(ir.ErrStructure, ln.Num, "indent of %d is not a multiple of %d", ln.Indent, p.unit)
	}
	return ln.Indent / p.unit, nil
}

// nextContent returns the index of the first content line at or after i,
// or -1.
func (p *parser) nextContent(i int) int {
	for ; i < len(p.lines); i++ {
		if !p.lines[i].Blank() {
			return i
		}
	}
	return -1
}

// parseRoot discovers the document's root form. A depth-0 header line
// opens a root array; a lone line that is not a field reads as a single
// primitive; everything else is an object.
func (p *parser) parseRoot() (*ir.Node, error) {
	first := p.nextContent(0)
	if first < 0 {
		if p.opts.strict {
			return nil, fmt.Errorf("%w: no content lines", ir.ErrEmptyInput)
		}
		return ir.Object(), nil
	}
	ln := p.lines[first]
	if strings.HasPrefix(ln.Text, "[") && strings.Contains(ln.Text, ":") {
		return p.parseRootArray(first)
	}
	if !isFieldLine(ln.Text) {
		if p.nextContent(first+1) < 0 {
			return p.decodePrimitive(ln.Text, ln.Num)
		}
		if p.opts.strict {
			return nil, errAt(ir.ErrStructure, ln.Num, "ambiguous root form")
		}
	}
	p.pos = first
	return p.parseObject(0)
}

func (p *parser) parseRootArray(first int) (*ir.Node, error) {
	ln := p.lines[first]
	d, err := p.depthOf(ln)
	if err != nil {
		return nil, err
	}
	if d != 0 && p.opts.strict {
		return nil, errAt(ir.ErrStructure, ln.Num, "indented root header")
	}
	p.pos = first + 1
	arr, err := p.parseArrayAt(ln.Num, ln.Text, 0)
	if err != nil {
		return nil, err
	}
	if i := p.nextContent(p.pos); i >= 0 {
		if p.opts.strict {
			return nil, errAt(ir.ErrStructure, p.lines[i].Num, "content after root array")
		}
		p.pos = len(p.lines)
	}
	return arr, nil
}

// isFieldLine reports whether a content line reads as an object field: an
// unquoted colon, array syntax, or a quoted key followed by either.
func isFieldLine(s string) bool {
	if strings.HasPrefix(s, "\"") {
		end := token.QuotedEnd(s)
		if end < 0 {
			return false
		}
		rest := strings.TrimSpace(s[end+1:])
		return strings.HasPrefix(rest, ":") || strings.HasPrefix(rest, "[")
	}
	return token.FirstUnquoted(s, ':') >= 0 || arrayStart(s) >= 0
}

// arrayStart returns the index of the '[' opening array syntax within a
// field line, or -1. The bracket must precede any unquoted colon and must
// close somewhere after.
func arrayStart(s string) int {
	b := token.FirstUnquoted(s, '[')
	if b < 0 || strings.IndexByte(s[b:], ']') < 0 {
		return -1
	}
	if c := token.FirstUnquoted(s, ':'); c >= 0 && c < b {
		return -1
	}
	return b
}

func (p *parser) parseObject(depth int) (*ir.Node, error) {
	obj := ir.Object()
	if err := p.parseFieldsInto(obj, depth); err != nil {
		return nil, err
	}
	return obj, nil
}

// parseFieldsInto reads field lines at exactly depth until the
// indentation retreats. Deeper lines that no field claimed are a
// structural error in strict mode and skipped otherwise.
func (p *parser) parseFieldsInto(obj *ir.Node, depth int) error {
	for p.pos < len(p.lines) {
		ln := p.lines[p.pos]
		if ln.Blank() {
			p.pos++
			continue
		}
		d, err := p.depthOf(ln)
		if err != nil {
			return err
		}
		if d < depth {
			return nil
		}
		if d > depth {
			if p.opts.strict {
				return errAt(ir.ErrStructure, ln.Num, "unexpected indent")
			}
			p.pos++
			continue
		}
		p.pos++
		if err := p.parseFieldInto(obj, ln.Text, ln.Num, depth); err != nil {
			return err
		}
	}
	return nil
}

// parseFieldInto decodes one field line. depth is the field's own depth;
// nested bodies sit one deeper.
func (p *parser) parseFieldInto(obj *ir.Node, content string, num, depth int) error {
	key, rest, err := p.splitKey(content, num)
	if err != nil {
		return err
	}
	var val *ir.Node
	switch {
	case strings.HasPrefix(rest, "["):
		val, err = p.parseArrayAt(num, rest, depth)
	case strings.HasPrefix(rest, ":"):
		inline := strings.TrimSpace(rest[1:])
		if inline == "" {
			val, err = p.parseBody(depth)
		} else {
			val, err = p.decodePrimitive(inline, num)
		}
	default:
		return errAt(ir.ErrSyntax, num, "missing colon after key %q", key)
	}
	if err != nil {
		return err
	}
	if p.opts.strict && obj.Index(key) >= 0 {
		return errAt(ir.ErrStructure, num, "duplicate key %q", key)
	}
	obj.Put(key, val)
	return nil
}

// splitKey separates a field line into its key and the remainder, which
// begins at the array bracket or the colon.
func (p *parser) splitKey(content string, num int) (string, string, error) {
	if strings.HasPrefix(content, "\"") {
		end := token.QuotedEnd(content)
		if end < 0 {
			return "", "", errAt(ir.ErrSyntax, num, "unterminated key")
		}
		key, err := token.Unquote(content[:end+1])
		if err != nil {
			return "", "", errAt(ir.ErrSyntax, num, "%v", err)
		}
		return key, strings.TrimSpace(content[end+1:]), nil
	}
	if b := arrayStart(content); b >= 0 {
		return strings.TrimSpace(content[:b]), content[b:], nil
	}
	if c := token.FirstUnquoted(content, ':'); c >= 0 {
		return strings.TrimSpace(content[:c]), content[c:], nil
	}
	return "", "", errAt(ir.ErrSyntax, num, "missing colon")
}

// parseBody resolves a bare "key:" line: a deeper block is the object
// body, anything else leaves an empty object.
func (p *parser) parseBody(depth int) (*ir.Node, error) {
	if i := p.nextContent(p.pos); i >= 0 {
		d, err := p.depthOf(p.lines[i])
		if err != nil {
			return nil, err
		}
		if d > depth {
			return p.parseObject(depth + 1)
		}
	}
	return ir.Object(), nil
}

// parseArrayAt decodes one array whose header text begins at '['. The
// header line itself is already consumed; depth is the line it sat on, so
// rows and items sit one deeper.
func (p *parser) parseArrayAt(num int, header string, depth int) (*ir.Node, error) {
	h, inline, err := token.ParseHeader(header)
	if err != nil {
		return nil, errAt(ir.ErrSyntax, num, "%v", err)
	}
	switch {
	case h.Tabular():
		return p.parseTabular(num, h, inline, depth)
	case inline != "":
		return p.parseInline(num, h, inline)
	default:
		return p.parseExpanded(num, h, depth)
	}
}

// parseInline decodes the primitive-array form with values on the header
// line, split by the header's own delimiter.
func (p *parser) parseInline(num int, h *token.Header, inline string) (*ir.Node, error) {
	cells := token.SplitUnquoted(inline, h.Delim)
	if p.opts.strict && len(cells) != h.Length {
		return nil, errAt(ir.ErrCountMismatch, num, "declared %d values, found %d", h.Length, len(cells))
	}
	vals := make([]*ir.Node, len(cells))
	for i, cell := range cells {
		v, err := p.decodePrimitive(cell, num)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return ir.FromSlice(vals), nil
}

// parseExpanded decodes the list form: hyphen-marked items one level
// below the header.
func (p *parser) parseExpanded(num int, h *token.Header, depth int) (*ir.Node, error) {
	var vals []*ir.Node
	for p.pos < len(p.lines) {
		ln := p.lines[p.pos]
		if ln.Blank() {
			stop, err := p.blankInBody(depth)
			if err != nil {
				return nil, err
			}
			if stop {
				break
			}
			continue
		}
		d, err := p.depthOf(ln)
		if err != nil {
			return nil, err
		}
		if d != depth+1 || !isItemLine(ln.Text) {
			break
		}
		p.pos++
		if ln.Text == "-" {
			vals = append(vals, ir.Object())
			continue
		}
		v, err := p.parseListItem(strings.TrimSpace(ln.Text[2:]), ln.Num, d)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	if p.opts.strict && len(vals) != h.Length {
		return nil, errAt(ir.ErrCountMismatch, num, "declared %d items, found %d", h.Length, len(vals))
	}
	return ir.FromSlice(vals), nil
}

func isItemLine(s string) bool {
	return s == "-" || strings.HasPrefix(s, "- ")
}

// parseListItem decodes the text after a "- " marker: a nested array
// header, an object whose first field shares the marker line, or a bare
// primitive.
func (p *parser) parseListItem(item string, num, depth int) (*ir.Node, error) {
	if strings.HasPrefix(item, "[") && strings.Contains(item, ":") {
		return p.parseArrayAt(num, item, depth)
	}
	if token.FirstUnquoted(item, ':') >= 0 || arrayStart(item) >= 0 {
		return p.parseItemObject(item, num, depth)
	}
	return p.decodePrimitive(item, num)
}

// parseItemObject decodes an object list item. The first field rides the
// marker line; its siblings sit one level below the marker, and nested
// bodies one below that.
func (p *parser) parseItemObject(first string, num, depth int) (*ir.Node, error) {
	obj := ir.Object()
	if err := p.parseFieldInto(obj, first, num, depth+1); err != nil {
		return nil, err
	}
	if err := p.parseFieldsInto(obj, depth+1); err != nil {
		return nil, err
	}
	return obj, nil
}

// parseTabular decodes the tabular form: uniform objects, one
// delimiter-separated row per element one level below the header.
func (p *parser) parseTabular(num int, h *token.Header, inline string, depth int) (*ir.Node, error) {
	if inline != "" && p.opts.strict {
		return nil, errAt(ir.ErrStructure, num, "values on tabular header line")
	}
	var vals []*ir.Node
	for p.pos < len(p.lines) {
		ln := p.lines[p.pos]
		if ln.Blank() {
			stop, err := p.blankInBody(depth)
			if err != nil {
				return nil, err
			}
			if stop {
				break
			}
			continue
		}
		d, err := p.depthOf(ln)
		if err != nil {
			return nil, err
		}
		if d != depth+1 || !isRow(ln.Text, h.Delim) {
			break
		}
		p.pos++
		row, err := p.parseRow(ln.Text, ln.Num, h)
		if err != nil {
			return nil, err
		}
		vals = append(vals, row)
	}
	if p.opts.strict && len(vals) != h.Length {
		return nil, errAt(ir.ErrCountMismatch, num, "declared %d rows, found %d", h.Length, len(vals))
	}
	return ir.FromSlice(vals), nil
}

// isRow is the row-or-field lookahead: a line with no unquoted colon is a
// row; with both a colon and the active delimiter present, whichever
// comes first decides.
func isRow(s string, delim token.Delim) bool {
	c := token.FirstUnquoted(s, ':')
	if c < 0 {
		return true
	}
	d := token.FirstUnquoted(s, byte(delim))
	return d >= 0 && d < c
}

func (p *parser) parseRow(s string, num int, h *token.Header) (*ir.Node, error) {
	cells := token.SplitUnquoted(s, h.Delim)
	if p.opts.strict && len(cells) != len(h.Fields) {
		return nil, errAt(ir.ErrCountMismatch, num, "row has %d values for %d fields", len(cells), len(h.Fields))
	}
	obj := ir.Object()
	for i := 0; i < len(cells) && i < len(h.Fields); i++ {
		v, err := p.decodePrimitive(cells[i], num)
		if err != nil {
			return nil, err
		}
		obj.Put(h.Fields[i], v)
	}
	return obj, nil
}

// blankInBody consumes blank lines inside an array body. They are fine
// once the body is over, a structural error between items in strict mode,
// and skipped otherwise. Reports whether the body ended.
func (p *parser) blankInBody(depth int) (bool, error) {
	i := p.nextContent(p.pos)
	if i < 0 {
		p.pos = len(p.lines)
		return true, nil
	}
	d, err := p.depthOf(p.lines[i])
	if err != nil {
		return false, err
	}
	if d <= depth {
		p.pos = i
		return true, nil
	}
	if p.opts.strict {
		return false, errAt(ir.ErrStructure, p.lines[p.pos].Num, "blank line inside array")
	}
	p.pos = i
	return false, nil
}

// decodePrimitive classifies one scalar token. Quoted text unescapes to a
// string; bare true, false, and null are themselves; a token on the
// numeric grammar without a forbidden leading zero is a number; all else
// is a string, backslashes and all.
func (p *parser) decodePrimitive(s string, num int) (*ir.Node, error) {
	if strings.HasPrefix(s, "\"") {
		v, err := token.Unquote(s)
		if err != nil {
			return nil, errAt(ir.ErrSyntax, num, "%v", err)
		}
		return ir.FromString(v), nil
	}
	switch s {
	case "true":
		return ir.FromBool(true), nil
	case "false":
		return ir.FromBool(false), nil
	case "null":
		return ir.Null(), nil
	}
	if token.NumericLike(s) && !token.HasLeadingZero(s) {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return ir.FromInt(i), nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, errAt(ir.ErrSyntax, num, "bad number %q", s)
		}
		return ir.FromFloat(f), nil
	}
	return ir.FromString(s), nil
}
