package encode

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/toon-format/toon-go/ir"
	"github.com/toon-format/toon-go/token"
)

// EncState carries the encoding options and output bookkeeping for one
// Encode call.
type EncState struct {
	indent    int
	delim     token.Delim
	marker    bool
	fold      bool
	foldDepth int
	started   bool

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node as TOON text. The output is LF-separated with no
// trailing newline; an empty root object produces no output at all.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2, delim: token.Comma, foldDepth: math.MaxInt}
	for _, opt := range opts {
		opt(es)
	}
	if es.indent < 1 {
		return fmt.Errorf("indent must be at least 1: %d", es.indent)
	}
	switch es.delim {
	case token.Comma, token.TabDelim, token.Pipe:
	default:
		return fmt.Errorf("%w: %q", token.ErrBadDelim, byte(es.delim))
	}
	if node == nil {
		node = ir.Null()
	}
	return encode(node, w, es)
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.ObjectType:
		return encodeFields(node, w, es, 0)
	case ir.ArrayType:
		return encodeArray("", node, w, es, 0, 1)
	default:
		v, err := primitive(node, es)
		if err != nil {
			return err
		}
		return writeLine(w, es, 0, v)
	}
}

// writeLine emits one output line at depth. The newline goes before the
// line, never after, so the document ends without one.
func writeLine(w io.Writer, es *EncState, depth int, s string) error {
	var b strings.Builder
	if es.started {
		b.WriteByte('\n')
	}
	es.started = true
	b.WriteString(strings.Repeat(" ", depth*es.indent))
	b.WriteString(s)
	_, err := io.WriteString(w, b.String())
	return err
}

// encodeFields writes an object body, one field per line. Key folding
// applies only at the document's top level.
func encodeFields(obj *ir.Node, w io.Writer, es *EncState, depth int) error {
	for i, key := range obj.Keys {
		val := obj.Values[i]
		if es.fold && depth == 0 && val.Type == ir.ObjectType {
			if fkey, fval, ok := foldChain(obj, key, val, es.foldDepth); ok {
				if err := writeField(fkey, fval, w, es, depth, ""); err != nil {
					return err
				}
				continue
			}
		}
		if err := writeField(key, val, w, es, depth, ""); err != nil {
			return err
		}
	}
	return nil
}

// writeField writes one object field at depth. A non-empty prefix is the
// item marker: the key line then sits one level shallower, riding the
// marker line, while nested content still indents from depth.
func writeField(key string, val *ir.Node, w io.Writer, es *EncState, depth int, prefix string) error {
	lineDepth := depth
	if prefix != "" {
		lineDepth--
	}
	head := prefix + keyText(key, es)
	switch val.Type {
	case ir.ArrayType:
		return encodeArray(head, val, w, es, lineDepth, depth+1)
	case ir.ObjectType:
		if err := writeLine(w, es, lineDepth, head+colon(es)); err != nil {
			return err
		}
		return encodeFields(val, w, es, depth+1)
	default:
		v, err := primitive(val, es)
		if err != nil {
			return err
		}
		return writeLine(w, es, lineDepth, head+colon(es)+" "+v)
	}
}

// encodeArray writes one array in whichever of the three forms fits:
// inline when every element is primitive, tabular when the elements are
// uniform flat objects, expanded otherwise. head rides before the header
// on its line: a key, an item marker, or nothing for a root array.
func encodeArray(head string, arr *ir.Node, w io.Writer, es *EncState, lineDepth, bodyDepth int) error {
	if allPrimitives(arr) {
		vals, err := inlineValues(arr, es)
		if err != nil {
			return err
		}
		line := head + headerText(es, arr.Len(), nil)
		if arr.Len() > 0 {
			line += " " + vals
		}
		return writeLine(w, es, lineDepth, line)
	}
	if fields, ok := detectTabular(arr); ok {
		if err := writeLine(w, es, lineDepth, head+headerText(es, arr.Len(), fields)); err != nil {
			return err
		}
		return encodeRows(arr, fields, w, es, bodyDepth)
	}
	if err := writeLine(w, es, lineDepth, head+headerText(es, arr.Len(), nil)); err != nil {
		return err
	}
	return encodeItems(arr, w, es, bodyDepth)
}

// detectTabular reports whether every element is an object with the same
// key set as the first, all values primitive. Emission order is the
// first element's key order.
func detectTabular(arr *ir.Node) ([]string, bool) {
	if arr.Len() == 0 {
		return nil, false
	}
	first := arr.Values[0]
	if first.Type != ir.ObjectType || first.Len() == 0 {
		return nil, false
	}
	fields := first.Keys
	for _, v := range arr.Values {
		if v.Type != ir.ObjectType || v.Len() != len(fields) {
			return nil, false
		}
		for _, f := range fields {
			cell := v.Get(f)
			if cell == nil || !cell.IsPrimitive() {
				return nil, false
			}
		}
	}
	return fields, true
}

func encodeRows(arr *ir.Node, fields []string, w io.Writer, es *EncState, depth int) error {
	for _, v := range arr.Values {
		cells := make([]string, len(fields))
		for i, f := range fields {
			c, err := primitive(v.Get(f), es)
			if err != nil {
				return err
			}
			cells[i] = c
		}
		if err := writeLine(w, es, depth, strings.Join(cells, delimText(es))); err != nil {
			return err
		}
	}
	return nil
}

func encodeItems(arr *ir.Node, w io.Writer, es *EncState, depth int) error {
	for _, v := range arr.Values {
		var err error
		switch {
		case v.Type == ir.ObjectType && v.Len() == 0:
			err = writeLine(w, es, depth, paint(es, ir.ArrayType, SepColor, "-"))
		case v.Type == ir.ObjectType:
			err = encodeItemObject(v, w, es, depth)
		case v.Type == ir.ArrayType:
			err = encodeArray(itemMarker(es), v, w, es, depth, depth+1)
		default:
			var p string
			if p, err = primitive(v, es); err == nil {
				err = writeLine(w, es, depth, itemMarker(es)+p)
			}
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// encodeItemObject writes an object list item. The first field rides the
// marker line; its siblings sit one level below the marker and their
// nested bodies one below that.
func encodeItemObject(obj *ir.Node, w io.Writer, es *EncState, depth int) error {
	for i, key := range obj.Keys {
		prefix := ""
		if i == 0 {
			prefix = itemMarker(es)
		}
		if err := writeField(key, obj.Values[i], w, es, depth+1, prefix); err != nil {
			return err
		}
	}
	return nil
}

// foldChain collapses a chain of single-field objects into one dotted
// key. Every key on the chain must be unquoted-safe, the chain ends at a
// primitive, array, empty object, or the segment cap, and the folded key
// must not collide with a sibling of the starting field. A chain that
// runs into a multi-field object does not fold at all.
func foldChain(obj *ir.Node, key string, val *ir.Node, limit int) (string, *ir.Node, bool) {
	if limit < 2 || token.KeyNeedsQuote(key) {
		return "", nil, false
	}
	chain := []string{key}
	cur := val
	for cur.Type == ir.ObjectType && cur.Len() == 1 {
		next, nextVal := cur.Keys[0], cur.Values[0]
		if token.KeyNeedsQuote(next) {
			return "", nil, false
		}
		chain = append(chain, next)
		if len(chain) >= limit {
			return foldResult(obj, chain, nextVal)
		}
		if nextVal.Type == ir.ObjectType && nextVal.Len() > 0 {
			cur = nextVal
			continue
		}
		return foldResult(obj, chain, nextVal)
	}
	return "", nil, false
}

func foldResult(obj *ir.Node, chain []string, val *ir.Node) (string, *ir.Node, bool) {
	folded := strings.Join(chain, ".")
	if obj.Index(folded) >= 0 {
		return "", nil, false
	}
	return folded, val, true
}

// primitive renders one scalar node, quoted and colored as needed.
// Non-finite floats render as null; negative zero normalizes to 0.
func primitive(v *ir.Node, es *EncState) (string, error) {
	switch v.Type {
	case ir.NullType:
		return paint(es, ir.NullType, ValueColor, "null"), nil
	case ir.BoolType:
		return paint(es, ir.BoolType, ValueColor, strconv.FormatBool(v.Bool)), nil
	case ir.IntType:
		return paint(es, ir.IntType, ValueColor, v.FormatInt()), nil
	case ir.FloatType:
		f := v.Float64
		if f == 0 {
			return paint(es, ir.FloatType, ValueColor, "0"), nil
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return paint(es, ir.NullType, ValueColor, "null"), nil
		}
		return paint(es, ir.FloatType, ValueColor, strconv.FormatFloat(f, 'f', -1, 64)), nil
	case ir.StringType:
		s := v.String
		if token.NeedsQuote(s, es.delim) {
			s = token.Quote(s)
		}
		return paint(es, ir.StringType, ValueColor, s), nil
	}
	return "", fmt.Errorf("%w: %s node in value position", ir.ErrUnsupportedValue, v.Type)
}

func allPrimitives(arr *ir.Node) bool {
	for _, v := range arr.Values {
		if !v.IsPrimitive() {
			return false
		}
	}
	return true
}

func inlineValues(arr *ir.Node, es *EncState) (string, error) {
	parts := make([]string, arr.Len())
	for i, v := range arr.Values {
		p, err := primitive(v, es)
		if err != nil {
			return "", err
		}
		parts[i] = p
	}
	return strings.Join(parts, delimText(es)), nil
}

// headerText renders an array header: [N], with the delimiter symbol when
// it is not comma, the optional # marker, and the {fields} segment for
// tabular arrays.
func headerText(es *EncState, n int, fields []string) string {
	var b strings.Builder
	num := "["
	if es.marker {
		num += "#"
	}
	num += strconv.Itoa(n)
	if es.delim != token.Comma {
		num += string(byte(es.delim))
	}
	num += "]"
	b.WriteString(paint(es, ir.ArrayType, SepColor, num))
	if fields != nil {
		b.WriteString(paint(es, ir.ArrayType, SepColor, "{"))
		for i, f := range fields {
			if i > 0 {
				b.WriteString(delimText(es))
			}
			b.WriteString(keyText(f, es))
		}
		b.WriteString(paint(es, ir.ArrayType, SepColor, "}"))
	}
	b.WriteString(colon(es))
	return b.String()
}

func keyText(key string, es *EncState) string {
	if token.KeyNeedsQuote(key) {
		key = token.Quote(key)
	}
	return paint(es, ir.ObjectType, FieldColor, key)
}

func colon(es *EncState) string {
	return paint(es, ir.ObjectType, SepColor, ":")
}

func itemMarker(es *EncState) string {
	return paint(es, ir.ArrayType, SepColor, "-") + " "
}

func delimText(es *EncState) string {
	return paint(es, ir.ArrayType, SepColor, string(byte(es.delim)))
}

func paint(es *EncState, t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}
