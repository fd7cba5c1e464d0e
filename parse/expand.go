package parse

import (
	"fmt"
	"strings"

	"github.com/toon-format/toon-go/ir"
	"github.com/toon-format/toon-go/token"
)

// ExpandMode controls dotted-key expansion after decoding, the reverse of
// the encoder's key folding.
type ExpandMode uint8

const (
	// ExpandOff leaves dotted keys as literal text.
	ExpandOff ExpandMode = iota
	// ExpandSafe expands a dotted key only when every segment is a bare
	// identifier and the expansion cannot disturb a sibling field.
	ExpandSafe
	// ExpandAlways expands every dotted key. Collisions are an error in
	// strict mode; otherwise the later value wins.
	ExpandAlways
)

func (m ExpandMode) String() string {
	switch m {
	case ExpandOff:
		return "off"
	case ExpandSafe:
		return "safe"
	case ExpandAlways:
		return "always"
	}
	return fmt.Sprintf("expand(%d)", uint8(m))
}

// ParseExpandMode reads an expansion mode name: "off", "safe", "always".
func ParseExpandMode(s string) (ExpandMode, error) {
	switch s {
	case "off", "":
		return ExpandOff, nil
	case "safe":
		return ExpandSafe, nil
	case "always":
		return ExpandAlways, nil
	}
	return 0, fmt.Errorf("unknown expand mode %q", s)
}

func (m ExpandMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *ExpandMode) UnmarshalText(text []byte) error {
	v, err := ParseExpandMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// expandNode rebuilds objects with dotted keys expanded into nested
// objects, bottom-up so nested values are already in final form.
func expandNode(y *ir.Node, opts *parseOpts) (*ir.Node, error) {
	switch y.Type {
	case ir.ArrayType:
		for i, v := range y.Values {
			nv, err := expandNode(v, opts)
			if err != nil {
				return nil, err
			}
			y.Values[i] = nv
		}
		return y, nil
	case ir.ObjectType:
		return expandObject(y, opts)
	default:
		return y, nil
	}
}

func expandObject(y *ir.Node, opts *parseOpts) (*ir.Node, error) {
	// fields that stay literal own their slots; safe expansion must not
	// touch them
	literal := make(map[string]bool, len(y.Keys))
	for _, key := range y.Keys {
		if !shouldExpand(key, opts.expand) {
			literal[key] = true
		}
	}
	res := ir.Object()
	for i, key := range y.Keys {
		val, err := expandNode(y.Values[i], opts)
		if err != nil {
			return nil, err
		}
		if !shouldExpand(key, opts.expand) {
			if opts.expand == ExpandAlways && opts.strict && res.Index(key) >= 0 {
				return nil, fmt.Errorf("%w: key %q collides with expanded path", ir.ErrStructure, key)
			}
			res.Put(key, val)
			continue
		}
		segs := strings.Split(key, ".")
		conflict := literal[segs[0]] || pathConflict(res, segs)
		switch {
		case !conflict:
			graftPath(res, segs, val)
		case opts.expand == ExpandSafe:
			res.Put(key, val)
		case opts.strict:
			return nil, fmt.Errorf("%w: expanding key %q collides with sibling", ir.ErrStructure, key)
		default:
			forcePath(res, segs, val)
		}
	}
	return res, nil
}

// shouldExpand gates expansion per mode. Safe mode requires every path
// segment to stand alone as a bare key.
func shouldExpand(key string, m ExpandMode) bool {
	if m == ExpandOff || !strings.Contains(key, ".") {
		return false
	}
	if m == ExpandAlways {
		return true
	}
	for _, seg := range strings.Split(key, ".") {
		if token.KeyNeedsQuote(seg) {
			return false
		}
	}
	return true
}

// pathConflict reports whether grafting at segs would hit a non-object or
// an occupied leaf.
func pathConflict(obj *ir.Node, segs []string) bool {
	cur := obj
	for _, seg := range segs[:len(segs)-1] {
		next := cur.Get(seg)
		if next == nil {
			return false
		}
		if next.Type != ir.ObjectType {
			return true
		}
		cur = next
	}
	return cur.Get(segs[len(segs)-1]) != nil
}

// graftPath creates the object chain for segs and places val at the leaf.
// The caller has ruled out conflicts.
func graftPath(obj *ir.Node, segs []string, val *ir.Node) {
	cur := obj
	for _, seg := range segs[:len(segs)-1] {
		next := cur.Get(seg)
		if next == nil {
			next = ir.Object()
			cur.Put(seg, next)
		}
		cur = next
	}
	cur.Put(segs[len(segs)-1], val)
}

// forcePath is graftPath with overwrite semantics: anything in the way is
// replaced.
func forcePath(obj *ir.Node, segs []string, val *ir.Node) {
	cur := obj
	for _, seg := range segs[:len(segs)-1] {
		next := cur.Get(seg)
		if next == nil || next.Type != ir.ObjectType {
			next = ir.Object()
			cur.Put(seg, next)
		}
		cur = next
	}
	cur.Put(segs[len(segs)-1], val)
}
