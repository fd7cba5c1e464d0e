package encode

import (
	"strings"

	"github.com/fatih/color"
	"github.com/toon-format/toon-go/ir"
)

// Colorable identifies one colorable span of output: the node type it
// belongs to together with its syntactic role.
type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

// ColorAttr is the syntactic role of a colorable span.
type ColorAttr int

const (
	// FieldColor colors object keys, including tabular header fields.
	FieldColor ColorAttr = iota
	// ValueColor colors primitive values.
	ValueColor
	// SepColor colors punctuation: colons, array headers, item
	// markers, and delimiters.
	SepColor
)

// Colors maps colorables to sprintf-style coloring functions, with
// Default as the fallback for unmapped combinations.
type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

// NewColors returns the standard color scheme.
func NewColors() *Colors {
	res := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range ir.Types() {
		res.Map[Colorable{Type: t, Attr: SepColor}] =
			color.RGB(255, 0, 196).SprintfFunc()
	}
	for _, t := range []ir.Type{ir.IntType, ir.FloatType} {
		res.Map[Colorable{Type: t, Attr: ValueColor}] =
			color.RGB(128, 216, 236).SprintfFunc()
	}
	res.Map[Colorable{Type: ir.NullType, Attr: ValueColor}] =
		color.RGB(168, 0, 196).SprintfFunc()
	res.Map[Colorable{Type: ir.BoolType, Attr: ValueColor}] =
		color.CyanString
	res.Map[Colorable{Type: ir.StringType, Attr: ValueColor}] =
		color.RGB(8, 196, 16).SprintfFunc()
	res.Map[Colorable{Type: ir.ObjectType, Attr: FieldColor}] =
		color.RGB(128, 168, 196).SprintfFunc()
	res.Map[Colorable{Type: ir.ObjectType, Attr: SepColor}] =
		color.RGB(196, 128, 128).SprintfFunc()
	for k, v := range res.Map {
		f := v
		res.Map[k] = func(s string, args ...any) string {
			return f(strings.Replace(s, "%", "%%", -1), args...)
		}
	}
	return res
}

// Color renders s with the function registered for (t, a).
func (c *Colors) Color(t ir.Type, a ColorAttr, s string) string {
	return c.Get(t, a)(s)
}

// Get returns the coloring function for (t, a), falling back to
// c.Default and then to the identity.
func (c *Colors) Get(t ir.Type, a ColorAttr) func(string, ...any) string {
	if f, ok := c.Map[Colorable{Type: t, Attr: a}]; ok {
		return f
	}
	if c.Default != nil {
		return c.Default
	}
	return colorDefault
}

func colorDefault(s string, _ ...any) string {
	return s
}
