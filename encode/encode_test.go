package encode

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/toon-format/toon-go/ir"
	"github.com/toon-format/toon-go/token"
)

func obj(kvs ...ir.KeyVal) *ir.Node { return ir.FromKeyVals(kvs...) }
func kv(k string, v *ir.Node) ir.KeyVal {
	return ir.KeyVal{Key: k, Val: v}
}
func arr(vs ...*ir.Node) *ir.Node { return ir.FromSlice(vs) }
func str(s string) *ir.Node       { return ir.FromString(s) }
func num(i int64) *ir.Node        { return ir.FromInt(i) }

func encodeString(t *testing.T, node *ir.Node, opts ...EncodeOption) string {
	t.Helper()
	s, err := String(node, opts...)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	return s
}

func TestEncodeObjects(t *testing.T) {
	tests := []struct {
		name string
		node *ir.Node
		want string
	}{
		{
			"flat",
			obj(kv("id", num(7)), kv("name", str("Ada"))),
			"id: 7\nname: Ada",
		},
		{
			"nested",
			obj(kv("user", obj(
				kv("name", str("Ada")),
				kv("admin", ir.FromBool(true)),
			))),
			"user:\n  name: Ada\n  admin: true",
		},
		{
			"deep",
			obj(kv("a", obj(kv("b", obj(kv("c", num(1))))))),
			"a:\n  b:\n    c: 1",
		},
		{
			"empty root object",
			ir.Object(),
			"",
		},
		{
			"empty nested object",
			obj(kv("empty", ir.Object()), kv("after", ir.Null())),
			"empty:\nafter: null",
		},
		{
			"key order preserved",
			obj(kv("z", num(1)), kv("a", num(2))),
			"z: 1\na: 2",
		},
		{
			"keys needing quotes",
			obj(kv("a b", num(1)), kv("3d", num(2)), kv("", num(3))),
			`"a b": 1` + "\n" + `"3d": 2` + "\n" + `"": 3`,
		},
		{
			"dotted key stays unquoted",
			obj(kv("a.b", num(1))),
			"a.b: 1",
		},
		{
			"values needing quotes",
			obj(
				kv("colon", str("a:b")),
				kv("zero", str("05")),
				kv("bool", str("true")),
				kv("blank", str("")),
				kv("pad", str(" x")),
				kv("dash", str("-start")),
			),
			"colon: \"a:b\"\nzero: \"05\"\nbool: \"true\"\n" +
				"blank: \"\"\npad: \" x\"\ndash: \"-start\"",
		},
		{
			"escapes in value",
			obj(kv("s", str("a\nb\"c"))),
			`s: "a\nb\"c"`,
		},
		{
			"plain text unquoted",
			obj(kv("note", str("left to right")), kv("word", str("café"))),
			"note: left to right\nword: café",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := encodeString(t, tc.node); got != tc.want {
				t.Errorf("got\n%s\nwant\n%s", got, tc.want)
			}
		})
	}
}

func TestEncodeRootValues(t *testing.T) {
	tests := []struct {
		name string
		node *ir.Node
		want string
	}{
		{"string", str("hello"), "hello"},
		{"quoted string", str("a:b"), `"a:b"`},
		{"int", num(42), "42"},
		{"bool", ir.FromBool(false), "false"},
		{"null", ir.Null(), "null"},
		{"nil node", nil, "null"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := encodeString(t, tc.node); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestEncodeNumbers(t *testing.T) {
	tests := []struct {
		name string
		node *ir.Node
		want string
	}{
		{"min int", num(math.MinInt64), "-9223372036854775808"},
		{"max int", num(math.MaxInt64), "9223372036854775807"},
		{"float", ir.FromFloat(3.14), "3.14"},
		{"negative zero", ir.FromFloat(math.Copysign(0, -1)), "0"},
		{"positive zero", ir.FromFloat(0), "0"},
		{"whole float drops point", ir.FromFloat(1000), "1000"},
		{"fraction", ir.FromFloat(0.5), "0.5"},
		{"large float stays decimal", ir.FromFloat(1e21), "1000000000000000000000"},
		{"small float stays decimal", ir.FromFloat(1e-7), "0.0000001"},
		{"nan", ir.FromFloat(math.NaN()), "null"},
		{"positive infinity", ir.FromFloat(math.Inf(1)), "null"},
		{"negative infinity", ir.FromFloat(math.Inf(-1)), "null"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := encodeString(t, tc.node); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestEncodeArrays(t *testing.T) {
	tests := []struct {
		name string
		node *ir.Node
		want string
	}{
		{
			"inline",
			obj(kv("items", arr(num(1), num(2), num(3)))),
			"items[3]: 1,2,3",
		},
		{
			"inline mixed primitives",
			obj(kv("xs", arr(str("a"), ir.Null(), ir.FromBool(true), num(0)))),
			"xs[4]: a,null,true,0",
		},
		{
			"empty",
			obj(kv("empty", arr())),
			"empty[0]:",
		},
		{
			"root inline",
			arr(num(1), num(2)),
			"[2]: 1,2",
		},
		{
			"root empty",
			arr(),
			"[0]:",
		},
		{
			"element with delimiter quoted",
			obj(kv("csv", arr(str("a,b"), str("c")))),
			`csv[2]: "a,b",c`,
		},
		{
			"nested arrays expand",
			obj(kv("pairs", arr(arr(num(1), num(2)), arr(num(3), num(4))))),
			"pairs[2]:\n  - [2]: 1,2\n  - [2]: 3,4",
		},
		{
			"object items",
			obj(kv("list", arr(
				obj(kv("a", num(1)), kv("b", obj(kv("c", num(2))))),
				obj(kv("a", num(3))),
			))),
			"list[2]:\n  - a: 1\n    b:\n      c: 2\n  - a: 3",
		},
		{
			"empty object item",
			obj(kv("l", arr(ir.Object(), num(1)))),
			"l[2]:\n  -\n  - 1",
		},
		{
			"array first in item",
			obj(kv("items", arr(
				obj(kv("meta", arr(num(1), num(2))), kv("x", num(5))),
			))),
			"items[1]:\n  - meta[2]: 1,2\n    x: 5",
		},
		{
			"nested array first in item",
			obj(kv("items", arr(
				obj(kv("grid", arr(arr(num(1)), arr(num(2)))), kv("x", num(5))),
			))),
			"items[1]:\n  - grid[2]:\n      - [1]: 1\n      - [1]: 2\n    x: 5",
		},
		{
			"object first in item",
			obj(kv("list", arr(
				obj(kv("meta", obj(kv("k", num(1)))), kv("next", num(2))),
			))),
			"list[1]:\n  - meta:\n      k: 1\n    next: 2",
		},
		{
			"root expanded",
			arr(obj(kv("a", num(1))), num(2)),
			"[2]:\n  - a: 1\n  - 2",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := encodeString(t, tc.node); got != tc.want {
				t.Errorf("got\n%s\nwant\n%s", got, tc.want)
			}
		})
	}
}

func TestEncodeTabular(t *testing.T) {
	tests := []struct {
		name string
		node *ir.Node
		want string
	}{
		{
			"basic",
			obj(kv("rows", arr(
				obj(kv("sku", str("A1")), kv("qty", num(2))),
				obj(kv("sku", str("B2")), kv("qty", num(1))),
			))),
			"rows[2]{sku,qty}:\n  A1,2\n  B2,1",
		},
		{
			"field order from first element",
			obj(kv("grid", arr(
				obj(kv("z", num(1)), kv("a", num(2)), kv("m", num(3))),
				obj(kv("a", num(5)), kv("m", num(6)), kv("z", num(4))),
			))),
			"grid[2]{z,a,m}:\n  1,2,3\n  4,5,6",
		},
		{
			"quoted field name",
			obj(kv("t", arr(
				obj(kv("a b", num(1)), kv("c", num(2))),
			))),
			"t[1]{\"a b\",c}:\n  1,2",
		},
		{
			"quoted cell",
			obj(kv("t", arr(obj(kv("a", str("x,y")))))),
			"t[1]{a}:\n  \"x,y\"",
		},
		{
			"missing field falls back to items",
			obj(kv("t", arr(
				obj(kv("a", num(1)), kv("b", num(2))),
				obj(kv("a", num(3)), kv("c", num(4))),
			))),
			"t[2]:\n  - a: 1\n    b: 2\n  - a: 3\n    c: 4",
		},
		{
			"nested value falls back to items",
			obj(kv("t", arr(obj(kv("a", obj(kv("b", num(1)))))))),
			"t[1]:\n  - a:\n      b: 1",
		},
		{
			"empty first object falls back to items",
			obj(kv("t", arr(ir.Object()))),
			"t[1]:\n  -",
		},
		{
			"tabular first in item",
			obj(kv("wrap", arr(
				obj(
					kv("rows", arr(obj(kv("a", num(1))), obj(kv("a", num(2))))),
					kv("n", num(3)),
				),
			))),
			"wrap[1]:\n  - rows[2]{a}:\n      1\n      2\n    n: 3",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := encodeString(t, tc.node); got != tc.want {
				t.Errorf("got\n%s\nwant\n%s", got, tc.want)
			}
		})
	}
}

func TestEncodeDelims(t *testing.T) {
	rows := obj(kv("rows", arr(
		obj(kv("sku", str("A1")), kv("qty", num(2))),
		obj(kv("sku", str("B2")), kv("qty", num(1))),
	)))
	tests := []struct {
		name  string
		node  *ir.Node
		delim token.Delim
		want  string
	}{
		{
			"pipe inline",
			obj(kv("items", arr(num(1), num(2)))),
			token.Pipe,
			"items[2|]: 1|2",
		},
		{
			"pipe tabular",
			rows,
			token.Pipe,
			"rows[2|]{sku|qty}:\n  A1|2\n  B2|1",
		},
		{
			"tab inline",
			obj(kv("items", arr(num(1), num(2)))),
			token.TabDelim,
			"items[2\t]: 1\t2",
		},
		{
			"tab tabular",
			rows,
			token.TabDelim,
			"rows[2\t]{sku\tqty}:\n  A1\t2\n  B2\t1",
		},
		{
			"only active delimiter forces quotes",
			obj(kv("xs", arr(str("a,b"), str("c|d")))),
			token.Pipe,
			"xs[2|]: a,b|\"c|d\"",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := encodeString(t, tc.node, EncodeDelim(tc.delim))
			if got != tc.want {
				t.Errorf("got\n%s\nwant\n%s", got, tc.want)
			}
		})
	}
}

func TestEncodeLengthMarker(t *testing.T) {
	tests := []struct {
		name string
		node *ir.Node
		opts []EncodeOption
		want string
	}{
		{
			"inline",
			obj(kv("items", arr(num(1), num(2), num(3)))),
			[]EncodeOption{LengthMarker(true)},
			"items[#3]: 1,2,3",
		},
		{
			"marker before delimiter symbol",
			obj(kv("items", arr(num(1), num(2)))),
			[]EncodeOption{LengthMarker(true), EncodeDelim(token.Pipe)},
			"items[#2|]: 1|2",
		},
		{
			"nested headers marked",
			obj(kv("l", arr(arr(num(1))))),
			[]EncodeOption{LengthMarker(true)},
			"l[#1]:\n  - [#1]: 1",
		},
		{
			"tabular",
			obj(kv("rows", arr(obj(kv("a", num(1)))))),
			[]EncodeOption{LengthMarker(true)},
			"rows[#1]{a}:\n  1",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := encodeString(t, tc.node, tc.opts...); got != tc.want {
				t.Errorf("got\n%s\nwant\n%s", got, tc.want)
			}
		})
	}
}

func TestEncodeIndentOption(t *testing.T) {
	doc := obj(kv("user", obj(kv("name", str("Ada")))))
	if got := encodeString(t, doc, EncodeIndent(4)); got != "user:\n    name: Ada" {
		t.Errorf("indent 4: got\n%s", got)
	}
	if got := encodeString(t, doc, EncodeIndent(1)); got != "user:\n name: Ada" {
		t.Errorf("indent 1: got\n%s", got)
	}
}

func TestEncodeErrors(t *testing.T) {
	if _, err := String(obj(kv("a", num(1))), EncodeIndent(0)); err == nil {
		t.Error("indent 0: no error")
	}
	if _, err := String(num(1), EncodeDelim(token.Delim(';'))); !errors.Is(err, token.ErrBadDelim) {
		t.Errorf("bad delim: error = %v, want ErrBadDelim", err)
	}
	bad := &ir.Node{Type: ir.InvalidType}
	if _, err := String(bad); !errors.Is(err, ir.ErrUnsupportedValue) {
		t.Errorf("invalid root: error = %v, want ErrUnsupportedValue", err)
	}
	if _, err := String(obj(kv("a", arr(bad)))); !errors.Is(err, ir.ErrUnsupportedValue) {
		t.Errorf("invalid element: error = %v, want ErrUnsupportedValue", err)
	}
}

func TestEncodeNoTrailingWhitespace(t *testing.T) {
	docs := []*ir.Node{
		obj(kv("a", num(1)), kv("b", obj(kv("c", str("x"))))),
		obj(kv("rows", arr(obj(kv("a", num(1))), obj(kv("a", num(2)))))),
		obj(kv("l", arr(ir.Object(), arr(), obj(kv("x", num(1)))))),
		arr(num(1), num(2)),
	}
	for _, doc := range docs {
		out := encodeString(t, doc)
		if strings.HasSuffix(out, "\n") {
			t.Errorf("trailing newline in\n%q", out)
		}
		for _, line := range strings.Split(out, "\n") {
			if line != strings.TrimRight(line, " \t") {
				t.Errorf("trailing space on line %q", line)
			}
		}
	}
}

func TestEncodeColors(t *testing.T) {
	prev := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = prev }()

	doc := obj(kv("n", num(1)), kv("pct", str("100%")))
	out := encodeString(t, doc, EncodeColors(NewColors()))
	if !strings.Contains(out, "\x1b[") {
		t.Errorf("no escape sequences in %q", out)
	}
	if !strings.Contains(out, "100%") {
		t.Errorf("percent not preserved in %q", out)
	}
}

func TestColorsFallback(t *testing.T) {
	var c Colors
	if got := c.Color(ir.IntType, ValueColor, "x"); got != "x" {
		t.Errorf("zero Colors: got %q", got)
	}
	if got := NewColors().Color(ir.ArrayType, FieldColor, "k"); got != "k" {
		t.Errorf("unmapped colorable: got %q", got)
	}
}

func TestMustString(t *testing.T) {
	if got := MustString(obj(kv("a", num(1)))); got != "a: 1" {
		t.Errorf("got %q", got)
	}
	defer func() {
		if recover() == nil {
			t.Error("no panic for invalid node")
		}
	}()
	MustString(&ir.Node{Type: ir.InvalidType})
}
