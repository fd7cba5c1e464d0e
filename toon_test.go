package toon

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/toon-format/toon-go/encode"
	"github.com/toon-format/toon-go/ir"
	"github.com/toon-format/toon-go/parse"
	"github.com/toon-format/toon-go/token"
)

func TestEncodeGoValues(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want string
	}{
		{
			"map keys sorted",
			map[string]any{"b": 1, "a": 2},
			"a: 2\nb: 1",
		},
		{
			"negative zero normalized",
			map[string]any{"value": math.Copysign(0, -1)},
			"value: 0",
		},
		{
			"nested",
			map[string]any{
				"user": map[string]any{"name": "Ada", "admin": true},
			},
			"user:\n  admin: true\n  name: Ada",
		},
		{
			"slice",
			map[string]any{"tags": []any{"reading", "gaming"}},
			"tags[2]: reading,gaming",
		},
		{
			"uniform maps go tabular",
			[]any{
				map[string]any{"sku": "A1", "qty": 2},
				map[string]any{"sku": "B2", "qty": 1},
			},
			"[2]{qty,sku}:\n  2,A1\n  1,B2",
		},
		{
			"nan becomes null",
			map[string]any{"x": math.NaN()},
			"x: null",
		},
		{
			"time is a quoted string",
			map[string]any{"at": time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)},
			`at: "2024-03-01T12:00:00Z"`,
		},
		{
			"huge uint stays exact",
			map[string]any{"n": uint64(math.MaxUint64)},
			`n: "18446744073709551615"`,
		},
		{
			"nil value",
			map[string]any{"x": nil},
			"x: null",
		},
		{
			"struct has no mapping",
			struct{ X int }{1},
			"null",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Encode(tc.v)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			if got != tc.want {
				t.Errorf("got\n%s\nwant\n%s", got, tc.want)
			}
		})
	}
}

func TestEncodeOptionsPassThrough(t *testing.T) {
	got, err := Encode(map[string]any{"items": []any{1, 2}},
		encode.EncodeDelim(token.Pipe), encode.LengthMarker(true))
	if err != nil {
		t.Fatal(err)
	}
	if want := "items[#2|]: 1|2"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDecodeGoValues(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want any
	}{
		{
			"object",
			"id: 7\nname: Ada",
			map[string]any{"id": int64(7), "name": "Ada"},
		},
		{
			"arrays",
			"tags[2]: a,b\nnums[3]: 1,2,3",
			map[string]any{
				"tags": []any{"a", "b"},
				"nums": []any{int64(1), int64(2), int64(3)},
			},
		},
		{
			"tabular",
			"rows[2]{sku,qty}:\n  A1,2\n  B2,1",
			map[string]any{"rows": []any{
				map[string]any{"sku": "A1", "qty": int64(2)},
				map[string]any{"sku": "B2", "qty": int64(1)},
			}},
		},
		{
			"scalar root",
			"hello",
			"hello",
		},
		{
			"root array",
			"[2]: true,null",
			[]any{true, nil},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Decode([]byte(tc.in))
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if d := cmp.Diff(tc.want, got); d != "" {
				t.Errorf("decode diff (-want +got):\n%s", d)
			}
		})
	}
}

func TestDecodeStrict(t *testing.T) {
	if _, err := Decode([]byte("items[2]: 1"), parse.ParseStrict(true)); !errors.Is(err, ir.ErrCountMismatch) {
		t.Errorf("error = %v, want ErrCountMismatch", err)
	}
	if _, err := Decode(nil, parse.ParseStrict(true)); !errors.Is(err, ir.ErrEmptyInput) {
		t.Errorf("error = %v, want ErrEmptyInput", err)
	}
}

func TestLoadDump(t *testing.T) {
	v := map[string]any{
		"id":   int64(7),
		"tags": []any{"a", "b"},
		"user": map[string]any{"name": "Ada"},
	}
	var buf bytes.Buffer
	if err := Dump(&buf, v); err != nil {
		t.Fatalf("dump: %v", err)
	}
	got, err := Load(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if d := cmp.Diff(v, got); d != "" {
		t.Errorf("round trip diff (-want +got):\n%s", d)
	}
}
