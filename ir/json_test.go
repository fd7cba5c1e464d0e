package ir

import (
	"encoding/json"
	"testing"
)

func TestJSONRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   string
		out  string // expected compact form; empty means same as in
	}{
		{"null", `null`, ""},
		{"bool", `true`, ""},
		{"int", `-42`, ""},
		{"float", `2.5`, ""},
		{"string", `"hi\nthere"`, ""},
		{"array", `[1,"two",null]`, ""},
		{"object order", `{"z":1,"a":2,"m":3}`, ""},
		{"nested", `{"rows":[{"id":1},{"id":2}],"ok":true}`, ""},
		{"whitespace", `{ "a" : 1 }`, `{"a":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := FromJSON([]byte(tt.in))
			if err != nil {
				t.Fatalf("FromJSON: %v", err)
			}
			d, err := ToJSON(n)
			if err != nil {
				t.Fatalf("ToJSON: %v", err)
			}
			want := tt.out
			if want == "" {
				want = tt.in
			}
			if string(d) != want {
				t.Errorf("round trip = %s, want %s", d, want)
			}
		})
	}
}

func TestJSONIntStaysInt(t *testing.T) {
	n, err := FromJSON([]byte(`{"n":1,"f":1.0}`))
	if err != nil {
		t.Fatal(err)
	}
	if n.Get("n").Type != IntType {
		t.Errorf("1 decoded as %v, want int", n.Get("n").Type)
	}
	if n.Get("f").Type != FloatType {
		t.Errorf("1.0 decoded as %v, want float", n.Get("f").Type)
	}
}

func TestJSONTrailingData(t *testing.T) {
	if _, err := FromJSON([]byte(`{"a":1} extra`)); err == nil {
		t.Fatal("trailing data must fail")
	}
}

func TestNodeAsMarshaler(t *testing.T) {
	// json.Marshal must route through Node's custom marshaler.
	n := FromKeyVals(KeyVal{Key: "k", Val: FromSlice([]*Node{Null(), FromBool(false)})})
	d, err := json.Marshal(n)
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != `{"k":[null,false]}` {
		t.Errorf("marshal = %s", d)
	}

	var back Node
	if err := json.Unmarshal(d, &back); err != nil {
		t.Fatal(err)
	}
	if !Equal(n, &back) {
		t.Error("unmarshal did not restore the tree")
	}
}
