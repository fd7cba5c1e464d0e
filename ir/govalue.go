package ir

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"sort"
	"strconv"
	"time"
)

// maxFromGoDepth bounds recursion in FromGo so cyclic values fail instead
// of overflowing the stack.
const maxFromGoDepth = 1000

// FromGo normalizes a Go value into the canonical tree. The mapping:
//
//   - nil becomes Null, bools and strings map directly
//   - signed and unsigned integers become Int; a uint64 above MaxInt64
//     becomes its decimal String so no precision is lost
//   - floats become Float; NaN and infinities become Null
//   - time.Time becomes an RFC 3339 String
//   - big.Int becomes Int when it fits, else its decimal String
//   - json.Number is classified as Int, Float, or String
//   - slices, arrays, and maps recurse; map keys are rendered as strings
//     and sorted so the result is deterministic
//   - *Node values pass through untouched
//   - anything else (funcs, channels, structs, complex numbers) becomes
//     Null
func FromGo(v any) (*Node, error) {
	return fromGo(v, 0)
}

func fromGo(v any, depth int) (*Node, error) {
	if depth > maxFromGoDepth {
		return nil, fmt.Errorf("%w: nesting deeper than %d levels", ErrUnsupportedValue, maxFromGoDepth)
	}
	switch t := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return t, nil
	case bool:
		return FromBool(t), nil
	case string:
		return FromString(t), nil
	case int:
		return FromInt(int64(t)), nil
	case int8:
		return FromInt(int64(t)), nil
	case int16:
		return FromInt(int64(t)), nil
	case int32:
		return FromInt(int64(t)), nil
	case int64:
		return FromInt(t), nil
	case uint:
		return fromUint(uint64(t)), nil
	case uint8:
		return FromInt(int64(t)), nil
	case uint16:
		return FromInt(int64(t)), nil
	case uint32:
		return FromInt(int64(t)), nil
	case uint64:
		return fromUint(t), nil
	case float32:
		return fromFloat(float64(t)), nil
	case float64:
		return fromFloat(t), nil
	case time.Time:
		return FromString(t.Format(time.RFC3339Nano)), nil
	case *big.Int:
		if t.IsInt64() {
			return FromInt(t.Int64()), nil
		}
		return FromString(t.String()), nil
	case big.Int:
		return fromGo(&t, depth)
	case json.Number:
		return fromNumber(t), nil
	case []any:
		vs := make([]*Node, len(t))
		for i, e := range t {
			n, err := fromGo(e, depth+1)
			if err != nil {
				return nil, err
			}
			vs[i] = n
		}
		return FromSlice(vs), nil
	case map[string]any:
		res := Object()
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			n, err := fromGo(t[k], depth+1)
			if err != nil {
				return nil, err
			}
			res.Put(k, n)
		}
		return res, nil
	}
	return fromReflect(reflect.ValueOf(v), depth)
}

func fromUint(u uint64) *Node {
	if u > math.MaxInt64 {
		return FromString(strconv.FormatUint(u, 10))
	}
	return FromInt(int64(u))
}

func fromFloat(f float64) *Node {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Null()
	}
	return FromFloat(f)
}

func fromNumber(num json.Number) *Node {
	if i, err := num.Int64(); err == nil {
		return FromInt(i)
	}
	if f, err := num.Float64(); err == nil {
		return FromFloat(f)
	}
	return FromString(num.String())
}

func fromReflect(rv reflect.Value, depth int) (*Node, error) {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null(), nil
		}
		return fromGo(rv.Elem().Interface(), depth)
	case reflect.Slice, reflect.Array:
		vs := make([]*Node, rv.Len())
		for i := range vs {
			n, err := fromGo(rv.Index(i).Interface(), depth+1)
			if err != nil {
				return nil, err
			}
			vs[i] = n
		}
		return FromSlice(vs), nil
	case reflect.Map:
		keys := rv.MapKeys()
		strKeys := make([]string, len(keys))
		for i, k := range keys {
			s, ok := keyString(k)
			if !ok {
				return Null(), nil
			}
			strKeys[i] = s
		}
		order := make([]int, len(keys))
		for i := range order {
			order[i] = i
		}
		sort.Slice(order, func(i, j int) bool {
			return strKeys[order[i]] < strKeys[order[j]]
		})
		res := Object()
		for _, i := range order {
			n, err := fromGo(rv.MapIndex(keys[i]).Interface(), depth+1)
			if err != nil {
				return nil, err
			}
			res.Put(strKeys[i], n)
		}
		return res, nil
	}
	return Null(), nil
}

func keyString(k reflect.Value) (string, bool) {
	switch k.Kind() {
	case reflect.String:
		return k.String(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(k.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(k.Uint(), 10), true
	}
	return "", false
}

// ToGo converts a tree back to plain Go values: nil, bool, int64, float64,
// string, []any, and map[string]any. Object field order is not observable
// in a Go map; callers that need it work with the Node tree directly.
func ToGo(y *Node) any {
	if y == nil {
		return nil
	}
	switch y.Type {
	case NullType:
		return nil
	case BoolType:
		return y.Bool
	case IntType:
		return y.Int64
	case FloatType:
		return y.Float64
	case StringType:
		return y.String
	case ArrayType:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			res[i] = ToGo(v)
		}
		return res
	case ObjectType:
		res := make(map[string]any, len(y.Keys))
		for i, k := range y.Keys {
			res[k] = ToGo(y.Values[i])
		}
		return res
	}
	return nil
}
