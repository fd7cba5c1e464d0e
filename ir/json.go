package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// MarshalJSON renders the value the node represents, not the Node struct,
// so a tree is interchangeable with any JSON consumer. Object field order
// is preserved.
func (y *Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := appendJSON(&buf, y); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func appendJSON(buf *bytes.Buffer, y *Node) error {
	if y == nil {
		buf.WriteString("null")
		return nil
	}
	switch y.Type {
	case NullType:
		buf.WriteString("null")
	case BoolType:
		buf.WriteString(strconv.FormatBool(y.Bool))
	case IntType:
		buf.WriteString(strconv.FormatInt(y.Int64, 10))
	case FloatType:
		d, err := json.Marshal(y.Float64)
		if err != nil {
			return err
		}
		buf.Write(d)
	case StringType:
		d, err := json.Marshal(y.String)
		if err != nil {
			return err
		}
		buf.Write(d)
	case ArrayType:
		buf.WriteByte('[')
		for i, v := range y.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := appendJSON(buf, v); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case ObjectType:
		buf.WriteByte('{')
		for i, k := range y.Keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			kd, err := json.Marshal(k)
			if err != nil {
				return err
			}
			buf.Write(kd)
			buf.WriteByte(':')
			if err := appendJSON(buf, y.Values[i]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("%w: node type %s", ErrUnsupportedValue, y.Type)
	}
	return nil
}

// UnmarshalJSON decodes through the json token stream rather than a Go
// map, so object field order survives and integers stay integers.
func (y *Node) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	n, err := decodeJSONValue(dec)
	if err != nil {
		return err
	}
	*y = *n
	return nil
}

// FromJSON parses a complete JSON document into a tree.
func FromJSON(data []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	n, err := decodeJSONValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("trailing data after JSON value")
	}
	return n, nil
}

// ToJSON renders a tree as compact JSON.
func ToJSON(y *Node) ([]byte, error) {
	return y.MarshalJSON()
}

func decodeJSONValue(dec *json.Decoder) (*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			obj := Object()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key is %T, not string", keyTok)
				}
				v, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				obj.Put(key, v)
			}
			// closing brace
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return obj, nil
		case '[':
			arr := FromSlice(nil)
			for dec.More() {
				v, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				arr.Append(v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return arr, nil
		}
		return nil, fmt.Errorf("unexpected delimiter %q", t)
	case string:
		return FromString(t), nil
	case json.Number:
		return fromNumber(t), nil
	case bool:
		return FromBool(t), nil
	case nil:
		return Null(), nil
	}
	return nil, fmt.Errorf("unexpected JSON token %v", tok)
}
