package format

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/toon-format/toon-go/encode"
	"github.com/toon-format/toon-go/ir"
	"github.com/toon-format/toon-go/parse"
)

// Decode parses data in format f into a tree. Object field order is
// preserved for every format; the parse options apply only to the TOON
// reader.
func Decode(f Format, data []byte, opts ...parse.ParseOption) (*ir.Node, error) {
	switch f {
	case ToonFormat:
		return parse.Parse(data, opts...)
	case JSONFormat:
		return ir.FromJSON(data)
	case YAMLFormat:
		return fromYAML(data)
	}
	return nil, fmt.Errorf("%w: %d", ErrBadFormat, f)
}

// Encode renders node in format f. The encode options apply only to the
// TOON writer; JSON output is two-space indented, YAML follows the
// yaml package defaults.
func Encode(f Format, node *ir.Node, opts ...encode.EncodeOption) ([]byte, error) {
	switch f {
	case ToonFormat:
		s, err := encode.String(node, opts...)
		if err != nil {
			return nil, err
		}
		return []byte(s), nil
	case JSONFormat:
		d, err := ir.ToJSON(node)
		if err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		if err := json.Indent(&buf, d, "", "  "); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case YAMLFormat:
		v, err := toYAML(node)
		if err != nil {
			return nil, err
		}
		return yaml.Marshal(v)
	}
	return nil, fmt.Errorf("%w: %d", ErrBadFormat, f)
}

// fromYAML decodes through yaml.MapSlice so field order survives.
func fromYAML(data []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(data, &v, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	return yamlValue(v)
}

func yamlValue(v any) (*ir.Node, error) {
	switch t := v.(type) {
	case yaml.MapSlice:
		obj := ir.Object()
		for _, item := range t {
			val, err := yamlValue(item.Value)
			if err != nil {
				return nil, err
			}
			obj.Put(fmt.Sprint(item.Key), val)
		}
		return obj, nil
	case []any:
		arr := ir.FromSlice(nil)
		for _, e := range t {
			val, err := yamlValue(e)
			if err != nil {
				return nil, err
			}
			arr.Append(val)
		}
		return arr, nil
	default:
		return ir.FromGo(t)
	}
}

func toYAML(y *ir.Node) (any, error) {
	if y == nil {
		return nil, nil
	}
	switch y.Type {
	case ir.ObjectType:
		ms := make(yaml.MapSlice, 0, y.Len())
		for i, k := range y.Keys {
			v, err := toYAML(y.Values[i])
			if err != nil {
				return nil, err
			}
			ms = append(ms, yaml.MapItem{Key: k, Value: v})
		}
		return ms, nil
	case ir.ArrayType:
		vs := make([]any, y.Len())
		for i, e := range y.Values {
			v, err := toYAML(e)
			if err != nil {
				return nil, err
			}
			vs[i] = v
		}
		return vs, nil
	case ir.InvalidType:
		return nil, fmt.Errorf("%w: invalid node", ir.ErrUnsupportedValue)
	default:
		return ir.ToGo(y), nil
	}
}
