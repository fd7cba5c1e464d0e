package ir

import (
	"slices"
	"strconv"
)

// Type discriminates the variants of a Node. The set is closed: every
// decoded document and every encodable tree is built from exactly these.
type Type uint8

const (
	InvalidType Type = iota
	NullType
	BoolType
	IntType
	FloatType
	StringType
	ArrayType
	ObjectType
)

// Types lists the valid node types in declaration order.
func Types() []Type {
	return []Type{
		NullType, BoolType, IntType, FloatType, StringType,
		ArrayType, ObjectType,
	}
}

func (t Type) String() string {
	switch t {
	case NullType:
		return "null"
	case BoolType:
		return "bool"
	case IntType:
		return "int"
	case FloatType:
		return "float"
	case StringType:
		return "string"
	case ArrayType:
		return "array"
	case ObjectType:
		return "object"
	default:
		return "invalid"
	}
}

// Node is one value in a TOON document tree.
//
// For ObjectType nodes, Keys[i] names Values[i] and len(Keys) always equals
// len(Values); key order is the order of appearance. For ArrayType nodes,
// Keys is nil and Values holds the elements in order. The scalar fields are
// meaningful only for the corresponding Type.
type Node struct {
	Type Type

	Keys   []string
	Values []*Node

	String  string
	Bool    bool
	Int64   int64
	Float64 float64
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: IntType, Int64: v}
}

func FromFloat(v float64) *Node {
	return &Node{Type: FloatType, Float64: v}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromSlice(vs []*Node) *Node {
	return &Node{Type: ArrayType, Values: vs}
}

// Object returns an empty object node ready for Put.
func Object() *Node {
	return &Node{Type: ObjectType}
}

// KeyVal is one object entry, used with FromKeyVals to build objects with
// an explicit field order.
type KeyVal struct {
	Key string
	Val *Node
}

func FromKeyVals(kvs ...KeyVal) *Node {
	res := &Node{
		Type:   ObjectType,
		Keys:   make([]string, len(kvs)),
		Values: make([]*Node, len(kvs)),
	}
	for i := range kvs {
		res.Keys[i] = kvs[i].Key
		res.Values[i] = kvs[i].Val
	}
	return res
}

// Get returns the value for field in an object node, or nil if the node is
// not an object or has no such field.
func (y *Node) Get(field string) *Node {
	if y == nil || y.Type != ObjectType {
		return nil
	}
	for i := range y.Keys {
		if y.Keys[i] == field {
			return y.Values[i]
		}
	}
	return nil
}

// Index returns the position of field in an object node, or -1.
func (y *Node) Index(field string) int {
	if y == nil || y.Type != ObjectType {
		return -1
	}
	return slices.Index(y.Keys, field)
}

// Put appends a field to an object node, or overwrites the value of an
// existing field in place, keeping its original position.
func (y *Node) Put(field string, v *Node) {
	if i := y.Index(field); i >= 0 {
		y.Values[i] = v
		return
	}
	y.Keys = append(y.Keys, field)
	y.Values = append(y.Values, v)
}

// Append adds an element to an array node.
func (y *Node) Append(v *Node) {
	y.Values = append(y.Values, v)
}

// Len returns the number of fields or elements of a composite node and 0
// for scalars.
func (y *Node) Len() int {
	return len(y.Values)
}

func (y *Node) Clone() *Node {
	if y == nil {
		return nil
	}
	res := &Node{
		Type:    y.Type,
		String:  y.String,
		Bool:    y.Bool,
		Int64:   y.Int64,
		Float64: y.Float64,
	}
	if y.Keys != nil {
		res.Keys = slices.Clone(y.Keys)
	}
	if y.Values != nil {
		res.Values = make([]*Node, len(y.Values))
		for i, v := range y.Values {
			res.Values[i] = v.Clone()
		}
	}
	return res
}

// Visit walks the tree in depth-first order, calling f before and after the
// children of each node. Returning dive=false from the pre call skips the
// children.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	_, err = f(y, true)
	return err
}

// IsPrimitive reports whether the node is a scalar (not array or object).
func (y *Node) IsPrimitive() bool {
	switch y.Type {
	case ArrayType, ObjectType:
		return false
	default:
		return true
	}
}

// FormatInt renders an integer node's value in plain decimal.
func (y *Node) FormatInt() string {
	return strconv.FormatInt(y.Int64, 10)
}
