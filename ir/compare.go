package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result is 0 if a == b, -1 if a < b, and +1 if a > b. The order is
// total: nodes rank Null < Bool < numbers < String < Array < Object, with
// int and float values compared numerically inside one rank.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case NullType:
		return 0
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case IntType, FloatType:
		return compareNumbers(a, b)
	case StringType:
		return strings.Compare(a.String, b.String)
	case ArrayType:
		return compareArrays(a, b)
	case ObjectType:
		return compareObjects(a, b)
	}
	return 0
}

// Equal reports whether a and b represent the same value. Int and float
// nodes are distinct even when numerically equal, so a tree that survives
// Equal also re-encodes to the same text.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Type != b.Type {
		return false
	}
	return Compare(a, b) == 0
}

func rank(t Type) int {
	switch t {
	case NullType:
		return 0
	case BoolType:
		return 1
	case IntType, FloatType:
		return 2
	case StringType:
		return 3
	case ArrayType:
		return 4
	case ObjectType:
		return 5
	}
	return -1
}

func compareNumbers(a, b *Node) int {
	if a.Type == IntType && b.Type == IntType {
		return cmp.Compare(a.Int64, b.Int64)
	}
	return cmp.Compare(numValue(a), numValue(b))
}

func numValue(y *Node) float64 {
	if y.Type == IntType {
		return float64(y.Int64)
	}
	return y.Float64
}

func compareArrays(a, b *Node) int {
	n := min(len(a.Values), len(b.Values))
	for i := 0; i < n; i++ {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.Values), len(b.Values))
}

func compareObjects(a, b *Node) int {
	n := min(len(a.Keys), len(b.Keys))
	for i := 0; i < n; i++ {
		if c := strings.Compare(a.Keys[i], b.Keys[i]); c != 0 {
			return c
		}
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.Keys), len(b.Keys))
}
