package value

import (
	"math"
	"slices"
)

// Equal reports whether a and b hold the same data, ignoring comments
// and literal formatting. Int and Uint values holding the same number are
// equal, NaN equals NaN.
func Equal(a, b *Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Type != b.Type {
		if a.Type.IsNumber() && b.Type.IsNumber() && a.Type != FloatType && b.Type != FloatType {
			x, errA := a.AsUint()
			y, errB := b.AsUint()
			return errA == nil && errB == nil && x == y
		}
		return false
	}
	switch a.Type {
	case BoolType:
		return a.Bool == b.Bool
	case IntType:
		return a.Int == b.Int
	case UintType:
		return a.Uint == b.Uint
	case FloatType:
		return a.Float == b.Float || (math.IsNaN(a.Float) && math.IsNaN(b.Float))
	case StringType:
		return a.String == b.String
	case ArrayType, ObjectType:
		if len(a.Values) != len(b.Values) || len(a.Keys) != len(b.Keys) {
			return false
		}
		for i := range a.Keys {
			if a.Keys[i].Name != b.Keys[i].Name {
				return false
			}
		}
		for i := range a.Values {
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
	}
	return true
}

// EqualFormat is like Equal but also compares comments, quoting and
// literal flags.
func EqualFormat(a, b *Value) bool {
	if !Equal(a, b) || a == nil {
		return a == b
	}
	if a.Type != b.Type || a.Format != b.Format || a.Layout != b.Layout {
		return false
	}
	if a.Type == StringType && a.Quote != b.Quote {
		return false
	}
	if !slices.Equal(a.Keys, b.Keys) {
		return false
	}
	if !commentsEqual(a.Comments, b.Comments) || !commentsEqual(a.Inner, b.Inner) || !commentsEqual(a.Tail, b.Tail) {
		return false
	}
	for i := range a.Values {
		if !EqualFormat(a.Values[i], b.Values[i]) {
			return false
		}
	}
	return true
}

func commentsEqual(a, b []Comment) bool {
	return slices.EqualFunc(a, b, func(x, y Comment) bool {
		return x.Kind == y.Kind && x.Block == y.Block && slices.Equal(x.Lines, y.Lines)
	})
}
