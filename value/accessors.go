package value

import (
	"fmt"
	"math"
)

// ConversionError is returned by the strict accessors when a value does
// not hold the requested kind of data.
type ConversionError struct {
	Want string
	Got  Type
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert %s to %s", e.Got, e.Want)
}

func (v *Value) typ() Type {
	if v == nil {
		return UndefinedType
	}
	return v.Type
}

func (v *Value) AsInt() (int64, error) {
	switch v.typ() {
	case IntType:
		return v.Int, nil
	case UintType:
		if v.Uint <= math.MaxInt64 {
			return int64(v.Uint), nil
		}
	case FloatType:
		if f := v.Float; f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 {
			return int64(f), nil
		}
	}
	return 0, &ConversionError{Want: "int", Got: v.typ()}
}

func (v *Value) AsUint() (uint64, error) {
	switch v.typ() {
	case IntType:
		if v.Int >= 0 {
			return uint64(v.Int), nil
		}
	case UintType:
		return v.Uint, nil
	case FloatType:
		if f := v.Float; f == math.Trunc(f) && f >= 0 && f < math.MaxUint64 {
			return uint64(f), nil
		}
	}
	return 0, &ConversionError{Want: "uint", Got: v.typ()}
}

func (v *Value) AsFloat() (float64, error) {
	switch v.typ() {
	case IntType:
		return float64(v.Int), nil
	case UintType:
		return float64(v.Uint), nil
	case FloatType:
		return v.Float, nil
	}
	return 0, &ConversionError{Want: "float", Got: v.typ()}
}

func (v *Value) AsString() (string, error) {
	if v.typ() == StringType {
		return v.String, nil
	}
	return "", &ConversionError{Want: "string", Got: v.typ()}
}

func (v *Value) AsBool() (bool, error) {
	if v.typ() == BoolType {
		return v.Bool, nil
	}
	return false, &ConversionError{Want: "bool", Got: v.typ()}
}

// The Or accessors never fail: when v is nil or holds something else,
// they return def. Use the As forms to see the conversion error.

func (v *Value) IntOr(def int64) int64 {
	x, err := v.AsInt()
	if err != nil {
		return def
	}
	return x
}

func (v *Value) UintOr(def uint64) uint64 {
	x, err := v.AsUint()
	if err != nil {
		return def
	}
	return x
}

func (v *Value) FloatOr(def float64) float64 {
	x, err := v.AsFloat()
	if err != nil {
		return def
	}
	return x
}

func (v *Value) StringOr(def string) string {
	x, err := v.AsString()
	if err != nil {
		return def
	}
	return x
}

func (v *Value) BoolOr(def bool) bool {
	x, err := v.AsBool()
	if err != nil {
		return def
	}
	return x
}
