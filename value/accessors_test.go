package value

import (
	"errors"
	"math"
	"testing"
)

func TestStrictAccessors(t *testing.T) {
	b := NewBuilder(nil)
	tests := []struct {
		name    string
		v       *Value
		wantErr bool
		check   func(*Value) (any, error)
		want    any
	}{
		{"int", b.Int(-4), false, func(v *Value) (any, error) { return v.AsInt() }, int64(-4)},
		{"uint as int", b.Uint(5), false, func(v *Value) (any, error) { return v.AsInt() }, int64(5)},
		{"big uint as int", b.Uint(math.MaxUint64), true, func(v *Value) (any, error) { return v.AsInt() }, int64(0)},
		{"integral float as int", b.Float(3), false, func(v *Value) (any, error) { return v.AsInt() }, int64(3)},
		{"fraction as int", b.Float(3.5), true, func(v *Value) (any, error) { return v.AsInt() }, int64(0)},
		{"negative as uint", b.Int(-1), true, func(v *Value) (any, error) { return v.AsUint() }, uint64(0)},
		{"int as float", b.Int(2), false, func(v *Value) (any, error) { return v.AsFloat() }, 2.0},
		{"string", b.String("s"), false, func(v *Value) (any, error) { return v.AsString() }, "s"},
		{"number as string", b.Int(1), true, func(v *Value) (any, error) { return v.AsString() }, ""},
		{"bool", b.Bool(true), false, func(v *Value) (any, error) { return v.AsBool() }, true},
		{"nil as bool", nil, true, func(v *Value) (any, error) { return v.AsBool() }, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.check(tc.v)
			if tc.wantErr {
				var ce *ConversionError
				if !errors.As(err, &ce) {
					t.Fatalf("expected ConversionError, got %v", err)
				}
			} else if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

// The Or accessors swallow conversion failures and return the default.
func TestOrAccessorsAbsorbFailure(t *testing.T) {
	b := NewBuilder(nil)
	s := b.String("not a number")
	if got := s.IntOr(7); got != 7 {
		t.Errorf("IntOr: got %d", got)
	}
	if got := s.UintOr(8); got != 8 {
		t.Errorf("UintOr: got %d", got)
	}
	if got := s.FloatOr(1.5); got != 1.5 {
		t.Errorf("FloatOr: got %v", got)
	}
	if got := b.Int(1).StringOr("d"); got != "d" {
		t.Errorf("StringOr: got %q", got)
	}
	if got := b.Null().BoolOr(true); !got {
		t.Errorf("BoolOr: got %v", got)
	}
	var missing *Value
	if got := missing.IntOr(-1); got != -1 {
		t.Errorf("IntOr on nil: got %d", got)
	}
	if got := b.Int(3).IntOr(7); got != 3 {
		t.Errorf("IntOr on int: got %d", got)
	}
}
