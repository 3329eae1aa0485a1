package json5map

import (
	"reflect"

	"github.com/signadot/json5-format/go-json5/value"
)

// Encode serializes x as a T, so that an interface T registered as a
// union is serialized through the union.
func Encode[T any](m *Mapper, x T) (*value.Value, error) {
	return m.serialize(reflect.ValueOf(&x).Elem())
}

func Decode[T any](m *Mapper, v *value.Value) (T, error) {
	var x T
	err := m.Deserialize(v, &x)
	return x, err
}

// GetOr deserializes v as a T and returns def when that fails. The error
// is dropped; use Decode to see it.
func GetOr[T any](m *Mapper, v *value.Value, def T) T {
	if v == nil {
		return def
	}
	x, err := Decode[T](m, v)
	if err != nil {
		return def
	}
	return x
}
