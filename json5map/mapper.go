package json5map

import (
	"github.com/signadot/json5-format/go-json5/value"
)

// Marshaler is implemented by types which build their own value.
type Marshaler interface {
	ToJSON5(b *value.Builder) (*value.Value, error)
}

// Unmarshaler is implemented by types which read themselves from a value.
type Unmarshaler interface {
	FromJSON5(v *value.Value) error
}

// Mapper converts between Go data and values, allocating with its
// Builder and describing structs and unions with its Registry.
type Mapper struct {
	Builder  *value.Builder
	Registry *Registry

	disallowUnknown bool
}

type MapOption func(*Mapper)

// DisallowUnknownKeys makes deserializing a record fail on keys which
// are neither a field key nor its kind key.
func DisallowUnknownKeys(v bool) MapOption {
	return func(m *Mapper) { m.disallowUnknown = v }
}

// NewMapper creates a Mapper. A nil builder or registry is replaced by a
// new heap builder or an empty registry.
func NewMapper(b *value.Builder, r *Registry, opts ...MapOption) *Mapper {
	if b == nil {
		b = value.NewBuilder(nil)
	}
	if r == nil {
		r = NewRegistry()
	}
	m := &Mapper{Builder: b, Registry: r}
	for _, opt := range opts {
		opt(m)
	}
	return m
}
