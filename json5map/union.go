package json5map

import (
	"encoding"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/signadot/json5-format/go-json5/value"
)

// Alternative is one member type of a union. Kind, when set, identifies
// a record alternative in serialized objects.
type Alternative struct {
	Type reflect.Type
	Kind *Kind
}

// Alt returns the alternative T with the given kind under DefaultKindKey.
// An empty kind leaves the alternative unkinded unless its record
// declares one.
func Alt[T any](kind string) Alternative {
	return AltKey[T](DefaultKindKey, kind)
}

func AltKey[T any](key, kind string) Alternative {
	a := Alternative{Type: reflect.TypeFor[T]()}
	if kind != "" {
		a.Kind = &Kind{Key: key, Value: kind}
	}
	return a
}

// Union is an interface type together with the ordered list of types it
// may hold. Alternatives are matched in order.
type Union struct {
	Type         reflect.Type
	Alternatives []Alternative

	records map[reflect.Type]*Record
}

type category int

const (
	recordCategory category = iota
	integralCategory
	floatCategory
	boolCategory
	stringCategory
	binaryCategory
	arrayCategory
	mapCategory
)

var categoryNames = map[category]string{
	recordCategory:   "record",
	integralCategory: "integral",
	floatCategory:    "float",
	boolCategory:     "bool",
	stringCategory:   "string",
	binaryCategory:   "binary",
	arrayCategory:    "array",
	mapCategory:      "map",
}

func (c category) String() string {
	return categoryNames[c]
}

var textMarshalerType = reflect.TypeFor[encoding.TextMarshaler]()

func categoryOf(t reflect.Type) (category, error) {
	if t.Implements(textMarshalerType) {
		return stringCategory, nil
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return integralCategory, nil
	case reflect.Float32, reflect.Float64:
		return floatCategory, nil
	case reflect.Bool:
		return boolCategory, nil
	case reflect.String:
		return stringCategory, nil
	case reflect.Slice, reflect.Array:
		if t.Elem().Kind() == reflect.Uint8 {
			return binaryCategory, nil
		}
		return arrayCategory, nil
	case reflect.Map:
		return mapCategory, nil
	case reflect.Struct:
		return recordCategory, nil
	case reflect.Pointer:
		if t.Elem().Kind() == reflect.Struct {
			return recordCategory, nil
		}
	}
	return 0, fmt.Errorf("%w: %s cannot be a union alternative", ErrUnion, t)
}

func structType(t reflect.Type) reflect.Type {
	if t.Kind() == reflect.Pointer {
		return t.Elem()
	}
	return t
}

// RegisterUnion registers u, checking that its alternatives implement
// u.Type, that no two non record alternatives share a category and that
// unkinded record alternatives have distinct essential keys. Record
// alternatives without a kind take the kind of their record.
func (r *Registry) RegisterUnion(u *Union) error {
	if u.Type == nil || u.Type.Kind() != reflect.Interface {
		return fmt.Errorf("%w: %v is not an interface type", ErrUnion, u.Type)
	}
	u.records = map[reflect.Type]*Record{}
	byCategory := map[category]reflect.Type{}
	var essentials [][]string
	var unkinded []reflect.Type
	kinds := map[Kind]reflect.Type{}
	for i := range u.Alternatives {
		alt := &u.Alternatives[i]
		if !alt.Type.Implements(u.Type) {
			return fmt.Errorf("%w: %s does not implement %s", ErrUnion, alt.Type, u.Type)
		}
		cat, err := categoryOf(alt.Type)
		if err != nil {
			return err
		}
		if cat != recordCategory {
			if prev, ok := byCategory[cat]; ok {
				return fmt.Errorf("%w: %s and %s are both %s alternatives of %s", ErrUnion, prev, alt.Type, cat, u.Type)
			}
			byCategory[cat] = alt.Type
			continue
		}
		rec, err := r.Record(structType(alt.Type))
		if err != nil {
			return err
		}
		u.records[alt.Type] = rec
		if alt.Kind == nil {
			alt.Kind = rec.Kind
		}
		if alt.Kind != nil {
			if prev, ok := kinds[*alt.Kind]; ok {
				return fmt.Errorf("%w: %s and %s share kind %s=%q", ErrUnion, prev, alt.Type, alt.Kind.Key, alt.Kind.Value)
			}
			kinds[*alt.Kind] = alt.Type
			continue
		}
		keys := rec.EssentialKeys()
		slices.Sort(keys)
		for j, other := range essentials {
			if slices.Equal(keys, other) {
				return fmt.Errorf("%w: %s and %s have the same essential keys [%s]", ErrUnion,
					unkinded[j], alt.Type, strings.Join(keys, ", "))
			}
		}
		essentials = append(essentials, keys)
		unkinded = append(unkinded, alt.Type)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.unions[u.Type] = u
	return nil
}

// RegisterUnionOf registers the union of interface type U.
func RegisterUnionOf[U any](r *Registry, alts ...Alternative) error {
	return r.RegisterUnion(&Union{Type: reflect.TypeFor[U](), Alternatives: alts})
}

func (u *Union) alternative(t reflect.Type) *Alternative {
	for i := range u.Alternatives {
		if u.Alternatives[i].Type == t {
			return &u.Alternatives[i]
		}
	}
	return nil
}

// match picks the alternative for v, or nil.
func (u *Union) match(v *value.Value) *Alternative {
	switch v.Type {
	case value.IntType, value.UintType:
		return u.first(integralCategory, floatCategory)
	case value.FloatType:
		if _, err := v.AsInt(); err == nil {
			return u.first(floatCategory, integralCategory)
		}
		return u.first(floatCategory)
	case value.BoolType:
		return u.first(boolCategory)
	case value.StringType:
		return u.first(stringCategory, binaryCategory)
	case value.ArrayType:
		return u.first(arrayCategory)
	case value.ObjectType:
		if alt := u.matchRecord(v); alt != nil {
			return alt
		}
		return u.first(mapCategory)
	}
	return nil
}

func (u *Union) first(cats ...category) *Alternative {
	for _, c := range cats {
		for i := range u.Alternatives {
			alt := &u.Alternatives[i]
			if cat, _ := categoryOf(alt.Type); cat == c && c != recordCategory {
				return alt
			}
		}
	}
	return nil
}

func (u *Union) matchRecord(v *value.Value) *Alternative {
	for i := range u.Alternatives {
		alt := &u.Alternatives[i]
		if alt.Kind == nil || u.records[alt.Type] == nil {
			continue
		}
		if k := v.Get(alt.Kind.Key); k != nil && k.Type == value.StringType && k.String == alt.Kind.Value {
			return alt
		}
	}
	for i := range u.Alternatives {
		alt := &u.Alternatives[i]
		rec := u.records[alt.Type]
		if alt.Kind != nil || rec == nil {
			continue
		}
		if hasKeys(v, rec.EssentialKeys()) {
			return alt
		}
	}
	return nil
}

func hasKeys(obj *value.Value, keys []string) bool {
	for _, k := range keys {
		if !obj.Has(k) {
			return false
		}
	}
	return true
}
