package json5map

import (
	"encoding"
	"encoding/base64"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/signadot/json5-format/go-json5/debug"
	"github.com/signadot/json5-format/go-json5/eval"
	"github.com/signadot/json5-format/go-json5/value"
)

var (
	valuePtrType    = reflect.TypeFor[*value.Value]()
	marshalerType   = reflect.TypeFor[Marshaler]()
	unmarshalerType = reflect.TypeFor[Unmarshaler]()
)

// Serialize converts x to a value, using the dynamic type of x. Use
// Encode to serialize through a union type.
func (m *Mapper) Serialize(x any) (*value.Value, error) {
	return m.serialize(reflect.ValueOf(x))
}

func (m *Mapper) serialize(rv reflect.Value) (*value.Value, error) {
	s := &serializer{Mapper: m, visited: map[uintptr]string{}}
	res, err := s.toValue(rv, "")
	if err != nil {
		return nil, err
	}
	if debug.Map() {
		debug.Logf("serialized %v\n", res)
	}
	return res, nil
}

type serializer struct {
	*Mapper
	// visited tracks the pointers being serialized for cycle detection.
	visited map[uintptr]string
}

func (s *serializer) toValue(rv reflect.Value, path string) (*value.Value, error) {
	b := s.Builder
	if !rv.IsValid() {
		return b.Null(), nil
	}
	t := rv.Type()
	if t == valuePtrType {
		if rv.IsNil() {
			return b.Null(), nil
		}
		return b.DeepCopy(rv.Interface().(*value.Value)), nil
	}
	if t.Kind() == reflect.Interface {
		if rv.IsNil() {
			return b.Null(), nil
		}
		if u := s.Registry.Union(t); u != nil {
			return s.unionToValue(u, rv.Elem(), path)
		}
		return s.toValue(rv.Elem(), path)
	}
	if t.Kind() == reflect.Pointer && rv.IsNil() {
		return b.Null(), nil
	}
	if x, ok := asInterface[Marshaler](rv, marshalerType); ok {
		res, err := x.ToJSON5(b)
		if err != nil {
			return nil, &MarshalError{FieldPath: path, Message: err.Error(), Err: err}
		}
		return res, nil
	}
	if x, ok := asInterface[encoding.TextMarshaler](rv, textMarshalerType); ok {
		d, err := x.MarshalText()
		if err != nil {
			return nil, &MarshalError{FieldPath: path, Message: err.Error(), Err: err}
		}
		return b.String(string(d)), nil
	}

	switch t.Kind() {
	case reflect.Pointer:
		ptr := rv.Pointer()
		if prev, ok := s.visited[ptr]; ok {
			return nil, &MarshalError{
				FieldPath: path,
				Message:   fmt.Sprintf("pointer already visited at %q", prev),
				Err:       ErrCycle,
			}
		}
		s.visited[ptr] = path
		defer delete(s.visited, ptr)
		return s.toValue(rv.Elem(), path)
	case reflect.Bool:
		return b.Bool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return b.Int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return b.Unsigned(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return b.Float(rv.Float()), nil
	case reflect.String:
		return b.String(rv.String()), nil
	case reflect.Slice:
		if rv.IsNil() {
			return b.Null(), nil
		}
		fallthrough
	case reflect.Array:
		if t.Elem().Kind() == reflect.Uint8 {
			d := make([]byte, rv.Len())
			reflect.Copy(reflect.ValueOf(d), rv)
			return b.String(base64.RawURLEncoding.EncodeToString(d)), nil
		}
		arr := b.EmptyArray()
		for i := range rv.Len() {
			ev, err := s.toValue(rv.Index(i), value.IndexPath(path, i))
			if err != nil {
				return nil, err
			}
			b.Append(arr, ev)
		}
		return arr, nil
	case reflect.Map:
		if rv.IsNil() {
			return b.Null(), nil
		}
		return s.mapToValue(rv, path)
	case reflect.Struct:
		rec, err := s.Registry.Record(t)
		if err != nil {
			return nil, &MarshalError{FieldPath: path, Message: err.Error(), Err: err}
		}
		return s.recordToValue(rec, rv, rec.Kind, path)
	}
	return nil, &MarshalError{
		FieldPath: path,
		Message:   fmt.Sprintf("cannot serialize %s", t),
		Err:       ErrUnsupported,
	}
}

// asInterface returns rv, or a pointer to a copy of it, as an I.
func asInterface[I any](rv reflect.Value, it reflect.Type) (I, bool) {
	var zero I
	if !rv.CanInterface() {
		return zero, false
	}
	if rv.Type().Implements(it) {
		x, ok := rv.Interface().(I)
		return x, ok
	}
	if rv.Kind() == reflect.Pointer || !reflect.PointerTo(rv.Type()).Implements(it) {
		return zero, false
	}
	var p reflect.Value
	if rv.CanAddr() {
		p = rv.Addr()
	} else {
		p = reflect.New(rv.Type())
		p.Elem().Set(rv)
	}
	x, ok := p.Interface().(I)
	return x, ok
}

func mapKey(k reflect.Value) (string, error) {
	if x, ok := asInterface[encoding.TextMarshaler](k, textMarshalerType); ok {
		d, err := x.MarshalText()
		return string(d), err
	}
	switch k.Kind() {
	case reflect.String:
		return k.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(k.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(k.Uint(), 10), nil
	}
	return "", fmt.Errorf("%w: map key type %s", ErrUnsupported, k.Type())
}

func (s *serializer) mapToValue(rv reflect.Value, path string) (*value.Value, error) {
	type entry struct {
		key string
		val reflect.Value
	}
	entries := make([]entry, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		k, err := mapKey(iter.Key())
		if err != nil {
			return nil, &MarshalError{FieldPath: path, Message: err.Error(), Err: err}
		}
		entries = append(entries, entry{key: k, val: iter.Value()})
	}
	slices.SortFunc(entries, func(a, c entry) int {
		return strings.Compare(a.key, c.key)
	})
	obj := s.Builder.EmptyObject()
	for _, e := range entries {
		ev, err := s.toValue(e.val, value.KeyPath(path, e.key))
		if err != nil {
			return nil, err
		}
		s.Builder.Set(obj, e.key, ev)
	}
	return obj, nil
}

func (s *serializer) unionToValue(u *Union, dyn reflect.Value, path string) (*value.Value, error) {
	alt := u.alternative(dyn.Type())
	if alt == nil {
		return nil, &MarshalError{
			FieldPath: path,
			Message:   fmt.Sprintf("%s is not an alternative of %s", dyn.Type(), u.Type),
			Err:       ErrUnion,
		}
	}
	rec := u.records[alt.Type]
	if rec == nil {
		return s.toValue(dyn, path)
	}
	if dyn.Kind() == reflect.Pointer {
		if dyn.IsNil() {
			return s.Builder.Null(), nil
		}
		ptr := dyn.Pointer()
		if prev, ok := s.visited[ptr]; ok {
			return nil, &MarshalError{
				FieldPath: path,
				Message:   fmt.Sprintf("pointer already visited at %q", prev),
				Err:       ErrCycle,
			}
		}
		s.visited[ptr] = path
		defer delete(s.visited, ptr)
		dyn = dyn.Elem()
	}
	return s.recordToValue(rec, dyn, alt.Kind, path)
}

func (s *serializer) recordToValue(rec *Record, rv reflect.Value, kind *Kind, path string) (*value.Value, error) {
	b := s.Builder
	obj := b.EmptyObject()
	if kind != nil {
		b.Set(obj, kind.Key, b.String(kind.Value))
	}
	p := reflect.New(rv.Type())
	p.Elem().Set(rv)
	recAny := p.Interface()
	for _, f := range rec.Fields {
		pol := &f.Policy
		if pol.Ignore {
			continue
		}
		fieldPath := value.KeyPath(path, f.Key)
		x := f.Get(recAny)
		skip, err := ignored(pol, x, recAny)
		if err != nil {
			return nil, &MarshalError{FieldPath: fieldPath, Message: err.Error(), Err: err}
		}
		if skip {
			continue
		}
		frv := reflect.New(f.Type).Elem()
		if x != nil {
			frv.Set(reflect.ValueOf(x))
		}
		if pol.OmitEmpty && frv.IsZero() {
			continue
		}
		var fv *value.Value
		if pol.Converter != nil && pol.Converter.To != nil {
			fv, err = pol.Converter.To(s.Mapper, x)
			if err != nil {
				return nil, &MarshalError{FieldPath: fieldPath, Message: "converter: " + err.Error(), Err: err}
			}
		} else {
			fv, err = s.toValue(frv, fieldPath)
			if err != nil {
				return nil, err
			}
		}
		pol.apply(fv)
		if pol.Comment != "" {
			for _, ln := range strings.Split(pol.Comment, "\n") {
				b.AddComment(fv, value.Comment{Kind: value.LineComment, Lines: []string{" " + ln}})
			}
		}
		q := value.DefaultKeyQuote(f.Key)
		if pol.KeyQuote != nil {
			q = *pol.KeyQuote
		}
		b.SetKey(obj, value.Key{Name: f.Key, Quote: q}, fv)
	}
	return obj, nil
}

func ignored(pol *Policy, x, rec any) (bool, error) {
	if pol.IgnoreIf != nil && pol.IgnoreIf(x) {
		return true, nil
	}
	if pol.IgnoreIfExpr != nil {
		return pol.IgnoreIfExpr.Test(eval.Env{"value": x, "record": rec})
	}
	return false, nil
}
