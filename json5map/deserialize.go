package json5map

import (
	"encoding"
	"encoding/base64"
	"fmt"
	"reflect"
	"strconv"

	"github.com/signadot/json5-format/go-json5/debug"
	"github.com/signadot/json5-format/go-json5/encode"
	"github.com/signadot/json5-format/go-json5/value"
)

var textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()

// Deserialize fills the data dst points to from v. Records are filled in
// place: fields absent from v keep their value.
func (m *Mapper) Deserialize(v *value.Value, dst any) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return &UnmarshalError{
			Message: fmt.Sprintf("destination must be a non-nil pointer, got %T", dst),
			Err:     ErrUnsupported,
		}
	}
	return m.fromValue(v, rv.Elem(), "")
}

func isNull(v *value.Value) bool {
	return v == nil || v.Type == value.NullType || v.Type == value.UndefinedType
}

// fromValue sets rv, which is settable, from v.
func (m *Mapper) fromValue(v *value.Value, rv reflect.Value, path string) error {
	t := rv.Type()
	if t == valuePtrType {
		if isNull(v) {
			rv.SetZero()
			return nil
		}
		rv.Set(reflect.ValueOf(m.Builder.DeepCopy(v)))
		return nil
	}
	if reflect.PointerTo(t).Implements(unmarshalerType) {
		if err := rv.Addr().Interface().(Unmarshaler).FromJSON5(v); err != nil {
			return &UnmarshalError{FieldPath: path, Message: err.Error(), Err: err}
		}
		return nil
	}
	if isNull(v) {
		rv.SetZero()
		return nil
	}
	if v.Type == value.StringType && reflect.PointerTo(t).Implements(textUnmarshalerType) {
		if err := rv.Addr().Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(v.String)); err != nil {
			return &UnmarshalError{FieldPath: path, Message: err.Error(), Err: err}
		}
		return nil
	}

	switch t.Kind() {
	case reflect.Interface:
		if u := m.Registry.Union(t); u != nil {
			return m.unionFromValue(u, v, rv, path)
		}
		if t.NumMethod() != 0 {
			return &UnmarshalError{
				FieldPath: path,
				Message:   fmt.Sprintf("interface %s is not a registered union", t),
				Err:       ErrUnsupported,
			}
		}
		rv.Set(reflect.ValueOf(value.ToPlain(v)))
		return nil
	case reflect.Pointer:
		if rv.IsNil() {
			rv.Set(reflect.New(t.Elem()))
		}
		return m.fromValue(v, rv.Elem(), path)
	case reflect.Bool:
		x, err := v.AsBool()
		if err != nil {
			return typeError(path, t, v, err)
		}
		rv.SetBool(x)
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		x, err := v.AsInt()
		if err == nil && rv.OverflowInt(x) {
			err = fmt.Errorf("%d overflows %s", x, t)
		}
		if err != nil {
			return typeError(path, t, v, err)
		}
		rv.SetInt(x)
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		x, err := v.AsUint()
		if err == nil && rv.OverflowUint(x) {
			err = fmt.Errorf("%d overflows %s", x, t)
		}
		if err != nil {
			return typeError(path, t, v, err)
		}
		rv.SetUint(x)
		return nil
	case reflect.Float32, reflect.Float64:
		x, err := v.AsFloat()
		if err != nil {
			return typeError(path, t, v, err)
		}
		rv.SetFloat(x)
		return nil
	case reflect.String:
		switch v.Type {
		case value.StringType:
			rv.SetString(v.String)
		case value.BoolType, value.IntType, value.UintType, value.FloatType:
			rv.SetString(encode.Scalar(v, false))
		default:
			return typeError(path, t, v, nil)
		}
		return nil
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 && v.Type == value.StringType {
			d, err := decodeBinary(v.String)
			if err != nil {
				return typeError(path, t, v, err)
			}
			rv.SetBytes(d)
			return nil
		}
		if v.Type != value.ArrayType {
			return typeError(path, t, v, nil)
		}
		res := reflect.MakeSlice(t, len(v.Values), len(v.Values))
		for i, e := range v.Values {
			if err := m.fromValue(e, res.Index(i), value.IndexPath(path, i)); err != nil {
				return err
			}
		}
		rv.Set(res)
		return nil
	case reflect.Array:
		if t.Elem().Kind() == reflect.Uint8 && v.Type == value.StringType {
			d, err := decodeBinary(v.String)
			if err != nil {
				return typeError(path, t, v, err)
			}
			reflect.Copy(rv, reflect.ValueOf(d))
			return nil
		}
		if v.Type != value.ArrayType {
			return typeError(path, t, v, nil)
		}
		for i := range rv.Len() {
			if i >= len(v.Values) {
				rv.Index(i).SetZero()
				continue
			}
			if err := m.fromValue(v.Values[i], rv.Index(i), value.IndexPath(path, i)); err != nil {
				return err
			}
		}
		return nil
	case reflect.Map:
		if v.Type != value.ObjectType {
			return typeError(path, t, v, nil)
		}
		return m.mapFromValue(v, rv, path)
	case reflect.Struct:
		rec, err := m.Registry.Record(t)
		if err != nil {
			return &UnmarshalError{FieldPath: path, Message: err.Error(), Err: err}
		}
		return m.recordFromValue(rec, v, rv, rec.Kind, path)
	}
	return &UnmarshalError{
		FieldPath: path,
		Message:   fmt.Sprintf("cannot deserialize into %s", t),
		Err:       ErrUnsupported,
	}
}

func typeError(path string, t reflect.Type, v *value.Value, err error) error {
	return &TypeError{FieldPath: path, Expected: t.String(), Actual: v.Type.String(), Err: err}
}

func decodeBinary(s string) ([]byte, error) {
	d, err := base64.RawURLEncoding.DecodeString(s)
	if err == nil {
		return d, nil
	}
	return base64.URLEncoding.DecodeString(s)
}

func (m *Mapper) mapFromValue(v *value.Value, rv reflect.Value, path string) error {
	t := rv.Type()
	if rv.IsNil() {
		rv.Set(reflect.MakeMapWithSize(t, len(v.Values)))
	}
	seen := map[string]bool{}
	for i, e := range v.Values {
		name := v.Keys[i].Name
		if seen[name] {
			continue
		}
		seen[name] = true
		kp := value.KeyPath(path, name)
		k := reflect.New(t.Key()).Elem()
		if err := setMapKey(k, name); err != nil {
			return &UnmarshalError{FieldPath: kp, Message: err.Error(), Err: err}
		}
		ev := reflect.New(t.Elem()).Elem()
		if err := m.fromValue(e, ev, kp); err != nil {
			return err
		}
		rv.SetMapIndex(k, ev)
	}
	return nil
}

func setMapKey(k reflect.Value, name string) error {
	if reflect.PointerTo(k.Type()).Implements(textUnmarshalerType) {
		return k.Addr().Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(name))
	}
	switch k.Kind() {
	case reflect.String:
		k.SetString(name)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(name, 10, 64)
		if err != nil || k.OverflowInt(n) {
			return fmt.Errorf("bad %s key %q", k.Type(), name)
		}
		k.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n, err := strconv.ParseUint(name, 10, 64)
		if err != nil || k.OverflowUint(n) {
			return fmt.Errorf("bad %s key %q", k.Type(), name)
		}
		k.SetUint(n)
	default:
		return fmt.Errorf("%w: map key type %s", ErrUnsupported, k.Type())
	}
	return nil
}

func (m *Mapper) recordFromValue(rec *Record, v *value.Value, rv reflect.Value, kind *Kind, path string) error {
	if v.Type != value.ObjectType {
		return typeError(path, rv.Type(), v, nil)
	}
	recAny := rv.Addr().Interface()
	for _, f := range rec.Fields {
		pol := &f.Policy
		if pol.Ignore || pol.hasCondition() {
			continue
		}
		fv := v.Get(f.Key)
		if fv == nil {
			if pol.Essential {
				return &EssentialFieldMissingError{Key: f.Key, Path: path}
			}
			continue
		}
		fieldPath := value.KeyPath(path, f.Key)
		if pol.Converter != nil && pol.Converter.From != nil {
			x, err := pol.Converter.From(m, fv)
			if err != nil {
				return &UnmarshalError{FieldPath: fieldPath, Message: "converter: " + err.Error(), Err: err}
			}
			f.Set(recAny, x)
			continue
		}
		nv := reflect.New(f.Type).Elem()
		if err := m.fromValue(fv, nv, fieldPath); err != nil {
			return err
		}
		f.Set(recAny, nv.Interface())
	}
	if m.disallowUnknown {
		for _, k := range v.Keys {
			if rec.Field(k.Name) != nil || (kind != nil && kind.Key == k.Name) {
				continue
			}
			return &UnmarshalError{
				FieldPath: value.KeyPath(path, k.Name),
				Message:   fmt.Sprintf("%s has no field for key %q", rec.Type, k.Name),
				Err:       ErrUnknownKey,
			}
		}
	}
	return nil
}

// unionFromValue leaves rv untouched when no alternative matches v.
func (m *Mapper) unionFromValue(u *Union, v *value.Value, rv reflect.Value, path string) error {
	alt := u.match(v)
	if alt == nil {
		if debug.Map() {
			debug.Logf("no alternative of %s matches %s at %q\n", u.Type, v.Type, path)
		}
		return nil
	}
	nv := reflect.New(structType(alt.Type)).Elem()
	var err error
	if rec := u.records[alt.Type]; rec != nil {
		err = m.recordFromValue(rec, v, nv, alt.Kind, path)
	} else {
		err = m.fromValue(v, nv, path)
	}
	if err != nil {
		return err
	}
	if alt.Type.Kind() == reflect.Pointer {
		nv = nv.Addr()
	}
	rv.Set(nv)
	return nil
}
