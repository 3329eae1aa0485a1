package value

import (
	"encoding/base64"
	"errors"
	"fmt"
	"maps"
	"math"
	"reflect"
	"slices"
	"strings"

	"github.com/signadot/json5-format/go-json5/token"
)

var ErrUnsupported = errors.New("unsupported native value")

// Builder constructs values. All construction, copying and comment
// mutation goes through a Builder and its Allocator.
type Builder struct {
	alloc Allocator
}

// NewBuilder returns a Builder over a. A nil Allocator means a
// HeapAllocator.
func NewBuilder(a Allocator) *Builder {
	if a == nil {
		a = HeapAllocator{}
	}
	return &Builder{alloc: a}
}

func (b *Builder) Allocator() Allocator {
	return b.alloc
}

func (b *Builder) newValue(t Type) *Value {
	v := b.alloc.NewValue()
	v.Type = t
	return v
}

func (b *Builder) Undefined() *Value {
	return b.newValue(UndefinedType)
}

func (b *Builder) Null() *Value {
	return b.newValue(NullType)
}

func (b *Builder) Bool(x bool) *Value {
	v := b.newValue(BoolType)
	v.Bool = x
	return v
}

func (b *Builder) Int(x int64) *Value {
	v := b.newValue(IntType)
	v.Int = x
	return v
}

func (b *Builder) Uint(x uint64) *Value {
	v := b.newValue(UintType)
	v.Uint = x
	return v
}

// Unsigned returns an Int value when x fits, otherwise a Uint value.
func (b *Builder) Unsigned(x uint64) *Value {
	if x <= math.MaxInt64 {
		return b.Int(int64(x))
	}
	return b.Uint(x)
}

func (b *Builder) Float(x float64) *Value {
	v := b.newValue(FloatType)
	v.Float = x
	return v
}

func (b *Builder) String(s string) *Value {
	v := b.newValue(StringType)
	v.String = s
	return v
}

func (b *Builder) QuotedString(s string, q Quote) *Value {
	v := b.String(s)
	v.Quote = q
	return v
}

func (b *Builder) EmptyArray() *Value {
	v := b.newValue(ArrayType)
	v.Values = b.alloc.MakeValues(0)
	return v
}

func (b *Builder) EmptyObject() *Value {
	v := b.newValue(ObjectType)
	v.Keys = b.alloc.MakeKeys(0)
	v.Values = b.alloc.MakeValues(0)
	return v
}

func (b *Builder) Array(elts ...*Value) *Value {
	v := b.newValue(ArrayType)
	v.Values = append(b.alloc.MakeValues(len(elts)), elts...)
	return v
}

// Append adds elements to an array.
func (b *Builder) Append(arr *Value, elts ...*Value) {
	arr.Values = append(arr.Values, elts...)
}

// Set appends the member key: v to obj. The key is left unquoted when it
// is an identifier.
func (b *Builder) Set(obj *Value, key string, v *Value) {
	b.SetKey(obj, Key{Name: key, Quote: DefaultKeyQuote(key)}, v)
}

// SetKey appends a member to obj. Existing members with the same name are
// kept.
func (b *Builder) SetKey(obj *Value, k Key, v *Value) {
	obj.Keys = append(obj.Keys, k)
	obj.Values = append(obj.Values, v)
}

// Replace sets the value of the first member named key, appending it when
// absent.
func (b *Builder) Replace(obj *Value, key string, v *Value) {
	if i := obj.KeyIndex(key); i >= 0 {
		obj.Values[i] = v
		return
	}
	b.Set(obj, key, v)
}

func DefaultKeyQuote(key string) Quote {
	if token.IsIdent(key) {
		return Unquoted
	}
	return DoubleQuote
}

// AddComment attaches c to v. Leading comments are inserted before an
// existing trailing comment, a trailing comment replaces the existing one.
func (b *Builder) AddComment(v *Value, c Comment) {
	tr := v.Trailing()
	switch {
	case c.Kind == TrailingComment && tr != nil:
		*tr = c
	case c.Kind == TrailingComment, tr == nil:
		v.Comments = append(v.Comments, c)
	default:
		v.Comments = slices.Insert(v.Comments, len(v.Comments)-1, c)
	}
}

// AddLineComment attaches text as a leading comment, using a line
// comment per line.
func (b *Builder) AddLineComment(v *Value, text string) {
	for _, ln := range strings.Split(text, "\n") {
		b.AddComment(v, Comment{Kind: LineComment, Lines: []string{ln}})
	}
}

func (b *Builder) SetTrailingComment(v *Value, text string, block bool) {
	b.AddComment(v, Comment{Kind: TrailingComment, Lines: []string{text}, Block: block})
}

func (b *Builder) ClearComments(v *Value) {
	v.Comments = nil
	v.Inner = nil
	v.Tail = nil
}

// DeepCopy returns a copy of v sharing no containers with it.
func (b *Builder) DeepCopy(v *Value) *Value {
	if v == nil {
		return nil
	}
	res := b.alloc.NewValue()
	*res = Value{
		Type:   v.Type,
		String: v.String,
		Quote:  v.Quote,
		Int:    v.Int,
		Uint:   v.Uint,
		Float:  v.Float,
		Bool:   v.Bool,
		Format: v.Format,
		Layout: v.Layout,
	}
	if v.Keys != nil {
		res.Keys = append(b.alloc.MakeKeys(len(v.Keys)), v.Keys...)
	}
	if v.Values != nil {
		res.Values = b.alloc.MakeValues(len(v.Values))
		for _, c := range v.Values {
			res.Values = append(res.Values, b.DeepCopy(c))
		}
	}
	res.Comments = cloneComments(v.Comments)
	res.Inner = cloneComments(v.Inner)
	res.Tail = cloneComments(v.Tail)
	return res
}

func cloneComments(cs []Comment) []Comment {
	if cs == nil {
		return nil
	}
	res := make([]Comment, len(cs))
	for i := range cs {
		res[i] = cs[i].clone()
	}
	return res
}

// Dispose hands v back to the allocator.
func (b *Builder) Dispose(v *Value) {
	b.alloc.Free(v)
}

// Make converts native Go data to a value. It accepts nil, booleans,
// numbers, strings, []byte (as a base64url string), *Value, and slices,
// arrays and string keyed maps of those. Map keys are sorted.
func (b *Builder) Make(x any) (*Value, error) {
	switch y := x.(type) {
	case nil:
		return b.Null(), nil
	case *Value:
		return b.DeepCopy(y), nil
	case bool:
		return b.Bool(y), nil
	case string:
		return b.String(y), nil
	case []byte:
		return b.String(base64.RawURLEncoding.EncodeToString(y)), nil
	case int:
		return b.Int(int64(y)), nil
	case int64:
		return b.Int(y), nil
	case uint64:
		return b.Unsigned(y), nil
	case float64:
		return b.Float(y), nil
	case []any:
		arr := b.Array()
		for i, e := range y {
			ev, err := b.Make(e)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			b.Append(arr, ev)
		}
		return arr, nil
	case map[string]any:
		obj := b.EmptyObject()
		for _, k := range slices.Sorted(maps.Keys(y)) {
			ev, err := b.Make(y[k])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			b.Set(obj, k, ev)
		}
		return obj, nil
	}
	return b.makeReflect(reflect.ValueOf(x))
}

func (b *Builder) makeReflect(rv reflect.Value) (*Value, error) {
	switch rv.Kind() {
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
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return b.Null(), nil
		}
		return b.Make(rv.Elem().Interface())
	case reflect.Slice:
		if rv.IsNil() {
			return b.Null(), nil
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return b.Make(rv.Bytes())
		}
		fallthrough
	case reflect.Array:
		arr := b.newValue(ArrayType)
		arr.Values = b.alloc.MakeValues(rv.Len())
		for i := range rv.Len() {
			ev, err := b.Make(rv.Index(i).Interface())
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			arr.Values = append(arr.Values, ev)
		}
		return arr, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("%w: map key type %s", ErrUnsupported, rv.Type().Key())
		}
		if rv.IsNil() {
			return b.Null(), nil
		}
		keys := rv.MapKeys()
		slices.SortFunc(keys, func(a, c reflect.Value) int {
			return strings.Compare(a.String(), c.String())
		})
		obj := b.EmptyObject()
		for _, k := range keys {
			ev, err := b.Make(rv.MapIndex(k).Interface())
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k.String(), err)
			}
			b.Set(obj, k.String(), ev)
		}
		return obj, nil
	case reflect.Invalid:
		return b.Null(), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupported, rv.Type())
}
