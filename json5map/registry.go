package json5map

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/signadot/json5-format/go-json5/value"
)

// DefaultKindKey is the key under which a record's kind is written when
// no other key is given.
const DefaultKindKey = "$type"

// Kind is the key and value identifying a record within a union.
type Kind struct {
	Key   string
	Value string
}

// Field describes one mapped struct field. Get and Set receive a pointer
// to the struct. Set receives nil for the zero value.
type Field struct {
	Key    string
	Type   reflect.Type
	Get    func(rec any) any
	Set    func(rec, v any)
	Policy Policy
}

// NewField returns a field descriptor with typed accessors.
func NewField[R, F any](key string, get func(*R) F, set func(*R, F), pol Policy) *Field {
	return &Field{
		Key:  key,
		Type: reflect.TypeFor[F](),
		Get:  func(rec any) any { return get(rec.(*R)) },
		Set: func(rec, v any) {
			x, _ := v.(F)
			set(rec.(*R), x)
		},
		Policy: pol,
	}
}

// Record is the ordered list of mapped fields of a struct type.
type Record struct {
	Type   reflect.Type
	Fields []*Field
	Kind   *Kind
}

func NewRecord[R any](fields ...*Field) *Record {
	return &Record{Type: reflect.TypeFor[R](), Fields: fields}
}

// WithKind sets the record's kind. An empty key means DefaultKindKey.
func (r *Record) WithKind(key, val string) *Record {
	if key == "" {
		key = DefaultKindKey
	}
	r.Kind = &Kind{Key: key, Value: val}
	return r
}

func (r *Record) Field(key string) *Field {
	for _, f := range r.Fields {
		if f.Key == key {
			return f
		}
	}
	return nil
}

// EssentialKeys returns the keys of the essential fields in order. Ignored
// and conditionally ignored fields are never read back, so they are left out.
func (r *Record) EssentialKeys() []string {
	var res []string
	for _, f := range r.Fields {
		if f.Policy.Essential && !f.Policy.Ignore && !f.Policy.hasCondition() {
			res = append(res, f.Key)
		}
	}
	return res
}

// Converter replaces the default conversion of a field.
type Converter struct {
	To   func(m *Mapper, x any) (*value.Value, error)
	From func(m *Mapper, v *value.Value) (any, error)
}

// Registry holds records, unions and named converters. Records of struct
// types which are not registered are built from their tags on first use.
type Registry struct {
	mu         sync.RWMutex
	records    map[reflect.Type]*Record
	unions     map[reflect.Type]*Union
	converters map[string]*Converter
}

func NewRegistry() *Registry {
	return &Registry{
		records:    map[reflect.Type]*Record{},
		unions:     map[reflect.Type]*Union{},
		converters: map[string]*Converter{},
	}
}

// RegisterConverter makes c available to fields with converter=name.
// Converters must be registered before the records using them.
func (r *Registry) RegisterConverter(name string, c *Converter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.converters[name] = c
}

// Register adds or replaces the record for rec.Type.
func (r *Registry) Register(rec *Record) error {
	if rec.Type == nil || rec.Type.Kind() != reflect.Struct {
		return fmt.Errorf("%w: %v is not a struct type", ErrRecord, rec.Type)
	}
	seen := map[string]bool{}
	for _, f := range rec.Fields {
		if seen[f.Key] {
			return fmt.Errorf("%w: %s has key %q twice", ErrRecord, rec.Type, f.Key)
		}
		seen[f.Key] = true
		if rec.Kind != nil && f.Key == rec.Kind.Key {
			return fmt.Errorf("%w: %s field key %q is its kind key", ErrRecord, rec.Type, f.Key)
		}
		if err := r.resolveConverter(rec.Type, f); err != nil {
			return err
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[rec.Type] = rec
	return nil
}

func (r *Registry) resolveConverter(t reflect.Type, f *Field) error {
	name := f.Policy.ConverterName
	if name == "" || f.Policy.Converter != nil {
		return nil
	}
	r.mu.RLock()
	c := r.converters[name]
	r.mu.RUnlock()
	if c == nil {
		return fmt.Errorf("%w: %s.%s uses unknown converter %q", ErrRecord, t, f.Key, name)
	}
	f.Policy.Converter = c
	return nil
}

// Record returns the record of struct type t, building it from struct
// tags if it was not registered.
func (r *Registry) Record(t reflect.Type) (*Record, error) {
	r.mu.RLock()
	rec := r.records[t]
	r.mu.RUnlock()
	if rec != nil {
		return rec, nil
	}
	rec, err := RecordFromTags(t)
	if err != nil {
		return nil, err
	}
	if err := r.Register(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Union returns the union registered for interface type t, or nil.
func (r *Registry) Union(t reflect.Type) *Union {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.unions[t]
}

// RecordFromTags builds the record of a struct type from its json5 tags.
// Unexported fields and fields tagged "-" are left out. Keys default to
// the Go field name.
func RecordFromTags(t reflect.Type) (*Record, error) {
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s is not a struct type", ErrRecord, t)
	}
	rec := &Record{Type: t}
	for i := range t.NumField() {
		sf := t.Field(i)
		tag := sf.Tag.Get("json5")
		if sf.Name == "_" {
			kind, err := ParseKindTag(tag)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", t, err)
			}
			if kind != nil {
				rec.Kind = kind
			}
			continue
		}
		if !sf.IsExported() || tag == "-" {
			continue
		}
		pol, err := ParsePolicy(tag)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", t, sf.Name, err)
		}
		key := sf.Name
		if pol.Name != "" {
			key = pol.Name
		}
		rec.Fields = append(rec.Fields, reflectField(sf, key, pol))
	}
	return rec, nil
}

// ParseKindTag reads kind and kindkey from the tag of a blank struct
// field. It returns nil when the tag names no kind.
func ParseKindTag(tag string) (*Kind, error) {
	kvs, err := ParseStructTag(tag)
	if err != nil {
		return nil, err
	}
	val, ok := kvs["kind"]
	if !ok {
		if _, ok := kvs["kindkey"]; ok {
			return nil, fmt.Errorf("%w: kindkey without kind", ErrTag)
		}
		return nil, nil
	}
	key := kvs["kindkey"]
	if key == "" {
		key = DefaultKindKey
	}
	return &Kind{Key: key, Value: val}, nil
}

func reflectField(sf reflect.StructField, key string, pol Policy) *Field {
	idx := sf.Index
	return &Field{
		Key:  key,
		Type: sf.Type,
		Get: func(rec any) any {
			return reflect.ValueOf(rec).Elem().FieldByIndex(idx).Interface()
		},
		Set: func(rec, v any) {
			fv := reflect.ValueOf(rec).Elem().FieldByIndex(idx)
			if v == nil {
				fv.SetZero()
				return
			}
			fv.Set(reflect.ValueOf(v))
		},
		Policy: pol,
	}
}
