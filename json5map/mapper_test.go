package json5map

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/signadot/json5-format/go-json5/encode"
	"github.com/signadot/json5-format/go-json5/value"
)

type Config struct {
	Name    string            `json5:"name=name,comment='the name',quote=single"`
	Port    int               `json5:"name=port,int=hex"`
	Ratio   float64           `json5:"name=ratio,float=prec=2"`
	Hosts   []string          `json5:"name=hosts,array=single|trailing"`
	Labels  map[string]string `json5:"name=labels,object=single,omitempty"`
	Secret  string            `json5:"ignore"`
	Debug   bool              `json5:"name=debug,ignoreif='value == false'"`
	Note    string            `json5:"name=a-note,keyquote=single"`
	Skipped string            `json5:"-"`
	Plain   int
	hidden  int
}

func TestPolicies(t *testing.T) {
	m := NewMapper(nil, nil)
	cfg := Config{
		Name:    "svc",
		Port:    255,
		Ratio:   0.5,
		Hosts:   []string{"a", "b"},
		Secret:  "s",
		Note:    "n",
		Skipped: "x",
		Plain:   1,
		hidden:  2,
	}
	v, err := m.Serialize(cfg)
	if err != nil {
		t.Fatal(err)
	}
	want := `{
  // the name
  name: 'svc',
  port: 0xFF,
  ratio: 0.50,
  hosts: [ "a", "b", ],
  'a-note': "n",
  Plain: 1
}`
	if got := encode.MustString(v); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}

	cfg.Debug = true
	cfg.Labels = map[string]string{"env": "prod"}
	v, err = m.Serialize(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if d := v.Get("debug"); d == nil || !d.Bool {
		t.Errorf("debug missing from %s", encode.MustString(v))
	}
	if l := v.Get("labels"); l == nil || !l.Layout.SingleLine {
		t.Errorf("labels not single line in %s", encode.MustString(v))
	}

	got, err := Decode[Config](m, v)
	if err != nil {
		t.Fatal(err)
	}
	wantCfg := Config{
		Name:   "svc",
		Port:   255,
		Ratio:  0.5,
		Hosts:  []string{"a", "b"},
		Labels: map[string]string{"env": "prod"},
		Note:   "n",
		Plain:  1,
	}
	if diff := cmp.Diff(wantCfg, got, cmpopts.IgnoreUnexported(Config{})); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestIgnoreIfFunc(t *testing.T) {
	type Item struct {
		id    string
		count int
	}
	reg := NewRegistry()
	err := reg.Register(NewRecord[Item](
		NewField("id", func(x *Item) string { return x.id }, func(x *Item, v string) { x.id = v }, Policy{}),
		NewField("count", func(x *Item) int { return x.count }, func(x *Item, v int) { x.count = v },
			Policy{IgnoreIf: func(v any) bool { return v.(int) == 0 }}),
	))
	if err != nil {
		t.Fatal(err)
	}
	m := NewMapper(nil, reg)
	for _, tc := range []struct {
		in   Item
		want string
	}{
		{in: Item{id: "a"}, want: `{ id: "a" }`},
		{in: Item{id: "b", count: 3}, want: `{ id: "b", count: 3 }`},
	} {
		v, err := m.Serialize(tc.in)
		if err != nil {
			t.Fatal(err)
		}
		v.Layout.SingleLine = true
		if got := encode.MustString(v); got != tc.want {
			t.Errorf("got %s, want %s", got, tc.want)
		}
	}
	got, err := Decode[Item](m, parseValue(t, `{ id: 'c', count: 9 }`))
	if err != nil {
		t.Fatal(err)
	}
	if got != (Item{id: "c"}) {
		t.Errorf("conditional field was populated: %+v", got)
	}
}

type Account struct {
	id      string
	balance int
}

func accountRegistry(t *testing.T) *Registry {
	t.Helper()
	reg := NewRegistry()
	rec := NewRecord[Account](
		NewField("id", func(a *Account) string { return a.id }, func(a *Account, v string) { a.id = v },
			MustParsePolicy("essential")),
		NewField("balance", func(a *Account) int { return a.balance }, func(a *Account, v int) { a.balance = v },
			MustParsePolicy("int=plus")),
	).WithKind("", "account")
	if err := reg.Register(rec); err != nil {
		t.Fatal(err)
	}
	return reg
}

type precisionReading struct {
	Pi   float64 `json5:"name=pi,float=prec=2"`
	Big  float64 `json5:"name=big,float=sci|prec=2"`
	Tiny float64 `json5:"name=tiny,float=sci|leading|prec=1"`
}

func TestFloatPrecision(t *testing.T) {
	m := NewMapper(nil, nil)
	v, err := m.Serialize(precisionReading{Pi: 3.14159, Big: 1234.5, Tiny: 0.0005})
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n  pi: 3.14,\n  big: 1.23e3,\n  tiny: .5e-3\n}"
	if got := encode.MustString(v); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestExplicitRecord(t *testing.T) {
	m := NewMapper(nil, accountRegistry(t))
	v, err := m.Serialize(Account{id: "x", balance: 5})
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n  $type: \"account\",\n  id: \"x\",\n  balance: +5\n}"
	if got := encode.MustString(v); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
	got, err := Decode[Account](m, v)
	if err != nil {
		t.Fatal(err)
	}
	if got != (Account{id: "x", balance: 5}) {
		t.Errorf("got %+v", got)
	}
}

func TestRegisterErrors(t *testing.T) {
	type T struct{ A, B int }
	get := func(x *T) int { return x.A }
	set := func(x *T, v int) { x.A = v }
	tests := []struct {
		name string
		rec  *Record
	}{
		{name: "duplicate", rec: NewRecord[T](NewField("a", get, set, Policy{}), NewField("a", get, set, Policy{}))},
		{name: "kind key", rec: NewRecord[T](NewField("kind", get, set, Policy{})).WithKind("kind", "t")},
		{name: "converter", rec: NewRecord[T](NewField("a", get, set, MustParsePolicy("converter=nope")))},
		{name: "not a struct", rec: NewRecord[int]()},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := NewRegistry().Register(tc.rec); !errors.Is(err, ErrRecord) {
				t.Errorf("got %v, want %v", err, ErrRecord)
			}
		})
	}
}

type Host struct {
	Names []string `json5:"name=names,converter=csv"`
	Port  int      `json5:"name=port"`
}

func TestConverter(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterConverter("csv", &Converter{
		To: func(m *Mapper, x any) (*value.Value, error) {
			return m.Builder.String(strings.Join(x.([]string), ",")), nil
		},
		From: func(m *Mapper, v *value.Value) (any, error) {
			s, err := v.AsString()
			if err != nil {
				return nil, err
			}
			return strings.Split(s, ","), nil
		},
	})
	m := NewMapper(nil, reg)
	in := Host{Names: []string{"a", "b"}, Port: 80}
	v, err := m.Serialize(in)
	if err != nil {
		t.Fatal(err)
	}
	if got := v.Get("names").StringOr(""); got != "a,b" {
		t.Errorf("names: got %q", got)
	}
	got, err := Decode[Host](m, v)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(in, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	_, err = Decode[Host](m, parseValue(t, `{ names: 1 }`))
	var ue *UnmarshalError
	if !errors.As(err, &ue) || ue.FieldPath != "names" {
		t.Errorf("got %v", err)
	}
}

type Celsius float64

func (c Celsius) ToJSON5(b *value.Builder) (*value.Value, error) {
	return b.String(strconv.FormatFloat(float64(c), 'f', -1, 64) + "C"), nil
}

func (c *Celsius) FromJSON5(v *value.Value) error {
	s, err := v.AsString()
	if err != nil {
		return err
	}
	f, err := strconv.ParseFloat(strings.TrimSuffix(s, "C"), 64)
	if err != nil {
		return err
	}
	*c = Celsius(f)
	return nil
}

type Level int

const (
	Low Level = iota
	High
)

func (l Level) MarshalText() ([]byte, error) {
	switch l {
	case Low:
		return []byte("low"), nil
	case High:
		return []byte("high"), nil
	}
	return nil, fmt.Errorf("bad level %d", int(l))
}

func (l *Level) UnmarshalText(d []byte) error {
	switch string(d) {
	case "low":
		*l = Low
	case "high":
		*l = High
	default:
		return fmt.Errorf("bad level %q", d)
	}
	return nil
}

type Reading struct {
	Temp    Celsius        `json5:"name=temp"`
	Level   Level          `json5:"name=level"`
	ByLevel map[Level]int  `json5:"name=by_level"`
	Counts  map[int]string `json5:"name=counts"`
	Data    []byte         `json5:"name=data"`
	Raw     *value.Value   `json5:"name=raw"`
	Extra   any            `json5:"name=extra"`
	Next    *Reading       `json5:"name=next,omitempty"`
}

func TestHooksAndShapes(t *testing.T) {
	m := NewMapper(nil, nil)
	raw := parseValue(t, "[1, /* c */ 2]")
	in := Reading{
		Temp:    21.5,
		Level:   High,
		ByLevel: map[Level]int{Low: 1, High: 2},
		Counts:  map[int]string{1: "a", 10: "b", 2: "c"},
		Data:    []byte{0xfb, 0xff},
		Raw:     raw,
		Extra:   map[string]any{"k": []any{int64(1), "x", true}},
		Next:    &Reading{Temp: -3},
	}
	v, err := m.Serialize(in)
	if err != nil {
		t.Fatal(err)
	}
	if got := v.Get("temp").StringOr(""); got != "21.5C" {
		t.Errorf("temp: got %q", got)
	}
	if got := v.Get("level").StringOr(""); got != "high" {
		t.Errorf("level: got %q", got)
	}
	if got := v.Get("data").StringOr(""); got != "-_8" {
		t.Errorf("data: got %q", got)
	}
	var keys []string
	for _, k := range v.Get("counts").Keys {
		keys = append(keys, k.Name)
	}
	if diff := cmp.Diff([]string{"1", "10", "2"}, keys); diff != "" {
		t.Errorf("counts keys (-want +got):\n%s", diff)
	}

	got, err := Decode[Reading](m, v)
	if err != nil {
		t.Fatal(err)
	}
	opt := cmp.Comparer(func(a, b *value.Value) bool { return value.EqualFormat(a, b) })
	if diff := cmp.Diff(in, got, opt); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if got.Raw == raw {
		t.Errorf("raw value not copied")
	}
}

type Node struct {
	Name string `json5:"name=name"`
	Next *Node  `json5:"name=next"`
}

type Pair struct {
	A *Node `json5:"name=a"`
	B *Node `json5:"name=b"`
}

func TestCycle(t *testing.T) {
	m := NewMapper(nil, nil)
	n := &Node{Name: "a"}
	n.Next = &Node{Name: "b", Next: n}
	_, err := m.Serialize(n)
	if !errors.Is(err, ErrCycle) {
		t.Fatalf("got %v, want %v", err, ErrCycle)
	}
	var me *MarshalError
	if !errors.As(err, &me) || me.FieldPath != "next.next" {
		t.Errorf("got %v", err)
	}

	shared := &Node{Name: "s"}
	if _, err := m.Serialize(Pair{A: shared, B: shared}); err != nil {
		t.Errorf("shared pointer: %v", err)
	}
}

type Point struct {
	Pt    int    `json5:"name=pt,essential"`
	Label string `json5:"name=label"`
}

type Segment struct {
	From Point `json5:"name=from"`
	To   Point `json5:"name=to"`
}

func TestEssentialMissing(t *testing.T) {
	m := NewMapper(nil, nil)
	_, err := Decode[Point](m, parseValue(t, `{}`))
	var ee *EssentialFieldMissingError
	if !errors.As(err, &ee) || ee.Key != "pt" {
		t.Fatalf("got %v", err)
	}
	if !strings.Contains(err.Error(), `"pt"`) {
		t.Errorf("message %q does not name pt", err)
	}
	_, err = Decode[Segment](m, parseValue(t, `{ from: { pt: 1 }, to: { label: 'x' } }`))
	if !errors.As(err, &ee) || ee.Path != "to" {
		t.Errorf("got %v", err)
	}
}

func TestDecodeInPlace(t *testing.T) {
	m := NewMapper(nil, nil)
	p := Point{Pt: 1, Label: "keep"}
	if err := m.Deserialize(parseValue(t, `{ pt: 2 }`), &p); err != nil {
		t.Fatal(err)
	}
	if p != (Point{Pt: 2, Label: "keep"}) {
		t.Errorf("got %+v", p)
	}
	if err := m.Deserialize(parseValue(t, `{ pt: 2 }`), p); !errors.Is(err, ErrUnsupported) {
		t.Errorf("non-pointer destination: got %v", err)
	}
}

func TestDisallowUnknownKeys(t *testing.T) {
	in := parseValue(t, `{ $type: 'circle', r: 1, extra: 2 }`)
	got, err := Decode[Circle](NewMapper(nil, nil), in)
	if err != nil || got != (Circle{R: 1}) {
		t.Errorf("got %+v, %v", got, err)
	}
	_, err = Decode[Circle](NewMapper(nil, nil, DisallowUnknownKeys(true)), in)
	var ue *UnmarshalError
	if !errors.Is(err, ErrUnknownKey) || !errors.As(err, &ue) || ue.FieldPath != "extra" {
		t.Errorf("got %v", err)
	}
}

func TestScalarDecoding(t *testing.T) {
	m := NewMapper(nil, nil)
	if got, err := Decode[string](m, parseValue(t, `0x10`)); err != nil || got != "0x10" {
		t.Errorf("string from number: %q, %v", got, err)
	}
	if got, err := Decode[float64](m, parseValue(t, `7`)); err != nil || got != 7 {
		t.Errorf("float from int: %v, %v", got, err)
	}
	if got, err := Decode[int](m, parseValue(t, `3.0`)); err != nil || got != 3 {
		t.Errorf("int from float: %v, %v", got, err)
	}
	for _, tc := range []struct {
		in  string
		dec func(*value.Value) error
	}{
		{in: `'x'`, dec: func(v *value.Value) error { _, err := Decode[int](m, v); return err }},
		{in: `300`, dec: func(v *value.Value) error { _, err := Decode[int8](m, v); return err }},
		{in: `-1`, dec: func(v *value.Value) error { _, err := Decode[uint](m, v); return err }},
		{in: `1.5`, dec: func(v *value.Value) error { _, err := Decode[int](m, v); return err }},
		{in: `[]`, dec: func(v *value.Value) error { _, err := Decode[bool](m, v); return err }},
		{in: `{}`, dec: func(v *value.Value) error { _, err := Decode[[]int](m, v); return err }},
	} {
		var te *TypeError
		if err := tc.dec(parseValue(t, tc.in)); !errors.As(err, &te) {
			t.Errorf("%s: got %v, want a type error", tc.in, err)
		}
	}
}

func TestGetOr(t *testing.T) {
	m := NewMapper(nil, nil)
	if got := GetOr(m, parseValue(t, `3`), 7); got != 3 {
		t.Errorf("got %d", got)
	}
	if got := GetOr(m, parseValue(t, `'x'`), 7); got != 7 {
		t.Errorf("got %d", got)
	}
	if got := GetOr(m, nil, "d"); got != "d" {
		t.Errorf("got %q", got)
	}
	if got := GetOr(m, parseValue(t, `{}`), Point{Pt: -1}); got.Pt != -1 {
		t.Errorf("got %+v", got)
	}
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy(`name=k,essential,comment='a, b',float=sci|prec=3,object=single|trailing,keyquote=unquoted`)
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "k" || !p.Essential || p.Comment != "a, b" {
		t.Errorf("got %+v", p)
	}
	if p.FloatFormat == nil || !p.FloatFormat.Scientific || p.FloatFormat.Precision != 3 {
		t.Errorf("float format %+v", p.FloatFormat)
	}
	if p.ObjectFormat == nil || *p.ObjectFormat != (value.Layout{SingleLine: true, TrailingComma: true}) {
		t.Errorf("object format %+v", p.ObjectFormat)
	}
	if p.KeyQuote == nil || *p.KeyQuote != value.Unquoted {
		t.Errorf("key quote %v", p.KeyQuote)
	}
	if p, _ := ParsePolicy("-"); !p.Ignore {
		t.Errorf("- does not ignore")
	}

	for _, tag := range []string{
		"bogus",
		"quote=unquoted",
		"int=sci",
		"float=prec=x",
		"array=wide",
		"kind=x",
		"ignoreif='1 +'",
		"comment='unterminated",
	} {
		if _, err := ParsePolicy(tag); !errors.Is(err, ErrTag) {
			t.Errorf("%s: got %v, want %v", tag, err, ErrTag)
		}
	}
}

func TestParseStructTag(t *testing.T) {
	got, err := ParseStructTag(`name=a, flag ,comment="x, y",empty=`)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]string{"name": "a", "flag": "", "comment": "x, y", "empty": ""}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
