package value

import (
	"math"
	"testing"
)

func TestMarshalJSON(t *testing.T) {
	b := NewBuilder(nil)
	obj := b.EmptyObject()
	b.Set(obj, "z", b.Int(1))
	b.Set(obj, "a", b.Array(b.Float(1.5), b.Bool(false), b.Null(), b.Float(math.NaN())))
	b.Set(obj, "z", b.Int(2))
	b.Set(obj, "s", b.QuotedString("it's \"x\"", SingleQuote))
	b.AddLineComment(obj.Values[0], " dropped")
	d, err := obj.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	want := `{"z":1,"a":[1.5,false,null,null],"s":"it's \"x\""}`
	if string(d) != want {
		t.Errorf("got %s\nwant %s", d, want)
	}
}

func TestStripFormat(t *testing.T) {
	b := NewBuilder(nil)
	v := sample(b)
	c := b.DeepCopy(v)
	StripFormat(c)
	if !Equal(v, c) {
		t.Fatal("data changed")
	}
	if EqualFormat(v, c) {
		t.Fatal("format not stripped")
	}
	err := c.Walk(func(p string, x *Value) error {
		if len(x.Comments) != 0 || x.Layout != (Layout{}) || x.Quote != DoubleQuote {
			t.Errorf("%s: format left: %+v", p, x)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestGraft(t *testing.T) {
	b := NewBuilder(nil)
	src := sample(b)
	dst := b.DeepCopy(src)
	StripFormat(dst)
	dst.Values[0].Values[1].Float = 9
	b.Set(dst, "added", b.Int(1))
	Graft(dst, src)
	if !EqualFormat(dst.Values[0].Values[0], src.Values[0].Values[0]) {
		t.Errorf("element comments not grafted")
	}
	if dst.Values[0].Layout != src.Values[0].Layout {
		t.Errorf("layout not grafted")
	}
	if dst.Values[0].Values[2].Quote != SingleQuote {
		t.Errorf("quote not grafted")
	}
	if dst.Keys[0].Quote != Unquoted {
		t.Errorf("key quote not grafted")
	}
	if dst.Values[0].Values[1].Float != 9 {
		t.Errorf("graft changed data")
	}
}
