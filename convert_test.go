package json5

import (
	"strings"
	"testing"

	"github.com/signadot/json5-format/go-json5/encode"
	"github.com/signadot/json5-format/go-json5/value"
)

func TestFromJSON(t *testing.T) {
	tool := DefaultTool()
	v, err := tool.FromJSON([]byte(`{"a": [1, 2], "b": "x"}`))
	if err != nil {
		t.Fatal(err)
	}
	got, err := tool.Print(v)
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"a\": [\n    1,\n    2\n  ],\n  \"b\": \"x\"\n}"
	if string(got) != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestToJSON(t *testing.T) {
	tool := DefaultTool()
	v, err := tool.Parse([]byte("{\n a: 'x', // c\n n: 0x10,\n}"))
	if err != nil {
		t.Fatal(err)
	}
	got, err := tool.ToJSON(v)
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"a\": \"x\",\n  \"n\": 16\n}"
	if string(got) != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestFromYAML(t *testing.T) {
	tool := DefaultTool()
	v, err := tool.FromYAML([]byte("b: 1\na:\n  - x\n  - true\n  - -2.5\n"))
	if err != nil {
		t.Fatal(err)
	}
	want, err := tool.Parse([]byte(`{b: 1, a: ['x', true, -2.5]}`))
	if err != nil {
		t.Fatal(err)
	}
	if !value.Equal(v, want) {
		t.Errorf("got %s", encode.MustString(v))
	}
	if _, err := tool.FromYAML([]byte("a: [1,\n")); err == nil {
		t.Error("expected a YAML error")
	}
}

func TestToYAML(t *testing.T) {
	tool := DefaultTool()
	in := `{
  // the name
  name: 'svc',
  port: 80, // open
  ports: [ 80, 443 ],
  "a b": null,
}`
	v, err := tool.Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	d, err := tool.ToYAML(v)
	if err != nil {
		t.Fatal(err)
	}
	s := string(d)
	for _, want := range []string{"name: svc", "the name", "open"} {
		if !strings.Contains(s, want) {
			t.Errorf("missing %q in\n%s", want, s)
		}
	}
	if strings.Index(s, "name:") > strings.Index(s, "ports:") {
		t.Errorf("order not kept:\n%s", s)
	}
	back, err := tool.FromYAML(d)
	if err != nil {
		t.Fatal(err)
	}
	if !value.Equal(back, v) {
		t.Errorf("got %s\nfrom\n%s", encode.MustString(back), s)
	}
}
