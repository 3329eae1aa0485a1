package json5

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFormat(t *testing.T) {
	in := `// head
{
  a: 1,
  b: 'x', // note
  c: [ 1, 2 ]
}`
	got, err := DefaultTool().Format([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != in {
		t.Errorf("got\n%s\nwant\n%s", got, in)
	}
	if _, err := DefaultTool().Format([]byte("{a: }")); err == nil {
		t.Error("expected a parse error")
	}
}

type service struct {
	Name  string   `json5:"name=name"`
	Port  int      `json5:"name=port"`
	Hosts []string `json5:"name=hosts,omitempty"`
}

func TestMarshal(t *testing.T) {
	tool := DefaultTool()
	d, err := tool.Marshal(service{Name: "api", Port: 80})
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n  name: \"api\",\n  port: 80\n}"
	if string(d) != want {
		t.Errorf("got\n%s\nwant\n%s", d, want)
	}
	var s service
	if err := tool.Unmarshal([]byte("{port: 0x50, name: 'web', hosts: ['a',]}"), &s); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(service{Name: "web", Port: 80, Hosts: []string{"a"}}, s); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestRun(t *testing.T) {
	tool := DefaultTool()
	tool.Env["who"] = "x"
	doc, err := tool.Parse([]byte(`{a: 2, b: "$[doc.a * 3]", c: 'hi $[who]'}`))
	if err != nil {
		t.Fatal(err)
	}
	res, err := tool.Run(doc)
	if err != nil {
		t.Fatal(err)
	}
	if got := res.Get("b").String; got != "6" {
		t.Errorf("b: got %q", got)
	}
	if got := res.Get("c").String; got != "hi x" {
		t.Errorf("c: got %q", got)
	}
	if got := doc.Get("b").String; got != "$[doc.a * 3]" {
		t.Errorf("document changed: %q", got)
	}
	if _, err := tool.Run(tool.Builder.String("$[nope(]")); err == nil {
		t.Error("expected an expression error")
	}
}
