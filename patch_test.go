package json5

import (
	"testing"
)

const patchDoc = `{
  // the name
  name: 'svc',
  port: 0xFF,
  tags: [ 'a' ]
}`

func TestPatch(t *testing.T) {
	tool := DefaultTool()
	doc, err := tool.Parse([]byte(patchDoc))
	if err != nil {
		t.Fatal(err)
	}
	res, err := tool.Patch(doc, []byte(`[
  {"op": "replace", "path": "/name", "value": "api"},
  {"op": "add", "path": "/z-new", "value": true},
  {"op": "add", "path": "/tags/-", "value": "b"}
]`))
	if err != nil {
		t.Fatal(err)
	}
	got, err := tool.Print(res)
	if err != nil {
		t.Fatal(err)
	}
	want := `{
  // the name
  name: 'api',
  port: 0xFF,
  tags: [ 'a', "b" ],
  "z-new": true
}`
	if string(got) != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}

	if _, err := tool.Patch(doc, []byte(`[{"op": "remove", "path": "/missing"}]`)); err == nil {
		t.Error("expected an error removing a missing member")
	}
	if _, err := tool.Patch(doc, []byte(`{`)); err == nil {
		t.Error("expected an error decoding the patch")
	}
}

func TestMergePatch(t *testing.T) {
	tool := DefaultTool()
	doc, err := tool.Parse([]byte(patchDoc))
	if err != nil {
		t.Fatal(err)
	}
	res, err := tool.MergePatch(doc, []byte(`{"port": null, "extra": {"k": 1}}`))
	if err != nil {
		t.Fatal(err)
	}
	got, err := tool.Print(res)
	if err != nil {
		t.Fatal(err)
	}
	want := `{
  // the name
  name: 'svc',
  tags: [ 'a' ],
  extra: {
    k: 1
  }
}`
	if string(got) != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}
