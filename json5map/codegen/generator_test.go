package codegen

import (
	"go/parser"
	"go/token"
	"strings"
	"testing"
)

func TestGenerateCode(t *testing.T) {
	structs, err := extract(t, `package models

import (
	"time"

	tm "time"
)

type Circle struct {
	_ struct{} `+"`json5:\"kind=circle\"`"+`
	R float64 `+"`json5:\"name=r,essential,comment='radius, in m'\"`"+`
}

type Job struct {
	Every   time.Duration `+"`json5:\"name=every,int=hex\"`"+`
	Started *tm.Time
}

//json5:gen
type Empty struct{}
`)
	if err != nil {
		t.Fatal(err)
	}
	src, err := GenerateCode("models", structs)
	if err != nil {
		t.Fatal(err)
	}
	code := string(src)
	if _, err := parser.ParseFile(token.NewFileSet(), "models_gen.go", src, 0); err != nil {
		t.Fatalf("generated code does not parse: %v\n%s", err, code)
	}
	for _, want := range []string{
		"// Code generated by json5-gen. DO NOT EDIT.",
		"package models",
		"\t\"time\"\n",
		"\ttm \"time\"\n",
		"\t\"github.com/signadot/json5-format/go-json5/json5map\"\n",
		"func RegisterJSON5(reg *json5map.Registry) error {",
		"json5map.NewRecord[Circle](",
		`json5map.NewField("r",`,
		"func(x *Circle) float64 { return x.R },",
		"func(x *Circle, v float64) { x.R = v },",
		`json5map.MustParsePolicy("name=r,essential,comment='radius, in m'")),`,
		`).WithKind("$type", "circle"),`,
		"func(x *Job) time.Duration { return x.Every },",
		"func(x *Job, v *tm.Time) { x.Started = v },",
		"json5map.Policy{}),",
		"json5map.NewRecord[Empty](),",
	} {
		if !strings.Contains(code, want) {
			t.Errorf("expected %q in generated code:\n%s", want, code)
		}
	}
}

func TestGenerateCodeNoImports(t *testing.T) {
	structs, err := extract(t, "package p\ntype T struct {\n\tA int `json5:\"name=a\"`\n}\n")
	if err != nil {
		t.Fatal(err)
	}
	src, err := GenerateCode("p", structs)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(src), "import (\n\t\"github.com/signadot/json5-format/go-json5/json5map\"\n)") {
		t.Errorf("unexpected imports:\n%s", src)
	}
}
