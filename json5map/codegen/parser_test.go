package codegen

import (
	"errors"
	"go/parser"
	"go/token"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/json5-format/go-json5/json5map"
)

func extract(t *testing.T, src string) ([]*StructInfo, error) {
	t.Helper()
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "x.go", src, parser.ParseComments)
	if err != nil {
		t.Fatal(err)
	}
	return ExtractStructs(file, "x.go")
}

func TestExtractStructs(t *testing.T) {
	structs, err := extract(t, `package models

import (
	"time"

	tm "time"
)

type Circle struct {
	_ struct{} `+"`json5:\"kind=circle,kindkey=shape\"`"+`
	R float64 `+"`json5:\"name=r,essential\"`"+`
}

type Job struct {
	Every   time.Duration `+"`json5:\"name=every\"`"+`
	Started *tm.Time
	Skip    int `+"`json5:\"-\"`"+`
	hidden  int
	A, B    int
}

//json5:gen
type Plain struct {
	Circle
}

type Untagged struct {
	A int
}

type Generic[T any] struct {
	X T `+"`json5:\"name=x\"`"+`
}
`)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, s := range structs {
		names = append(names, s.Name)
	}
	if diff := cmp.Diff([]string{"Circle", "Job", "Plain"}, names); diff != "" {
		t.Fatalf("structs (-want +got):\n%s", diff)
	}

	circle := structs[0]
	if diff := cmp.Diff(&json5map.Kind{Key: "shape", Value: "circle"}, circle.Kind); diff != "" {
		t.Errorf("kind (-want +got):\n%s", diff)
	}
	if len(circle.Fields) != 1 || circle.Fields[0].Key != "r" || circle.Fields[0].Tag != "name=r,essential" {
		t.Errorf("circle fields: %+v", circle.Fields)
	}

	type field struct {
		Name, Key, TypeExpr string
		Imports             map[string]string
	}
	var got []field
	for _, f := range structs[1].Fields {
		got = append(got, field{f.Name, f.Key, f.TypeExpr, f.Imports})
	}
	want := []field{
		{"Every", "every", "time.Duration", map[string]string{"time": "time"}},
		{"Started", "Started", "*tm.Time", map[string]string{"tm": "time"}},
		{"A", "A", "int", map[string]string{}},
		{"B", "B", "int", map[string]string{}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("job fields (-want +got):\n%s", diff)
	}

	plain := structs[2]
	if len(plain.Fields) != 1 || !plain.Fields[0].IsEmbedded || plain.Fields[0].Name != "Circle" {
		t.Errorf("plain fields: %+v", plain.Fields)
	}
}

func TestExtractStructsErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		err  error
	}{
		{
			name: "bad option",
			src:  "package p\ntype T struct {\n\tA int `json5:\"bogus\"`\n}\n",
			err:  json5map.ErrTag,
		},
		{
			name: "bad kind",
			src:  "package p\ntype T struct {\n\t_ struct{} `json5:\"kindkey=k\"`\n\tA int `json5:\"name=a\"`\n}\n",
			err:  json5map.ErrTag,
		},
		{
			name: "chan",
			src:  "package p\ntype T struct {\n\tC chan int `json5:\"name=c\"`\n}\n",
			err:  ErrUnsupportedField,
		},
		{
			name: "anonymous struct",
			src:  "package p\ntype T struct {\n\tS struct{ A int } `json5:\"name=s\"`\n}\n",
			err:  ErrUnsupportedField,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := extract(t, tc.src)
			if !errors.Is(err, tc.err) {
				t.Errorf("got %v, want %v", err, tc.err)
			}
		})
	}
}
