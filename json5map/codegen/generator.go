package codegen

import (
	"bytes"
	"cmp"
	"fmt"
	"go/format"
	"path"
	"slices"
	"strconv"
	"strings"
)

const json5mapPath = "github.com/signadot/json5-format/go-json5/json5map"

// GenerateCode returns the source of a file in package pkgName defining
// RegisterJSON5, which registers a record for each of structs.
func GenerateCode(pkgName string, structs []*StructInfo) ([]byte, error) {
	buf := &bytes.Buffer{}
	fmt.Fprintf(buf, "// Code generated by json5-gen. DO NOT EDIT.\n\n")
	fmt.Fprintf(buf, "package %s\n\n", pkgName)
	writeImports(buf, structs)

	fmt.Fprintf(buf, "// RegisterJSON5 adds the records of the json5 mapped types of this\n")
	fmt.Fprintf(buf, "// package to reg.\n")
	fmt.Fprintf(buf, "func RegisterJSON5(reg *json5map.Registry) error {\n")
	fmt.Fprintf(buf, "for _, rec := range []*json5map.Record{\n")
	for _, s := range structs {
		writeRecord(buf, s)
	}
	fmt.Fprintf(buf, "} {\n")
	fmt.Fprintf(buf, "if err := reg.Register(rec); err != nil {\nreturn err\n}\n")
	fmt.Fprintf(buf, "}\nreturn nil\n}\n")

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("generated code does not parse: %w\n%s", err, buf.Bytes())
	}
	return src, nil
}

func writeImports(buf *bytes.Buffer, structs []*StructInfo) {
	imports := map[string]string{}
	for _, s := range structs {
		for _, f := range s.Fields {
			for name, p := range f.Imports {
				imports[name] = p
			}
		}
	}
	names := make([]string, 0, len(imports))
	for name := range imports {
		names = append(names, name)
	}
	slices.SortFunc(names, func(a, b string) int {
		return cmp.Or(strings.Compare(imports[a], imports[b]), strings.Compare(a, b))
	})

	fmt.Fprintf(buf, "import (\n")
	for _, name := range names {
		p := imports[name]
		if name != path.Base(p) {
			fmt.Fprintf(buf, "%s %q\n", name, p)
			continue
		}
		fmt.Fprintf(buf, "%q\n", p)
	}
	if len(names) > 0 {
		fmt.Fprintf(buf, "\n")
	}
	fmt.Fprintf(buf, "%q\n)\n\n", json5mapPath)
}

func writeRecord(buf *bytes.Buffer, s *StructInfo) {
	fmt.Fprintf(buf, "json5map.NewRecord[%s](", s.Name)
	for _, f := range s.Fields {
		pol := "json5map.Policy{}"
		if f.Tag != "" {
			pol = "json5map.MustParsePolicy(" + strconv.Quote(f.Tag) + ")"
		}
		fmt.Fprintf(buf, "\njson5map.NewField(%s,\n", strconv.Quote(f.Key))
		fmt.Fprintf(buf, "func(x *%s) %s { return x.%s },\n", s.Name, f.TypeExpr, f.Name)
		fmt.Fprintf(buf, "func(x *%s, v %s) { x.%s = v },\n", s.Name, f.TypeExpr, f.Name)
		fmt.Fprintf(buf, "%s),", pol)
	}
	if len(s.Fields) > 0 {
		fmt.Fprintf(buf, "\n")
	}
	fmt.Fprintf(buf, ")")
	if s.Kind != nil {
		fmt.Fprintf(buf, ".WithKind(%s, %s)", strconv.Quote(s.Kind.Key), strconv.Quote(s.Kind.Value))
	}
	fmt.Fprintf(buf, ",\n")
}
