package codegen

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"reflect"
	"strconv"
	"strings"

	"github.com/signadot/json5-format/go-json5/json5map"
)

// Directive marks a struct for generation when none of its fields carry
// a json5 tag.
const Directive = "//json5:gen"

var ErrUnsupportedField = errors.New("unsupported field type")

// ParseFile parses a Go source file and returns its AST.
func ParseFile(filename string) (*ast.File, *token.FileSet, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, nil, parser.ParseComments)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse file %q: %w", filename, err)
	}
	return file, fset, nil
}

// ExtractStructs returns the structs of file which carry json5 field tags
// or the generation directive. Generic types are skipped.
func ExtractStructs(file *ast.File, filePath string) ([]*StructInfo, error) {
	var structs []*StructInfo
	imports := ExtractImports(file)

	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}
		for _, spec := range genDecl.Specs {
			typeSpec, ok := spec.(*ast.TypeSpec)
			if !ok || typeSpec.TypeParams != nil {
				continue
			}
			structType, ok := typeSpec.Type.(*ast.StructType)
			if !ok {
				continue
			}
			doc := typeSpec.Doc
			if doc == nil && len(genDecl.Specs) == 1 {
				doc = genDecl.Doc
			}
			if !hasDirective(doc) && !hasTags(structType) {
				continue
			}
			info, err := extractStruct(typeSpec.Name.Name, structType, imports)
			if err != nil {
				return nil, err
			}
			info.Package = file.Name.Name
			info.FilePath = filePath
			structs = append(structs, info)
		}
	}
	return structs, nil
}

// ExtractImports extracts imports from an AST file.
// Returns a map of package name -> import path.
func ExtractImports(file *ast.File) map[string]string {
	imports := make(map[string]string)
	for _, imp := range file.Imports {
		path := strings.Trim(imp.Path.Value, "\"")
		var name string
		if imp.Name != nil {
			name = imp.Name.Name
		} else {
			parts := strings.Split(path, "/")
			name = parts[len(parts)-1]
		}
		imports[name] = path
	}
	return imports
}

func hasDirective(doc *ast.CommentGroup) bool {
	if doc == nil {
		return false
	}
	for _, c := range doc.List {
		if strings.TrimSpace(c.Text) == Directive {
			return true
		}
	}
	return false
}

func json5Tag(f *ast.Field) (string, bool) {
	if f.Tag == nil {
		return "", false
	}
	raw, err := strconv.Unquote(f.Tag.Value)
	if err != nil {
		return "", false
	}
	return reflect.StructTag(raw).Lookup("json5")
}

func hasTags(st *ast.StructType) bool {
	for _, f := range st.Fields.List {
		if _, ok := json5Tag(f); ok {
			return true
		}
	}
	return false
}

func extractStruct(name string, st *ast.StructType, imports map[string]string) (*StructInfo, error) {
	info := &StructInfo{Name: name, ASTNode: st}
	for _, f := range st.Fields.List {
		tag, _ := json5Tag(f)
		names := f.Names
		embedded := len(names) == 0
		if embedded {
			names = []*ast.Ident{ast.NewIdent(embeddedName(f.Type))}
		}
		for _, id := range names {
			if id.Name == "_" {
				kind, err := json5map.ParseKindTag(tag)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", name, err)
				}
				if kind != nil {
					info.Kind = kind
				}
				continue
			}
			if !ast.IsExported(id.Name) || tag == "-" {
				continue
			}
			pol, err := json5map.ParsePolicy(tag)
			if err != nil {
				return nil, fmt.Errorf("%s.%s: %w", name, id.Name, err)
			}
			if !supportedExpr(f.Type) {
				return nil, fmt.Errorf("%w: %s.%s has type %s", ErrUnsupportedField, name, id.Name, types.ExprString(f.Type))
			}
			key := id.Name
			if pol.Name != "" {
				key = pol.Name
			}
			info.Fields = append(info.Fields, &FieldInfo{
				Name:       id.Name,
				Key:        key,
				Tag:        tag,
				TypeExpr:   types.ExprString(f.Type),
				Imports:    usedImports(f.Type, imports),
				ASTField:   f,
				IsEmbedded: embedded,
			})
		}
	}
	return info, nil
}

// supportedExpr reports whether a field of type x can be mapped by
// generated code. Anonymous struct types lose their tags in ExprString.
func supportedExpr(x ast.Expr) bool {
	switch t := x.(type) {
	case *ast.FuncType, *ast.ChanType, *ast.StructType:
		return false
	case *ast.InterfaceType:
		return len(t.Methods.List) == 0
	}
	return true
}

func embeddedName(x ast.Expr) string {
	switch t := x.(type) {
	case *ast.StarExpr:
		return embeddedName(t.X)
	case *ast.SelectorExpr:
		return t.Sel.Name
	case *ast.Ident:
		return t.Name
	case *ast.IndexExpr:
		return embeddedName(t.X)
	case *ast.IndexListExpr:
		return embeddedName(t.X)
	}
	return "_"
}

// usedImports returns the imports referenced by qualified identifiers in
// x.
func usedImports(x ast.Expr, imports map[string]string) map[string]string {
	res := map[string]string{}
	ast.Inspect(x, func(n ast.Node) bool {
		sel, ok := n.(*ast.SelectorExpr)
		if !ok {
			return true
		}
		if id, ok := sel.X.(*ast.Ident); ok {
			if path, ok := imports[id.Name]; ok {
				res[id.Name] = path
			}
		}
		return false
	})
	return res
}
