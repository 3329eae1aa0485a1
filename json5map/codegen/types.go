package codegen

import (
	"go/ast"

	"github.com/signadot/json5-format/go-json5/json5map"
)

// StructInfo holds parsed struct information from Go source
type StructInfo struct {
	// Name is the struct type name
	Name string

	// Package is the package name this struct belongs to
	Package string

	// FilePath is the path to the source file containing this struct
	FilePath string

	// Fields contains the mapped fields in declaration order
	Fields []*FieldInfo

	// Kind comes from the json5 tag of a blank struct{} field
	Kind *json5map.Kind

	// ASTNode is the original AST node for this struct (for reference)
	ASTNode *ast.StructType
}

// FieldInfo holds field information extracted from struct definition
type FieldInfo struct {
	// Name is the struct field name
	Name string

	// Key is the object key, from name= or else Name
	Key string

	// Tag is the raw json5 tag, passed to json5map.MustParsePolicy
	Tag string

	// TypeExpr is the field type as written in the generated file
	TypeExpr string

	// Imports maps the package qualifiers used in TypeExpr to their
	// import paths
	Imports map[string]string

	// ASTField is the original AST field node (for reference)
	ASTField *ast.Field

	// IsEmbedded indicates if this is an embedded field
	IsEmbedded bool
}

// PackageInfo holds information about a Go package
type PackageInfo struct {
	// Path is the package import path (e.g., "github.com/user/project/models")
	Path string

	// Dir is the directory containing the package
	Dir string

	// Name is the package name (e.g., "models")
	Name string

	// Files contains paths to all .go files in the package
	Files []string
}

// CodegenConfig holds configuration for code generation
type CodegenConfig struct {
	// OutputFile is the output file for generated Go code (default: <package>_gen.go)
	OutputFile string

	// Dir is the directory to scan for Go files (default: current directory)
	Dir string

	// Recursive indicates whether to scan subdirectories recursively
	Recursive bool

	// Package is the current package being processed
	Package *PackageInfo
}
