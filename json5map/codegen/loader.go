package codegen

import (
	"fmt"
	"go/types"
	"sync"

	"golang.org/x/tools/go/packages"
)

// PackageLoader loads and caches type checked Go packages.
type PackageLoader struct {
	cache map[string]*packages.Package
	mu    sync.RWMutex
}

// NewPackageLoader creates a new PackageLoader.
func NewPackageLoader() *PackageLoader {
	return &PackageLoader{
		cache: make(map[string]*packages.Package),
	}
}

// LoadDir loads the package in directory dir.
func (l *PackageLoader) LoadDir(dir string) (*packages.Package, error) {
	l.mu.RLock()
	if pkg, ok := l.cache[dir]; ok {
		l.mu.RUnlock()
		return pkg, nil
	}
	l.mu.RUnlock()

	l.mu.Lock()
	defer l.mu.Unlock()
	if pkg, ok := l.cache[dir]; ok {
		return pkg, nil
	}

	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedImports | packages.NeedTypes | packages.NeedTypesInfo,
		Dir:  dir,
	}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to load package in %q: %w", dir, err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no package found in %q", dir)
	}
	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		return nil, fmt.Errorf("failed to load package in %q: %v", dir, pkg.Errors[0])
	}
	l.cache[dir] = pkg
	return pkg, nil
}

// FindStructType finds a struct type definition in a loaded package.
func (l *PackageLoader) FindStructType(pkg *packages.Package, typeName string) (*types.Struct, error) {
	if pkg.Types == nil {
		return nil, fmt.Errorf("package %q has no type information", pkg.PkgPath)
	}
	obj, ok := pkg.Types.Scope().Lookup(typeName).(*types.TypeName)
	if !ok {
		return nil, fmt.Errorf("type %q not found in package %q", typeName, pkg.PkgPath)
	}
	st, ok := obj.Type().Underlying().(*types.Struct)
	if !ok {
		return nil, fmt.Errorf("%q is not a struct", typeName)
	}
	return st, nil
}

// Resolve rewrites the field types of structs from the type information
// of pkg. Qualifiers and imports then follow the package names rather
// than the spelling in the source, and field types the mapper cannot
// handle are reported.
func (l *PackageLoader) Resolve(pkg *packages.Package, structs []*StructInfo) error {
	for _, s := range structs {
		st, err := l.FindStructType(pkg, s.Name)
		if err != nil {
			return err
		}
		byName := map[string]*types.Var{}
		for i := range st.NumFields() {
			byName[st.Field(i).Name()] = st.Field(i)
		}
		for _, f := range s.Fields {
			v, ok := byName[f.Name]
			if !ok {
				return fmt.Errorf("%s.%s not found in %s", s.Name, f.Name, pkg.PkgPath)
			}
			if !supportedType(v.Type()) {
				return fmt.Errorf("%w: %s.%s has type %s", ErrUnsupportedField, s.Name, f.Name, v.Type())
			}
			imports := map[string]string{}
			f.TypeExpr = types.TypeString(v.Type(), func(p *types.Package) string {
				if p == pkg.Types {
					return ""
				}
				imports[p.Name()] = p.Path()
				return p.Name()
			})
			f.Imports = imports
		}
	}
	return nil
}

func supportedType(t types.Type) bool {
	switch u := t.Underlying().(type) {
	case *types.Chan, *types.Signature:
		return false
	case *types.Basic:
		return u.Info()&types.IsComplex == 0 && u.Kind() != types.UnsafePointer
	}
	return true
}
