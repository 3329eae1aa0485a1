package codegen

import (
	"path/filepath"
	"testing"
)

func TestDiscoverPackages(t *testing.T) {
	packages, err := DiscoverPackages("testdata", true)
	if err != nil {
		t.Fatalf("failed to discover packages: %v", err)
	}
	if len(packages) != 1 {
		t.Fatalf("expected one package, got %d", len(packages))
	}
	pkg := packages[0]
	if pkg.Name != "models" {
		t.Errorf("expected package models, got %q", pkg.Name)
	}
	if len(pkg.Files) != 1 || filepath.Base(pkg.Files[0]) != "models.go" {
		t.Errorf("unexpected files %v", pkg.Files)
	}

	packages, err = DiscoverPackages("testdata", false)
	if err != nil {
		t.Fatal(err)
	}
	if len(packages) != 0 {
		t.Errorf("non recursive discovery found %d packages", len(packages))
	}
}

func TestLoaderResolve(t *testing.T) {
	packages, err := DiscoverPackages("testdata/models", false)
	if err != nil || len(packages) != 1 {
		t.Fatalf("discover: %v, %d packages", err, len(packages))
	}
	file, _, err := ParseFile(packages[0].Files[0])
	if err != nil {
		t.Fatal(err)
	}
	structs, err := ExtractStructs(file, packages[0].Files[0])
	if err != nil {
		t.Fatal(err)
	}
	l := NewPackageLoader()
	pkg, err := l.LoadDir(packages[0].Dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := l.Resolve(pkg, structs); err != nil {
		t.Fatal(err)
	}
	types := map[string]string{}
	for _, s := range structs {
		for _, f := range s.Fields {
			types[s.Name+"."+f.Name] = f.TypeExpr
		}
	}
	for field, want := range map[string]string{
		"Job.Every":   "time.Duration",
		"Job.Started": "time.Time",
		"Job.Shape":   "Shape",
		"Plain.B":     "*Circle",
	} {
		if got := types[field]; got != want {
			t.Errorf("%s: got %q, want %q", field, got, want)
		}
	}
	if _, err := GenerateCode(pkg.Name, structs); err != nil {
		t.Error(err)
	}
}
