package codegen

import (
	"fmt"
	"go/build"
	"os"
	"path/filepath"
	"strings"
)

// DiscoverPackages discovers Go packages in the given directory.
// If recursive is true, it scans subdirectories recursively.
func DiscoverPackages(dir string, recursive bool) ([]*PackageInfo, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path for %q: %w", dir, err)
	}

	var packages []*PackageInfo
	visited := make(map[string]bool)

	err = filepath.WalkDir(absDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}

		// Skip hidden directories and vendor
		base := filepath.Base(path)
		if path != absDir && (strings.HasPrefix(base, ".") || strings.HasPrefix(base, "_") || base == "vendor") {
			return filepath.SkipDir
		}
		if !recursive && path != absDir {
			return filepath.SkipDir
		}

		pkg, err := build.ImportDir(path, 0)
		if err != nil || len(pkg.GoFiles) == 0 {
			return nil
		}
		if visited[path] {
			return nil
		}
		visited[path] = true

		files := make([]string, 0, len(pkg.GoFiles))
		for _, f := range pkg.GoFiles {
			if isGenerated(f) {
				continue
			}
			files = append(files, filepath.Join(path, f))
		}

		packages = append(packages, &PackageInfo{
			Path:  pkg.ImportPath,
			Dir:   path,
			Name:  pkg.Name,
			Files: files,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory %q: %w", dir, err)
	}

	return packages, nil
}

func isGenerated(name string) bool {
	return strings.HasSuffix(name, "_gen.go")
}
