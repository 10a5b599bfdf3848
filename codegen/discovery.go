package codegen

import (
	"errors"
	"fmt"
	"go/build"
	"io/fs"
	"path/filepath"
	"strings"
)

// DiscoverPackages returns the Go package in dir and, if recursive, the
// packages below it. Directories named vendor or testdata, or starting
// with "." or "_", are not entered. Test files are not listed.
func DiscoverPackages(dir string, recursive bool) ([]*PackageInfo, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path for %q: %w", dir, err)
	}

	var res []*PackageInfo
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && (!recursive || skipDir(d.Name())) {
			return filepath.SkipDir
		}
		pkg, err := importDir(path)
		if err != nil {
			return err
		}
		if pkg != nil {
			res = append(res, pkg)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory %q: %w", dir, err)
	}
	return res, nil
}

func skipDir(name string) bool {
	return strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") ||
		name == "vendor" || name == "testdata"
}

// importDir reads the package in dir. It returns nil if dir has no
// non-test Go files for the current build context.
func importDir(dir string) (*PackageInfo, error) {
	bp, err := build.ImportDir(dir, 0)
	if err != nil {
		var noGo *build.NoGoError
		if errors.As(err, &noGo) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read package in %q: %w", dir, err)
	}
	if len(bp.GoFiles) == 0 {
		return nil, nil
	}
	pkg := &PackageInfo{
		Path: bp.ImportPath,
		Dir:  dir,
		Name: bp.Name,
	}
	for _, f := range bp.GoFiles {
		pkg.Files = append(pkg.Files, filepath.Join(dir, f))
	}
	return pkg, nil
}
