package codegen

import (
	"fmt"
	"go/ast"
	"sync"

	"golang.org/x/tools/go/packages"

	"github.com/signadot/structmap/debug"
)

const loadMode = packages.NeedName | packages.NeedFiles | packages.NeedCompiledGoFiles |
	packages.NeedImports | packages.NeedTypes | packages.NeedSyntax | packages.NeedTypesInfo

// PackageLoader type-checks packages for resolve mode, once per directory.
type PackageLoader struct {
	mu    sync.Mutex
	cache map[string]*packages.Package
}

func NewPackageLoader() *PackageLoader {
	return &PackageLoader{cache: make(map[string]*packages.Package)}
}

// LoadDir loads the package in dir with syntax and type information.
//
// Type errors are tolerated: a stale generated file may not compile until
// it is regenerated, and fields whose types stay unresolved fail
// extraction anyway.
func (l *PackageLoader) LoadDir(dir string) (*packages.Package, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if pkg, ok := l.cache[dir]; ok {
		return pkg, nil
	}

	pkgs, err := packages.Load(&packages.Config{Mode: loadMode, Dir: dir}, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to load package in %q: %w", dir, err)
	}
	if len(pkgs) != 1 {
		return nil, fmt.Errorf("expected one package in %q, got %d", dir, len(pkgs))
	}
	pkg := pkgs[0]
	if debug.Load() {
		for _, e := range pkg.Errors {
			debug.Logf("load %s: %v\n", dir, e)
		}
	}
	if pkg.TypesInfo == nil || len(pkg.Syntax) == 0 {
		return nil, fmt.Errorf("package in %q has no type information", dir)
	}
	l.cache[dir] = pkg
	return pkg, nil
}

// Files returns the parsed files of pkg with their file names.
func (l *PackageLoader) Files(pkg *packages.Package) ([]*ast.File, []string) {
	names := make([]string, len(pkg.Syntax))
	for i, f := range pkg.Syntax {
		names[i] = pkg.Fset.Position(f.Package).Filename
	}
	return pkg.Syntax, names
}
