package codegen

import (
	"errors"
	"fmt"
	"go/ast"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/tools/imports"

	"github.com/signadot/structmap/debug"
)

// Header is the first line of every generated file.
const Header = "// Code generated by structmap-gen. DO NOT EDIT."

const (
	structmapImport = "github.com/signadot/structmap"
	valueImport     = "github.com/signadot/structmap/value"
)

// GenerateCode generates the Go source for all structs of one package.
// filename is used only to format the result. scope holds the package
// level names the generated file must not shadow, as returned by
// PackageScope; it may be nil. Errors for individual types are joined,
// and no code is returned if any type fails.
func GenerateCode(pkgName string, structs []*StructInfo, filename string, scope map[string]bool) ([]byte, error) {
	extra := make(map[string]string)
	for _, s := range structs {
		for name, path := range fieldImports(s) {
			extra[name] = path
		}
	}
	for name := range scope {
		if shadowsPredeclared(name) {
			return nil, fmt.Errorf("package %s declares %s, which generated code uses as a predeclared identifier", pkgName, name)
		}
	}
	imp := chooseImports(structs, scope, extra)

	var body strings.Builder
	var errs []error
	for _, s := range structs {
		code, err := generateStruct(s, imp)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		body.WriteString(code)
	}
	if len(errs) != 0 {
		return nil, errors.Join(errs...)
	}

	var buf strings.Builder
	buf.WriteString(Header + "\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkgName)
	buf.WriteString("import (\n")
	for _, name := range sortedKeys(extra) {
		writeImport(&buf, name, extra[name])
	}
	if len(extra) != 0 {
		buf.WriteString("\n")
	}
	writeImport(&buf, imp.structmap, structmapImport)
	writeImport(&buf, imp.value, valueImport)
	buf.WriteString(")\n")
	buf.WriteString(body.String())

	src := []byte(buf.String())
	if debug.Gen() {
		debug.Logf("generated %s before formatting:\n%s\n", filename, src)
	}
	out, err := imports.Process(filename, src, &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to format generated code for %s: %w", filename, err)
	}
	return out, nil
}

// generateStruct generates the requested methods for one struct.
func generateStruct(s *StructInfo, imp importNames) (string, error) {
	var buf strings.Builder
	buf.WriteString("\n")

	if !s.Generic() {
		buf.WriteString("var (\n")
		if s.Traits.Has(TraitFromMap) {
			fmt.Fprintf(&buf, "\t_ %s.FromMap = (*%s)(nil)\n", imp.structmap, s.Name)
		}
		if s.Traits.Has(TraitToMap) {
			fmt.Fprintf(&buf, "\t_ %s.ToMap = (*%s)(nil)\n", imp.structmap, s.Name)
		}
		buf.WriteString(")\n\n")
	}

	if s.Traits.Has(TraitFromMap) {
		code, err := deriveFromMap(s, imp)
		if err != nil {
			return "", err
		}
		buf.WriteString(code)
	}
	if s.Traits.Has(TraitToMap) {
		if s.Traits.Has(TraitFromMap) {
			buf.WriteString("\n")
		}
		code, err := deriveToMap(s, imp)
		if err != nil {
			return "", err
		}
		buf.WriteString(code)
	}
	return buf.String(), nil
}

// fieldImports returns the imports needed by qualified field types such
// as time.Duration.
func fieldImports(s *StructInfo) map[string]string {
	res := make(map[string]string)
	for _, f := range s.Fields {
		if f.Omit {
			continue
		}
		ast.Inspect(f.TypeExpr, func(n ast.Node) bool {
			sel, ok := n.(*ast.SelectorExpr)
			if !ok {
				return true
			}
			if id, ok := sel.X.(*ast.Ident); ok {
				if path, ok := s.Imports[id.Name]; ok {
					res[id.Name] = path
				}
			}
			return false
		})
	}
	return res
}

// chooseImports names the structmap and value imports so that they do not
// collide with package level names, type parameters, field type names or
// other imports of the generated file.
func chooseImports(structs []*StructInfo, scope map[string]bool, extra map[string]string) importNames {
	taken := make(map[string]bool, len(scope)+len(extra))
	for name := range scope {
		taken[name] = true
	}
	for name := range extra {
		taken[name] = true
	}
	for _, s := range structs {
		for name := range structIdents(s) {
			taken[name] = true
		}
	}
	var imp importNames
	imp.structmap = pickName(defaultImports.structmap, taken)
	taken[imp.structmap] = true
	imp.value = pickName(defaultImports.value, taken)
	return imp
}

// PackageScope returns the names declared at package level in files,
// skipping methods and blank identifiers.
func PackageScope(files []*ast.File) map[string]bool {
	scope := make(map[string]bool)
	add := func(id *ast.Ident) {
		if id != nil && id.Name != "_" {
			scope[id.Name] = true
		}
	}
	for _, file := range files {
		for _, decl := range file.Decls {
			switch d := decl.(type) {
			case *ast.FuncDecl:
				if d.Recv == nil {
					add(d.Name)
				}
			case *ast.GenDecl:
				for _, spec := range d.Specs {
					switch sp := spec.(type) {
					case *ast.TypeSpec:
						add(sp.Name)
					case *ast.ValueSpec:
						for _, id := range sp.Names {
							add(id)
						}
					}
				}
			}
		}
	}
	return scope
}

func writeImport(buf *strings.Builder, name, path string) {
	if name == lastElem(path) {
		fmt.Fprintf(buf, "\t%s\n", strconv.Quote(path))
	} else {
		fmt.Fprintf(buf, "\t%s %s\n", name, strconv.Quote(path))
	}
}

func lastElem(path string) string {
	return path[strings.LastIndex(path, "/")+1:]
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
