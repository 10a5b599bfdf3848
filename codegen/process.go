package codegen

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"log/slog"
	"os"
	"path/filepath"
)

// Result describes the generated output of one package.
type Result struct {
	Package *PackageInfo

	// OutputFile is the generated file path
	OutputFile string

	// Types lists the derived type names in source order
	Types []string

	// Code is the generated source
	Code []byte

	// Stale is set when OutputFile was missing or differed from Code
	// before this run. It stays set after Process rewrites the file.
	Stale bool

	// Diff is a line diff from the existing file to Code, set in check
	// mode when Stale
	Diff string

	// Written is set when Process wrote OutputFile; only stale results
	// are written, and never in check mode
	Written bool
}

// Process discovers the packages under cfg.Dir and generates code for
// every package that has derivable types. Nothing is written unless
// every package succeeds, and files already up to date are left alone.
// In check mode nothing is written.
func Process(cfg *Config) ([]*Result, error) {
	log := cfg.Log
	if log == nil {
		log = slog.Default()
	}

	dir := cfg.Dir
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
	}

	reg, err := NewTypeRegistry(cfg.Types)
	if err != nil {
		return nil, fmt.Errorf("invalid types registry: %w", err)
	}

	pkgs, err := DiscoverPackages(dir, cfg.Recursive)
	if err != nil {
		return nil, fmt.Errorf("failed to discover packages: %w", err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no Go packages found in %q", dir)
	}

	var loader *PackageLoader
	if cfg.Resolve {
		loader = NewPackageLoader()
	}

	var results []*Result
	outputs := make(map[string]string)
	for _, pkg := range pkgs {
		log.Debug("processing package", "package", pkg.Name, "dir", pkg.Dir)
		res, err := ProcessPackage(cfg, pkg, reg, loader)
		if err != nil {
			return nil, fmt.Errorf("failed to process package %q: %w", pkg.Dir, err)
		}
		if res == nil {
			continue
		}
		if other, ok := outputs[res.OutputFile]; ok {
			return nil, fmt.Errorf("packages %q and %q would both write %q", other, pkg.Dir, res.OutputFile)
		}
		outputs[res.OutputFile] = pkg.Dir
		results = append(results, res)
	}

	if cfg.Check {
		return results, nil
	}
	for _, res := range results {
		if !res.Stale {
			log.Debug("up to date", "file", res.OutputFile)
			continue
		}
		if err := os.WriteFile(res.OutputFile, res.Code, 0644); err != nil {
			return results, fmt.Errorf("failed to write output file %q: %w", res.OutputFile, err)
		}
		res.Written = true
	}
	return results, nil
}

// ProcessPackage generates code for one package and compares it with the
// existing output file. It returns nil if the package has no derivable
// types. loader is required for resolve mode.
func ProcessPackage(cfg *Config, pkg *PackageInfo, reg *TypeRegistry, loader *PackageLoader) (*Result, error) {
	output := OutputPath(cfg, pkg)

	type parsed struct {
		file *ast.File
		fset *token.FileSet
		path string
	}
	var files []parsed
	derivable := false
	for _, filePath := range pkg.Files {
		if sameFile(filePath, output) {
			continue
		}
		file, fset, err := ParseFile(filePath)
		if err != nil {
			return nil, err
		}
		derivable = derivable || Derivable(file)
		files = append(files, parsed{file, fset, filePath})
	}
	if !derivable {
		return nil, nil
	}

	var allStructs []*StructInfo
	if cfg.Resolve {
		// re-extract from the type-checked syntax so Info matches the AST
		if loader == nil {
			return nil, errors.New("resolve mode requires a package loader")
		}
		loaded, err := loader.LoadDir(pkg.Dir)
		if err != nil {
			return nil, err
		}
		x := &Extractor{Fset: loaded.Fset, Types: reg, Info: loaded.TypesInfo}
		syntax, names := loader.Files(loaded)
		for i, file := range syntax {
			if sameFile(names[i], output) {
				continue
			}
			structs, err := x.Extract(file, names[i])
			if err != nil {
				return nil, fmt.Errorf("failed to extract types from %q: %w", names[i], err)
			}
			allStructs = append(allStructs, structs...)
		}
	} else {
		for _, f := range files {
			x := &Extractor{Fset: f.fset, Types: reg}
			structs, err := x.Extract(f.file, f.path)
			if err != nil {
				return nil, fmt.Errorf("failed to extract types from %q: %w", f.path, err)
			}
			allStructs = append(allStructs, structs...)
		}
	}

	if len(allStructs) == 0 {
		return nil, nil
	}

	syntax := make([]*ast.File, len(files))
	for i, f := range files {
		syntax[i] = f.file
	}
	code, err := GenerateCode(pkg.Name, allStructs, output, PackageScope(syntax))
	if err != nil {
		return nil, fmt.Errorf("failed to generate code: %w", err)
	}

	res := &Result{
		Package:    pkg,
		OutputFile: output,
		Code:       code,
	}
	for _, s := range allStructs {
		res.Types = append(res.Types, s.Name)
	}

	existing, err := os.ReadFile(output)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read %q: %w", output, err)
	}
	if !bytes.Equal(existing, code) {
		res.Stale = true
		if cfg.Check {
			res.Diff = LineDiff(string(existing), string(code))
		}
	}
	return res, nil
}

// OutputPath returns the generated file path for pkg: cfg.OutputFile
// (relative paths are taken relative to the package directory) or
// <package>_gen.go.
func OutputPath(cfg *Config, pkg *PackageInfo) string {
	if cfg.OutputFile == "" {
		return filepath.Join(pkg.Dir, pkg.Name+"_gen.go")
	}
	if filepath.IsAbs(cfg.OutputFile) {
		return cfg.OutputFile
	}
	return filepath.Join(pkg.Dir, cfg.OutputFile)
}

func sameFile(a, b string) bool {
	aa, err := filepath.Abs(a)
	if err != nil {
		return false
	}
	bb, err := filepath.Abs(b)
	if err != nil {
		return false
	}
	return aa == bb
}

// Derivable reports whether file contains a derive directive, without
// extracting anything.
func Derivable(file *ast.File) bool {
	for _, decl := range file.Decls {
		var lines []string
		switch d := decl.(type) {
		case *ast.FuncDecl:
			lines = rawCommentLines(d.Doc)
		case *ast.GenDecl:
			lines = rawCommentLines(d.Doc)
			for _, spec := range d.Specs {
				switch sp := spec.(type) {
				case *ast.TypeSpec:
					lines = append(lines, rawCommentLines(sp.Doc)...)
				case *ast.ValueSpec:
					lines = append(lines, rawCommentLines(sp.Doc)...)
				}
			}
		}
		if len(directives(lines, "derive")) != 0 {
			return true
		}
	}
	return false
}
