package codegen

import (
	"go/ast"
	"log/slog"
	"strings"
)

// Trait is a set of conversion contracts to derive.
type Trait uint8

const (
	// TraitFromMap derives FromStringMap and FromGenericMap.
	TraitFromMap Trait = 1 << iota

	// TraitToMap derives ToStringMap and ToGenericMap.
	TraitToMap

	TraitAll = TraitFromMap | TraitToMap
)

func (t Trait) Has(o Trait) bool {
	return t&o == o
}

func (t Trait) String() string {
	var parts []string
	if t.Has(TraitFromMap) {
		parts = append(parts, "FromMap")
	}
	if t.Has(TraitToMap) {
		parts = append(parts, "ToMap")
	}
	return strings.Join(parts, ",")
}

// StructInfo holds parsed struct information from Go source
type StructInfo struct {
	// Name is the struct type name
	Name string

	// Package is the package name this struct belongs to
	Package string

	// FilePath is the path to the source file containing this struct
	FilePath string

	// TypeParams are the declared type parameters, in order
	TypeParams []*TypeParam

	// Fields contains information about each struct field, in declaration order
	Fields []*FieldInfo

	// Traits are the contracts requested by the derive directive
	Traits Trait

	// Comments contains the struct doc comment lines, without comment markers
	Comments []string

	// Imports maps package names to import paths for the declaring file
	Imports map[string]string

	// ASTNode is the struct type expression; nil for non-struct declarations
	ASTNode *ast.StructType
}

// Generic reports whether the struct declares type parameters.
func (s *StructInfo) Generic() bool {
	return len(s.TypeParams) != 0
}

// TypeRef returns the type as used in a receiver or instantiation, e.g.
// "Pair[K, V]".
func (s *StructInfo) TypeRef() string {
	if !s.Generic() {
		return s.Name
	}
	names := make([]string, len(s.TypeParams))
	for i, tp := range s.TypeParams {
		names[i] = tp.Name
	}
	return s.Name + "[" + strings.Join(names, ", ") + "]"
}

// TypeParam is a declared type parameter.
type TypeParam struct {
	Name string

	// Constraint is the constraint expression as written
	Constraint ast.Expr
}

// FieldInfo holds field information extracted from struct definition
type FieldInfo struct {
	// Name is the struct field name
	Name string

	// Key is the effective map key: Rename if set, otherwise Name
	Key string

	// Rename is the key from the rename directive, if any
	Rename string

	// TypeExpr is the AST representation of the field type
	TypeExpr ast.Expr

	// TypeText is TypeExpr printed as Go source
	TypeText string

	// Prim is the primitive the field converts through; nil if unsupported
	Prim *Primitive

	// Omit excludes the field from every derived method
	Omit bool

	// Comments contains field doc comment lines, without comment markers
	Comments []string

	// ASTField is the original AST field node (for reference)
	ASTField *ast.Field
}

// PackageInfo holds information about a Go package
type PackageInfo struct {
	// Path is the package import path (e.g., "github.com/user/project/models")
	Path string

	// Dir is the directory containing the package
	Dir string

	// Name is the package name (e.g., "models")
	Name string

	// Files contains paths to all non-test .go files in the package
	Files []string
}

// Config holds configuration for code generation
type Config struct {
	// OutputFile is the output file for generated Go code (default: <package>_gen.go in each package dir)
	OutputFile string

	// Dir is the directory to scan for Go files (default: current directory)
	Dir string

	// Recursive indicates whether to scan subdirectories recursively
	Recursive bool

	// Resolve type-checks packages so named types and aliases map to their basic types
	Resolve bool

	// Check compares generated code with existing files instead of writing
	Check bool

	// Types maps type text (e.g. "Celsius", "time.Duration") to a basic type name
	Types map[string]string

	// Log receives progress messages (default: slog.Default())
	Log *slog.Logger
}
