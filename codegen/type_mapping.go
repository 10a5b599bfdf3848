package codegen

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"sort"
	"strings"
)

// Family groups basic types that share a conversion path.
type Family int

const (
	FamilyBool Family = iota
	FamilySigned
	FamilyUnsigned
	FamilyFloat
	FamilyText
)

func (f Family) String() string {
	switch f {
	case FamilyBool:
		return "bool"
	case FamilySigned:
		return "signed"
	case FamilyUnsigned:
		return "unsigned"
	case FamilyFloat:
		return "float"
	case FamilyText:
		return "text"
	default:
		return fmt.Sprintf("Family(%d)", int(f))
	}
}

// Primitive describes how a field converts.
type Primitive struct {
	Family Family

	// Basic is the Go basic type the field is, or is based on
	Basic string
}

// familyInfo holds the per-family names used in generated code.
type familyInfo struct {
	canonical string // Go type the Value variant carries
	parse     string // structmap helper: string -> T
	extract   string // structmap helper: value.Value -> T
	format    string // structmap helper: T -> string; empty for text
	ctor      string // value constructor
}

var families = map[Family]familyInfo{
	FamilyBool:     {"bool", "ParseBool", "BoolOf", "FormatBool", "Bool"},
	FamilySigned:   {"int64", "ParseSigned", "SignedOf", "FormatSigned", "Int64"},
	FamilyUnsigned: {"uint64", "ParseUnsigned", "UnsignedOf", "FormatUnsigned", "Uint64"},
	FamilyFloat:    {"float64", "ParseFloat", "FloatOf", "FormatFloat", "Float64"},
	FamilyText:     {"string", "", "TextOf", "", "Text"},
}

// basics is the canonical-type registry: exact type text to primitive.
// Matching is textual, so a local alias of a basic type is only found
// through TypeRegistry or type information.
var basics = map[string]Primitive{
	"bool":    {FamilyBool, "bool"},
	"int":     {FamilySigned, "int"},
	"int8":    {FamilySigned, "int8"},
	"int16":   {FamilySigned, "int16"},
	"int32":   {FamilySigned, "int32"},
	"int64":   {FamilySigned, "int64"},
	"rune":    {FamilySigned, "rune"},
	"uint":    {FamilyUnsigned, "uint"},
	"uint8":   {FamilyUnsigned, "uint8"},
	"uint16":  {FamilyUnsigned, "uint16"},
	"uint32":  {FamilyUnsigned, "uint32"},
	"uint64":  {FamilyUnsigned, "uint64"},
	"byte":    {FamilyUnsigned, "byte"},
	"float32": {FamilyFloat, "float32"},
	"float64": {FamilyFloat, "float64"},
	"string":  {FamilyText, "string"},
}

// LookupBasic returns the primitive for a basic type name.
func LookupBasic(name string) (*Primitive, bool) {
	p, ok := basics[name]
	if !ok {
		return nil, false
	}
	return &p, true
}

// BasicNames returns the supported basic type names, sorted.
func BasicNames() []string {
	names := make([]string, 0, len(basics))
	for name := range basics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TypeRegistry maps non-basic type text, such as "Celsius" or
// "time.Duration", to the basic type it is based on.
type TypeRegistry struct {
	m map[string]*Primitive
}

// NewTypeRegistry builds a registry from type text -> basic name pairs.
func NewTypeRegistry(types map[string]string) (*TypeRegistry, error) {
	reg := &TypeRegistry{m: make(map[string]*Primitive, len(types))}
	for text, basic := range types {
		p, ok := LookupBasic(basic)
		if !ok {
			return nil, fmt.Errorf("type %q: %q is not a supported basic type (one of %s)", text, basic, strings.Join(BasicNames(), ", "))
		}
		reg.m[text] = p
	}
	return reg, nil
}

func (r *TypeRegistry) lookup(text string) (*Primitive, bool) {
	if r == nil {
		return nil, false
	}
	p, ok := r.m[text]
	return p, ok
}

// constraintPrimitive maps a type parameter constraint to a primitive when
// every term of its type set is a supported basic type (or ~basic) of the
// same family, e.g. "~int64" or "~int32 | ~int64".
func constraintPrimitive(expr ast.Expr) (*Primitive, bool) {
	terms, ok := constraintTerms(expr, nil)
	if !ok || len(terms) == 0 {
		return nil, false
	}
	var res *Primitive
	for _, term := range terms {
		p, ok := LookupBasic(term)
		if !ok {
			return nil, false
		}
		if res != nil && res.Family != p.Family {
			return nil, false
		}
		if res == nil {
			res = p
		}
	}
	return res, true
}

func constraintTerms(expr ast.Expr, acc []string) ([]string, bool) {
	switch x := expr.(type) {
	case *ast.Ident:
		return append(acc, x.Name), true
	case *ast.UnaryExpr:
		if x.Op != token.TILDE {
			return nil, false
		}
		return constraintTerms(x.X, acc)
	case *ast.BinaryExpr:
		if x.Op != token.OR {
			return nil, false
		}
		acc, ok := constraintTerms(x.X, acc)
		if !ok {
			return nil, false
		}
		return constraintTerms(x.Y, acc)
	case *ast.ParenExpr:
		return constraintTerms(x.X, acc)
	case *ast.InterfaceType:
		// interface{ ~int64 }: a single embedded element and no methods
		if x.Methods == nil || len(x.Methods.List) != 1 {
			return nil, false
		}
		elem := x.Methods.List[0]
		if len(elem.Names) != 0 {
			return nil, false
		}
		return constraintTerms(elem.Type, acc)
	default:
		return nil, false
	}
}

// typesPrimitive maps a type-checked type to a primitive through its
// underlying basic type.
func typesPrimitive(t types.Type) (*Primitive, bool) {
	if t == nil {
		return nil, false
	}
	basic, ok := t.Underlying().(*types.Basic)
	if !ok {
		return nil, false
	}
	switch basic.Kind() {
	case types.Bool:
		return LookupBasic("bool")
	case types.Int, types.Int8, types.Int16, types.Int32, types.Int64,
		types.Uint, types.Uint8, types.Uint16, types.Uint32, types.Uint64,
		types.Float32, types.Float64, types.String:
		return LookupBasic(basic.Name())
	default:
		return nil, false
	}
}
