package codegen

import (
	"fmt"
	"go/ast"
	"strconv"
	"strings"
)

// importNames are the names the generated file gives the structmap and
// value packages.
type importNames struct {
	structmap string
	value     string
}

var defaultImports = importNames{structmap: "structmap", value: "value"}

// locals are the identifiers declared inside generated methods. They are
// chosen per type so they do not shadow anything the methods refer to.
type locals struct {
	s, m, r, v, ok, x, err string
}

func newLocals(s *StructInfo, imp importNames) locals {
	taken := structIdents(s)
	taken[imp.structmap] = true
	taken[imp.value] = true
	pick := func(base string) string {
		n := pickName(base, taken)
		taken[n] = true
		return n
	}
	return locals{
		s:   pick("s"),
		m:   pick("m"),
		r:   pick("r"),
		v:   pick("v"),
		ok:  pick("ok"),
		x:   pick("x"),
		err: pick("err"),
	}
}

// pickName returns base, or base with the smallest numeric suffix from 2
// that is not taken.
func pickName(base string, taken map[string]bool) string {
	if !taken[base] {
		return base
	}
	for i := 2; ; i++ {
		n := base + strconv.Itoa(i)
		if !taken[n] {
			return n
		}
	}
}

// structIdents returns the identifiers the methods generated for s refer
// to: the type name, its type parameters and every name in a field type.
func structIdents(s *StructInfo) map[string]bool {
	taken := map[string]bool{s.Name: true}
	for _, tp := range s.TypeParams {
		taken[tp.Name] = true
	}
	for _, f := range s.Fields {
		if f.Omit || f.TypeExpr == nil {
			continue
		}
		ast.Inspect(f.TypeExpr, func(n ast.Node) bool {
			if id, ok := n.(*ast.Ident); ok {
				taken[id.Name] = true
			}
			return true
		})
	}
	return taken
}

// DeriveFromMap generates FromStringMap and FromGenericMap for s.
//
// Each method starts from structmap.Default, assigns every field whose key
// is present in the map, and stores the result in the receiver only if
// all present fields convert. Absent keys keep their default.
func DeriveFromMap(s *StructInfo) (string, error) {
	return deriveFromMap(s, defaultImports)
}

func deriveFromMap(s *StructInfo, imp importNames) (string, error) {
	if err := validate(s); err != nil {
		return "", err
	}

	var buf strings.Builder
	recv := s.TypeRef()
	l := newLocals(s, imp)
	sm := imp.structmap

	fmt.Fprintf(&buf, "// FromStringMap sets %s from %s, starting from the default %s.\n", l.s, l.m, s.Name)
	fmt.Fprintf(&buf, "// Keys absent from %s keep their default value.\n", l.m)
	fmt.Fprintf(&buf, "func (%s *%s) FromStringMap(%s %s.StringMap) error {\n", l.s, recv, l.m, sm)
	fmt.Fprintf(&buf, "\t%s := %s.Default[%s]()\n", l.r, sm, recv)
	for _, f := range s.Fields {
		if f.Omit {
			continue
		}
		fmt.Fprintf(&buf, "\tif %s, %s := %s[%s]; %s {\n", l.v, l.ok, l.m, strconv.Quote(f.Key), l.ok)
		if f.Prim.Family == FamilyText {
			fmt.Fprintf(&buf, "\t\t%s.%s = %s\n", l.r, f.Name, convert(f.TypeText, "string", l.v))
		} else {
			fmt.Fprintf(&buf, "\t\t%s, %s := %s.%s[%s](%s)\n", l.x, l.err, sm, families[f.Prim.Family].parse, f.TypeText, l.v)
			writeFieldErr(&buf, s, f, l, sm)
			fmt.Fprintf(&buf, "\t\t%s.%s = %s\n", l.r, f.Name, l.x)
		}
		fmt.Fprintf(&buf, "\t}\n")
	}
	fmt.Fprintf(&buf, "\t*%s = %s\n", l.s, l.r)
	fmt.Fprintf(&buf, "\treturn nil\n")
	fmt.Fprintf(&buf, "}\n\n")

	fmt.Fprintf(&buf, "// FromGenericMap sets %s from %s, starting from the default %s.\n", l.s, l.m, s.Name)
	fmt.Fprintf(&buf, "// Keys absent from %s keep their default value.\n", l.m)
	fmt.Fprintf(&buf, "func (%s *%s) FromGenericMap(%s %s.GenericMap) error {\n", l.s, recv, l.m, sm)
	fmt.Fprintf(&buf, "\t%s := %s.Default[%s]()\n", l.r, sm, recv)
	for _, f := range s.Fields {
		if f.Omit {
			continue
		}
		fmt.Fprintf(&buf, "\tif %s, %s := %s[%s]; %s {\n", l.v, l.ok, l.m, strconv.Quote(f.Key), l.ok)
		fmt.Fprintf(&buf, "\t\t%s, %s := %s.%s[%s](%s)\n", l.x, l.err, sm, families[f.Prim.Family].extract, f.TypeText, l.v)
		writeFieldErr(&buf, s, f, l, sm)
		fmt.Fprintf(&buf, "\t\t%s.%s = %s\n", l.r, f.Name, l.x)
		fmt.Fprintf(&buf, "\t}\n")
	}
	fmt.Fprintf(&buf, "\t*%s = %s\n", l.s, l.r)
	fmt.Fprintf(&buf, "\treturn nil\n")
	fmt.Fprintf(&buf, "}\n")

	return buf.String(), nil
}

// DeriveToMap generates ToStringMap and ToGenericMap for s. Both return a
// fresh map with one entry per field, keyed by the field's effective key.
func DeriveToMap(s *StructInfo) (string, error) {
	return deriveToMap(s, defaultImports)
}

func deriveToMap(s *StructInfo, imp importNames) (string, error) {
	if err := validate(s); err != nil {
		return "", err
	}

	var buf strings.Builder
	recv := s.TypeRef()
	l := newLocals(s, imp)
	sm := imp.structmap
	n := 0
	for _, f := range s.Fields {
		if !f.Omit {
			n++
		}
	}

	fmt.Fprintf(&buf, "// ToStringMap returns the fields of %s as text, keyed by field name.\n", l.s)
	fmt.Fprintf(&buf, "func (%s %s) ToStringMap() %s.StringMap {\n", l.s, recv, sm)
	fmt.Fprintf(&buf, "\t%s := make(%s.StringMap, %d)\n", l.m, sm, n)
	for _, f := range s.Fields {
		if f.Omit {
			continue
		}
		fmt.Fprintf(&buf, "\t%s[%s] = %s\n", l.m, strconv.Quote(f.Key), formatExpr(f, l.s+"."+f.Name, sm))
	}
	fmt.Fprintf(&buf, "\treturn %s\n", l.m)
	fmt.Fprintf(&buf, "}\n\n")

	fmt.Fprintf(&buf, "// ToGenericMap returns the fields of %s as values, keyed by field name.\n", l.s)
	fmt.Fprintf(&buf, "func (%s %s) ToGenericMap() %s.GenericMap {\n", l.s, recv, sm)
	fmt.Fprintf(&buf, "\t%s := make(%s.GenericMap, %d)\n", l.m, sm, n)
	for _, f := range s.Fields {
		if f.Omit {
			continue
		}
		fi := families[f.Prim.Family]
		fmt.Fprintf(&buf, "\t%s[%s] = %s.%s(%s)\n", l.m, strconv.Quote(f.Key), imp.value, fi.ctor, convert(fi.canonical, f.TypeText, l.s+"."+f.Name))
	}
	fmt.Fprintf(&buf, "\treturn %s\n", l.m)
	fmt.Fprintf(&buf, "}\n")

	return buf.String(), nil
}

// predeclared lists the predeclared identifiers generated code uses.
var predeclared = []string{"make", "nil", "error", "bool", "int64", "uint64", "float64", "string"}

// validate checks that s can be derived: a struct whose non-omitted
// fields all have primitives and distinct keys, and whose type parameters
// do not shadow predeclared identifiers the methods use. Extraction
// already enforces the field rules for parsed types; hand-built
// StructInfos get the same errors here.
func validate(s *StructInfo) error {
	if s.ASTNode == nil {
		return &DeriveError{Type: s.Name, Err: ErrUnsupportedShape, Message: "only structs with named fields can be derived"}
	}
	for _, tp := range s.TypeParams {
		if shadowsPredeclared(tp.Name) {
			return &DeriveError{Type: s.Name, Err: ErrUnsupportedShape, Message: fmt.Sprintf("type parameter %s shadows a predeclared identifier", tp.Name)}
		}
	}
	for _, f := range s.Fields {
		if f.Omit {
			continue
		}
		if f.Prim == nil {
			return &DeriveError{Type: s.Name, Field: f.Name, Err: ErrUnsupportedFieldType, Message: fmt.Sprintf("no conversion for type %s", f.TypeText)}
		}
		if f.Key == "" {
			return &DeriveError{Type: s.Name, Field: f.Name, Err: ErrMalformedRename, Message: "empty key"}
		}
	}
	return checkKeys(s)
}

func shadowsPredeclared(name string) bool {
	for _, p := range predeclared {
		if name == p {
			return true
		}
	}
	return false
}

func writeFieldErr(buf *strings.Builder, s *StructInfo, f *FieldInfo, l locals, sm string) {
	fmt.Fprintf(buf, "\t\tif %s != nil {\n", l.err)
	fmt.Fprintf(buf, "\t\t\treturn &%s.FieldError{Type: %s, Field: %s, Key: %s, Err: %s}\n",
		sm, strconv.Quote(s.Name), strconv.Quote(f.Name), strconv.Quote(f.Key), l.err)
	fmt.Fprintf(buf, "\t\t}\n")
}

// formatExpr renders expr (of the field's type) as a string expression.
func formatExpr(f *FieldInfo, expr, sm string) string {
	fi := families[f.Prim.Family]
	if fi.format == "" {
		return convert("string", f.TypeText, expr)
	}
	return fmt.Sprintf("%s.%s(%s)", sm, fi.format, expr)
}

// convert returns expr converted to typ, omitting the conversion when
// expr already has that type.
func convert(typ, from, expr string) string {
	if typ == from {
		return expr
	}
	return typ + "(" + expr + ")"
}
