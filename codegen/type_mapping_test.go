package codegen

import (
	"go/parser"
	"go/types"
	"strings"
	"testing"
)

func TestLookupBasic(t *testing.T) {
	tests := []struct {
		name   string
		family Family
	}{
		{"bool", FamilyBool},
		{"int", FamilySigned},
		{"rune", FamilySigned},
		{"byte", FamilyUnsigned},
		{"uint64", FamilyUnsigned},
		{"float32", FamilyFloat},
		{"string", FamilyText},
	}
	for _, tt := range tests {
		p, ok := LookupBasic(tt.name)
		if !ok {
			t.Errorf("%s: not found", tt.name)
			continue
		}
		if p.Family != tt.family || p.Basic != tt.name {
			t.Errorf("%s: got %+v", tt.name, p)
		}
	}
	for _, name := range []string{"uintptr", "complex128", "any", "[]byte", "time.Duration"} {
		if _, ok := LookupBasic(name); ok {
			t.Errorf("%s: unexpectedly supported", name)
		}
	}
}

func TestNewTypeRegistry(t *testing.T) {
	if _, err := NewTypeRegistry(map[string]string{"ID": "uuid"}); err == nil || !strings.Contains(err.Error(), `"uuid"`) {
		t.Errorf("expected error naming uuid, got %v", err)
	}
	reg, err := NewTypeRegistry(map[string]string{"ID": "string"})
	if err != nil {
		t.Fatal(err)
	}
	if p, ok := reg.lookup("ID"); !ok || p.Family != FamilyText {
		t.Errorf("got %+v, %v", p, ok)
	}
	var nilReg *TypeRegistry
	if _, ok := nilReg.lookup("ID"); ok {
		t.Error("nil registry should find nothing")
	}
}

func TestConstraintPrimitive(t *testing.T) {
	tests := []struct {
		constraint string
		family     Family
		ok         bool
	}{
		{"int64", FamilySigned, true},
		{"~string", FamilyText, true},
		{"~int8 | ~int16 | int", FamilySigned, true},
		{"interface{ ~float32 | ~float64 }", FamilyFloat, true},
		{"(~bool)", FamilyBool, true},
		{"~int | ~uint", 0, false},
		{"any", 0, false},
		{"comparable", 0, false},
		{"interface{ ~int; String() string }", 0, false},
		{"fmt.Stringer", 0, false},
	}
	for _, tt := range tests {
		expr, err := parser.ParseExpr(tt.constraint)
		if err != nil {
			t.Fatalf("%s: %v", tt.constraint, err)
		}
		p, ok := constraintPrimitive(expr)
		if ok != tt.ok {
			t.Errorf("%s: got ok=%v, want %v", tt.constraint, ok, tt.ok)
			continue
		}
		if ok && p.Family != tt.family {
			t.Errorf("%s: got %s, want %s", tt.constraint, p.Family, tt.family)
		}
	}
}

func TestTypesPrimitive(t *testing.T) {
	named := types.NewNamed(types.NewTypeName(0, nil, "Celsius", nil), types.Typ[types.Float32], nil)
	if p, ok := typesPrimitive(named); !ok || p.Basic != "float32" {
		t.Errorf("named float32: got %+v, %v", p, ok)
	}
	if p, ok := typesPrimitive(types.Universe.Lookup("byte").Type()); !ok || p.Family != FamilyUnsigned {
		t.Errorf("byte: got %+v, %v", p, ok)
	}
	if _, ok := typesPrimitive(types.Typ[types.Uintptr]); ok {
		t.Error("uintptr should be unsupported")
	}
	if _, ok := typesPrimitive(types.NewSlice(types.Typ[types.Int])); ok {
		t.Error("slice should be unsupported")
	}
	if _, ok := typesPrimitive(nil); ok {
		t.Error("nil should be unsupported")
	}
}
