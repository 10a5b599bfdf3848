package value

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies the active variant of a Value.
type Kind int

const (
	NullKind Kind = iota
	BoolKind
	Int64Kind
	Uint64Kind
	Float64Kind
	TextKind
	ArrayKind
)

func (k Kind) String() string {
	switch k {
	case NullKind:
		return "null"
	case BoolKind:
		return "bool"
	case Int64Kind:
		return "int64"
	case Uint64Kind:
		return "uint64"
	case Float64Kind:
		return "float64"
	case TextKind:
		return "text"
	case ArrayKind:
		return "array"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is a closed variant over the primitives a GenericMap can hold.
// The zero Value is Null.
type Value struct {
	kind Kind
	b    bool
	i    int64
	u    uint64
	f    float64
	s    string
	a    []Value
}

func Null() Value { return Value{} }
func Bool(b bool) Value { return Value{kind: BoolKind, b: b} }
func Int64(n int64) Value { return Value{kind: Int64Kind, i: n} }
func Uint64(n uint64) Value { return Value{kind: Uint64Kind, u: n} }
func Float64(f float64) Value { return Value{kind: Float64Kind, f: f} }
func Text(s string) Value { return Value{kind: TextKind, s: s} }

// Array copies vs, so later changes to the caller's slice do not show.
func Array(vs ...Value) Value {
	a := make([]Value, len(vs))
	copy(a, vs)
	return Value{kind: ArrayKind, a: a}
}

// Kind returns the active variant.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is Null.
func (v Value) IsNull() bool { return v.kind == NullKind }

func (v Value) AsBool() (bool, bool) {
	if v.kind != BoolKind {
		return false, false
	}
	return v.b, true
}

func (v Value) AsInt64() (int64, bool) {
	if v.kind != Int64Kind {
		return 0, false
	}
	return v.i, true
}

func (v Value) AsUint64() (uint64, bool) {
	if v.kind != Uint64Kind {
		return 0, false
	}
	return v.u, true
}

func (v Value) AsFloat64() (float64, bool) {
	if v.kind != Float64Kind {
		return 0, false
	}
	return v.f, true
}

func (v Value) AsText() (string, bool) {
	if v.kind != TextKind {
		return "", false
	}
	return v.s, true
}

// AsArray returns a copy of the elements so callers cannot alias v.
func (v Value) AsArray() ([]Value, bool) {
	if v.kind != ArrayKind {
		return nil, false
	}
	res := make([]Value, len(v.a))
	copy(res, v.a)
	return res, true
}

// Equal reports whether v and o hold the same kind and payload.
// Arrays compare element-wise. Float64 compares with ==, so NaN != NaN.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case NullKind:
		return true
	case BoolKind:
		return v.b == o.b
	case Int64Kind:
		return v.i == o.i
	case Uint64Kind:
		return v.u == o.u
	case Float64Kind:
		return v.f == o.f
	case TextKind:
		return v.s == o.s
	case ArrayKind:
		if len(v.a) != len(o.a) {
			return false
		}
		for i := range v.a {
			if !v.a[i].Equal(o.a[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// String renders v in a compact flow form: text is quoted, arrays are
// bracketed.
func (v Value) String() string {
	var b strings.Builder
	v.write(&b)
	return b.String()
}

func (v Value) write(b *strings.Builder) {
	switch v.kind {
	case NullKind:
		b.WriteString("null")
	case BoolKind:
		b.WriteString(strconv.FormatBool(v.b))
	case Int64Kind:
		b.WriteString(strconv.FormatInt(v.i, 10))
	case Uint64Kind:
		b.WriteString(strconv.FormatUint(v.u, 10))
	case Float64Kind:
		b.WriteString(strconv.FormatFloat(v.f, 'g', -1, 64))
	case TextKind:
		b.WriteString(strconv.Quote(v.s))
	case ArrayKind:
		b.WriteByte('[')
		for i := range v.a {
			if i > 0 {
				b.WriteString(", ")
			}
			v.a[i].write(b)
		}
		b.WriteByte(']')
	}
}
