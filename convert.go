package structmap

import (
	"fmt"
	"math"
	"strconv"

	"github.com/signadot/structmap/value"
)

// The helpers below are called by generated code. Their type parameters
// use ~ constraints so named types and type parameters with basic
// underlying types convert without extra glue.

type Boolean interface {
	~bool
}

type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

type Float interface {
	~float32 | ~float64
}

type Textual interface {
	~string
}

func ParseBool[T Boolean](s string) (T, error) {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return T(b), nil
}

func ParseSigned[T Signed](s string) (T, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrParse, err)
	}
	t := T(n)
	if int64(t) != n {
		return 0, fmt.Errorf("%w: %d out of range", ErrParse, n)
	}
	return t, nil
}

func ParseUnsigned[T Unsigned](s string) (T, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrParse, err)
	}
	t := T(n)
	if uint64(t) != n {
		return 0, fmt.Errorf("%w: %d out of range", ErrParse, n)
	}
	return t, nil
}

func ParseFloat[T Float](s string) (T, error) {
	f, err := strconv.ParseFloat(s, floatBits[T]())
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return T(f), nil
}

func FormatBool[T Boolean](x T) string {
	return strconv.FormatBool(bool(x))
}

func FormatSigned[T Signed](x T) string {
	return strconv.FormatInt(int64(x), 10)
}

func FormatUnsigned[T Unsigned](x T) string {
	return strconv.FormatUint(uint64(x), 10)
}

func FormatFloat[T Float](x T) string {
	return strconv.FormatFloat(float64(x), 'g', -1, floatBits[T]())
}

// floatBits reports 32 for float32-based types and 64 otherwise.
func floatBits[T Float]() int {
	x := 1 + 1e-10
	if float64(T(x)) != x {
		return 32
	}
	return 64
}

func BoolOf[T Boolean](v value.Value) (T, error) {
	b, ok := v.AsBool()
	if !ok {
		return false, mismatch("bool", v)
	}
	return T(b), nil
}

// SignedOf extracts a signed integer. A Uint64 that fits is accepted since
// decoded documents do not distinguish the two.
func SignedOf[T Signed](v value.Value) (T, error) {
	var n int64
	switch v.Kind() {
	case value.Int64Kind:
		n, _ = v.AsInt64()
	case value.Uint64Kind:
		u, _ := v.AsUint64()
		if u > math.MaxInt64 {
			return 0, fmt.Errorf("%w: %d out of range", ErrMismatch, u)
		}
		n = int64(u)
	default:
		return 0, mismatch("int64", v)
	}
	t := T(n)
	if int64(t) != n {
		return 0, fmt.Errorf("%w: %d out of range", ErrMismatch, n)
	}
	return t, nil
}

// UnsignedOf extracts an unsigned integer. A non-negative Int64 is
// accepted.
func UnsignedOf[T Unsigned](v value.Value) (T, error) {
	var n uint64
	switch v.Kind() {
	case value.Uint64Kind:
		n, _ = v.AsUint64()
	case value.Int64Kind:
		i, _ := v.AsInt64()
		if i < 0 {
			return 0, fmt.Errorf("%w: %d out of range", ErrMismatch, i)
		}
		n = uint64(i)
	default:
		return 0, mismatch("uint64", v)
	}
	t := T(n)
	if uint64(t) != n {
		return 0, fmt.Errorf("%w: %d out of range", ErrMismatch, n)
	}
	return t, nil
}

// FloatOf extracts a float. Integer kinds are widened.
func FloatOf[T Float](v value.Value) (T, error) {
	switch v.Kind() {
	case value.Float64Kind:
		f, _ := v.AsFloat64()
		return T(f), nil
	case value.Int64Kind:
		i, _ := v.AsInt64()
		return T(i), nil
	case value.Uint64Kind:
		u, _ := v.AsUint64()
		return T(u), nil
	default:
		return 0, mismatch("float64", v)
	}
}

func TextOf[T Textual](v value.Value) (T, error) {
	s, ok := v.AsText()
	if !ok {
		return "", mismatch("text", v)
	}
	return T(s), nil
}

func mismatch(want string, v value.Value) error {
	return fmt.Errorf("%w: want %s, got %s", ErrMismatch, want, v.Kind())
}
