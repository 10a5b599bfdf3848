package value

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/goccy/go-yaml"
)

// Native returns v as a plain Go value: nil, bool, int64, uint64,
// float64, string or []any.
func (v Value) Native() any {
	switch v.kind {
	case BoolKind:
		return v.b
	case Int64Kind:
		return v.i
	case Uint64Kind:
		return v.u
	case Float64Kind:
		return v.f
	case TextKind:
		return v.s
	case ArrayKind:
		res := make([]any, len(v.a))
		for i := range v.a {
			res[i] = v.a[i].Native()
		}
		return res
	default:
		return nil
	}
}

// FromNative converts a decoded document value into a Value. Unlike
// Classify it accepts every Go integer and float width and []any, and it
// reports an error for anything it cannot represent, such as nested maps.
func FromNative(x any) (Value, error) {
	switch x := x.(type) {
	case nil:
		return Null(), nil
	case Value:
		return x, nil
	case bool:
		return Bool(x), nil
	case int:
		return Int64(int64(x)), nil
	case int8:
		return Int64(int64(x)), nil
	case int16:
		return Int64(int64(x)), nil
	case int32:
		return Int64(int64(x)), nil
	case int64:
		return Int64(x), nil
	case uint:
		return fromUint(uint64(x)), nil
	case uint8:
		return fromUint(uint64(x)), nil
	case uint16:
		return fromUint(uint64(x)), nil
	case uint32:
		return fromUint(uint64(x)), nil
	case uint64:
		return fromUint(x), nil
	case float32:
		return Float64(float64(x)), nil
	case float64:
		return Float64(x), nil
	case json.Number:
		return fromNumber(string(x))
	case string:
		return Text(x), nil
	case []Value:
		return Classify(x), nil
	case []any:
		vs := make([]Value, len(x))
		for i := range x {
			v, err := FromNative(x[i])
			if err != nil {
				return Null(), fmt.Errorf("index %d: %w", i, err)
			}
			vs[i] = v
		}
		return Array(vs...), nil
	default:
		return Null(), fmt.Errorf("cannot represent %T as a value", x)
	}
}

func fromUint(n uint64) Value {
	if n <= math.MaxInt64 {
		return Int64(int64(n))
	}
	return Uint64(n)
}

func fromNumber(s string) (Value, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Int64(n), nil
	}
	if n, err := strconv.ParseUint(s, 10, 64); err == nil {
		return Uint64(n), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Null(), fmt.Errorf("invalid number %q: %w", s, err)
	}
	return Float64(f), nil
}

func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Native())
}

func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	res, err := FromNative(raw)
	if err != nil {
		return err
	}
	*v = res
	return nil
}

func (v Value) MarshalYAML() (any, error) {
	return v.Native(), nil
}

func (v *Value) UnmarshalYAML(data []byte) error {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return err
	}
	res, err := FromNative(raw)
	if err != nil {
		return err
	}
	*v = res
	return nil
}
