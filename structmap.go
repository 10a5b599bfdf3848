package structmap

import "github.com/signadot/structmap/value"

// StringMap is the text-valued conversion target.
type StringMap map[string]string

// GenericMap is the variant-valued conversion target.
type GenericMap map[string]value.Value

// FromMap is implemented by types that can be rebuilt from a map.
//
// Both methods start from Default[T]() and overwrite the fields whose keys
// are present. Missing keys keep their default value. If any present key
// fails to convert, the receiver is left untouched and a *FieldError is
// returned.
type FromMap interface {
	FromStringMap(m StringMap) error
	FromGenericMap(m GenericMap) error
}

// ToMap is implemented by types that can be flattened into a map with one
// entry per field.
type ToMap interface {
	ToStringMap() StringMap
	ToGenericMap() GenericMap
}

// Defaulter supplies the default instance that from-map conversion
// mutates. Types without a Default method start from their zero value.
type Defaulter[T any] interface {
	Default() T
}

// Default returns the default instance of T: the result of T's (or *T's)
// Default method if it has one, otherwise the zero value.
func Default[T any]() T {
	var zero T
	if d, ok := any(zero).(Defaulter[T]); ok {
		return d.Default()
	}
	if d, ok := any(&zero).(Defaulter[T]); ok {
		return d.Default()
	}
	return zero
}

// FromStringMap builds a T from m.
func FromStringMap[T any, P interface {
	*T
	FromMap
}](m StringMap) (T, error) {
	var res T
	if err := P(&res).FromStringMap(m); err != nil {
		var zero T
		return zero, err
	}
	return res, nil
}

// FromGenericMap builds a T from m.
func FromGenericMap[T any, P interface {
	*T
	FromMap
}](m GenericMap) (T, error) {
	var res T
	if err := P(&res).FromGenericMap(m); err != nil {
		var zero T
		return zero, err
	}
	return res, nil
}

// ToStringMap flattens v into a StringMap.
func ToStringMap(v ToMap) StringMap {
	return v.ToStringMap()
}

// ToGenericMap flattens v into a GenericMap.
func ToGenericMap(v ToMap) GenericMap {
	return v.ToGenericMap()
}
