package structmap

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is wrapped when a StringMap value does not parse into the
	// field's type.
	ErrParse = errors.New("cannot parse")

	// ErrMismatch is wrapped when a GenericMap value has a kind the
	// field cannot hold. Callers are expected to supply maps whose kinds
	// match the struct, e.g. maps produced by ToGenericMap.
	ErrMismatch = errors.New("value kind mismatch")
)

// FieldError reports a failed from-map conversion of one field.
type FieldError struct {
	Type  string // Go type name, e.g. "Config"
	Field string // Go field name, e.g. "Value"
	Key   string // map key, e.g. "value"
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("structmap: %s.%s (key %q): %v", e.Type, e.Field, e.Key, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
