package codegen

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedShape is wrapped when a derive directive sits on
	// something other than a struct with named fields.
	ErrUnsupportedShape = errors.New("unsupported shape")

	// ErrUnsupportedFieldType is wrapped when a field's type has no
	// conversion.
	ErrUnsupportedFieldType = errors.New("unsupported field type")

	// ErrMalformedRename is wrapped for rename directives that are not
	// exactly one name=<key>, and for keys used by more than one field.
	ErrMalformedRename = errors.New("malformed rename directive")

	// ErrMalformedDirective is wrapped for derive directives naming
	// unknown traits, and for derive directives that do not document a
	// single type declaration.
	ErrMalformedDirective = errors.New("malformed derive directive")
)

// DeriveError reports why a type could not be derived.
type DeriveError struct {
	Pos     string // file:line:col, if known
	Type    string
	Field   string // empty for type-level errors
	Message string
	Err     error
}

func (e *DeriveError) Error() string {
	var loc string
	if e.Pos != "" {
		loc = e.Pos + ": "
	}
	if e.Field != "" {
		return fmt.Sprintf("%s%s.%s: %v: %s", loc, e.Type, e.Field, e.Err, e.Message)
	}
	return fmt.Sprintf("%s%s: %v: %s", loc, e.Type, e.Err, e.Message)
}

func (e *DeriveError) Unwrap() error {
	return e.Err
}
