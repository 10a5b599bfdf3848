// Package structmap converts Go structs to and from string-keyed maps
// without per-field boilerplate.
//
// Conversions are derived ahead of compilation by structmap-gen (see
// package codegen). A struct opts in with a doc comment directive:
//
//	//go:generate structmap-gen
//
//	//structmap:derive
//	type Config struct {
//	    Name  string `structmap:"name=name"`
//	    Value int64  `structmap:"name=value"`
//	}
//
// and the generator writes <package>_gen.go with
//
//	func (s *Config) FromStringMap(m structmap.StringMap) error
//	func (s *Config) FromGenericMap(m structmap.GenericMap) error
//	func (s Config) ToStringMap() structmap.StringMap
//	func (s Config) ToGenericMap() structmap.GenericMap
//
// From-map conversion starts from the type's default instance (see
// Default) and overwrites only the fields whose keys are present, so
// partial maps are valid input. To-map conversion produces one entry per
// field, keyed by the field name or its rename.
//
// # Related Packages
//
//   - github.com/signadot/structmap/value - Value variant for GenericMap
//   - github.com/signadot/structmap/codegen - Derivation engine
package structmap
