// Package codegen derives struct/map conversion methods from Go source.
//
// It finds struct types whose doc comment carries a derive directive,
//
//	//structmap:derive            (FromMap and ToMap)
//	//structmap:derive ToMap      (only ToStringMap/ToGenericMap)
//
// and writes FromStringMap/FromGenericMap/ToStringMap/ToGenericMap
// methods into a *_gen.go file, enabling conversion without reflection.
//
// Fields are keyed by their Go name unless renamed with a struct tag
// (`structmap:"name=key"`) or a field directive (//structmap:name=key).
// `structmap:"-"` omits a field.
//
// # Related Packages
//
//   - github.com/signadot/structmap - Conversion contracts and runtime helpers
//   - github.com/signadot/structmap/value - Value variant
package codegen
