// Package value provides Value, the closed variant used as the element
// type of structmap.GenericMap.
//
// A Value holds exactly one of: null, bool, int64, uint64, float64, text,
// or an array of Values. Values are built with the per-kind constructors
// (Bool, Int64, ...) or with Classify, and read back with the As*
// accessors, which report absence rather than panicking:
//
//	v := value.Int64(42)
//	n, ok := v.AsInt64()   // 42, true
//	_, ok = v.AsText()     // "", false
//
// Values encode to and decode from JSON and YAML documents. Decoding
// normalizes numbers: integers become Int64 when they fit and Uint64
// otherwise; everything else numeric becomes Float64.
package value
