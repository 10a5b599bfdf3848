package value

// Classify wraps x in the variant matching its dynamic type. Types are
// tried in a fixed order (bool, int64, uint64, float64, string, []Value)
// and matched by identity, so an int or a named string type is not
// recognized. Unrecognized types yield Null; Classify never fails.
//
// Generated code does not call Classify: it states the variant at each
// call site. Classify serves hand-built GenericMaps.
func Classify(x any) Value {
	switch x := x.(type) {
	case bool:
		return Bool(x)
	case int64:
		return Int64(x)
	case uint64:
		return Uint64(x)
	case float64:
		return Float64(x)
	case string:
		return Text(x)
	case []Value:
		return Array(x...)
	case Value:
		return x
	default:
		return Null()
	}
}
