package structmap

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/signadot/structmap/value"
)

// DecodeGenericMap decodes a YAML (or JSON) document whose top level is a
// mapping of scalars and sequences. Nested mappings are rejected since
// Value has no map variant.
func DecodeGenericMap(data []byte) (GenericMap, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode map document: %w", err)
	}
	res := make(GenericMap, len(raw))
	for k, x := range raw {
		v, err := value.FromNative(x)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
		res[k] = v
	}
	return res, nil
}

// EncodeGenericMap encodes m as a YAML document.
func EncodeGenericMap(m GenericMap) ([]byte, error) {
	raw := make(map[string]any, len(m))
	for k, v := range m {
		raw[k] = v.Native()
	}
	d, err := yaml.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to encode map document: %w", err)
	}
	return d, nil
}
