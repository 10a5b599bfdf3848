package codegen

import (
	"fmt"
	"os"
	"sort"

	"github.com/goccy/go-yaml"

	"github.com/signadot/structmap"
	"github.com/signadot/structmap/value"
)

// FileConfig is the structmap-gen configuration file.
//
//	output: fields_gen.go
//	recursive: true
//	resolve: false
//	types:
//	  Celsius: float64
//	  time.Duration: int64
//
//structmap:derive
type FileConfig struct {
	Output    string `structmap:"name=output"`
	Recursive bool   `structmap:"name=recursive"`
	Resolve   bool   `structmap:"name=resolve"`

	// Types maps type text to a basic type name
	Types map[string]string `structmap:"-"`
}

// LoadFileConfig reads a YAML configuration file. Unknown keys are
// errors.
func LoadFileConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err := ParseFileConfig(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}
	return cfg, nil
}

// ParseFileConfig parses YAML configuration file content.
func ParseFileConfig(data []byte) (*FileConfig, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	cfg := &FileConfig{}
	known := cfg.ToGenericMap()
	m := make(structmap.GenericMap, len(raw))
	for _, k := range sortedAnyKeys(raw) {
		if k == "types" {
			continue
		}
		if _, ok := known[k]; !ok {
			return nil, fmt.Errorf("unknown key %q", k)
		}
		v, err := value.FromNative(raw[k])
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
		m[k] = v
	}
	if err := cfg.FromGenericMap(m); err != nil {
		return nil, err
	}

	if t, ok := raw["types"]; ok && t != nil {
		types, ok := t.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("types: expected a mapping, got %T", t)
		}
		cfg.Types = make(map[string]string, len(types))
		for text, basic := range types {
			s, ok := basic.(string)
			if !ok {
				return nil, fmt.Errorf("types: %q: expected a basic type name, got %v", text, basic)
			}
			cfg.Types[text] = s
		}
	}
	return cfg, nil
}

// Apply fills the settings of c that cfg leaves unset. Types entries
// already in cfg win.
func (c *FileConfig) Apply(cfg *Config) {
	if cfg.OutputFile == "" {
		cfg.OutputFile = c.Output
	}
	cfg.Recursive = cfg.Recursive || c.Recursive
	cfg.Resolve = cfg.Resolve || c.Resolve
	if len(c.Types) == 0 {
		return
	}
	if cfg.Types == nil {
		cfg.Types = make(map[string]string, len(c.Types))
	}
	for text, basic := range c.Types {
		if _, ok := cfg.Types[text]; !ok {
			cfg.Types[text] = basic
		}
	}
}

func sortedAnyKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
