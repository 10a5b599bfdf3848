package codegen

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/structmap"
)

func TestParseFileConfig(t *testing.T) {
	cfg, err := ParseFileConfig([]byte(`
output: conv_gen.go
recursive: true
types:
  Celsius: float64
  time.Duration: int64
`))
	if err != nil {
		t.Fatal(err)
	}
	want := &FileConfig{
		Output:    "conv_gen.go",
		Recursive: true,
		Types:     map[string]string{"Celsius": "float64", "time.Duration": "int64"},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFileConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		msg  string
	}{
		{"unknown key", "outputs: x\n", `unknown key "outputs"`},
		{"wrong kind", "recursive: yes please\n", "recursive"},
		{"nested", "output:\n  a: b\n", "output"},
		{"types not a map", "types: [a]\n", "types"},
		{"types value", "types:\n  A: 1\n", `"A"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFileConfig([]byte(tt.doc))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.msg) {
				t.Errorf("expected %q in %q", tt.msg, err.Error())
			}
		})
	}

	_, err := ParseFileConfig([]byte("resolve: 1\n"))
	if !errors.Is(err, structmap.ErrMismatch) {
		t.Errorf("expected ErrMismatch, got %v", err)
	}
}

func TestLoadFileConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "structmap.yaml")
	writeFile(t, path, "resolve: true\n")
	cfg, err := LoadFileConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Resolve || cfg.Recursive || cfg.Output != "" {
		t.Errorf("unexpected config %+v", cfg)
	}
	if _, err := LoadFileConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFileConfigApply(t *testing.T) {
	fc := &FileConfig{
		Output:    "file_gen.go",
		Recursive: true,
		Types:     map[string]string{"A": "int", "B": "string"},
	}
	cfg := &Config{OutputFile: "flag_gen.go", Types: map[string]string{"A": "int64"}}
	fc.Apply(cfg)
	want := &Config{
		OutputFile: "flag_gen.go",
		Recursive:  true,
		Types:      map[string]string{"A": "int64", "B": "string"},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestFileConfigToMap(t *testing.T) {
	m := FileConfig{Output: "x.go", Resolve: true}.ToStringMap()
	want := structmap.StringMap{"output": "x.go", "recursive": "false", "resolve": "true"}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
