package codegen

import (
	"bytes"
	"errors"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

const modelsSrc = `package models

//structmap:derive
type User struct {
	ID   string ` + "`structmap:\"name=id\"`" + `
	Age  uint8
}
`

func TestProcess(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "models", "user.go"), modelsSrc)
	writeFile(t, filepath.Join(dir, "models", "user_test.go"), "package models\n")
	writeFile(t, filepath.Join(dir, "plain", "plain.go"), "package plain\n\ntype P struct{ A int }\n")
	writeFile(t, filepath.Join(dir, "testdata", "bad.go"), "package bad\n\n//structmap:derive\ntype B int\n")

	results, err := Process(&Config{Dir: dir, Recursive: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	res := results[0]
	want := filepath.Join(dir, "models", "models_gen.go")
	if res.OutputFile != want || !res.Written || !res.Stale {
		t.Errorf("unexpected result %+v", res)
	}
	if len(res.Types) != 1 || res.Types[0] != "User" {
		t.Errorf("unexpected types %v", res.Types)
	}
	data, err := os.ReadFile(want)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, res.Code) {
		t.Error("written file differs from result code")
	}
	if !strings.Contains(string(data), `m["id"] = s.ID`) {
		t.Errorf("unexpected generated code:\n%s", data)
	}
	if _, err := os.Stat(filepath.Join(dir, "plain", "plain_gen.go")); !os.IsNotExist(err) {
		t.Errorf("expected no output for package without derived types, got %v", err)
	}

	// regenerating skips the generated file and yields the same code
	results, err = Process(&Config{Dir: filepath.Join(dir, "models")})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(results[0].Code, data) {
		t.Error("regenerated code differs")
	}
	if results[0].Stale || results[0].Written {
		t.Errorf("expected up-to-date file to be left alone, got %+v", results[0])
	}
}

func TestProcessAvoidsNameCollisions(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			name: "type parameter named like a local",
			src:  "package models\n\n//structmap:derive\ntype Box[v ~string] struct{ X v }\n",
			want: []string{
				"func (s *Box[v]) FromStringMap(m structmap.StringMap) error {",
				`if v2, ok := m["X"]; ok {`,
				"r.X = v(v2)",
				"x, err := structmap.TextOf[v](v2)",
			},
		},
		{
			name: "package variable named like an import",
			src:  "package models\n\nvar value = 1\n\n//structmap:derive\ntype User struct{ Name string }\n",
			want: []string{
				`value2 "github.com/signadot/structmap/value"`,
				`m["Name"] = value2.Text(s.Name)`,
			},
		},
		{
			name: "type parameter named like an import",
			src:  "package models\n\n//structmap:derive\ntype Box[structmap ~int] struct{ N structmap }\n",
			want: []string{
				`structmap2 "github.com/signadot/structmap"`,
				"x, err := structmap2.ParseSigned[structmap](v)",
				"func (s Box[structmap]) ToGenericMap() structmap2.GenericMap {",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, filepath.Join(dir, "models.go"), tt.src)
			results, err := Process(&Config{Dir: dir})
			if err != nil {
				t.Fatal(err)
			}
			if len(results) != 1 {
				t.Fatalf("expected 1 result, got %d", len(results))
			}
			code := string(results[0].Code)
			for _, want := range tt.want {
				if !strings.Contains(code, want) {
					t.Errorf("generated code missing %q:\n%s", want, code)
				}
			}
			fset := token.NewFileSet()
			if _, err := parser.ParseFile(fset, "models_gen.go", code, 0); err != nil {
				t.Errorf("generated code does not parse: %v", err)
			}
		})
	}
}

func TestProcessCheck(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "user.go"), modelsSrc)

	results, err := Process(&Config{Dir: dir, Check: true})
	if err != nil {
		t.Fatal(err)
	}
	res := results[0]
	if !res.Stale || res.Written {
		t.Errorf("expected stale unwritten result, got %+v", res)
	}
	if !strings.Contains(res.Diff, "+"+Header) {
		t.Errorf("expected header insertion in diff:\n%s", res.Diff)
	}
	if _, err := os.Stat(res.OutputFile); !os.IsNotExist(err) {
		t.Errorf("check mode wrote %s", res.OutputFile)
	}

	if _, err := Process(&Config{Dir: dir}); err != nil {
		t.Fatal(err)
	}
	results, err = Process(&Config{Dir: dir, Check: true})
	if err != nil {
		t.Fatal(err)
	}
	if results[0].Stale {
		t.Errorf("expected fresh output, diff:\n%s", results[0].Diff)
	}

	writeFile(t, filepath.Join(dir, "user.go"), strings.Replace(modelsSrc, "Age  uint8", "Age  uint16", 1))
	results, err = Process(&Config{Dir: dir, Check: true})
	if err != nil {
		t.Fatal(err)
	}
	if !results[0].Stale || !strings.Contains(results[0].Diff, "+\t\tx, err := structmap.ParseUnsigned[uint16](v)") {
		t.Errorf("expected stale output with uint16 change, diff:\n%s", results[0].Diff)
	}
}

func TestProcessOutputFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a", "a.go"), strings.Replace(modelsSrc, "package models", "package a", 1))
	writeFile(t, filepath.Join(dir, "b", "b.go"), strings.Replace(modelsSrc, "package models", "package b", 1))

	results, err := Process(&Config{Dir: dir, Recursive: true, OutputFile: "conv_gen.go"})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	for _, res := range results {
		if filepath.Base(res.OutputFile) != "conv_gen.go" || filepath.Dir(res.OutputFile) != res.Package.Dir {
			t.Errorf("unexpected output %s for %s", res.OutputFile, res.Package.Dir)
		}
	}

	_, err = Process(&Config{Dir: dir, Recursive: true, OutputFile: filepath.Join(dir, "all_gen.go")})
	if err == nil || !strings.Contains(err.Error(), "would both write") {
		t.Errorf("expected output conflict, got %v", err)
	}
}

func TestProcessErrors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "bad.go"), "package bad\n\n//structmap:derive\ntype B int\n")
	_, err := Process(&Config{Dir: dir})
	if !errors.Is(err, ErrUnsupportedShape) {
		t.Errorf("expected ErrUnsupportedShape, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "bad_gen.go")); !os.IsNotExist(err) {
		t.Error("expected no output after failure")
	}

	misplaced := t.TempDir()
	writeFile(t, filepath.Join(misplaced, "vars.go"), "package vars\n\n//structmap:derive\nvar Limit = 10\n")
	if _, err := Process(&Config{Dir: misplaced}); !errors.Is(err, ErrMalformedDirective) {
		t.Errorf("expected ErrMalformedDirective, got %v", err)
	}

	if _, err := Process(&Config{Dir: t.TempDir()}); err == nil {
		t.Error("expected error for directory without packages")
	}

	if _, err := Process(&Config{Dir: dir, Types: map[string]string{"X": "complex64"}}); err == nil {
		t.Error("expected error for invalid registry")
	}
}

func TestProcessResolve(t *testing.T) {
	if testing.Short() {
		t.Skip("loads packages with the go command")
	}
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "go.mod"), "module example.com/units\n\ngo 1.21\n")
	writeFile(t, filepath.Join(dir, "units.go"), `package units

type Celsius float64

type Name = string

//structmap:derive ToMap
type Reading struct {
	Temp  Celsius
	Label Name
}
`)
	if _, err := Process(&Config{Dir: dir, Check: true}); !errors.Is(err, ErrUnsupportedFieldType) {
		t.Fatalf("expected ErrUnsupportedFieldType without resolve, got %v", err)
	}
	results, err := Process(&Config{Dir: dir, Check: true, Resolve: true})
	if err != nil {
		t.Fatal(err)
	}
	code := string(results[0].Code)
	for _, want := range []string{
		`m["Temp"] = value.Float64(float64(s.Temp))`,
		`m["Label"] = value.Text(string(s.Label))`,
	} {
		if !strings.Contains(code, want) {
			t.Errorf("expected %q in generated code:\n%s", want, code)
		}
	}
}

func TestRepositoryGeneratedFilesUpToDate(t *testing.T) {
	for _, dir := range []string{".", "../internal/example"} {
		results, err := Process(&Config{Dir: dir, Check: true})
		if err != nil {
			t.Fatalf("%s: %v", dir, err)
		}
		for _, res := range results {
			if res.Stale {
				t.Errorf("%s is stale; run go generate:\n%s", res.OutputFile, res.Diff)
			}
		}
	}
}
