package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/signadot/structmap/codegen"
)

func main() {
	cli.MainContext(context.Background(), MainCommand())
}

func MainCommand() *cli.Command {
	cfg := &Config{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}

	return cli.NewCommand("structmap-gen").
		WithSynopsis("structmap-gen [opts]").
		WithDescription("Generate FromStringMap/FromGenericMap/ToStringMap/ToGenericMap methods for structs marked //structmap:derive.").
		WithOpts(sOpts...).
		WithRun(func(cc *cli.Context, args []string) error {
			if len(args) != 0 {
				return fmt.Errorf("%w: unexpected arguments %q", cli.ErrUsage, args)
			}
			return run(cfg, cc.Out)
		})
}

type Config struct {
	OutputFile string `cli:"name=o desc='output file for generated Go code (default: <package>_gen.go)'"`
	Dir        string `cli:"name=dir desc='directory to scan for Go files (default: current directory)'"`
	Recursive  bool   `cli:"name=recursive desc='scan subdirectories recursively'"`
	Resolve    bool   `cli:"name=resolve desc='type-check packages so named types map to their underlying basic type'"`
	Check      bool   `cli:"name=check desc='report stale generated files instead of writing them'"`
	ConfigFile string `cli:"name=config desc='YAML config file with output, recursive, resolve and types'"`
	Verbose    bool   `cli:"name=v desc='log each package processed'"`
}

func (cfg *Config) codegenConfig() (*codegen.Config, error) {
	res := &codegen.Config{
		OutputFile: cfg.OutputFile,
		Dir:        cfg.Dir,
		Recursive:  cfg.Recursive,
		Resolve:    cfg.Resolve,
		Check:      cfg.Check,
		Log:        newLog(cfg.Verbose),
	}
	path := cfg.ConfigFile
	if path == "" {
		return res, nil
	}
	if !filepath.IsAbs(path) && cfg.Dir != "" {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			path = filepath.Join(cfg.Dir, path)
		}
	}
	fc, err := codegen.LoadFileConfig(path)
	if err != nil {
		return nil, err
	}
	fc.Apply(res)
	return res, nil
}

func run(cfg *Config, w io.Writer) error {
	config, err := cfg.codegenConfig()
	if err != nil {
		return err
	}
	results, err := codegen.Process(config)
	if err != nil {
		return err
	}

	p := newPrinter(w)
	stale := 0
	for _, res := range results {
		p.result(res, config.Check)
		if res.Stale {
			stale++
		}
	}
	if config.Check && stale != 0 {
		return fmt.Errorf("%d generated %s out of date; run structmap-gen", stale, plural(stale, "file is", "files are"))
	}
	return nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

func relPath(path string) string {
	wd, err := os.Getwd()
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(wd, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}
