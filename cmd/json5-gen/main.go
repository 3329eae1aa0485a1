package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/scott-cotton/cli"
	"github.com/signadot/json5-format/go-json5/json5map/codegen"
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

	return cli.NewCommand("json5-gen").
		WithSynopsis("json5-gen [opts]").
		WithDescription("Generate RegisterJSON5 functions registering json5map records for structs with json5 tags.").
		WithOpts(sOpts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return run(cfg, cc, args)
		})
}

type Config struct {
	OutputFile string `cli:"name=o desc='output file for generated Go code (default: <package>_gen.go)'"`
	Dir        string `cli:"name=dir desc='directory to scan for Go files (default: current directory)'"`
	Recursive  bool   `cli:"name=recursive desc='scan subdirectories recursively'"`
	NoTypes    bool   `cli:"name=no-types desc='use field types as written instead of loading type information'"`
}

func run(cfg *Config, cc *cli.Context, args []string) error {
	dir := cfg.Dir
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
	}
	if cfg.OutputFile != "" && cfg.Recursive {
		return fmt.Errorf("%w: cannot specify both -o and -recursive", cli.ErrUsage)
	}

	packages, err := codegen.DiscoverPackages(dir, cfg.Recursive)
	if err != nil {
		return fmt.Errorf("failed to discover packages: %w", err)
	}
	if len(packages) == 0 {
		return fmt.Errorf("no Go packages found in %q", dir)
	}

	loader := codegen.NewPackageLoader()
	for _, pkg := range packages {
		fmt.Fprintf(cc.Out, "Processing package: %s\n", pkg.Name)
		if err := processPackage(cfg, loader, pkg); err != nil {
			return fmt.Errorf("failed to process package %q: %w", pkg.Path, err)
		}
	}
	return nil
}

func processPackage(cfg *Config, loader *codegen.PackageLoader, pkg *codegen.PackageInfo) error {
	config := &codegen.CodegenConfig{
		OutputFile: cfg.OutputFile,
		Dir:        pkg.Dir,
		Package:    pkg,
	}
	if config.OutputFile == "" {
		config.OutputFile = filepath.Join(pkg.Dir, pkg.Name+"_gen.go")
	}

	var allStructs []*codegen.StructInfo
	for _, filePath := range pkg.Files {
		file, _, err := codegen.ParseFile(filePath)
		if err != nil {
			return err
		}
		structs, err := codegen.ExtractStructs(file, filePath)
		if err != nil {
			return fmt.Errorf("failed to extract structs from %q: %w", filePath, err)
		}
		allStructs = append(allStructs, structs...)
	}
	if len(allStructs) == 0 {
		return nil
	}

	if !cfg.NoTypes {
		lpkg, err := loader.LoadDir(pkg.Dir)
		if err != nil {
			return err
		}
		if err := loader.Resolve(lpkg, allStructs); err != nil {
			return fmt.Errorf("failed to resolve field types: %w", err)
		}
	}

	code, err := codegen.GenerateCode(pkg.Name, allStructs)
	if err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}
	if err := os.WriteFile(config.OutputFile, code, 0644); err != nil {
		return fmt.Errorf("failed to write output file %q: %w", config.OutputFile, err)
	}
	return nil
}
