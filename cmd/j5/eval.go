package main

import (
	"fmt"
	"strings"

	"github.com/signadot/json5-format/go-json5/parse"
	"github.com/signadot/json5-format/go-json5/value"

	"github.com/scott-cotton/cli"
)

func evalCmd(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, file := range filesOrStdin(args) {
		doc, err := getObjFile(cfg.MainConfig, cc, file)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		t := cfg.tool(file, cc.Out)
		t.Env = cfg.Env
		res, err := t.Run(doc)
		if err != nil {
			return fmt.Errorf("error evaluating %s: %w", file, err)
		}
		if err := putObj(cfg.MainConfig, cc, res); err != nil {
			return err
		}
	}
	return nil
}

func envOptTypeFunc(env map[string]any) func(cc *cli.Context, a string) (any, error) {
	return func(cc *cli.Context, a string) (any, error) {
		if err := envFunc(env, a); err != nil {
			return nil, err
		}
		return 0, nil
	}
}

// envFunc binds name=val in env. val is read as JSON5 and taken as a
// string when it does not parse.
func envFunc(env map[string]any, a string) error {
	name, val, ok := strings.Cut(a, "=")
	if !ok || name == "" {
		return fmt.Errorf("%w: expected name=val, got %q", cli.ErrUsage, a)
	}
	v, err := parse.ParseString(value.NewBuilder(nil), val)
	if err != nil {
		env[name] = val
		return nil
	}
	env[name] = value.ToPlain(v)
	return nil
}
