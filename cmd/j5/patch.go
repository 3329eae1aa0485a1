package main

import (
	"fmt"

	"github.com/signadot/json5-format/go-json5/value"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires 2 arguments, a patch file and a file to which to apply it", cli.ErrUsage)
	}
	p, err := readFile(cc, args[0])
	if err != nil {
		return err
	}
	target, err := getObjFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	t := cfg.tool(args[1], cc.Out)
	var res *value.Value
	if cfg.Merge {
		res, err = t.MergePatch(target, p)
	} else {
		res, err = t.Patch(target, p)
	}
	if err != nil {
		return fmt.Errorf("error patching %s with %s: %w", args[1], args[0], err)
	}
	return putObj(cfg.MainConfig, cc, res)
}
