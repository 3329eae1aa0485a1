package main

import (
	"fmt"

	"github.com/signadot/json5-format/go-json5/libdiff"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := getObjFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getObjFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	var opts []libdiff.DiffOption
	if cfg.Key != "" {
		opts = append(opts, libdiff.ArraysByKey(cfg.Key))
	}
	changes := libdiff.Diff(a, b, opts...)
	if len(changes) == 0 {
		return nil
	}
	colors := map[libdiff.Op]*color.Color{
		libdiff.Insert:  color.New(color.FgGreen),
		libdiff.Delete:  color.New(color.FgRed),
		libdiff.Replace: color.New(color.FgYellow),
	}
	colored := cfg.Color || isTerminal(cc.Out)
	for _, c := range changes {
		ln := c.String()
		if colored {
			ln = colors[c.Op].Sprint(ln)
		}
		if _, err := fmt.Fprintln(cc.Out, ln); err != nil {
			return err
		}
	}
	return cli.ExitCodeErr(1)
}
