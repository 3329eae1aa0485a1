package main

import (
	"errors"
	"fmt"

	"github.com/signadot/json5-format/go-json5/parse"
	"github.com/signadot/json5-format/go-json5/token"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	bad := 0
	for _, file := range filesOrStdin(args) {
		d, err := readFile(cc, file)
		if err != nil {
			return err
		}
		t := cfg.tool(file, cc.Out)
		if cfg.MaxDepth > 0 {
			t.ParseOptions = append(t.ParseOptions, parse.MaxDepth(cfg.MaxDepth))
		}
		v, err := t.Parse(d)
		if err == nil {
			t.Builder.Dispose(v)
			theLog.Debug("ok", "file", file)
			continue
		}
		bad++
		var pe *token.ParseError
		if !errors.As(err, &pe) {
			return err
		}
		if pe.Filename == "" {
			pe.Filename = file
		}
		fmt.Fprintln(cc.Out, pe)
	}
	if bad > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
