package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func conv(cfg *ConvConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Conv.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, file := range filesOrStdin(args) {
		v, err := getObjFile(cfg.MainConfig, cc, file)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		theLog.Debug("converting", "file", file, "from", cfg.inFormat(file), "to", cfg.outFormat())
		if err := putObj(cfg.MainConfig, cc, v); err != nil {
			return err
		}
	}
	return nil
}
