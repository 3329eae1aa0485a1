package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/signadot/json5-format/go-json5/encode"
	"github.com/signadot/json5-format/go-json5/libdiff"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func fmtCmd(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	if count(cfg.Diff, cfg.List, cfg.Write) > 1 {
		return fmt.Errorf("%w: at most one of -d -l -w", cli.ErrUsage)
	}
	files := filesOrStdin(args)
	if cfg.Write && len(args) == 0 {
		return fmt.Errorf("%w: -w requires files", cli.ErrUsage)
	}
	for _, file := range files {
		if err := fmtFile(cfg, cc, file); err != nil {
			return err
		}
	}
	return nil
}

func fmtFile(cfg *FmtConfig, cc *cli.Context, file string) error {
	d, err := readFile(cc, file)
	if err != nil {
		return err
	}
	t := cfg.tool(file, cc.Out)
	plain := cfg.Diff || cfg.List || cfg.Write
	if plain {
		t.EncodeOptions = append(t.EncodeOptions, encode.EncodeColors(nil))
	}
	out, err := t.Format(d)
	if err != nil {
		return err
	}
	out = append(out, []byte(newline(cfg.MainConfig))...)
	same := bytes.Equal(d, out)
	switch {
	case !plain:
		_, err = cc.Out.Write(out)
		return err
	case same:
		theLog.Debug("formatted", "file", file)
		return nil
	case cfg.List:
		_, err = fmt.Fprintln(cc.Out, file)
		return err
	case cfg.Diff:
		return writeTextDiff(cfg.MainConfig, cc, file, string(d), string(out))
	}
	fi, err := os.Stat(file)
	if err != nil {
		return err
	}
	if err := os.WriteFile(file, out, fi.Mode().Perm()); err != nil {
		return fmt.Errorf("could not write %q: %w", file, err)
	}
	theLog.Info("rewrote", "file", file)
	return nil
}

func newline(cfg *MainConfig) string {
	if cfg.CRLF {
		return "\r\n"
	}
	return "\n"
}

func writeTextDiff(cfg *MainConfig, cc *cli.Context, file, from, to string) error {
	colored := cfg.Color || isTerminal(cc.Out)
	red := color.New(color.FgRed)
	green := color.New(color.FgGreen)
	bold := color.New(color.Bold)
	if !colored {
		for _, c := range []*color.Color{red, green, bold} {
			c.DisableColor()
		}
	}
	var buf strings.Builder
	buf.WriteString(bold.Sprintf("--- %s\n+++ %s (formatted)", file, file))
	buf.WriteString("\n")
	for _, ln := range strings.SplitAfter(libdiff.Text(from, to), "\n") {
		switch {
		case strings.HasPrefix(ln, "-"):
			buf.WriteString(red.Sprint(strings.TrimSuffix(ln, "\n")) + "\n")
		case strings.HasPrefix(ln, "+"):
			buf.WriteString(green.Sprint(strings.TrimSuffix(ln, "\n")) + "\n")
		default:
			buf.WriteString(ln)
		}
	}
	_, err := cc.Out.Write([]byte(buf.String()))
	return err
}

func count(vs ...bool) int {
	ttl := 0
	for _, v := range vs {
		if v {
			ttl++
		}
	}
	return ttl
}
