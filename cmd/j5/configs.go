package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	json5 "github.com/signadot/json5-format/go-json5"
	"github.com/signadot/json5-format/go-json5/encode"
	"github.com/signadot/json5-format/go-json5/format"
	"github.com/signadot/json5-format/go-json5/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color         bool `cli:"name=color desc='encode with color'"`
	Indent        int  `cli:"name=indent desc='spaces per nesting level, 0 for tabs'"`
	CRLF          bool `cli:"name=crlf desc='end lines with CRLF'"`
	EscapeUnicode bool `cli:"name=ascii desc='escape non ASCII characters'"`
	EscapeSlash   bool `cli:"name=slash desc='escape forward slashes'"`
	NoComments    bool `cli:"name=nc desc='drop comments'"`
	Verbose       bool `cli:"name=v desc='log progress'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// inFormat is the format of the input named file.
func (cfg *MainConfig) inFormat(file string) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	if file == "-" {
		return format.JSON5Format
	}
	return format.FromFilename(file)
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return format.JSON5Format
}

func (cfg *MainConfig) parseOpts(file string) []parse.ParseOption {
	res := []parse.ParseOption{parse.ParseComments(!cfg.NoComments)}
	if file != "" && file != "-" {
		res = append(res, parse.ParseFilename(file))
	}
	return res
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	indent := "\t"
	if cfg.Indent > 0 {
		indent = strings.Repeat(" ", cfg.Indent)
	}
	nl := "\n"
	if cfg.CRLF {
		nl = "\r\n"
	}
	res := []encode.EncodeOption{
		encode.Indent(indent),
		encode.Newline(nl),
		encode.EscapeUnicode(cfg.EscapeUnicode),
		encode.EscapeSlash(cfg.EscapeSlash),
		encode.EncodeComments(!cfg.NoComments),
	}
	if cfg.Color || isTerminal(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// tool returns a json5.Tool reading input file and printing to w.
func (cfg *MainConfig) tool(file string, w io.Writer) *json5.Tool {
	t := json5.DefaultTool()
	t.ParseOptions = cfg.parseOpts(file)
	t.EncodeOptions = cfg.encOpts(w)
	return t
}

type FmtConfig struct {
	*MainConfig

	Diff  bool `cli:"name=d desc='show a diff instead of the result'"`
	List  bool `cli:"name=l desc='list files whose formatting differs'"`
	Write bool `cli:"name=w desc='write the result back to the files'"`

	Fmt *cli.Command
}

type CheckConfig struct {
	*MainConfig

	MaxDepth int `cli:"name=depth desc='maximum nesting depth'"`

	Check *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type ConvConfig struct {
	*MainConfig

	Conv *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Key string `cli:"name=key desc='match array elements by this object key'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig

	Merge bool `cli:"name=merge desc='the patch is a JSON merge patch'"`

	Patch *cli.Command
}

type EvalConfig struct {
	*MainConfig

	Env map[string]any

	Eval *cli.Command
}
