package main

import (
	"fmt"
	"io"
	"os"

	json5 "github.com/signadot/json5-format/go-json5"
	"github.com/signadot/json5-format/go-json5/format"
	"github.com/signadot/json5-format/go-json5/value"

	"github.com/scott-cotton/cli"
)

func readFile(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

// getObjFile reads the document in path, "-" meaning the input, in the
// format given by -I or the file name.
func getObjFile(cfg *MainConfig, cc *cli.Context, path string) (*value.Value, error) {
	d, err := readFile(cc, path)
	if err != nil {
		return nil, err
	}
	return decode(cfg.tool(path, cc.Out), cfg.inFormat(path), d)
}

func decode(t *json5.Tool, f format.Format, d []byte) (*value.Value, error) {
	switch f {
	case format.JSONFormat:
		return t.FromJSON(d)
	case format.YAMLFormat:
		return t.FromYAML(d)
	default:
		return t.Parse(d)
	}
}

// putObj writes v to the output in the -O format followed by a line
// break.
func putObj(cfg *MainConfig, cc *cli.Context, v *value.Value) error {
	t := cfg.tool("", cc.Out)
	var (
		d   []byte
		err error
	)
	switch cfg.outFormat() {
	case format.JSONFormat:
		d, err = t.ToJSON(v)
	case format.YAMLFormat:
		d, err = t.ToYAML(v)
	default:
		d, err = t.Print(v)
	}
	if err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	if len(d) == 0 || d[len(d)-1] != '\n' {
		d = append(d, '\n')
	}
	_, err = cc.Out.Write(d)
	return err
}

func filesOrStdin(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
