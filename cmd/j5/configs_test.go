package main

import (
	"testing"

	"github.com/signadot/json5-format/go-json5/format"
)

func TestFormats(t *testing.T) {
	cfg := &MainConfig{}
	for file, want := range map[string]format.Format{
		"-":          format.JSON5Format,
		"x.yaml":     format.YAMLFormat,
		"x.json":     format.JSONFormat,
		"x.json5":    format.JSON5Format,
		"config.txt": format.JSON5Format,
	} {
		if got := cfg.inFormat(file); got != want {
			t.Errorf("%s: got %s, want %s", file, got, want)
		}
	}
	if got := cfg.outFormat(); got != format.JSON5Format {
		t.Errorf("default output: got %s", got)
	}
	j := format.JSONFormat
	cfg.InFormat, cfg.OutFormat = &j, &j
	if got := cfg.inFormat("x.yaml"); got != format.JSONFormat {
		t.Errorf("-I ignored: got %s", got)
	}
	if got := cfg.outFormat(); got != format.JSONFormat {
		t.Errorf("-O ignored: got %s", got)
	}
}

func TestDecode(t *testing.T) {
	cfg := &MainConfig{Indent: 2}
	tool := cfg.tool("", nil)
	for f, in := range map[format.Format]string{
		format.JSON5Format: "{a: [1, 'x']}",
		format.JSONFormat:  `{"a": [1, "x"]}`,
		format.YAMLFormat:  "a:\n- 1\n- x\n",
	} {
		v, err := decode(tool, f, []byte(in))
		if err != nil {
			t.Fatalf("%s: %v", f, err)
		}
		if got := v.Get("a").Index(1).String; got != "x" {
			t.Errorf("%s: got %q", f, got)
		}
	}
}
