package main

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf16"

	"github.com/signadot/json5-format/go-json5/encode"
	"github.com/signadot/json5-format/go-json5/parse"
	"github.com/signadot/json5-format/go-json5/token"
	"github.com/signadot/json5-format/go-json5/value"

	"go.lsp.dev/protocol"
)

type document struct {
	uri       protocol.DocumentURI
	text      string
	root      *value.Value
	positions map[*value.Value]token.Pos
	err       error
}

func parseDocument(uri protocol.DocumentURI, text string) *document {
	doc := &document{uri: uri, text: text, positions: map[*value.Value]token.Pos{}}
	doc.root, doc.err = parse.ParseString(value.NewBuilder(nil), text, parse.ParsePositions(doc.positions))
	return doc
}

// lspPosition converts a scanner position, 1 based, to an LSP one.
func lspPosition(p token.Pos) protocol.Position {
	return protocol.Position{Line: uint32(max(p.Line-1, 0)), Character: uint32(max(p.Col-1, 0))}
}

func (d *document) diagnostics() []protocol.Diagnostic {
	res := []protocol.Diagnostic{}
	if d.err == nil {
		return res
	}
	var (
		start protocol.Position
		msg   = d.err.Error()
		pe    *token.ParseError
	)
	if errors.As(d.err, &pe) {
		start = lspPosition(pe.Pos)
		msg = pe.Err.Error()
	}
	end := start
	end.Character++
	return append(res, protocol.Diagnostic{
		Range:    protocol.Range{Start: start, End: end},
		Severity: protocol.DiagnosticSeverityError,
		Source:   lsName,
		Message:  msg,
	})
}

// format returns the edit replacing the whole text with its formatted
// form, or no edit when the text is already formatted or does not parse.
func (d *document) format(opts protocol.FormattingOptions) ([]protocol.TextEdit, error) {
	if d.err != nil {
		return nil, nil
	}
	indent := "\t"
	if opts.InsertSpaces {
		indent = strings.Repeat(" ", int(opts.TabSize))
	}
	buf := &bytes.Buffer{}
	if err := encode.Encode(d.root, buf, encode.Indent(indent)); err != nil {
		return nil, err
	}
	if strings.HasSuffix(d.text, "\n") {
		buf.WriteString("\n")
	}
	if buf.String() == d.text {
		return []protocol.TextEdit{}, nil
	}
	return []protocol.TextEdit{{
		Range:   protocol.Range{End: endPosition(d.text)},
		NewText: buf.String(),
	}}, nil
}

func endPosition(text string) protocol.Position {
	i := strings.LastIndexByte(text, '\n')
	last := text[i+1:]
	return protocol.Position{
		Line:      uint32(strings.Count(text, "\n")),
		Character: uint32(len(utf16.Encode([]rune(last)))),
	}
}

// at returns the innermost value starting on the line of p at or before
// p, with its path.
func (d *document) at(p protocol.Position) (*value.Value, string) {
	if d.root == nil {
		return nil, ""
	}
	var (
		best     *value.Value
		bestPath string
		bestCol  = -1
	)
	line, col := int(p.Line)+1, int(p.Character)+1
	d.root.Walk(func(path string, v *value.Value) error {
		pos, ok := d.positions[v]
		if !ok || pos.Line != line || pos.Col > col {
			return nil
		}
		if pos.Col >= bestCol {
			best, bestPath, bestCol = v, path, pos.Col
		}
		return nil
	})
	return best, bestPath
}

func (d *document) hover(p protocol.Position) *protocol.Hover {
	v, path := d.at(p)
	if v == nil {
		return nil
	}
	if path == "" {
		path = "(root)"
	}
	text := fmt.Sprintf("`%s`: %s", path, v.Type)
	switch {
	case v.Type.IsLeaf():
		text += fmt.Sprintf(" `%s`", encode.MustString(v, encode.EncodeComments(false)))
	default:
		text += fmt.Sprintf(" of %d", v.Len())
	}
	start := lspPosition(d.positions[v])
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: text,
		},
		Range: &protocol.Range{Start: start, End: start},
	}
}
