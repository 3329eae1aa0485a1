package encode

import (
	"github.com/signadot/json5-format/go-json5/format"
	"github.com/signadot/json5-format/go-json5/token"
)

type EncodeOption func(*EncState)

// Indent sets the string written once per nesting level. Defaults to two
// spaces.
func Indent(unit string) EncodeOption {
	return func(es *EncState) { es.indent = unit }
}

// Newline sets the line terminator. Defaults to "\n".
func Newline(nl string) EncodeOption {
	return func(es *EncState) { es.newline = nl }
}

// EscapeUnicode writes non ASCII characters in strings and keys as
// \uXXXX escapes.
func EscapeUnicode(v bool) EncodeOption {
	return func(es *EncState) { es.setFlag(token.EscapeUnicode, v) }
}

// EscapeSlash writes '/' in strings and keys as \/.
func EscapeSlash(v bool) EncodeOption {
	return func(es *EncState) { es.setFlag(token.EscapeSlash, v) }
}

// EncodeComments controls whether comments are written. Defaults to true.
func EncodeComments(v bool) EncodeOption {
	return func(es *EncState) { es.comments = v }
}

// EncodeJSON writes plain JSON: double quotes, decimal numbers, no
// comments and no trailing commas.
func EncodeJSON(v bool) EncodeOption {
	return func(es *EncState) { es.json = v }
}

func EncodeFormat(f format.Format) EncodeOption {
	return EncodeJSON(f.IsJSON())
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}

func (es *EncState) setFlag(f token.QuoteFlags, v bool) {
	if v {
		es.flags |= f
	} else {
		es.flags &^= f
	}
}
