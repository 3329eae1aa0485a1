package parse

import (
	"github.com/signadot/json5-format/go-json5/token"
	"github.com/signadot/json5-format/go-json5/value"
)

const DefaultMaxDepth = 1000

type parseOpts struct {
	comments  bool
	maxDepth  int
	filename  string
	positions map[*value.Value]token.Pos
}

type ParseOption func(*parseOpts)

// ParseComments controls whether comments are kept. Defaults to true.
func ParseComments(v bool) ParseOption {
	return func(o *parseOpts) { o.comments = v }
}

// MaxDepth bounds the nesting of arrays and objects.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

// ParseFilename names the input in errors.
func ParseFilename(name string) ParseOption {
	return func(o *parseOpts) { o.filename = name }
}

// ParsePositions records the start position of every parsed value in m.
func ParsePositions(m map[*value.Value]token.Pos) ParseOption {
	return func(o *parseOpts) { o.positions = m }
}
