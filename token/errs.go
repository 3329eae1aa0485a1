package token

import (
	"errors"
	"fmt"
)

var (
	ErrUnterminatedString  = errors.New("unterminated string")
	ErrUnterminatedComment = errors.New("unterminated comment")
	ErrNumber              = errors.New("bad number")
	ErrBadEscape           = errors.New("bad escape")
	ErrUnexpected          = errors.New("unexpected")
	ErrExpected            = errors.New("expected")
	ErrDepth               = errors.New("nesting too deep")
	ErrTrailingData        = errors.New("trailing data")
	ErrEmptyDoc            = errors.New("empty document")
)

// ParseError is the error returned for malformed input. It wraps one of
// the sentinel errors above.
type ParseError struct {
	Err      error
	Pos      Pos
	Filename string
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Error() string {
	if e.Filename != "" {
		return fmt.Sprintf("%s:%d:%d: %s at %s", e.Filename, e.Pos.Line, e.Pos.Col, e.Err.Error(), e.Pos.String())
	}
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func NewParseError(e error, p Pos) *ParseError {
	return &ParseError{Err: e, Pos: p}
}

func ExpectedErr(what string, p Pos) error {
	return NewParseError(fmt.Errorf("%w %s", ErrExpected, what), p)
}

func UnexpectedErr(what string, p Pos) error {
	return NewParseError(fmt.Errorf("%w %s", ErrUnexpected, what), p)
}
