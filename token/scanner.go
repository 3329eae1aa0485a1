package token

import (
	"fmt"
	"unicode/utf8"
)

// Scanner reads JSON5 tokens from an in-memory buffer.
type Scanner struct {
	d    []byte
	i    int
	line int
	col  int
	nl   int
}

func NewScanner(d []byte) *Scanner {
	return &Scanner{d: d, line: 1, col: 1}
}

func (s *Scanner) Pos() Pos {
	return Pos{Offset: s.i, Line: s.line, Col: s.col, sample: sampleAt(s.d, s.i)}
}

func (s *Scanner) Offset() int {
	return s.i
}

func (s *Scanner) EOF() bool {
	return s.i >= len(s.d)
}

// Peek returns the rune at the current position, or -1 at the end of
// input.
func (s *Scanner) Peek() rune {
	if s.i >= len(s.d) {
		return -1
	}
	c := s.d[s.i]
	if c < utf8.RuneSelf {
		return rune(c)
	}
	r, _ := utf8.DecodeRune(s.d[s.i:])
	return r
}

func (s *Scanner) HasPrefix(p string) bool {
	return len(s.d)-s.i >= len(p) && string(s.d[s.i:s.i+len(p)]) == p
}

// NewLines returns the number of line breaks skipped between tokens so
// far. Line breaks within comments and strings are not counted.
func (s *Scanner) NewLines() int {
	return s.nl
}

// Next consumes one rune. A line break is consumed as a whole, CRLF
// included.
func (s *Scanner) Next() rune {
	r := s.Peek()
	if r < 0 {
		return r
	}
	if IsLineBreak(r) {
		s.lineBreak()
		return r
	}
	s.advance(r)
	return r
}

func (s *Scanner) advance(r rune) {
	if r < utf8.RuneSelf {
		s.i++
	} else {
		_, n := utf8.DecodeRune(s.d[s.i:])
		s.i += n
	}
	s.col++
}

func (s *Scanner) lineBreak() bool {
	switch r := s.Peek(); r {
	case '\r':
		s.i++
		if s.i < len(s.d) && s.d[s.i] == '\n' {
			s.i++
		}
	case '\n':
		s.i++
	case lineSep, paraSep:
		s.i += utf8.RuneLen(r)
	default:
		return false
	}
	s.line++
	s.col = 1
	return true
}

// SkipSpace skips whitespace and line breaks.
func (s *Scanner) SkipSpace() {
	for {
		r := s.Peek()
		switch {
		case r < 0:
			return
		case IsSpace(r):
			s.advance(r)
		case s.lineBreak():
			s.nl++
		default:
			return
		}
	}
}

// SkipBlank skips whitespace on the current line.
func (s *Scanner) SkipBlank() {
	for {
		r := s.Peek()
		if r < 0 || !IsSpace(r) {
			return
		}
		s.advance(r)
	}
}

func (s *Scanner) AtComment() bool {
	return s.HasPrefix("//") || s.HasPrefix("/*")
}

// Expect consumes c or fails.
func (s *Scanner) Expect(c byte) error {
	if s.i < len(s.d) && s.d[s.i] == c {
		s.i++
		s.col++
		return nil
	}
	return ExpectedErr(fmt.Sprintf("%q", c), s.Pos())
}

// ScanIdent consumes a run of identifier characters.
func (s *Scanner) ScanIdent() string {
	start := s.i
	for {
		r := s.Peek()
		if r < 0 || !IsIdentPart(r) {
			break
		}
		s.advance(r)
	}
	return string(s.d[start:s.i])
}

func (s *Scanner) Errorf(e error, format string, args ...any) error {
	return s.ErrorfAt(s.Pos(), e, format, args...)
}

func (s *Scanner) ErrorfAt(p Pos, e error, format string, args ...any) error {
	return NewParseError(fmt.Errorf("%w: %s", e, fmt.Sprintf(format, args...)), p)
}
