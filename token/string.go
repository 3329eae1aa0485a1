package token

import (
	"strings"
	"unicode/utf8"
)

// ScanString consumes a string literal delimited by '"' or '\'' and
// returns its value and the quote used.
func (s *Scanner) ScanString() (string, byte, error) {
	start := s.Pos()
	if s.EOF() || (s.d[s.i] != '"' && s.d[s.i] != '\'') {
		return "", 0, ExpectedErr("string", start)
	}
	q := s.d[s.i]
	s.advance(rune(q))
	b := &strings.Builder{}
	for {
		r := s.Peek()
		switch {
		case r < 0:
			return "", 0, NewParseError(ErrUnterminatedString, start)
		case r == rune(q):
			s.advance(r)
			return b.String(), q, nil
		case r == '\n' || r == '\r':
			return "", 0, s.Errorf(ErrUnterminatedString, "line break in string")
		case r == '\\':
			s.advance(r)
			if err := s.escape(b); err != nil {
				return "", 0, err
			}
		default:
			s.advance(r)
			b.WriteRune(r)
		}
	}
}

func (s *Scanner) escape(b *strings.Builder) error {
	r := s.Peek()
	if r < 0 {
		return s.Errorf(ErrUnterminatedString, "escape at end of input")
	}
	if s.lineBreak() {
		return nil
	}
	switch r {
	case 'b':
		b.WriteByte('\b')
	case 'f':
		b.WriteByte('\f')
	case 'n':
		b.WriteByte('\n')
	case 'r':
		b.WriteByte('\r')
	case 't':
		b.WriteByte('\t')
	case 'v':
		b.WriteByte('\v')
	case '0':
		b.WriteByte(0)
	case 'u':
		p := s.Pos()
		cp, ok := s.hex4(s.i + 1)
		if !ok {
			return s.ErrorfAt(p, ErrBadEscape, "incomplete \\u escape")
		}
		s.i += 5
		s.col += 5
		if cp >= 0xd800 && cp < 0xdc00 && s.HasPrefix("\\u") {
			if lo, ok := s.hex4(s.i + 2); ok && lo >= 0xdc00 && lo < 0xe000 {
				s.i += 6
				s.col += 6
				cp = 0x10000 + (cp-0xd800)<<10 + (lo - 0xdc00)
			}
		}
		if !utf8.ValidRune(cp) {
			cp = utf8.RuneError
		}
		b.WriteRune(cp)
		return nil
	default:
		b.WriteRune(r)
	}
	s.advance(r)
	return nil
}

func (s *Scanner) hex4(i int) (rune, bool) {
	if i+4 > len(s.d) {
		return 0, false
	}
	var cp rune
	for _, c := range s.d[i : i+4] {
		if !isHex(c) {
			return 0, false
		}
		cp = cp<<4 | hexVal(c)
	}
	return cp, true
}
