package token

// Comment is a scanned comment, without its delimiters.
type Comment struct {
	Block bool
	Lines []string
	Pos   Pos
}

func (c *Comment) MultiLine() bool {
	return len(c.Lines) > 1
}

// ScanComment consumes a comment at the current position. A line comment
// consumes its terminating line break. Block comments may nest; the text
// of a nested comment, delimiters included, is kept in the enclosing
// comment's lines.
func (s *Scanner) ScanComment() (*Comment, error) {
	c := &Comment{Pos: s.Pos()}
	switch {
	case s.HasPrefix("//"):
		s.i += 2
		s.col += 2
		start := s.i
		for {
			r := s.Peek()
			if r < 0 || IsLineBreak(r) {
				break
			}
			s.advance(r)
		}
		c.Lines = []string{string(s.d[start:s.i])}
		s.lineBreak()
		return c, nil
	case s.HasPrefix("/*"):
	default:
		return nil, ExpectedErr("comment", c.Pos)
	}
	c.Block = true
	s.i += 2
	s.col += 2
	depth := 1
	var cur []byte
	for {
		switch {
		case s.EOF():
			return nil, NewParseError(ErrUnterminatedComment, c.Pos)
		case s.HasPrefix("*/"):
			s.i += 2
			s.col += 2
			depth--
			if depth == 0 {
				c.Lines = append(c.Lines, string(cur))
				return c, nil
			}
			cur = append(cur, '*', '/')
		case s.HasPrefix("/*"):
			s.i += 2
			s.col += 2
			depth++
			cur = append(cur, '/', '*')
		case s.lineBreak():
			c.Lines = append(c.Lines, string(cur))
			cur = nil
		default:
			start := s.i
			s.advance(s.Peek())
			cur = append(cur, s.d[start:s.i]...)
		}
	}
}
