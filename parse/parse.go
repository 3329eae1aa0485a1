package parse

import (
	"errors"
	"fmt"
	"math"

	"github.com/signadot/json5-format/go-json5/debug"
	"github.com/signadot/json5-format/go-json5/token"
	"github.com/signadot/json5-format/go-json5/value"
)

// Parse parses a single JSON5 document, allocating values with b.
func Parse(b *value.Builder, d []byte, opts ...ParseOption) (*value.Value, error) {
	o := &parseOpts{comments: true, maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(o)
	}
	p := &parser{s: token.NewScanner(d), b: b, opts: o}
	res, err := p.document()
	if err != nil {
		var pe *token.ParseError
		if o.filename != "" && errors.As(err, &pe) {
			pe.Filename = o.filename
		}
		if debug.Parse() {
			debug.Logf("parse error: %v\n", err)
		}
		return nil, err
	}
	return res, nil
}

func ParseString(b *value.Builder, s string, opts ...ParseOption) (*value.Value, error) {
	return Parse(b, []byte(s), opts...)
}

type parser struct {
	s     *token.Scanner
	b     *value.Builder
	opts  *parseOpts
	depth int
}

func (p *parser) document() (*value.Value, error) {
	lead, err := p.comments()
	if err != nil {
		return nil, err
	}
	if p.s.EOF() {
		return nil, token.NewParseError(token.ErrEmptyDoc, p.s.Pos())
	}
	v, err := p.value(lead)
	if err != nil {
		return nil, err
	}
	rest, err := p.after(v)
	if err != nil {
		return nil, err
	}
	if !p.s.EOF() {
		return nil, p.s.Errorf(token.ErrTrailingData, "%q", p.s.Peek())
	}
	v.Tail = rest
	return v, nil
}

// comments skips space and collects the comments found before the next
// token.
func (p *parser) comments() ([]value.Comment, error) {
	var res []value.Comment
	for {
		p.s.SkipSpace()
		if !p.s.AtComment() {
			return res, nil
		}
		c, err := p.s.ScanComment()
		if err != nil {
			return nil, err
		}
		if p.opts.comments {
			res = append(res, leading(c))
		}
	}
}

func leading(c *token.Comment) value.Comment {
	if c.Block {
		return value.Comment{Kind: value.BlockComment, Lines: c.Lines}
	}
	return value.Comment{Kind: value.LineComment, Lines: c.Lines}
}

// after attaches a comment on the same line as v as its trailing comment
// and returns the comments which follow.
func (p *parser) after(v *value.Value) ([]value.Comment, error) {
	var res []value.Comment
	p.s.SkipBlank()
	if p.s.AtComment() {
		c, err := p.s.ScanComment()
		if err != nil {
			return nil, err
		}
		switch {
		case !p.opts.comments:
		case c.MultiLine():
			res = append(res, leading(c))
		default:
			p.b.SetTrailingComment(v, c.Lines[0], c.Block)
		}
	}
	more, err := p.comments()
	if err != nil {
		return nil, err
	}
	return append(res, more...), nil
}

// afterComma takes a line comment following the comma after v as v's
// trailing comment, unless v already has one.
func (p *parser) afterComma(v *value.Value) error {
	p.s.SkipBlank()
	if !p.s.HasPrefix("//") || v.Trailing() != nil {
		return nil
	}
	c, err := p.s.ScanComment()
	if err != nil {
		return err
	}
	if p.opts.comments {
		p.b.SetTrailingComment(v, c.Lines[0], false)
	}
	return nil
}

func (p *parser) value(lead []value.Comment) (*value.Value, error) {
	pos := p.s.Pos()
	var (
		v   *value.Value
		err error
	)
	switch r := p.s.Peek(); {
	case r == '{':
		v, err = p.object()
	case r == '[':
		v, err = p.array()
	case r == '"' || r == '\'':
		v, err = p.str()
	case r == '+' || r == '-' || r == '.' || ('0' <= r && r <= '9'):
		v, err = p.number()
	case token.IsIdentStart(r):
		v, err = p.literal()
	case r < 0:
		err = token.UnexpectedErr("end of input", pos)
	default:
		err = token.UnexpectedErr(fmt.Sprintf("%q", r), pos)
	}
	if err != nil {
		return nil, err
	}
	for _, c := range lead {
		p.b.AddComment(v, c)
	}
	if p.opts.positions != nil {
		p.opts.positions[v] = pos
	}
	return v, nil
}

func (p *parser) str() (*value.Value, error) {
	s, q, err := p.s.ScanString()
	if err != nil {
		return nil, err
	}
	return p.b.QuotedString(s, quote(q)), nil
}

func quote(q byte) value.Quote {
	if q == '\'' {
		return value.SingleQuote
	}
	return value.DoubleQuote
}

func (p *parser) number() (*value.Value, error) {
	n, err := p.s.ScanNumber()
	if err != nil {
		return nil, err
	}
	var v *value.Value
	switch n.Kind {
	case token.IntNumber:
		v = p.b.Int(n.Int)
	case token.UintNumber:
		v = p.b.Uint(n.Uint)
	default:
		v = p.b.Float(n.Float)
	}
	v.Format = value.NumberFormat{
		Plus:          n.Plus,
		Hex:           n.Hex,
		LeadingPoint:  n.LeadingPoint,
		TrailingPoint: n.TrailingPoint,
		Scientific:    n.Scientific,
		Precision:     n.Precision,
	}
	return v, nil
}

func (p *parser) literal() (*value.Value, error) {
	pos := p.s.Pos()
	switch w := p.s.ScanIdent(); w {
	case "true":
		return p.b.Bool(true), nil
	case "false":
		return p.b.Bool(false), nil
	case "null":
		return p.b.Null(), nil
	case "Infinity":
		return p.b.Float(math.Inf(1)), nil
	case "NaN":
		return p.b.Float(math.NaN()), nil
	default:
		return nil, token.UnexpectedErr(fmt.Sprintf("literal %q", w), pos)
	}
}

func (p *parser) enter() error {
	p.depth++
	if p.opts.maxDepth > 0 && p.depth > p.opts.maxDepth {
		return p.s.Errorf(token.ErrDepth, "more than %d levels", p.opts.maxDepth)
	}
	return nil
}

func (p *parser) array() (*value.Value, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer func() { p.depth-- }()
	arr := p.b.EmptyArray()
	err := p.container(arr, ']', func(lead []value.Comment) (*value.Value, error) {
		v, err := p.value(lead)
		if err != nil {
			return nil, err
		}
		p.b.Append(arr, v)
		return v, nil
	})
	if err != nil {
		return nil, err
	}
	return arr, nil
}

func (p *parser) object() (*value.Value, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer func() { p.depth-- }()
	obj := p.b.EmptyObject()
	err := p.container(obj, '}', func(lead []value.Comment) (*value.Value, error) {
		k, err := p.key()
		if err != nil {
			return nil, err
		}
		more, err := p.comments()
		if err != nil {
			return nil, err
		}
		lead = append(lead, more...)
		if err := p.s.Expect(':'); err != nil {
			return nil, err
		}
		more, err = p.comments()
		if err != nil {
			return nil, err
		}
		v, err := p.value(append(lead, more...))
		if err != nil {
			return nil, err
		}
		p.b.SetKey(obj, k, v)
		return v, nil
	})
	if err != nil {
		return nil, err
	}
	return obj, nil
}

func (p *parser) key() (value.Key, error) {
	switch r := p.s.Peek(); {
	case r == '"' || r == '\'':
		s, q, err := p.s.ScanString()
		if err != nil {
			return value.Key{}, err
		}
		return value.Key{Name: s, Quote: quote(q)}, nil
	case r >= 0 && token.IsIdentPart(r):
		return value.Key{Name: p.s.ScanIdent(), Quote: value.Unquoted}, nil
	case r < 0:
		return value.Key{}, token.UnexpectedErr("end of input", p.s.Pos())
	default:
		return value.Key{}, token.ExpectedErr(fmt.Sprintf("key, found %q", r), p.s.Pos())
	}
}

// container parses the members of an array or object, the scanner being
// on the opening bracket. member parses one member given its leading
// comments and adds it to v.
func (p *parser) container(v *value.Value, close rune, member func([]value.Comment) (*value.Value, error)) error {
	nl := p.s.NewLines()
	p.s.Next()
	var pending []value.Comment
	comma := false
	for {
		more, err := p.comments()
		if err != nil {
			return err
		}
		pending = append(pending, more...)
		if p.s.Peek() == close {
			break
		}
		if len(v.Values) > 0 && !comma {
			return token.ExpectedErr(fmt.Sprintf("',' or '%c'", close), p.s.Pos())
		}
		m, err := member(pending)
		if err != nil {
			return err
		}
		pending, err = p.after(m)
		if err != nil {
			return err
		}
		comma = false
		if p.s.Peek() == ',' {
			p.s.Next()
			comma = true
			if err := p.afterComma(m); err != nil {
				return err
			}
		}
	}
	p.s.Next()
	v.Layout.TrailingComma = comma
	v.Layout.SingleLine = p.s.NewLines() == nl
	v.Inner = pending
	return nil
}
