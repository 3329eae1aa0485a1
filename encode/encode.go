package encode

import (
	"bytes"
	"io"
	"strings"

	"github.com/signadot/json5-format/go-json5/token"
	"github.com/signadot/json5-format/go-json5/value"
)

type EncState struct {
	depth    int
	indent   string
	newline  string
	flags    token.QuoteFlags
	comments bool
	json     bool
	// nl is set when a line break is due before anything else is
	// written.
	nl bool

	w   io.Writer
	err error

	Color func(value.Type, ColorAttr, string) string
}

// Encode writes v to w. No line break is written after the value.
func Encode(v *value.Value, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent:   "  ",
		newline:  "\n",
		comments: true,
		w:        w,
	}
	for _, opt := range opts {
		opt(es)
	}
	if es.json {
		es.comments = false
		es.flags |= token.EscapeJSON
	}
	es.leading(v)
	es.value(v)
	es.trailing(v)
	if es.comments {
		for _, c := range v.Tail {
			es.lineBreak()
			es.comment(c)
		}
	}
	return es.err
}

// ToPrettyString prints v using indentUnit per nesting level and newline
// as the line terminator.
func ToPrettyString(v *value.Value, indentUnit, newline string, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	opts = append([]EncodeOption{Indent(indentUnit), Newline(newline)}, opts...)
	if err := Encode(v, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}

func (es *EncState) write(s string) {
	if es.err != nil {
		return
	}
	if es.nl {
		es.nl = false
		es.write(es.newline + strings.Repeat(es.indent, es.depth))
	}
	_, es.err = io.WriteString(es.w, s)
}

func (es *EncState) writeColor(t value.Type, attr ColorAttr, s string) {
	if es.Color != nil {
		s = es.Color(t, attr, s)
	}
	es.write(s)
}

// lineBreak makes the next write start a new line at the indentation
// current at that time.
func (es *EncState) lineBreak() {
	es.nl = true
}

func (es *EncState) value(v *value.Value) {
	switch v.Type {
	case value.ArrayType, value.ObjectType:
		es.container(v)
	case value.StringType:
		es.writeColor(v.Type, ValueColor, es.quote(v.String, v.Quote))
	default:
		es.writeColor(v.Type, ValueColor, Scalar(v, es.json))
	}
}

func (es *EncState) quote(s string, q value.Quote) string {
	if es.json || q != value.SingleQuote {
		return token.Quote(s, '"', es.flags)
	}
	return token.Quote(s, '\'', es.flags)
}

func (es *EncState) key(k value.Key) string {
	switch {
	case es.json:
		return token.Quote(k.Name, '"', es.flags)
	case k.Quote == value.Unquoted:
		bare := es.flags&token.EscapeUnicode == 0 || ascii(k.Name)
		if bare && identRun(k.Name) {
			return k.Name
		}
		return token.QuoteKey(k.Name, bare, '"', es.flags)
	default:
		return es.quote(k.Name, k.Quote)
	}
}

// identRun reports whether s is a non-empty run of identifier characters,
// which the parser reads back as a bare key even when s starts with a digit.
func identRun(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !token.IsIdentPart(r) {
			return false
		}
	}
	return true
}

func ascii(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

func (es *EncState) container(v *value.Value) {
	open, close := "[", "]"
	if v.Type == value.ObjectType {
		open, close = "{", "}"
	}
	var inner []value.Comment
	if es.comments {
		inner = v.Inner
	}
	if len(v.Values) == 0 && len(inner) == 0 {
		es.writeColor(v.Type, SepColor, open+close)
		return
	}
	single := v.Layout.SingleLine
	es.writeColor(v.Type, SepColor, open)
	es.depth++
	for i, m := range v.Values {
		es.separate(single)
		es.leading(m)
		if v.Type == value.ObjectType {
			es.writeColor(v.Type, FieldColor, es.key(v.Keys[i]))
			es.writeColor(v.Type, SepColor, ":")
			es.write(" ")
		}
		es.value(m)
		comma := i < len(v.Values)-1 || (v.Layout.TrailingComma && !es.json)
		tr := es.trailingComment(m)
		if tr != nil && tr.Block {
			es.write(" ")
			es.comment(*tr)
		}
		if comma {
			es.writeColor(v.Type, SepColor, ",")
		}
		if tr != nil && !tr.Block {
			es.write(" ")
			es.comment(*tr)
		}
	}
	for _, c := range inner {
		es.separate(single)
		es.comment(c)
	}
	es.depth--
	switch {
	case !single:
		es.lineBreak()
	case !es.nl:
		es.write(" ")
	}
	es.writeColor(v.Type, SepColor, close)
}

func (es *EncState) separate(single bool) {
	switch {
	case !single:
		es.lineBreak()
	case !es.nl:
		es.write(" ")
	}
}

func (es *EncState) trailingComment(v *value.Value) *value.Comment {
	if !es.comments {
		return nil
	}
	return v.Trailing()
}

// leading writes the comments preceding v. A block comment on one line
// stays on the line of v.
func (es *EncState) leading(v *value.Value) {
	if !es.comments {
		return
	}
	for _, c := range v.Leading() {
		es.comment(c)
		if c.Kind == value.BlockComment && len(c.Lines) == 1 {
			es.write(" ")
		} else {
			es.lineBreak()
		}
	}
}

func (es *EncState) trailing(v *value.Value) {
	if tr := es.trailingComment(v); tr != nil {
		es.write(" ")
		es.comment(*tr)
	}
}

// comment writes c. A line comment leaves a line break due.
func (es *EncState) comment(c value.Comment) {
	var s string
	switch {
	case c.Kind == value.LineComment, c.Kind == value.TrailingComment && !c.Block:
		s = "//" + c.Text()
	default:
		s = "/*" + strings.Join(c.Lines, es.newline) + "*/"
	}
	es.writeColor(value.UndefinedType, CommentColor, s)
	if c.Kind == value.LineComment || (c.Kind == value.TrailingComment && !c.Block) {
		es.lineBreak()
	}
}
