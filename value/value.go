package value

import "strings"

// Quote records how a string or an object key was written.
type Quote int

const (
	DoubleQuote Quote = iota
	SingleQuote
	Unquoted
)

func (q Quote) String() string {
	switch q {
	case DoubleQuote:
		return "double"
	case SingleQuote:
		return "single"
	case Unquoted:
		return "unquoted"
	}
	return "<unknown quote>"
}

// Char returns the quote character, or 0 for Unquoted.
func (q Quote) Char() byte {
	switch q {
	case SingleQuote:
		return '\''
	case Unquoted:
		return 0
	default:
		return '"'
	}
}

// NumberFormat holds the literal flags of a number. Int and Uint values
// use Plus and Hex; Float values use the rest.
type NumberFormat struct {
	Plus          bool
	Hex           bool
	LeadingPoint  bool
	TrailingPoint bool
	Scientific    bool
	// Precision is the number of digits after the decimal point,
	// 0 meaning natural formatting.
	Precision int
}

// Layout holds the container flags shared by arrays and objects.
type Layout struct {
	TrailingComma bool
	SingleLine    bool
}

type Key struct {
	Name  string
	Quote Quote
}

type CommentKind int

const (
	LineComment CommentKind = iota
	BlockComment
	TrailingComment
)

func (k CommentKind) String() string {
	switch k {
	case LineComment:
		return "line"
	case BlockComment:
		return "block"
	case TrailingComment:
		return "trailing"
	}
	return "<unknown comment>"
}

// Comment is the text of a comment without its delimiters. A line
// comment and a trailing comment have exactly one line.
type Comment struct {
	Kind  CommentKind
	Lines []string
	// Block is set on a trailing comment written as /* */.
	Block bool
}

func (c Comment) Text() string {
	return strings.Join(c.Lines, "\n")
}

func (c Comment) clone() Comment {
	c.Lines = append([]string(nil), c.Lines...)
	return c
}

// Value is one JSON5 node together with the formatting it was written
// with. Object keys and values are parallel slices in insertion order.
type Value struct {
	Type Type

	String string
	Quote  Quote
	Int    int64
	Uint   uint64
	Float  float64
	Bool   bool
	Format NumberFormat

	Keys   []Key
	Values []*Value
	Layout Layout

	// Comments are the comments attached before the value, with at most
	// one trailing comment which is always last.
	Comments []Comment
	// Inner holds comments found after the last member of a container
	// and before its closing bracket.
	Inner []Comment
	// Tail holds comments following the root value.
	Tail []Comment
}

func (v *Value) Len() int {
	switch v.Type {
	case ArrayType, ObjectType:
		return len(v.Values)
	case StringType:
		return len(v.String)
	}
	return 0
}

// Get returns the value of the first member named key, or nil.
func (v *Value) Get(key string) *Value {
	i := v.KeyIndex(key)
	if i < 0 {
		return nil
	}
	return v.Values[i]
}

func (v *Value) KeyIndex(key string) int {
	if v == nil || v.Type != ObjectType {
		return -1
	}
	for i := range v.Keys {
		if v.Keys[i].Name == key {
			return i
		}
	}
	return -1
}

func (v *Value) Has(key string) bool {
	return v.KeyIndex(key) >= 0
}

// Index returns the i'th element of an array, or nil.
func (v *Value) Index(i int) *Value {
	if v == nil || v.Type != ArrayType || i < 0 || i >= len(v.Values) {
		return nil
	}
	return v.Values[i]
}

func (v *Value) Leading() []Comment {
	if v.Trailing() != nil {
		return v.Comments[:len(v.Comments)-1]
	}
	return v.Comments
}

func (v *Value) Trailing() *Comment {
	n := len(v.Comments)
	if n == 0 || v.Comments[n-1].Kind != TrailingComment {
		return nil
	}
	return &v.Comments[n-1]
}

func (v *Value) IsNull() bool {
	return v == nil || v.Type == NullType
}

// Walk calls f on v and then on every descendant in document order,
// stopping at the first error.
func (v *Value) Walk(f func(path string, v *Value) error) error {
	return walk(v, "", f)
}

func walk(v *Value, path string, f func(string, *Value) error) error {
	if err := f(path, v); err != nil {
		return err
	}
	switch v.Type {
	case ArrayType:
		for i, e := range v.Values {
			if err := walk(e, IndexPath(path, i), f); err != nil {
				return err
			}
		}
	case ObjectType:
		for i, e := range v.Values {
			if err := walk(e, KeyPath(path, v.Keys[i].Name), f); err != nil {
				return err
			}
		}
	}
	return nil
}
