package json5map

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/json5-format/go-json5/eval"
	"github.com/signadot/json5-format/go-json5/value"
)

// Policy says how one field is mapped. The zero Policy maps the field
// under its Go name with default formatting.
type Policy struct {
	// Name overrides the key.
	Name string
	// Ignore leaves the field out in both directions.
	Ignore bool
	// IgnoreIf leaves the field out of serialization when it returns
	// true for the field's value. Fields with a condition are never
	// populated by deserialization.
	IgnoreIf func(v any) bool
	// IgnoreIfExpr is IgnoreIf as an expression over "value", the
	// field's value, and "record", the enclosing struct.
	IgnoreIfExpr *eval.Predicate
	// OmitEmpty leaves out zero values.
	OmitEmpty bool
	// Essential fields must be present when deserializing.
	Essential bool
	// Comment is written as line comments before the field.
	Comment string
	// Converter replaces the default conversion of the field.
	Converter *Converter
	// ConverterName names a converter registered with the Registry.
	ConverterName string

	StringFormat   *value.Quote
	IntegralFormat *value.NumberFormat
	FloatFormat    *value.NumberFormat
	ArrayFormat    *value.Layout
	ObjectFormat   *value.Layout
	// KeyQuote is the quote style of the field's key.
	KeyQuote *value.Quote
}

func (p *Policy) hasCondition() bool {
	return p.IgnoreIf != nil || p.IgnoreIfExpr != nil
}

var quotes = map[string]value.Quote{
	"double":   value.DoubleQuote,
	"single":   value.SingleQuote,
	"unquoted": value.Unquoted,
}

// ParsePolicy parses the value of a json5 struct tag.
//
//	name=k  ignore  ignoreif='expr'  omitempty  essential  comment='text'
//	converter=name  quote=single|double  keyquote=single|double|unquoted
//	int=hex|plus  float=sci|leading|trailing|plus|prec=N
//	array=single|trailing  object=single|trailing
//
// The tag "-" is the same as ignore.
func ParsePolicy(tag string) (Policy, error) {
	p := Policy{}
	if tag == "-" {
		p.Ignore = true
		return p, nil
	}
	kvs, err := ParseStructTag(tag)
	if err != nil {
		return p, err
	}
	for k, v := range kvs {
		switch k {
		case "name":
			p.Name = v
		case "ignore":
			p.Ignore = true
		case "ignoreif":
			pred, err := eval.NewPredicate(v)
			if err != nil {
				return p, fmt.Errorf("%w: %w", ErrTag, err)
			}
			p.IgnoreIfExpr = pred
		case "omitempty":
			p.OmitEmpty = true
		case "essential":
			p.Essential = true
		case "comment":
			p.Comment = v
		case "converter":
			p.ConverterName = v
		case "quote":
			q, ok := quotes[v]
			if !ok || q == value.Unquoted {
				return p, fmt.Errorf("%w: quote=%q", ErrTag, v)
			}
			p.StringFormat = &q
		case "keyquote":
			q, ok := quotes[v]
			if !ok {
				return p, fmt.Errorf("%w: keyquote=%q", ErrTag, v)
			}
			p.KeyQuote = &q
		case "int":
			nf, err := parseNumberFormat(v, "hex", "plus")
			if err != nil {
				return p, err
			}
			p.IntegralFormat = nf
		case "float":
			nf, err := parseNumberFormat(v, "sci", "leading", "trailing", "plus", "prec")
			if err != nil {
				return p, err
			}
			p.FloatFormat = nf
		case "array":
			l, err := parseLayout(v)
			if err != nil {
				return p, err
			}
			p.ArrayFormat = l
		case "object":
			l, err := parseLayout(v)
			if err != nil {
				return p, err
			}
			p.ObjectFormat = l
		case "kind", "kindkey":
			return p, fmt.Errorf("%w: %s belongs on a blank struct{} field", ErrTag, k)
		default:
			return p, fmt.Errorf("%w: unknown option %q", ErrTag, k)
		}
	}
	return p, nil
}

// MustParsePolicy is ParsePolicy for tags known to be valid, such as
// those in generated code.
func MustParsePolicy(tag string) Policy {
	p, err := ParsePolicy(tag)
	if err != nil {
		panic(err)
	}
	return p
}

func parseNumberFormat(v string, allowed ...string) (*value.NumberFormat, error) {
	nf := &value.NumberFormat{}
	for _, w := range strings.Split(v, "|") {
		name, arg, _ := strings.Cut(w, "=")
		ok := false
		for _, a := range allowed {
			ok = ok || a == name
		}
		if !ok {
			return nil, fmt.Errorf("%w: number format %q", ErrTag, w)
		}
		switch name {
		case "hex":
			nf.Hex = true
		case "plus":
			nf.Plus = true
		case "sci":
			nf.Scientific = true
		case "leading":
			nf.LeadingPoint = true
		case "trailing":
			nf.TrailingPoint = true
		case "prec":
			n, err := strconv.Atoi(arg)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("%w: precision %q", ErrTag, arg)
			}
			nf.Precision = n
		}
	}
	return nf, nil
}

func parseLayout(v string) (*value.Layout, error) {
	l := &value.Layout{}
	for _, w := range strings.Split(v, "|") {
		switch w {
		case "single":
			l.SingleLine = true
		case "trailing":
			l.TrailingComma = true
		case "multi", "":
		default:
			return nil, fmt.Errorf("%w: layout %q", ErrTag, w)
		}
	}
	return l, nil
}

// apply sets the formatting the policy asks for on x. Scalar formats also
// apply to the elements of an array.
func (p *Policy) apply(x *value.Value) {
	switch x.Type {
	case value.StringType:
		if p.StringFormat != nil {
			x.Quote = *p.StringFormat
		}
	case value.IntType, value.UintType:
		if p.IntegralFormat != nil {
			x.Format.Hex = p.IntegralFormat.Hex
			x.Format.Plus = p.IntegralFormat.Plus
		}
	case value.FloatType:
		if p.FloatFormat != nil {
			x.Format = *p.FloatFormat
		}
	case value.ArrayType:
		if p.ArrayFormat != nil {
			x.Layout = *p.ArrayFormat
		}
		for _, e := range x.Values {
			if e.Type.IsLeaf() {
				p.apply(e)
			}
		}
	case value.ObjectType:
		if p.ObjectFormat != nil {
			x.Layout = *p.ObjectFormat
		}
	}
}
