package eval

import (
	"fmt"
	"strings"

	"github.com/signadot/json5-format/go-json5/encode"
	"github.com/signadot/json5-format/go-json5/value"
)

// Expand replaces $[expr] in every string of v, keys excluded, with the
// text of the result.
func Expand(v *value.Value, env Env) error {
	return v.Walk(func(path string, x *value.Value) error {
		if x.Type != value.StringType {
			return nil
		}
		s, err := ExpandString(x.String, env)
		if err != nil {
			return fmt.Errorf("at %q: %w", path, err)
		}
		x.String = s
		return nil
	})
}

// ExpandString replaces each $[expr] in s with the result of expr. Inside
// an expression a backslash escapes the next character, so \] stands for
// ]. An unterminated $[ is kept as is.
func ExpandString(s string, env Env) (string, error) {
	var (
		out   strings.Builder
		key   []byte
		start = -1
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case start == -1 && c == '$' && i+1 < len(s) && s[i+1] == '[':
			start = i
			key = key[:0]
			i++
		case start == -1:
			out.WriteByte(c)
		case c == '\\' && i+1 < len(s):
			i++
			key = append(key, s[i])
		case c == ']':
			src := strings.TrimSpace(string(key))
			x, err := Eval(src, nil, env)
			if err != nil {
				return "", err
			}
			t, err := anyText(x)
			if err != nil {
				return "", fmt.Errorf("could not render result of %q: %w", src, err)
			}
			out.WriteString(t)
			start = -1
		default:
			key = append(key, c)
		}
	}
	if start != -1 {
		out.WriteString(s[start:])
	}
	return out.String(), nil
}

func anyText(x any) (string, error) {
	if s, ok := x.(string); ok {
		return s, nil
	}
	v, err := FromAny(value.NewBuilder(nil), x)
	if err != nil {
		return "", err
	}
	return encode.MustString(v), nil
}

// FromAny converts the result of an expression to a value.
func FromAny(b *value.Builder, x any) (*value.Value, error) {
	v, err := b.Make(x)
	if err != nil {
		return nil, fmt.Errorf("could not convert %T: %w", x, err)
	}
	return v, nil
}
