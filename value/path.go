package value

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/json5-format/go-json5/token"
)

var ErrPath = errors.New("bad path")

// PathElem is one step of a path: an object key or an array index.
type PathElem struct {
	Key     string
	Index   int
	IsIndex bool
}

func (e PathElem) String() string {
	if e.IsIndex {
		return "[" + strconv.Itoa(e.Index) + "]"
	}
	return quotePathKey(e.Key)
}

// KeyPath extends path with an object key. Keys which are not
// identifiers are quoted.
func KeyPath(path, key string) string {
	if path == "" {
		return quotePathKey(key)
	}
	return path + "." + quotePathKey(key)
}

func IndexPath(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}

func quotePathKey(k string) string {
	if token.IsIdent(k) {
		return k
	}
	return token.Quote(k, '"', 0)
}

func FormatPath(elems []PathElem) string {
	res := ""
	for _, e := range elems {
		if e.IsIndex {
			res = IndexPath(res, e.Index)
		} else {
			res = KeyPath(res, e.Key)
		}
	}
	return res
}

// ParsePath parses paths such as `a.b[0]."c d"`. The empty path denotes
// the root.
func ParsePath(p string) ([]PathElem, error) {
	var res []PathElem
	i := 0
	for i < len(p) {
		switch c := p[i]; {
		case c == '[':
			j := strings.IndexByte(p[i:], ']')
			if j < 0 {
				return nil, fmt.Errorf("%w: unterminated index in %q", ErrPath, p)
			}
			n, err := strconv.Atoi(p[i+1 : i+j])
			if err != nil || n < 0 {
				return nil, fmt.Errorf("%w: bad index %q in %q", ErrPath, p[i+1:i+j], p)
			}
			res = append(res, PathElem{Index: n, IsIndex: true})
			i += j + 1
		case c == '.' && i > 0:
			i++
			if i == len(p) {
				return nil, fmt.Errorf("%w: empty key at end of %q", ErrPath, p)
			}
			fallthrough
		default:
			k, n, err := pathKey(p[i:])
			if err != nil {
				return nil, fmt.Errorf("%w: %w in %q", ErrPath, err, p)
			}
			res = append(res, PathElem{Key: k})
			i += n
		}
	}
	return res, nil
}

func pathKey(p string) (string, int, error) {
	if p[0] == '"' || p[0] == '\'' {
		s := token.NewScanner([]byte(p))
		k, _, err := s.ScanString()
		if err != nil {
			return "", 0, err
		}
		return k, s.Offset(), nil
	}
	n := strings.IndexAny(p, ".[")
	if n < 0 {
		n = len(p)
	}
	if n == 0 {
		return "", 0, errors.New("empty key")
	}
	return p[:n], n, nil
}

// GetPath returns the value at path p below v.
func (v *Value) GetPath(p string) (*Value, error) {
	elems, err := ParsePath(p)
	if err != nil {
		return nil, err
	}
	return v.GetElems(elems)
}

func (v *Value) GetElems(elems []PathElem) (*Value, error) {
	cur := v
	for i, e := range elems {
		var next *Value
		if e.IsIndex {
			next = cur.Index(e.Index)
		} else {
			next = cur.Get(e.Key)
		}
		if next == nil {
			return nil, fmt.Errorf("%w: %s not found in %s", ErrPath, FormatPath(elems[:i+1]), cur.typ())
		}
		cur = next
	}
	return cur, nil
}
