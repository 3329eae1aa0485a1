package json5

import (
	"fmt"
	"strings"

	"github.com/signadot/json5-format/go-json5/encode"
	"github.com/signadot/json5-format/go-json5/value"

	"github.com/goccy/go-yaml"
)

// FromJSON parses plain JSON. The result carries no formatting, so it
// prints as the JSON5 defaults rather than as the input was laid out.
func (t *Tool) FromJSON(d []byte) (*value.Value, error) {
	v, err := t.Parse(d)
	if err != nil {
		return nil, err
	}
	value.StripFormat(v)
	return v, nil
}

// ToJSON prints v as indented JSON. Comments are dropped and non finite
// numbers are written as null.
func (t *Tool) ToJSON(v *value.Value) ([]byte, error) {
	opts := append(t.EncodeOptions[:len(t.EncodeOptions):len(t.EncodeOptions)], encode.EncodeJSON(true))
	return []byte(encode.ToPrettyString(v, "  ", "\n", opts...)), nil
}

// FromYAML converts a YAML document. Mapping order is kept and comments
// are dropped.
func (t *Tool) FromYAML(d []byte) (*value.Value, error) {
	var x any
	if err := yaml.UnmarshalWithOptions(d, &x, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	return fromYAML(t.Builder, x)
}

func fromYAML(b *value.Builder, x any) (*value.Value, error) {
	switch y := x.(type) {
	case yaml.MapSlice:
		obj := b.EmptyObject()
		for _, item := range y {
			k, ok := item.Key.(string)
			if !ok {
				k = fmt.Sprint(item.Key)
			}
			v, err := fromYAML(b, item.Value)
			if err != nil {
				return nil, err
			}
			b.Set(obj, k, v)
		}
		return obj, nil
	case []any:
		arr := b.EmptyArray()
		for _, e := range y {
			v, err := fromYAML(b, e)
			if err != nil {
				return nil, err
			}
			b.Append(arr, v)
		}
		return arr, nil
	default:
		return b.Make(x)
	}
}

// ToYAML prints v as YAML in document order. Comments on object members
// and array elements are carried over when their path is made of
// identifier-like keys; comments on the root are dropped.
func (t *Tool) ToYAML(v *value.Value) ([]byte, error) {
	cm := yaml.CommentMap{}
	x := toYAML(v, "$", cm)
	if len(cm) == 0 {
		return yaml.Marshal(x)
	}
	return yaml.MarshalWithOptions(x, yaml.WithComment(cm))
}

func toYAML(v *value.Value, path string, cm yaml.CommentMap) any {
	if path != "$" && path != "" {
		yamlComments(v, path, cm)
	}
	switch v.Type {
	case value.ObjectType:
		res := make(yaml.MapSlice, 0, len(v.Values))
		for i, e := range v.Values {
			k := v.Keys[i].Name
			p := ""
			if path != "" && yamlPathKey(k) {
				p = path + "." + k
			}
			res = append(res, yaml.MapItem{Key: k, Value: toYAML(e, p, cm)})
		}
		return res
	case value.ArrayType:
		res := make([]any, len(v.Values))
		for i, e := range v.Values {
			p := ""
			if path != "" {
				p = fmt.Sprintf("%s[%d]", path, i)
			}
			res[i] = toYAML(e, p, cm)
		}
		return res
	}
	return value.ToPlain(v)
}

func yamlComments(v *value.Value, path string, cm yaml.CommentMap) {
	var head []string
	for _, c := range v.Leading() {
		head = append(head, c.Lines...)
	}
	if len(head) > 0 {
		cm[path] = append(cm[path], yaml.HeadComment(head...))
	}
	if tr := v.Trailing(); tr != nil {
		cm[path] = append(cm[path], yaml.LineComment(tr.Text()))
	}
}

// yamlPathKey reports whether key can be written in a YAML path without
// quoting. Comments under other keys are dropped.
func yamlPathKey(key string) bool {
	if key == "" {
		return false
	}
	return !strings.ContainsFunc(key, func(r rune) bool {
		return !(r == '_' || r == '-' || 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || '0' <= r && r <= '9')
	})
}
