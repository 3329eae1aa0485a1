package json5

import (
	"bytes"
	"maps"

	"github.com/signadot/json5-format/go-json5/encode"
	"github.com/signadot/json5-format/go-json5/eval"
	"github.com/signadot/json5-format/go-json5/json5map"
	"github.com/signadot/json5-format/go-json5/parse"
	"github.com/signadot/json5-format/go-json5/value"
)

// Tool bundles what the operations on documents need. A Tool is not safe
// for concurrent use when its Builder's allocator is not.
type Tool struct {
	Builder  *value.Builder
	Registry *json5map.Registry
	// Env is added to the environment of Run.
	Env eval.Env

	ParseOptions  []parse.ParseOption
	EncodeOptions []encode.EncodeOption
	MapOptions    []json5map.MapOption
}

func DefaultTool() *Tool {
	return &Tool{
		Builder:  value.NewBuilder(nil),
		Registry: json5map.NewRegistry(),
		Env:      eval.Env{},
	}
}

func (t *Tool) Parse(d []byte) (*value.Value, error) {
	return parse.Parse(t.Builder, d, t.ParseOptions...)
}

// Print encodes v. No final line break is added.
func (t *Tool) Print(v *value.Value) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := encode.Encode(v, buf, t.EncodeOptions...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Format reprints the document d.
func (t *Tool) Format(d []byte) ([]byte, error) {
	v, err := t.Parse(d)
	if err != nil {
		return nil, err
	}
	defer t.Builder.Dispose(v)
	return t.Print(v)
}

func (t *Tool) Mapper() *json5map.Mapper {
	return json5map.NewMapper(t.Builder, t.Registry, t.MapOptions...)
}

// Marshal serializes x and encodes the result.
func (t *Tool) Marshal(x any) ([]byte, error) {
	v, err := t.Mapper().Serialize(x)
	if err != nil {
		return nil, err
	}
	defer t.Builder.Dispose(v)
	return t.Print(v)
}

// Unmarshal parses d and deserializes it into dst.
func (t *Tool) Unmarshal(d []byte, dst any) error {
	v, err := t.Parse(d)
	if err != nil {
		return err
	}
	defer t.Builder.Dispose(v)
	return t.Mapper().Deserialize(v, dst)
}

// Run returns a copy of v in which the $[expr] expressions embedded in
// strings are replaced by their results. Expressions see the document as
// "doc" together with t.Env.
func (t *Tool) Run(v *value.Value) (*value.Value, error) {
	env := eval.DocEnv(v)
	maps.Copy(env, t.Env)
	res := t.Builder.DeepCopy(v)
	if err := eval.Expand(res, env); err != nil {
		t.Builder.Dispose(res)
		return nil, err
	}
	return res, nil
}
