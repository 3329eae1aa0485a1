package json5

import (
	"fmt"

	"github.com/signadot/json5-format/go-json5/debug"
	"github.com/signadot/json5-format/go-json5/value"

	jsonpatch "github.com/evanphx/json-patch"
)

// Patch applies the RFC 6902 JSON patch p to doc and returns the patched
// document. Members keep their comments, their formatting and their place
// in the document; added members come after the existing ones.
func (t *Tool) Patch(doc *value.Value, p []byte) (*value.Value, error) {
	ops, err := jsonpatch.DecodePatch(p)
	if err != nil {
		return nil, fmt.Errorf("decode patch: %w", err)
	}
	return t.patch(doc, "patch", ops.Apply)
}

// MergePatch applies the RFC 7396 merge patch p to doc, keeping the look
// of doc as Patch does.
func (t *Tool) MergePatch(doc *value.Value, p []byte) (*value.Value, error) {
	return t.patch(doc, "merge patch", func(d []byte) ([]byte, error) {
		return jsonpatch.MergePatch(d, p)
	})
}

func (t *Tool) patch(doc *value.Value, what string, apply func([]byte) ([]byte, error)) (*value.Value, error) {
	d, err := doc.MarshalJSON()
	if err != nil {
		return nil, err
	}
	out, err := apply(d)
	if err != nil {
		return nil, fmt.Errorf("apply %s: %w", what, err)
	}
	if debug.Patch() {
		debug.Logf("%s result %s\n", what, out)
	}
	res, err := t.Parse(out)
	if err != nil {
		return nil, err
	}
	value.StripFormat(res)
	reorder(res, doc)
	value.Graft(res, doc)
	return res, nil
}

// reorder puts the members of the objects below dst in the order of the
// same members in src. Members src lacks go last and get the default key
// quoting.
func reorder(dst, src *value.Value) {
	if dst == nil {
		return
	}
	if src == nil || src.Type != dst.Type {
		src = &value.Value{Type: dst.Type}
	}
	switch dst.Type {
	case value.ArrayType:
		for i, e := range dst.Values {
			reorder(e, src.Index(i))
		}
	case value.ObjectType:
		keys := make([]value.Key, 0, len(dst.Keys))
		vals := make([]*value.Value, 0, len(dst.Values))
		used := make([]bool, len(dst.Keys))
		for _, k := range src.Keys {
			i := dst.KeyIndex(k.Name)
			if i < 0 || used[i] {
				continue
			}
			used[i] = true
			keys = append(keys, dst.Keys[i])
			vals = append(vals, dst.Values[i])
		}
		for i, k := range dst.Keys {
			if used[i] {
				continue
			}
			k.Quote = value.DefaultKeyQuote(k.Name)
			keys = append(keys, k)
			vals = append(vals, dst.Values[i])
		}
		copy(dst.Keys, keys)
		copy(dst.Values, vals)
		for i, e := range dst.Values {
			reorder(e, src.Get(dst.Keys[i].Name))
		}
	}
}
