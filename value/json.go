package value

import (
	"bytes"
	"math"

	json "github.com/goccy/go-json"
)

// MarshalJSON writes v as compact plain JSON with members in document
// order. Of duplicate keys the first one is written. NaN and infinities,
// which JSON cannot represent, are written as null.
func (v *Value) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := writeJSON(buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, v *Value) error {
	if v == nil {
		buf.WriteString("null")
		return nil
	}
	switch v.Type {
	case ArrayType:
		buf.WriteByte('[')
		for i, e := range v.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, e); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	case ObjectType:
		buf.WriteByte('{')
		seen := make(map[string]bool, len(v.Keys))
		for i, e := range v.Values {
			k := v.Keys[i].Name
			if seen[k] {
				continue
			}
			if len(seen) > 0 {
				buf.WriteByte(',')
			}
			seen[k] = true
			d, err := json.Marshal(k)
			if err != nil {
				return err
			}
			buf.Write(d)
			buf.WriteByte(':')
			if err := writeJSON(buf, e); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil
	case FloatType:
		if math.IsNaN(v.Float) || math.IsInf(v.Float, 0) {
			buf.WriteString("null")
			return nil
		}
	}
	d, err := json.Marshal(ToPlain(v))
	if err != nil {
		return err
	}
	buf.Write(d)
	return nil
}
