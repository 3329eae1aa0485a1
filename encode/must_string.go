package encode

import (
	"bytes"
	"strings"

	"github.com/signadot/json5-format/go-json5/value"
)

// MustString encodes v and trims surrounding space, panicking on error.
func MustString(v *value.Value, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(v, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
