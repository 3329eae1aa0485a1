package debug

import (
	"bytes"
	"fmt"
	"os"

	"github.com/signadot/json5-format/go-json5/encode"
	"github.com/signadot/json5-format/go-json5/value"

	json "github.com/goccy/go-json"
)

// Logf writes to stderr. Values among args are rendered as JSON5 and
// plain Go data as indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *value.Value:
			buf := bytes.NewBuffer(nil)
			if err := encode.Encode(x, buf); err != nil {
				args[i] = fmt.Sprintf("[raw *value.Value] %+v", x)
				continue
			}
			args[i] = buf.String()
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
