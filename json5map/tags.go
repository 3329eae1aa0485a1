package json5map

import (
	"fmt"
	"strings"
)

// ParseStructTag parses a struct tag value into its key=value pairs and
// flags, which map to "".
// Handles comma-separated values: `json5:"key1=value1,key2=value2,flag"`
// Supports quoted values with commas or spaces: `json5:"comment='a, b'"`
func ParseStructTag(tag string) (map[string]string, error) {
	result := make(map[string]string)
	if tag == "" {
		return result, nil
	}

	var parts []string
	var current strings.Builder
	inSingleQuote := false
	inDoubleQuote := false

	for i := 0; i < len(tag); i++ {
		char := tag[i]

		switch {
		case char == '\'' && !inDoubleQuote:
			inSingleQuote = !inSingleQuote
			current.WriteByte(char)
		case char == '"' && !inSingleQuote:
			inDoubleQuote = !inDoubleQuote
			current.WriteByte(char)
		case char == ',' && !inSingleQuote && !inDoubleQuote:
			if part := strings.TrimSpace(current.String()); part != "" {
				parts = append(parts, part)
			}
			current.Reset()
		default:
			current.WriteByte(char)
		}
	}
	if inSingleQuote || inDoubleQuote {
		return nil, fmt.Errorf("%w: unterminated quote in %q", ErrTag, tag)
	}
	if part := strings.TrimSpace(current.String()); part != "" {
		parts = append(parts, part)
	}

	for _, part := range parts {
		idx := strings.Index(part, "=")
		if idx < 0 {
			result[part] = ""
			continue
		}
		key := strings.TrimSpace(part[:idx])
		if key == "" {
			return nil, fmt.Errorf("%w: empty key in %q", ErrTag, part)
		}
		result[key] = unquoteValue(strings.TrimSpace(part[idx+1:]))
	}
	return result, nil
}

// unquoteValue removes surrounding single or double quotes from a value.
func unquoteValue(value string) string {
	if len(value) >= 2 {
		switch {
		case value[0] == '\'' && value[len(value)-1] == '\'',
			value[0] == '"' && value[len(value)-1] == '"':
			return value[1 : len(value)-1]
		}
	}
	return value
}
