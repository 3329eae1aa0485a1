// Package json5 ties the JSON5 packages together behind a Tool holding a
// builder, a mapping registry and parse, encode and mapping options.
//
// # Usage
//
//	t := json5.DefaultTool()
//	v, err := t.Parse(data)
//	...
//	out, err := t.Format(data)
//
// Besides JSON5 the Tool converts from and to plain JSON and YAML, and
// applies RFC 6902 JSON patches and RFC 7396 merge patches while keeping
// the comments and formatting of the patched document.
//
// # Related Packages
//
//   - github.com/signadot/json5-format/go-json5/value - Value model and builder
//   - github.com/signadot/json5-format/go-json5/parse - Parser
//   - github.com/signadot/json5-format/go-json5/encode - Pretty-printer
//   - github.com/signadot/json5-format/go-json5/json5map - Go data mapping
package json5
