// Package parse parses JSON5 text into values.
//
// # Usage
//
//	b := value.NewBuilder(nil)
//	v, err := parse.Parse(b, []byte(`{name: 'alice', age: 30,}`))
//	if err != nil {
//	    return err
//	}
//
// Parsing keeps everything needed to print the document back the way it
// was written: quote styles, number literal flags, trailing commas,
// whether containers were written on a single line, and comments.
//
// # Comments
//
// A comment is attached as a leading comment to the value which follows
// it. Comments written before or after the colon of an object member
// lead its value. A comment following a value on the same line, or
// following the comma after it, becomes the value's trailing comment.
// Comments with no value to lead are kept in the Inner comments of the
// enclosing container, or in the Tail comments of the root.
//
// # Related Packages
//
//   - github.com/signadot/json5-format/go-json5/value - value model
//   - github.com/signadot/json5-format/go-json5/encode - printing values
//   - github.com/signadot/json5-format/go-json5/token - scanning
package parse
