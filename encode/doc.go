// Package encode prints values as JSON5 text.
//
// Printing follows the formatting recorded in each value: quote styles,
// number literal flags, trailing commas, single line layout and
// comments. Options choose the indentation unit, the line terminator and
// which characters are escaped, or switch to plain JSON output.
//
//	s := encode.ToPrettyString(v, "  ", "\n")
package encode
