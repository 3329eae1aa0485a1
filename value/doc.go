// Package value provides the in-memory representation of JSON5 documents.
//
// A [Value] carries its data together with the formatting it was written
// with: quote styles, number literal flags, container layout and
// comments. Values are created through a [Builder], whose [Allocator]
// decides how node storage is obtained and released.
//
// # Comments
//
// Each value owns an ordered list of comments. Line and block comments
// precede the value; a trailing comment, written on the same line after
// the value, is always last in the list. Comments before the closing
// bracket of a container are kept in Inner, and comments following the
// root value in Tail.
//
// # Accessors
//
// The As accessors return a [*ConversionError] when a value does not
// hold the requested kind of data. The Or accessors absorb that error
// and return the supplied default instead.
package value
