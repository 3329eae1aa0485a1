// Package token implements the lexical layer of JSON5: a scanner over an
// in-memory buffer which tracks line and column, and the scanning of
// comments, strings, numbers and identifiers.
//
// The scanner counts the line breaks it skips between tokens separately
// from those consumed inside comments, which lets the parser decide
// whether a container was written on a single line.
package token
