// Package eval evaluates expr-lang expressions against JSON5 documents.
//
// Expressions see the document as plain Go data under the name "doc",
// plus whatever else the caller puts in the Env. The functions
// getpath(path) and getenv(name) are available when a document is given.
// Strings may embed expressions as $[expr], which Expand replaces by the
// result.
package eval
