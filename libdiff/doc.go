// Package libdiff compares JSON5 documents.
//
// # Usage
//
//	// Structural changes between two values, by path
//	for _, c := range libdiff.Diff(from, to) {
//		fmt.Println(c)
//	}
//
//	// Line diff of two texts
//	fmt.Print(libdiff.Text(oldText, newText))
//
// Diff compares data only: comments, quoting and number formats are not
// changes.
//
// # Related Packages
//
//   - github.com/signadot/json5-format/go-json5/value - Value model
package libdiff
