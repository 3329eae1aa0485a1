package libdiff

import (
	"github.com/signadot/json5-format/go-json5/value"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// seq diffs two sequences of named values: members with equal names are
// compared, the others inserted or deleted. When pair is set, a deletion
// directly followed by an insertion compares the values pairwise instead.
func (d *differ) seq(from, to []*value.Value, fromNames, toNames []string, pair bool, elemPath func(i int, name string) string) {
	fieldMap := map[string]rune{}
	fromRunes := mapNamesTo(fieldMap, fromNames)
	toRunes := mapNamesTo(fieldMap, toNames)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)
	fi, ti := 0, 0
	for i := 0; i < len(diffs); i++ {
		diff := &diffs[i]
		n := len([]rune(diff.Text))
		switch diff.Type {
		case diffpatch.DiffEqual:
			for range n {
				d.diff(elemPath(ti, toNames[ti]), from[fi], to[ti])
				fi++
				ti++
			}
		case diffpatch.DiffDelete:
			m := 0
			if pair && i+1 < len(diffs) && diffs[i+1].Type == diffpatch.DiffInsert {
				m = len([]rune(diffs[i+1].Text))
				i++
			}
			for j := range max(n, m) {
				switch {
				case j < n && j < m:
					d.diff(elemPath(ti, toNames[ti]), from[fi], to[ti])
					fi++
					ti++
				case j < n:
					d.add(Delete, elemPath(fi, fromNames[fi]), from[fi], nil)
					fi++
				default:
					d.add(Insert, elemPath(ti, toNames[ti]), nil, to[ti])
					ti++
				}
			}
		case diffpatch.DiffInsert:
			for range n {
				d.add(Insert, elemPath(ti, toNames[ti]), nil, to[ti])
				ti++
			}
		}
	}
}

func mapNamesTo(m map[string]rune, names []string) []rune {
	rs := make([]rune, len(names))
	for i, f := range names {
		r, ok := m[f]
		if !ok {
			r = rune(len(m))
			m[f] = r
		}
		rs[i] = r
	}
	return rs
}

func (d *differ) object(path string, from, to *value.Value) {
	d.seq(from.Values, to.Values, keyNames(from), keyNames(to), false, func(_ int, name string) string {
		return value.KeyPath(path, name)
	})
}

func keyNames(obj *value.Value) []string {
	res := make([]string, len(obj.Keys))
	for i := range obj.Keys {
		res[i] = obj.Keys[i].Name
	}
	return res
}
