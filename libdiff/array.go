package libdiff

import (
	"github.com/signadot/json5-format/go-json5/value"
)

// array matches equal elements and compares the others in place.
func (d *differ) array(path string, from, to *value.Value) {
	d.seq(from.Values, to.Values, texts(from), texts(to), true, func(i int, _ string) string {
		return value.IndexPath(path, i)
	})
}

func texts(arr *value.Value) []string {
	res := make([]string, len(arr.Values))
	for i, e := range arr.Values {
		res[i] = plain(e)
	}
	return res
}

// keyed reports whether every element of arr is an object with a leaf
// value under key, and no two share it.
func keyed(arr *value.Value, key string) bool {
	seen := map[string]bool{}
	for _, e := range arr.Values {
		if e.Type != value.ObjectType {
			return false
		}
		k := e.Get(key)
		if k == nil || !k.Type.IsLeaf() || seen[plain(k)] {
			return false
		}
		seen[plain(k)] = true
	}
	return true
}

func (d *differ) arrayByKey(path string, from, to *value.Value) {
	names := func(arr *value.Value) []string {
		res := make([]string, len(arr.Values))
		for i, e := range arr.Values {
			res[i] = plain(e.Get(d.byKey))
		}
		return res
	}
	d.seq(from.Values, to.Values, names(from), names(to), false, func(i int, _ string) string {
		return value.IndexPath(path, i)
	})
}
