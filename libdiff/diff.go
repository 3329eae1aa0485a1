package libdiff

import (
	"fmt"

	"github.com/signadot/json5-format/go-json5/value"
)

type Op int

const (
	Insert Op = iota
	Delete
	Replace
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "+"
	case Delete:
		return "-"
	default:
		return "~"
	}
}

// Change is one difference. Path locates From in the old document for
// deletions and To in the new one otherwise.
type Change struct {
	Op   Op
	Path string
	From *value.Value
	To   *value.Value
}

func (c Change) String() string {
	p := c.Path
	if p == "" {
		p = "."
	}
	switch c.Op {
	case Insert:
		return fmt.Sprintf("%s %s: %s", c.Op, p, plain(c.To))
	case Delete:
		return fmt.Sprintf("%s %s: %s", c.Op, p, plain(c.From))
	default:
		return fmt.Sprintf("%s %s: %s -> %s", c.Op, p, plain(c.From), plain(c.To))
	}
}

func plain(v *value.Value) string {
	d, err := v.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("<%v>", err)
	}
	return string(d)
}

type DiffOption func(*differ)

// ArraysByKey matches the elements of arrays of objects by the value
// under key instead of by position, when every element has one.
func ArraysByKey(key string) DiffOption {
	return func(d *differ) { d.byKey = key }
}

type differ struct {
	byKey   string
	changes []Change
}

// Diff returns the changes turning from into to.
func Diff(from, to *value.Value, opts ...DiffOption) []Change {
	d := &differ{}
	for _, opt := range opts {
		opt(d)
	}
	d.diff("", from, to)
	return d.changes
}

func (d *differ) add(op Op, path string, from, to *value.Value) {
	d.changes = append(d.changes, Change{Op: op, Path: path, From: from, To: to})
}

func (d *differ) diff(path string, from, to *value.Value) {
	switch {
	case from.Type.IsLeaf() && to.Type.IsLeaf():
		if !value.Equal(from, to) {
			d.add(Replace, path, from, to)
		}
	case from.Type != to.Type:
		d.add(Replace, path, from, to)
	case from.Type == value.ObjectType:
		d.object(path, from, to)
	case d.byKey != "" && keyed(from, d.byKey) && keyed(to, d.byKey):
		d.arrayByKey(path, from, to)
	default:
		d.array(path, from, to)
	}
}
