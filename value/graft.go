package value

// Graft copies comments and formatting from src onto the nodes of dst
// found at the same place in the tree. It is used to carry the look of a
// document over to a modified copy of its data. Nodes are matched by
// array index and by first occurrence of an object key; formatting is
// only copied between nodes of the same type, and number flags only when
// the number is unchanged.
func Graft(dst, src *Value) {
	if dst == nil || src == nil {
		return
	}
	dst.Comments = cloneComments(src.Comments)
	dst.Tail = cloneComments(src.Tail)
	if dst.Type != src.Type {
		return
	}
	switch dst.Type {
	case StringType:
		dst.Quote = src.Quote
	case IntType, UintType, FloatType:
		if Equal(dst, src) {
			dst.Format = src.Format
		}
	case ArrayType:
		dst.Layout = src.Layout
		dst.Inner = cloneComments(src.Inner)
		for i := range min(len(dst.Values), len(src.Values)) {
			Graft(dst.Values[i], src.Values[i])
		}
	case ObjectType:
		dst.Layout = src.Layout
		dst.Inner = cloneComments(src.Inner)
		for i := range dst.Keys {
			j := src.KeyIndex(dst.Keys[i].Name)
			if j < 0 {
				continue
			}
			dst.Keys[i].Quote = src.Keys[j].Quote
			Graft(dst.Values[i], src.Values[j])
		}
	}
}
