package value

// ToPlain returns the data of v as plain Go values: map[string]any,
// []any, int64, uint64, float64, string, bool and nil. Formatting and
// comments are dropped; of duplicate keys the first one wins.
func ToPlain(v *Value) any {
	if v == nil {
		return nil
	}
	switch v.Type {
	case BoolType:
		return v.Bool
	case IntType:
		return v.Int
	case UintType:
		return v.Uint
	case FloatType:
		return v.Float
	case StringType:
		return v.String
	case ArrayType:
		res := make([]any, len(v.Values))
		for i, e := range v.Values {
			res[i] = ToPlain(e)
		}
		return res
	case ObjectType:
		res := make(map[string]any, len(v.Values))
		for i, e := range v.Values {
			k := v.Keys[i].Name
			if _, ok := res[k]; ok {
				continue
			}
			res[k] = ToPlain(e)
		}
		return res
	}
	return nil
}

// StripFormat resets all comments and formatting below v to the plain
// JSON defaults: double quotes, decimal numbers, one member per line.
func StripFormat(v *Value) {
	if v == nil {
		return
	}
	v.Comments = nil
	v.Inner = nil
	v.Tail = nil
	v.Quote = DoubleQuote
	v.Format = NumberFormat{}
	v.Layout = Layout{}
	for i := range v.Keys {
		v.Keys[i].Quote = DoubleQuote
	}
	for _, e := range v.Values {
		StripFormat(e)
	}
}
