// Package json5map converts between Go data and JSON5 values.
//
// Structs are mapped through records: ordered field descriptors with a
// key, a getter, a setter and a Policy. Records are registered
// explicitly, usually by code generated with json5-gen, or built on
// first use from `json5` struct tags:
//
//	type Point struct {
//		_ struct{} `json5:"kind=point"`
//		X int      `json5:"name=x,essential,int=hex"`
//		Y int      `json5:"name=y,comment='vertical'"`
//		Z int      `json5:"ignore"`
//	}
//
// Interface types become tagged unions when registered with their
// alternatives. A record alternative may carry a kind, a key and value
// pair written first in its object; other alternatives are told apart by
// the type of the value, so a union accepts at most one alternative per
// category of data (integral, float, bool, string, binary, array, map).
// Unkinded record alternatives are told apart by their essential keys,
// which must differ from one alternative to the next.
//
// A value which matches no alternative leaves the union as it was.
//
// Neither Registry nor Mapper copy Go data they are given; a Mapper is
// safe for concurrent use once its records are registered.
package json5map
