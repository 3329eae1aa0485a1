// Package debug holds switches for diagnostic output, read once from the
// environment.
//
//	J5_DEBUG_PARSE   parse failures
//	J5_DEBUG_MAP     mapping between values and Go data
//	J5_DEBUG_PATCH   patch application
//	J5_DEBUG_EVAL    expression evaluation
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Map   bool
	Patch bool
	Eval  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("J5_DEBUG_PARSE")
	d.Map = boolEnv("J5_DEBUG_MAP")
	d.Patch = boolEnv("J5_DEBUG_PATCH")
	d.Eval = boolEnv("J5_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Map() bool {
	return d.Map
}
func Patch() bool {
	return d.Patch
}
func Eval() bool {
	return d.Eval
}
