package eval

import (
	"fmt"
	"os"

	"github.com/signadot/json5-format/go-json5/debug"
	"github.com/signadot/json5-format/go-json5/value"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

type Env map[string]any

// DocEnv returns an Env binding "doc" to the plain data of doc.
func DocEnv(doc *value.Value) Env {
	return Env{"doc": value.ToPlain(doc)}
}

func exprOpts(doc *value.Value) []expr.Option {
	if doc == nil {
		return nil
	}
	return []expr.Option{
		expr.Function("getpath", func(params ...any) (any, error) {
			res, err := doc.GetPath(params[0].(string))
			if err != nil {
				return nil, err
			}
			return value.ToPlain(res), nil
		},
			new(func(string) any)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}

// Compile compiles src with the functions bound to doc, which may be nil.
func Compile(src string, doc *value.Value, opts ...expr.Option) (*vm.Program, error) {
	opts = append(exprOpts(doc), opts...)
	prg, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("error compiling %q: %w", src, err)
	}
	return prg, nil
}

// Eval compiles and runs src. When env is nil, DocEnv(doc) is used.
func Eval(src string, doc *value.Value, env Env) (any, error) {
	prg, err := Compile(src, doc)
	if err != nil {
		return nil, err
	}
	if env == nil {
		env = DocEnv(doc)
	}
	res, err := vm.Run(prg, map[string]any(env))
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", src, err)
	}
	if debug.Eval() {
		debug.Logf("eval %q gave %#v\n", src, res)
	}
	return res, nil
}

// Predicate is a compiled boolean expression. Undefined variables
// evaluate to nil rather than failing compilation.
type Predicate struct {
	Src string
	prg *vm.Program
}

func NewPredicate(src string) (*Predicate, error) {
	prg, err := expr.Compile(src, expr.AsBool(), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("error compiling predicate %q: %w", src, err)
	}
	return &Predicate{Src: src, prg: prg}, nil
}

func (p *Predicate) Test(env Env) (bool, error) {
	res, err := vm.Run(p.prg, map[string]any(env))
	if err != nil {
		return false, fmt.Errorf("error evaluating predicate %q: %w", p.Src, err)
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("predicate %q gave %T", p.Src, res)
	}
	return b, nil
}
