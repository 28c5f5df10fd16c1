package internal

import (
	"fmt"

	govaluateLib "github.com/Knetic/govaluate"

	"github.com/robbyt/go-polyquad/engines/native/ast"
	"github.com/robbyt/go-polyquad/platform/calcerr"
)

var unaryFuncs = []ast.Func{
	ast.FuncSin,
	ast.FuncCos,
	ast.FuncTan,
	ast.FuncSqrt,
	ast.FuncLog,
	ast.FuncExp,
	ast.FuncAbs,
}

// Functions returns the function table for a compiled expression. Each entry
// applies the same math as the native engine, so domain errors match.
func Functions() map[string]govaluateLib.ExpressionFunction {
	funcs := make(map[string]govaluateLib.ExpressionFunction, len(unaryFuncs)+2)
	for _, fn := range unaryFuncs {
		funcs[fn.String()] = unary(fn)
	}
	funcs["root"] = binary("root", ast.Root)
	funcs["div"] = binary("div", func(l, r float64) (float64, error) {
		if r == 0 {
			return 0, calcerr.Eval("division by zero")
		}
		return l / r, nil
	})
	return funcs
}

func binary(name string, op func(l, r float64) (float64, error)) govaluateLib.ExpressionFunction {
	return func(args ...any) (any, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("%s takes 2 arguments, got %d", name, len(args))
		}
		l, err := ToFloat(args[0])
		if err != nil {
			return nil, err
		}
		r, err := ToFloat(args[1])
		if err != nil {
			return nil, err
		}
		return op(l, r)
	}
}

func unary(fn ast.Func) govaluateLib.ExpressionFunction {
	return func(args ...any) (any, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("%s takes 1 argument, got %d", fn, len(args))
		}
		arg, err := ToFloat(args[0])
		if err != nil {
			return nil, err
		}
		return fn.Apply(arg)
	}
}

// ToFloat converts a govaluate result to float64.
func ToFloat(v any) (float64, error) {
	switch v := v.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	}
	return 0, fmt.Errorf("got %T, want float64", v)
}

// Params supplies x to a compiled expression without allocating a map.
type Params float64

// Get implements govaluate.Parameters.
func (p Params) Get(name string) (any, error) {
	if name != ast.Variable {
		return nil, fmt.Errorf("no parameter %q", name)
	}
	return float64(p), nil
}
