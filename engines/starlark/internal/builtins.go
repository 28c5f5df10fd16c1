package internal

import (
	"fmt"

	starlarkmath "go.starlark.net/lib/math"
	starlarkLib "go.starlark.net/starlark"

	"github.com/robbyt/go-polyquad/engines/native/ast"
)

var rootBuiltin = starlarkLib.NewBuiltin("root", root)

// Predeclared returns the names visible to a compiled expression.
func Predeclared() starlarkLib.StringDict {
	return starlarkLib.StringDict{
		"math": starlarkmath.Module,
		"root": rootBuiltin,
	}
}

// root(n, v) with the same semantics as the native engine.
func root(
	_ *starlarkLib.Thread,
	b *starlarkLib.Builtin,
	args starlarkLib.Tuple,
	kwargs []starlarkLib.Tuple,
) (starlarkLib.Value, error) {
	var n, v starlarkLib.Value
	if err := starlarkLib.UnpackPositionalArgs(b.Name(), args, kwargs, 2, &n, &v); err != nil {
		return nil, err
	}
	index, err := ToFloat(n)
	if err != nil {
		return nil, err
	}
	radicand, err := ToFloat(v)
	if err != nil {
		return nil, err
	}
	r, err := ast.Root(index, radicand)
	if err != nil {
		return nil, err
	}
	return starlarkLib.Float(r), nil
}

// ToFloat converts a Starlark number to float64.
func ToFloat(v starlarkLib.Value) (float64, error) {
	switch v := v.(type) {
	case starlarkLib.Float:
		return float64(v), nil
	case starlarkLib.Int:
		return float64(v.Float()), nil
	case nil:
		return 0, fmt.Errorf("got nil, want float or int")
	}
	return 0, fmt.Errorf("got %s, want float or int", v.Type())
}
