// Package internal holds the pieces shared by the Starlark compiler and
// evaluator: the rendering dialect, the predeclared names and value
// conversion.
package internal

import (
	"strconv"
	"strings"

	"github.com/robbyt/go-polyquad/engines/native/ast"
)

// Dialect renders a program as a Starlark expression over x. Starlark has no
// power operator, so "^" becomes math.pow. Every literal is a float so that
// "/" never performs integer division.
var Dialect = ast.Dialect{
	Number:       formatFloat,
	Constant:     func(name string) string { return "math." + name },
	Call:         func(fn ast.Func, arg string) string { return "math." + mathName(fn) + "(" + arg + ")" },
	Power:        func(l, r string) string { return "math.pow(" + l + ", " + r + ")" },
	Parenthesize: true,
}

func mathName(fn ast.Func) string {
	if fn == ast.FuncAbs {
		return "fabs"
	}
	return fn.String()
}

func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
