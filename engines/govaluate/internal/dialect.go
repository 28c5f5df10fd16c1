// Package internal holds the govaluate rendering dialect and the function
// table registered with every compiled expression.
package internal

import (
	"strconv"

	"github.com/robbyt/go-polyquad/engines/native/ast"
)

// Dialect renders a program for govaluate. Constants are inlined as
// literals; "x" stays a parameter. Division goes through div so a zero
// divisor fails instead of yielding an infinity that later terms absorb.
var Dialect = ast.Dialect{
	Number: formatFloat,
	Constant: func(name string) string {
		v, _ := ast.LookupConstant(name)
		return formatFloat(v)
	},
	Power:        func(l, r string) string { return l + " ** " + r },
	Divide:       func(l, r string) string { return "div(" + l + ", " + r + ")" },
	Parenthesize: true,
}

// govaluate's lexer does not read exponent notation.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
