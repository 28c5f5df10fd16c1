// Package platform defines the contract every expression engine fulfils.
package platform

import (
	"math"

	"github.com/robbyt/go-polyquad/platform/calcerr"
)

// Evaluator evaluates a compiled single-variable expression.
//
// The expression is compiled once when the evaluator is created; Eval only
// runs the compiled form, so calling it thousands of times per integral is
// cheap. Implementations are safe for concurrent use.
type Evaluator interface {
	// Eval returns the value of the expression at x. Lex and parse problems
	// are reported when the evaluator is built; Eval fails only with
	// evaluation errors such as division by zero.
	Eval(x float64) (float64, error)
}

// Func adapts an ordinary function to the Evaluator interface.
type Func func(x float64) (float64, error)

// Eval calls f(x).
func (f Func) Eval(x float64) (float64, error) {
	return f(x)
}

// Finite returns v, or an evaluation error when v is NaN or infinite.
func Finite(x, v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, calcerr.Newf(calcerr.ErrEval, calcerr.NoPosition, "expression is not finite at x = %g", x)
	}
	return v, nil
}
