package ast

import (
	"fmt"
	"math"

	"github.com/robbyt/go-polyquad/platform/calcerr"
)

// Eval computes the program for the given value of x.
func (p *Program) Eval(x float64) (float64, error) {
	var buf [32]float64
	stack := buf[:0]
	if p.depth > len(buf) {
		stack = make([]float64, 0, p.depth)
	}

	for _, n := range p.nodes {
		switch n.Op {
		case OpNumber, OpConstant:
			stack = append(stack, n.Value)

		case OpVariable:
			stack = append(stack, x)

		case OpNeg:
			stack[len(stack)-1] = -stack[len(stack)-1]

		case OpCall:
			top := len(stack) - 1
			v, err := n.Func.Apply(stack[top])
			if err != nil {
				return 0, err
			}
			stack[top] = v

		default:
			top := len(stack) - 1
			l, r := stack[top-1], stack[top]
			v, err := applyBinary(n.Op, l, r)
			if err != nil {
				return 0, err
			}
			stack = stack[:top]
			stack[top-1] = v
		}
	}

	if len(stack) != 1 {
		return 0, fmt.Errorf("malformed program: %d values left on stack", len(stack))
	}
	return stack[0], nil
}

// Apply evaluates the function at arg. A non-finite result for a finite
// argument is reported as an evaluation error.
func (fn Func) Apply(arg float64) (float64, error) {
	impl, ok := funcImpls[fn]
	if !ok {
		return 0, calcerr.Newf(calcerr.ErrEval, calcerr.NoPosition, "unknown function %s", fn)
	}
	v := impl(arg)
	if isFinite(arg) && !isFinite(v) {
		return 0, calcerr.Newf(calcerr.ErrEval, calcerr.NoPosition, "%s is undefined for %g", fn, arg)
	}
	return v, nil
}

func applyBinary(op Op, l, r float64) (float64, error) {
	switch op {
	case OpAdd:
		return l + r, nil
	case OpSub:
		return l - r, nil
	case OpMul:
		return l * r, nil
	case OpDiv:
		if r == 0 {
			return 0, calcerr.Eval("division by zero")
		}
		return l / r, nil
	case OpPow:
		return math.Pow(l, r), nil
	case OpRoot:
		return Root(l, r)
	}
	return 0, fmt.Errorf("unsupported operation %s", op)
}

// Root returns the real n-th root of v, keeping the sign of v so that odd
// roots of negative numbers are defined.
func Root(n, v float64) (float64, error) {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, calcerr.Newf(calcerr.ErrEval, calcerr.NoPosition, "root index must be finite, got %g", n)
	}
	if n <= 0 {
		return 0, calcerr.Newf(calcerr.ErrEval, calcerr.NoPosition, "root index must be positive, got %g", n)
	}
	if v < 0 && math.Mod(n, 2) == 0 {
		return 0, calcerr.Eval("cannot take an even root of a negative number")
	}
	switch n {
	case 1:
		return v, nil
	case 2:
		return math.Sqrt(v), nil
	case 3:
		return math.Cbrt(v), nil
	}
	return math.Copysign(math.Pow(math.Abs(v), 1/n), v), nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
