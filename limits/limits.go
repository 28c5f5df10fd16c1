// Package limits resolves integration bounds. A bound may be a plain number
// or any constant expression the native grammar accepts, such as "pi",
// "2pi" or "root(3, 8)". Names are matched without regard to case.
package limits

import (
	"fmt"
	"math"
	"strings"

	"github.com/robbyt/go-polyquad/engines/native/parser"
	"github.com/robbyt/go-polyquad/platform/calcerr"
)

// Resolve evaluates a single bound. Every failure is a validation error; the
// underlying lex, parse or eval error stays reachable through errors.Is.
func Resolve(text string) (float64, error) {
	source := strings.ToLower(strings.TrimSpace(text))
	if source == "" {
		return 0, calcerr.Validation("limit is empty")
	}

	program, err := parser.Parse(source)
	if err != nil {
		return 0, calcerr.Newf(calcerr.ErrValidation, calcerr.NoPosition, "invalid limit %q", text).WithCause(err)
	}
	if program.UsesVariable() {
		return 0, calcerr.Newf(calcerr.ErrValidation, calcerr.NoPosition, "limit %q must not depend on x", text)
	}

	v, err := program.Eval(0)
	if err != nil {
		return 0, calcerr.Newf(calcerr.ErrValidation, calcerr.NoPosition, "cannot evaluate limit %q", text).WithCause(err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, calcerr.Newf(calcerr.ErrValidation, calcerr.NoPosition, "limit %q is not a finite number", text)
	}
	return v, nil
}

// ResolvePair resolves the lower and upper bound.
func ResolvePair(lower, upper string) (a, b float64, err error) {
	a, err = Resolve(lower)
	if err != nil {
		return 0, 0, fmt.Errorf("lower %w", err)
	}
	b, err = Resolve(upper)
	if err != nil {
		return 0, 0, fmt.Errorf("upper %w", err)
	}
	return a, b, nil
}
