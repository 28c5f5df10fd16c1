package quadrature

import "github.com/robbyt/go-polyquad/platform/calcerr"

// planTrapezoidal samples all n+1 grid points with weights 1, 2, ..., 2, 1.
// n is never corrected.
func planTrapezoidal(a, b float64, n int) (*plan, error) {
	if n < 1 {
		return nil, calcerr.Newf(calcerr.ErrValidation, calcerr.NoPosition, "trapezoidal rule requires n >= 1, got %d", n)
	}
	if err := checkSegments(n); err != nil {
		return nil, err
	}

	p := newPlan(a, b, n, n+1)
	p.normText = "h/2"
	p.formula = "(h/2)[f(x0) + 2f(x1) + 2f(x2) + ... + 2f(x(n-1)) + f(xn)]"
	for i := 0; i <= n; i++ {
		coef := 2.0
		if i == 0 || i == n {
			coef = 1
		}
		p.add(i, gridPoint(a, b, p.step, i, n), coef)
	}
	return p, nil
}
