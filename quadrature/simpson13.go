package quadrature

// planSimpson13 is the single-panel rule over x0, x1, x2 with h = (b-a)/2.
func planSimpson13(a, b float64) *plan {
	const n = 2
	p := newPlan(a, b, n, n+1)
	p.normText = "h/3"
	p.formula = "(h/3)[f(x0) + 4f(x1) + f(x2)]"
	for i, coef := range []float64{1, 4, 1} {
		p.add(i, gridPoint(a, b, p.step, i, n), coef)
	}
	return p
}
