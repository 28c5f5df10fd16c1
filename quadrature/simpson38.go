package quadrature

// planSimpson38 is the single-panel rule over x0..x3 with h = (b-a)/3.
func planSimpson38(a, b float64) *plan {
	const n = 3
	p := newPlan(a, b, n, n+1)
	p.normText = "3h/8"
	p.formula = "(3h/8)[f(x0) + 3f(x1) + 3f(x2) + f(x3)]"
	for i, coef := range []float64{1, 3, 3, 1} {
		p.add(i, gridPoint(a, b, p.step, i, n), coef)
	}
	return p
}
