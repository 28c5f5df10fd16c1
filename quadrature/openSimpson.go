package quadrature

import "fmt"

const openSimpsonMinSegments = 4

// planOpenSimpson never samples a or b. It applies composite Simpson to the
// interior points x1..x(n-1), so n must be even and at least 4; other values
// are rounded up and the correction is noted.
func planOpenSimpson(a, b float64, n int) (*plan, error) {
	if err := checkSegments(n); err != nil {
		return nil, err
	}
	adjusted := n
	var notes []string
	if adjusted%2 != 0 {
		adjusted++
		notes = append(notes, fmt.Sprintf("Note: n adjusted from %d to %d to keep the even parity the method requires.", n, adjusted))
	}
	if adjusted < openSimpsonMinSegments {
		notes = append(notes, fmt.Sprintf("Note: n adjusted from %d to %d, the minimum the method requires.", adjusted, openSimpsonMinSegments))
		adjusted = openSimpsonMinSegments
	}
	if err := checkSegments(adjusted); err != nil {
		return nil, err
	}

	p := newPlan(a, b, adjusted, adjusted-1)
	p.notes = notes
	p.normText = "h/3"
	p.formula = "(h/3)[f(x1) + 4f(x2) + 2f(x3) + 4f(x4) + ... + 4f(x(n-2)) + f(x(n-1))]"
	for i := 1; i < adjusted; i++ {
		coef := 2.0
		switch {
		case i == 1 || i == adjusted-1:
			coef = 1
		case i%2 == 0:
			coef = 4
		}
		p.add(i, a+float64(i)*p.step, coef)
	}
	first, last := p.xs[0], p.xs[len(p.xs)-1]
	p.extra = []string{
		fmt.Sprintf("x1 = a + h = %s", formatNumber(first)),
		fmt.Sprintf("x(n-1) = b - h = %s", formatNumber(last)),
	}
	return p, nil
}
