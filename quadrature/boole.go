package quadrature

import "fmt"

const booleMinSegments = 4

// planBoole applies Boole's rule on consecutive groups of four sub-intervals.
// n is rounded up to a multiple of 4. Interior points shared by two groups
// get weight 14, the rest of the pattern is 7, 32, 12, 32, 7.
func planBoole(a, b float64, n int) (*plan, error) {
	if err := checkSegments(n); err != nil {
		return nil, err
	}
	adjusted := n
	var notes []string
	switch {
	case adjusted < booleMinSegments:
		adjusted = booleMinSegments
		notes = append(notes, fmt.Sprintf("Note: n adjusted from %d to %d, the minimum the method requires.", n, adjusted))
	case adjusted%4 != 0:
		adjusted += 4 - adjusted%4
		notes = append(notes, fmt.Sprintf("Note: n adjusted from %d to %d, the next multiple of 4.", n, adjusted))
	}
	if err := checkSegments(adjusted); err != nil {
		return nil, err
	}

	p := newPlan(a, b, adjusted, adjusted+1)
	p.notes = notes
	p.normText = "2h/45"
	p.formula = "(2h/45)[7f(x0) + 32f(x1) + 12f(x2) + 32f(x3) + 14f(x4) + ... + 32f(x(n-1)) + 7f(xn)]"
	for i := 0; i <= adjusted; i++ {
		var coef float64
		switch {
		case i == 0 || i == adjusted:
			coef = 7
		case i%4 == 0:
			coef = 14
		case i%2 == 0:
			coef = 12
		default:
			coef = 32
		}
		p.add(i, gridPoint(a, b, p.step, i, adjusted), coef)
	}
	return p, nil
}
