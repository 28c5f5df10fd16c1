package quadrature

import (
	"fmt"
	"math"
	"strconv"

	"github.com/robbyt/go-polyquad/platform/calcerr"
)

// plan is a rule's layout for one interval: where to sample and how to
// weight each sample.
type plan struct {
	segments int
	step     float64
	norm     float64
	normText string
	formula  string
	notes    []string
	extra    []string
	indices  []int
	xs       []float64
	coefs    []float64
}

func (p *plan) add(index int, x, coef float64) {
	p.indices = append(p.indices, index)
	p.xs = append(p.xs, x)
	p.coefs = append(p.coefs, coef)
}

func newPlan(a, b float64, segments, points int) *plan {
	return &plan{
		segments: segments,
		step:     (b - a) / float64(segments),
		indices:  make([]int, 0, points),
		xs:       make([]float64, 0, points),
		coefs:    make([]float64, 0, points),
	}
}

// gridPoint returns x_i = a + i*h, pinning the last closed point to b.
func gridPoint(a, b, h float64, i, n int) float64 {
	if i == n {
		return b
	}
	return a + float64(i)*h
}

func (k Kind) plan(a, b float64, n int) (*plan, error) {
	if err := checkBounds(a, b); err != nil {
		return nil, err
	}

	var (
		p   *plan
		err error
	)
	switch k {
	case Trapezoidal:
		p, err = planTrapezoidal(a, b, n)
	case Simpson13:
		p = planSimpson13(a, b)
	case Simpson38:
		p = planSimpson38(a, b)
	case OpenSimpson:
		p, err = planOpenSimpson(a, b, n)
	case Boole:
		p, err = planBoole(a, b, n)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, uint8(k))
	}
	if err != nil {
		return nil, err
	}
	p.norm = normFor(k, p.step)
	return p, nil
}

func normFor(k Kind, h float64) float64 {
	switch k {
	case Trapezoidal:
		return h / 2
	case Simpson13, OpenSimpson:
		return h / 3
	case Simpson38:
		return 3 * h / 8
	case Boole:
		return 2 * h / 45
	}
	return 0
}

func checkBounds(a, b float64) error {
	for _, v := range []float64{a, b} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return calcerr.Newf(calcerr.ErrValidation, calcerr.NoPosition, "integration limits must be finite, got [%g, %g]", a, b)
		}
	}
	return nil
}

func checkSegments(n int) error {
	if n > MaxSegments {
		return calcerr.Newf(calcerr.ErrValidation, calcerr.NoPosition, "n = %d exceeds the maximum of %d", n, MaxSegments)
	}
	return nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
