package quadrature

import (
	"context"
	"fmt"
	"strings"

	"github.com/robbyt/go-polyquad/platform"
)

// Calculate returns the approximation of the integral of f over [a, b].
func (k Kind) Calculate(f platform.Evaluator, a, b float64, n int) (float64, error) {
	r, err := k.Details(f, a, b, n)
	if err != nil {
		return 0, err
	}
	return r.Value, nil
}

// Details applies the rule sequentially and returns the full trace.
func (k Kind) Details(f platform.Evaluator, a, b float64, n int) (*Result, error) {
	return k.DetailsContext(context.Background(), f, a, b, n, Sampler{})
}

// DetailsContext is Details with a sampler and a context that stops
// sampling when cancelled.
func (k Kind) DetailsContext(
	ctx context.Context,
	f platform.Evaluator,
	a, b float64,
	n int,
	sampler Sampler,
) (*Result, error) {
	if f == nil {
		return nil, fmt.Errorf("%s: function is nil", k)
	}
	p, err := k.plan(a, b, n)
	if err != nil {
		return nil, err
	}

	fx, err := sampler.sample(ctx, f, p.xs)
	if err != nil {
		return nil, err
	}

	iterations := make([]CoefficientIteration, len(p.xs))
	sum := 0.0
	for i := range p.xs {
		term := p.coefs[i] * fx[i]
		iterations[i] = CoefficientIteration{
			Index: p.indices[i],
			Xi:    p.xs[i],
			Fxi:   fx[i],
			Coef:  p.coefs[i],
			Term:  term,
		}
		sum += term
	}

	r := &Result{
		Method:     k,
		Value:      p.norm * sum,
		Iterations: iterations,
		Segments:   p.segments,
		Step:       p.step,
		Norm:       p.norm,
		Adjustment: strings.Join(p.notes, "\n"),
	}
	r.Details = k.details(p, a, b, sum, r.Value)
	return r, nil
}

func (k Kind) details(p *plan, a, b, sum, value float64) string {
	var sb strings.Builder
	for _, note := range p.notes {
		sb.WriteString(note)
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "%s with n = %d segments and %d points\n", k.Name(), p.segments, len(p.xs))
	fmt.Fprintf(&sb, "Formula: %s\n", p.formula)
	fmt.Fprintf(&sb, "h = (b - a) / n = (%s - %s) / %d = %s\n",
		formatNumber(b), formatNumber(a), p.segments, formatNumber(p.step))
	for _, line := range p.extra {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "Weighted sum = %s\n", formatNumber(sum))
	fmt.Fprintf(&sb, "Result = %s * %s = %s", p.normText, formatNumber(sum), formatNumber(value))
	return sb.String()
}
