package quadrature

// CoefficientIteration records one sample point: Term is Coef * Fxi.
type CoefficientIteration struct {
	Index int     `json:"index" yaml:"index"`
	Xi    float64 `json:"xi" yaml:"xi"`
	Fxi   float64 `json:"fxi" yaml:"fxi"`
	Coef  float64 `json:"coef" yaml:"coef"`
	Term  float64 `json:"term" yaml:"term"`
}

// Result is the outcome of one rule applied to one function and interval.
type Result struct {
	Method Kind `json:"method" yaml:"method"`
	// Value is Norm times the sum of every iteration's Term, in order.
	Value float64 `json:"value" yaml:"value"`
	// Details is a human-readable report naming the rule, h and the formula.
	Details    string                 `json:"details" yaml:"details"`
	Iterations []CoefficientIteration `json:"iterations" yaml:"iterations"`
	// Segments is the number of sub-intervals actually used.
	Segments int `json:"segments" yaml:"segments"`
	// Step is h.
	Step float64 `json:"step" yaml:"step"`
	// Norm is the factor applied to the weighted sum, e.g. h/3.
	Norm float64 `json:"norm" yaml:"norm"`
	// Adjustment describes a correction of n, empty when n was used as given.
	Adjustment string `json:"adjustment,omitempty" yaml:"adjustment,omitempty"`
}

// WeightedSum returns the sum of Term over the iterations in order.
func (r *Result) WeightedSum() float64 {
	sum := 0.0
	for _, it := range r.Iterations {
		sum += it.Term
	}
	return sum
}
