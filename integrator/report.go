package integrator

import (
	"github.com/robbyt/go-polyquad/quadrature"
	"github.com/robbyt/go-polyquad/reference"
)

// Request is one integration as typed by a user: every field is text except
// the segment count and the rule.
type Request struct {
	Expression string          `json:"expression" yaml:"expression"`
	Lower      string          `json:"lower" yaml:"lower"`
	Upper      string          `json:"upper" yaml:"upper"`
	N          int             `json:"n" yaml:"n"`
	Method     quadrature.Kind `json:"method" yaml:"method"`
}

// Report is the outcome of Integrate.
type Report struct {
	// Expression is the integrand as compiled, without a trailing dx.
	Expression string          `json:"expression" yaml:"expression"`
	Method     quadrature.Kind `json:"method" yaml:"method"`
	A          float64         `json:"a" yaml:"a"`
	B          float64         `json:"b" yaml:"b"`
	Segments   int             `json:"segments" yaml:"segments"`
	Step       float64         `json:"step" yaml:"step"`
	Value      float64         `json:"value" yaml:"value"`
	Details    string          `json:"details" yaml:"details"`

	Iterations []quadrature.CoefficientIteration `json:"iterations" yaml:"iterations"`

	// Reference is set when the exact value of the integral is known.
	Reference     *reference.Reference `json:"reference,omitempty" yaml:"reference,omitempty"`
	AbsoluteError *float64             `json:"absoluteError,omitempty" yaml:"absoluteError,omitempty"`
}
