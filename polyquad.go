// Package polyquad evaluates single-variable expressions and approximates
// their definite integrals with fixed quadrature rules.
//
// Expressions are compiled once and evaluated many times:
//
//	f, err := polyquad.Compile("x^2 + 3x")
//	y, err := f.Eval(2) // 10
//
// A whole integration, from user input to a report, goes through Integrate:
//
//	report, err := polyquad.Integrate(ctx, integrator.Request{
//	    Expression: "sin(x)", Lower: "0", Upper: "pi", N: 8,
//	    Method: quadrature.Boole,
//	})
package polyquad

import (
	"context"
	"fmt"
	"strings"

	"github.com/robbyt/go-polyquad/engines"
	"github.com/robbyt/go-polyquad/integrator"
	"github.com/robbyt/go-polyquad/options"
	"github.com/robbyt/go-polyquad/platform/calcerr"
	"github.com/robbyt/go-polyquad/platform/script/loader"
)

// Compile compiles expression with the configured engine, native by default.
func Compile(expression string, opts ...options.Option) (*EvaluatorWrapper, error) {
	cfg, err := options.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("error applying option: %w", err)
	}

	if strings.TrimSpace(expression) == "" {
		return nil, calcerr.Parse(0, "incomplete expression")
	}
	ldr, err := loader.NewFromString(expression)
	if err != nil {
		return nil, err
	}

	f, err := engines.NewEvaluator(cfg.GetEngineType(), cfg.GetHandler(), ldr)
	if err != nil {
		return nil, err
	}
	return NewEvaluatorWrapper(f, strings.TrimSpace(expression), cfg.GetEngineType()), nil
}

// Evaluate compiles expression and evaluates it once at x. Callers that
// evaluate the same expression repeatedly should use Compile.
func Evaluate(expression string, x float64, opts ...options.Option) (float64, error) {
	f, err := Compile(expression, opts...)
	if err != nil {
		return 0, err
	}
	return f.Eval(x)
}

// NewIntegrator creates an Integrator that can be reused across requests.
func NewIntegrator(opts ...options.Option) (*integrator.Integrator, error) {
	return integrator.New(opts...)
}

// Integrate runs one integration with a fresh Integrator.
func Integrate(
	ctx context.Context,
	req integrator.Request,
	opts ...options.Option,
) (*integrator.Report, error) {
	i, err := NewIntegrator(opts...)
	if err != nil {
		return nil, err
	}
	return i.Integrate(ctx, req)
}
