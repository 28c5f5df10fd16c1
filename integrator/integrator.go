// Package integrator runs a complete integration from user input: it
// resolves the limits, compiles the integrand once with the configured
// engine, applies a quadrature rule and compares the result with a known
// closed form when one exists.
package integrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/robbyt/go-polyquad/engines"
	"github.com/robbyt/go-polyquad/internal/helpers"
	"github.com/robbyt/go-polyquad/internal/metrics"
	"github.com/robbyt/go-polyquad/limits"
	"github.com/robbyt/go-polyquad/options"
	"github.com/robbyt/go-polyquad/platform/calcerr"
	"github.com/robbyt/go-polyquad/platform/script/loader"
	"github.com/robbyt/go-polyquad/quadrature"
	"github.com/robbyt/go-polyquad/reference"
)

const tracerName = "github.com/robbyt/go-polyquad/integrator"

// Integrator is safe for concurrent use.
type Integrator struct {
	cfg     *options.Config
	logger  *slog.Logger
	metrics *metrics.Recorder
	tracer  trace.Tracer
}

// New creates an Integrator. Without options it uses the native engine,
// samples sequentially and records no metrics.
func New(opts ...options.Option) (*Integrator, error) {
	cfg, err := options.New(opts...)
	if err != nil {
		return nil, err
	}
	_, logger := helpers.SetupLogger(cfg.GetHandler(), "integrator", "Integrator")

	var recorder *metrics.Recorder
	if reg := cfg.GetRegisterer(); reg != nil {
		recorder = metrics.New(reg)
	}

	return &Integrator{
		cfg:     cfg,
		logger:  logger,
		metrics: recorder,
		tracer:  otel.Tracer(tracerName),
	}, nil
}

// Integrate approximates the integral described by req.
func (i *Integrator) Integrate(ctx context.Context, req Request) (report *Report, err error) {
	ctx, span := i.tracer.Start(ctx, "integrator.Integrate",
		trace.WithAttributes(
			attribute.String("method", req.Method.ID()),
			attribute.Int("n", req.N),
			attribute.String("engine", i.cfg.GetEngineType().String()),
		),
	)
	defer span.End()

	start := time.Now()
	defer func() {
		samples := 0
		if report != nil {
			samples = len(report.Iterations)
		}
		i.metrics.Observe(req.Method.ID(), samples, time.Since(start), err)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "integration failed")
			if errors.Is(err, calcerr.ErrValidation) {
				i.logger.Warn("integration rejected", "method", req.Method.ID(), "error", err)
			} else {
				i.logger.Debug("integration failed", "method", req.Method.ID(), "error", err)
			}
		}
	}()

	expression, err := validate(req)
	if err != nil {
		return nil, err
	}

	a, b, err := limits.ResolvePair(req.Lower, req.Upper)
	if err != nil {
		return nil, err
	}

	ldr, err := loader.NewFromString(expression)
	if err != nil {
		return nil, calcerr.Validation("expression is empty").WithCause(err)
	}
	f, err := engines.NewEvaluator(i.cfg.GetEngineType(), i.cfg.GetHandler(), ldr)
	if err != nil {
		return nil, err
	}

	sampler := quadrature.Sampler{
		Workers:   i.cfg.GetWorkers(),
		Threshold: i.cfg.GetParallelThreshold(),
	}
	result, err := req.Method.DetailsContext(ctx, f, a, b, req.N, sampler)
	if err != nil {
		return nil, err
	}
	if result.Adjustment != "" {
		i.logger.Warn("segment count adjusted",
			"method", req.Method.ID(),
			"requested", req.N,
			"used", result.Segments,
		)
	}

	report = &Report{
		Expression: expression,
		Method:     result.Method,
		A:          a,
		B:          b,
		Segments:   result.Segments,
		Step:       result.Step,
		Value:      result.Value,
		Details:    result.Details,
		Iterations: result.Iterations,
	}
	i.compare(report)

	span.SetAttributes(
		attribute.Float64("a", a),
		attribute.Float64("b", b),
		attribute.Int("segments", report.Segments),
		attribute.Int("points", len(report.Iterations)),
		attribute.Float64("value", report.Value),
		attribute.Bool("reference", report.Reference != nil),
	)
	span.SetStatus(codes.Ok, "")
	i.logger.Debug("integration complete",
		"method", report.Method.ID(),
		"segments", report.Segments,
		"value", report.Value,
	)
	return report, nil
}

func validate(req Request) (string, error) {
	switch {
	case strings.TrimSpace(req.Expression) == "":
		return "", calcerr.Validation("expression is empty")
	case strings.TrimSpace(req.Lower) == "":
		return "", calcerr.Validation("lower limit is empty")
	case strings.TrimSpace(req.Upper) == "":
		return "", calcerr.Validation("upper limit is empty")
	case !req.Method.Valid():
		return "", calcerr.Newf(calcerr.ErrValidation, calcerr.NoPosition, "method %d is not defined", req.Method).
			WithCause(quadrature.ErrUnknownKind)
	}

	expression := reference.StripDifferential(req.Expression)
	if expression == "" {
		return "", calcerr.Validation("expression is empty")
	}
	return expression, nil
}

func (i *Integrator) compare(report *Report) {
	oracle := i.cfg.GetOracle()
	if oracle == nil {
		return
	}
	ref, ok := oracle.Lookup(report.Expression, report.A, report.B)
	if !ok {
		return
	}
	absErr := math.Abs(report.Value - ref.Value)
	report.Reference = &ref
	report.AbsoluteError = &absErr
	report.Details += fmt.Sprintf("\nExact analytic value: %s = %s\nAbsolute error: %s",
		ref.Formula, formatNumber(ref.Value), formatNumber(absErr))
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
