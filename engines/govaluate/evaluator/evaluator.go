// Package evaluator runs expressions compiled for govaluate.
package evaluator

import (
	"errors"
	"log/slog"

	govaluateLib "github.com/Knetic/govaluate"

	"github.com/robbyt/go-polyquad/engines/govaluate/internal"
	"github.com/robbyt/go-polyquad/internal/helpers"
	"github.com/robbyt/go-polyquad/platform"
	"github.com/robbyt/go-polyquad/platform/calcerr"
	"github.com/robbyt/go-polyquad/platform/script"
)

var (
	ErrExecUnitNil      = errors.New("executable unit is nil")
	ErrNotGovaluateCode = errors.New("content is not a govaluate expression")
)

// Evaluator evaluates govaluate expressions. Division by zero yields an
// infinity in govaluate, which Eval reports as a non-finite result.
type Evaluator struct {
	execUnit   *script.ExecutableUnit
	expression *govaluateLib.EvaluableExpression

	logHandler slog.Handler
	logger     *slog.Logger
}

// New creates a new Evaluator object
func New(handler slog.Handler, execUnit *script.ExecutableUnit) *Evaluator {
	handler, logger := helpers.SetupLogger(handler, "govaluate", "Evaluator")

	e := &Evaluator{
		execUnit:   execUnit,
		logHandler: handler,
		logger:     logger,
	}
	if execUnit != nil && execUnit.GetContent() != nil {
		e.expression, _ = execUnit.GetContent().GetByteCode().(*govaluateLib.EvaluableExpression)
		e.logger = logger.With("exeID", execUnit.GetID())
	}
	return e
}

func (e *Evaluator) String() string {
	return "govaluate.Evaluator"
}

// Eval evaluates the expression with x bound to the given value.
func (e *Evaluator) Eval(x float64) (float64, error) {
	if e.expression == nil {
		if e.execUnit == nil {
			return 0, ErrExecUnitNil
		}
		return 0, ErrNotGovaluateCode
	}

	raw, err := e.expression.Eval(internal.Params(x))
	if err != nil {
		e.logger.Debug("govaluate execution error", "x", x, "error", err)
		var classified *calcerr.Error
		if errors.As(err, &classified) {
			return 0, classified
		}
		return 0, calcerr.Eval(err.Error()).WithCause(err)
	}

	v, err := internal.ToFloat(raw)
	if err != nil {
		return 0, calcerr.Eval("expression did not produce a number").WithCause(err)
	}
	return platform.Finite(x, v)
}
