// Package evaluator calls expressions compiled into Starlark lambdas.
package evaluator

import (
	"errors"
	"log/slog"

	starlarkLib "go.starlark.net/starlark"

	"github.com/robbyt/go-polyquad/engines/starlark/internal"
	"github.com/robbyt/go-polyquad/internal/helpers"
	"github.com/robbyt/go-polyquad/platform"
	"github.com/robbyt/go-polyquad/platform/calcerr"
	"github.com/robbyt/go-polyquad/platform/script"
)

var (
	ErrExecUnitNil     = errors.New("executable unit is nil")
	ErrNotStarlarkCode = errors.New("content is not a starlark callable")
)

// Evaluator is an abstraction layer for evaluating expressions on the
// Starlark engine
type Evaluator struct {
	execUnit *script.ExecutableUnit
	fn       starlarkLib.Callable

	logHandler slog.Handler
	logger     *slog.Logger
}

// New creates a new Evaluator object
func New(handler slog.Handler, execUnit *script.ExecutableUnit) *Evaluator {
	handler, logger := helpers.SetupLogger(handler, "starlark", "Evaluator")

	e := &Evaluator{
		execUnit:   execUnit,
		logHandler: handler,
		logger:     logger,
	}
	if execUnit != nil && execUnit.GetContent() != nil {
		e.fn, _ = execUnit.GetContent().GetByteCode().(starlarkLib.Callable)
		e.logger = logger.With("exeID", execUnit.GetID())
	}
	return e
}

func (be *Evaluator) String() string {
	return "starlark.Evaluator"
}

// Eval calls the compiled lambda with x on a fresh thread.
func (be *Evaluator) Eval(x float64) (float64, error) {
	if be.fn == nil {
		if be.execUnit == nil {
			return 0, ErrExecUnitNil
		}
		return 0, ErrNotStarlarkCode
	}

	thread := &starlarkLib.Thread{Name: "eval"}
	v, err := starlarkLib.Call(thread, be.fn, starlarkLib.Tuple{starlarkLib.Float(x)}, nil)
	if err != nil {
		be.logger.Debug("starlark execution error", "x", x, "error", err)
		return 0, toEvalError(err)
	}

	result, err := internal.ToFloat(v)
	if err != nil {
		return 0, calcerr.Eval("expression did not produce a number").WithCause(err)
	}
	return platform.Finite(x, result)
}

// toEvalError keeps errors raised by the root builtin intact and classifies
// everything else Starlark reports, such as float division by zero.
func toEvalError(err error) error {
	var classified *calcerr.Error
	if errors.As(err, &classified) {
		return classified
	}
	return calcerr.Eval(err.Error()).WithCause(err)
}
