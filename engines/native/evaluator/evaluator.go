// Package evaluator runs expressions compiled by the native compiler.
package evaluator

import (
	"errors"
	"log/slog"

	"github.com/robbyt/go-polyquad/engines/native/ast"
	"github.com/robbyt/go-polyquad/internal/helpers"
	"github.com/robbyt/go-polyquad/platform"
	"github.com/robbyt/go-polyquad/platform/script"
)

var (
	ErrExecUnitNil  = errors.New("executable unit is nil")
	ErrProgramWrong = errors.New("content is not a native program")
)

// Evaluator evaluates a native ast.Program. It is safe for concurrent use.
type Evaluator struct {
	execUnit *script.ExecutableUnit
	program  *ast.Program

	logHandler slog.Handler
	logger     *slog.Logger
}

// New creates a new Evaluator object
func New(handler slog.Handler, execUnit *script.ExecutableUnit) *Evaluator {
	handler, logger := helpers.SetupLogger(handler, "native", "Evaluator")

	e := &Evaluator{
		execUnit:   execUnit,
		logHandler: handler,
		logger:     logger,
	}
	if execUnit != nil && execUnit.GetContent() != nil {
		e.program, _ = execUnit.GetContent().GetByteCode().(*ast.Program)
		e.logger = logger.With("exeID", execUnit.GetID())
	}
	return e
}

func (e *Evaluator) String() string {
	return "native.Evaluator"
}

// Program returns the compiled program, or nil when the unit held none.
func (e *Evaluator) Program() *ast.Program {
	return e.program
}

// Eval computes the expression at x.
func (e *Evaluator) Eval(x float64) (float64, error) {
	if e.program == nil {
		if e.execUnit == nil {
			return 0, ErrExecUnitNil
		}
		return 0, ErrProgramWrong
	}

	v, err := e.program.Eval(x)
	if err != nil {
		e.logger.Debug("evaluation failed", "x", x, "error", err)
		return 0, err
	}
	return platform.Finite(x, v)
}
