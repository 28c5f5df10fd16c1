package polyquad

import (
	"fmt"

	"github.com/robbyt/go-polyquad/engines/types"
	"github.com/robbyt/go-polyquad/platform"
)

// EvaluatorWrapper wraps an engine-specific evaluator and remembers the
// expression it was compiled from. This allows callers to follow the
// "compile once, run many times" pattern and still report what they run.
type EvaluatorWrapper struct {
	delegate   platform.Evaluator
	expression string
	engineType types.Type
}

// NewEvaluatorWrapper creates a new evaluator wrapper
func NewEvaluatorWrapper(
	delegate platform.Evaluator,
	expression string,
	engineType types.Type,
) *EvaluatorWrapper {
	return &EvaluatorWrapper{
		delegate:   delegate,
		expression: expression,
		engineType: engineType,
	}
}

// Eval implements the platform.Evaluator interface
func (e *EvaluatorWrapper) Eval(x float64) (float64, error) {
	return e.delegate.Eval(x)
}

// Expression returns the source the evaluator was compiled from
func (e *EvaluatorWrapper) Expression() string {
	return e.expression
}

// EngineType returns the engine that compiled the expression
func (e *EvaluatorWrapper) EngineType() types.Type {
	return e.engineType
}

func (e *EvaluatorWrapper) String() string {
	return fmt.Sprintf("polyquad.EvaluatorWrapper{Engine: %s, Expression: %q}", e.engineType, e.expression)
}
