// Package starlark evaluates expressions by translating them into Starlark
// lambdas and running them on go.starlark.net.
package starlark

import (
	"fmt"
	"log/slog"

	"github.com/robbyt/go-polyquad/engines/starlark/compiler"
	"github.com/robbyt/go-polyquad/engines/starlark/evaluator"
	"github.com/robbyt/go-polyquad/platform/script"
	"github.com/robbyt/go-polyquad/platform/script/loader"
)

// FromStarlarkString compiles an expression held in memory.
func FromStarlarkString(logHandler slog.Handler, expression string) (*evaluator.Evaluator, error) {
	ldr, err := loader.NewFromString(expression)
	if err != nil {
		return nil, err
	}
	return NewEvaluator(logHandler, ldr)
}

// FromStarlarkLoader compiles the expression produced by ldr.
func FromStarlarkLoader(logHandler slog.Handler, ldr loader.Loader) (*evaluator.Evaluator, error) {
	return NewEvaluator(logHandler, ldr)
}

// NewCompiler creates a new Starlark compiler using the functional options pattern.
// Returns a compiler implementing the script.Compiler interface.
func NewCompiler(opts ...compiler.FunctionalOption) (*compiler.Compiler, error) {
	return compiler.New(opts...)
}

// NewEvaluator creates a Starlark evaluator with the expression compiled and
// ready for execution.
func NewEvaluator(logHandler slog.Handler, ldr loader.Loader) (*evaluator.Evaluator, error) {
	if ldr == nil {
		return nil, script.ErrLoaderNil
	}

	opts := []compiler.FunctionalOption{}
	if logHandler != nil {
		opts = append(opts, compiler.WithLogHandler(logHandler))
	}
	comp, err := NewCompiler(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Starlark compiler: %w", err)
	}

	execUnitID := ""
	if sourceURL := ldr.GetSourceURL(); sourceURL != nil {
		execUnitID = sourceURL.String()
	}

	execUnit, err := script.NewExecutableUnit(logHandler, execUnitID, ldr, comp)
	if err != nil {
		return nil, err
	}
	return evaluator.New(logHandler, execUnit), nil
}
