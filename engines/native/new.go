// Package native is the default expression engine. Expressions are parsed
// into a flat node arena and evaluated in process.
package native

import (
	"fmt"
	"log/slog"

	"github.com/robbyt/go-polyquad/engines/native/compiler"
	"github.com/robbyt/go-polyquad/engines/native/evaluator"
	"github.com/robbyt/go-polyquad/platform/script"
	"github.com/robbyt/go-polyquad/platform/script/loader"
)

// FromNativeString compiles an expression held in memory.
func FromNativeString(logHandler slog.Handler, expression string) (*evaluator.Evaluator, error) {
	ldr, err := loader.NewFromString(expression)
	if err != nil {
		return nil, err
	}
	return NewEvaluator(logHandler, ldr)
}

// FromNativeLoader compiles the expression produced by ldr.
func FromNativeLoader(logHandler slog.Handler, ldr loader.Loader) (*evaluator.Evaluator, error) {
	return NewEvaluator(logHandler, ldr)
}

// NewCompiler creates a new native compiler using the functional options pattern.
func NewCompiler(opts ...compiler.FunctionalOption) (*compiler.Compiler, error) {
	return compiler.New(opts...)
}

// NewEvaluator compiles the loader's expression and returns an evaluator
// ready for repeated calls.
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
		return nil, fmt.Errorf("failed to create native compiler: %w", err)
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
