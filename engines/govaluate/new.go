// Package govaluate evaluates expressions with github.com/Knetic/govaluate.
package govaluate

import (
	"fmt"
	"log/slog"

	"github.com/robbyt/go-polyquad/engines/govaluate/compiler"
	"github.com/robbyt/go-polyquad/engines/govaluate/evaluator"
	"github.com/robbyt/go-polyquad/platform/script"
	"github.com/robbyt/go-polyquad/platform/script/loader"
)

// FromGovaluateString compiles an expression held in memory.
func FromGovaluateString(logHandler slog.Handler, expression string) (*evaluator.Evaluator, error) {
	ldr, err := loader.NewFromString(expression)
	if err != nil {
		return nil, err
	}
	return NewEvaluator(logHandler, ldr)
}

// FromGovaluateLoader compiles the expression produced by ldr.
func FromGovaluateLoader(logHandler slog.Handler, ldr loader.Loader) (*evaluator.Evaluator, error) {
	return NewEvaluator(logHandler, ldr)
}

// NewCompiler creates a new Govaluate compiler using the functional options pattern.
func NewCompiler(opts ...compiler.FunctionalOption) (*compiler.Compiler, error) {
	return compiler.New(opts...)
}

// NewEvaluator creates a Govaluate evaluator with the expression compiled and
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
		return nil, fmt.Errorf("failed to create Govaluate compiler: %w", err)
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
