// Package compiler prepares expressions for github.com/Knetic/govaluate.
// Expressions are parsed by the native parser and rendered fully
// parenthesized, which removes any dependence on govaluate's own precedence
// and keeps implicit multiplication working.
package compiler

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	govaluateLib "github.com/Knetic/govaluate"

	"github.com/robbyt/go-polyquad/engines/govaluate/internal"
	"github.com/robbyt/go-polyquad/engines/native/parser"
	"github.com/robbyt/go-polyquad/platform/script"
)

// Compiler implements the script.Compiler interface for govaluate
type Compiler struct {
	logHandler slog.Handler
	logger     *slog.Logger
}

// New creates a new govaluate Compiler instance with the provided options.
func New(opts ...FunctionalOption) (*Compiler, error) {
	c := &Compiler{}
	c.applyDefaults()

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("error applying compiler option: %w", err)
		}
	}

	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("invalid compiler configuration: %w", err)
	}

	c.setupLogger()
	return c, nil
}

func (c *Compiler) String() string {
	return "govaluate.Compiler"
}

// Compile reads the expression, closes the reader and builds an evaluable
// govaluate expression from it.
func (c *Compiler) Compile(scriptReader io.ReadCloser) (script.ExecutableContent, error) {
	logger := c.logger.WithGroup("compile")
	if scriptReader == nil {
		return nil, ErrContentNil
	}

	body, err := io.ReadAll(scriptReader)
	if closeErr := scriptReader.Close(); closeErr != nil {
		logger.Warn("failed to close expression reader", "error", closeErr)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadFailed, err)
	}

	source := strings.TrimSpace(string(body))
	program, err := parser.Parse(source)
	if err != nil {
		logger.Debug("expression rejected", "source", source, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	rendered := program.Render(internal.Dialect)
	expression, err := govaluateLib.NewEvaluableExpressionWithFunctions(rendered, internal.Functions())
	if err != nil {
		logger.Error("govaluate compilation failed", "rendered", rendered, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrCompileFailed, err)
	}
	logger.Debug("expression compiled", "rendered", rendered)

	exe := newExecutable(source, rendered, expression)
	if exe == nil {
		return nil, ErrContentNil
	}
	return exe, nil
}
