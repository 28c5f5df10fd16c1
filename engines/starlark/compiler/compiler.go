// Package compiler translates an expression into a Starlark lambda. The
// expression is parsed by the native parser first, so both engines accept
// exactly the same grammar.
package compiler

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/robbyt/go-polyquad/engines/native/parser"
	"github.com/robbyt/go-polyquad/engines/starlark/compiler/internal/compile"
	"github.com/robbyt/go-polyquad/engines/starlark/internal"
	"github.com/robbyt/go-polyquad/platform/script"
)

// Compiler implements the script.Compiler interface for Starlark
type Compiler struct {
	logHandler slog.Handler
	logger     *slog.Logger
}

// New creates a new Starlark Compiler instance with the provided options.
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
	return "starlark.Compiler"
}

// Compile reads the expression, closes the reader and compiles it into a
// callable Starlark function of x.
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

	lambda, err := compile.CompileLambda(program.Render(internal.Dialect), internal.Predeclared())
	if err != nil {
		logger.Error("starlark compilation failed", "source", source, "error", err)
		return nil, err
	}
	logger.Debug("expression compiled", "starlark", lambda.Source)

	exe := newExecutable(source, lambda)
	if exe == nil {
		return nil, ErrContentNil
	}
	return exe, nil
}
