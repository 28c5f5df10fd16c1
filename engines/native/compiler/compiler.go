// Package compiler turns expression text into an ast.Program for the native
// engine.
package compiler

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/robbyt/go-polyquad/engines/native/parser"
	"github.com/robbyt/go-polyquad/platform/script"
)

// Compiler implements the script.Compiler interface for native expressions
type Compiler struct {
	logHandler slog.Handler
	logger     *slog.Logger
}

// New creates a new native Compiler instance with the provided options.
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
	return "native.Compiler"
}

// Compile reads the whole expression, closes the reader and parses it.
// Lex and parse failures unwrap to the calcerr kinds.
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

	exe := newExecutable(source, program)
	if exe == nil {
		return nil, ErrContentNil
	}
	logger.Debug("expression compiled", "canonical", program.String())
	return exe, nil
}
