package compiler

import (
	starlarkLib "go.starlark.net/starlark"

	"github.com/robbyt/go-polyquad/engines/starlark/compiler/internal/compile"
	engineTypes "github.com/robbyt/go-polyquad/engines/types"
)

// Executable implements script.ExecutableContent for Starlark expressions
type Executable struct {
	source string
	lambda *compile.Lambda
}

func newExecutable(source string, lambda *compile.Lambda) *Executable {
	if source == "" || lambda == nil || lambda.Function == nil {
		return nil
	}
	return &Executable{
		source: source,
		lambda: lambda,
	}
}

// GetSource returns the expression text as it was read
func (e *Executable) GetSource() string {
	return e.source
}

// GetStarlarkSource returns the generated Starlark module
func (e *Executable) GetStarlarkSource() string {
	return e.lambda.Source
}

// GetByteCode returns the compiled lambda as a generic interface
func (e *Executable) GetByteCode() any {
	return e.lambda.Function
}

// GetStarlarkByteCode returns the compiled module with its proper type
func (e *Executable) GetStarlarkByteCode() *starlarkLib.Program {
	return e.lambda.Program
}

// GetEngineType returns the Starlark engine type
func (e *Executable) GetEngineType() engineTypes.Type {
	return engineTypes.Starlark
}
