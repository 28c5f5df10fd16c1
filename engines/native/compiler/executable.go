package compiler

import (
	"github.com/robbyt/go-polyquad/engines/native/ast"
	engineTypes "github.com/robbyt/go-polyquad/engines/types"
)

// Executable implements script.ExecutableContent for the native engine
type Executable struct {
	source  string
	program *ast.Program
}

func newExecutable(source string, program *ast.Program) *Executable {
	if source == "" || program == nil {
		return nil
	}
	return &Executable{
		source:  source,
		program: program,
	}
}

// GetSource returns the expression text as it was read
func (e *Executable) GetSource() string {
	return e.source
}

// GetByteCode returns the compiled program as a generic interface
func (e *Executable) GetByteCode() any {
	return e.program
}

// GetProgram returns the compiled program with its proper type
func (e *Executable) GetProgram() *ast.Program {
	return e.program
}

// GetEngineType returns the native engine type
func (e *Executable) GetEngineType() engineTypes.Type {
	return engineTypes.Native
}
