package compile

import (
	"fmt"

	starlarkLib "go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/robbyt/go-polyquad/engines/native/ast"
)

// EntryPoint is the global the compiled lambda is bound to.
const EntryPoint = "f"

// Lambda is a Starlark function of x compiled from one expression.
type Lambda struct {
	Source   string
	Program  *starlarkLib.Program
	Function starlarkLib.Callable
}

// CompileLambda wraps body in "f = lambda x: body", compiles it and runs the
// module once to obtain the function. The module globals are frozen so the
// function can be called from several goroutines.
func CompileLambda(body string, predeclared starlarkLib.StringDict) (*Lambda, error) {
	if body == "" {
		return nil, ErrContentNil
	}

	source := fmt.Sprintf("%s = lambda %s: %s\n", EntryPoint, ast.Variable, body)

	opts := &syntax.FileOptions{}
	f, err := opts.Parse("expression.star", source, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompileFailed, err)
	}

	prog, err := starlarkLib.FileProgram(f, predeclared.Has)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompileFailed, err)
	}

	thread := &starlarkLib.Thread{Name: "compile"}
	globals, err := prog.Init(thread, predeclared)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompileFailed, err)
	}
	globals.Freeze()

	fn, ok := globals[EntryPoint].(starlarkLib.Callable)
	if !ok {
		return nil, ErrNotCallable
	}

	return &Lambda{
		Source:   source,
		Program:  prog,
		Function: fn,
	}, nil
}
