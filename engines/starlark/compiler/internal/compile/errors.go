package compile

import "errors"

var (
	ErrCompileFailed = errors.New("failed to compile starlark expression")
	ErrContentNil    = errors.New("starlark content is nil")
	ErrNotCallable   = errors.New("starlark entry point is not callable")
)
