package script

import "errors"

var (
	ErrCompilerNil = errors.New("compiler is nil")
	ErrLoaderNil   = errors.New("loader is nil")
)
