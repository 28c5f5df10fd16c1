package compiler

import "errors"

var (
	ErrContentNil       = errors.New("expression content is nil")
	ErrReadFailed       = errors.New("unable to read expression")
	ErrValidationFailed = errors.New("expression validation error")
)
