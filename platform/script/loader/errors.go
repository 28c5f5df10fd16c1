package loader

import "errors"

var (
	ErrSchemeUnsupported     = errors.New("unsupported scheme")
	ErrExpressionUnavailable = errors.New("expression not available")
)
