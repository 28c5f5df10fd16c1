package quadrature

import "errors"

// ErrUnknownKind is returned for identifiers that name no rule.
var ErrUnknownKind = errors.New("unknown quadrature method")

// MaxSegments bounds n after any correction.
const MaxSegments = 1 << 24
