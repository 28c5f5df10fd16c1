package script

import (
	engineTypes "github.com/robbyt/go-polyquad/engines/types"
)

// ExecutableContent represents a validated expression that is ready for evaluation.
// It provides access to the expression's source and its compiled form.
type ExecutableContent interface {
	// GetSource returns the original expression text.
	GetSource() string

	// GetByteCode returns the compiled expression in an engine-specific form.
	// Each engine asserts it into the type it requires and fails at evaluation
	// time when the assertion does not hold.
	GetByteCode() any

	// GetEngineType returns the engine this content was compiled for.
	GetEngineType() engineTypes.Type
}
