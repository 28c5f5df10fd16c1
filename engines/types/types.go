// Package types enumerates the expression engines.
package types

import "fmt"

// Type identifies an expression engine.
type Type string

const (
	// Native compiles expressions into an in-process node arena.
	Native Type = "native"
	// Starlark renders the compiled expression as a Starlark lambda.
	Starlark Type = "starlark"
	// Govaluate renders the compiled expression for github.com/Knetic/govaluate.
	Govaluate Type = "govaluate"
)

// All returns every engine type in a fixed order.
func All() []Type {
	return []Type{Native, Starlark, Govaluate}
}

// Parse converts a string to an engine Type.
func Parse(s string) (Type, error) {
	for _, t := range All() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown engine type %q", s)
}

func (t Type) String() string {
	return string(t)
}
