// Package quadrature implements the five fixed numerical integration rules:
// composite trapezoidal, Simpson 1/3, Simpson 3/8, open Simpson and
// composite Boole.
//
// Every rule follows the same two steps. It first lays out its sample points
// and weights for [a, b] and n, applying its segment-count policy. It then
// samples f at those points and returns the normalized weighted sum
// together with one CoefficientIteration per point, so the result can be
// recomputed from the trace alone.
package quadrature

import (
	"fmt"
	"strings"
)

// Kind identifies a quadrature rule. The set is closed.
type Kind uint8

const (
	Trapezoidal Kind = iota + 1
	Boole
	Simpson13
	Simpson38
	OpenSimpson
)

type identity struct {
	id   string
	name string
}

var identities = [...]identity{
	Trapezoidal: {id: "trapezoidal", name: "Trapezoidal rule"},
	Boole:       {id: "boole", name: "Boole's rule"},
	Simpson13:   {id: "simpson13", name: "Simpson's 1/3 rule"},
	Simpson38:   {id: "simpson38", name: "Simpson's 3/8 rule"},
	OpenSimpson: {id: "simpsonAbierto", name: "Open Simpson rule"},
}

// Kinds returns every rule in a fixed order.
func Kinds() []Kind {
	return []Kind{Trapezoidal, Boole, Simpson13, Simpson38, OpenSimpson}
}

// ParseKind resolves a rule by its identifier. Matching ignores case.
func ParseKind(id string) (Kind, error) {
	for _, k := range Kinds() {
		if strings.EqualFold(identities[k].id, strings.TrimSpace(id)) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, id)
}

// Valid reports whether k is one of the defined rules.
func (k Kind) Valid() bool {
	return k >= Trapezoidal && k <= OpenSimpson
}

// ID returns the stable identifier, e.g. "simpson13".
func (k Kind) ID() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return identities[k].id
}

// Name returns the display name.
func (k Kind) Name() string {
	if !k.Valid() {
		return k.ID()
	}
	return identities[k].name
}

func (k Kind) String() string {
	return k.ID()
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, uint8(k))
	}
	return []byte(k.ID()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
