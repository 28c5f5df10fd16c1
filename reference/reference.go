// Package reference knows the exact value of a few integrals and is used to
// report the absolute error of an approximation. It never affects the
// approximation itself.
//
// Entries are keyed by the canonical form of the expression and the numeric
// bounds. Bounds match within a relative tolerance, so 3.14159 finds the
// entry stored for pi.
package reference

import (
	"cmp"
	"math"
	"slices"
	"strings"

	"github.com/robbyt/go-polyquad/engines/native/parser"
)

// DefaultTolerance is the relative tolerance applied to bounds.
const DefaultTolerance = 1e-5

// Reference is a known closed-form value.
type Reference struct {
	Formula string  `json:"formula" yaml:"formula"`
	Value   float64 `json:"exactValue" yaml:"exactValue"`
}

// Key identifies one definite integral.
type Key struct {
	Expression string
	A, B       float64
}

type entry struct {
	key Key
	ref Reference
}

// Oracle is an immutable lookup table. It is safe for concurrent use.
type Oracle struct {
	entries   []entry
	tolerance float64
}

// New builds an Oracle over the given references. Expressions are stored in
// canonical form; an entry whose expression does not parse is dropped.
func New(tolerance float64, refs map[Key]Reference) *Oracle {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	o := &Oracle{tolerance: tolerance, entries: make([]entry, 0, len(refs))}
	for k, ref := range refs {
		canonical, err := Normalize(k.Expression)
		if err != nil {
			continue
		}
		k.Expression = canonical
		o.entries = append(o.entries, entry{key: k, ref: ref})
	}
	slices.SortFunc(o.entries, func(x, y entry) int {
		return cmp.Or(
			cmp.Compare(x.key.Expression, y.key.Expression),
			cmp.Compare(x.key.A, y.key.A),
			cmp.Compare(x.key.B, y.key.B),
		)
	})
	return o
}

// Default returns the Oracle over the built-in table.
func Default() *Oracle {
	return defaultOracle
}

var defaultOracle = New(DefaultTolerance, builtin())

// Len returns the number of entries.
func (o *Oracle) Len() int {
	return len(o.entries)
}

// Normalize returns the canonical form of an expression: a trailing "dx" is
// dropped and the expression is printed back from its compiled form.
func Normalize(expression string) (string, error) {
	program, err := parser.Parse(StripDifferential(expression))
	if err != nil {
		return "", err
	}
	return program.String(), nil
}

// StripDifferential removes a trailing "dx", in any case, and surrounding
// whitespace.
func StripDifferential(expression string) string {
	s := strings.TrimSpace(expression)
	if len(s) >= 2 && strings.EqualFold(s[len(s)-2:], "dx") {
		s = strings.TrimSpace(s[:len(s)-2])
	}
	return s
}

// Lookup returns the reference for the integral of expression over [a, b].
func (o *Oracle) Lookup(expression string, a, b float64) (Reference, bool) {
	canonical, err := Normalize(expression)
	if err != nil {
		return Reference{}, false
	}
	for _, e := range o.entries {
		if e.key.Expression == canonical && o.near(e.key.A, a) && o.near(e.key.B, b) {
			return e.ref, true
		}
	}
	return Reference{}, false
}

func (o *Oracle) near(want, got float64) bool {
	return math.Abs(want-got) <= o.tolerance*math.Max(1, math.Abs(want))
}

// Lookup queries the default Oracle.
func Lookup(expression string, a, b float64) (Reference, bool) {
	return defaultOracle.Lookup(expression, a, b)
}
