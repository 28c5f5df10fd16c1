package reference

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "spacing", input: "x^3 - 2*x^2 + 3*x - 5", want: "x^3-2*x^2+3*x-5"},
		{name: "implicit product", input: "2x", want: "2*x"},
		{name: "redundant parentheses", input: "((x))", want: "x"},
		{name: "trailing dx", input: "sin(x) dx", want: "sin(x)"},
		{name: "trailing DX", input: "sqrt(x)DX", want: "sqrt(x)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("invalid", func(t *testing.T) {
		_, err := Normalize("x +")
		require.Error(t, err)
	})
}

func TestStripDifferential(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "x^2", StripDifferential(" x^2 dx "))
	assert.Equal(t, "x", StripDifferential("xdx"))
	assert.Equal(t, "x", StripDifferential("x"))
	assert.Equal(t, "", StripDifferential("dx"))
}

func TestLookup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		expression string
		a, b       float64
		want       float64
	}{
		{name: "sqrt 6 to 12", expression: "sqrt(x)", a: 6, b: 12, want: 2.0 / 3 * (math.Pow(12, 1.5) - math.Pow(6, 1.5))},
		{name: "sin 0 to pi", expression: "sin(x)", a: 0, b: math.Pi, want: 2},
		{name: "sin truncated pi", expression: "sin(x)", a: 0, b: 3.14159, want: 2},
		{name: "sin full period", expression: "sin(x)", a: 0, b: 6.28318, want: 0},
		{name: "exp", expression: "exp(x)", a: 0, b: 1, want: math.E - 1},
		{name: "log", expression: "log(x)", a: 1, b: 2, want: 2*math.Ln2 - 1},
		{name: "cubic", expression: "x^3 - 2*x^2 + 3*x - 5", a: 0, b: 2, want: -16.0 / 3},
		{name: "cubic compact", expression: "x^3-2x^2+3x-5", a: 0, b: 2, want: -16.0 / 3},
		{name: "square", expression: "x^2", a: 0, b: 1, want: 1.0 / 3},
		{name: "square 1 to 2", expression: "x^2", a: 1, b: 2, want: 7.0 / 3},
		{name: "cube 0 to 2", expression: "x^3", a: 0, b: 2, want: 4},
		{name: "identity", expression: "x", a: 1, b: 2, want: 1.5},
		{name: "constant", expression: "5", a: 0, b: 2, want: 10},
		{name: "sqrt 0 to 1", expression: "sqrt(x)", a: 0, b: 1, want: 2.0 / 3},
		{name: "sqrt 1 to 4", expression: "sqrt(x)", a: 1, b: 4, want: 14.0 / 3},
		{name: "with dx", expression: "x^2 dx", a: 0, b: 2, want: 8.0 / 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, ok := Lookup(tt.expression, tt.a, tt.b)
			require.True(t, ok)
			assert.InDelta(t, tt.want, ref.Value, 1e-12)
			assert.NotEmpty(t, ref.Formula)
		})
	}

	t.Run("misses", func(t *testing.T) {
		misses := []struct {
			expression string
			a, b       float64
		}{
			{expression: "x^2", a: 0, b: 3},
			{expression: "x^4", a: 0, b: 1},
			{expression: "x^2", a: 0, b: 1.001},
			{expression: "exp(x)", a: 1, b: 0},
			{expression: "x +", a: 0, b: 1},
		}
		for _, m := range misses {
			_, ok := Lookup(m.expression, m.a, m.b)
			assert.False(t, ok, "%s on [%g, %g]", m.expression, m.a, m.b)
		}
	})
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("drops unparseable entries", func(t *testing.T) {
		o := New(0, map[Key]Reference{
			{Expression: "x", A: 0, B: 1}:  {Formula: "1/2", Value: 0.5},
			{Expression: "x*", A: 0, B: 1}: {Formula: "bad", Value: 1},
		})
		assert.Equal(t, 1, o.Len())
	})

	t.Run("custom tolerance", func(t *testing.T) {
		o := New(0.1, map[Key]Reference{
			{Expression: "x", A: 0, B: 1}: {Formula: "1/2", Value: 0.5},
		})
		_, ok := o.Lookup("x", 0.05, 1.05)
		assert.True(t, ok)
		_, ok = o.Lookup("x", 0.2, 1)
		assert.False(t, ok)
	})

	t.Run("default table", func(t *testing.T) {
		assert.Equal(t, 20, Default().Len())
	})
}
