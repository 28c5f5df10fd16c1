package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robbyt/go-polyquad/engines/native/parser"
	"github.com/robbyt/go-polyquad/platform/calcerr"
)

func TestDialect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		expression string
		want       string
	}{
		{expression: "2x", want: "(2*x)"},
		{expression: "x^2", want: "(x ** 2)"},
		{expression: "-x^2", want: "((-(x)) ** 2)"},
		{expression: "sqrt(x+1)", want: "sqrt((x+1))"},
		{expression: "ln(x)", want: "log(x)"},
		{expression: "root(3, x)", want: "root(3, x)"},
		{expression: "pi", want: "3.141592653589793"},
		{expression: "0.000001x", want: "(0.000001*x)"},
		{expression: "1/x", want: "div(1, x)"},
		{expression: "exp(-1/x)", want: "exp(div((-(1)), x))"},
	}

	for _, tt := range tests {
		t.Run(tt.expression, func(t *testing.T) {
			program, err := parser.Parse(tt.expression)
			require.NoError(t, err)
			assert.Equal(t, tt.want, program.Render(Dialect))
		})
	}
}

func TestFunctions(t *testing.T) {
	t.Parallel()
	funcs := Functions()

	for _, name := range []string{"sin", "cos", "tan", "sqrt", "log", "exp", "abs", "root", "div"} {
		assert.Contains(t, funcs, name)
	}

	t.Run("sqrt", func(t *testing.T) {
		v, err := funcs["sqrt"](9.0)
		require.NoError(t, err)
		assert.InDelta(t, 3.0, v, 0)
	})

	t.Run("sqrt domain", func(t *testing.T) {
		_, err := funcs["sqrt"](-1.0)
		require.ErrorIs(t, err, calcerr.ErrEval)
	})

	t.Run("root", func(t *testing.T) {
		v, err := funcs["root"](3.0, -27.0)
		require.NoError(t, err)
		assert.InDelta(t, -3.0, v, 1e-12)
	})

	t.Run("root arity", func(t *testing.T) {
		_, err := funcs["root"](3.0)
		require.Error(t, err)
	})

	t.Run("div", func(t *testing.T) {
		v, err := funcs["div"](3.0, 4.0)
		require.NoError(t, err)
		assert.InDelta(t, 0.75, v, 0)
	})

	t.Run("div by zero", func(t *testing.T) {
		_, err := funcs["div"](1.0, 0.0)
		require.ErrorIs(t, err, calcerr.ErrEval)
		assert.Contains(t, err.Error(), "division by zero")
	})

	t.Run("wrong type", func(t *testing.T) {
		_, err := funcs["exp"]("1")
		require.Error(t, err)
	})
}

func TestParams(t *testing.T) {
	t.Parallel()

	v, err := Params(2.5).Get("x")
	require.NoError(t, err)
	assert.InDelta(t, 2.5, v, 0)

	_, err = Params(2.5).Get("y")
	require.Error(t, err)
}
