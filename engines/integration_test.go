package engines

import (
	"log/slog"
	"math"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robbyt/go-polyquad/engines/types"
	"github.com/robbyt/go-polyquad/platform/calcerr"
	"github.com/robbyt/go-polyquad/platform/script/loader"
)

func newEvaluators(t *testing.T, expression string) map[types.Type]func(float64) (float64, error) {
	t.Helper()
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn})

	out := make(map[types.Type]func(float64) (float64, error))
	for _, engineType := range types.All() {
		ldr, err := loader.NewFromString(expression)
		require.NoError(t, err)
		eval, err := NewEvaluator(engineType, handler, ldr)
		require.NoError(t, err, "engine %s", engineType)
		out[engineType] = eval.Eval
	}
	return out
}

// TestEngineParity checks that every engine computes the same values for the
// same expression text.
func TestEngineParity(t *testing.T) {
	t.Parallel()

	expressions := []string{
		"x^3 - 2x^2 + 3x - 5",
		"2^3^2 + x",
		"-x^2",
		"sin(x)*cos(x) + tan(x/4)",
		"sqrt(x)/(1+x)",
		"ln(x) + log(2x)",
		"exp(-x^2/2)",
		"abs(x - 2)",
		"root(3, x - 5)",
		"2pi x",
		"e^x",
		"x(x+1) - 3(x+2)",
	}
	points := []float64{0.25, 1, 1.5, 3}

	for _, expression := range expressions {
		t.Run(expression, func(t *testing.T) {
			evals := newEvaluators(t, expression)
			for _, x := range points {
				want, err := evals[types.Native](x)
				require.NoError(t, err)
				for engineType, eval := range evals {
					got, err := eval(x)
					require.NoError(t, err, "engine %s at x=%g", engineType, x)
					assert.InDelta(t, want, got, 1e-9*math.Max(1, math.Abs(want)), "engine %s at x=%g", engineType, x)
				}
			}
		})
	}
}

func TestEngineErrorParity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		expression string
		x          float64
	}{
		{expression: "1/x", x: 0},
		{expression: "exp(-1/x)", x: 0},
		{expression: "exp(-1/x^2)", x: 0},
		{expression: "1/(1/x)", x: 0},
		{expression: "2 + 0*(1/x)", x: 0},
		{expression: "sqrt(x)", x: -4},
		{expression: "root(2, x)", x: -4},
		{expression: "root(x, 8)", x: 0},
		{expression: "log(x)", x: 0},
	}

	for _, tt := range tests {
		t.Run(tt.expression, func(t *testing.T) {
			for engineType, eval := range newEvaluators(t, tt.expression) {
				_, err := eval(tt.x)
				require.ErrorIs(t, err, calcerr.ErrEval, "engine %s", engineType)
			}
		})
	}
}

func TestNewEvaluator(t *testing.T) {
	t.Parallel()
	ldr, err := loader.NewFromString("x")
	require.NoError(t, err)

	_, err = NewEvaluator(types.Type("wasm"), nil, ldr)
	require.Error(t, err)

	eval, err := NewEvaluator("", nil, ldr)
	require.NoError(t, err)
	got, err := eval.Eval(7)
	require.NoError(t, err)
	assert.InDelta(t, 7.0, got, 0)
}
