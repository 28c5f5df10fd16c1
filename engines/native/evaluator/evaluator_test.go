package evaluator

import (
	"log/slog"
	"math"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/robbyt/go-polyquad/engines/native/compiler"
	engineTypes "github.com/robbyt/go-polyquad/engines/types"
	"github.com/robbyt/go-polyquad/platform/calcerr"
	"github.com/robbyt/go-polyquad/platform/script"
	"github.com/robbyt/go-polyquad/platform/script/loader"
)

func newEvaluator(t *testing.T, expression string) *Evaluator {
	t.Helper()
	handler := slog.NewTextHandler(os.Stdout, nil)

	ldr, err := loader.NewFromString(expression)
	require.NoError(t, err)
	comp, err := compiler.New(compiler.WithLogHandler(handler))
	require.NoError(t, err)
	unit, err := script.NewExecutableUnit(handler, "", ldr, comp)
	require.NoError(t, err)

	return New(handler, unit)
}

func TestEvaluator_Eval(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		expression string
		x          float64
		want       float64
	}{
		{name: "precedence", expression: "2+3*4", x: 0, want: 14},
		{name: "implicit multiplication", expression: "2x(x+1)", x: 3, want: 24},
		{name: "odd root of negative", expression: "root(3,-8)", x: 0, want: -2},
		{name: "constant", expression: "2*pi", x: 0, want: 2 * math.Pi},
		{name: "left associative power", expression: "2^3^2", x: 0, want: 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eval := newEvaluator(t, tt.expression)
			got, err := eval.Eval(tt.x)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestEvaluator_EvalErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		expression string
		x          float64
		message    string
	}{
		{name: "division by zero", expression: "1/x", x: 0, message: "division by zero"},
		{name: "even root", expression: "root(2,x)", x: -4, message: "cannot take an even root of a negative number"},
		{name: "sqrt of negative", expression: "sqrt(x)", x: -1, message: "sqrt is undefined for -1"},
		{name: "non-finite power", expression: "x^0.5", x: -1, message: "expression is not finite at x = -1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eval := newEvaluator(t, tt.expression)
			_, err := eval.Eval(tt.x)
			require.ErrorIs(t, err, calcerr.ErrEval)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestEvaluator_Concurrent(t *testing.T) {
	t.Parallel()
	eval := newEvaluator(t, "x^2 + sin(x)")

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func(x float64) {
			defer wg.Done()
			got, err := eval.Eval(x)
			assert.NoError(t, err)
			assert.InDelta(t, x*x+math.Sin(x), got, 1e-12)
		}(float64(i))
	}
	wg.Wait()
}

func TestEvaluator_MissingProgram(t *testing.T) {
	t.Parallel()
	handler := slog.NewTextHandler(os.Stdout, nil)

	t.Run("nil unit", func(t *testing.T) {
		eval := New(handler, nil)
		_, err := eval.Eval(0)
		require.ErrorIs(t, err, ErrExecUnitNil)
		assert.Nil(t, eval.Program())
	})

	t.Run("foreign bytecode", func(t *testing.T) {
		content := new(script.MockExecutableContent)
		content.On("GetByteCode").Return("not a program")
		content.On("GetEngineType").Return(engineTypes.Starlark)
		content.On("GetSource").Return("x")

		comp := new(script.MockCompiler)
		comp.On("Compile", mock.Anything).Return(content, nil)

		unit, err := script.NewExecutableUnit(handler, "", loader.NewMockLoaderWithContent([]byte("x")), comp)
		require.NoError(t, err)

		eval := New(handler, unit)
		_, err = eval.Eval(0)
		require.ErrorIs(t, err, ErrProgramWrong)
	})

	t.Run("string", func(t *testing.T) {
		assert.Equal(t, "native.Evaluator", New(handler, nil).String())
	})
}
