package mocks

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robbyt/go-polyquad/platform"
)

func TestEvaluatorImplementsEvaluator(t *testing.T) {
	t.Parallel()
	var _ platform.Evaluator = (*Evaluator)(nil)
}

func TestEvaluator(t *testing.T) {
	t.Parallel()

	t.Run("fixed return", func(t *testing.T) {
		m := new(Evaluator)
		m.On("Eval", 2.0).Return(4.0, nil)
		m.On("Eval", 0.0).Return(0.0, errors.New("boom"))

		v, err := m.Eval(2)
		require.NoError(t, err)
		assert.InDelta(t, 4.0, v, 0)

		_, err = m.Eval(0)
		require.Error(t, err)
		m.AssertExpectations(t)
	})

	t.Run("polynomial", func(t *testing.T) {
		m := NewPolynomial(1, 0, 3) // 1 + 3x^2
		v, err := m.Eval(2)
		require.NoError(t, err)
		assert.InDelta(t, 13.0, v, 0)
		m.AssertNumberOfCalls(t, "Eval", 1)
	})
}
