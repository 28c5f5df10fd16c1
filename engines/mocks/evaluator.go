// Package mocks provides testify mocks of the engine contracts.
package mocks

import (
	"github.com/stretchr/testify/mock"
)

// Evaluator is a mock implementation of platform.Evaluator for testing purposes.
type Evaluator struct {
	mock.Mock
}

// Eval is a mock implementation of the Eval method.
func (m *Evaluator) Eval(x float64) (float64, error) {
	args := m.Called(x)
	if fn, ok := args.Get(0).(func(float64) float64); ok {
		return fn(x), args.Error(1)
	}
	return args.Get(0).(float64), args.Error(1)
}

// NewPolynomial returns a mock that answers every call with the value of
// the polynomial with the given coefficients, lowest degree first.
func NewPolynomial(coefficients ...float64) *Evaluator {
	m := new(Evaluator)
	m.On("Eval", mock.AnythingOfType("float64")).Return(
		func(x float64) float64 {
			sum := 0.0
			for i := len(coefficients) - 1; i >= 0; i-- {
				sum = sum*x + coefficients[i]
			}
			return sum
		},
		nil,
	)
	return m
}
