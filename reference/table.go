package reference

import (
	"fmt"
	"math"
)

func builtin() map[Key]Reference {
	refs := map[Key]Reference{
		{Expression: "sqrt(x)", A: 6, B: 12}: {
			Formula: "(2/3) * (12^(3/2) - 6^(3/2))",
			Value:   2.0 / 3 * (math.Pow(12, 1.5) - math.Pow(6, 1.5)),
		},
		{Expression: "sin(x)", A: 0, B: math.Pi}: {
			Formula: "∫sin(x)dx from 0 to π = 2",
			Value:   2,
		},
		{Expression: "exp(x)", A: 0, B: 1}: {
			Formula: "∫e^x dx from 0 to 1 = e - 1",
			Value:   math.E - 1,
		},
		{Expression: "log(x)", A: 1, B: 2}: {
			Formula: "∫ln(x)dx from 1 to 2 = 2ln(2) - 1",
			Value:   2*math.Ln2 - 1,
		},
		{Expression: "x^3 - 2*x^2 + 3*x - 5", A: 0, B: 2}: {
			Formula: "∫(x^3 - 2x^2 + 3x - 5)dx from 0 to 2 = (x^4/4 - 2x^3/3 + 3x^2/2 - 5x)|_0^2",
			Value:   4 - 16.0/3 + 6 - 10,
		},
		{Expression: "x^2", A: 0, B: 1}: {
			Formula: "∫x^2 dx from 0 to 1 = x^3/3|_0^1 = 1/3",
			Value:   1.0 / 3,
		},
		{Expression: "sin(x)", A: 0, B: 2 * math.Pi}: known("sin(x)", 0, 2*math.Pi, 0),
	}

	monomials := []struct {
		expression string
		values     [3]float64 // [0,1], [0,2], [1,2]
	}{
		{expression: "x^2", values: [3]float64{1.0 / 3, 8.0 / 3, 7.0 / 3}},
		{expression: "x^3", values: [3]float64{1.0 / 4, 4, 15.0 / 4}},
		{expression: "x", values: [3]float64{1.0 / 2, 2, 3.0 / 2}},
		{expression: "5", values: [3]float64{5, 10, 5}},
	}
	bounds := [3][2]float64{{0, 1}, {0, 2}, {1, 2}}
	for _, m := range monomials {
		for i, ab := range bounds {
			key := Key{Expression: m.expression, A: ab[0], B: ab[1]}
			if _, ok := refs[key]; ok {
				continue
			}
			refs[key] = known(m.expression, ab[0], ab[1], m.values[i])
		}
	}

	refs[Key{Expression: "sqrt(x)", A: 0, B: 1}] = known("sqrt(x)", 0, 1, 2.0/3)
	refs[Key{Expression: "sqrt(x)", A: 1, B: 4}] = known("sqrt(x)", 1, 4, 14.0/3)
	return refs
}

func known(expression string, a, b, v float64) Reference {
	return Reference{
		Formula: fmt.Sprintf("known value of ∫%s dx from %s to %s", expression, formatBound(a), formatBound(b)),
		Value:   v,
	}
}

func formatBound(v float64) string {
	switch v {
	case math.Pi:
		return "π"
	case 2 * math.Pi:
		return "2π"
	}
	return fmt.Sprintf("%g", v)
}
