// This file contains benchmarks comparing the expression engines.
//
// 1. Evaluation Patterns:
//   - SingleExecution: compiles the expression for every evaluation (slower)
//   - CompileOnceRunMany: reuses a compiled evaluator (faster)
//
// 2. Engines:
//   - native: in-process node arena
//   - starlark: Starlark lambda, one thread per call
//   - govaluate: govaluate expression with registered functions
//
// Example: go test ./engines -bench BenchmarkEvaluationPatterns -benchtime 20x
package engines_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/robbyt/go-polyquad/engines"
	"github.com/robbyt/go-polyquad/engines/types"
	"github.com/robbyt/go-polyquad/platform/script/loader"
)

// quietHandler is a slog.Handler that discards all logs
var quietHandler = slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError})

const benchExpression = "x^3 - 2x^2 + 3sin(pi x) - root(3, x + 1)"

func BenchmarkEvaluationPatterns(b *testing.B) {
	for _, engineType := range types.All() {
		b.Run(engineType.String()+"/SingleExecution", func(b *testing.B) {
			for b.Loop() {
				ldr, err := loader.NewFromString(benchExpression)
				if err != nil {
					b.Fatalf("Failed to create loader: %v", err)
				}
				f, err := engines.NewEvaluator(engineType, quietHandler, ldr)
				if err != nil {
					b.Fatalf("Failed to create evaluator: %v", err)
				}
				if _, err := f.Eval(0.5); err != nil {
					b.Fatalf("Failed to evaluate: %v", err)
				}
			}
		})

		b.Run(engineType.String()+"/CompileOnceRunMany", func(b *testing.B) {
			ldr, err := loader.NewFromString(benchExpression)
			if err != nil {
				b.Fatalf("Failed to create loader: %v", err)
			}
			f, err := engines.NewEvaluator(engineType, quietHandler, ldr)
			if err != nil {
				b.Fatalf("Failed to create evaluator: %v", err)
			}

			x := 0.0
			for b.Loop() {
				if _, err := f.Eval(x); err != nil {
					b.Fatalf("Failed to evaluate: %v", err)
				}
				x += 1e-6
			}
		})
	}
}
