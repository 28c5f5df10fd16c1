package quadrature

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/robbyt/go-polyquad/platform"
	"github.com/robbyt/go-polyquad/platform/calcerr"
)

// DefaultParallelThreshold is the number of points from which a Sampler with
// more than one worker starts sampling in parallel, when Threshold is unset.
const DefaultParallelThreshold = 4096

// ctxCheckInterval is how many points are sampled between context checks.
const ctxCheckInterval = 1024

// Sampler evaluates f at a rule's points. The zero value samples
// sequentially. With Workers > 1 the points are split into contiguous
// chunks, one goroutine each; results land at their point's index, so the
// trace and the sum do not depend on scheduling.
type Sampler struct {
	Workers   int
	Threshold int
}

func (s Sampler) parallel(points int) bool {
	threshold := s.Threshold
	if threshold <= 0 {
		threshold = DefaultParallelThreshold
	}
	return s.Workers > 1 && points >= threshold
}

func (s Sampler) sample(ctx context.Context, f platform.Evaluator, xs []float64) ([]float64, error) {
	fx := make([]float64, len(xs))
	if !s.parallel(len(xs)) {
		if err := sampleRange(ctx, f, xs, fx, 0, len(xs)); err != nil {
			return nil, err
		}
		return fx, nil
	}

	workers := min(s.Workers, len(xs))
	chunk := (len(xs) + workers - 1) / workers
	failures := make([]error, workers)

	g, gctx := errgroup.WithContext(ctx)
	for w := range workers {
		lo := w * chunk
		hi := min(lo+chunk, len(xs))
		if lo >= hi {
			break
		}
		g.Go(func() error {
			err := sampleRange(gctx, f, xs, fx, lo, hi)
			if err != nil && ctx.Err() == nil && gctx.Err() == nil {
				// Other chunks run to completion; the lowest failing point
				// is reported after Wait.
				failures[w] = err
				return nil
			}
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	for _, err := range failures {
		if err != nil {
			return nil, err
		}
	}
	return fx, nil
}

func sampleRange(ctx context.Context, f platform.Evaluator, xs, fx []float64, lo, hi int) error {
	for i := lo; i < hi; i++ {
		if (i-lo)%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		v, err := sampleAt(f, xs[i])
		if err != nil {
			return err
		}
		fx[i] = v
	}
	return nil
}

func sampleAt(f platform.Evaluator, x float64) (float64, error) {
	v, err := f.Eval(x)
	if err != nil {
		return 0, fmt.Errorf("evaluating f(%g): %w", x, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, calcerr.Newf(calcerr.ErrEval, calcerr.NoPosition, "function does not produce a finite value at x = %g", x)
	}
	return v, nil
}
