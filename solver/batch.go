package solver

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/strands/core"
)

// Result pairs a puzzle with its solutions.
type Result struct {
	Puzzle    Puzzle
	Solutions []core.Solution
}

// SolveBatch solves independent puzzles concurrently, one goroutine per
// puzzle, and returns their results in input order. The first failure
// cancels the remaining work and is returned.
func SolveBatch(ctx context.Context, puzzles []Puzzle, dict core.Dictionary, opts ...Option) ([]Result, error) {
	results := make([]Result, len(puzzles))
	g, ctx := errgroup.WithContext(ctx)
	for i, p := range puzzles {
		g.Go(func() error {
			s, err := New(p, dict, opts...)
			if err != nil {
				return err
			}
			sols, err := s.Solve(ctx)
			if err != nil {
				return err
			}
			results[i] = Result{Puzzle: p, Solutions: sols}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
