// Package sweep runs one simulation across many seeds and reports how each
// run converged.
package sweep

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strconv"

	"golang.org/x/sync/errgroup"

	"lifegrid/internal/core"
)

// Options selects the sim and the seeds to sweep.
type Options struct {
	Sim            string
	Params         map[string]string
	Seeds          int
	FirstSeed      int64
	Workers        int
	MaxGenerations int
}

// Result summarizes a single seed.
type Result struct {
	Seed int64
	// Generations is how many generations ran.
	Generations int
	// FrozenAt is the generation that first changed nothing, or 0.
	FrozenAt   int
	AliveCount int
	PeakAlive  int
}

// Frozen reports whether the run converged.
func (r Result) Frozen() bool { return r.FrozenAt > 0 }

// Run sweeps opts.Seeds consecutive seeds with at most opts.Workers sims in
// flight. Results are ordered by seed.
func Run(ctx context.Context, opts Options) ([]Result, error) {
	factory, ok := core.Sims()[opts.Sim]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q", opts.Sim)
	}
	if opts.Seeds <= 0 {
		return nil, nil
	}
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	results := make([]Result, opts.Seeds)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range results {
		seed := opts.FirstSeed + int64(i)
		g.Go(func() error {
			params := maps.Clone(opts.Params)
			if params == nil {
				params = map[string]string{}
			}
			params["seed"] = strconv.FormatInt(seed, 10)
			sim, err := factory(params)
			if err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}
			res, err := runSeed(ctx, sim, opts.MaxGenerations)
			if err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}
			res.Seed = seed
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	slices.SortFunc(results, func(a, b Result) int {
		switch {
		case a.Seed < b.Seed:
			return -1
		case a.Seed > b.Seed:
			return 1
		}
		return 0
	})
	return results, nil
}

func runSeed(ctx context.Context, sim core.Sim, limit int) (Result, error) {
	if sel, ok := sim.(core.Selector); ok && sel.Selecting() {
		if err := sel.Start(); err != nil {
			return Result{}, err
		}
	}
	var res Result
	for res.Generations < limit {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		rep, err := sim.Step()
		if err != nil {
			return res, err
		}
		res.Generations = rep.Generation
		res.AliveCount = rep.AliveCount
		res.PeakAlive = max(res.PeakAlive, rep.AliveCount)
		if rep.Frozen {
			res.FrozenAt = rep.Generation
			break
		}
	}
	return res, nil
}
