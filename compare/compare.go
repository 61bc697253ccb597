package compare

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/transport/allocate"
	"github.com/katalvlaran/transport/problem"
)

// Compare validates p and runs the selected methods on it.
//
// Errors (no Comparison is returned):
//   - allocate.ErrInvalidOptions for a bad opts.Allocate.
//   - any problem validation error (ErrUnbalanced, ErrDimensionMismatch, ...).
//   - allocate.ErrUnknownMethod for an unknown id in opts.Methods.
//   - ctx.Err() if the context is cancelled before every method has started.
//
// Per-method failures are stored in Result.Err.
func Compare(ctx context.Context, p *problem.Problem, opts Options) (*Comparison, error) {
	// Stage 1 (Validate): options, then the problem, then the selection.
	if err := opts.Allocate.Validate(); err != nil {
		return nil, err
	}
	if err := p.Validate(opts.Problem); err != nil {
		return nil, err
	}
	methods, err := resolve(opts.Methods)
	if err != nil {
		return nil, err
	}

	var (
		log     = opts.logger()
		results = make([]Result, len(methods))
	)
	rows, cols := p.Dims()
	log.Debug("compare: start", "methods", len(methods), "suppliers", rows, "consumers", cols, "parallel", opts.Parallel)

	// Stage 2 (Execute): each method on its own copies, in selection order.
	if !opts.Parallel {
		for i, m := range methods {
			if err = ctx.Err(); err != nil {
				return nil, err
			}
			results[i] = run(p, m, opts.Allocate, log)
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		if opts.Workers > 0 {
			g.SetLimit(opts.Workers)
		}
		for i, m := range methods {
			i, m := i, m
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				results[i] = run(p, m, opts.Allocate, log)

				return nil
			})
		}
		if err = g.Wait(); err != nil {
			return nil, err
		}
	}

	// Stage 3 (Finalize): surface per-method failures in the log only.
	for _, r := range results {
		if r.Err != nil {
			log.Warn("compare: method failed", "method", r.Method.ID, "error", r.Err)
		}
	}

	return &Comparison{Results: results}, nil
}

// run executes one method on fresh copies of supply and demand.
func run(p *problem.Problem, m allocate.Method, opts allocate.Options, log *slog.Logger) Result {
	var (
		start = time.Now()
		res   = Result{Method: m}
	)

	plan, err := m.Solve(p.Costs, p.SupplyCopy(), p.DemandCopy(), opts)
	if err != nil {
		res.Err = fmt.Errorf("compare: %s: %w", m.ID, err)
		return res
	}
	cost, err := allocate.TotalCost(plan, p.Costs)
	if err != nil {
		res.Err = fmt.Errorf("compare: %s: %w", m.ID, err)
		return res
	}
	res.Plan, res.Cost = plan, cost

	log.Debug("compare: method done", "method", m.ID, "cost", cost, "routes", len(plan), "elapsed", time.Since(start))

	return res
}

// resolve maps ids to methods; no ids means every registered method.
func resolve(ids []string) ([]allocate.Method, error) {
	if len(ids) == 0 {
		return allocate.Methods(), nil
	}
	out := make([]allocate.Method, 0, len(ids))
	for _, id := range ids {
		m, err := allocate.Lookup(id)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}

	return out, nil
}
