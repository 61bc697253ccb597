package allocate

import (
	"fmt"
	"math"

	"github.com/katalvlaran/transport/matrix"
)

// ModifiedDistribution runs the cost-ascending greedy pass used by
// MinimumCost and returns an identical plan.
//
// No u/v potentials are computed and no improvement loop runs: the result is
// an initial feasible solution, exactly like MinimumCost.
//
// Complexity: O(R·C·log(R·C)).
func ModifiedDistribution(costs matrix.Matrix, supply, demand []float64) (Plan, error) {
	return ModifiedDistributionWithOptions(costs, supply, demand, DefaultOptions())
}

// ModifiedDistributionWithOptions is ModifiedDistribution with explicit Options.
func ModifiedDistributionWithOptions(costs matrix.Matrix, supply, demand []float64, opts Options) (Plan, error) {
	return ModifiedDistributionWithPriorOptions(costs, supply, demand, nil, opts)
}

// ModifiedDistributionWithPrior seeds the plan from prior allocations (for
// example the plan of another method) and completes it greedily.
//
// Stages:
//  1. Replay: every prior entry is applied to fresh copies of supply and
//     demand, in order. Zero-quantity entries are ignored.
//  2. Complete: the cost-ascending pass runs over the remaining cells,
//     skipping any cell already present in the replayed set.
//
// The returned plan lists the replayed entries first, then the greedy
// additions. An empty prior yields the same plan as ModifiedDistribution.
//
// Errors (the call aborts and returns no plan):
//   - ErrIndexOutOfRange  - a prior entry points outside the grid.
//   - ErrNaNInf           - a prior quantity is not finite.
//   - ErrNegativeQuantity - a prior quantity is negative.
//   - ErrDuplicateCell    - a prior cell appears twice.
//   - *CapacityError (ErrAllocationExceedsCapacity) - a prior quantity exceeds
//     the remaining supply or demand at its cell.
func ModifiedDistributionWithPrior(costs matrix.Matrix, supply, demand []float64, prior Plan) (Plan, error) {
	return ModifiedDistributionWithPriorOptions(costs, supply, demand, prior, DefaultOptions())
}

// ModifiedDistributionWithPriorOptions is ModifiedDistributionWithPrior with
// explicit Options.
func ModifiedDistributionWithPriorOptions(costs matrix.Matrix, supply, demand []float64, prior Plan, opts Options) (Plan, error) {
	// Stage 1 (Validate): shared input checks.
	w, err := newWorkspace(costs, supply, demand, opts)
	if err != nil {
		return nil, err
	}

	// Stage 2 (Replay): prior entries, fail-fast with no partial plan.
	applied := make([][]bool, w.rows)
	for i := range applied {
		applied[i] = make([]bool, w.cols)
	}

	if err = w.replay(prior, applied); err != nil {
		return nil, err
	}
	// Stage 3 (Complete): greedy pass over the cells not yet decided.
	w.costAscending(func(i, j int) bool { return applied[i][j] })

	return w.plan, nil
}

// replay applies prior entries one by one and marks their cells.
func (w *workspace) replay(prior Plan, applied [][]bool) error {
	for k, a := range prior {
		if a.Supplier < 0 || a.Supplier >= w.rows || a.Consumer < 0 || a.Consumer >= w.cols {
			return fmt.Errorf("%w: prior[%d] at (%d,%d)", ErrIndexOutOfRange, k, a.Supplier, a.Consumer)
		}
		if math.IsNaN(a.Quantity) || math.IsInf(a.Quantity, 0) {
			return fmt.Errorf("%w: prior[%d]", ErrNaNInf, k)
		}
		if a.Quantity < 0 {
			return fmt.Errorf("%w: prior[%d]=%g", ErrNegativeQuantity, k, a.Quantity)
		}
		if a.Quantity == 0 {
			continue
		}
		if applied[a.Supplier][a.Consumer] {
			return fmt.Errorf("%w: prior[%d] at (%d,%d)", ErrDuplicateCell, k, a.Supplier, a.Consumer)
		}

		var (
			s = w.supply[a.Supplier]
			d = w.demand[a.Consumer]
		)
		if a.Quantity > s+w.eps || a.Quantity > d+w.eps {
			return &CapacityError{
				Supplier:  a.Supplier,
				Consumer:  a.Consumer,
				Requested: a.Quantity,
				Supply:    s,
				Demand:    d,
			}
		}

		// within eps the request may overshoot; clamp so nothing goes negative
		w.supply[a.Supplier] = math.Max(0, s-a.Quantity)
		w.demand[a.Consumer] = math.Max(0, d-a.Quantity)
		w.plan = append(w.plan, a)
		applied[a.Supplier][a.Consumer] = true
	}

	return nil
}
