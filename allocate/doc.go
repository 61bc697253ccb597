// Package allocate computes initial feasible solutions to the balanced
// transportation problem.
//
// 🚚 What is the transportation problem?
//
//	R suppliers hold supply[i] units, C consumers need demand[j] units and
//	shipping one unit from i to j costs costs[i][j]. A feasible plan ships
//	every unit of supply to some consumer and satisfies every demand.
//
// Five greedy heuristics are offered, all with the same contract (Func):
//
//   - NorthwestCorner - diagonal sweep from cell (0,0); ignores costs.
//
//   - MinimumCost - global cost-ascending greedy pass.
//
//   - Vogel - penalty-driven selection (Vogel's Approximation Method).
//
//   - SequentialSteps - full row-major scan; ignores costs.
//
//   - ModifiedDistribution - the cost-ascending pass, plus
//     ModifiedDistributionWithPrior which seeds the plan from an earlier result.
//
// None of them runs an optimality test: the names ModifiedDistribution and
// SequentialSteps are kept for continuity with the textbook menu, but both
// produce initial feasible solutions only.
//
// # Contract
//
//		func(costs matrix.Matrix, supply, demand []float64) (Plan, error)
//
//	  - costs is read through a private snapshot and never written.
//	  - supply and demand are copied; the caller's slices are never mutated.
//	  - sum(supply) == sum(demand) is a precondition. It is NOT checked here
//	    (see problem.Validate); under imbalance the plan is partial.
//	  - A Plan never contains a zero-quantity allocation or a repeated cell.
//
// # Errors
//
//	ErrNilMatrix, ErrEmptyProblem, ErrDimensionMismatch - bad shape.
//	ErrNaNInf           - non-finite cost, supply or demand.
//	ErrNegativeQuantity - negative supply or demand.
//	ErrAllocationExceedsCapacity - prior entry does not fit (WithPrior only).
//
// TotalCost sums quantity·cost over a plan and Verify checks the
// conservation invariants of any plan against the original vectors.
package allocate
