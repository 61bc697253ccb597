package allocate

import "github.com/katalvlaran/transport/matrix"

// SequentialSteps builds a plan by scanning the grid row by row.
//
// For each supplier in index order, consumers are visited in index order:
// once the supplier is exhausted the rest of its row is abandoned, an
// exhausted consumer is skipped, and any other cell receives
// min(supply[i], demand[j]). Costs are ignored.
//
// This is the Northwest-Corner rule widened to a full row-major pass; on a
// single row or a single column both produce the same plan.
//
// Complexity: O(R·C).
func SequentialSteps(costs matrix.Matrix, supply, demand []float64) (Plan, error) {
	return SequentialStepsWithOptions(costs, supply, demand, DefaultOptions())
}

// SequentialStepsWithOptions is SequentialSteps with explicit Options.
func SequentialStepsWithOptions(costs matrix.Matrix, supply, demand []float64, opts Options) (Plan, error) {
	w, err := newWorkspace(costs, supply, demand, opts)
	if err != nil {
		return nil, err
	}

	var i, j int
	for i = 0; i < w.rows; i++ {
		for j = 0; j < w.cols; j++ {
			if w.exhausted(w.supply[i]) {
				break
			}
			if w.exhausted(w.demand[j]) {
				continue
			}
			w.ship(i, j)
		}
	}

	return w.plan, nil
}
