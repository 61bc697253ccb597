package allocate

import "github.com/katalvlaran/transport/matrix"

// NorthwestCorner builds a plan by sweeping diagonally from the top-left cell.
//
// Description:
//
//	Two cursors start at supplier 0 and consumer 0. Each step ships
//	min(supply[i], demand[j]) across (i,j), then moves the cursors:
//	  - both exhausted            → advance both,
//	  - supply exhausted, i<R-1   → advance i,
//	  - demand exhausted, j<C-1   → advance j,
//	  - otherwise                 → advance both (ends the sweep).
//	Costs are ignored entirely.
//
// For a non-degenerate balanced problem the plan has exactly R+C-1 entries;
// degenerate inputs yield fewer.
//
// Complexity: O(R+C) steps after the O(R·C) input snapshot.
func NorthwestCorner(costs matrix.Matrix, supply, demand []float64) (Plan, error) {
	return NorthwestCornerWithOptions(costs, supply, demand, DefaultOptions())
}

// NorthwestCornerWithOptions is NorthwestCorner with explicit Options.
func NorthwestCornerWithOptions(costs matrix.Matrix, supply, demand []float64, opts Options) (Plan, error) {
	w, err := newWorkspace(costs, supply, demand, opts)
	if err != nil {
		return nil, err
	}

	// i walks suppliers, j walks consumers; each step moves at least one
	var i, j int
	for i < w.rows && j < w.cols {
		w.ship(i, j)

		supplyDone := w.exhausted(w.supply[i])
		demandDone := w.exhausted(w.demand[j])
		switch {
		case supplyDone && demandDone:
			i++
			j++
		case supplyDone && i < w.rows-1:
			i++
		case demandDone && j < w.cols-1:
			j++
		default:
			i++
			j++
		}
	}

	return w.plan, nil
}
