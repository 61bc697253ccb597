package allocate

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/transport/matrix"
)

// cell is one (cost, supplier, consumer) triple of the grid.
type cell struct {
	cost float64
	i, j int
}

// compareCells orders cells lexicographically by (cost, i, j).
// The index tie-break keeps plans reproducible when costs repeat.
func compareCells(a, b cell) int {
	if c := cmp.Compare(a.cost, b.cost); c != 0 {
		return c
	}
	if c := cmp.Compare(a.i, b.i); c != 0 {
		return c
	}

	return cmp.Compare(a.j, b.j)
}

// sortedCells lists all R·C cells in ascending (cost, i, j) order.
//
// Complexity: O(R·C·log(R·C)).
func (w *workspace) sortedCells() []cell {
	cells := make([]cell, 0, w.rows*w.cols)
	var i, j int
	for i = 0; i < w.rows; i++ {
		for j = 0; j < w.cols; j++ {
			cells = append(cells, cell{cost: w.costs[i][j], i: i, j: j})
		}
	}
	slices.SortFunc(cells, compareCells)

	return cells
}

// costAscending walks every cell cheapest-first and ships wherever both the
// supplier and the consumer still have something left. skip, when non-nil,
// excludes cells that were already decided.
func (w *workspace) costAscending(skip func(i, j int) bool) {
	for _, c := range w.sortedCells() {
		if skip != nil && skip(c.i, c.j) {
			continue
		}
		if w.exhausted(w.supply[c.i]) || w.exhausted(w.demand[c.j]) {
			continue
		}
		w.ship(c.i, c.j)
	}
}

// MinimumCost builds a plan by filling the globally cheapest cells first.
//
// Algorithm:
//  1. List all (cost, i, j) triples and sort them ascending, ties broken by
//     supplier index and then consumer index.
//  2. For each triple in order: if supply[i] and demand[j] are both positive,
//     ship min(supply[i], demand[j]). Exhausted cells are skipped; nothing is
//     re-sorted.
//
// Complexity: O(R·C·log(R·C)) time, O(R·C) memory.
func MinimumCost(costs matrix.Matrix, supply, demand []float64) (Plan, error) {
	return MinimumCostWithOptions(costs, supply, demand, DefaultOptions())
}

// MinimumCostWithOptions is MinimumCost with explicit Options.
func MinimumCostWithOptions(costs matrix.Matrix, supply, demand []float64, opts Options) (Plan, error) {
	w, err := newWorkspace(costs, supply, demand, opts)
	if err != nil {
		return nil, err
	}
	w.costAscending(nil)

	return w.plan, nil
}
