package allocate

import (
	"math"

	"github.com/katalvlaran/transport/matrix"
)

// Vogel builds a plan with Vogel's Approximation Method.
//
// Description:
//
//	Each open row and column gets a penalty: the gap between its two
//	cheapest open cells. The line with the largest penalty is served first,
//	through its cheapest open cell, so that the most expensive "second
//	choice" is avoided.
//
// Algorithm (repeated until every row and column is covered):
//  1. Row penalty over uncovered columns: second-smallest − smallest cost;
//     the single cost if only one cell is open; 0 if none.
//  2. Column penalty, symmetric over uncovered rows.
//  3. Take the largest row penalty and the largest column penalty; within
//     rows (and within columns) the lowest index wins ties. The row is
//     chosen when rowPenalty >= colPenalty.
//  4. In the chosen line take the open cell with strictly smallest cost,
//     lowest index on ties.
//  5. Ship min(supply[i], demand[j]).
//  6. Cover the row if its supply is exhausted and the column if its demand
//     is exhausted; both may close in the same step.
//
// Under a balanced problem step 4 always finds a cell. If it does not
// (imbalance), the chosen line is covered without shipping so the loop
// still terminates.
//
// Complexity: O((R+C)·R·C) time, O(R+C) extra memory.
func Vogel(costs matrix.Matrix, supply, demand []float64) (Plan, error) {
	return VogelWithOptions(costs, supply, demand, DefaultOptions())
}

// VogelWithOptions is Vogel with explicit Options.
//
// Stage 1 (Validate): build the workspace.
// Stage 2 (Execute): penalty scan, line choice, shipment, covering.
// Stage 3 (Finalize): return the plan in selection order.
func VogelWithOptions(costs matrix.Matrix, supply, demand []float64, opts Options) (Plan, error) {
	w, err := newWorkspace(costs, supply, demand, opts)
	if err != nil {
		return nil, err
	}

	var (
		rowCovered = make([]bool, w.rows)
		colCovered = make([]bool, w.cols)
	)

	for {
		// 1) Best open row and best open column by penalty
		row, rowPen, hasRow := w.bestRow(rowCovered, colCovered)
		col, colPen, hasCol := w.bestCol(rowCovered, colCovered)
		if !hasRow && !hasCol {
			break
		}

		// 2) Row wins ties; pick its cheapest open cell, or close a dead line
		var i, j int
		if hasRow && (!hasCol || rowPen >= colPen) {
			i, j = row, w.cheapestInRow(row, colCovered)
			if j < 0 {
				rowCovered[i] = true
				continue
			}
		} else {
			i, j = w.cheapestInCol(col, rowCovered), col
			if i < 0 {
				colCovered[j] = true
				continue
			}
		}

		// 3) Ship and cover whatever ran out; both lines may close at once
		w.ship(i, j)
		if w.exhausted(w.supply[i]) {
			rowCovered[i] = true
		}
		if w.exhausted(w.demand[j]) {
			colCovered[j] = true
		}
	}

	return w.plan, nil
}

// penaltyTracker accumulates the two smallest values of one line.
type penaltyTracker struct {
	n          int
	min1, min2 float64
}

func (p *penaltyTracker) add(v float64) {
	switch {
	case p.n == 0 || v < p.min1:
		p.min2, p.min1 = p.min1, v
	case p.n == 1 || v < p.min2:
		p.min2 = v
	}
	p.n++
}

// value is the Vogel penalty of the collected line.
func (p *penaltyTracker) value() float64 {
	switch p.n {
	case 0:
		return 0
	case 1:
		return p.min1
	default:
		return p.min2 - p.min1
	}
}

// bestRow returns the uncovered row with the largest penalty (lowest index on
// ties). ok is false when every row is covered.
func (w *workspace) bestRow(rowCovered, colCovered []bool) (row int, penalty float64, ok bool) {
	row, penalty = -1, math.Inf(-1)
	var i, j int
	for i = 0; i < w.rows; i++ {
		if rowCovered[i] {
			continue
		}
		var t penaltyTracker
		for j = 0; j < w.cols; j++ {
			if !colCovered[j] {
				t.add(w.costs[i][j])
			}
		}
		if v := t.value(); row < 0 || v > penalty {
			row, penalty = i, v
		}
	}

	return row, penalty, row >= 0
}

// bestCol is bestRow for columns.
func (w *workspace) bestCol(rowCovered, colCovered []bool) (col int, penalty float64, ok bool) {
	col, penalty = -1, math.Inf(-1)
	var i, j int
	for j = 0; j < w.cols; j++ {
		if colCovered[j] {
			continue
		}
		var t penaltyTracker
		for i = 0; i < w.rows; i++ {
			if !rowCovered[i] {
				t.add(w.costs[i][j])
			}
		}
		if v := t.value(); col < 0 || v > penalty {
			col, penalty = j, v
		}
	}

	return col, penalty, col >= 0
}

// cheapestInRow returns the open column with strictly smallest cost in row i,
// or -1 if the row has no open column.
func (w *workspace) cheapestInRow(i int, colCovered []bool) int {
	best, bestCost := -1, math.Inf(1)
	for j := 0; j < w.cols; j++ {
		if !colCovered[j] && (best < 0 || w.costs[i][j] < bestCost) {
			best, bestCost = j, w.costs[i][j]
		}
	}

	return best
}

// cheapestInCol returns the open row with strictly smallest cost in column j,
// or -1 if the column has no open row.
func (w *workspace) cheapestInCol(j int, rowCovered []bool) int {
	best, bestCost := -1, math.Inf(1)
	for i := 0; i < w.rows; i++ {
		if !rowCovered[i] && (best < 0 || w.costs[i][j] < bestCost) {
			best, bestCost = i, w.costs[i][j]
		}
	}

	return best
}
