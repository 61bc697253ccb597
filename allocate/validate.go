// Package allocate - input validation and the per-call working state.
//
// Every allocator starts from newWorkspace, which:
//  1. validates Options,
//  2. snapshots the cost matrix into a private [][]float64,
//  3. checks supply/demand lengths against the grid,
//  4. copies supply and demand into owned slices.
//
// Nothing here is shared between calls.
package allocate

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/transport/matrix"
)

// workspace is the mutable state owned by a single allocator call.
type workspace struct {
	costs  [][]float64 // private snapshot, read-only by convention
	supply []float64   // remaining supply
	demand []float64   // remaining demand
	rows   int
	cols   int
	eps    float64
	plan   Plan
}

// newWorkspace validates the inputs and builds the owned working copies.
//
// Stage 1 (Validate): Options, then a non-nil matrix.
// Stage 2 (Snapshot): copy costs into [][]float64, mapping matrix errors.
// Stage 3 (Shape): supply/demand lengths against the grid.
// Stage 4 (Finalize): copy quantities, rejecting NaN/Inf and negatives.
//
// Complexity: O(R·C).
func newWorkspace(costs matrix.Matrix, supply, demand []float64, opts Options) (*workspace, error) {
	// 1) Options and matrix presence
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if costs == nil {
		return nil, ErrNilMatrix
	}

	// 2) Private snapshot; the caller's matrix is never read again
	snapshot, err := matrix.ToRows(costs)
	if err != nil {
		switch {
		case errors.Is(err, matrix.ErrInvalidDimensions):
			return nil, fmt.Errorf("%w: %w", ErrEmptyProblem, err)
		case errors.Is(err, matrix.ErrNaNInf):
			return nil, fmt.Errorf("%w: %w", ErrNaNInf, err)
		case errors.Is(err, matrix.ErrNilMatrix):
			return nil, fmt.Errorf("%w: %w", ErrNilMatrix, err)
		default:
			return nil, err
		}
	}

	var (
		rows = len(snapshot)
		cols = len(snapshot[0])
	)
	// 3) One supply per row, one demand per column
	if len(supply) != rows {
		return nil, fmt.Errorf("%w: %d suppliers, %d cost rows", ErrDimensionMismatch, len(supply), rows)
	}
	if len(demand) != cols {
		return nil, fmt.Errorf("%w: %d consumers, %d cost columns", ErrDimensionMismatch, len(demand), cols)
	}

	// 4) Owned working copies; R+C-1 is the non-degenerate plan size
	w := &workspace{
		costs:  snapshot,
		supply: make([]float64, rows),
		demand: make([]float64, cols),
		rows:   rows,
		cols:   cols,
		eps:    opts.Epsilon,
		plan:   make(Plan, 0, rows+cols-1),
	}
	if err = copyQuantities(w.supply, supply, "supply"); err != nil {
		return nil, err
	}
	if err = copyQuantities(w.demand, demand, "demand"); err != nil {
		return nil, err
	}

	return w, nil
}

// copyQuantities copies src into dst rejecting NaN/Inf and negatives.
func copyQuantities(dst, src []float64, field string) error {
	for i, v := range src {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s[%d]", ErrNaNInf, field, i)
		}
		if v < 0 {
			return fmt.Errorf("%w: %s[%d]=%g", ErrNegativeQuantity, field, i, v)
		}
		dst[i] = v
	}

	return nil
}

// exhausted reports whether a remaining amount counts as zero.
func (w *workspace) exhausted(v float64) bool {
	return v <= w.eps
}

// ship moves min(supply[i], demand[j]) across cell (i,j) and records it.
// Quantities at or below eps are applied but not recorded, so a plan never
// carries a zero-quantity entry.
func (w *workspace) ship(i, j int) float64 {
	q := math.Min(w.supply[i], w.demand[j])
	w.supply[i] -= q
	w.demand[j] -= q
	if q > w.eps {
		w.plan = append(w.plan, Allocation{Supplier: i, Consumer: j, Quantity: q})
	}

	return q
}
