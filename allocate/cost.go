// Package allocate - plan evaluation helpers.
//
// TotalCost and Verify are pure and side-effect free; they are used by the
// comparison layer and by tests to check every heuristic the same way.
package allocate

import (
	"fmt"
	"math"

	"github.com/katalvlaran/transport/matrix"
)

// TotalCost returns Σ quantity·costs[i][j] over plan.
//
// Errors:
//   - ErrNilMatrix if costs is nil.
//   - ErrIndexOutOfRange if an entry points outside the grid.
//
// Complexity: O(len(plan)).
func TotalCost(plan Plan, costs matrix.Matrix) (float64, error) {
	if costs == nil {
		return 0, ErrNilMatrix
	}
	var (
		rows = costs.Rows()
		cols = costs.Cols()
		sum  float64
		c    float64
		err  error
	)
	for k, a := range plan {
		if a.Supplier < 0 || a.Supplier >= rows || a.Consumer < 0 || a.Consumer >= cols {
			return 0, fmt.Errorf("%w: plan[%d] at (%d,%d)", ErrIndexOutOfRange, k, a.Supplier, a.Consumer)
		}
		c, err = costs.At(a.Supplier, a.Consumer)
		if err != nil {
			return 0, fmt.Errorf("allocate: plan[%d]: %w", k, err)
		}
		sum += a.Quantity * c
	}

	return sum, nil
}

// Verify checks a plan against the original supply and demand vectors:
// every entry in range with a positive quantity, no cell repeated, and
// per-supplier / per-consumer totals equal to supply / demand within tol.
//
// Errors: ErrIndexOutOfRange, ErrNonPositiveQuantity, ErrDuplicateCell,
// ErrSupplyMismatch, ErrDemandMismatch.
//
// Complexity: O(len(plan) + R + C).
func Verify(plan Plan, supply, demand []float64, tol float64) error {
	var (
		shipped  = make([]float64, len(supply))
		received = make([]float64, len(demand))
		seen     = make(map[[2]int]struct{}, len(plan))
	)
	for k, a := range plan {
		if a.Supplier < 0 || a.Supplier >= len(supply) || a.Consumer < 0 || a.Consumer >= len(demand) {
			return fmt.Errorf("%w: plan[%d] at (%d,%d)", ErrIndexOutOfRange, k, a.Supplier, a.Consumer)
		}
		if !(a.Quantity > 0) {
			return fmt.Errorf("%w: plan[%d]=%g", ErrNonPositiveQuantity, k, a.Quantity)
		}
		key := [2]int{a.Supplier, a.Consumer}
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: (%d,%d)", ErrDuplicateCell, a.Supplier, a.Consumer)
		}
		seen[key] = struct{}{}
		shipped[a.Supplier] += a.Quantity
		received[a.Consumer] += a.Quantity
	}

	for i := range supply {
		if math.Abs(shipped[i]-supply[i]) > tol {
			return fmt.Errorf("%w: supplier %d shipped %g of %g", ErrSupplyMismatch, i, shipped[i], supply[i])
		}
	}
	for j := range demand {
		if math.Abs(received[j]-demand[j]) > tol {
			return fmt.Errorf("%w: consumer %d received %g of %g", ErrDemandMismatch, j, received[j], demand[j])
		}
	}

	return nil
}
