package problem

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/transport/matrix"
)

// Validate checks everything an allocator relies on, in this order:
//  1. Options and a non-nil cost matrix.
//  2. Shape: R>0, C>0, len(Supply)==R, len(Demand)==C.
//  3. Finite costs, finite non-negative quantities.
//  4. Balance: total supply equals total demand within opts.Tolerance.
//
// The first violation is returned.
//
// Complexity: O(R·C).
func (p *Problem) Validate(opts Options) error {
	if err := opts.validate(); err != nil {
		return err
	}
	if p == nil || p.Costs == nil {
		return ErrNilProblem
	}

	rows, cols := p.Dims()
	if rows <= 0 || cols <= 0 {
		return ErrEmpty
	}
	if len(p.Supply) != rows {
		return fmt.Errorf("%w: %d supply entries for %d cost rows", ErrDimensionMismatch, len(p.Supply), rows)
	}
	if len(p.Demand) != cols {
		return fmt.Errorf("%w: %d demand entries for %d cost columns", ErrDimensionMismatch, len(p.Demand), cols)
	}

	if _, err := matrix.ToRows(p.Costs); err != nil {
		return mapMatrixError(err)
	}
	if err := checkQuantities(p.Supply, FieldSupply); err != nil {
		return err
	}
	if err := checkQuantities(p.Demand, FieldDemand); err != nil {
		return err
	}

	if !p.Balanced(opts.Tolerance) {
		return &BalanceError{Supply: p.TotalSupply(), Demand: p.TotalDemand()}
	}

	return nil
}

func checkQuantities(v []float64, field string) error {
	for i, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%w: %s[%d]", ErrNaNInf, field, i)
		}
		if x < 0 {
			return fmt.Errorf("%w: %s[%d]=%g", ErrNegativeQuantity, field, i, x)
		}
	}

	return nil
}

// mapMatrixError translates matrix sentinels into this package's set while
// keeping the original in the chain.
func mapMatrixError(err error) error {
	switch {
	case errors.Is(err, matrix.ErrInvalidDimensions):
		return fmt.Errorf("%w: %w", ErrEmpty, err)
	case errors.Is(err, matrix.ErrDimensionMismatch):
		return fmt.Errorf("%w: %w", ErrDimensionMismatch, err)
	case errors.Is(err, matrix.ErrNaNInf):
		return fmt.Errorf("%w: %w", ErrNaNInf, err)
	case errors.Is(err, matrix.ErrNilMatrix):
		return fmt.Errorf("%w: %w", ErrNilProblem, err)
	default:
		return err
	}
}
