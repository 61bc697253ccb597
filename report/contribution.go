package report

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/transport/allocate"
	"github.com/katalvlaran/transport/matrix"
)

// ErrNilInput is returned when a required problem, result or matrix is nil.
var ErrNilInput = errors.New("report: nil input")

// Contribution spreads a plan over an R×C matrix: cell (i,j) holds
// quantity·cost for allocated cells and 0 elsewhere.
//
// Errors: ErrNilInput, allocate.ErrIndexOutOfRange, or a matrix access error.
//
// Complexity: O(R·C + len(plan)).
func Contribution(plan allocate.Plan, costs matrix.Matrix) (*mat.Dense, error) {
	if costs == nil {
		return nil, ErrNilInput
	}
	var (
		rows = costs.Rows()
		cols = costs.Cols()
		out  = mat.NewDense(rows, cols, nil)
	)
	for k, a := range plan {
		if a.Supplier < 0 || a.Supplier >= rows || a.Consumer < 0 || a.Consumer >= cols {
			return nil, fmt.Errorf("%w: plan[%d] at (%d,%d)", allocate.ErrIndexOutOfRange, k, a.Supplier, a.Consumer)
		}
		c, err := costs.At(a.Supplier, a.Consumer)
		if err != nil {
			return nil, fmt.Errorf("report: plan[%d]: %w", k, err)
		}
		out.Set(a.Supplier, a.Consumer, out.At(a.Supplier, a.Consumer)+a.Quantity*c)
	}

	return out, nil
}

// RowTotals sums every row of m.
func RowTotals(m *mat.Dense) []float64 {
	rows, _ := m.Dims()
	out := make([]float64, rows)
	for i := range out {
		out[i] = floats.Sum(m.RawRowView(i))
	}

	return out
}
