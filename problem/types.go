package problem

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/transport/matrix"
)

// DefaultTolerance absorbs decimal round-off in parsed totals.
const DefaultTolerance = 1e-9

// Options configures Validate.
//   - Tolerance: supply and demand totals are balanced when they agree within
//     Tolerance, absolutely or relatively. 0 demands exact equality.
type Options struct {
	Tolerance float64
}

// DefaultOptions returns the default validation settings.
func DefaultOptions() Options {
	return Options{Tolerance: DefaultTolerance}
}

func (o Options) validate() error {
	if math.IsNaN(o.Tolerance) || math.IsInf(o.Tolerance, 0) || o.Tolerance < 0 {
		return fmt.Errorf("%w: tolerance %g", ErrInvalidOptions, o.Tolerance)
	}

	return nil
}

// Problem is one transportation instance. Costs is R×C; Supply has R entries
// and Demand has C entries.
type Problem struct {
	Costs  matrix.Matrix
	Supply []float64
	Demand []float64
}

// New builds a Problem from plain slices and validates it with DefaultOptions.
// The inputs are copied.
func New(costs [][]float64, supply, demand []float64) (*Problem, error) {
	m, err := newCostMatrix(costs)
	if err != nil {
		return nil, err
	}
	p := &Problem{
		Costs:  m,
		Supply: append([]float64(nil), supply...),
		Demand: append([]float64(nil), demand...),
	}
	if err = p.Validate(DefaultOptions()); err != nil {
		return nil, err
	}

	return p, nil
}

// Dims returns the number of suppliers and consumers.
func (p *Problem) Dims() (rows, cols int) {
	if p == nil || p.Costs == nil {
		return 0, 0
	}

	return p.Costs.Rows(), p.Costs.Cols()
}

// SupplyCopy returns a fresh copy of the supply vector.
func (p *Problem) SupplyCopy() []float64 { return append([]float64(nil), p.Supply...) }

// DemandCopy returns a fresh copy of the demand vector.
func (p *Problem) DemandCopy() []float64 { return append([]float64(nil), p.Demand...) }

// TotalSupply returns Σ supply.
func (p *Problem) TotalSupply() float64 { return floats.Sum(p.Supply) }

// TotalDemand returns Σ demand.
func (p *Problem) TotalDemand() float64 { return floats.Sum(p.Demand) }

// Balanced reports whether the totals agree within tol.
func (p *Problem) Balanced(tol float64) bool {
	s, d := p.TotalSupply(), p.TotalDemand()
	if tol == 0 {
		return s == d
	}

	return scalar.EqualWithinAbsOrRel(s, d, tol, tol)
}

// newCostMatrix copies rows into a Dense, mapping matrix errors.
func newCostMatrix(rows [][]float64) (matrix.Matrix, error) {
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, mapMatrixError(err)
	}

	return m, nil
}
