// Package allocate_test provides shared fixtures and helpers for the
// allocator tests.
package allocate_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/willauld/lpsimplex"

	"github.com/katalvlaran/transport/allocate"
	"github.com/katalvlaran/transport/matrix"
)

const (
	// tolExact is used where the heuristics work on integers.
	tolExact = 1e-9

	// tolLP absorbs simplex round-off when comparing with the LP optimum.
	tolLP = 1e-6

	// seedDet keeps random instances reproducible.
	seedDet = int64(7)
)

// fixture is a balanced problem with hand-traced expectations.
type fixture struct {
	costs  [][]float64
	supply []float64
	demand []float64
}

// smallFixture: 2 suppliers × 3 consumers, total 50.
func smallFixture() fixture {
	return fixture{
		costs:  [][]float64{{4, 6, 8}, {5, 3, 9}},
		supply: []float64{20, 30},
		demand: []float64{10, 25, 15},
	}
}

// textbookFixture: the classic 3×4 instance (NWC 1015, LCM 814, VAM 779).
func textbookFixture() fixture {
	return fixture{
		costs: [][]float64{
			{19, 30, 50, 10},
			{70, 30, 40, 60},
			{40, 8, 70, 20},
		},
		supply: []float64{7, 9, 18},
		demand: []float64{5, 8, 7, 14},
	}
}

// dense builds a *matrix.Dense or fails the test.
func dense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// randomBalanced draws an r×c instance with integer costs in [1,20] and
// integer supplies; demand is the same total split at random cut points.
func randomBalanced(rng *rand.Rand, r, c int) fixture {
	f := fixture{
		costs:  make([][]float64, r),
		supply: make([]float64, r),
		demand: make([]float64, c),
	}
	var total float64
	for i := 0; i < r; i++ {
		f.costs[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			f.costs[i][j] = float64(1 + rng.Intn(20))
		}
		f.supply[i] = float64(1 + rng.Intn(50))
		total += f.supply[i]
	}
	// spread total over c consumers, each at least 1 when possible
	remaining := total
	for j := 0; j < c-1; j++ {
		share := float64(rng.Intn(int(remaining)/(c-j) + 1))
		f.demand[j] = share
		remaining -= share
	}
	f.demand[c-1] = remaining

	return f
}

// sliceMatrix is a plain [][]float64 Matrix without Dense's NaN guard.
type sliceMatrix struct{ a [][]float64 }

var _ matrix.Matrix = sliceMatrix{}

func (m sliceMatrix) Rows() int { return len(m.a) }
func (m sliceMatrix) Cols() int {
	if len(m.a) == 0 {
		return 0
	}

	return len(m.a[0])
}
func (m sliceMatrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return 0, matrix.ErrOutOfRange
	}

	return m.a[i][j], nil
}
func (m sliceMatrix) Set(i, j int, v float64) error {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return matrix.ErrOutOfRange
	}
	m.a[i][j] = v

	return nil
}
func (m sliceMatrix) Clone() matrix.Matrix {
	cp := make([][]float64, len(m.a))
	for i := range m.a {
		cp[i] = append([]float64(nil), m.a[i]...)
	}

	return sliceMatrix{a: cp}
}

// lpOptimum solves the transportation LP with the simplex oracle and returns
// the optimal cost. ok is false when the returned point is not feasible, in
// which case callers skip the comparison.
//
// Formulation (x flattened row-major, x ≥ 0):
//
//	min  Σ c_ij x_ij
//	s.t. Σ_j x_ij = s_i           for every supplier
//	     Σ_i x_ij = d_j           for all consumers but the last (redundant)
//	     Σ x_ij  ≤ total + 1      (keeps A_ub non-empty)
func lpOptimum(f fixture) (cost float64, ok bool) {
	var (
		r = len(f.supply)
		c = len(f.demand)
		n = r * c
	)
	obj := make([]float64, n)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			obj[i*c+j] = f.costs[i][j]
		}
	}

	var (
		aeq   [][]float64
		beq   []float64
		total float64
	)
	for i := 0; i < r; i++ {
		row := make([]float64, n)
		for j := 0; j < c; j++ {
			row[i*c+j] = 1
		}
		aeq = append(aeq, row)
		beq = append(beq, f.supply[i])
		total += f.supply[i]
	}
	for j := 0; j < c-1; j++ {
		row := make([]float64, n)
		for i := 0; i < r; i++ {
			row[i*c+j] = 1
		}
		aeq = append(aeq, row)
		beq = append(beq, f.demand[j])
	}

	aub := [][]float64{make([]float64, n)}
	for k := range aub[0] {
		aub[0][k] = 1
	}
	bub := []float64{total + 1}

	callback := lpsimplex.Callbackfunc(nil)
	result := lpsimplex.LPSimplex(obj, aub, bub, aeq, beq, nil, callback, false, 4000, 1.0e-12, true)
	if len(result.X) != n {
		return 0, false
	}

	plan := make(allocate.Plan, 0, n)
	for k, x := range result.X {
		if x < -tolLP {
			return 0, false
		}
		cost += x * obj[k]
		if x > tolLP {
			plan = append(plan, allocate.Allocation{Supplier: k / c, Consumer: k % c, Quantity: x})
		}
	}
	if allocate.Verify(plan, f.supply, f.demand, 1e-4) != nil {
		return 0, false
	}

	return cost, true
}
