package allocate

import (
	"fmt"
	"math"

	"github.com/katalvlaran/transport/matrix"
)

// Allocation ships Quantity units from Supplier to Consumer.
// Quantity is always > 0 in plans produced by this package.
type Allocation struct {
	Supplier int
	Consumer int
	Quantity float64
}

// String renders the allocation as (i,j)=q.
func (a Allocation) String() string {
	return fmt.Sprintf("(%d,%d)=%g", a.Supplier, a.Consumer, a.Quantity)
}

// Plan is an ordered allocation list. The order is the order in which the
// heuristic made its decisions; it matters for audit and display only.
type Plan []Allocation

// Clone returns an independent copy of p.
func (p Plan) Clone() Plan {
	if p == nil {
		return nil
	}
	out := make(Plan, len(p))
	copy(out, p)

	return out
}

// Func is the contract shared by every allocator.
type Func func(costs matrix.Matrix, supply, demand []float64) (Plan, error)

// DefaultEpsilon treats only exact zero as exhausted.
const DefaultEpsilon = 0.0

// Options configures the allocators.
//   - Epsilon: a remaining supply or demand <= Epsilon counts as exhausted, and
//     allocations of at most Epsilon are not recorded. Must be finite and >= 0.
type Options struct {
	Epsilon float64
}

// DefaultOptions returns exact-arithmetic defaults.
func DefaultOptions() Options {
	return Options{Epsilon: DefaultEpsilon}
}

// Validate reports ErrInvalidOptions for a negative or non-finite Epsilon.
// Every allocator calls it first; callers running several methods may call it
// once up front.
func (o Options) Validate() error {
	if math.IsNaN(o.Epsilon) || math.IsInf(o.Epsilon, 0) || o.Epsilon < 0 {
		return fmt.Errorf("%w: epsilon %g", ErrInvalidOptions, o.Epsilon)
	}

	return nil
}
