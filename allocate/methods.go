package allocate

import (
	"fmt"

	"github.com/katalvlaran/transport/matrix"
)

// Method identifiers, in display order.
const (
	NorthwestCornerID      = "northwest"
	VogelID                = "vogel"
	MinimumCostID          = "mincost"
	SequentialStepsID      = "sequential"
	ModifiedDistributionID = "modi"
)

// Method binds a stable identifier and a display name to an allocator.
type Method struct {
	ID   string
	Name string

	solve func(costs matrix.Matrix, supply, demand []float64, opts Options) (Plan, error)
}

// Solve runs the method with explicit Options.
// A zero Method (not obtained from Methods or Lookup) returns ErrUnknownMethod.
func (m Method) Solve(costs matrix.Matrix, supply, demand []float64, opts Options) (Plan, error) {
	if m.solve == nil {
		return nil, fmt.Errorf("%w: %q has no allocator", ErrUnknownMethod, m.ID)
	}

	return m.solve(costs, supply, demand, opts)
}

// Func returns the method as a plain Func bound to opts.
func (m Method) Func(opts Options) Func {
	return func(costs matrix.Matrix, supply, demand []float64) (Plan, error) {
		return m.Solve(costs, supply, demand, opts)
	}
}

// Methods returns the five allocators in display order. The slice is freshly
// allocated on every call.
func Methods() []Method {
	return []Method{
		{ID: NorthwestCornerID, Name: "Northwest Corner", solve: NorthwestCornerWithOptions},
		{ID: VogelID, Name: "Vogel Approximation", solve: VogelWithOptions},
		{ID: MinimumCostID, Name: "Minimum Cost", solve: MinimumCostWithOptions},
		{ID: SequentialStepsID, Name: "Sequential Steps", solve: SequentialStepsWithOptions},
		{ID: ModifiedDistributionID, Name: "Modified Distribution", solve: ModifiedDistributionWithOptions},
	}
}

// Lookup returns the method registered under id.
func Lookup(id string) (Method, error) {
	for _, m := range Methods() {
		if m.ID == id {
			return m, nil
		}
	}

	return Method{}, fmt.Errorf("%w: %q", ErrUnknownMethod, id)
}
