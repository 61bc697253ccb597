package allocate

import (
	"errors"
	"fmt"
)

var (
	// ErrNilMatrix is returned when the cost matrix is nil.
	ErrNilMatrix = errors.New("allocate: nil cost matrix")

	// ErrEmptyProblem is returned when there are no suppliers or no consumers.
	ErrEmptyProblem = errors.New("allocate: problem has no suppliers or consumers")

	// ErrDimensionMismatch is returned when len(supply) != Rows() or
	// len(demand) != Cols().
	ErrDimensionMismatch = errors.New("allocate: dimension mismatch")

	// ErrNaNInf is returned for a non-finite cost, supply, demand or quantity.
	ErrNaNInf = errors.New("allocate: NaN or Inf encountered")

	// ErrNegativeQuantity is returned for negative supply, demand or prior quantity.
	ErrNegativeQuantity = errors.New("allocate: negative quantity")

	// ErrIndexOutOfRange is returned when an allocation points outside the grid.
	ErrIndexOutOfRange = errors.New("allocate: index out of range")

	// ErrDuplicateCell is returned when a cell appears twice in one plan.
	ErrDuplicateCell = errors.New("allocate: duplicate cell")

	// ErrAllocationExceedsCapacity is returned by ModifiedDistributionWithPrior
	// when a prior allocation asks for more than the remaining supply or demand.
	ErrAllocationExceedsCapacity = errors.New("allocate: allocation exceeds capacity")

	// ErrSupplyMismatch is returned by Verify when a supplier's shipments do not
	// add up to its supply.
	ErrSupplyMismatch = errors.New("allocate: shipped quantity does not match supply")

	// ErrDemandMismatch is returned by Verify when a consumer's receipts do not
	// add up to its demand.
	ErrDemandMismatch = errors.New("allocate: received quantity does not match demand")

	// ErrNonPositiveQuantity is returned by Verify for a zero or negative entry.
	ErrNonPositiveQuantity = errors.New("allocate: non-positive quantity")

	// ErrUnknownMethod is returned by Lookup for an unregistered method id.
	ErrUnknownMethod = errors.New("allocate: unknown method")

	// ErrInvalidOptions is returned for a negative or non-finite Epsilon.
	ErrInvalidOptions = errors.New("allocate: invalid options")
)

// CapacityError reports a prior allocation that does not fit the remaining
// supply or demand at its cell.
type CapacityError struct {
	Supplier, Consumer int
	Requested          float64
	Supply, Demand     float64 // remaining at the time of the request
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("allocate: allocation (%d,%d)=%g exceeds capacity (supply %g, demand %g)",
		e.Supplier, e.Consumer, e.Requested, e.Supply, e.Demand)
}

// Unwrap lets errors.Is match ErrAllocationExceedsCapacity.
func (e *CapacityError) Unwrap() error { return ErrAllocationExceedsCapacity }
