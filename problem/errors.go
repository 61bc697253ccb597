package problem

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidNumericInput is returned when an entry cannot be read as a number.
	ErrInvalidNumericInput = errors.New("problem: invalid numeric input")

	// ErrUnbalanced is returned when total supply differs from total demand.
	ErrUnbalanced = errors.New("problem: total supply does not equal total demand")

	// ErrDimensionMismatch is returned for ragged cost rows or supply/demand
	// lengths that do not match the grid.
	ErrDimensionMismatch = errors.New("problem: dimension mismatch")

	// ErrEmpty is returned when there are no suppliers or no consumers.
	ErrEmpty = errors.New("problem: no suppliers or consumers")

	// ErrNaNInf is returned for non-finite costs or quantities.
	ErrNaNInf = errors.New("problem: NaN or Inf encountered")

	// ErrNegativeQuantity is returned for a negative supply or demand.
	ErrNegativeQuantity = errors.New("problem: negative quantity")

	// ErrNilProblem is returned when a nil *Problem or nil cost matrix is used.
	ErrNilProblem = errors.New("problem: nil problem")

	// ErrInvalidOptions is returned for a negative or non-finite Tolerance.
	ErrInvalidOptions = errors.New("problem: invalid options")
)

// Field names used in NumericError.
const (
	FieldCosts  = "costs"
	FieldSupply = "supply"
	FieldDemand = "demand"
)

// NumericError pinpoints an entry that is not a valid number.
// Col is -1 for supply and demand entries; for those Row holds the index.
type NumericError struct {
	Field string
	Row   int
	Col   int
	Text  string
	Err   error // underlying strconv error, may be nil
}

func (e *NumericError) Error() string {
	if e.Col < 0 {
		return fmt.Sprintf("problem: %s[%d]=%q is not a number", e.Field, e.Row, e.Text)
	}

	return fmt.Sprintf("problem: %s[%d][%d]=%q is not a number", e.Field, e.Row, e.Col, e.Text)
}

// Unwrap exposes both ErrInvalidNumericInput and the parse cause.
func (e *NumericError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvalidNumericInput}
	}

	return []error{ErrInvalidNumericInput, e.Err}
}

// BalanceError carries both totals of an unbalanced problem.
type BalanceError struct {
	Supply float64
	Demand float64
}

func (e *BalanceError) Error() string {
	return fmt.Sprintf("problem: unbalanced, total supply %g != total demand %g", e.Supply, e.Demand)
}

// Unwrap lets errors.Is match ErrUnbalanced.
func (e *BalanceError) Unwrap() error { return ErrUnbalanced }
