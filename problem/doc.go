// Package problem models a transportation problem instance: a cost grid,
// the supply of every supplier and the demand of every consumer.
//
// It owns everything that happens before an allocator runs:
//
//   - Parse turns textual input (form cells, CSV-like flags, JSON strings)
//     into numbers and reports the exact offending cell on failure.
//
//   - Validate checks shape, rejects NaN/Inf and negative quantities, and
//     enforces the balance precondition sum(supply) == sum(demand).
//
//   - Load and LoadFile read the JSON document
//
//     {"costs": [[4, 6, 8], [5, "3", 9]], "supply": [20, 30], "demand": [10, 25, 15]}
//
//     where every value may be a JSON number or a numeric string.
//
// Errors:
//
//	ErrInvalidNumericInput - an entry is not a number (*NumericError).
//	ErrUnbalanced          - supply and demand totals differ (*BalanceError).
//	ErrDimensionMismatch   - supply/demand lengths do not fit the grid.
//	ErrEmpty               - no suppliers or no consumers.
//	ErrNaNInf, ErrNegativeQuantity - bad quantities.
//
// A validated Problem is safe to hand to any allocator: they copy supply and
// demand and never write to the cost matrix.
package problem
