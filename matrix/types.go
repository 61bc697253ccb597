// SPDX-License-Identifier: MIT

package matrix

// Matrix is a two-dimensional table of float64 values indexed by
// (supplier, consumer), both zero-based.
//
// Implementations must bounds-check At and Set and return ErrOutOfRange
// instead of panicking.
type Matrix interface {
	// Rows returns the number of rows (suppliers).
	Rows() int

	// Cols returns the number of columns (consumers).
	Cols() int

	// At retrieves the element at (i, j).
	At(i, j int) (float64, error)

	// Set assigns v at (i, j).
	Set(i, j int, v float64) error

	// Clone returns an independent deep copy.
	Clone() Matrix
}
