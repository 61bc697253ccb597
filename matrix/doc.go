// Package matrix provides the rectangular cost grid used by the transport
// allocators.
//
// A transportation problem with R suppliers and C consumers carries an R×C
// table of unit shipping costs. The Matrix interface abstracts that table so
// callers may plug their own storage; Dense is the default row-major
// implementation.
//
// Guarantees:
//   - At/Set never panic on bad indices; they return ErrOutOfRange wrapped
//     with the method name and coordinates.
//   - Dense rejects NaN and ±Inf on construction and in Set (ErrNaNInf).
//   - Clone returns a fully independent deep copy.
//
// Complexity:
//
//	Rows, Cols, At, Set: O(1).
//	Clone, ToRows:       O(R·C).
package matrix
