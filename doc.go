// Package transport computes initial feasible solutions for the balanced
// transportation problem and compares them side by side.
//
// 🚚 What is in the box?
//
//	A small, dependency-light toolkit that brings together:
//		• Cost grids: a safe row-major matrix with error-returning accessors
//		• Problem model: numeric parsing, balance check, JSON input
//		• Five heuristics: Northwest Corner, Minimum Cost, Vogel,
//		  Sequential Steps, Modified Distribution (with prior seeding)
//		• Comparison: every method on its own copies, optional errgroup fan-out
//		• Reports: summary, detail and contribution tables
//
// ✨ Guarantees
//
//   - Inputs are never mutated; every allocator works on private copies.
//   - Plans never hold zero quantities or repeated cells.
//   - Errors are sentinels or typed errors matched with errors.Is / errors.As.
//   - Deterministic: identical input gives an identical plan, in order.
//
// Layout:
//
//	matrix/        - Matrix interface and Dense storage
//	problem/       - Problem type, Parse, Validate, Load
//	allocate/      - the five allocators, TotalCost, Verify
//	compare/       - run several methods and pick the cheapest start
//	report/        - tabular rendering and spreadsheet-style labels
//	cmd/transport/ - command-line front end
//	examples/      - runnable scenarios
//
// Quick ASCII example:
//
//	        C0  C1  C2 | supply
//	   S0    4   6   8 |   20
//	   S1    5   3   9 |   30
//	demand  10  25  15
//
//	Northwest Corner → 280, Minimum Cost → 240, Vogel → 240.
//
// None of the methods proves optimality; they produce the starting plan an
// improvement step (stepping stone, MODI potentials) would refine.
//
//	go install github.com/katalvlaran/transport/cmd/transport@latest
package transport
