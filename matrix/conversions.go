package matrix

import "fmt"

// ToRows snapshots m into a freshly allocated [][]float64.
// The result shares no storage with m, so callers may treat it as a private
// working copy.
//
// Errors:
//   - ErrNilMatrix if m is nil, including a nil *Dense held in the interface.
//   - ErrInvalidDimensions if m has no rows or no columns.
//   - ErrNaNInf if any entry is not finite.
//   - any error returned by m.At.
//
// Complexity: O(R·C).
func ToRows(m Matrix) ([][]float64, error) {
	// Stage 1 (Validate): presence, including a typed nil, then shape.
	if m == nil {
		return nil, ErrNilMatrix
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return nil, ErrNilMatrix
	}
	var (
		r = m.Rows()
		c = m.Cols()
	)
	if r <= 0 || c <= 0 {
		return nil, ErrInvalidDimensions
	}

	// Stage 2 (Execute): copy row by row, rejecting non-finite entries.
	out := make([][]float64, r)

	// fast path: slice straight out of the flat buffer
	if d, ok := m.(*Dense); ok {
		var i, j int
		for i = 0; i < r; i++ {
			out[i] = make([]float64, c)
			copy(out[i], d.data[i*c:(i+1)*c])
			for j = 0; j < c; j++ {
				if !isFinite(out[i][j]) {
					return nil, denseErrorf(ctxAt, i, j, ErrNaNInf)
				}
			}
		}

		return out, nil
	}

	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < r; i++ {
		out[i] = make([]float64, c)
		for j = 0; j < c; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("matrix: ToRows: %w", err)
			}
			if !isFinite(v) {
				return nil, fmt.Errorf("matrix: ToRows(%d,%d): %w", i, j, ErrNaNInf)
			}
			out[i][j] = v
		}
	}

	return out, nil
}
