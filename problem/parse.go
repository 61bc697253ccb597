package problem

import (
	"math"
	"strconv"
	"strings"
)

// ParseNumber reads one textual entry. Surrounding blanks are ignored; an
// empty cell is an error. NaN and Inf spellings are refused.
//
// Field, row and col only label the error.
func ParseNumber(text, field string, row, col int) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, &NumericError{Field: field, Row: row, Col: col, Text: text, Err: err}
	}
	if !isFinite(v) {
		return 0, &NumericError{Field: field, Row: row, Col: col, Text: text}
	}

	return v, nil
}

// Parse converts textual costs, supply and demand into a validated Problem.
// Every entry is parsed before any structural check, so a non-numeric cell
// is always reported as ErrInvalidNumericInput with its coordinates.
func Parse(costs [][]string, supply, demand []string) (*Problem, error) {
	return ParseWithOptions(costs, supply, demand, DefaultOptions())
}

// ParseWithOptions is Parse with explicit validation Options.
func ParseWithOptions(costs [][]string, supply, demand []string, opts Options) (*Problem, error) {
	var (
		grid = make([][]float64, len(costs))
		err  error
	)
	for i, row := range costs {
		grid[i] = make([]float64, len(row))
		for j, text := range row {
			if grid[i][j], err = ParseNumber(text, FieldCosts, i, j); err != nil {
				return nil, err
			}
		}
	}

	s, err := parseVector(supply, FieldSupply)
	if err != nil {
		return nil, err
	}
	d, err := parseVector(demand, FieldDemand)
	if err != nil {
		return nil, err
	}

	return build(grid, s, d, opts)
}

// SplitGrid splits rows on rowSep and cells on colSep, e.g. "4,6,8;5,3,9".
// The cells are left as text for Parse.
func SplitGrid(text, rowSep, colSep string) [][]string {
	rows := splitList(text, rowSep)
	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = splitList(r, colSep)
	}

	return out
}

// SplitList splits a separator-delimited list, leaving cells as text.
func SplitList(text, sep string) []string {
	return splitList(text, sep)
}

func parseVector(texts []string, field string) ([]float64, error) {
	out := make([]float64, len(texts))
	var err error
	for i, text := range texts {
		if out[i], err = ParseNumber(text, field, i, -1); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// splitList splits on sep and drops a single trailing empty element, so
// "1,2," and "1,2" read the same.
func splitList(text, sep string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	parts := strings.Split(text, sep)
	if n := len(parts); n > 1 && strings.TrimSpace(parts[n-1]) == "" {
		parts = parts[:n-1]
	}

	return parts
}

// build assembles and validates a Problem from parsed numbers.
func build(costs [][]float64, supply, demand []float64, opts Options) (*Problem, error) {
	m, err := newCostMatrix(costs)
	if err != nil {
		return nil, err
	}
	p := &Problem{Costs: m, Supply: supply, Demand: demand}
	if err = p.Validate(opts); err != nil {
		return nil, err
	}

	return p, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
