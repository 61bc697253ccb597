package problem

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// document is the JSON layout read by Load.
type document struct {
	Costs  [][]json.RawMessage `json:"costs"`
	Supply []json.RawMessage   `json:"supply"`
	Demand []json.RawMessage   `json:"demand"`
}

// Load decodes a JSON problem from r and validates it with opts.
// Each value may be a JSON number or a string holding a number.
func Load(r io.Reader, opts Options) (*Problem, error) {
	var doc document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("problem: decode: %w", err)
	}

	costs := make([][]string, len(doc.Costs))
	for i, row := range doc.Costs {
		costs[i] = make([]string, len(row))
		for j, raw := range row {
			costs[i][j] = rawText(raw)
		}
	}

	return ParseWithOptions(costs, rawTexts(doc.Supply), rawTexts(doc.Demand), opts)
}

// LoadFile opens path and calls Load.
func LoadFile(path string, opts Options) (*Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("problem: %w", err)
	}
	defer f.Close()

	return Load(f, opts)
}

// rawText unquotes a JSON string and passes any other token through, so both
// 3 and "3" reach the parser as "3".
func rawText(raw json.RawMessage) string {
	b := bytes.TrimSpace(raw)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err == nil {
			return s
		}
	}

	return string(b)
}

func rawTexts(raws []json.RawMessage) []string {
	out := make([]string, len(raws))
	for i, raw := range raws {
		out[i] = rawText(raw)
	}

	return out
}
