// Package linsolve: text-grid input parsing.
// This is the boundary where caller-facing text becomes exact rationals;
// everything past it operates on rational.Rat only.

package linsolve

import (
	"fmt"
	"strings"

	"github.com/ahmedmegahed65/linsolve/rational"
)

// ParseGrid reads a row-major augmented matrix from text: one matrix row
// per non-blank line, the last column holding the constant term.
//
// Cell syntax:
//   - a line containing a comma splits on commas (CSV-style, empty cells
//     allowed); any other line splits on whitespace
//   - each cell parses as an exact rational (integer, terminating decimal,
//     or "numerator/denominator" fraction)
//   - an empty cell means zero
//
// Contract:
//   - a cell that does not parse fails the whole call with
//     ErrMalformedInput naming the cell; no partial grid is returned
//   - ragged rows, or rows narrower than two columns (at least one
//     coefficient plus the constant), return ErrDimensionMismatch
//   - text with no non-blank lines yields (nil, nil, nil): the degenerate
//     empty system, a no-op for Solve
func ParseGrid(text string) ([][]rational.Rat, []rational.Rat, error) {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil, nil, nil
	}

	coeffs := make([][]rational.Rat, 0, len(lines))
	consts := make([]rational.Rat, 0, len(lines))
	width := 0
	for i, line := range lines {
		cells := splitCells(line)
		if len(cells) < 2 {
			return nil, nil, fmt.Errorf("%w: row %d has %d columns, need at least 2",
				ErrDimensionMismatch, i+1, len(cells))
		}
		if i == 0 {
			width = len(cells)
		} else if len(cells) != width {
			return nil, nil, fmt.Errorf("%w: row %d has %d columns, want %d",
				ErrDimensionMismatch, i+1, len(cells), width)
		}

		row := make([]rational.Rat, len(cells))
		for j, cell := range cells {
			v, err := parseCell(cell)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: row %d, column %d: %q",
					ErrMalformedInput, i+1, j+1, cell)
			}
			row[j] = v
		}
		coeffs = append(coeffs, row[:len(row)-1])
		consts = append(consts, row[len(row)-1])
	}
	return coeffs, consts, nil
}

// splitCells tokenizes one grid line: comma-separated when a comma is
// present (preserving empty cells), whitespace-separated otherwise.
func splitCells(line string) []string {
	if strings.Contains(line, ",") {
		cells := strings.Split(line, ",")
		for i, c := range cells {
			cells[i] = strings.TrimSpace(c)
		}
		return cells
	}
	return strings.Fields(line)
}

// parseCell maps an empty cell to zero and everything else through
// rational.Parse.
func parseCell(cell string) (rational.Rat, error) {
	if cell == "" {
		return rational.Rat{}, nil
	}
	return rational.Parse(cell)
}
