// Package linsolve: solver configuration.
// Plain options struct with documented defaults; validation is fail-fast at
// the Solve boundary and returns ErrBadInput on nonsensical values.

package linsolve

import "fmt"

// DefaultCellWidth is the right-alignment width of each cell in matrix
// snapshot lines.
const DefaultCellWidth = 8

// Options configures a solve.
//
// Fields:
//   - CellWidth       — snapshot cell alignment width; 0 means
//     DefaultCellWidth, negative values are rejected. Cells longer than the
//     width are printed in full (alignment degrades, content never does).
//   - PartialPivoting — when true, a zero entry in the natural pivot
//     position is repaired by swapping with the first row below that has a
//     nonzero entry in that column (logged as its own operation). When
//     false (the default), the column is skipped outright, preserving the
//     documented limitation that such systems are not recognized as
//     solvable.
type Options struct {
	CellWidth       int
	PartialPivoting bool
}

// DefaultOptions returns the documented default configuration.
func DefaultOptions() Options {
	return Options{CellWidth: DefaultCellWidth}
}

// normalize applies defaults for zero fields and validates the rest.
func (o Options) normalize() (Options, error) {
	if o.CellWidth == 0 {
		o.CellWidth = DefaultCellWidth
	}
	if o.CellWidth < 1 {
		return o, fmt.Errorf("%w: CellWidth must be >= 1, got %d", ErrBadInput, o.CellWidth)
	}
	return o, nil
}
