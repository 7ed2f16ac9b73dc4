// SPDX-License-Identifier: MIT
// Package linsolve: the augmented working matrix.
// Rows are replaced wholesale, never edited elementwise in place, so a row
// observed by an earlier snapshot can never alias a later mutation.

package linsolve

import (
	"fmt"

	"github.com/ahmedmegahed65/linsolve/rational"
)

// augmented is the working matrix: each row holds the coefficient entries
// followed by the constant term in the last column. Shape is fixed once
// construction succeeds.
type augmented struct {
	rows, cols int // cols counts the constant column
	cells      [][]rational.Rat
}

// newAugmented builds the working matrix from coefficient rows and a
// parallel constants vector. Validation is fail-fast: ragged rows or a
// row/constant count mismatch return ErrDimensionMismatch before any
// transcript output exists.
//
// The caller's slices are copied; later mutation of the inputs cannot
// disturb a running solve.
func newAugmented(coeffs [][]rational.Rat, consts []rational.Rat) (*augmented, error) {
	rows := len(coeffs)
	if rows != len(consts) {
		return nil, fmt.Errorf("%w: %d coefficient rows vs %d constants",
			ErrDimensionMismatch, rows, len(consts))
	}
	width := len(coeffs[0])
	for i, row := range coeffs {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d",
				ErrDimensionMismatch, i+1, len(row), width)
		}
	}

	cells := make([][]rational.Rat, rows)
	for i := range coeffs {
		row := make([]rational.Rat, width+1)
		copy(row, coeffs[i])
		row[width] = consts[i]
		cells[i] = row
	}
	return &augmented{rows: rows, cols: width + 1, cells: cells}, nil
}

// vars is the number of coefficient columns (everything but the constant).
func (m *augmented) vars() int { return m.cols - 1 }

// at reads entry (i, j). Indices are trusted; the solver iterates within
// the fixed shape.
func (m *augmented) at(i, j int) rational.Rat { return m.cells[i][j] }

// constant reads the constant term of row i.
func (m *augmented) constant(i int) rational.Rat { return m.cells[i][m.cols-1] }

// scaleRow replaces row i with row i divided by the (nonzero) pivot value.
func (m *augmented) scaleRow(i int, pivot rational.Rat) {
	old := m.cells[i]
	next := make([]rational.Rat, m.cols)
	for j, v := range old {
		next[j] = v.Div(pivot)
	}
	m.cells[i] = next
}

// subtractScaled replaces row target with (target - factor * source).
func (m *augmented) subtractScaled(target, source int, factor rational.Rat) {
	tgt, src := m.cells[target], m.cells[source]
	next := make([]rational.Rat, m.cols)
	for j := range next {
		next[j] = tgt[j].Sub(factor.Mul(src[j]))
	}
	m.cells[target] = next
}

// swapRows exchanges rows i and j.
func (m *augmented) swapRows(i, j int) {
	m.cells[i], m.cells[j] = m.cells[j], m.cells[i]
}

// coefficientsAllZero reports whether every coefficient entry of row i is
// exactly zero (the constant column is not inspected).
func (m *augmented) coefficientsAllZero(i int) bool {
	for c := 0; c < m.vars(); c++ {
		if !m.cells[i][c].IsZero() {
			return false
		}
	}
	return true
}
