// SPDX-License-Identifier: MIT
// Package linsolve: the two-phase elimination kernel.

package linsolve

import (
	"io"

	"github.com/ahmedmegahed65/linsolve/rational"
)

// Solve reduces the system given by coefficient rows and a parallel
// constants vector, streaming a step-by-step transcript to sink, and
// returns the classification of the final matrix.
//
// Algorithm outline:
//  1. Build the augmented matrix (constants appended as the last column);
//     every input value is already an exact rational and stays exact.
//  2. Phase 1 (REF): walk coefficient columns left to right with a pivot
//     row counter. A zero entry at the pivot position skips the column
//     without advancing the counter — no row swap unless
//     Options.PartialPivoting is set. A nonzero pivot is normalized to 1
//     (scale operation) and cleared from every row below (subtract
//     operations), each mutation followed by a matrix snapshot.
//  3. Phase 2 (RREF): walk rows bottom-up; the pivot column of a row is
//     its first coefficient entry exactly equal to 1. Rows without such an
//     entry are skipped — a row whose leading entry was never normalized
//     (because Phase 1 skipped its column) is not recognized. Entries
//     above each pivot are cleared with subtract operations.
//  4. Classification: a row with all-zero coefficients and a nonzero
//     constant makes the system INCONSISTENT (reported immediately; values
//     accepted from earlier rows are discarded). All-zero rows carry no
//     information. Any other row contributes its constant as the next
//     value, reported as x1, x2, … in row order.
//
// Contract:
//   - Zero coefficient rows, or rows with zero columns, are a silent
//     no-op: nothing is written and the result is Underdetermined.
//   - Ragged rows or len(coeffs) != len(consts) return
//     ErrDimensionMismatch before anything is written.
//   - A nil sink discards the transcript; a sink write failure aborts the
//     solve and is returned as-is.
//   - opts == nil means DefaultOptions(); invalid options return
//     ErrBadInput.
//
// Determinism: iteration order is fixed by the algorithm, so the same
// input yields a byte-identical transcript.
//
// Complexity: O(rows² · columns) row operations in exact arithmetic;
// numerators and denominators may grow across steps, so individual
// operations are not constant-time.
func Solve(coeffs [][]rational.Rat, consts []rational.Rat, sink io.Writer, opts *Options) (Result, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	o, err := o.normalize()
	if err != nil {
		return Result{}, err
	}

	// Degenerate empty system: nothing to do, nothing to log.
	if len(coeffs) == 0 {
		return Result{Kind: Underdetermined}, nil
	}

	m, err := newAugmented(coeffs, consts)
	if err != nil {
		return Result{}, err
	}
	if m.vars() == 0 {
		return Result{Kind: Underdetermined}, nil
	}

	if sink == nil {
		sink = io.Discard
	}
	tr := &transcript{w: sink, cellWidth: o.CellWidth}

	tr.line("INITIAL SYSTEM:")
	tr.matrix(m, "Augmented Matrix")

	tr.line("\n=== PHASE 1: ROW ECHELON FORM (Gaussian Elimination) ===")
	forwardEliminate(m, tr, o)
	tr.line("\n>>> Matrix is now in Row Echelon Form (REF).")

	tr.line("\n=== PHASE 2: REDUCED ROW ECHELON FORM (Back Substitution) ===")
	backSubstitute(m, tr)
	tr.line("\n>>> Matrix is now in Reduced Row Echelon Form (RREF).")

	tr.line("\n=== FINAL SOLUTION ===")
	res := classify(m, tr)
	if tr.err != nil {
		return Result{}, tr.err
	}
	return res, nil
}

// forwardEliminate drives m toward row-echelon form using row-scale and
// row-subtract-multiple operations (plus row swaps when partial pivoting
// is enabled). A skipped zero-pivot column leaves the pivot row counter in
// place, so the REF claim afterwards holds only if no column was skipped.
func forwardEliminate(m *augmented, tr *transcript, o Options) {
	pivotRow := 0
	for col := 0; col < m.vars(); col++ {
		if pivotRow >= m.rows {
			break // every remaining column is below an exhausted pivot area
		}

		pivot := m.at(pivotRow, col)
		if pivot.IsZero() {
			if !o.PartialPivoting {
				tr.linef("Pivot at R%d, C%d is zero. Swapping disabled, skipping column.",
					pivotRow+1, col+1)
				continue
			}
			swap := -1
			for r := pivotRow + 1; r < m.rows; r++ {
				if !m.at(r, col).IsZero() {
					swap = r
					break
				}
			}
			if swap < 0 {
				tr.linef("Pivot at R%d, C%d is zero. No nonzero entry below, skipping column.",
					pivotRow+1, col+1)
				continue
			}
			tr.linef("OPERATION: R%d <--> R%d", pivotRow+1, swap+1)
			m.swapRows(pivotRow, swap)
			tr.state(m)
			pivot = m.at(pivotRow, col)
		}

		if !pivot.IsOne() {
			tr.linef("OPERATION: R%d <--- R%d / (%s)", pivotRow+1, pivotRow+1, pivot)
			m.scaleRow(pivotRow, pivot)
			tr.state(m)
		}

		for r := pivotRow + 1; r < m.rows; r++ {
			factor := m.at(r, col)
			if factor.IsZero() {
				continue
			}
			tr.linef("OPERATION: R%d <--- R%d - (%s * R%d)", r+1, r+1, factor, pivotRow+1)
			m.subtractScaled(r, pivotRow, factor)
			tr.state(m)
		}

		pivotRow++
	}
}

// backSubstitute clears entries above each detected pivot, bottom-up.
// Pivot detection requires an entry exactly equal to 1: rows left
// unnormalized by a skipped Phase-1 column contribute no pivot here.
func backSubstitute(m *augmented, tr *transcript) {
	for i := m.rows - 1; i >= 0; i-- {
		pivotCol := -1
		for c := 0; c < m.vars(); c++ {
			if m.at(i, c).IsOne() {
				pivotCol = c
				break
			}
		}
		if pivotCol < 0 {
			continue
		}

		for r := i - 1; r >= 0; r-- {
			factor := m.at(r, pivotCol)
			if factor.IsZero() {
				continue
			}
			tr.linef("OPERATION: R%d <--- R%d - (%s * R%d)", r+1, r+1, factor, i+1)
			m.subtractScaled(r, i, factor)
			tr.state(m)
		}
	}
}

// classify reads the final matrix row by row. The first 0 = nonzero row
// makes the whole system inconsistent and discards anything accepted
// before it.
func classify(m *augmented, tr *transcript) Result {
	values := make([]rational.Rat, 0, m.rows)
	for i := 0; i < m.rows; i++ {
		allZero := m.coefficientsAllZero(i)
		constant := m.constant(i)
		switch {
		case allZero && !constant.IsZero():
			tr.line("System is INCONSISTENT (No Solution).")
			return Result{Kind: Inconsistent}
		case allZero:
			continue // no information in this row
		default:
			values = append(values, constant)
		}
	}

	if len(values) == 0 {
		tr.line("Infinite solutions or trivial system.")
		return Result{Kind: Underdetermined}
	}
	for idx, v := range values {
		tr.linef("x%d = %s", idx+1, v)
	}
	return Result{Kind: Solved, Values: values}
}
