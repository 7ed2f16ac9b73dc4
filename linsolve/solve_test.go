package linsolve_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmedmegahed65/linsolve/linsolve"
	"github.com/ahmedmegahed65/linsolve/rational"
)

// ints builds a coefficient matrix from int64 literals.
func ints(rows ...[]int64) [][]rational.Rat {
	out := make([][]rational.Rat, len(rows))
	for i, r := range rows {
		row := make([]rational.Rat, len(r))
		for j, v := range r {
			row[j] = rational.FromInt(v)
		}
		out[i] = row
	}
	return out
}

// vec builds a constants vector from int64 literals.
func vec(vals ...int64) []rational.Rat {
	out := make([]rational.Rat, len(vals))
	for i, v := range vals {
		out[i] = rational.FromInt(v)
	}
	return out
}

// values renders a result's values for readable assertions.
func values(res linsolve.Result) []string {
	out := make([]string, len(res.Values))
	for i, v := range res.Values {
		out[i] = v.String()
	}
	return out
}

// TestSolve_UniqueAlreadyReduced verifies the identity system solves with
// no elimination operations at all: it is already in RREF.
func TestSolve_UniqueAlreadyReduced(t *testing.T) {
	var buf bytes.Buffer
	res, err := linsolve.Solve(ints([]int64{1, 0}, []int64{0, 1}), vec(5, 7), &buf, nil)
	require.NoError(t, err)

	assert.Equal(t, linsolve.Solved, res.Kind)
	assert.Equal(t, []string{"5", "7"}, values(res))
	assert.NotContains(t, buf.String(), "OPERATION:", "RREF input must need no operations")
	assert.Contains(t, buf.String(), "x1 = 5")
	assert.Contains(t, buf.String(), "x2 = 7")
}

// TestSolve_SimpleElimination verifies 2x+y=5, x+3y=10 yields exactly
// x=1, y=3 with at least one scale and one subtract operation logged.
func TestSolve_SimpleElimination(t *testing.T) {
	var buf bytes.Buffer
	res, err := linsolve.Solve(ints([]int64{2, 1}, []int64{1, 3}), vec(5, 10), &buf, nil)
	require.NoError(t, err)

	assert.Equal(t, linsolve.Solved, res.Kind)
	assert.Equal(t, []string{"1", "3"}, values(res))

	log := buf.String()
	assert.Contains(t, log, "OPERATION: R1 <--- R1 / (2)", "pivot 2 must be scaled to 1")
	assert.Contains(t, log, "OPERATION: R2 <--- R2 - (1 * R1)", "row below must be cleared")
	assert.Contains(t, log, "x1 = 1")
	assert.Contains(t, log, "x2 = 3")
}

// TestSolve_Inconsistent verifies x+y=2, x+y=3 is reported INCONSISTENT
// with no solution values, including any accepted before detection.
func TestSolve_Inconsistent(t *testing.T) {
	var buf bytes.Buffer
	res, err := linsolve.Solve(ints([]int64{1, 1}, []int64{1, 1}), vec(2, 3), &buf, nil)
	require.NoError(t, err)

	assert.Equal(t, linsolve.Inconsistent, res.Kind)
	assert.Empty(t, res.Values)
	assert.Contains(t, buf.String(), "System is INCONSISTENT (No Solution).")
	assert.NotContains(t, buf.String(), "x1 =", "inconsistency must discard accepted values")
}

// TestSolve_ZeroPivotNotSwapped pins the documented limitation: with
// swapping disabled (the default), a zero natural pivot skips the column.
// For y=2, x=3 the final values come out in row order as x1=2, x2=3 —
// the labels are swapped relative to true variable identity. This is a
// regression guard for the degraded behavior, not a correctness claim.
func TestSolve_ZeroPivotNotSwapped(t *testing.T) {
	var buf bytes.Buffer
	res, err := linsolve.Solve(ints([]int64{0, 1}, []int64{1, 0}), vec(2, 3), &buf, nil)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "Pivot at R1, C1 is zero. Swapping disabled, skipping column.")
	assert.NotContains(t, buf.String(), "<-->", "no swap may be logged by default")
	assert.Equal(t, linsolve.Solved, res.Kind)
	assert.Equal(t, []string{"2", "3"}, values(res), "row-order values, not variable-order")
}

// TestSolve_PartialPivotingRepairsZeroPivot verifies the opt-in
// enhancement: the same system solves correctly via a logged row swap.
func TestSolve_PartialPivotingRepairsZeroPivot(t *testing.T) {
	var buf bytes.Buffer
	opts := linsolve.DefaultOptions()
	opts.PartialPivoting = true

	res, err := linsolve.Solve(ints([]int64{0, 1}, []int64{1, 0}), vec(2, 3), &buf, &opts)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "OPERATION: R1 <--> R2")
	assert.Equal(t, linsolve.Solved, res.Kind)
	assert.Equal(t, []string{"3", "2"}, values(res), "swap restores variable order")
}

// TestSolve_RedundantRow pins the behavior on x+y=3, 2x+2y=6: the second
// row cancels to all zeros and is skipped, while the first survives with
// nonzero coefficients, so its constant is (degradedly) accepted as x1.
func TestSolve_RedundantRow(t *testing.T) {
	var buf bytes.Buffer
	res, err := linsolve.Solve(ints([]int64{1, 1}, []int64{2, 2}), vec(3, 6), &buf, nil)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "OPERATION: R2 <--- R2 - (2 * R1)", "redundant row must cancel")
	assert.Equal(t, linsolve.Solved, res.Kind)
	assert.Equal(t, []string{"3"}, values(res))
}

// TestSolve_TrivialSystem verifies an all-zero system reports the
// infinite/trivial notice and emits no x-value lines.
func TestSolve_TrivialSystem(t *testing.T) {
	var buf bytes.Buffer
	res, err := linsolve.Solve(ints([]int64{0, 0}, []int64{0, 0}), vec(0, 0), &buf, nil)
	require.NoError(t, err)

	assert.Equal(t, linsolve.Underdetermined, res.Kind)
	assert.Empty(t, res.Values)
	assert.Contains(t, buf.String(), "Infinite solutions or trivial system.")
	assert.NotContains(t, buf.String(), "x1 =")
}

// TestSolve_ExactFractions verifies fractional pivots stay exact end to
// end: x/2 + y/3 = 1, x/4 - y = 2 has x = 20/7, y = -9/7.
func TestSolve_ExactFractions(t *testing.T) {
	coeffs := [][]rational.Rat{
		{rational.New(1, 2), rational.New(1, 3)},
		{rational.New(1, 4), rational.FromInt(-1)},
	}
	consts := []rational.Rat{rational.FromInt(1), rational.FromInt(2)}

	var buf bytes.Buffer
	res, err := linsolve.Solve(coeffs, consts, &buf, nil)
	require.NoError(t, err)

	assert.Equal(t, linsolve.Solved, res.Kind)
	assert.Equal(t, []string{"20/7", "-9/7"}, values(res))
	assert.Contains(t, buf.String(), "x1 = 20/7", "values must render as exact fractions")
	assert.Contains(t, buf.String(), "x2 = -9/7")
}

// TestSolve_EmptySystemIsSilentNoOp verifies zero rows produce no
// transcript and an Underdetermined result.
func TestSolve_EmptySystemIsSilentNoOp(t *testing.T) {
	var buf bytes.Buffer
	res, err := linsolve.Solve(nil, nil, &buf, nil)
	require.NoError(t, err)

	assert.Equal(t, linsolve.Underdetermined, res.Kind)
	assert.Zero(t, buf.Len(), "nothing may be written for an empty system")
}

// TestSolve_DimensionMismatch verifies ragged rows and count mismatches
// fail before any transcript output.
func TestSolve_DimensionMismatch(t *testing.T) {
	var buf bytes.Buffer

	_, err := linsolve.Solve(ints([]int64{1, 2}, []int64{3}), vec(1, 2), &buf, nil)
	assert.ErrorIs(t, err, linsolve.ErrDimensionMismatch, "ragged rows must fail")

	_, err = linsolve.Solve(ints([]int64{1, 2}), vec(1, 2), &buf, nil)
	assert.ErrorIs(t, err, linsolve.ErrDimensionMismatch, "row/constant count mismatch must fail")

	assert.Zero(t, buf.Len(), "no partial transcript on invalid input")
}

// TestSolve_BadOptions verifies option validation happens at the boundary.
func TestSolve_BadOptions(t *testing.T) {
	opts := linsolve.Options{CellWidth: -3}
	_, err := linsolve.Solve(ints([]int64{1}), vec(1), nil, &opts)
	assert.ErrorIs(t, err, linsolve.ErrBadInput)
}

// TestSolve_NilSinkDiscards verifies the transcript sink is optional.
func TestSolve_NilSinkDiscards(t *testing.T) {
	res, err := linsolve.Solve(ints([]int64{1, 0}, []int64{0, 1}), vec(4, 9), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"4", "9"}, values(res))
}

// TestSolve_CellWidthControlsAlignment verifies snapshot cells honor the
// configured width.
func TestSolve_CellWidthControlsAlignment(t *testing.T) {
	var buf bytes.Buffer
	opts := linsolve.Options{CellWidth: 4}
	_, err := linsolve.Solve(ints([]int64{2, 1}, []int64{1, 3}), vec(5, 10), &buf, &opts)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), " [   2,    1,    5]")
}

// failAfter returns an error once n bytes have been accepted.
type failAfter struct {
	n   int
	err error
}

func (w *failAfter) Write(p []byte) (int, error) {
	if w.n <= 0 {
		return 0, w.err
	}
	if len(p) > w.n {
		n := w.n
		w.n = 0
		return n, w.err
	}
	w.n -= len(p)
	return len(p), nil
}

// TestSolve_SinkWriteFailureAborts verifies a failing sink surfaces its
// error from Solve.
func TestSolve_SinkWriteFailureAborts(t *testing.T) {
	sinkErr := errors.New("sink closed")
	w := &failAfter{n: 20, err: sinkErr}

	_, err := linsolve.Solve(ints([]int64{2, 1}, []int64{1, 3}), vec(5, 10), w, nil)
	assert.ErrorIs(t, err, sinkErr)
}

// TestSolve_Determinism verifies byte-identical transcripts for repeated
// solves of the same system.
func TestSolve_Determinism(t *testing.T) {
	coeffs := ints([]int64{3, -2, 4}, []int64{1, 1, 1}, []int64{2, 0, -1})
	consts := vec(7, 6, 1)

	var first, second bytes.Buffer
	_, err := linsolve.Solve(coeffs, consts, &first, nil)
	require.NoError(t, err)
	_, err = linsolve.Solve(coeffs, consts, &second, nil)
	require.NoError(t, err)

	assert.Equal(t, first.String(), second.String(), "transcripts must match byte for byte")
	assert.True(t, strings.HasPrefix(first.String(), "INITIAL SYSTEM:\n"))
}
