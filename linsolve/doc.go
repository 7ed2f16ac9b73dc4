// Package linsolve reduces augmented coefficient matrices to reduced
// row-echelon form with exact rational arithmetic, narrating every
// elementary row operation it performs.
//
// 🚀 What is linsolve?
//
//	A step-by-step Gaussian elimination engine intended for teaching and
//	verification rather than raw throughput:
//	  • Phase 1 — forward elimination to row-echelon form (REF)
//	  • Phase 2 — back substitution to reduced row-echelon form (RREF)
//	  • Classification — unique values, INCONSISTENT, or the
//	    infinite/trivial notice
//	  • A full transcript of operations and matrix snapshots streamed to a
//	    caller-supplied sink as the work happens
//
// ✨ Key properties:
//
//   - Exact – every entry is a rational.Rat; pivot zero-tests are exact,
//     and no decimal approximation ever reaches the transcript
//   - Deterministic – identical input produces a byte-identical transcript
//   - No row swapping by default – a zero entry in the natural pivot
//     position skips the column, so some solvable systems are reported as
//     underdetermined; enable Options.PartialPivoting to swap instead
//   - Decoupled – the transcript sink is any io.Writer; the package has no
//     presentation dependencies
//
// ⚙️ Usage:
//
//	import (
//	  "os"
//
//	  "github.com/ahmedmegahed65/linsolve/linsolve"
//	  "github.com/ahmedmegahed65/linsolve/rational"
//	)
//
//	coeffs := [][]rational.Rat{
//	  {rational.FromInt(2), rational.FromInt(1)},
//	  {rational.FromInt(1), rational.FromInt(3)},
//	}
//	consts := []rational.Rat{rational.FromInt(5), rational.FromInt(10)}
//
//	res, err := linsolve.Solve(coeffs, consts, os.Stdout, nil)
//	// res.Kind == linsolve.Solved, res.Values == [1, 3]
//
// Performance:
//
//   - O(rows² · columns) row operations; each operation costs whatever the
//     exact arithmetic costs, since numerators and denominators may grow
//     across elimination steps.
//
// See example_test.go for a complete transcript.
package linsolve
