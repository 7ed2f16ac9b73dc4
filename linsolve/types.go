// Package linsolve: result types for solution classification.

package linsolve

import "github.com/ahmedmegahed65/linsolve/rational"

// Kind classifies what the final reduced matrix says about the system.
//
//   - Underdetermined — consistent, but no variable was isolated: either
//     every informative row cancelled out (redundant equations) or the
//     system was empty to begin with. No values are reported.
//
//   - Solved — at least one variable was isolated; Values holds one exact
//     rational per isolated variable, in the row order they were accepted.
//
//   - Inconsistent — some row reduced to 0 = nonzero. No values are
//     reported, including any accepted from earlier rows.
type Kind int

const (
	// Underdetermined: infinite solutions or a trivial system.
	Underdetermined Kind = iota

	// Solved: Values carries x1, x2, … in row order.
	Solved

	// Inconsistent: the system has no solution.
	Inconsistent
)

// String returns a short human-readable tag for k.
func (k Kind) String() string {
	switch k {
	case Underdetermined:
		return "underdetermined"
	case Solved:
		return "solved"
	case Inconsistent:
		return "inconsistent"
	default:
		return "unknown"
	}
}

// Result is the outcome of a solve: a classification plus, for Solved, the
// isolated values. Values indexes by the order rows were accepted, which
// matches variable identity only when no pivot column was skipped.
type Result struct {
	Kind   Kind
	Values []rational.Rat
}
