// Package rational provides exact arbitrary-precision rational values for
// elimination-style algorithms that must never lose precision.
//
// 🚀 What is rational?
//
//	A thin immutable value type over math/big.Rat that adds the pieces an
//	exact solver needs:
//	  • Parsing of integer ("-3"), decimal ("2.75") and fraction ("-7/4") text
//	  • A limit-denominator policy for non-exact float inputs
//	  • Display formatting: "n" when the denominator is 1, "n/d" otherwise
//	  • Value-style arithmetic: every operation returns a fresh Rat
//
// ✨ Why not use big.Rat directly?
//
//   - Value semantics – Rat never aliases; the zero value is a usable 0
//   - Canonical text – String() is the exact display contract round-tripped
//     by Parse, never a decimal approximation
//   - Bounded coercion – FromFloat approximates binary floats by the best
//     rational with a bounded denominator instead of carrying 52-bit noise
//
// ⚙️ Usage:
//
//	import "github.com/ahmedmegahed65/linsolve/rational"
//
//	half, _ := rational.Parse("0.5")
//	third, _ := rational.FromFloat(1.0 / 3.0) // exactly 1/3 after bounding
//	sum := half.Add(third)                    // 5/6
//	fmt.Println(sum)                          // "5/6"
//
// All operations are exact; there is no floating-point intermediate state.
package rational
