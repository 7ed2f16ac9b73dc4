// SPDX-License-Identifier: MIT
// Package rational: the Rat value type, constructors and exact arithmetic.
// Every operation allocates a fresh result; receivers and operands are never
// mutated. Internal *big.Rat state is never handed out, so two Rats cannot
// alias storage.

package rational

import (
	"fmt"
	"math"
	"math/big"
	"strings"
)

// DefaultMaxDenominator bounds the denominator used by FromFloat when
// coercing non-exact binary floats to rationals. The value mirrors the
// conventional limit-denominator default of 10^6.
const DefaultMaxDenominator = 1_000_000

// Rat is an exact rational number. The zero value is a usable 0.
//
// Rat behaves as an immutable value: Add, Sub, Mul, Div, Neg and
// LimitDenominator all return fresh values and never modify their receiver
// or arguments. Internally the numerator/denominator pair is kept reduced
// to lowest terms with a positive denominator (big.Rat's canonical form).
type Rat struct {
	r *big.Rat // nil encodes exact zero
}

// bigZero backs the zero value; it is shared read-only and never mutated.
var bigZero = new(big.Rat)

// val returns the backing big.Rat for read-only use.
func (x Rat) val() *big.Rat {
	if x.r == nil {
		return bigZero
	}
	return x.r
}

// wrap takes ownership of r and returns it as a Rat.
// r must not be retained or mutated by the caller afterwards.
func wrap(r *big.Rat) Rat { return Rat{r: r} }

// New returns the rational num/den reduced to lowest terms.
// A zero denominator is a programmer error and panics, matching big.NewRat.
func New(num, den int64) Rat { return wrap(big.NewRat(num, den)) }

// FromInt returns the rational n/1.
func FromInt(n int64) Rat { return wrap(new(big.Rat).SetInt64(n)) }

// FromBigRat returns a Rat holding a private copy of r.
// A nil r is treated as zero.
func FromBigRat(r *big.Rat) Rat {
	if r == nil {
		return Rat{}
	}
	return wrap(new(big.Rat).Set(r))
}

// Parse interprets s as an exact rational value.
//
// Accepted forms (surrounding whitespace ignored):
//   - integer text:  "42", "-3", "+7"
//   - decimal text:  "2.75", "-0.5" (terminating decimals are exact)
//   - fraction text: "3/2", "-7/4"
//
// Anything else, including empty text, returns ErrMalformedValue wrapped
// with the offending input. Parse is the inverse of String: for any Rat x,
// Parse(x.String()) yields a value equal to x.
func Parse(s string) (Rat, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Rat{}, fmt.Errorf("%w: empty text", ErrMalformedValue)
	}
	r, ok := new(big.Rat).SetString(trimmed)
	if !ok {
		return Rat{}, fmt.Errorf("%w: %q", ErrMalformedValue, s)
	}
	return wrap(r), nil
}

// FromFloat converts f to the closest rational whose denominator does not
// exceed DefaultMaxDenominator.
//
// Binary floats rarely equal the decimal the user typed (1.0/3.0 carries
// 52 bits of expansion noise); bounding the denominator recovers the
// intended value instead of preserving the noise. NaN and ±Inf return
// ErrMalformedValue.
func FromFloat(f float64) (Rat, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Rat{}, fmt.Errorf("%w: non-finite float %v", ErrMalformedValue, f)
	}
	// SetFloat64 never fails for finite inputs.
	exact := new(big.Rat).SetFloat64(f)
	return wrap(exact).LimitDenominator(DefaultMaxDenominator), nil
}

// LimitDenominator returns the closest rational to x whose denominator is
// at most maxDen, using the continued-fraction bounding construction: walk
// the convergents p/q of x until q would exceed maxDen, then pick the
// nearer of the last convergent and the best semiconvergent.
//
// maxDen < 1 is a programmer error and panics. If the denominator of x is
// already within the bound, x itself is returned.
//
// Complexity: O(log maxDen) big.Int divisions.
func (x Rat) LimitDenominator(maxDen int64) Rat {
	if maxDen < 1 {
		panic("rational: LimitDenominator bound must be >= 1")
	}
	v := x.val()
	bound := big.NewInt(maxDen)
	if v.Denom().Cmp(bound) <= 0 {
		return x
	}

	// Convergent accumulators: p0/q0 and p1/q1.
	p0, q0 := big.NewInt(0), big.NewInt(1)
	p1, q1 := big.NewInt(1), big.NewInt(0)
	// Euclidean remainder pair; d stays positive throughout.
	n := new(big.Int).Set(v.Num())
	d := new(big.Int).Set(v.Denom())

	a, q2 := new(big.Int), new(big.Int)
	for {
		a.Div(n, d) // floor division: d > 0
		q2.Mul(a, q1)
		q2.Add(q2, q0)
		if q2.Cmp(bound) > 0 {
			break
		}
		p2 := new(big.Int).Mul(a, p1)
		p2.Add(p2, p0)
		p0, q0, p1, q1 = p1, q1, p2, new(big.Int).Set(q2)
		rem := new(big.Int).Mul(a, d)
		rem.Sub(n, rem)
		n, d = d, rem
	}

	// Best semiconvergent under the bound: (p0 + k*p1) / (q0 + k*q1).
	k := new(big.Int).Sub(bound, q0)
	k.Div(k, q1)
	semiNum := new(big.Int).Mul(k, p1)
	semiNum.Add(semiNum, p0)
	semiDen := new(big.Int).Mul(k, q1)
	semiDen.Add(semiDen, q0)

	semi := new(big.Rat).SetFrac(semiNum, semiDen)
	conv := new(big.Rat).SetFrac(p1, q1)

	// Return whichever candidate is closer; ties go to the convergent.
	dSemi := new(big.Rat).Sub(semi, v)
	dSemi.Abs(dSemi)
	dConv := new(big.Rat).Sub(conv, v)
	dConv.Abs(dConv)
	if dConv.Cmp(dSemi) <= 0 {
		return wrap(conv)
	}
	return wrap(semi)
}

// Add returns x + y.
func (x Rat) Add(y Rat) Rat { return wrap(new(big.Rat).Add(x.val(), y.val())) }

// Sub returns x - y.
func (x Rat) Sub(y Rat) Rat { return wrap(new(big.Rat).Sub(x.val(), y.val())) }

// Mul returns x * y.
func (x Rat) Mul(y Rat) Rat { return wrap(new(big.Rat).Mul(x.val(), y.val())) }

// Div returns x / y. A zero divisor is a programmer error and panics;
// exact zero tests make the guard trivial for callers.
func (x Rat) Div(y Rat) Rat {
	if y.IsZero() {
		panic("rational: division by zero")
	}
	return wrap(new(big.Rat).Quo(x.val(), y.val()))
}

// Neg returns -x.
func (x Rat) Neg() Rat { return wrap(new(big.Rat).Neg(x.val())) }

// Sign returns -1, 0 or +1 according to the sign of x.
func (x Rat) Sign() int { return x.val().Sign() }

// IsZero reports whether x is exactly 0.
func (x Rat) IsZero() bool { return x.val().Sign() == 0 }

// IsOne reports whether x is exactly 1.
func (x Rat) IsOne() bool {
	v := x.val()
	return v.Num().Cmp(v.Denom()) == 0 && v.Sign() > 0
}

// Cmp compares x and y and returns -1, 0 or +1.
func (x Rat) Cmp(y Rat) int { return x.val().Cmp(y.val()) }

// Equal reports whether x and y denote the same rational.
func (x Rat) Equal(y Rat) bool { return x.Cmp(y) == 0 }

// Num returns a copy of the numerator of x in lowest terms.
func (x Rat) Num() *big.Int { return new(big.Int).Set(x.val().Num()) }

// Denom returns a copy of the (positive) denominator of x in lowest terms.
func (x Rat) Denom() *big.Int { return new(big.Int).Set(x.val().Denom()) }

// String renders x for human display: the bare integer literal when the
// denominator is 1, "numerator/denominator" otherwise. Never a decimal
// approximation. This is the display contract for every value a solver
// transcript shows.
func (x Rat) String() string { return x.val().RatString() }
