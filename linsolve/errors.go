// SPDX-License-Identifier: MIT
// Package linsolve: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors. All entry points
// return these sentinels (optionally wrapped with positional context) and
// tests check them via errors.Is. User input never panics.

package linsolve

import "errors"

var (
	// ErrBadInput is returned when Options carry nonsensical values
	// (e.g. a negative snapshot cell width).
	ErrBadInput = errors.New("linsolve: invalid options")

	// ErrDimensionMismatch is returned when coefficient rows are ragged or
	// the constants vector does not pair one-to-one with the rows. Detected
	// before any transcript output is produced.
	ErrDimensionMismatch = errors.New("linsolve: dimension mismatch")

	// ErrMalformedInput is returned by ParseGrid when a cell cannot be read
	// as an exact rational. The wrapped detail names the offending cell.
	// The whole parse fails; no partial grid is returned.
	ErrMalformedInput = errors.New("linsolve: malformed cell value")
)
