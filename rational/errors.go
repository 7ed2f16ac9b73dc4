// SPDX-License-Identifier: MIT
// Package rational: sentinel error set.
// Algorithms MUST return these sentinels and tests MUST check them via
// errors.Is. Panics are reserved for programmer errors (zero denominators,
// nonsensical bounds), never for user-supplied text.

package rational

import "errors"

// ErrMalformedValue is returned when text (or a non-finite float) cannot be
// interpreted as an exact rational. Callers wrap it with positional context
// at the boundary; errors.Is keeps matching.
var ErrMalformedValue = errors.New("rational: malformed value")
