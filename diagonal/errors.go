// SPDX-License-Identifier: MIT
// Package diagonal: sentinel error set.
// Every traversal returns these sentinels (optionally wrapped with context via
// fmt.Errorf("...: %w", ErrX)); tests and callers match them with errors.Is.
// No traversal panics on user-supplied input.

package diagonal

import "errors"

var (
	// ErrNonRectangular indicates that a row's length differs from the width
	// of row 0 under the default (strict) shape policy. The wrapped message
	// names the offending row, its length and the expected width.
	ErrNonRectangular = errors.New("diagonal: all rows must have the same length")

	// ErrUnknownKind indicates a Kind value outside KindStraightX..KindPosNeg.
	ErrUnknownKind = errors.New("diagonal: unknown traversal kind")
)
