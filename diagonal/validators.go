// SPDX-License-Identifier: MIT
// Package: diagonal
//
// Purpose:
//   - Single source of truth for the shape check every traversal runs first.
//   - Return the sentinel wrapped with row/length context so callers can
//     report the offending row while still matching with errors.Is.
//
// Determinism & Performance:
//   - One pass over row lengths, O(h) time, no allocation on success.

package diagonal

import "fmt"

// shapeErrorf tags err with the validator name and the offending row.
func shapeErrorf(row, got, want int) error {
	return fmt.Errorf("Shape: row %d has length %d, want %d: %w", row, got, want, ErrNonRectangular)
}

// Shape reports the height and width a traversal of m will use.
//
// Under the default policy every row must be as long as row 0; the first row
// that is not yields an error wrapping ErrNonRectangular. With WithTruncate
// the width is the shortest row length instead and no error is possible.
//
// A matrix with no rows has shape (0, 0).
//
// Complexity: O(h).
func Shape[Ss ~[]S, S ~[]E, E any](m Ss, opts ...Option) (h, w int, err error) {
	h = len(m)
	if h == 0 {
		return 0, 0, nil
	}

	o := gatherOptions(opts...)
	w = len(m[0])
	for i := 1; i < h; i++ {
		n := len(m[i])
		if n == w {
			continue
		}
		if !o.truncate {
			return 0, 0, shapeErrorf(i, n, w)
		}
		w = min(w, n)
	}

	return h, w, nil
}
