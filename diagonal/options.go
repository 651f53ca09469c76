// SPDX-License-Identifier: MIT

// Package diagonal: functional configuration of the shape policy.
//
// Defaults:
//   - strict: rows of unequal length are rejected with ErrNonRectangular.
//
// WithTruncate switches to the "shortest row wins" policy instead.
package diagonal

// DefaultTruncate is the zero-value shape policy (strict validation).
const DefaultTruncate = false

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	truncate bool // DefaultTruncate
}

// WithTruncate treats the matrix width as the minimum row length. Cells past
// that width are never visited, so ragged input is accepted without error.
//
// Complexity: O(1).
func WithTruncate() Option {
	return func(o *Options) { o.truncate = true }
}

// WithStrict restores the default policy: every row must match the width of
// row 0, otherwise the traversal fails with ErrNonRectangular.
//
// Complexity: O(1).
func WithStrict() Option {
	return func(o *Options) { o.truncate = false }
}

// gatherOptions applies opts over the defaults. Nil setters are skipped.
func gatherOptions(opts ...Option) Options {
	o := Options{truncate: DefaultTruncate}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
