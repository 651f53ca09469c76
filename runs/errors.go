package runs

import "errors"

var (
	// ErrEmptyGrid indicates the grid has no rows or no columns.
	ErrEmptyGrid = errors.New("runs: input grid must have at least one row and one column")
	// ErrBadLength indicates Options.MinLength is below 1.
	ErrBadLength = errors.New("runs: minimum run length must be >= 1")
)
