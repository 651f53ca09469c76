// Package runs defines the options and result types of run detection.
package runs

import "github.com/katalvlaran/diagonal/diagonal"

// DefaultMinLength is the tic-tac-toe run length used by DefaultOptions.
const DefaultMinLength = 3

// Options contains tunable parameters for Find.
type Options struct {
	// MinLength is the shortest run reported; must be ≥ 1.
	MinLength int
	// Kinds selects the traversals to scan, in order. Empty means all four.
	Kinds []diagonal.Kind
	// Truncate accepts ragged grids by cutting every row to the shortest one.
	Truncate bool
}

// DefaultOptions returns Options with MinLength=3, all four kinds and the
// strict shape policy.
func DefaultOptions() Options {
	return Options{
		MinLength: DefaultMinLength,
		Kinds:     diagonal.Kinds(),
	}
}

// Run is one maximal sequence of equal values along a traversal line.
type Run[E comparable] struct {
	Value E                // the repeated value
	Kind  diagonal.Kind    // traversal the run was found on
	Line  int              // index of the line within that traversal
	Cells []diagonal.Coord // covered cells, in traversal order
}

// Len returns the number of cells in the run.
func (r Run[E]) Len() int {
	return len(r.Cells)
}
