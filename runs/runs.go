package runs

import "github.com/katalvlaran/diagonal/diagonal"

// Find reports every maximal run of at least opts.MinLength equal values in
// grid, scanning the traversals listed in opts.Kinds (all four when empty).
//
// Runs are ordered by kind (in opts.Kinds order), then by line index, then by
// position along the line. A cell may belong to several runs of different
// kinds. Zero values are reported like any other value; filter the result if
// a value marks an empty cell.
//
// Returns ErrBadLength if opts.MinLength < 1, ErrEmptyGrid if the grid has no
// rows or no columns, and the diagonal package errors for ragged grids or
// unknown kinds.
//
// Time: O(K·H·W). Memory: O(H·W) per scanned kind.
func Find[Ss ~[]S, S ~[]E, E comparable](grid Ss, opts Options) ([]Run[E], error) {
	if opts.MinLength < 1 {
		return nil, ErrBadLength
	}
	var dopts []diagonal.Option
	if opts.Truncate {
		dopts = append(dopts, diagonal.WithTruncate())
	}
	h, w, err := diagonal.Shape(grid, dopts...)
	if err != nil {
		return nil, err
	}
	if h == 0 || w == 0 {
		return nil, ErrEmptyGrid
	}

	kinds := opts.Kinds
	if len(kinds) == 0 {
		kinds = diagonal.Kinds()
	}

	var out []Run[E]
	for _, kind := range kinds {
		// Lines repeats the O(h) shape check done above, which already
		// passed; only an unknown kind can fail here.
		lines, err := diagonal.Lines(grid, kind, dopts...)
		if err != nil {
			return nil, err
		}
		// Coords shares the line layout of Lines, so cells[i][j] is lines[i][j].
		cells := diagonal.Coords(kind, h, w)
		for i, line := range lines {
			out = appendRuns(out, kind, i, line, cells[i], opts.MinLength)
		}
	}

	return out, nil
}

// appendRuns splits one line into maximal equal-value segments and appends
// those of at least minLen cells.
func appendRuns[E comparable](out []Run[E], kind diagonal.Kind, idx int, line []*E, cells []diagonal.Coord, minLen int) []Run[E] {
	start := 0
	for j := 1; j <= len(line); j++ {
		if j < len(line) && *line[j] == *line[start] {
			continue
		}
		if j-start >= minLen {
			out = append(out, Run[E]{
				Value: *line[start],
				Kind:  kind,
				Line:  idx,
				Cells: cells[start:j:j],
			})
		}
		start = j
	}

	return out
}

// Longest returns the longest run in rs and true, or the zero Run and false
// when rs is empty. Ties go to the earliest run.
func Longest[E comparable](rs []Run[E]) (Run[E], bool) {
	if len(rs) == 0 {
		return Run[E]{}, false
	}
	best := rs[0]
	for _, r := range rs[1:] {
		if r.Len() > best.Len() {
			best = r
		}
	}

	return best, true
}
