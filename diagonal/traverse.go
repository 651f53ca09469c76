package diagonal

// Lines extracts the traversal selected by kind from m.
//
// Every returned pointer addresses an element of m itself; nothing is copied,
// so the result observes later writes to m and must not be used to retain
// elements beyond m's intended lifetime. Rows and columns beyond the shape
// reported by Shape are never visited.
//
// Errors:
//   - ErrUnknownKind if kind is not one of the four traversals.
//   - ErrNonRectangular (wrapped) under the default policy when rows differ
//     in length. No partial result is returned.
//
// Empty input (no rows, or zero width) yields an empty, non-nil result.
//
// Complexity: O(h*w) time, O(h*w) pointers.
func Lines[Ss ~[]S, S ~[]E, E any](m Ss, kind Kind, opts ...Option) ([][]*E, error) {
	if !kind.Valid() {
		return nil, ErrUnknownKind
	}
	h, w, err := Shape(m, opts...)
	if err != nil {
		return nil, err
	}

	out := make([][]*E, LineCount(kind, h, w))
	for i := range out {
		r, c, dr, dc, n := span(kind, i, h, w)
		line := make([]*E, n)
		for j := range line {
			line[j] = &m[r][c]
			r += dr
			c += dc
		}
		out[i] = line
	}

	return out, nil
}

// StraightX returns one line per row, each holding that row's elements left
// to right.
//
//	[[1,2,3],[4,5,6],[7,8,9]] → [[1,2,3],[4,5,6],[7,8,9]]
func StraightX[Ss ~[]S, S ~[]E, E any](m Ss, opts ...Option) ([][]*E, error) {
	return Lines(m, KindStraightX, opts...)
}

// StraightY returns one line per column, each holding that column's elements
// top to bottom.
//
//	[[1,2,3],[4,5,6],[7,8,9]] → [[1,4,7],[2,5,8],[3,6,9]]
func StraightY[Ss ~[]S, S ~[]E, E any](m Ss, opts ...Option) ([][]*E, error) {
	return Lines(m, KindStraightY, opts...)
}

// DiagonalPosPos returns the h+w-1 diagonals running parallel to the main
// diagonal. The first line is the bottom-left corner, the last one the
// top-right corner; each line is walked from its upper-left end down to its
// lower-right end.
//
//	[[1,2,3],[4,5,6],[7,8,9]] → [[7],[4,8],[1,5,9],[2,6],[3]]
func DiagonalPosPos[Ss ~[]S, S ~[]E, E any](m Ss, opts ...Option) ([][]*E, error) {
	return Lines(m, KindPosPos, opts...)
}

// DiagonalPosNeg returns the h+w-1 anti-diagonals. The first line is the
// top-left corner, the last one the bottom-right corner; each line is walked
// from its upper-right end down to its lower-left end.
//
//	[[1,2,3],[4,5,6],[7,8,9]] → [[1],[2,4],[3,5,7],[6,8],[9]]
func DiagonalPosNeg[Ss ~[]S, S ~[]E, E any](m Ss, opts ...Option) ([][]*E, error) {
	return Lines(m, KindPosNeg, opts...)
}

// Values dereferences lines into a freshly allocated copy.
func Values[E any](lines [][]*E) [][]E {
	out := make([][]E, len(lines))
	for i, line := range lines {
		vs := make([]E, len(line))
		for j, p := range line {
			vs[j] = *p
		}
		out[i] = vs
	}

	return out
}
