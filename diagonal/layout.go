// SPDX-License-Identifier: MIT

package diagonal

// Each traversal line is a straight segment through the matrix: it starts at
// (r0, c0) and advances by (dr, dc) for n cells. span computes that segment
// for line i of an h×w matrix; all four layouts are closed-form, so no bounds
// probing is needed while walking.
//
//	KindStraightX  line i = row i:         (i, 0)  step (0, +1)  n = w
//	KindStraightY  line i = column i:      (0, i)  step (+1, 0)  n = h
//	KindPosPos     line d: (h-1-r)+c == d  step (+1, +1), starts on the
//	               left column for d < h, else on the top row
//	KindPosNeg     line k: r+c == k        step (+1, -1), starts on the
//	               top row for k < w, else on the right column
//
// span assumes kind is valid and 0 <= i < LineCount(kind, h, w).
func span(kind Kind, i, h, w int) (r0, c0, dr, dc, n int) {
	switch kind {
	case KindStraightX:
		return i, 0, 0, 1, w
	case KindStraightY:
		return 0, i, 1, 0, h
	case KindPosPos:
		if i < h {
			r0, c0 = h-1-i, 0
		} else {
			r0, c0 = 0, i-(h-1)
		}

		return r0, c0, 1, 1, min(h-r0, w-c0)
	default: // KindPosNeg
		r0 = max(0, i-(w-1))
		c0 = i - r0

		return r0, c0, 1, -1, min(h-r0, c0+1)
	}
}

// LineCount reports how many lines the given traversal yields for an h×w
// matrix: h for KindStraightX, w for KindStraightY and h+w-1 for both
// diagonal kinds. It returns 0 when h or w is not positive, or when kind is invalid.
func LineCount(kind Kind, h, w int) int {
	if h <= 0 || w <= 0 {
		return 0
	}
	switch kind {
	case KindStraightX:
		return h
	case KindStraightY:
		return w
	case KindPosPos, KindPosNeg:
		return h + w - 1
	default:
		return 0
	}
}

// Coords returns the traversal of an h×w matrix as index pairs rather than
// element references. Line and cell order match the reference-returning
// traversals exactly, so Coords(kind, h, w)[i][j] addresses the element
// returned at lines[i][j].
//
// The result is empty (length 0) when h or w is not positive and nil when
// kind is invalid.
//
// Complexity: O(h*w) time and memory.
func Coords(kind Kind, h, w int) [][]Coord {
	if !kind.Valid() {
		return nil
	}

	out := make([][]Coord, LineCount(kind, h, w))
	for i := range out {
		r, c, dr, dc, n := span(kind, i, h, w)
		line := make([]Coord, n)
		for j := range line {
			line[j] = Coord{Row: r, Col: c}
			r += dr
			c += dc
		}
		out[i] = line
	}

	return out
}
