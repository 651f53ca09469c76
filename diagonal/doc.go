// Package diagonal extracts linear traversals from a rectangular matrix held
// as a slice of rows: rows, columns, and both families of diagonals.
//
// What:
//
//   - StraightX:      rows, top to bottom.
//   - StraightY:      columns, left to right.
//   - DiagonalPosPos: diagonals parallel to the main diagonal, swept from the
//     bottom-left corner to the top-right corner.
//   - DiagonalPosNeg: anti-diagonals, swept from the top-left corner to the
//     bottom-right corner.
//
// Every traversal returns [][]*E: pointers into the caller's matrix, never
// copies. Coords computes the same layouts as (row, col) index pairs, and
// Values dereferences a result when an owned copy is wanted.
//
// Example (3×3):
//
//	1 2 3
//	4 5 6     DiagonalPosPos → [7] [4 8] [1 5 9] [2 6] [3]
//	7 8 9     DiagonalPosNeg → [1] [2 4] [3 5 7] [6 8] [9]
//
// Shape policy:
//
//   - Default: rows of unequal length fail with ErrNonRectangular; the error
//     text names the offending row index, its length and the expected width.
//   - WithTruncate(): the shortest row defines the width.
//   - No rows or zero width: empty result, no error.
//
// Complexity:
//
//   - All traversals: O(h·w) time and memory. The input is only read, so
//     concurrent calls on the same matrix are safe.
package diagonal
