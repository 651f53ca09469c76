// Package runs detects "k in a row": maximal runs of equal, consecutive cells
// along the rows, columns and diagonals of a rectangular grid.
//
// What:
//
//   - Find scans every line produced by the diagonal package traversals and
//     reports each maximal run of at least Options.MinLength equal values.
//   - Each Run carries the value, the traversal kind, the line index within
//     that traversal and the (row, col) cells it covers.
//
// Why:
//
//   - Board games: tic-tac-toe, gomoku, connect-four win detection.
//   - Puzzles: match-3 clearing, word-search style scans.
//   - Raster checks: streaks of identical pixels or sensor readings.
//
// Complexity:
//
//   - Find: O(K·H·W) time and memory, K = number of traversal kinds scanned.
//
// Options:
//
//   - Options.MinLength: shortest run to report (≥ 1).
//   - Options.Kinds: traversals to scan; empty means all four.
//   - Options.Truncate: accept ragged grids, cutting to the shortest row.
//
// Errors:
//
//   - ErrEmptyGrid: grid has no rows or no columns.
//   - ErrBadLength: MinLength < 1.
//   - diagonal.ErrNonRectangular, diagonal.ErrUnknownKind: passed through.
package runs
