// Package traversal is the root of github.com/katalvlaran/diagonal: linear
// traversals over rectangular matrices held as slices of rows.
//
// What is in the module?
//
//	A small, dependency-free library that brings together:
//		• Rows and columns: StraightX, StraightY
//		• Diagonals: DiagonalPosPos (bottom-left → top-right sweep) and
//		  DiagonalPosNeg (top-left → bottom-right sweep)
//		• Index layouts: the same traversals as (row, col) pairs
//		• Run detection: "k in a row" along any traversal
//
// Why?
//
//   - Views, not copies – traversals return pointers into your matrix
//   - Generic – any element type, any defined slice-of-slices type
//   - Explicit shape policy – ragged input fails fast or is truncated on request
//
// Under the hood, everything is organized under these subpackages:
//
//	diagonal/ — StraightX, StraightY, DiagonalPosPos, DiagonalPosNeg, Coords
//	runs/     — maximal runs of equal values along any traversal
//	examples/ — runnable tic-tac-toe / gomoku winner detection
//
// Quick ASCII example:
//
//	1 2 3
//	4 5 6   anti-diagonals: [1] [2 4] [3 5 7] [6 8] [9]
//	7 8 9
//
//	go get github.com/katalvlaran/diagonal
package traversal
