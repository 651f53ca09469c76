package runs_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/diagonal/diagonal"
	"github.com/katalvlaran/diagonal/runs"
)

//----------------------------------------------------------------------------//
// Validation
//----------------------------------------------------------------------------//

// TestFind_Errors verifies that Find rejects bad options and bad grids.
func TestFind_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		opts runs.Options
		err  error
	}{
		{"ZeroLength", [][]int{{1}}, runs.Options{MinLength: 0}, runs.ErrBadLength},
		{"NegativeLength", [][]int{{1}}, runs.Options{MinLength: -3}, runs.ErrBadLength},
		{"EmptyRows", [][]int{}, runs.DefaultOptions(), runs.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, runs.DefaultOptions(), runs.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, runs.DefaultOptions(), diagonal.ErrNonRectangular},
		{"UnknownKind", [][]int{{1}}, runs.Options{MinLength: 1, Kinds: []diagonal.Kind{diagonal.Kind(9)}}, diagonal.ErrUnknownKind},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := runs.Find(tc.grid, tc.opts)
			assert.ErrorIs(t, err, tc.err)
			assert.Nil(t, got)
		})
	}
}

//----------------------------------------------------------------------------//
// Detection
//----------------------------------------------------------------------------//

// TestFind_TicTacToe finds the single main-diagonal win on a 3×3 board.
func TestFind_TicTacToe(t *testing.T) {
	board := [][]string{
		{"X", "O", "O"},
		{".", "X", "O"},
		{".", ".", "X"},
	}
	got, err := runs.Find(board, runs.DefaultOptions())
	require.NoError(t, err)

	want := []runs.Run[string]{{
		Value: "X",
		Kind:  diagonal.KindPosPos,
		Line:  2,
		Cells: []diagonal.Coord{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Find mismatch (-want +got):\n%s", diff)
	}
}

// TestFind_AntiDiagonal finds four in a row on an anti-diagonal of a 5×5 board,
// ignoring runs of empty (zero) cells.
func TestFind_AntiDiagonal(t *testing.T) {
	board := [][]int{
		{0, 0, 0, 0, 1},
		{0, 0, 0, 1, 0},
		{0, 0, 1, 0, 0},
		{0, 1, 0, 0, 0},
		{2, 0, 0, 0, 0},
	}
	opts := runs.Options{MinLength: 4, Kinds: []diagonal.Kind{diagonal.KindPosNeg}}
	all, err := runs.Find(board, opts)
	require.NoError(t, err)

	var stones []runs.Run[int]
	for _, r := range all {
		if r.Value != 0 {
			stones = append(stones, r)
		}
	}
	require.Len(t, stones, 1)
	assert.Equal(t, 1, stones[0].Value)
	assert.Equal(t, 4, stones[0].Line)
	assert.Equal(t, 4, stones[0].Len())
	assert.Equal(t, diagonal.Coord{Row: 3, Col: 1}, stones[0].Cells[3])
	assert.Len(t, all, 3, "two all-zero anti-diagonals of length 4 are reported too")
}

// TestFind_MaximalSegments verifies runs are split at value changes and only
// maximal segments are reported.
func TestFind_MaximalSegments(t *testing.T) {
	grid := [][]int{{1, 1, 2, 2, 2, 1}}
	opts := runs.Options{MinLength: 2, Kinds: []diagonal.Kind{diagonal.KindStraightX}}

	got, err := runs.Find(grid, opts)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].Value)
	assert.Equal(t, []diagonal.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}}, got[0].Cells)
	assert.Equal(t, 2, got[1].Value)
	assert.Equal(t, 3, got[1].Len())

	longest, ok := runs.Longest(got)
	require.True(t, ok)
	assert.Equal(t, 2, longest.Value)
}

// TestFind_Order verifies kind-then-line ordering over a uniform grid.
func TestFind_Order(t *testing.T) {
	grid := [][]string{{"a", "a"}, {"a", "a"}}
	opts := runs.DefaultOptions()
	opts.MinLength = 2

	got, err := runs.Find(grid, opts)
	require.NoError(t, err)
	require.Len(t, got, 6)

	kinds := make([]diagonal.Kind, len(got))
	for i, r := range got {
		kinds[i] = r.Kind
	}
	assert.Equal(t, []diagonal.Kind{
		diagonal.KindStraightX, diagonal.KindStraightX,
		diagonal.KindStraightY, diagonal.KindStraightY,
		diagonal.KindPosPos, diagonal.KindPosNeg,
	}, kinds)
	assert.Equal(t, 1, got[4].Line, "only the middle diagonal has two cells")
}

// TestFind_SingleCells verifies MinLength=1 reports every cell of a
// distinct-valued grid once per scanned kind.
func TestFind_SingleCells(t *testing.T) {
	grid := [][]int{{1, 2}, {3, 4}}
	got, err := runs.Find(grid, runs.Options{MinLength: 1})
	require.NoError(t, err)
	assert.Len(t, got, 16, "4 cells × 4 kinds")
}

// TestFind_Truncate verifies ragged grids are accepted under Truncate.
func TestFind_Truncate(t *testing.T) {
	grid := [][]int{{7, 7, 7, 9}, {7, 7, 7}}
	opts := runs.Options{MinLength: 3, Kinds: []diagonal.Kind{diagonal.KindStraightX}, Truncate: true}

	got, err := runs.Find(grid, opts)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestLongest_Empty(t *testing.T) {
	_, ok := runs.Longest[int](nil)
	assert.False(t, ok)
}
