// SPDX-License-Identifier: MIT

// Package diagonal: domain types shared by the traversals and their
// index-only counterparts.
package diagonal

import "fmt"

// Coord addresses one cell of a matrix: Row counts from the top, Col from the
// left, both 0-indexed.
type Coord struct {
	Row, Col int
}

// Kind selects one of the four linear traversals.
type Kind int

const (
	// KindStraightX walks rows top to bottom, each row left to right.
	KindStraightX Kind = iota
	// KindStraightY walks columns left to right, each column top to bottom.
	KindStraightY
	// KindPosPos walks the diagonals parallel to the main diagonal, starting at
	// the bottom-left corner and ending at the top-right corner.
	KindPosPos
	// KindPosNeg walks the anti-diagonals, starting at the top-left corner and
	// ending at the bottom-right corner.
	KindPosNeg
)

// kindNames is indexed by Kind.
var kindNames = [...]string{"straight-x", "straight-y", "pos-pos", "pos-neg"}

// Kinds returns every traversal kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindStraightX, KindStraightY, KindPosPos, KindPosNeg}
}

// Valid reports whether k names one of the four traversals.
func (k Kind) Valid() bool {
	return k >= KindStraightX && k <= KindPosNeg
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}
