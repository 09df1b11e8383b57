// SPDX-License-Identifier: MIT
package coord

import "fmt"

// Offset is a signed 2D displacement of the form (DCol, DRow).
// It represents a movement, not a position: there is no constraint on
// sign or magnitude, and an Offset is meaningful without any grid.
// Offset is comparable; == and map-key hashing are component-wise.
type Offset struct {
	DCol, DRow int
}

// Cardinal unit vectors. Rows grow downward, so North is (0,-1).
var (
	// North is the unit vector one row up.
	North = Offset{DCol: 0, DRow: -1}
	// East is the unit vector one column right.
	East = Offset{DCol: 1, DRow: 0}
	// South is the unit vector one row down.
	South = Offset{DCol: 0, DRow: 1}
	// West is the unit vector one column left.
	West = Offset{DCol: -1, DRow: 0}
)

// Of constructs an Offset from column and row displacements.
// Complexity: O(1).
func Of(dcol, drow int) Offset {
	return Offset{DCol: dcol, DRow: drow}
}

// Add returns the component-wise sum o+p. Total; overflow wraps with
// Go's native int semantics.
// Complexity: O(1).
func (o Offset) Add(p Offset) Offset {
	return Offset{DCol: o.DCol + p.DCol, DRow: o.DRow + p.DRow}
}

// Sub returns the component-wise difference o-p. Total; overflow wraps
// with Go's native int semantics.
// Complexity: O(1).
func (o Offset) Sub(p Offset) Offset {
	return Offset{DCol: o.DCol - p.DCol, DRow: o.DRow - p.DRow}
}

// Scale returns the component-wise product o*k. Total; overflow wraps
// with Go's native int semantics.
// Complexity: O(1).
func (o Offset) Scale(k int) Offset {
	return Offset{DCol: k * o.DCol, DRow: k * o.DRow}
}

// Scale returns k*o. Scalar multiplication commutes: Scale(k, o) and
// o.Scale(k) yield identical results for every k and o.
// Complexity: O(1).
func Scale(k int, o Offset) Offset {
	return o.Scale(k)
}

// CardinalSum expresses a displacement as weighted cardinal steps:
// North*n + East*e + South*s + West*w.
// CardinalSum(1,0,1,0) is the zero offset; CardinalSum(0,2,0,3) equals
// East.Scale(2).Add(West.Scale(3)).
// Complexity: O(1).
func CardinalSum(n, e, s, w int) Offset {
	return North.Scale(n).
		Add(East.Scale(e)).
		Add(South.Scale(s)).
		Add(West.Scale(w))
}

// Apply resolves the coordinate displaced from c by o.
// The second result is false when either displaced component would be
// negative, or when the signed addition wraps around — absence, never
// a bogus in-range coordinate. This is the sole bridge between signed
// displacement space and non-negative coordinate space.
// Complexity: O(1).
func (o Offset) Apply(c Coord) (Coord, bool) {
	col := c.Col + o.DCol
	row := c.Row + o.DRow
	// Signed wraparound: a+b overflowed iff the sum moved against the
	// sign of b.
	if (o.DCol > 0 && col < c.Col) || (o.DCol < 0 && col > c.Col) {
		return Coord{}, false
	}
	if (o.DRow > 0 && row < c.Row) || (o.DRow < 0 && row > c.Row) {
		return Coord{}, false
	}
	if col < 0 || row < 0 {
		return Coord{}, false
	}

	return Coord{Col: col, Row: row}, true
}

// Compare orders offsets lexicographically: by DCol, then by DRow.
// Returns -1, 0 or +1. The order is total.
// Complexity: O(1).
func (o Offset) Compare(p Offset) int {
	if o.DCol != p.DCol {
		if o.DCol < p.DCol {
			return -1
		}

		return 1
	}
	if o.DRow != p.DRow {
		if o.DRow < p.DRow {
			return -1
		}

		return 1
	}

	return 0
}

// String implements fmt.Stringer for diagnostics, e.g. "<+1,-2>".
// Complexity: O(1).
func (o Offset) String() string {
	return fmt.Sprintf("<%+d,%+d>", o.DCol, o.DRow)
}
