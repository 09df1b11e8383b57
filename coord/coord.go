// SPDX-License-Identifier: MIT
package coord

import "fmt"

// Coord is a zero-indexed (column, row) address into a grid.
// Components are non-negative by convention; Apply never produces a
// negative one. Coord is comparable: == and map-key hashing are the
// component-wise equality required of an address type.
type Coord struct {
	Col, Row int
}

// At constructs a Coord from column and row indices.
// Complexity: O(1).
func At(col, row int) Coord {
	return Coord{Col: col, Row: row}
}

// Compare orders coordinates lexicographically: by Col, then by Row.
// Returns -1, 0 or +1. The order is total.
// Complexity: O(1).
func (c Coord) Compare(d Coord) int {
	if c.Col != d.Col {
		if c.Col < d.Col {
			return -1
		}

		return 1
	}
	if c.Row != d.Row {
		if c.Row < d.Row {
			return -1
		}

		return 1
	}

	return 0
}

// String implements fmt.Stringer for diagnostics, e.g. "(2,3)".
// Complexity: O(1).
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}
