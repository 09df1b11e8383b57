// SPDX-License-Identifier: MIT
package grid

// Transpose returns a new grid with columns and rows swapped and cell
// contents mirrored across the diagonal: for every valid (c,r) in g,
// t.Get((r,c)) equals g.Get((c,r)).
// Stage 1 (Prepare): allocate the swapped-shape buffer directly — no
// default value is needed, so zero-cell grids transpose cleanly.
// Stage 2 (Execute): copy each cell to its swapped-index slot; every
// write is independent, fixed r→c order for determinism.
// Transpose is an exact involution: g.Transpose().Transpose() has g's
// dimensions and cell values.
// Complexity: O(cols×rows) time and memory — every cell is visited
// and copied once.
func (g *Grid[T]) Transpose() *Grid[T] {
	t := &Grid[T]{
		cols: g.rows,
		rows: g.cols,
		data: make([]T, len(g.data)),
	}
	var r, c, base int
	for r = 0; r < g.rows; r++ {
		base = g.cols * r
		for c = 0; c < g.cols; c++ {
			// Source (c,r) lands at destination (r,c): r + t.cols*c.
			t.data[r+t.cols*c] = g.data[base+c]
		}
	}

	return t
}
