// SPDX-License-Identifier: MIT
// Package grid - dense row-major storage & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index
//     formula c + cols*r.
//   - Guarantee safety at the public surface: out-of-range reads report
//     absence, out-of-range writes no-op, nothing panics.
//   - Keep Contains as the single source of truth for validity.

package grid

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/staticgrid/coord"
)

// Grid is a fixed-size, zero-indexed, two-dimensional container.
// cols and rows are set at construction and never change; data holds
// cols*rows elements of T in row-major order (offset = c + cols*r).
// T should have value semantics: every cell holds its own copy, and
// for pointer-like T the cells share whatever the values point at.
type Grid[T any] struct {
	cols, rows int // column and row counts (>= 0, immutable)
	data       []T // flat backing storage, len == cols*rows
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Grid[int])(nil)

// New creates a cols×rows Grid with every cell initialized to an
// independent copy of def.
// Stage 1 (Validate): reject negative dimensions and int overflow of
// cols*rows before allocating.
// Stage 2 (Prepare): allocate the flat backing slice.
// Stage 3 (Finalize): fill every slot with def.
// A zero cols or rows is legal and yields an empty grid.
// Complexity: O(cols×rows) time and memory.
func New[T any](cols, rows int, def T) (*Grid[T], error) {
	if cols < 0 || rows < 0 {
		return nil, fmt.Errorf("grid.New(%d,%d): %w", cols, rows, ErrNegativeDimension)
	}
	// Overflow of the cell count would silently undersize the buffer.
	if rows > 0 && cols > math.MaxInt/rows {
		return nil, fmt.Errorf("grid.New(%d,%d): %w", cols, rows, ErrTooManyCells)
	}
	data := make([]T, cols*rows)
	for i := range data {
		data[i] = def // independent copy per slot
	}

	return &Grid[T]{cols: cols, rows: rows, data: data}, nil
}

// Square creates a side×side Grid populated with def, equivalent to
// New(side, side, def).
// Complexity: O(side²) time and memory.
func Square[T any](side int, def T) (*Grid[T], error) {
	return New(side, side, def)
}

// Cols returns the column count. Complexity: O(1).
func (g *Grid[T]) Cols() int { return g.cols }

// Rows returns the row count. Complexity: O(1).
func (g *Grid[T]) Rows() int { return g.rows }

// Contains reports whether c lies within the grid. This is the single
// source of truth for coordinate validity: every accessor routes
// through it rather than duplicating the bounds logic.
// Complexity: O(1).
func (g *Grid[T]) Contains(c coord.Coord) bool {
	return c.Col >= 0 && c.Col < g.cols && c.Row >= 0 && c.Row < g.rows
}

// flatIndex maps a valid coordinate to its row-major backing offset.
// Callers must have checked Contains first.
// Complexity: O(1).
func (g *Grid[T]) flatIndex(c coord.Coord) int {
	return c.Col + g.cols*c.Row
}

// Get returns a copy of the cell at c, or (zero, false) when c is out
// of range. Out-of-range lookups are an expected, frequent occurrence
// in spatial code (probing past an edge), so they are absence, not an
// error.
// Complexity: O(1).
func (g *Grid[T]) Get(c coord.Coord) (T, bool) {
	if !g.Contains(c) {
		var zero T
		return zero, false
	}

	return g.data[g.flatIndex(c)], true
}

// GetMut returns a pointer into the cell at c, or (nil, false) when c
// is out of range. The pointer stays valid for the grid's lifetime —
// the backing store never moves because the grid never resizes.
// Complexity: O(1).
func (g *Grid[T]) GetMut(c coord.Coord) (*T, bool) {
	if !g.Contains(c) {
		return nil, false
	}

	return &g.data[g.flatIndex(c)], true
}

// Set writes v into the cell at c. Out-of-range writes are a silent
// no-op: the write-side mirror of Get's absence. Never panics.
// Complexity: O(1).
func (g *Grid[T]) Set(c coord.Coord, v T) {
	if p, ok := g.GetMut(c); ok {
		*p = v
	}
}

// RelGet returns a copy of the cell displaced from anchor by off.
// Two independent range checks compose: Apply rejects negative or
// wrapped coordinates, Contains rejects coordinates past the far edge.
// Complexity: O(1).
func (g *Grid[T]) RelGet(anchor coord.Coord, off coord.Offset) (T, bool) {
	if c, ok := off.Apply(anchor); ok {
		return g.Get(c)
	}
	var zero T

	return zero, false
}

// RelGetMut returns a pointer to the cell displaced from anchor by
// off, with the same contract as GetMut.
// Complexity: O(1).
func (g *Grid[T]) RelGetMut(anchor coord.Coord, off coord.Offset) (*T, bool) {
	if c, ok := off.Apply(anchor); ok {
		return g.GetMut(c)
	}

	return nil, false
}

// RelSet writes v into the cell displaced from anchor by off, with the
// same silent-no-op contract as Set.
// Complexity: O(1).
func (g *Grid[T]) RelSet(anchor coord.Coord, off coord.Offset, v T) {
	if c, ok := off.Apply(anchor); ok {
		g.Set(c, v)
	}
}

// Clone returns a deep copy: same dimensions, new backing storage,
// every cell copied. Mutations of the clone never affect the original.
// Complexity: O(cols×rows) time and memory.
func (g *Grid[T]) Clone() *Grid[T] {
	cp := make([]T, len(g.data))
	copy(cp, g.data)

	return &Grid[T]{cols: g.cols, rows: g.rows, data: cp}
}

// Do visits every cell in row-major order and calls f with its
// coordinate and a copy of its value; stops early when f returns
// false. Row-major is the one traversal order this library documents.
// Complexity: O(cols×rows) time, O(1) memory.
func (g *Grid[T]) Do(f func(c coord.Coord, v T) bool) {
	var r, c, base int
	for r = 0; r < g.rows; r++ {
		base = g.cols * r
		for c = 0; c < g.cols; c++ {
			if !f(coord.Coord{Col: c, Row: r}, g.data[base+c]) {
				return
			}
		}
	}
}

// String renders the grid row by row for diagnostics, cells formatted
// with %v. Not for hot paths.
// Complexity: O(cols×rows).
func (g *Grid[T]) String() string {
	var b strings.Builder
	var r, c, base int
	for r = 0; r < g.rows; r++ {
		b.WriteString("[")
		base = g.cols * r
		for c = 0; c < g.cols; c++ {
			fmt.Fprintf(&b, "%v", g.data[base+c])
			if c+1 < g.cols {
				b.WriteString(", ")
			}
		}
		b.WriteString("]\n")
	}

	return b.String()
}
