package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/staticgrid/coord"
	"github.com/katalvlaran/staticgrid/grid"
)

// coordGrid builds a cols×rows grid where every cell stores its own
// coordinate, the canonical fixture for mirror checks.
func coordGrid(t *testing.T, cols, rows int) *grid.Grid[coord.Coord] {
	t.Helper()
	g := mustGrid(t, cols, rows, coord.Coord{})
	g.Do(func(c coord.Coord, _ coord.Coord) bool {
		g.Set(c, c)

		return true
	})

	return g
}

// TestTranspose_Mirror verifies the defining property on a 3×4 grid of
// coordinate-valued cells: the transpose is 4×3 and t.Get((r,c)) ==
// g.Get((c,r)) for every valid (c,r).
func TestTranspose_Mirror(t *testing.T) {
	g := coordGrid(t, 3, 4)
	tr := g.Transpose()

	assert.Equal(t, 4, tr.Cols(), "transpose swaps cols")
	assert.Equal(t, 3, tr.Rows(), "transpose swaps rows")

	for c := 0; c < 3; c++ {
		for r := 0; r < 4; r++ {
			orig, ok := g.Get(coord.At(c, r))
			require.True(t, ok)
			mirr, ok := tr.Get(coord.At(r, c))
			require.True(t, ok)
			assert.Equal(t, orig, mirr, "cell (%d,%d)", c, r)
		}
	}
}

// TestTranspose_Involution checks that transposing twice restores the
// original dimensions and cell values.
func TestTranspose_Involution(t *testing.T) {
	g := coordGrid(t, 5, 2)
	back := g.Transpose().Transpose()

	assert.Equal(t, g.Cols(), back.Cols())
	assert.Equal(t, g.Rows(), back.Rows())
	g.Do(func(c coord.Coord, v coord.Coord) bool {
		got, ok := back.Get(c)
		require.True(t, ok)
		assert.Equal(t, v, got, "cell %v", c)

		return true
	})
}

// TestTranspose_Degenerate covers zero-cell and single-line shapes:
// dimensions swap, no default value is ever read, nothing panics.
func TestTranspose_Degenerate(t *testing.T) {
	cases := []struct {
		name       string
		cols, rows int
	}{
		{"ZeroByZero", 0, 0},
		{"ZeroCols", 0, 4},
		{"ZeroRows", 4, 0},
		{"SingleCell", 1, 1},
		{"SingleRow", 5, 1},
		{"SingleCol", 1, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := coordGrid(t, tc.cols, tc.rows)
			tr := g.Transpose()
			assert.Equal(t, tc.rows, tr.Cols())
			assert.Equal(t, tc.cols, tr.Rows())

			// A single row becomes a single column with the same cells.
			for i := 0; i < tc.cols; i++ {
				for j := 0; j < tc.rows; j++ {
					orig, _ := g.Get(coord.At(i, j))
					mirr, _ := tr.Get(coord.At(j, i))
					assert.Equal(t, orig, mirr)
				}
			}
		})
	}
}
