// File: grid/example_test.go
package grid_test

import (
	"fmt"

	"github.com/katalvlaran/staticgrid/coord"
	"github.com/katalvlaran/staticgrid/grid"
)

////////////////////////////////////////////////////////////////////////////////
// Example: direct and relative access
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_RelGet demonstrates probing a neighbor cell through an
// offset instead of computing edge conditions by hand.
// Scenario:
//
//   - A 5×5 terrain map of runes, all '.', with a wall '#' at (2,3).
//   - Standing at (2,4), looking North, we see the wall.
//   - Standing at (0,0), looking North, we fall off the map: absence,
//     no panic, no sentinel coordinate.
//
// Complexity: O(1) per probe.
func ExampleGrid_RelGet() {
	g, _ := grid.New(5, 5, '.')
	g.Set(coord.At(2, 3), '#')

	if v, ok := g.RelGet(coord.At(2, 4), coord.North); ok {
		fmt.Printf("north of (2,4): %c\n", v)
	}
	if _, ok := g.RelGet(coord.At(0, 0), coord.North); !ok {
		fmt.Println("north of (0,0): off the map")
	}

	// Output:
	// north of (2,4): #
	// north of (0,0): off the map
}

////////////////////////////////////////////////////////////////////////////////
// Example: transpose
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Transpose demonstrates the dimension swap and diagonal
// mirror on a small integer grid.
// Complexity: O(cols×rows).
func ExampleGrid_Transpose() {
	g, _ := grid.New(3, 2, 0)
	n := 1
	g.Do(func(c coord.Coord, _ int) bool {
		g.Set(c, n)
		n++

		return true
	})
	fmt.Print(g)
	fmt.Println("transposed:")
	fmt.Print(g.Transpose())

	// Output:
	// [1, 2, 3]
	// [4, 5, 6]
	// transposed:
	// [1, 4]
	// [2, 5]
	// [3, 6]
}
