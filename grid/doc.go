// Package grid provides Grid[T], a fixed-size, two-dimensional, dense
// container addressed by coord.Coord and probed relatively through
// coord.Offset.
//
// What:
//
//   - New/Square allocate a cols×rows store with every cell set to an
//     independent copy of a default value; dimensions are immutable for
//     the grid's lifetime, and zero-sized grids are legal.
//   - Get/GetMut/Set give bounds-checked direct access; RelGet,
//     RelGetMut and RelSet resolve an anchor plus an Offset first.
//   - Transpose returns a new grid with columns and rows swapped and
//     cell contents mirrored across the diagonal.
//   - Contains is the single source of truth for coordinate validity;
//     every access routes through it.
//
// Why:
//
//   - Game maps, cellular automata, puzzle boards: any code that wants
//     a flat, cache-friendly 2D store without committing to a neighbor
//     model. Adjacency is composed by the caller out of Offsets.
//
// Layout:
//
//   - Row-major backing storage: cell (c,r) lives at flat index
//     c + cols*r, a bijection between valid coordinates and
//     [0, cols*rows).
//
// Complexity:
//
//   - New/Square/Transpose/Clone: O(cols×rows) time and memory.
//   - Every other operation: O(1), no allocations.
//
// Errors:
//
//   - ErrNegativeDimension: a constructor received a negative size.
//   - ErrTooManyCells: cols*rows overflows int.
//   - Out-of-range coordinates are NOT errors: reads report absence,
//     writes no-op, nothing panics.
//
// Concurrency:
//
//   - None inside the library. A Grid is a plain in-memory value with
//     one logical owner; share it across goroutines only behind your
//     own lock.
package grid
