// Package staticgrid is a minimal, fixed-size, two-dimensional indexed
// container with an accompanying relative-offset arithmetic type.
//
// 🚀 What is staticgrid?
//
//	A dirt-simple, pure-Go building block for spatial code:
//		• coord/ — Coord addresses, signed Offset vectors, cardinal unit
//		  constants (North/East/South/West), vector algebra & safe Apply
//		• grid/  — Grid[T], a dense row-major store with bounds-checked
//		  direct access, offset-relative access, and Transpose
//
// ✨ Why choose staticgrid?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – no panics on out-of-range input, ever
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – compose Offsets for your own adjacency relations
//     (knight moves, diagonals, rings…) instead of inheriting ours
//
// The library deliberately imposes no notion of adjacency: there is no
// built-in "neighbors" helper, no path-finding, no iteration framework.
// An embedding application layers its own spatial semantics on top by
// composing Offsets and probing cells through RelGet/RelSet.
//
// Quick ASCII example (a 3×2 grid, row-major backing order shown):
//
//	(0,0) (1,0) (2,0)        index: 0 1 2
//	(0,1) (1,1) (2,1)               3 4 5
//
// Out-of-scope by design: dynamic resizing, sparse storage, built-in
// adjacency, serialization, concurrency. The data structure is a plain
// in-memory value; guard it with your own lock if you must share it.
package staticgrid
