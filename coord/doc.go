// Package coord defines the two value types every spatial structure in
// staticgrid is addressed with:
//
//   - Coord — a zero-indexed (Col, Row) address. Non-negative by
//     convention: Apply never produces a negative component, and no
//     grid ever contains one.
//   - Offset — a signed (DCol, DRow) displacement, independent of any
//     grid. It may point "off-grid" in any direction; validity is only
//     decided when the offset is applied to a coordinate.
//
// What:
//
//   - Cardinal unit vectors North, East, South, West.
//   - Component-wise vector algebra: Add, Sub, Scale (both operand
//     orders), CardinalSum.
//   - Apply — the sole bridge from signed displacement space into
//     non-negative coordinate space, reporting absence instead of
//     wrapping or panicking.
//
// Why:
//
//   - Adjacency stays in caller hands: compose Offsets (rotate them,
//     scale them, sum them) and probe a grid with the result, instead
//     of inheriting a fixed neighbor model from the library.
//
// Complexity:
//
//   - Every operation is O(1) time, O(1) memory; all types are plain
//     comparable values usable as map keys.
//
// Overflow:
//
//   - Add, Sub and Scale use Go's native wrapping int arithmetic.
//   - Apply detects wraparound and folds it into the absence result,
//     so it can never yield a bogus in-range coordinate.
package coord
