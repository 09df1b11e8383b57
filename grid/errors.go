// SPDX-License-Identifier: MIT
// Package grid: sentinel error set.
// Only constructors return errors; out-of-range access is signaled by
// absence/no-op, never by error or panic. Tests match these sentinels
// via errors.Is.

package grid

import "errors"

var (
	// ErrNegativeDimension indicates a constructor received a negative
	// column or row count. Zero is legal and produces an empty grid.
	ErrNegativeDimension = errors.New("grid: dimensions must be non-negative")

	// ErrTooManyCells indicates cols*rows overflows int. Detected before
	// allocation: proceeding with an undersized buffer would corrupt all
	// subsequent indexed access.
	ErrTooManyCells = errors.New("grid: cell count overflows int")
)
