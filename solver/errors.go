// SPDX-License-Identifier: MIT
// Package solver: sentinel error set. Algorithms return these sentinels and
// tests match them via errors.Is.

package solver

import "errors"

var (
	// ErrShapeTooSmall indicates a logical dimension below 2.
	ErrShapeTooSmall = errors.New("solver: shape dimensions must be at least 2")

	// ErrNilBoundary indicates Solve was called without a boundary model.
	ErrNilBoundary = errors.New("solver: boundary model is nil")

	// ErrFoldedCell indicates a cell with non-positive signed area after the
	// solve: the grid self-intersects and no safe approximate grid exists.
	ErrFoldedCell = errors.New("solver: grid contains folded cells")

	// ErrDegenerateBoundary indicates the boundary ring cannot seed a
	// rectangle mapping (corner assignment failed or a side collapsed).
	ErrDegenerateBoundary = errors.New("solver: degenerate boundary")
)
