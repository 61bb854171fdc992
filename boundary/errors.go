// SPDX-License-Identifier: MIT

package boundary

import "errors"

// Sentinel errors for boundary construction and transformation. All are
// matched via errors.Is; constructors may wrap them with positional context.
var (
	// ErrTooFewPoints indicates fewer than 4 vertices or fewer than 4 convex
	// corners; no rectangle image exists for such a boundary.
	ErrTooFewPoints = errors.New("boundary: need at least 4 points and 4 convex corners")

	// ErrBetaSum indicates the corner classifications do not sum to exactly 4.
	ErrBetaSum = errors.New("boundary: beta values must sum to 4")

	// ErrSelfIntersecting indicates two non-adjacent edges cross.
	ErrSelfIntersecting = errors.New("boundary: polygon is self-intersecting")

	// ErrDegenerate indicates a zero-area boundary or consecutive duplicate
	// vertices.
	ErrDegenerate = errors.New("boundary: degenerate polygon")

	// ErrIndexRange indicates the upper-left anchor index is outside the
	// vertex range.
	ErrIndexRange = errors.New("boundary: upper-left index out of range")

	// ErrBadBeta indicates a corner class outside {-1, 0, +1}.
	ErrBadBeta = errors.New("boundary: beta must be -1, 0 or +1")

	// ErrBadNPPE indicates a non-positive points-per-edge count.
	ErrBadNPPE = errors.New("boundary: points per edge must be positive")

	// ErrProjection indicates a projection could not be parsed or applied.
	ErrProjection = errors.New("boundary: projection failed")
)
