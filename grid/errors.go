// SPDX-License-Identifier: MIT

package grid

import "errors"

// Sentinel errors for grid operations. Matched via errors.Is.
var (
	// ErrNilBoundary indicates construction without a boundary model.
	ErrNilBoundary = errors.New("grid: boundary model is nil")

	// ErrBusy indicates a setter or Generate call while a solve is in flight.
	ErrBusy = errors.New("grid: generation in progress")

	// ErrNotSolved indicates derived data was requested before a successful
	// Generate.
	ErrNotSolved = errors.New("grid: not solved yet")

	// ErrBadSpec indicates a spec document that cannot be decoded or turned
	// back into a grid.
	ErrBadSpec = errors.New("grid: malformed spec")
)
