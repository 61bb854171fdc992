// SPDX-License-Identifier: MIT

// Package boundary: core types and options for boundary construction.
package boundary

// Corner classification values for Point.Beta.
const (
	// Convex marks a +90° turn of the boundary (a rectangle-image corner).
	Convex = 1
	// Straight marks a non-corner perimeter vertex.
	Straight = 0
	// Reentrant marks a -90° turn (a concave corner).
	Reentrant = -1
)

// DefaultNPPE is the default number of sub-segments per boundary edge used
// when discretizing the perimeter for the solver.
const DefaultNPPE = 3

// Point is one vertex of the boundary polygon. Beta classifies the vertex:
// Convex (+1), Reentrant (-1) or Straight (0). The betas of a valid boundary
// sum to exactly 4.
type Point struct {
	X    float64
	Y    float64
	Beta int
}

// Transform maps a coordinate pair into another coordinate space. A nil
// Transform is the identity. Implementations must be deterministic.
type Transform func(x, y float64) (float64, float64, error)

// Option configures Model construction.
type Option func(*config)

type config struct {
	checkSimplePoly bool
}

// WithSimplePolyCheck enables or disables the O(n²) self-intersection scan
// during validation. Enabled by default; disable only for boundaries already
// known to be simple.
func WithSimplePolyCheck(enabled bool) Option {
	return func(c *config) { c.checkSimplePoly = enabled }
}

// Model is a validated, immutable boundary polygon. Construct with New;
// derive transformed copies with Project.
type Model struct {
	points []Point
	ulIdx  int
	area   float64 // signed area, positive for counterclockwise rings
}
