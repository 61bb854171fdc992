// SPDX-License-Identifier: MIT

package boundary

import "fmt"

// checkSimple scans all non-adjacent edge pairs for crossings. Boundaries are
// small (tens of vertices), so the quadratic scan is deliberate; see the
// package notes on complexity.
func checkSimple(pts []Point) error {
	n := len(pts)
	for i := 0; i < n; i++ {
		a1, a2 := pts[i], pts[(i+1)%n]
		for j := i + 1; j < n; j++ {
			// Skip the edge itself and the two edges sharing a vertex with it.
			if j == i || (j+1)%n == i || (i+1)%n == j {
				continue
			}
			b1, b2 := pts[j], pts[(j+1)%n]
			if segmentsCross(a1, a2, b1, b2) {
				return fmt.Errorf("%w: edges %d and %d", ErrSelfIntersecting, i, j)
			}
		}
	}

	return nil
}

// orient returns the sign of the cross product (b-a)×(c-a): +1 for a left
// turn, -1 for a right turn, 0 for collinear points.
func orient(a, b, c Point) int {
	v := (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// onSegment reports whether c, known collinear with a-b, lies on the closed
// segment a-b.
func onSegment(a, b, c Point) bool {
	return min(a.X, b.X) <= c.X && c.X <= max(a.X, b.X) &&
		min(a.Y, b.Y) <= c.Y && c.Y <= max(a.Y, b.Y)
}

// segmentsCross reports whether closed segments a1-a2 and b1-b2 intersect.
func segmentsCross(a1, a2, b1, b2 Point) bool {
	o1 := orient(a1, a2, b1)
	o2 := orient(a1, a2, b2)
	o3 := orient(b1, b2, a1)
	o4 := orient(b1, b2, a2)

	if o1 != o2 && o3 != o4 {
		return true
	}
	// Collinear overlap cases.
	if o1 == 0 && onSegment(a1, a2, b1) {
		return true
	}
	if o2 == 0 && onSegment(a1, a2, b2) {
		return true
	}
	if o3 == 0 && onSegment(b1, b2, a1) {
		return true
	}
	if o4 == 0 && onSegment(b1, b2, a2) {
		return true
	}

	return false
}
