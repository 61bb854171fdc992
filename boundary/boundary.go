// SPDX-License-Identifier: MIT

package boundary

import (
	"fmt"
	"math"
)

// New validates points as a simple closed polygon with corner classification
// and returns an immutable Model. The polygon is given as a ring of distinct
// vertices; a trailing vertex equal to the first is tolerated and dropped
// (the common GIS closure convention). ulIdx names the vertex that anchors
// logical index assignment around the perimeter.
//
// Validation order: vertex count and beta values, beta sum, ulIdx range,
// degeneracy (duplicates, zero area), then the optional self-intersection
// scan (see WithSimplePolyCheck).
func New(points []Point, ulIdx int, opts ...Option) (*Model, error) {
	cfg := config{checkSimplePoly: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	pts := make([]Point, len(points))
	copy(pts, points)
	if n := len(pts); n > 1 && pts[0].X == pts[n-1].X && pts[0].Y == pts[n-1].Y {
		pts = pts[:n-1]
	}

	if len(pts) < 4 {
		return nil, fmt.Errorf("%w: got %d points", ErrTooFewPoints, len(pts))
	}

	betaSum, convex := 0, 0
	for i, p := range pts {
		if p.Beta < Reentrant || p.Beta > Convex {
			return nil, fmt.Errorf("%w: beta[%d]=%d", ErrBadBeta, i, p.Beta)
		}
		betaSum += p.Beta
		if p.Beta == Convex {
			convex++
		}
	}
	if betaSum != 4 {
		return nil, fmt.Errorf("%w: got %d", ErrBetaSum, betaSum)
	}
	if convex < 4 {
		return nil, fmt.Errorf("%w: got %d convex corners", ErrTooFewPoints, convex)
	}
	if ulIdx < 0 || ulIdx >= len(pts) {
		return nil, fmt.Errorf("%w: ul_idx=%d with %d points", ErrIndexRange, ulIdx, len(pts))
	}

	for i := range pts {
		j := (i + 1) % len(pts)
		if pts[i].X == pts[j].X && pts[i].Y == pts[j].Y {
			return nil, fmt.Errorf("%w: duplicate vertices %d and %d", ErrDegenerate, i, j)
		}
	}

	area := signedArea(pts)
	if area == 0 {
		return nil, fmt.Errorf("%w: zero area", ErrDegenerate)
	}

	if cfg.checkSimplePoly {
		if err := checkSimple(pts); err != nil {
			return nil, err
		}
	}

	return &Model{points: pts, ulIdx: ulIdx, area: area}, nil
}

// Points returns a copy of the boundary vertices.
func (m *Model) Points() []Point {
	out := make([]Point, len(m.points))
	copy(out, m.points)

	return out
}

// Len returns the number of boundary vertices.
func (m *Model) Len() int { return len(m.points) }

// ULIndex returns the index of the vertex anchoring logical index (0,0).
func (m *Model) ULIndex() int { return m.ulIdx }

// X returns the vertex x coordinates in ring order.
func (m *Model) X() []float64 {
	out := make([]float64, len(m.points))
	for i, p := range m.points {
		out[i] = p.X
	}

	return out
}

// Y returns the vertex y coordinates in ring order.
func (m *Model) Y() []float64 {
	out := make([]float64, len(m.points))
	for i, p := range m.points {
		out[i] = p.Y
	}

	return out
}

// Beta returns the corner classifications in ring order.
func (m *Model) Beta() []int {
	out := make([]int, len(m.points))
	for i, p := range m.points {
		out[i] = p.Beta
	}

	return out
}

// NumCorners returns the number of classified corners (beta ≠ 0).
func (m *Model) NumCorners() int {
	n := 0
	for _, p := range m.points {
		if p.Beta != Straight {
			n++
		}
	}

	return n
}

// Area returns the signed polygon area: positive for counterclockwise rings.
func (m *Model) Area() float64 { return m.area }

// IsCCW reports whether the ring is counterclockwise.
func (m *Model) IsCCW() bool { return m.area > 0 }

// Project applies t to every vertex and returns a new Model in the target
// coordinate space. Betas, ul index and validation status carry over; only
// coordinates change. A nil transform returns the receiver unchanged.
func (m *Model) Project(t Transform) (*Model, error) {
	if t == nil {
		return m, nil
	}
	pts := make([]Point, len(m.points))
	for i, p := range m.points {
		x, y, err := t(p.X, p.Y)
		if err != nil {
			return nil, fmt.Errorf("%w: vertex %d: %v", ErrProjection, i, err)
		}
		pts[i] = Point{X: x, Y: y, Beta: p.Beta}
	}

	return &Model{points: pts, ulIdx: m.ulIdx, area: signedArea(pts)}, nil
}

// PerimeterSegments subdivides every boundary edge into nppe equal
// sub-segments and returns the densified ring. Original vertices keep their
// betas; inserted points are Straight. The ring starts at vertex 0 and the
// closing vertex is not repeated.
func (m *Model) PerimeterSegments(nppe int) ([]Point, error) {
	if nppe < 1 {
		return nil, fmt.Errorf("%w: nppe=%d", ErrBadNPPE, nppe)
	}
	out := make([]Point, 0, len(m.points)*nppe)
	for i, p := range m.points {
		q := m.points[(i+1)%len(m.points)]
		out = append(out, p)
		for k := 1; k < nppe; k++ {
			t := float64(k) / float64(nppe)
			out = append(out, Point{
				X:    p.X + t*(q.X-p.X),
				Y:    p.Y + t*(q.Y-p.Y),
				Beta: Straight,
			})
		}
	}

	return out, nil
}

// Perimeter returns the total edge length of the ring.
func (m *Model) Perimeter() float64 {
	total := 0.0
	for i, p := range m.points {
		q := m.points[(i+1)%len(m.points)]
		total += math.Hypot(q.X-p.X, q.Y-p.Y)
	}

	return total
}

// signedArea computes the shoelace area of the ring: positive when the ring
// winds counterclockwise.
func signedArea(pts []Point) float64 {
	sum := 0.0
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		sum += p.X*q.Y - q.X*p.Y
	}

	return sum / 2
}
