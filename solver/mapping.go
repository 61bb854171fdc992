// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/gridgen/boundary"
)

// normalizedRing returns the boundary vertices as a counterclockwise ring
// starting at the upper-left anchor vertex. Reversal keeps vertex identities
// (betas travel with their points), so the anchor stays meaningful.
func normalizedRing(b *boundary.Model) []boundary.Point {
	pts := b.Points()
	n := len(pts)
	ul := b.ULIndex()

	if !b.IsCCW() {
		rev := make([]boundary.Point, n)
		for i := range pts {
			rev[i] = pts[(n-i)%n]
		}
		pts = rev
		ul = (n - ul) % n
	}

	ring := make([]boundary.Point, n)
	for i := range pts {
		ring[i] = pts[(ul+i)%n]
	}

	return ring
}

// rectCorners picks the four ring vertices that become the corners of the
// logical rectangle: walking the ring, the running beta sum first reaches
// 1, 2, 3 and 4 at four convex corners (betas step by ±1, so no target can
// be skipped). With exactly four convex corners this degenerates to the
// obvious assignment; with reentrant corners it balances each side's turns.
//
// Corner k (first reach of k+1) maps to logical corner:
//
//	0 → (ny-1, 0)    1 → (0, 0)    2 → (0, nx-1)    3 → (ny-1, nx-1)
//
// so the first side runs up logical column 0, preserving the ring's
// counterclockwise handedness in index space.
func rectCorners(ring []boundary.Point) ([4]int, error) {
	var corners [4]int
	next, cum := 1, 0
	for k, p := range ring {
		cum += p.Beta
		if next <= 4 && cum == next && p.Beta == boundary.Convex {
			corners[next-1] = k
			next++
		}
	}
	if next <= 4 {
		return corners, fmt.Errorf("%w: only %d rectangle corners found", ErrDegenerateBoundary, next-1)
	}

	return corners, nil
}

// reentrantCount returns the number of concave vertices in the ring.
func reentrantCount(ring []boundary.Point) int {
	n := 0
	for _, p := range ring {
		if p.Beta == boundary.Reentrant {
			n++
		}
	}

	return n
}

// sidePath is one discretized side of the logical rectangle: a polyline with
// its normalized cumulative arc length, sampled by linear interpolation.
type sidePath struct {
	x, y []float64
	cum  []float64 // normalized to [0,1], strictly increasing
}

// buildSides cuts the ring into the four corner-delimited polylines and
// densifies each edge with nppe sub-segments for smoother arc-length
// parametrization.
func buildSides(ring []boundary.Point, corners [4]int, nppe int) ([4]sidePath, error) {
	var sides [4]sidePath
	n := len(ring)
	for s := 0; s < 4; s++ {
		from, to := corners[s], corners[(s+1)%4]
		span := to - from
		if span <= 0 {
			span += n
		}

		var xs, ys []float64
		for e := 0; e < span; e++ {
			p := ring[(from+e)%n]
			q := ring[(from+e+1)%n]
			for k := 0; k < nppe; k++ {
				t := float64(k) / float64(nppe)
				xs = append(xs, p.X+t*(q.X-p.X))
				ys = append(ys, p.Y+t*(q.Y-p.Y))
			}
		}
		last := ring[to]
		xs = append(xs, last.X)
		ys = append(ys, last.Y)

		cum := make([]float64, len(xs))
		for i := 1; i < len(xs); i++ {
			cum[i] = cum[i-1] + math.Hypot(xs[i]-xs[i-1], ys[i]-ys[i-1])
		}
		total := cum[len(cum)-1]
		if total <= 0 {
			return sides, fmt.Errorf("%w: side %d has zero length", ErrDegenerateBoundary, s)
		}
		floats.Scale(1/total, cum)
		cum[len(cum)-1] = 1

		sides[s] = sidePath{x: xs, y: ys, cum: cum}
	}

	return sides, nil
}

// sample returns the point at normalized arc position a in [0,1].
func (sp *sidePath) sample(a float64) (float64, float64) {
	switch {
	case a <= 0:
		return sp.x[0], sp.y[0]
	case a >= 1:
		return sp.x[len(sp.x)-1], sp.y[len(sp.y)-1]
	}
	k := sort.SearchFloat64s(sp.cum, a)
	// cum[k-1] < a <= cum[k] with 1 <= k <= len-1.
	t := (a - sp.cum[k-1]) / (sp.cum[k] - sp.cum[k-1])

	return sp.x[k-1] + t*(sp.x[k]-sp.x[k-1]), sp.y[k-1] + t*(sp.y[k]-sp.y[k-1])
}

// uniformFracs returns n evenly spaced fractions over [0,1].
func uniformFracs(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i) / float64(n-1)
	}
	out[n-1] = 1

	return out
}

// fillPerimeter writes boundary-interpolated node positions onto the borders
// of X and Y. fRow and fCol are the focused row/column fractions. Side s
// covers:
//
//	0: logical column 0, rows ny-1→0      2: column nx-1, rows 0→ny-1
//	1: logical row 0, cols 0→nx-1         3: row ny-1, cols nx-1→0
//
// Corner nodes are written by both adjacent sides with identical values
// (focus maps pin 0 and 1), so the seams are exact.
func fillPerimeter(x, y [][]float64, sides [4]sidePath, fRow, fCol []float64) {
	ny, nx := len(x), len(x[0])
	for i := 0; i < ny; i++ {
		x[i][0], y[i][0] = sides[0].sample(1 - fRow[i])
		x[i][nx-1], y[i][nx-1] = sides[2].sample(fRow[i])
	}
	for j := 0; j < nx; j++ {
		x[0][j], y[0][j] = sides[1].sample(fCol[j])
		x[ny-1][j], y[ny-1][j] = sides[3].sample(1 - fCol[j])
	}
}

// coonsInit fills the interior with transfinite (Coons patch) interpolation
// of the four solved borders, using the focused fractions as the patch
// parameters.
func coonsInit(x, y [][]float64, fRow, fCol []float64) {
	ny, nx := len(x), len(x[0])
	for i := 1; i < ny-1; i++ {
		v := fRow[i]
		for j := 1; j < nx-1; j++ {
			u := fCol[j]
			x[i][j] = coons(x, u, v, i, j, ny, nx)
			y[i][j] = coons(y, u, v, i, j, ny, nx)
		}
	}
}

func coons(a [][]float64, u, v float64, i, j, ny, nx int) float64 {
	edges := (1-u)*a[i][0] + u*a[i][nx-1] + (1-v)*a[0][j] + v*a[ny-1][j]
	corners := (1-u)*(1-v)*a[0][0] + u*(1-v)*a[0][nx-1] +
		(1-u)*v*a[ny-1][0] + u*v*a[ny-1][nx-1]

	return edges - corners
}
