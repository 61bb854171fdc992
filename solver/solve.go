// SPDX-License-Identifier: MIT

package solver

import (
	"context"
	"math"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/gridgen/boundary"
	"github.com/katalvlaran/gridgen/focus"
)

// relaxFactor under-relaxes the first-order (non-Newton) update.
const relaxFactor = 0.8

// logEvery throttles verbose sweep logging.
const logEvery = 50

// Solve maps the logical shape.NY × shape.NX index space onto the region
// bounded by b and returns the primary node arrays.
//
// Algorithm outline:
//  1. Normalize the boundary to a counterclockwise ring rotated to the
//     upper-left anchor; pick the four logical rectangle corners by running
//     beta sum.
//  2. Discretize the four corner-delimited sides (NPPE sub-segments per
//     edge) and place perimeter nodes by arc length, warped by f.
//  3. Initialize the interior by transfinite interpolation, then run
//     Winslow sweeps (αx_ξξ − 2βx_ξη + γx_ηη = 0, Gauss–Seidel in row-major
//     order) until the largest node move drops below tun.Precision or the
//     budget is spent. Thin mode pulls any node with a non-positive local
//     Jacobian back to its neighbor centroid after each sweep.
//  4. Reject grids with folded (non-positive-area) cells.
//
// Budget exhaustion is a soft outcome: the Result carries Converged=false
// and the best-effort arrays. Cancellation via ctx is checked between
// sweeps and returns ctx's error.
func Solve(ctx context.Context, b *boundary.Model, shape Shape, f *focus.Focus, tun Tunables) (*Result, error) {
	if b == nil {
		return nil, ErrNilBoundary
	}
	if err := shape.Validate(); err != nil {
		return nil, err
	}

	precision := tun.Precision
	if precision <= 0 {
		precision = DefaultPrecision
	}
	nppe := tun.NPPE
	if nppe < 1 {
		nppe = DefaultNPPE
	}
	ring := normalizedRing(b)
	corners, err := rectCorners(ring)
	if err != nil {
		return nil, err
	}
	sides, err := buildSides(ring, corners, nppe)
	if err != nil {
		return nil, err
	}

	budget := tun.MaxSweeps
	if budget <= 0 {
		budget = autoBudget(shape, ring, tun.Newton)
	}

	ny, nx := shape.NY, shape.NX
	x := alloc(ny, nx)
	y := alloc(ny, nx)
	fRow := f.Apply(focus.Row, uniformFracs(ny))
	fCol := f.Apply(focus.Col, uniformFracs(nx))

	fillPerimeter(x, y, sides, fRow, fCol)
	coonsInit(x, y, fRow, fCol)

	var lg *log.Logger
	if tun.Verbose {
		lg = tun.Logger
		if lg == nil {
			lg = log.Default()
		}
	}

	res := &Result{X: x, Y: y, MaxResid: math.Inf(1)}
	if ny == 2 && nx == 2 {
		// No interior nodes; the perimeter is the whole grid.
		res.Converged = true
		res.MaxResid = 0
	}

	for s := 1; !res.Converged && s <= budget; s++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		move := sweep(x, y, tun.Newton)
		if tun.Thin {
			if m := untangle(x, y); m > move {
				move = m
			}
		}
		res.Sweeps = s
		res.MaxResid = move
		if move < precision {
			res.Converged = true
		}
		if lg != nil && (res.Converged || s%logEvery == 0) {
			lg.Debug("winslow sweep", "sweep", s, "resid", move, "converged", res.Converged)
		}
	}

	if err := checkFolds(x, y); err != nil {
		return nil, err
	}
	if lg != nil && !res.Converged {
		lg.Warn("sweep budget exhausted", "sweeps", res.Sweeps, "resid", res.MaxResid, "precision", precision)
	}

	return res, nil
}

// autoBudget sizes the sweep budget when Tunables.MaxSweeps is unset. The
// base DefaultSweepFactor × max(ny, nx) covers convex boundaries in Newton
// mode; the budget is scaled by 1 + 2R for R reentrant corners, whose
// late-stage contraction is flatter, and by 1/relaxFactor for the slower
// under-relaxed mode.
func autoBudget(shape Shape, ring []boundary.Point, newton bool) int {
	budget := DefaultSweepFactor * max(shape.NY, shape.NX)
	budget *= 1 + 2*reentrantCount(ring)
	if !newton {
		budget = int(math.Ceil(float64(budget) / relaxFactor))
	}

	return budget
}

// alloc returns a zeroed ny × nx array.
func alloc(ny, nx int) [][]float64 {
	out := make([][]float64, ny)
	for i := range out {
		out[i] = make([]float64, nx)
	}

	return out
}

// sweep performs one Gauss–Seidel pass over the interior in row-major order
// and returns the largest coordinate move. With newton set, the metric
// coefficients α, β, γ are refreshed at every node from the freshest values
// and the full implicit update is taken; otherwise the coefficients are
// frozen at sweep start and the update is under-relaxed.
func sweep(x, y [][]float64, newton bool) float64 {
	ny, nx := len(x), len(x[0])

	var fa, fb, fg [][]float64
	if !newton {
		fa, fb, fg = alloc(ny, nx), alloc(ny, nx), alloc(ny, nx)
		for i := 1; i < ny-1; i++ {
			for j := 1; j < nx-1; j++ {
				fa[i][j], fb[i][j], fg[i][j] = metric(x, y, i, j)
			}
		}
	}

	maxMove := 0.0
	for i := 1; i < ny-1; i++ {
		for j := 1; j < nx-1; j++ {
			var alpha, beta, gamma float64
			if newton {
				alpha, beta, gamma = metric(x, y, i, j)
			} else {
				alpha, beta, gamma = fa[i][j], fb[i][j], fg[i][j]
			}
			denom := 2 * (alpha + gamma)
			if denom == 0 {
				continue
			}

			crossX := x[i+1][j+1] - x[i+1][j-1] - x[i-1][j+1] + x[i-1][j-1]
			crossY := y[i+1][j+1] - y[i+1][j-1] - y[i-1][j+1] + y[i-1][j-1]
			newX := (alpha*(x[i][j+1]+x[i][j-1]) + gamma*(x[i+1][j]+x[i-1][j]) - 0.5*beta*crossX) / denom
			newY := (alpha*(y[i][j+1]+y[i][j-1]) + gamma*(y[i+1][j]+y[i-1][j]) - 0.5*beta*crossY) / denom
			if !newton {
				newX = x[i][j] + relaxFactor*(newX-x[i][j])
				newY = y[i][j] + relaxFactor*(newY-y[i][j])
			}

			if d := math.Abs(newX - x[i][j]); d > maxMove {
				maxMove = d
			}
			if d := math.Abs(newY - y[i][j]); d > maxMove {
				maxMove = d
			}
			x[i][j], y[i][j] = newX, newY
		}
	}

	return maxMove
}

// metric evaluates the Winslow coefficients at interior node (i, j) with
// central differences: α from the η tangent, γ from the ξ tangent, β the
// cross metric that vanishes on an orthogonal grid.
func metric(x, y [][]float64, i, j int) (alpha, beta, gamma float64) {
	xXi := (x[i][j+1] - x[i][j-1]) / 2
	yXi := (y[i][j+1] - y[i][j-1]) / 2
	xEta := (x[i+1][j] - x[i-1][j]) / 2
	yEta := (y[i+1][j] - y[i-1][j]) / 2

	alpha = xEta*xEta + yEta*yEta
	gamma = xXi*xXi + yXi*yXi
	beta = xXi*xEta + yXi*yEta

	return alpha, beta, gamma
}

// untangle pulls any interior node touching a non-positive-area cell to the
// centroid of its four neighbors. On healthy grids it is a no-op; in thin or
// degenerate regions it keeps the relaxation from locking in a crossed
// configuration. Returns the largest move it made.
func untangle(x, y [][]float64) float64 {
	ny, nx := len(x), len(x[0])
	maxMove := 0.0
	for i := 1; i < ny-1; i++ {
		for j := 1; j < nx-1; j++ {
			if cellArea(x, y, i-1, j-1) > 0 && cellArea(x, y, i-1, j) > 0 &&
				cellArea(x, y, i, j-1) > 0 && cellArea(x, y, i, j) > 0 {
				continue
			}
			newX := (x[i][j+1] + x[i][j-1] + x[i+1][j] + x[i-1][j]) / 4
			newY := (y[i][j+1] + y[i][j-1] + y[i+1][j] + y[i-1][j]) / 4
			if d := math.Abs(newX - x[i][j]); d > maxMove {
				maxMove = d
			}
			if d := math.Abs(newY - y[i][j]); d > maxMove {
				maxMove = d
			}
			x[i][j], y[i][j] = newX, newY
		}
	}

	return maxMove
}

// cellArea is the signed area of the cell whose top-left node is (i, j),
// positive under the counterclockwise logical orientation. Computed from the
// diagonal cross product.
func cellArea(x, y [][]float64, i, j int) float64 {
	return 0.5 * ((x[i+1][j+1]-x[i][j])*(y[i+1][j]-y[i][j+1]) -
		(x[i+1][j]-x[i][j+1])*(y[i+1][j+1]-y[i][j]))
}

// checkFolds verifies every cell keeps positive signed area under the
// counterclockwise logical orientation. Any non-positive cell means the
// grid self-intersects.
func checkFolds(x, y [][]float64) error {
	ny, nx := len(x), len(x[0])
	for i := 0; i < ny-1; i++ {
		for j := 0; j < nx-1; j++ {
			if cellArea(x, y, i, j) <= 0 {
				return ErrFoldedCell
			}
		}
	}

	return nil
}
