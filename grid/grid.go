// SPDX-License-Identifier: MIT

package grid

import (
	"context"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/gridgen/boundary"
	"github.com/katalvlaran/gridgen/focus"
	"github.com/katalvlaran/gridgen/solver"
)

// Grid binds one boundary to one logical shape and derives the full
// staggered product set from each solve. Construct with New; the zero value
// is not usable.
type Grid struct {
	mu    sync.Mutex
	state State

	bry    *boundary.Model // as supplied (geographic when proj is set)
	solved *boundary.Model // boundary in solve coordinates
	shape  solver.Shape
	foc    *focus.Focus
	tun    solver.Tunables
	proj   string
	logger *log.Logger

	// Derived products, valid only in state Solved.
	x, y       [][]float64
	xPsi, yPsi [][]float64
	xRho, yRho [][]float64
	xU, yU     [][]float64
	xV, yV     [][]float64
	ortho      [][]float64
	mask       [][]int
	converged  bool
}

// New builds a Grid over b with the given logical shape. Unless disabled
// with WithAutoGenerate(false), it solves immediately (under
// context.Background()) and returns any solve error; pass a cancellable
// context to an explicit Generate call when that matters.
func New(b *boundary.Model, shape solver.Shape, opts ...Option) (*Grid, error) {
	if b == nil {
		return nil, ErrNilBoundary
	}
	if err := shape.Validate(); err != nil {
		return nil, err
	}

	cfg := config{tun: solver.DefaultTunables(), autoGenerate: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Grid{
		state:  Configured,
		bry:    b,
		shape:  shape,
		foc:    cfg.foc,
		tun:    cfg.tun,
		proj:   cfg.proj,
		logger: cfg.logger,
	}
	if cfg.autoGenerate {
		if err := g.Generate(context.Background()); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Generate runs the solver on the current inputs and atomically replaces
// every derived array: primary nodes, psi/rho/u/v, orthogonality, and the
// mask (reset to all water). For fixed inputs repeated calls reproduce the
// same arrays. Returns ErrBusy if another Generate is in flight.
func (g *Grid) Generate(ctx context.Context) error {
	g.mu.Lock()
	if g.state == Solving {
		g.mu.Unlock()
		return ErrBusy
	}
	g.state = Solving
	bry, shape, foc, tun, projStr := g.bry, g.shape, g.foc, g.tun, g.proj
	if g.logger != nil {
		tun.Logger = g.logger
	}
	g.mu.Unlock()

	solvedBry, res, err := solveOnce(ctx, bry, shape, foc, tun, projStr)

	g.mu.Lock()
	defer g.mu.Unlock()
	if err != nil {
		g.state = Failed
		return err
	}

	g.solved = solvedBry
	g.x, g.y = res.X, res.Y
	g.xPsi, g.yPsi = derivePsi(res.X), derivePsi(res.Y)
	g.xRho, g.yRho = deriveRho(res.X), deriveRho(res.Y)
	g.xU, g.yU = deriveU(g.xRho), deriveU(g.yRho)
	g.xV, g.yV = deriveV(g.xRho), deriveV(g.yRho)
	g.ortho = orthogonality(g.xRho, g.yRho)
	g.mask = allWater(shape.NY-1, shape.NX-1)
	g.converged = res.Converged
	g.state = Solved

	return nil
}

// solveOnce projects the boundary when a proj4 string is set and runs one
// solver pass. Kept outside the lock so readers are not blocked by a solve.
func solveOnce(ctx context.Context, bry *boundary.Model, shape solver.Shape,
	foc *focus.Focus, tun solver.Tunables, projStr string) (*boundary.Model, *solver.Result, error) {
	solvedBry := bry
	if projStr != "" {
		fwd, _, err := boundary.ProjTransform(boundary.LongLat, projStr)
		if err != nil {
			return nil, nil, err
		}
		solvedBry, err = bry.Project(fwd)
		if err != nil {
			return nil, nil, err
		}
	}

	res, err := solver.Solve(ctx, solvedBry, shape, foc, tun)
	if err != nil {
		return nil, nil, fmt.Errorf("grid: solve: %w", err)
	}

	return solvedBry, res, nil
}

// SetFocus replaces the focus field (nil detaches) and drops the grid back
// to Configured; call Generate to solve with the new spacing. Rejected with
// ErrBusy while a solve is in flight.
func (g *Grid) SetFocus(f *focus.Focus) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state == Solving {
		return ErrBusy
	}
	g.foc = f
	g.state = Configured

	return nil
}

// SetShape replaces the logical dimensions and drops the grid back to
// Configured. Rejected with ErrBusy while a solve is in flight.
func (g *Grid) SetShape(shape solver.Shape) error {
	if err := shape.Validate(); err != nil {
		return err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state == Solving {
		return ErrBusy
	}
	g.shape = shape
	g.state = Configured

	return nil
}

// State returns the current lifecycle phase.
func (g *Grid) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.state
}

// Shape returns the configured logical dimensions.
func (g *Grid) Shape() solver.Shape {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.shape
}

// NY returns the number of logical rows.
func (g *Grid) NY() int { return g.Shape().NY }

// NX returns the number of logical columns.
func (g *Grid) NX() int { return g.Shape().NX }

// Boundary returns the boundary model as supplied at construction.
func (g *Grid) Boundary() *boundary.Model { return g.bry }

// Focus returns a copy of the attached focus field, or nil when none is set.
func (g *Grid) Focus() *focus.Focus {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.foc == nil {
		return nil
	}
	out := focus.New()
	for _, fp := range g.foc.Points() {
		// Points were validated on Add; re-adding cannot fail.
		_ = out.Add(fp.Location, fp.Axis, fp.Factor, fp.Extent)
	}

	return out
}

// Converged reports whether the last solve met the precision target. False
// before any solve.
func (g *Grid) Converged() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.state == Solved && g.converged
}

// X returns a copy of the primary node x array, shape (ny, nx).
func (g *Grid) X() ([][]float64, error) { return g.matrix(&g.x) }

// Y returns a copy of the primary node y array, shape (ny, nx).
func (g *Grid) Y() ([][]float64, error) { return g.matrix(&g.y) }

// XPsi returns a copy of the psi-point x array, shape (ny-2, nx-2).
func (g *Grid) XPsi() ([][]float64, error) { return g.matrix(&g.xPsi) }

// YPsi returns a copy of the psi-point y array, shape (ny-2, nx-2).
func (g *Grid) YPsi() ([][]float64, error) { return g.matrix(&g.yPsi) }

// XRho returns a copy of the rho-point x array, shape (ny-1, nx-1).
func (g *Grid) XRho() ([][]float64, error) { return g.matrix(&g.xRho) }

// YRho returns a copy of the rho-point y array, shape (ny-1, nx-1).
func (g *Grid) YRho() ([][]float64, error) { return g.matrix(&g.yRho) }

// XU returns a copy of the u-point x array, shape (ny-1, nx-2).
func (g *Grid) XU() ([][]float64, error) { return g.matrix(&g.xU) }

// YU returns a copy of the u-point y array, shape (ny-1, nx-2).
func (g *Grid) YU() ([][]float64, error) { return g.matrix(&g.yU) }

// XV returns a copy of the v-point x array, shape (ny-2, nx-1).
func (g *Grid) XV() ([][]float64, error) { return g.matrix(&g.xV) }

// YV returns a copy of the v-point y array, shape (ny-2, nx-1).
func (g *Grid) YV() ([][]float64, error) { return g.matrix(&g.yV) }

// Orthogonality returns a copy of the orthogonality-error field, shape
// (ny-2, nx-2): the cosine between the forward-difference tangents at each
// rho point, 0 on a perfectly orthogonal grid.
func (g *Grid) Orthogonality() ([][]float64, error) { return g.matrix(&g.ortho) }

// MaskRho returns a copy of the water mask on rho cells, shape (ny-1, nx-1),
// 1 for water and 0 for land.
func (g *Grid) MaskRho() ([][]int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state != Solved {
		return nil, ErrNotSolved
	}

	return copyMask(g.mask), nil
}

// XBry returns the boundary vertex x coordinates in solve space (projected
// when a projection is configured).
func (g *Grid) XBry() ([]float64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state != Solved {
		return nil, ErrNotSolved
	}

	return g.solved.X(), nil
}

// YBry returns the boundary vertex y coordinates in solve space.
func (g *Grid) YBry() ([]float64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state != Solved {
		return nil, ErrNotSolved
	}

	return g.solved.Y(), nil
}

// matrix hands out a deep copy of one derived array under the state guard.
func (g *Grid) matrix(p *[][]float64) ([][]float64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state != Solved {
		return nil, ErrNotSolved
	}

	return copy2D(*p), nil
}

// copy2D deep-copies a float64 matrix.
func copy2D(a [][]float64) [][]float64 {
	out := make([][]float64, len(a))
	for i, row := range a {
		out[i] = make([]float64, len(row))
		copy(out[i], row)
	}

	return out
}

// copyMask deep-copies an int matrix.
func copyMask(a [][]int) [][]int {
	out := make([][]int, len(a))
	for i, row := range a {
		out[i] = make([]int, len(row))
		copy(out[i], row)
	}

	return out
}

// allWater builds an all-ones mask.
func allWater(ny, nx int) [][]int {
	out := make([][]int, ny)
	for i := range out {
		out[i] = make([]int, nx)
		for j := range out[i] {
			out[i][j] = 1
		}
	}

	return out
}
