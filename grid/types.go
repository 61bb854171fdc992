// SPDX-License-Identifier: MIT

// Package grid: states, connectivity, and construction options.
package grid

import (
	"github.com/charmbracelet/log"

	"github.com/katalvlaran/gridgen/focus"
	"github.com/katalvlaran/gridgen/solver"
)

// State is the lifecycle phase of a Grid.
type State int

const (
	// Configured means inputs are set but no current solution exists.
	Configured State = iota
	// Solving means a Generate call is in flight.
	Solving
	// Solved means the derived arrays reflect the current inputs.
	Solved
	// Failed means the last Generate returned an error.
	Failed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Configured:
		return "configured"
	case Solving:
		return "solving"
	case Solved:
		return "solved"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Connectivity selects neighbor adjacency for water-region analysis:
// orthogonal only (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

type config struct {
	foc          *focus.Focus
	tun          solver.Tunables
	proj         string
	autoGenerate bool
	logger       *log.Logger
}

// Option configures Grid construction.
type Option func(*config)

// WithFocus attaches a focus field that warps node spacing along either
// logical axis. Nil detaches.
func WithFocus(f *focus.Focus) Option {
	return func(c *config) { c.foc = f }
}

// WithTunables replaces the default solver configuration.
func WithTunables(t solver.Tunables) Option {
	return func(c *config) { c.tun = t }
}

// WithProjection solves in the projected plane named by a proj4 string (for
// example "+proj=utm +zone=10 +ellps=WGS84"). The boundary is taken as
// geographic longitude/latitude and projected before solving; all node
// arrays and XBry/YBry come out in projected coordinates.
func WithProjection(proj4 string) Option {
	return func(c *config) { c.proj = proj4 }
}

// WithAutoGenerate controls whether New solves immediately (the default) or
// leaves the grid Configured until an explicit Generate call.
func WithAutoGenerate(on bool) Option {
	return func(c *config) { c.autoGenerate = on }
}

// WithLogger routes verbose solver output to lg. Tunables.Verbose still
// gates whether anything is emitted.
func WithLogger(lg *log.Logger) Option {
	return func(c *config) { c.logger = lg }
}
