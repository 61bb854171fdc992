// SPDX-License-Identifier: MIT

// Package solver: shapes, tunables and result types for the elliptic engine.
package solver

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// Defaults — single source of truth for the solver configuration table.
const (
	// DefaultPrecision is the convergence threshold on the largest per-node
	// coordinate move within one sweep.
	DefaultPrecision = 1e-12

	// DefaultSweepFactor scales the automatic sweep budget: when
	// Tunables.MaxSweeps is unset the budget starts from
	// DefaultSweepFactor × max(ny, nx), widened for boundaries with
	// reentrant corners and for the under-relaxed (non-Newton) mode.
	DefaultSweepFactor = 14

	// DefaultNPPE is the number of sub-segments per boundary edge used when
	// discretizing the perimeter.
	DefaultNPPE = 3
)

// Shape holds the logical dimensions of the primary node array.
type Shape struct {
	NY int `json:"ny" yaml:"ny"`
	NX int `json:"nx" yaml:"nx"`
}

// Validate checks both dimensions are at least 2.
func (s Shape) Validate() error {
	if s.NY < 2 || s.NX < 2 {
		return fmt.Errorf("%w: got (%d, %d)", ErrShapeTooSmall, s.NY, s.NX)
	}

	return nil
}

// Tunables configures one solve.
//
//   - Precision        — convergence threshold on the max per-node move.
//   - MaxSweeps        — iteration budget; ≤ 0 selects the automatic budget
//     (see DefaultSweepFactor).
//   - NPPE             — boundary sub-segments per edge for perimeter
//     interpolation.
//   - Newton           — refresh metric coefficients at every node (second
//     order) instead of freezing them per sweep (first-order relaxation).
//   - Thin             — run the untangling pull that keeps interior nodes of
//     thin or degenerate regions from crossing.
//   - CheckSimplePoly  — record of whether the boundary simplicity scan was
//     requested; carried for spec round-trips, the scan itself runs at
//     boundary construction.
//   - Verbose          — log sweep progress at debug level.
//   - Logger           — destination for verbose output; nil with Verbose
//     set falls back to the process-default logger.
type Tunables struct {
	Precision       float64 `json:"precision" yaml:"precision"`
	MaxSweeps       int     `json:"max_sweeps" yaml:"max_sweeps"`
	NPPE            int     `json:"nppe" yaml:"nppe"`
	Newton          bool    `json:"newton" yaml:"newton"`
	Thin            bool    `json:"thin" yaml:"thin"`
	CheckSimplePoly bool    `json:"check_simple_poly" yaml:"check_simple_poly"`
	Verbose         bool    `json:"verbose" yaml:"verbose"`

	Logger *log.Logger `json:"-" yaml:"-"`
}

// DefaultTunables returns the reference configuration: precision 1e-12,
// automatic sweep budget, nppe 3, Newton on, thin handling on, simplicity
// check on, quiet.
func DefaultTunables() Tunables {
	return Tunables{
		Precision:       DefaultPrecision,
		MaxSweeps:       0,
		NPPE:            DefaultNPPE,
		Newton:          true,
		Thin:            true,
		CheckSimplePoly: true,
		Verbose:         false,
	}
}

// Result carries the solved primary arrays and the convergence report.
// X and Y are ny × nx; Converged is false when the sweep budget ran out
// above Precision (the arrays are still the best effort and usable).
type Result struct {
	X, Y      [][]float64
	Converged bool
	Sweeps    int
	MaxResid  float64
}
