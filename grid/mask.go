// SPDX-License-Identifier: MIT

package grid

import "github.com/ctessum/geom"

// MaskPolygon marks every rho cell whose center lies inside p (or exactly on
// its edge) as land. The polygon is given in solve coordinates. Masking is
// subtract-only: repeated calls accumulate land, and only Generate resets
// the mask back to all water.
func (g *Grid) MaskPolygon(p geom.Polygon) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state != Solved {
		return ErrNotSolved
	}

	for i := range g.mask {
		for j := range g.mask[i] {
			if g.mask[i][j] == 0 {
				continue
			}
			pt := geom.Point{X: g.xRho[i][j], Y: g.yRho[i][j]}
			if pt.Within(p) != geom.Outside {
				g.mask[i][j] = 0
			}
		}
	}

	return nil
}
