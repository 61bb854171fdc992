// SPDX-License-Identifier: MIT

package grid

import "math"

// orthogonality evaluates the angular error field on the rho array: at each
// rho point the cosine of the angle between the forward-difference tangents
// along the two logical directions. Zero means locally orthogonal; the sign
// distinguishes acute from obtuse cell corners. Output shape is one less
// than rho in both dimensions, (ny-2, nx-2) in primary-node terms.
func orthogonality(xRho, yRho [][]float64) [][]float64 {
	ny, nx := len(xRho), len(xRho[0])
	out := make([][]float64, ny-1)
	for i := range out {
		out[i] = make([]float64, nx-1)
		for j := range out[i] {
			dxXi := xRho[i][j+1] - xRho[i][j]
			dyXi := yRho[i][j+1] - yRho[i][j]
			dxEta := xRho[i+1][j] - xRho[i][j]
			dyEta := yRho[i+1][j] - yRho[i][j]

			n := math.Hypot(dxXi, dyXi) * math.Hypot(dxEta, dyEta)
			if n == 0 {
				continue
			}
			out[i][j] = (dxXi*dxEta + dyXi*dyEta) / n
		}
	}

	return out
}
