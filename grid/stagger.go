// SPDX-License-Identifier: MIT

package grid

// Staggered-array derivation for the Arakawa C-grid. All four point sets are
// pure functions of the primary node arrays and are recomputed together
// after every solve:
//
//	psi (ny-2, nx-2) — interior vertices (streamfunction points)
//	rho (ny-1, nx-1) — cell centers (tracer points)
//	u   (ny-1, nx-2) — midpoints of row-adjacent rho pairs
//	v   (ny-2, nx-1) — midpoints of column-adjacent rho pairs

// derivePsi extracts the interior vertices of a primary node array.
func derivePsi(a [][]float64) [][]float64 {
	ny, nx := len(a), len(a[0])
	out := make([][]float64, ny-2)
	for i := range out {
		out[i] = make([]float64, nx-2)
		for j := range out[i] {
			out[i][j] = a[i+1][j+1]
		}
	}

	return out
}

// deriveRho averages each cell's four corner nodes.
func deriveRho(a [][]float64) [][]float64 {
	ny, nx := len(a), len(a[0])
	out := make([][]float64, ny-1)
	for i := range out {
		out[i] = make([]float64, nx-1)
		for j := range out[i] {
			out[i][j] = (a[i][j] + a[i][j+1] + a[i+1][j] + a[i+1][j+1]) / 4
		}
	}

	return out
}

// deriveU averages row-adjacent rho points onto the u faces.
func deriveU(rho [][]float64) [][]float64 {
	ny, nx := len(rho), len(rho[0])
	out := make([][]float64, ny)
	for i := range out {
		out[i] = make([]float64, nx-1)
		for j := range out[i] {
			out[i][j] = (rho[i][j] + rho[i][j+1]) / 2
		}
	}

	return out
}

// deriveV averages column-adjacent rho points onto the v faces.
func deriveV(rho [][]float64) [][]float64 {
	ny, nx := len(rho), len(rho[0])
	out := make([][]float64, ny-1)
	for i := range out {
		out[i] = make([]float64, nx)
		for j := range out[i] {
			out[i][j] = (rho[i][j] + rho[i+1][j]) / 2
		}
	}

	return out
}
