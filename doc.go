// Package gridgen generates two-dimensional, boundary-fitted, approximately
// orthogonal curvilinear grids from closed polygonal boundaries — the kind of
// mesh consumed by ocean and atmosphere finite-difference models.
//
// 🚀 What is gridgen?
//
//	A deterministic, pure-Go grid-generation toolkit that brings together:
//		• Boundary modeling: corner-classified polygons, validation, projections
//		• Focusing: 1-D stretching transforms that concentrate resolution
//		• Elliptic solving: Winslow relaxation with an optional Newton-style step
//		• Staggering: the full Arakawa C-grid family (psi, rho, u, v)
//		• Diagnostics: per-cell orthogonality, land/water masking, basin detection
//		• Round-trip specs: regenerate an identical grid from a JSON/YAML document
//
// ✨ Why choose gridgen?
//
//   - Reproducible – identical inputs give bit-identical grids, every time
//   - Honest failure modes – folded cells and degenerate boundaries are errors,
//     slow convergence is data
//   - Extensible – the solver sits behind a small contract; swap the numerics,
//     keep the grid
//
// Everything is organized under five subpackages:
//
//	boundary/ — polygon model, beta corner classification, projections
//	focus/    — axis-wise resolution focusing
//	solver/   — the elliptic engine mapping logical (i,j) to physical (x,y)
//	grid/     — grid handle: staggered arrays, masking, orthogonality, specs
//	csa/      — scattered-data cubic approximation for regridding point data
//
// Quick ASCII picture of one grid cell and its staggered points:
//
//	psi───u───psi
//	 │         │
//	 v   rho   v
//	 │         │
//	psi───u───psi
//
// Dive into README.md and the package examples for end-to-end walkthroughs.
//
//	go get github.com/katalvlaran/gridgen
package gridgen
