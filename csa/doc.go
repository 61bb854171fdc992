// Package csa approximates scattered 2-D data with local weighted cubic
// least squares, the classic companion of curvilinear grid generation for
// moving bathymetry or tracer fields onto freshly solved node locations.
//
// What:
//
//   - Approximator indexes the input points into a uniform cell grid sized
//     for roughly NPPC points per cell.
//   - Approximate answers each query from a local neighborhood gathered by
//     expanding rings of cells: at least NPMin and at most NPMax points,
//     nearest first.
//   - The neighborhood is fit with a weighted least-squares polynomial
//     (cubic when the neighborhood supports it, falling back to quadratic,
//     linear, then the weighted mean) and evaluated at the query point.
//   - Queries whose neighborhood stays below NPMin come back as NaN; test
//     with IsMasked. Point standard deviations (WithSigma) downweight noisy
//     samples.
//
// Why:
//
//   - Bathymetry soundings are scattered and uneven; a global fit smears
//     detail while nearest-neighbor lookups alias it. Local cubics track
//     curvature and stay cheap.
//   - Determinism: fixed gather order with index tie-breaks, no randomness.
//
// Complexity: New is O(n); each query is O(g + m³) for g gathered candidates
// and m ≤ NPMax fitted points (m³ for the QR factorization, m ≤ 40 by
// default).
//
// Errors:
//
//   - ErrLengthMismatch: input or query slices disagree in length.
//   - ErrInvalidParam: a non-positive or inconsistent tuning parameter.
package csa
