// Package solver maps a logical rectangular index space onto a physical
// region bounded by a corner-classified polygon, producing the primary node
// arrays of a boundary-fitted curvilinear grid.
//
// What:
//
//   - Solve walks the boundary ring (counterclockwise-normalized, rotated to
//     the upper-left anchor), assigns the four logical rectangle corners by
//     running beta sum, and places perimeter nodes along each side by arc
//     length, warped by the focus transforms.
//   - The interior is initialized by transfinite (Coons) interpolation and
//     relaxed with Winslow elliptic sweeps in fixed row-major order. The
//     Newton tunable refreshes the metric coefficients at every node; the
//     first-order mode freezes them per sweep.
//   - Iteration stops when the largest per-node move falls below Precision
//     or the sweep budget runs out; exhaustion is reported on the Result,
//     never silently accepted.
//
// Why:
//
//   - Ocean/atmosphere models need smooth, nearly orthogonal interior node
//     distributions that interpolate the coastline exactly.
//   - The elliptic operator αx_ξξ − 2βx_ξη + γx_ηη drives the cross metric
//     β toward zero, which is exactly the orthogonality objective.
//
// Determinism:
//
//   - Fixed sweep order, fixed quadrature, no goroutines inside one solve.
//     Identical inputs give bit-identical arrays. Independent solves may run
//     concurrently; a Result is never shared with the solver afterwards.
//
// Cancellation: the context is checked between sweeps (convergence is only
// decided between sweeps, so sub-sweep preemption buys nothing).
//
// Complexity: O(sweeps · ny · nx) time, O(ny · nx) memory.
//
// Errors:
//
//   - ErrShapeTooSmall: ny or nx below 2.
//   - ErrNilBoundary: no boundary model supplied.
//   - ErrFoldedCell: a cell with non-positive area survived the solve.
//   - ErrDegenerateBoundary: the ring cannot seed a rectangle mapping.
//
// Non-convergence is NOT an error: Result.Converged reports it and the
// best-effort arrays are returned, matching common grid-generation practice.
package solver
