// Package grid is the user-facing handle of the generator: it owns the
// boundary, shape, focus and tunables, runs the elliptic solver, and derives
// every secondary product of a staggered Arakawa C-grid.
//
// What:
//
//   - Grid binds one boundary to one logical shape and produces the primary
//     node arrays plus the staggered psi/rho/u/v arrays, the orthogonality
//     field, and the land/water mask on rho cells.
//   - A small state machine (Configured → Solving → Solved | Failed) keeps
//     reconfiguration and solving honest: setters are rejected mid-solve,
//     array accessors are rejected before a successful solve.
//   - MaskPolygon carves land out of the water mask with point-in-polygon
//     tests on the rho cell centers; WaterRegions reports the connected
//     basins that remain.
//   - ToSpec/FromSpec round-trip the generating inputs (never the derived
//     arrays) through JSON or YAML, so a grid is reproducible from a small
//     human-diffable document.
//
// Why:
//
//   - Ocean models consume the staggered arrays, not the raw nodes; deriving
//     them together, atomically, after each solve keeps them consistent.
//   - Masking is subtract-only between solves: once a cell is land it stays
//     land until the next Generate, which resets the mask to all water.
//
// Concurrency: a Grid is safe for concurrent use. One mutex guards the state
// and the derived arrays; the solve itself runs outside the lock so readers
// of an older solution are only briefly blocked, and a concurrent Generate
// or setter observes ErrBusy.
//
// Errors:
//
//   - ErrNilBoundary: no boundary model supplied.
//   - ErrBusy: a Generate is in flight.
//   - ErrNotSolved: derived data requested before a successful solve.
//   - ErrBadSpec: a spec document that cannot be decoded or rebuilt.
package grid
