// Package boundary models the closed polygonal boundary that a curvilinear
// grid must fit, together with its per-vertex corner classification.
//
// What:
//
//   - Point carries physical coordinates (X, Y) and a Beta corner class:
//     +1 convex corner, -1 reentrant corner, 0 straight perimeter point.
//   - Model validates and stores a simple closed polygon whose betas sum to
//     exactly 4 (one full turn of a simply-connected region), plus the index
//     of the vertex that anchors logical index (0,0) during solving.
//   - Project applies an external coordinate transform (e.g. longlat→UTM)
//     to every vertex, producing the boundary the solver actually sees.
//   - PerimeterSegments subdivides every edge for the solver's
//     boundary-interpolation step.
//
// Why:
//
//   - Ocean-model grids: the coastline polygon is the single source of truth;
//     a malformed one must fail loudly before any solve is attempted.
//   - Determinism: validation, orientation and discretization are pure
//     functions of the input, with no hidden state.
//
// Complexity:
//
//   - New (validation):   O(n²) time for the self-intersection scan, O(n) memory.
//   - Project:            O(n).
//   - PerimeterSegments:  O(n·nppe).
//
// Errors:
//
//   - ErrTooFewPoints: fewer than 4 vertices, or fewer than 4 convex corners.
//   - ErrBetaSum: corner classifications do not sum to 4.
//   - ErrSelfIntersecting: two non-adjacent edges cross.
//   - ErrDegenerate: zero-area boundary or consecutive duplicate vertices.
//   - ErrIndexRange: upper-left anchor index outside the vertex range.
package boundary
