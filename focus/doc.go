// Package focus provides 1-D stretching transforms that concentrate or
// spread curvilinear-grid resolution near chosen locations along a logical
// axis.
//
// What:
//
//   - FocusPoint names a location in [0,1] on a logical axis (Row or Col),
//     an intensity Factor and an influence half-width Extent.
//   - Focus is an ordered collection of focus points. Applying it remaps
//     uniform fractional positions into non-uniform ones: Factor > 1 pulls
//     nodes toward the location (finer spacing there), Factor < 1 pushes
//     them away.
//   - Multiple points on one axis compose by repeated application in
//     registration order; an empty Focus is the identity map.
//
// Why:
//
//   - Estuary and channel models need fine resolution near a feature without
//     paying for it across the whole domain.
//   - Focusing is purely logical: it changes node spacing, never node
//     counts, and boundary corners stay pinned at 0 and 1.
//
// Guarantees:
//
//   - Each remap is strictly monotone with endpoints fixed at 0 and 1, so
//     focused coordinates remain a valid parametrization.
//   - Deterministic: the remap is evaluated on a fixed quadrature grid.
//
// Complexity: Apply is O(p·(q + n)) for p focus points on the axis, a fixed
// quadrature resolution q, and n input fractions.
//
// Errors:
//
//   - ErrInvalidAxis: axis is neither Row nor Col.
//   - ErrInvalidRange: location outside [0,1], or factor/extent ≤ 0.
package focus
