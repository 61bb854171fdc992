// SPDX-License-Identifier: MIT

package focus

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for focus construction. Matched via errors.Is.
var (
	// ErrInvalidAxis indicates an axis other than Row or Col.
	ErrInvalidAxis = errors.New("focus: axis must be Row or Col")

	// ErrInvalidRange indicates a location outside [0,1] or a non-positive
	// factor or extent.
	ErrInvalidRange = errors.New("focus: parameter out of range")
)

// Axis selects the logical grid axis a focus point acts on.
type Axis int

const (
	// Row focuses along the first logical dimension (ny).
	Row Axis = iota
	// Col focuses along the second logical dimension (nx).
	Col
)

// String returns the axis name.
func (a Axis) String() string {
	switch a {
	case Row:
		return "row"
	case Col:
		return "col"
	default:
		return fmt.Sprintf("axis(%d)", int(a))
	}
}

// quadSteps is the fixed quadrature resolution used to evaluate a remap.
// Fixed so that identical focus definitions always produce identical maps.
const quadSteps = 1024

// FocusPoint concentrates resolution near Location on Axis. Factor > 1
// compresses spacing near the location; Factor < 1 expands it. Extent is the
// influence half-width in normalized coordinates.
type FocusPoint struct {
	Location float64
	Axis     Axis
	Factor   float64
	Extent   float64
}

// Focus is an ordered, appendable collection of focus points. The zero value
// is ready to use and acts as the identity map.
type Focus struct {
	points []FocusPoint
}

// New returns an empty Focus.
func New() *Focus { return &Focus{} }

// Add appends a focus point after validating its parameters.
func (f *Focus) Add(location float64, axis Axis, factor, extent float64) error {
	if axis != Row && axis != Col {
		return fmt.Errorf("%w: got %d", ErrInvalidAxis, int(axis))
	}
	if location < 0 || location > 1 {
		return fmt.Errorf("%w: location=%g", ErrInvalidRange, location)
	}
	if factor <= 0 {
		return fmt.Errorf("%w: factor=%g", ErrInvalidRange, factor)
	}
	if extent <= 0 {
		return fmt.Errorf("%w: extent=%g", ErrInvalidRange, extent)
	}
	f.points = append(f.points, FocusPoint{
		Location: location,
		Axis:     axis,
		Factor:   factor,
		Extent:   extent,
	})

	return nil
}

// Len returns the number of registered focus points.
func (f *Focus) Len() int {
	if f == nil {
		return 0
	}

	return len(f.points)
}

// Points returns a copy of the registered focus points in order.
func (f *Focus) Points() []FocusPoint {
	if f == nil {
		return nil
	}
	out := make([]FocusPoint, len(f.points))
	copy(out, f.points)

	return out
}

// Apply remaps fractional positions in [0,1] along the given axis. The remap
// is strictly monotone with endpoints pinned at 0 and 1. Focus points on
// other axes are ignored; points on the axis compose in registration order.
// A nil or empty Focus returns the input unchanged (copied).
func (f *Focus) Apply(axis Axis, fracs []float64) []float64 {
	out := make([]float64, len(fracs))
	copy(out, fracs)
	if f == nil {
		return out
	}
	for _, fp := range f.points {
		if fp.Axis != axis {
			continue
		}
		remapInPlace(out, fp)
	}

	return out
}

// remapInPlace applies one focus point's warp to every fraction.
//
// The warp is t ↦ ∫₀ᵗ w(s)⁻¹ ds / ∫₀¹ w(s)⁻¹ ds with spacing weight
// w(s) = Factor^exp(-((s-Location)/Extent)²). Factor > 1 makes the
// integrand small near the location, flattening the map there and pulling
// node images together, i.e. finer physical spacing. The cumulative integral is
// evaluated by the trapezoid rule on quadSteps fixed intervals and sampled
// by linear interpolation; the integrand is strictly positive, so the map
// is strictly increasing.
func remapInPlace(fracs []float64, fp FocusPoint) {
	cum := make([]float64, quadSteps+1)
	prev := invWeight(0, fp)
	for k := 1; k <= quadSteps; k++ {
		s := float64(k) / quadSteps
		cur := invWeight(s, fp)
		cum[k] = cum[k-1] + (prev+cur)/(2*quadSteps)
		prev = cur
	}
	total := cum[quadSteps]

	for i, t := range fracs {
		switch {
		case t <= 0:
			fracs[i] = 0
		case t >= 1:
			fracs[i] = 1
		default:
			pos := t * quadSteps
			k := int(pos)
			if k >= quadSteps {
				k = quadSteps - 1
			}
			frac := pos - float64(k)
			fracs[i] = (cum[k] + frac*(cum[k+1]-cum[k])) / total
		}
	}
}

// invWeight is the reciprocal spacing weight 1/w(s) for one focus point.
func invWeight(s float64, fp FocusPoint) float64 {
	d := (s - fp.Location) / fp.Extent

	return math.Pow(fp.Factor, -math.Exp(-d*d))
}
