// SPDX-License-Identifier: MIT

package boundary

import (
	"fmt"

	"github.com/ctessum/geom/proj"
)

// LongLat is the proj4 definition of unprojected geographic coordinates.
const LongLat = "+proj=longlat"

// ProjTransform builds a Transform between two spatial reference systems
// given as proj4 strings (for example LongLat and
// "+proj=utm +zone=10 +ellps=WGS84"). The returned pair converts forward
// (src→dst) and inverse (dst→src); either may be applied with Model.Project.
func ProjTransform(src, dst string) (forward, inverse Transform, err error) {
	srcSR, err := proj.Parse(src)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: parse %q: %v", ErrProjection, src, err)
	}
	dstSR, err := proj.Parse(dst)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: parse %q: %v", ErrProjection, dst, err)
	}
	fwd, err := srcSR.NewTransform(dstSR)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrProjection, err)
	}
	inv, err := dstSR.NewTransform(srcSR)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrProjection, err)
	}

	return Transform(fwd), Transform(inv), nil
}
