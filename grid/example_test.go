package grid_test

import (
	"fmt"

	"github.com/ctessum/geom"

	"github.com/katalvlaran/gridgen/boundary"
	"github.com/katalvlaran/gridgen/grid"
	"github.com/katalvlaran/gridgen/solver"
)

// ExampleNew generates a grid over the unit square, carves an island out of
// the water mask and reports the remaining wet cells.
func ExampleNew() {
	b, err := boundary.New([]boundary.Point{
		{X: 0, Y: 0, Beta: 1},
		{X: 1, Y: 0, Beta: 1},
		{X: 1, Y: 1, Beta: 1},
		{X: 0, Y: 1, Beta: 1},
	}, 0)
	if err != nil {
		fmt.Println("boundary:", err)
		return
	}

	g, err := grid.New(b, solver.Shape{NY: 10, NX: 5})
	if err != nil {
		fmt.Println("grid:", err)
		return
	}
	fmt.Println("state:", g.State())
	fmt.Println("converged:", g.Converged())

	island := geom.Polygon{{
		{X: 0.45, Y: 0.45}, {X: 1.01, Y: 0.45},
		{X: 1.01, Y: 1.01}, {X: 0.45, Y: 1.01},
		{X: 0.45, Y: 0.45},
	}}
	if err := g.MaskPolygon(island); err != nil {
		fmt.Println("mask:", err)
		return
	}

	mask, err := g.MaskRho()
	if err != nil {
		fmt.Println("mask:", err)
		return
	}
	wet := 0
	for _, row := range mask {
		for _, v := range row {
			wet += v
		}
	}
	fmt.Printf("rho cells: %d×%d, wet: %d\n", len(mask), len(mask[0]), wet)

	// Output:
	// state: solved
	// converged: true
	// rho cells: 9×4, wet: 26
}
