package grid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridgen/grid"
	"github.com/katalvlaran/gridgen/solver"
)

func TestWaterRegions_SingleBasin(t *testing.T) {
	g, err := grid.New(square(t), solver.Shape{NY: 10, NX: 5})
	require.NoError(t, err)

	regions, err := g.WaterRegions(grid.Conn4)
	require.NoError(t, err)
	require.Len(t, regions, 1)
	require.Len(t, regions[0], 36, "all rho cells belong to the one basin")
}

func TestWaterRegions_SplitBasins(t *testing.T) {
	// Mask cells (4,0..2), (3,3) and (5,3) of the 9×4 rho array. Under
	// 4-connectivity that seals row 4 and strands cell (4,3); under
	// 8-connectivity (4,3) still touches (3,2) and (5,2) diagonally, so the
	// basin stays whole.
	g, err := grid.New(square(t), solver.Shape{NY: 10, NX: 5})
	require.NoError(t, err)
	require.NoError(t, g.MaskPolygon(rect(0.45, 0, 0.55, 0.7)))
	require.NoError(t, g.MaskPolygon(rect(0.58, 0.8, 0.64, 0.95)))
	require.NoError(t, g.MaskPolygon(rect(0.36, 0.8, 0.42, 0.95)))

	mask, err := g.MaskRho()
	require.NoError(t, err)
	land := 0
	for _, row := range mask {
		for _, v := range row {
			if v == 0 {
				land++
			}
		}
	}
	require.Equal(t, 5, land)

	four, err := g.WaterRegions(grid.Conn4)
	require.NoError(t, err)
	require.Len(t, four, 3)
	require.Len(t, four[0], 15, "basin above the seal")
	require.Len(t, four[1], 1, "stranded cell (4,3)")
	require.Len(t, four[2], 15, "basin below the seal")
	require.Equal(t, []int{4*4 + 3}, four[1])

	i, j := g.RhoCoordinate(four[1][0])
	require.Equal(t, 4, i)
	require.Equal(t, 3, j)

	eight, err := g.WaterRegions(grid.Conn8)
	require.NoError(t, err)
	require.Len(t, eight, 1)
	require.Len(t, eight[0], 31)
}
