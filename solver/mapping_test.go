package solver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridgen/boundary"
)

func mustModel(t *testing.T, pts []boundary.Point, ul int) *boundary.Model {
	t.Helper()
	m, err := boundary.New(pts, ul)
	require.NoError(t, err)

	return m
}

func TestNormalizedRing_CCWKeepsOrder(t *testing.T) {
	m := mustModel(t, []boundary.Point{
		{X: 0, Y: 0, Beta: 1},
		{X: 1, Y: 0, Beta: 1},
		{X: 1, Y: 1, Beta: 1},
		{X: 0, Y: 1, Beta: 1},
	}, 2)

	ring := normalizedRing(m)
	// Rotated so the anchor vertex leads; order otherwise untouched.
	require.Equal(t, boundary.Point{X: 1, Y: 1, Beta: 1}, ring[0])
	require.Equal(t, boundary.Point{X: 0, Y: 1, Beta: 1}, ring[1])
	require.Equal(t, boundary.Point{X: 0, Y: 0, Beta: 1}, ring[2])
	require.Equal(t, boundary.Point{X: 1, Y: 0, Beta: 1}, ring[3])
}

func TestNormalizedRing_ReversesClockwise(t *testing.T) {
	// Clockwise square; anchor at index 1.
	m := mustModel(t, []boundary.Point{
		{X: 0, Y: 0, Beta: 1},
		{X: 0, Y: 1, Beta: 1},
		{X: 1, Y: 1, Beta: 1},
		{X: 1, Y: 0, Beta: 1},
	}, 1)
	require.False(t, m.IsCCW())

	ring := normalizedRing(m)
	// The anchor vertex still leads and the ring now winds CCW.
	require.Equal(t, boundary.Point{X: 0, Y: 1, Beta: 1}, ring[0])
	var aux []boundary.Point
	aux = append(aux, ring...)
	area := 0.0
	for i, p := range aux {
		q := aux[(i+1)%len(aux)]
		area += p.X*q.Y - q.X*p.Y
	}
	require.Greater(t, area, 0.0)
}

func TestRectCorners_FourConvex(t *testing.T) {
	m := mustModel(t, []boundary.Point{
		{X: 0, Y: 0, Beta: 1},
		{X: 1, Y: 0, Beta: 1},
		{X: 2, Y: 0.5, Beta: 0},
		{X: 1, Y: 1, Beta: 1},
		{X: 0, Y: 1, Beta: 1},
	}, 0)

	corners, err := rectCorners(normalizedRing(m))
	require.NoError(t, err)
	require.Equal(t, [4]int{0, 1, 3, 4}, corners)
}

func TestRectCorners_Reentrant(t *testing.T) {
	// T-shaped ring: running beta sum 1,2,1,2,3,2,3,4 picks indices 0,1,4,7.
	m := mustModel(t, []boundary.Point{
		{X: 0.5, Y: 0.5, Beta: 1},
		{X: 2.0, Y: 0.5, Beta: 1},
		{X: 2.0, Y: 1.75, Beta: -1},
		{X: 3.5, Y: 1.75, Beta: 1},
		{X: 3.5, Y: 2.25, Beta: 1},
		{X: 2.0, Y: 2.25, Beta: -1},
		{X: 2.0, Y: 3.5, Beta: 1},
		{X: 0.5, Y: 3.5, Beta: 1},
	}, 0)

	corners, err := rectCorners(normalizedRing(m))
	require.NoError(t, err)
	require.Equal(t, [4]int{0, 1, 4, 7}, corners)
}

func TestSidePath_Sample(t *testing.T) {
	m := mustModel(t, []boundary.Point{
		{X: 0, Y: 0, Beta: 1},
		{X: 1, Y: 0, Beta: 1},
		{X: 2, Y: 0.5, Beta: 0},
		{X: 1, Y: 1, Beta: 1},
		{X: 0, Y: 1, Beta: 1},
	}, 0)
	ring := normalizedRing(m)
	corners, err := rectCorners(ring)
	require.NoError(t, err)
	sides, err := buildSides(ring, corners, 3)
	require.NoError(t, err)

	// Side 1 runs (1,0) → (2,0.5) → (1,1); its arc midpoint is the tip.
	x, y := sides[1].sample(0.5)
	require.InDelta(t, 2.0, x, 1e-12)
	require.InDelta(t, 0.5, y, 1e-12)

	// Endpoints are exact.
	x, y = sides[1].sample(0)
	require.Equal(t, 1.0, x)
	require.Equal(t, 0.0, y)
	x, y = sides[1].sample(1)
	require.Equal(t, 1.0, x)
	require.Equal(t, 1.0, y)
}

func TestCheckFolds(t *testing.T) {
	// 2×2 cell in the solver's counterclockwise logical orientation.
	x := [][]float64{{1, 1}, {0, 0}}
	y := [][]float64{{0, 1}, {0, 1}}
	require.NoError(t, checkFolds(x, y))

	// Mirror it: the cell area flips sign, which means a fold.
	x = [][]float64{{0, 0}, {1, 1}}
	require.ErrorIs(t, checkFolds(x, y), ErrFoldedCell)
}

func TestUntangle_NoOpOnHealthyGrid(t *testing.T) {
	x := alloc(4, 4)
	y := alloc(4, 4)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			x[i][j] = float64(j)
			y[i][j] = float64(i)
		}
	}
	require.Equal(t, 0.0, untangle(x, y))
}

func TestUntangle_PullsCrossedNode(t *testing.T) {
	x := alloc(3, 3)
	y := alloc(3, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			x[i][j] = float64(j)
			y[i][j] = float64(i)
		}
	}
	// Drag the center far past its left neighbor: the adjacent cells flip
	// sign and the untangler pulls the node back to its neighbor centroid.
	x[1][1] = -5
	moved := untangle(x, y)
	require.Greater(t, moved, 0.0)
	require.InDelta(t, 1.0, x[1][1], 1e-12)
	require.InDelta(t, 1.0, y[1][1], 1e-12)
}
