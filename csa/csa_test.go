package csa_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridgen/csa"
)

// sampleGrid lays an n×n station grid over [0, n-1]² with z = f(x, y).
func sampleGrid(n int, f func(x, y float64) float64) (xs, ys, zs []float64) {
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			x, y := float64(j), float64(i)
			xs = append(xs, x)
			ys = append(ys, y)
			zs = append(zs, f(x, y))
		}
	}

	return xs, ys, zs
}

func TestNew_Validation(t *testing.T) {
	xs, ys, zs := sampleGrid(3, func(x, y float64) float64 { return x + y })

	cases := []struct {
		name string
		run  func() error
		want error
	}{
		{"empty input", func() error {
			_, err := csa.New(nil, nil, nil)
			return err
		}, csa.ErrLengthMismatch},
		{"ragged input", func() error {
			_, err := csa.New(xs, ys[:4], zs)
			return err
		}, csa.ErrLengthMismatch},
		{"npmin zero", func() error {
			_, err := csa.New(xs, ys, zs, csa.WithNPMin(0))
			return err
		}, csa.ErrInvalidParam},
		{"npmax below npmin", func() error {
			_, err := csa.New(xs, ys, zs, csa.WithNPMin(5), csa.WithNPMax(4))
			return err
		}, csa.ErrInvalidParam},
		{"k zero", func() error {
			_, err := csa.New(xs, ys, zs, csa.WithK(0))
			return err
		}, csa.ErrInvalidParam},
		{"nppc zero", func() error {
			_, err := csa.New(xs, ys, zs, csa.WithNPPC(0))
			return err
		}, csa.ErrInvalidParam},
		{"sigma length", func() error {
			_, err := csa.New(xs, ys, zs, csa.WithSigma([]float64{1, 2}))
			return err
		}, csa.ErrLengthMismatch},
		{"sigma non-positive", func() error {
			sig := make([]float64, len(xs))
			for i := range sig {
				sig[i] = 1
			}
			sig[3] = 0
			_, err := csa.New(xs, ys, zs, csa.WithSigma(sig))
			return err
		}, csa.ErrInvalidParam},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, tc.run(), tc.want)
		})
	}
}

func TestApproximate_QueryLengthMismatch(t *testing.T) {
	xs, ys, zs := sampleGrid(3, func(x, y float64) float64 { return x })
	a, err := csa.New(xs, ys, zs)
	require.NoError(t, err)

	_, err = a.Approximate([]float64{0, 1}, []float64{0})
	require.ErrorIs(t, err, csa.ErrLengthMismatch)
}

func TestApproximate_ReproducesPlane(t *testing.T) {
	xs, ys, zs := sampleGrid(10, func(x, y float64) float64 { return 2*x + 3*y - 1 })
	a, err := csa.New(xs, ys, zs)
	require.NoError(t, err)

	qx := []float64{4.5, 0.3, 8.9, 2.25}
	qy := []float64{4.5, 7.2, 0.1, 6.75}
	got, err := a.Approximate(qx, qy)
	require.NoError(t, err)
	for i := range got {
		require.False(t, csa.IsMasked(got[i]))
		require.InDelta(t, 2*qx[i]+3*qy[i]-1, got[i], 1e-8, "query %d", i)
	}
}

func TestApproximate_ReproducesCubic(t *testing.T) {
	f := func(x, y float64) float64 {
		return x*x*x - 2*x*y*y + y*y*y + x - 5
	}
	xs, ys, zs := sampleGrid(10, f)
	a, err := csa.New(xs, ys, zs)
	require.NoError(t, err)

	qx := []float64{3.3, 6.1, 1.7}
	qy := []float64{5.9, 2.4, 7.5}
	got, err := a.Approximate(qx, qy)
	require.NoError(t, err)
	for i := range got {
		require.InDelta(t, f(qx[i], qy[i]), got[i], 1e-6, "query %d", i)
	}
}

func TestApproximate_Deterministic(t *testing.T) {
	xs, ys, zs := sampleGrid(10, func(x, y float64) float64 { return x*y + y })
	a, err := csa.New(xs, ys, zs)
	require.NoError(t, err)

	qx := []float64{1.1, 4.4, 8.8}
	qy := []float64{2.2, 5.5, 0.4}
	first, err := a.Approximate(qx, qy)
	require.NoError(t, err)
	second, err := a.Approximate(qx, qy)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestApproximate_MaskedWhenTooSparse(t *testing.T) {
	a, err := csa.New([]float64{0, 1}, []float64{0, 1}, []float64{5, 6})
	require.NoError(t, err)

	got, err := a.Approximate([]float64{0.5}, []float64{0.5})
	require.NoError(t, err)
	require.True(t, csa.IsMasked(got[0]))
}

func TestSetZ(t *testing.T) {
	xs, ys, zs := sampleGrid(10, func(x, y float64) float64 { return x + y })
	a, err := csa.New(xs, ys, zs)
	require.NoError(t, err)

	require.ErrorIs(t, a.SetZ([]float64{1, 2, 3}), csa.ErrLengthMismatch)

	flat := make([]float64, len(zs))
	for i := range flat {
		flat[i] = 7
	}
	require.NoError(t, a.SetZ(flat))

	got, err := a.Approximate([]float64{3.14}, []float64{2.72})
	require.NoError(t, err)
	require.InDelta(t, 7.0, got[0], 1e-8)
}

func TestWithSigma_DownweightsNoisyStations(t *testing.T) {
	// One wild station at the query point, three trusted ones agreeing on
	// z = 10. With sigmas the fit follows the trusted plane; without them
	// the wild station drags the value down.
	xs := []float64{0, 1, 0, 1}
	ys := []float64{0, 0, 1, 1}
	zs := []float64{0, 10, 10, 10}

	trusted, err := csa.New(xs, ys, zs,
		csa.WithSigma([]float64{100, 0.01, 0.01, 0.01}))
	require.NoError(t, err)
	got, err := trusted.Approximate([]float64{0}, []float64{0})
	require.NoError(t, err)
	require.InDelta(t, 10.0, got[0], 0.01)

	plain, err := csa.New(xs, ys, zs)
	require.NoError(t, err)
	got, err = plain.Approximate([]float64{0}, []float64{0})
	require.NoError(t, err)
	require.Less(t, got[0], 5.0)
}
