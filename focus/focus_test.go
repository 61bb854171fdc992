package focus_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridgen/focus"
)

func uniform(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i) / float64(n-1)
	}

	return out
}

func TestAdd_Errors(t *testing.T) {
	cases := []struct {
		name           string
		loc            float64
		axis           focus.Axis
		factor, extent float64
		err            error
	}{
		{"BadAxis", 0.5, focus.Axis(7), 2, 0.1, focus.ErrInvalidAxis},
		{"LocationLow", -0.1, focus.Row, 2, 0.1, focus.ErrInvalidRange},
		{"LocationHigh", 1.1, focus.Col, 2, 0.1, focus.ErrInvalidRange},
		{"ZeroFactor", 0.5, focus.Row, 0, 0.1, focus.ErrInvalidRange},
		{"NegativeExtent", 0.5, focus.Row, 2, -1, focus.ErrInvalidRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := focus.New()
			err := f.Add(tc.loc, tc.axis, tc.factor, tc.extent)
			if !errors.Is(err, tc.err) {
				t.Errorf("Add() error = %v; want %v", err, tc.err)
			}
			require.Equal(t, 0, f.Len())
		})
	}
}

func TestApply_Identity(t *testing.T) {
	in := uniform(11)

	var nilFocus *focus.Focus
	require.Equal(t, in, nilFocus.Apply(focus.Row, in), "nil Focus is identity")
	require.Equal(t, in, focus.New().Apply(focus.Row, in), "empty Focus is identity")
}

func TestApply_EndpointsPinned(t *testing.T) {
	f := focus.New()
	require.NoError(t, f.Add(0.3, focus.Row, 3, 0.2))
	require.NoError(t, f.Add(0.8, focus.Row, 0.5, 0.1))

	out := f.Apply(focus.Row, uniform(21))
	require.Equal(t, 0.0, out[0])
	require.Equal(t, 1.0, out[len(out)-1])
}

func TestApply_StrictlyMonotone(t *testing.T) {
	f := focus.New()
	require.NoError(t, f.Add(0.5, focus.Col, 4, 0.15))
	require.NoError(t, f.Add(0.25, focus.Col, 0.3, 0.3))

	out := f.Apply(focus.Col, uniform(101))
	for i := 1; i < len(out); i++ {
		require.Greater(t, out[i], out[i-1], "index %d", i)
	}
}

func TestApply_Concentrates(t *testing.T) {
	// Factor > 1 near 0.5 must shrink spacing around 0.5 relative to the
	// edges of the axis.
	f := focus.New()
	require.NoError(t, f.Add(0.5, focus.Row, 3, 0.2))

	out := f.Apply(focus.Row, uniform(101))
	mid := out[51] - out[49]
	edge := out[2] - out[0]
	require.Less(t, mid, edge, "spacing near the focus must be finer")
}

func TestApply_Expands(t *testing.T) {
	f := focus.New()
	require.NoError(t, f.Add(0.5, focus.Row, 1.0/3.0, 0.2))

	out := f.Apply(focus.Row, uniform(101))
	mid := out[51] - out[49]
	edge := out[2] - out[0]
	require.Greater(t, mid, edge, "factor < 1 must coarsen spacing at the focus")
}

func TestApply_AxisIsolation(t *testing.T) {
	f := focus.New()
	require.NoError(t, f.Add(0.5, focus.Row, 5, 0.1))

	in := uniform(9)
	require.Equal(t, in, f.Apply(focus.Col, in), "Row focus must not touch Col")
	require.NotEqual(t, in, f.Apply(focus.Row, in))
}

func TestApply_CompositionOrder(t *testing.T) {
	// Composing two warps sequentially must equal registering both and
	// applying once.
	a := focus.New()
	require.NoError(t, a.Add(0.3, focus.Row, 2, 0.2))
	b := focus.New()
	require.NoError(t, b.Add(0.7, focus.Row, 3, 0.15))

	both := focus.New()
	require.NoError(t, both.Add(0.3, focus.Row, 2, 0.2))
	require.NoError(t, both.Add(0.7, focus.Row, 3, 0.15))

	in := uniform(33)
	step := b.Apply(focus.Row, a.Apply(focus.Row, in))
	once := both.Apply(focus.Row, in)
	require.InDeltaSlice(t, step, once, 1e-12)
}

func TestApply_Deterministic(t *testing.T) {
	f := focus.New()
	require.NoError(t, f.Add(0.5, focus.Row, 5, 0.25))

	in := uniform(50)
	require.Equal(t, f.Apply(focus.Row, in), f.Apply(focus.Row, in))
}

func TestPoints_Copy(t *testing.T) {
	f := focus.New()
	require.NoError(t, f.Add(0.5, focus.Row, 2, 0.1))
	pts := f.Points()
	pts[0].Factor = 99
	require.Equal(t, 2.0, f.Points()[0].Factor)
}

func TestAxis_String(t *testing.T) {
	require.Equal(t, "row", focus.Row.String())
	require.Equal(t, "col", focus.Col.String())
}
