package geometry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAngles(t *testing.T) {
	t.Run("normalizes negative angles", func(t *testing.T) {
		require.InDelta(t, 270.0, NormDeg(-90), 0.0001)
		require.InDelta(t, 0.0, NormDeg(720), 0.0001)
	})

	t.Run("smallest difference wraps around north", func(t *testing.T) {
		require.InDelta(t, 20.0, SmallestDeg(350, 10), 0.0001)
		require.InDelta(t, 180.0, SmallestDeg(0, 180), 0.0001)
	})

	t.Run("degree radian round trip", func(t *testing.T) {
		require.InDelta(t, 123.4, Rad2Deg(Deg2Rad(123.4)), 0.0001)
	})
}

func TestBearingAndProjection(t *testing.T) {
	t.Run("north is zero", func(t *testing.T) {
		require.InDelta(t, 0.0, Bearing(0, 0, 0, -5), 0.0001)
		require.InDelta(t, 90.0, Bearing(0, 0, 5, 0), 0.0001)
		require.InDelta(t, 180.0, Bearing(0, 0, 0, 5), 0.0001)
	})

	t.Run("project inverts bearing", func(t *testing.T) {
		x, y := Project(3, 4, 135, 10)
		require.InDelta(t, 135.0, Bearing(3, 4, x, y), 0.0001)
		require.InDelta(t, 10.0, Distance(3, 4, x, y), 0.0001)
	})
}

func TestDistances(t *testing.T) {
	require.InDelta(t, 5.0, Distance(0, 0, 3, 4), 0.0001)

	mx, my := Midpoint(0, 0, 4, 6)
	require.InDelta(t, 2.0, mx, 0.0001)
	require.InDelta(t, 3.0, my, 0.0001)

	require.InDelta(t, 2.0, DistFromCircle(7, 0, 0, 0, 5), 0.0001)
	require.InDelta(t, -4.0, DistFromCircle(1, 0, 0, 0, 5), 0.0001)
}

func TestCirclePoly(t *testing.T) {
	poly := CirclePoly(0, 0, 10, 4)
	require.Len(t, poly, 4)
	// Vertex 0 sits at the top of the circle.
	require.InDelta(t, 0.0, poly[0][0], 0.0001)
	require.InDelta(t, -10.0, poly[0][1], 0.0001)
	for _, p := range poly {
		require.InDelta(t, 10.0, Distance(0, 0, p[0], p[1]), 0.0001)
	}
}

func TestGridTransforms(t *testing.T) {
	grid := [][]string{
		{"a", "b", "c"},
		{"d", "e", "f"},
	}

	t.Run("transpose", func(t *testing.T) {
		got := TransposeGrid(grid)
		require.Equal(t, [][]string{{"a", "d"}, {"b", "e"}, {"c", "f"}}, got)
	})

	t.Run("rotate clockwise", func(t *testing.T) {
		got := RotateGrid(grid, true)
		require.Equal(t, [][]string{{"d", "a"}, {"e", "b"}, {"f", "c"}}, got)
	})

	t.Run("four rotations restore the layout", func(t *testing.T) {
		got := grid
		for i := 0; i < 4; i++ {
			got = RotateGrid(got, true)
		}
		require.Equal(t, grid, got)

		got = grid
		for i := 0; i < 4; i++ {
			got = RotateGrid(got, false)
		}
		require.Equal(t, grid, got)
	})
}
