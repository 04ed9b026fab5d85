package outline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCubicEndpoints(t *testing.T) {
	curves := [][4]Point{
		{{0, 0}, {0, 10}, {10, 10}, {10, 0}},
		{{-3, 7}, {100, -50}, {0.5, 0.25}, {42, 42}},
		{{1, 1}, {1, 1}, {1, 1}, {1, 1}},
	}
	for _, c := range curves {
		for n := 2; n <= 20; n++ {
			points, err := Cubic(c[0], c[1], c[2], c[3], n)
			require.NoError(t, err)
			require.Len(t, points, n)
			assert.Equal(t, c[0], points[0])
			assert.Equal(t, c[3], points[n-1])
		}
	}
}

func TestCubicByHand(t *testing.T) {
	points, err := Cubic(Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(10, 0), 3)
	require.NoError(t, err)
	require.Len(t, points, 3)

	// t = 0.5: weights 1/8, 3/8, 3/8, 1/8
	assert.Equal(t, Pt(0, 0), points[0])
	assert.InDelta(t, 5.0, points[1].X, 1e-12)
	assert.InDelta(t, 7.5, points[1].Y, 1e-12)
	assert.Equal(t, Pt(10, 0), points[2])
}

func TestCubicMonotoneParameter(t *testing.T) {
	// A straight cubic with evenly spaced controls is linear in t.
	points, err := Cubic(Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(3, 0), 7)
	require.NoError(t, err)
	for i := 1; i < len(points); i++ {
		assert.Greater(t, points[i].X, points[i-1].X)
		assert.InDelta(t, 3*float64(i)/6, points[i].X, 1e-12)
	}
}

func TestQuadratic(t *testing.T) {
	points, err := Quadratic(Pt(0, 0), Pt(5, 10), Pt(10, 0), 3)
	require.NoError(t, err)
	assert.Equal(t, []Point{{0, 0}, {5, 5}, {10, 0}}, points)
}

func TestLinear(t *testing.T) {
	points, err := Linear(Pt(0, 0), Pt(10, 20), 2)
	require.NoError(t, err)
	assert.Equal(t, []Point{{0, 0}, {10, 20}}, points)

	points, err = Linear(Pt(0, 0), Pt(10, 20), 3)
	require.NoError(t, err)
	assert.Equal(t, Pt(5, 10), points[1])
}

func TestSampleCount(t *testing.T) {
	for _, n := range []int{-1, 0, 1} {
		_, err := Cubic(Pt(0, 0), Pt(0, 1), Pt(1, 1), Pt(1, 0), n)
		assert.ErrorIs(t, err, ErrSampleCount)
		_, err = Quadratic(Pt(0, 0), Pt(0, 1), Pt(1, 1), n)
		assert.ErrorIs(t, err, ErrSampleCount)
		_, err = Linear(Pt(0, 0), Pt(1, 1), n)
		assert.ErrorIs(t, err, ErrSampleCount)
	}
}

func TestReflect(t *testing.T) {
	cases := []struct {
		prev, cursor Point
	}{
		{Pt(0, 0), Pt(1, 1)},
		{Pt(10, -4), Pt(3, 3)},
		{Pt(-2.5, 8), Pt(-2.5, 8)},
	}
	for _, c := range cases {
		r := c.prev.Reflect(c.cursor)
		assert.Equal(t, c.cursor.Mul(2).Sub(c.prev), r)
		// cursor is the midpoint of prev and the reflection
		assert.Equal(t, c.cursor, c.prev.Add(r).Mul(0.5))
	}
}
