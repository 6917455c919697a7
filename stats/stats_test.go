package stats

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSum(t *testing.T) {
	assert.Equal(t, 10, Sum([]int{1, 2, 3, 4}))
	assert.Equal(t, float32(1.5), Sum([]float32{0.5, 1}))
	assert.Equal(t, uint8(0), Sum([]uint8{}))
}

func TestAverage(t *testing.T) {
	avg, err := Average([]int{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, 2.5, avg, "integers are averaged without truncation")

	_, err = Average([]float64{})
	require.ErrorIs(t, err, ErrEmpty)
}

func TestVarianceAndStdDev(t *testing.T) {
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}

	variance, err := Variance(values)
	require.NoError(t, err)
	assert.InDelta(t, 4, variance, 1e-12)

	stdDev, err := StdDev(values)
	require.NoError(t, err)
	assert.InDelta(t, 2, stdDev, 1e-12)

	single, err := Variance([]int32{7})
	require.NoError(t, err)
	assert.Equal(t, 0.0, single)

	_, err = Variance([]int{})
	require.ErrorIs(t, err, ErrEmpty)
	_, err = StdDev([]int{})
	require.ErrorIs(t, err, ErrEmpty)
}

func TestMinMax(t *testing.T) {
	tests := []struct {
		name     string
		values   []float32
		min, max float32
	}{
		{"single", []float32{3}, 3, 3},
		{"unsorted", []float32{3, -1, 7, 0}, -1, 7},
		{"duplicates", []float32{2, 2, 2}, 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, err := Min(tt.values)
			require.NoError(t, err)
			hi, err := Max(tt.values)
			require.NoError(t, err)

			assert.Equal(t, tt.min, lo)
			assert.Equal(t, tt.max, hi)
		})
	}

	_, err := Min([]int{})
	require.ErrorIs(t, err, ErrEmpty)
	_, err = Max([]string{})
	require.ErrorIs(t, err, ErrEmpty)
}

func TestVec3Reductions(t *testing.T) {
	points := []mgl32.Vec3{
		{0, 0, 0},
		{2, 0, 4},
		{4, 6, 2},
	}

	assert.Equal(t, mgl32.Vec3{6, 6, 6}, SumVec3(points))

	centroid, err := AverageVec3(points)
	require.NoError(t, err)
	assert.InDelta(t, 2, centroid.X(), 1e-6)
	assert.InDelta(t, 2, centroid.Y(), 1e-6)
	assert.InDelta(t, 2, centroid.Z(), 1e-6)

	variance, err := VarianceVec3(points)
	require.NoError(t, err)
	// x: (4 + 0 + 4) / 3, y: (4 + 4 + 16) / 3, z: (4 + 4 + 0) / 3
	assert.InDelta(t, 8.0/3.0, variance.X(), 1e-5)
	assert.InDelta(t, 8, variance.Y(), 1e-5)
	assert.InDelta(t, 8.0/3.0, variance.Z(), 1e-5)

	_, err = AverageVec3(nil)
	require.ErrorIs(t, err, ErrEmpty)
	_, err = VarianceVec3(nil)
	require.ErrorIs(t, err, ErrEmpty)
}
