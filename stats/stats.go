// Package stats provides reductions over numeric slices and point sets:
// sums, means, population variances and extrema.
package stats

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Scalar is a constraint for the types the reductions can handle.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// ErrEmpty is returned by the reductions that are undefined on an empty
// input.
var ErrEmpty = errors.New("stats: empty input")

// Sum returns the sum of values, 0 for an empty slice.
func Sum[T Scalar](values []T) T {
	var sum T
	for _, v := range values {
		sum += v
	}
	return sum
}

// Average returns the arithmetic mean of values, computed in float64.
func Average[T Scalar](values []T) (float64, error) {
	if len(values) == 0 {
		return 0, errors.Wrap(ErrEmpty, "average")
	}

	var sum float64
	for _, v := range values {
		sum += float64(v)
	}
	return sum / float64(len(values)), nil
}

// Variance returns the population variance of values.
func Variance[T Scalar](values []T) (float64, error) {
	mean, err := Average(values)
	if err != nil {
		return 0, errors.Wrap(ErrEmpty, "variance")
	}

	var sum float64
	for _, v := range values {
		d := float64(v) - mean
		sum += d * d
	}
	return sum / float64(len(values)), nil
}

// StdDev returns the population standard deviation of values.
func StdDev[T Scalar](values []T) (float64, error) {
	variance, err := Variance(values)
	if err != nil {
		return 0, errors.Wrap(ErrEmpty, "standard deviation")
	}
	return math.Sqrt(variance), nil
}

func Min[T constraints.Ordered](values []T) (T, error) {
	var zero T
	if len(values) == 0 {
		return zero, errors.Wrap(ErrEmpty, "min")
	}

	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m, nil
}

func Max[T constraints.Ordered](values []T) (T, error) {
	var zero T
	if len(values) == 0 {
		return zero, errors.Wrap(ErrEmpty, "max")
	}

	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m, nil
}

// SumVec3 returns the componentwise sum of points.
func SumVec3(points []mgl32.Vec3) mgl32.Vec3 {
	var sum mgl32.Vec3
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum
}

// AverageVec3 returns the centroid of points.
func AverageVec3(points []mgl32.Vec3) (mgl32.Vec3, error) {
	if len(points) == 0 {
		return mgl32.Vec3{}, errors.Wrap(ErrEmpty, "centroid")
	}
	return SumVec3(points).Mul(1 / float32(len(points))), nil
}

// VarianceVec3 returns the componentwise population variance of points.
func VarianceVec3(points []mgl32.Vec3) (mgl32.Vec3, error) {
	mean, err := AverageVec3(points)
	if err != nil {
		return mgl32.Vec3{}, errors.Wrap(ErrEmpty, "variance")
	}

	var sum mgl32.Vec3
	for _, p := range points {
		d := p.Sub(mean)
		sum = sum.Add(mgl32.Vec3{d[0] * d[0], d[1] * d[1], d[2] * d[2]})
	}
	return sum.Mul(1 / float32(len(points))), nil
}
