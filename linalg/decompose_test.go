package linalg

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecompose_RoundTrip(t *testing.T) {
	tests := []struct {
		name        string
		translation mgl32.Vec3
		rotation    mgl32.Quat
		scale       mgl32.Vec3
	}{
		{
			name:        "scale rotate translate",
			translation: mgl32.Vec3{1, 2, 3},
			rotation:    mgl32.QuatRotate(math.Pi/4, mgl32.Vec3{0, 1, 0}),
			scale:       mgl32.Vec3{2, 3, 4},
		},
		{
			name:        "identity",
			translation: mgl32.Vec3{},
			rotation:    mgl32.QuatIdent(),
			scale:       mgl32.Vec3{1, 1, 1},
		},
		{
			name:        "half turn around X",
			translation: mgl32.Vec3{-5, 0, 2},
			rotation:    mgl32.QuatRotate(math.Pi, mgl32.Vec3{1, 0, 0}),
			scale:       mgl32.Vec3{1, 2, 1},
		},
		{
			name:        "oblique axis",
			translation: mgl32.Vec3{0.5, -0.5, 10},
			rotation:    mgl32.QuatRotate(2.1, mgl32.Vec3{1, 2, 3}.Normalize()),
			scale:       mgl32.Vec3{0.5, 0.25, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Transform{Translation: tt.translation, Rotation: tt.rotation, Scale: tt.scale}.Matrix()

			got, err := Decompose(m)
			require.NoError(t, err)

			for i := 0; i < 3; i++ {
				assert.InDelta(t, tt.translation[i], got.Translation[i], 1e-5, "translation[%d]", i)
				assert.InDelta(t, tt.scale[i], got.Scale[i], 1e-4, "scale[%d]", i)
			}
			assert.True(t, got.Rotation.OrientationEqualThreshold(tt.rotation, 1e-4),
				"rotation %v, want %v", got.Rotation, tt.rotation)

			assertMat4InDelta(t, m, got.Matrix(), 1e-4)
		})
	}
}

func TestDecompose_Reflection(t *testing.T) {
	m := mgl32.Translate3D(1, 1, 1).Mul4(mgl32.Scale3D(-2, 3, 4))

	got, err := Decompose(m)
	require.NoError(t, err)

	assert.Less(t, got.Scale[0]*got.Scale[1]*got.Scale[2], float32(0), "reflection must survive as a negative scale")
	assert.InDelta(t, 2, mgl32.Abs(got.Scale[0]), 1e-5)
	assert.InDelta(t, 3, mgl32.Abs(got.Scale[1]), 1e-5)
	assert.InDelta(t, 4, mgl32.Abs(got.Scale[2]), 1e-5)
	assertMat4InDelta(t, m, got.Matrix(), 1e-5)
}

func TestDecompose_CollapsedAxis(t *testing.T) {
	m := mgl32.Translate3D(0, 1, 0).Mul4(mgl32.Scale3D(2, 0, 3))

	got, err := Decompose(m)
	require.NoError(t, err)

	assert.InDelta(t, 2, got.Scale[0], 1e-6)
	assert.InDelta(t, 0, got.Scale[1], 1e-6)
	assert.InDelta(t, 3, got.Scale[2], 1e-6)
	assert.True(t, got.Rotation.OrientationEqualThreshold(mgl32.QuatIdent(), 1e-5))
	assertMat4InDelta(t, m, got.Matrix(), 1e-5)
}

func TestDecompose_Shear(t *testing.T) {
	m := mgl32.Translate3D(4, 5, 6).Mul4(mgl32.ShearX3D(0.5, 0))

	got, err := Decompose(m)
	require.ErrorIs(t, err, ErrNotSRT)

	assert.Equal(t, mgl32.Vec3{4, 5, 6}, got.Translation)
	assert.Equal(t, mgl32.QuatIdent(), got.Rotation)
}

func TestQuatFromBasis(t *testing.T) {
	rotations := []mgl32.Quat{
		mgl32.QuatIdent(),
		mgl32.QuatRotate(math.Pi/2, mgl32.Vec3{0, 0, 1}),
		mgl32.QuatRotate(math.Pi, mgl32.Vec3{0, 1, 0}),
		mgl32.QuatRotate(math.Pi, mgl32.Vec3{0, 0, 1}),
		mgl32.QuatRotate(math.Pi, mgl32.Vec3{1, 0, 0}),
		mgl32.QuatRotate(0.3, mgl32.Vec3{-1, 2, 0.5}.Normalize()),
	}

	for _, q := range rotations {
		x := q.Rotate(mgl32.Vec3{1, 0, 0})
		y := q.Rotate(mgl32.Vec3{0, 1, 0})
		z := q.Rotate(mgl32.Vec3{0, 0, 1})

		got := QuatFromBasis(x, y, z)
		if !got.OrientationEqualThreshold(q, 1e-4) {
			t.Errorf("QuatFromBasis(%v, %v, %v) = %v, want %v", x, y, z, got, q)
		}
		assert.InDelta(t, 1, got.Len(), 1e-5)
	}
}

func TestRankDescending(t *testing.T) {
	tests := []struct {
		x, y, z float32
		a, b, c int
	}{
		{3, 2, 1, 0, 1, 2},
		{1, 2, 3, 2, 1, 0},
		{2, 3, 1, 1, 0, 2},
		{2, 1, 3, 2, 0, 1},
		{1, 3, 2, 1, 2, 0},
		{3, 1, 2, 0, 2, 1},
	}

	for _, tt := range tests {
		a, b, c := rankDescending(tt.x, tt.y, tt.z)
		if a != tt.a || b != tt.b || c != tt.c {
			t.Errorf("rankDescending(%v, %v, %v) = %d, %d, %d, want %d, %d, %d",
				tt.x, tt.y, tt.z, a, b, c, tt.a, tt.b, tt.c)
		}
	}
}
