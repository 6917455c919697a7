package linalg

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertMat4InDelta(t *testing.T, expected, actual mgl32.Mat4, delta float64) {
	t.Helper()
	for i := range expected {
		assert.InDelta(t, expected[i], actual[i], delta, "cell %d (row %d, col %d)", i, i%4, i/4)
	}
}

var invertibleMatrices = []struct {
	name string
	m    mgl32.Mat4
}{
	{"identity", mgl32.Ident4()},
	{"translation", mgl32.Translate3D(1, -2, 3)},
	{"non-uniform scale", mgl32.Scale3D(2, 0.5, 4)},
	{"rotation", mgl32.HomogRotate3D(0.7, mgl32.Vec3{1, 1, 0}.Normalize())},
	{
		"TRS",
		mgl32.Translate3D(1, 2, 3).
			Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(30))).
			Mul4(mgl32.Scale3D(2, 3, 4)),
	},
	{"perspective", mgl32.Perspective(mgl32.DegToRad(60), 16.0/9.0, 0.1, 100)},
	{
		"general",
		mgl32.Mat4FromRows(
			mgl32.Vec4{2, 1, 0, 0},
			mgl32.Vec4{1, 3, 1, 0},
			mgl32.Vec4{0, 1, 4, 1},
			mgl32.Vec4{1, 0, 0, 2},
		),
	},
}

func TestDeterminant(t *testing.T) {
	tests := []struct {
		name     string
		m        mgl32.Mat4
		expected float32
	}{
		{"identity", mgl32.Ident4(), 1},
		{"zero", mgl32.Mat4{}, 0},
		{"scale", mgl32.Scale3D(2, 3, 4), 24},
		{"translation", mgl32.Translate3D(5, 6, 7), 1},
		{"reflection", mgl32.Scale3D(-1, 1, 1), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Determinant(tt.m), 1e-6)
		})
	}

	for _, tt := range invertibleMatrices {
		t.Run("matches mathgl "+tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.m.Det(), Determinant(tt.m), 1e-3)
		})
	}
}

func TestInvert_RoundTrip(t *testing.T) {
	for _, tt := range invertibleMatrices {
		t.Run(tt.name, func(t *testing.T) {
			inv, ok := Invert(tt.m)
			require.True(t, ok, "matrix should be invertible")

			assertMat4InDelta(t, mgl32.Ident4(), tt.m.Mul4(inv), 1e-4)
			assertMat4InDelta(t, mgl32.Ident4(), inv.Mul4(tt.m), 1e-4)
		})
	}
}

func TestInvert_Singular(t *testing.T) {
	tests := []struct {
		name string
		m    mgl32.Mat4
	}{
		{"zero matrix", mgl32.Mat4{}},
		{
			"two identical rows",
			mgl32.Mat4FromRows(
				mgl32.Vec4{1, 2, 3, 4},
				mgl32.Vec4{1, 2, 3, 4},
				mgl32.Vec4{0, 1, 0, 0},
				mgl32.Vec4{0, 0, 0, 1},
			),
		},
		{"collapsed axis", mgl32.Scale3D(1, 0, 1)},
		{
			"linearly dependent columns",
			mgl32.Mat4FromCols(
				mgl32.Vec4{1, 2, 3, 0},
				mgl32.Vec4{2, 4, 6, 0},
				mgl32.Vec4{0, 0, 1, 0},
				mgl32.Vec4{0, 0, 0, 1},
			),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, ok := Invert(tt.m)
			if ok {
				t.Fatalf("Invert should fail for a singular matrix, got %v", inv)
			}
			for i, v := range inv {
				if !math.IsNaN(float64(v)) {
					t.Errorf("cell %d = %v, want NaN", i, v)
				}
			}
		})
	}
}

func TestInverse(t *testing.T) {
	t.Run("invertible", func(t *testing.T) {
		m := mgl32.Translate3D(1, 2, 3).Mul4(mgl32.Scale3D(2, 2, 2))
		inv, err := Inverse(m)
		require.NoError(t, err)
		assertMat4InDelta(t, mgl32.Ident4(), m.Mul4(inv), 1e-5)
	})

	t.Run("singular", func(t *testing.T) {
		inv, err := Inverse(mgl32.Mat4{})
		require.ErrorIs(t, err, ErrNoInverse)
		assert.Equal(t, mgl32.Mat4{}, inv, "no NaN should leak from the checked inverse")
	})
}

func TestNaNMat4(t *testing.T) {
	m := NaNMat4()
	for i, v := range m {
		if v == v {
			t.Errorf("cell %d = %v, want NaN", i, v)
		}
	}
}
