package linalg

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Transform is a scale, rotation and translation triple. Applied to a point it
// scales first, then rotates, then translates.
type Transform struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Quat
	Scale       mgl32.Vec3
}

// IdentityTransform creates a transform that leaves points unchanged.
func IdentityTransform() Transform {
	return Transform{
		Translation: mgl32.Vec3{0, 0, 0},
		Rotation:    mgl32.QuatIdent(),
		Scale:       mgl32.Vec3{1, 1, 1},
	}
}

// Matrix recomposes the transform as T * R * S.
func (t Transform) Matrix() mgl32.Mat4 {
	translation := mgl32.Translate3D(t.Translation[0], t.Translation[1], t.Translation[2])
	scale := mgl32.Scale3D(t.Scale[0], t.Scale[1], t.Scale[2])
	return translation.Mul4(t.Rotation.Mat4()).Mul4(scale)
}

// Apply transforms a point.
func (t Transform) Apply(p mgl32.Vec3) mgl32.Vec3 {
	scaled := mgl32.Vec3{p[0] * t.Scale[0], p[1] * t.Scale[1], p[2] * t.Scale[2]}
	return t.Rotation.Rotate(scaled).Add(t.Translation)
}

func sqrt(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}
