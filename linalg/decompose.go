package linalg

import (
	"github.com/akmonengine/geometry/internal/logger"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// DecomposeEpsilon is the threshold under which a basis vector is considered
// collapsed, and the tolerance on (det-1)² of the rebuilt rotation basis.
const DecomposeEpsilon float32 = 1e-4

// ErrNotSRT is returned by Decompose when the matrix cannot be expressed as
// translation * rotation * scale (it contains shear or a projection).
var ErrNotSRT = errors.New("linalg: matrix is not a scale/rotation/translation")

var canonicalBasis = [3]mgl32.Vec3{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
}

// Decompose splits an affine matrix m = T * R * S into its translation,
// rotation and scale.
//
// The scale of each axis is the length of the corresponding basis column.
// Axes are processed from the largest scale to the smallest so that
// collapsed axes (scale < DecomposeEpsilon) can be rebuilt from the
// well-conditioned ones. A reflection is folded into a negative scale on the
// largest axis.
//
// On ErrNotSRT the returned Transform still carries translation and scale,
// with an identity rotation.
func Decompose(m mgl32.Mat4) (Transform, error) {
	translation := m.Col(3).Vec3()

	basis := [3]mgl32.Vec3{
		m.Col(0).Vec3(),
		m.Col(1).Vec3(),
		m.Col(2).Vec3(),
	}
	scale := mgl32.Vec3{basis[0].Len(), basis[1].Len(), basis[2].Len()}

	a, b, c := rankDescending(scale[0], scale[1], scale[2])

	if scale[a] < DecomposeEpsilon {
		basis[a] = canonicalBasis[a]
	}
	basis[a] = basis[a].Normalize()

	if scale[b] < DecomposeEpsilon {
		cc := leastAlignedAxis(basis[a])
		basis[b] = basis[a].Cross(canonicalBasis[cc])
	}
	basis[b] = basis[b].Normalize()

	if scale[c] < DecomposeEpsilon {
		basis[c] = basis[a].Cross(basis[b])
	}
	basis[c] = basis[c].Normalize()

	det := basisDeterminant(basis[0], basis[1], basis[2])

	// left-handed basis: move the reflection into the scale
	if det < 0 {
		scale[a] = -scale[a]
		basis[a] = basis[a].Mul(-1)
		det = -det
	}

	det -= 1
	det *= det

	if DecomposeEpsilon < det {
		logger.Get().Debug("matrix is not SRT", zap.Float32("residual", det))
		return Transform{
			Translation: translation,
			Rotation:    mgl32.QuatIdent(),
			Scale:       scale,
		}, errors.Wrapf(ErrNotSRT, "basis residual %g", det)
	}

	return Transform{
		Translation: translation,
		Rotation:    QuatFromBasis(basis[0], basis[1], basis[2]),
		Scale:       scale,
	}, nil
}

// rankDescending returns the indices of x, y, z ordered from the largest
// value to the smallest.
func rankDescending(x, y, z float32) (a, b, c int) {
	if x < y {
		if y < z {
			return 2, 1, 0
		}
		if x < z {
			return 1, 2, 0
		}
		return 1, 0, 2
	}
	if x < z {
		return 2, 0, 1
	}
	if y < z {
		return 0, 2, 1
	}
	return 0, 1, 2
}

// leastAlignedAxis picks the canonical axis used to rebuild a collapsed
// basis vector by crossing it with v.
func leastAlignedAxis(v mgl32.Vec3) int {
	absX, absY, absZ := mgl32.Abs(v[0]), mgl32.Abs(v[1]), mgl32.Abs(v[2])

	if absX < absY {
		if absY < absZ {
			return 0
		}
		if absX < absZ {
			return 0
		}
		return 2
	}
	if absX < absZ {
		return 1
	}
	if absY < absZ {
		return 1
	}
	return 2
}

// basisDeterminant is the 3x3 determinant of the matrix whose columns are
// x, y and z (the triple product).
func basisDeterminant(x, y, z mgl32.Vec3) float32 {
	return x.Dot(y.Cross(z))
}

// QuatFromBasis converts an orthonormal basis (the images of the X, Y and Z
// axes) into a rotation quaternion.
//
// It uses the trace method and picks, among w, x, y and z, the component with
// the largest magnitude to divide by, which keeps the result stable near 180°
// rotations.
func QuatFromBasis(x, y, z mgl32.Vec3) mgl32.Quat {
	// mRC: row R, column C of the rotation matrix whose columns are x, y, z
	m11, m21, m31 := x[0], x[1], x[2]
	m12, m22, m32 := y[0], y[1], y[2]
	m13, m23, m33 := z[0], z[1], z[2]

	var q mgl32.Quat
	trace := m11 + m22 + m33

	switch {
	case trace > 0:
		s := sqrt(trace + 1)
		q.W = s * 0.5
		s = 0.5 / s
		q.V = mgl32.Vec3{
			(m32 - m23) * s,
			(m13 - m31) * s,
			(m21 - m12) * s,
		}
	case m11 >= m22 && m11 >= m33:
		s := sqrt(1 + m11 - m22 - m33)
		invS := 0.5 / s
		q.V = mgl32.Vec3{
			0.5 * s,
			(m21 + m12) * invS,
			(m31 + m13) * invS,
		}
		q.W = (m32 - m23) * invS
	case m22 > m33:
		s := sqrt(1 + m22 - m11 - m33)
		invS := 0.5 / s
		q.V = mgl32.Vec3{
			(m12 + m21) * invS,
			0.5 * s,
			(m23 + m32) * invS,
		}
		q.W = (m13 - m31) * invS
	default:
		s := sqrt(1 + m33 - m11 - m22)
		invS := 0.5 / s
		q.V = mgl32.Vec3{
			(m13 + m31) * invS,
			(m23 + m32) * invS,
			0.5 * s,
		}
		q.W = (m21 - m12) * invS
	}

	return q
}
