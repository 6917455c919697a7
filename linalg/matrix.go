// Package linalg implements the numerically delicate 4x4 matrix operations the
// bounding-volume code relies on: determinant, inverse and the decomposition
// of an affine matrix into scale, rotation and translation.
//
// Matrices are mgl32.Mat4 values (column-major, column vectors). Entries are
// named after their logical row and column: a..d is the first row, m..p the
// last one, so m.At(0, 0) is a and m.At(3, 3) is p.
//
// References:
//   - Cramer's rule / adjugate inverse with shared 2x2 minors, as found in
//     most SIMD-free math libraries (28 multiplications for the determinant).
//   - Shoemake: "Matrix Animation and Polar Decomposition" (1992)
package linalg

import (
	"math"

	"github.com/akmonengine/geometry/internal/logger"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	// FloatEpsilon is the machine epsilon of float32. A determinant whose
	// magnitude is below it is treated as zero by Invert.
	FloatEpsilon float32 = 1.1920929e-7
)

// ErrNoInverse is returned by Inverse when the matrix is singular.
var ErrNoInverse = errors.New("linalg: matrix has no inverse")

// Determinant computes the determinant of m by cofactor expansion along the
// first row. The six 2x2 minors of the two bottom rows are computed once and
// shared by the four cofactors.
func Determinant(m mgl32.Mat4) float32 {
	a, b, c, d := m.At(0, 0), m.At(0, 1), m.At(0, 2), m.At(0, 3)
	e, f, g, h := m.At(1, 0), m.At(1, 1), m.At(1, 2), m.At(1, 3)
	i, j, k, l := m.At(2, 0), m.At(2, 1), m.At(2, 2), m.At(2, 3)
	mm, n, o, p := m.At(3, 0), m.At(3, 1), m.At(3, 2), m.At(3, 3)

	kpLo := k*p - l*o
	jpLn := j*p - l*n
	joKn := j*o - k*n
	ipLm := i*p - l*mm
	ioKm := i*o - k*mm
	inJm := i*n - j*mm

	return a*(f*kpLo-g*jpLn+h*joKn) -
		b*(e*kpLo-g*ipLm+h*ioKm) +
		c*(e*jpLn-f*ipLm+h*inJm) -
		d*(e*joKn-f*ioKm+g*inJm)
}

// NaNMat4 returns a matrix with NaN in every cell. Invert uses it as the
// "no inverse" signal value.
func NaNMat4() mgl32.Mat4 {
	nan := float32(math.NaN())
	var m mgl32.Mat4
	for i := range m {
		m[i] = nan
	}
	return m
}

// Invert computes the inverse of m as adjugate / determinant.
//
// When |det| < FloatEpsilon the matrix is considered singular: Invert returns
// false and a matrix filled with NaN. Callers must check the boolean; Inverse
// is the checked variant.
func Invert(m mgl32.Mat4) (mgl32.Mat4, bool) {
	a, b, c, d := m.At(0, 0), m.At(0, 1), m.At(0, 2), m.At(0, 3)
	e, f, g, h := m.At(1, 0), m.At(1, 1), m.At(1, 2), m.At(1, 3)
	i, j, k, l := m.At(2, 0), m.At(2, 1), m.At(2, 2), m.At(2, 3)
	mm, n, o, p := m.At(3, 0), m.At(3, 1), m.At(3, 2), m.At(3, 3)

	kpLo := k*p - l*o
	jpLn := j*p - l*n
	joKn := j*o - k*n
	ipLm := i*p - l*mm
	ioKm := i*o - k*mm
	inJm := i*n - j*mm

	a11 := +(f*kpLo - g*jpLn + h*joKn)
	a12 := -(e*kpLo - g*ipLm + h*ioKm)
	a13 := +(e*jpLn - f*ipLm + h*inJm)
	a14 := -(e*joKn - f*ioKm + g*inJm)

	det := a*a11 + b*a12 + c*a13 + d*a14
	if mgl32.Abs(det) < FloatEpsilon {
		return NaNMat4(), false
	}

	invDet := 1 / det
	var r mgl32.Mat4

	r.Set(0, 0, a11*invDet)
	r.Set(1, 0, a12*invDet)
	r.Set(2, 0, a13*invDet)
	r.Set(3, 0, a14*invDet)

	r.Set(0, 1, -(b*kpLo-c*jpLn+d*joKn)*invDet)
	r.Set(1, 1, +(a*kpLo-c*ipLm+d*ioKm)*invDet)
	r.Set(2, 1, -(a*jpLn-b*ipLm+d*inJm)*invDet)
	r.Set(3, 1, +(a*joKn-b*ioKm+c*inJm)*invDet)

	gpHo := g*p - h*o
	fpHn := f*p - h*n
	foGn := f*o - g*n
	epHm := e*p - h*mm
	eoGm := e*o - g*mm
	enFm := e*n - f*mm

	r.Set(0, 2, +(b*gpHo-c*fpHn+d*foGn)*invDet)
	r.Set(1, 2, -(a*gpHo-c*epHm+d*eoGm)*invDet)
	r.Set(2, 2, +(a*fpHn-b*epHm+d*enFm)*invDet)
	r.Set(3, 2, -(a*foGn-b*eoGm+c*enFm)*invDet)

	glHk := g*l - h*k
	flHj := f*l - h*j
	fkGj := f*k - g*j
	elHi := e*l - h*i
	ekGi := e*k - g*i
	ejFi := e*j - f*i

	r.Set(0, 3, -(b*glHk-c*flHj+d*fkGj)*invDet)
	r.Set(1, 3, +(a*glHk-c*elHi+d*ekGi)*invDet)
	r.Set(2, 3, -(a*flHj-b*elHi+d*ejFi)*invDet)
	r.Set(3, 3, +(a*fkGj-b*ekGi+c*ejFi)*invDet)

	return r, true
}

// Inverse is the checked form of Invert: a singular matrix yields
// ErrNoInverse instead of a NaN matrix.
func Inverse(m mgl32.Mat4) (mgl32.Mat4, error) {
	inv, ok := Invert(m)
	if !ok {
		det := Determinant(m)
		logger.Get().Debug("singular matrix", zap.Float32("det", det))
		return mgl32.Mat4{}, errors.Wrapf(ErrNoInverse, "determinant %g", det)
	}
	return inv, nil
}
