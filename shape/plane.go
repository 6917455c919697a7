package shape

import (
	"github.com/akmonengine/geometry/linalg"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// Plane is the set of points p satisfying Normal·p + D = 0.
// The normal does not have to be unit length unless Normalize is called;
// signed distances are only metric for a normalized plane.
type Plane struct {
	Normal mgl32.Vec3
	D      float32
}

// PlaneFromVertices builds the plane through three points, oriented by the
// winding p1, p2, p3. Collinear points give a NaN normal.
func PlaneFromVertices(p1, p2, p3 mgl32.Vec3) Plane {
	normal := p2.Sub(p1).Cross(p3.Sub(p1)).Normalize()
	return Plane{
		Normal: normal,
		D:      -normal.Dot(p1),
	}
}

// PlaneFromNormalAndPoint builds the plane with the given normal passing
// through point.
func PlaneFromNormalAndPoint(normal, point mgl32.Vec3) Plane {
	return Plane{
		Normal: normal,
		D:      -normal.Dot(point),
	}
}

// Normalize returns the plane scaled so that its normal has unit length.
// A plane that is already normalized is returned as is.
func (p Plane) Normalize() Plane {
	lenSqr := p.Normal.LenSqr()
	if mgl32.Abs(lenSqr-1) < FloatEpsilon {
		return p
	}

	l := sqrt(lenSqr)
	return Plane{
		Normal: p.Normal.Mul(1 / l),
		D:      p.D / l,
	}
}

// Transform returns the plane transformed by m. Planes transform with the
// inverse transpose of the point transform, so a singular m yields an error
// wrapping linalg.ErrNoInverse.
func (p Plane) Transform(m mgl32.Mat4) (Plane, error) {
	inv, err := linalg.Inverse(m)
	if err != nil {
		return Plane{}, errors.Wrap(err, "transform plane")
	}

	v := inv.Transpose().Mul4x1(p.Normal.Vec4(p.D))
	return Plane{Normal: v.Vec3(), D: v.W()}, nil
}

// TransformRotation rotates the plane normal around the origin. D is kept.
func (p Plane) TransformRotation(q mgl32.Quat) Plane {
	return Plane{Normal: q.Rotate(p.Normal), D: p.D}
}

// Dot returns the 4D dot product of the plane coefficients and v.
func (p Plane) Dot(v mgl32.Vec4) float32 {
	return p.Normal.Vec4(p.D).Dot(v)
}

// DotCoordinate evaluates the plane equation at a point (w = 1).
func (p Plane) DotCoordinate(point mgl32.Vec3) float32 {
	return p.Normal.Dot(point) + p.D
}

// DotNormal is the dot product of the normal and a direction (w = 0).
func (p Plane) DotNormal(v mgl32.Vec3) float32 {
	return p.Normal.Dot(v)
}

// ClassifyPoint returns the signed distance of point to the plane, scaled by
// the normal length. Positive values are in front of the plane.
func (p Plane) ClassifyPoint(point mgl32.Vec3) float32 {
	return p.DotCoordinate(point)
}

func (p Plane) IntersectsBox(box AABox) PlaneIntersectionType {
	return box.IntersectsPlane(p)
}

func (p Plane) IntersectsSphere(sphere Sphere) PlaneIntersectionType {
	return sphere.IntersectsPlane(p)
}
