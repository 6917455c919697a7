package shape

import "github.com/go-gl/mathgl/mgl32"

// Ray is a half-line starting at Position. Direction does not need to be
// unit length: hit distances are parameters t of Position + t*Direction.
type Ray struct {
	Position  mgl32.Vec3
	Direction mgl32.Vec3
}

// At returns the point of the ray at parameter t.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Position.Add(r.Direction.Mul(t))
}

// Transform returns the ray transformed by m: the origin as a point, the
// direction as a vector.
func (r Ray) Transform(m mgl32.Mat4) Ray {
	return Ray{
		Position:  mulPoint(m, r.Position),
		Direction: m.Mul4x1(r.Direction.Vec4(0)).Vec3(),
	}
}

// IntersectsBox returns the entry parameter of the ray into box, using the
// slab method. A ray starting inside the box hits at 0.
func (r Ray) IntersectsBox(box AABox) (float32, bool) {
	var tMin, tMax float32
	hasMin, hasMax := false, false

	for axis := 0; axis < 3; axis++ {
		pos, dir := r.Position[axis], r.Direction[axis]
		lo, hi := box.Min[axis], box.Max[axis]

		if mgl32.Abs(dir) < RayEpsilon {
			if pos < lo || pos > hi {
				return 0, false
			}
			continue
		}

		t1 := (lo - pos) / dir
		t2 := (hi - pos) / dir
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		if hasMin && hasMax && (tMin > t2 || t1 > tMax) {
			return 0, false
		}

		if !hasMin || t1 > tMin {
			tMin, hasMin = t1, true
		}
		if !hasMax || t2 < tMax {
			tMax, hasMax = t2, true
		}
	}

	// parallel to every slab: no parameter was ever computed
	if !hasMin {
		return 0, false
	}

	// starting inside the box
	if tMin < 0 && tMax > 0 {
		return 0, true
	}
	// the box is behind the ray
	if tMin < 0 {
		return 0, false
	}

	return tMin, true
}

// IntersectsPlane returns the parameter at which the ray crosses plane.
// A ray parallel to the plane (within tolerance) never hits; a hit slightly
// behind the origin, no further than tolerance, is clamped to 0.
func (r Ray) IntersectsPlane(plane Plane, tolerance float32) (float32, bool) {
	den := r.Direction.Dot(plane.Normal)
	if mgl32.Abs(den) < tolerance {
		return 0, false
	}

	t := (-plane.D - plane.Normal.Dot(r.Position)) / den
	if t < 0 {
		if t < -tolerance {
			return 0, false
		}
		return 0, true
	}

	return t, true
}

// IntersectsPlaneDefault is IntersectsPlane with Tolerance.
func (r Ray) IntersectsPlaneDefault(plane Plane) (float32, bool) {
	return r.IntersectsPlane(plane, Tolerance)
}

// IntersectsSphere returns the parameter of the first crossing of the sphere
// surface. A ray starting inside the sphere hits at 0. The returned distance
// is only metric when Direction is unit length.
func (r Ray) IntersectsSphere(sphere Sphere) (float32, bool) {
	diff := sphere.Center.Sub(r.Position)
	diffLenSqr := diff.LenSqr()
	radiusSqr := sphere.Radius * sphere.Radius

	if diffLenSqr < radiusSqr {
		return 0, true
	}

	projection := r.Direction.Dot(diff)
	if projection < 0 {
		return 0, false
	}

	discriminant := radiusSqr + projection*projection - diffLenSqr
	if discriminant < 0 {
		return 0, false
	}

	return projection - sqrt(discriminant), true
}

// IntersectsTriangle is the Möller–Trumbore ray/triangle test. Both faces of
// the triangle are hit; hits closer than tolerance are rejected.
func (r Ray) IntersectsTriangle(tri Triangle, tolerance float32) (float32, bool) {
	edge1 := tri.B.Sub(tri.A)
	edge2 := tri.C.Sub(tri.A)

	h := r.Direction.Cross(edge2)
	a := edge1.Dot(h)
	if a > -tolerance && a < tolerance {
		return 0, false
	}

	f := 1 / a
	s := r.Position.Sub(tri.A)
	u := f * s.Dot(h)
	if u < 0 || u > 1 {
		return 0, false
	}

	q := s.Cross(edge1)
	v := f * r.Direction.Dot(q)
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t := f * edge2.Dot(q)
	if t > tolerance {
		return t, true
	}

	return 0, false
}
