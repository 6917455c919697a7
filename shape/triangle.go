package shape

import "github.com/go-gl/mathgl/mgl32"

// Triangle is a triangle in 3D, wound A, B, C.
type Triangle struct {
	A, B, C mgl32.Vec3
}

// Normal returns the unit normal following the winding. A degenerate
// triangle gives a NaN normal.
func (t Triangle) Normal() mgl32.Vec3 {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A)).Normalize()
}

func (t Triangle) Area() float32 {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A)).Len() * 0.5
}

// HasArea reports whether all three vertices are distinct.
func (t Triangle) HasArea() bool {
	return t.A != t.B && t.B != t.C && t.C != t.A
}

func (t Triangle) Center() mgl32.Vec3 {
	return t.A.Add(t.B).Add(t.C).Mul(1.0 / 3.0)
}

func (t Triangle) Plane() Plane {
	return PlaneFromVertices(t.A, t.B, t.C)
}

func (t Triangle) BoundingBox() AABox {
	return AABox{
		Min: minVec3(t.A, minVec3(t.B, t.C)),
		Max: maxVec3(t.A, maxVec3(t.B, t.C)),
	}
}

func (t Triangle) BoundingSphere() Sphere {
	// never fails on three points
	s, _ := SphereFromPoints([]mgl32.Vec3{t.A, t.B, t.C})
	return s
}

func (t Triangle) Transform(m mgl32.Mat4) Triangle {
	return Triangle{
		A: mulPoint(m, t.A),
		B: mulPoint(m, t.B),
		C: mulPoint(m, t.C),
	}
}

// Support returns the vertex furthest along direction.
func (t Triangle) Support(direction mgl32.Vec3) mgl32.Vec3 {
	best := t.A
	bestDot := t.A.Dot(direction)

	if d := t.B.Dot(direction); d > bestDot {
		best, bestDot = t.B, d
	}
	if d := t.C.Dot(direction); d > bestDot {
		best = t.C
	}

	return best
}

func (t Triangle) Centroid() mgl32.Vec3 {
	return t.Center()
}
