// Package shape provides the bounding volumes and geometric primitives:
// planes, rays, spheres, axis-aligned boxes, triangles and segments.
//
// Every type is a small value type. Operations never mutate their receiver,
// they return new values, so all functions are safe for concurrent use.
//
// AABox, Sphere, Triangle and Line expose a support mapping (Support and
// Centroid) so they can be fed to the gjk package.
package shape

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

const (
	// Tolerance is the default tolerance of the ray/plane and ray/triangle
	// tests.
	Tolerance float32 = 1e-7
	// RayEpsilon is the magnitude under which a ray direction component is
	// treated as parallel to the corresponding slab.
	RayEpsilon float32 = 1e-6
	// FloatEpsilon is the machine epsilon of float32.
	FloatEpsilon float32 = 1.1920929e-7
)

// ErrNoPoints is returned when a bounding volume is built from an empty point
// set.
var ErrNoPoints = errors.New("shape: no points")

// ContainmentType describes how a volume relates to another one.
type ContainmentType int

const (
	Disjoint ContainmentType = iota
	Intersects
	Contains
)

func (c ContainmentType) String() string {
	switch c {
	case Disjoint:
		return "Disjoint"
	case Contains:
		return "Contains"
	case Intersects:
		return "Intersects"
	}
	return "ContainmentType(?)"
}

// PlaneIntersectionType describes on which side of a plane a volume lies.
type PlaneIntersectionType int

const (
	// Front is the half-space the plane normal points to.
	Front PlaneIntersectionType = iota
	Back
	Intersecting
)

func (p PlaneIntersectionType) String() string {
	switch p {
	case Front:
		return "Front"
	case Back:
		return "Back"
	case Intersecting:
		return "Intersecting"
	}
	return "PlaneIntersectionType(?)"
}

func sqrt(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

func inf(sign int) float32 {
	return float32(math.Inf(sign))
}

func minVec3(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{min(a[0], b[0]), min(a[1], b[1]), min(a[2], b[2])}
}

func maxVec3(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{max(a[0], b[0]), max(a[1], b[1]), max(a[2], b[2])}
}

// mulPoint transforms p as a point (w = 1) without the perspective divide.
func mulPoint(m mgl32.Mat4, p mgl32.Vec3) mgl32.Vec3 {
	return m.Mul4x1(p.Vec4(1)).Vec3()
}
