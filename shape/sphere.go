package shape

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// Sphere is a bounding sphere. Radius is expected to be non-negative.
type Sphere struct {
	Center mgl32.Vec3
	Radius float32
}

// SphereFromPoints computes a bounding sphere of points with Ritter's
// algorithm: the initial sphere spans the two most distant points among the
// per-axis extreme points, then grows in a single pass to enclose every point
// left outside. The result is not minimal, usually within a few percent.
func SphereFromPoints(points []mgl32.Vec3) (Sphere, error) {
	if len(points) == 0 {
		return Sphere{}, errors.Wrap(ErrNoPoints, "bounding sphere")
	}

	var extremes [6]mgl32.Vec3
	for i := range extremes {
		extremes[i] = points[0]
	}
	for _, p := range points[1:] {
		for axis := 0; axis < 3; axis++ {
			if p[axis] < extremes[2*axis][axis] {
				extremes[2*axis] = p
			}
			if p[axis] > extremes[2*axis+1][axis] {
				extremes[2*axis+1] = p
			}
		}
	}

	a, b := extremes[0], extremes[1]
	maxDistSqr := b.Sub(a).LenSqr()
	for i := 0; i < len(extremes); i++ {
		for j := i + 1; j < len(extremes); j++ {
			if d := extremes[j].Sub(extremes[i]).LenSqr(); d > maxDistSqr {
				a, b, maxDistSqr = extremes[i], extremes[j], d
			}
		}
	}

	center := a.Add(b).Mul(0.5)
	radius := sqrt(maxDistSqr) * 0.5
	radiusSqr := radius * radius

	for _, p := range points {
		diff := p.Sub(center)
		distSqr := diff.LenSqr()
		if distSqr <= radiusSqr {
			continue
		}

		dist := sqrt(distSqr)
		// move the far side of the sphere out to p, keep the opposite side
		newRadius := (radius + dist) * 0.5
		center = center.Add(diff.Mul((newRadius - radius) / dist))
		radius = newRadius
		radiusSqr = radius * radius
	}

	return Sphere{Center: center, Radius: radius}, nil
}

// SphereFromBox returns the sphere circumscribing box.
func SphereFromBox(box AABox) Sphere {
	return Sphere{
		Center: box.Center(),
		Radius: box.Diagonal().Len() * 0.5,
	}
}

// Merge returns a sphere enclosing both s and other. When one already
// contains the other it is returned unchanged.
func (s Sphere) Merge(other Sphere) Sphere {
	ocenterToAcenter := other.Center.Sub(s.Center)
	distance := ocenterToAcenter.Len()

	// other is inside s
	if distance <= s.Radius+other.Radius && distance <= s.Radius-other.Radius {
		return s
	}
	// s is inside other
	if distance <= s.Radius+other.Radius && distance <= other.Radius-s.Radius {
		return other
	}

	leftRadius := max(s.Radius-distance, other.Radius)
	rightRadius := max(s.Radius+distance, other.Radius)
	// (leftRadius + rightRadius) / 2 along the axis, from s.Center
	ocenterToAcenter = ocenterToAcenter.Add(
		ocenterToAcenter.Mul((leftRadius - rightRadius) / (2 * distance)),
	)

	return Sphere{
		Center: s.Center.Add(ocenterToAcenter),
		Radius: (leftRadius + rightRadius) * 0.5,
	}
}

// ContainsPoint reports Contains for a point strictly inside, Intersects for
// a point on the surface.
func (s Sphere) ContainsPoint(point mgl32.Vec3) ContainmentType {
	distSqr := point.Sub(s.Center).LenSqr()
	radiusSqr := s.Radius * s.Radius

	if distSqr > radiusSqr {
		return Disjoint
	}
	if distSqr < radiusSqr {
		return Contains
	}
	return Intersects
}

func (s Sphere) ContainsSphere(other Sphere) ContainmentType {
	distSqr := other.Center.Sub(s.Center).LenSqr()

	sumRadius := s.Radius + other.Radius
	if distSqr > sumRadius*sumRadius {
		return Disjoint
	}

	diffRadius := s.Radius - other.Radius
	if other.Radius <= s.Radius && distSqr <= diffRadius*diffRadius {
		return Contains
	}

	return Intersects
}

// ContainsBox reports Contains when all eight corners of box are inside or on
// the sphere.
func (s Sphere) ContainsBox(box AABox) ContainmentType {
	inside := true
	for _, corner := range box.Corners() {
		if s.ContainsPoint(corner) == Disjoint {
			inside = false
			break
		}
	}
	if inside {
		return Contains
	}

	if box.DistanceSquared(s.Center) <= s.Radius*s.Radius {
		return Intersects
	}

	return Disjoint
}

// IntersectsSphere reports whether the two spheres overlap or touch.
func (s Sphere) IntersectsSphere(other Sphere) bool {
	sumRadius := s.Radius + other.Radius
	return other.Center.Sub(s.Center).LenSqr() <= sumRadius*sumRadius
}

func (s Sphere) IntersectsBox(box AABox) bool {
	return box.IntersectsSphere(s)
}

// IntersectsPlane classifies the sphere against a normalized plane.
func (s Sphere) IntersectsPlane(plane Plane) PlaneIntersectionType {
	distance := plane.DotCoordinate(s.Center)

	if distance > s.Radius {
		return Front
	}
	if distance < -s.Radius {
		return Back
	}
	return Intersecting
}

func (s Sphere) Translate(offset mgl32.Vec3) Sphere {
	return Sphere{Center: s.Center.Add(offset), Radius: s.Radius}
}

// Transform returns a sphere enclosing s transformed by m. The radius is
// scaled by the largest axis scale of m, so the result stays conservative
// under non-uniform scaling.
func (s Sphere) Transform(m mgl32.Mat4) Sphere {
	maxScaleSqr := max(
		m.Col(0).Vec3().LenSqr(),
		m.Col(1).Vec3().LenSqr(),
		m.Col(2).Vec3().LenSqr(),
	)

	return Sphere{
		Center: mulPoint(m, s.Center),
		Radius: s.Radius * sqrt(maxScaleSqr),
	}
}

// Distance is the signed distance from point to the sphere surface, negative
// inside.
func (s Sphere) Distance(point mgl32.Vec3) float32 {
	return point.Sub(s.Center).Len() - s.Radius
}

func (s Sphere) BoundingBox() AABox {
	r := mgl32.Vec3{s.Radius, s.Radius, s.Radius}
	return AABox{Min: s.Center.Sub(r), Max: s.Center.Add(r)}
}

// Support returns the point of the sphere furthest along direction.
func (s Sphere) Support(direction mgl32.Vec3) mgl32.Vec3 {
	if direction.LenSqr() < 1e-12 {
		return s.Center.Add(mgl32.Vec3{s.Radius, 0, 0})
	}
	return s.Center.Add(direction.Normalize().Mul(s.Radius))
}

func (s Sphere) Centroid() mgl32.Vec3 {
	return s.Center
}
