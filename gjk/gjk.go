// Package gjk implements the Gilbert-Johnson-Keerthi overlap test between
// convex shapes.
//
// Two convex sets overlap when their Minkowski difference A - B contains the
// origin. GJK walks a simplex (point, segment, triangle, tetrahedron) of
// support points of A - B towards the origin and stops as soon as the origin
// is enclosed or proven out of reach. Only a support mapping is needed from
// each shape, so boxes, spheres, triangles and segments share one code path.
//
// References:
//   - Gilbert, Johnson, Keerthi: "A Fast Procedure for Computing the Distance Between
//     Complex Objects in Three-Dimensional Space" (1988)
//   - Van den Bergen: "Collision Detection in Interactive 3D Environments" (2003)
package gjk

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	maxIterations = 32

	// squared length thresholds under which a vector is considered null
	seedEpsilon       = 1e-8
	originEpsilon     = 1e-16
	degenerateEpsilon = 1e-8
	flatEpsilon       = 1e-10
)

// Convex is a convex set described by its support mapping.
type Convex interface {
	// Support returns the point of the set furthest along direction.
	Support(direction mgl32.Vec3) mgl32.Vec3
	// Centroid returns a point inside the set, used to seed the search.
	Centroid() mgl32.Vec3
}

// Simplex holds 1 to 4 support points of the Minkowski difference, the most
// recent one last. Only the first Count points are meaningful.
type Simplex struct {
	Points [4]mgl32.Vec3
	Count  int
}

func (s *Simplex) Reset() {
	s.Count = 0
}

func (s *Simplex) set(points ...mgl32.Vec3) {
	s.Count = copy(s.Points[:], points)
}

// SimplexPool recycles simplices across Intersects calls.
var SimplexPool = sync.Pool{
	New: func() interface{} {
		return &Simplex{}
	},
}

// Intersects runs GJK with a pooled simplex.
func Intersects(a, b Convex) bool {
	simplex := SimplexPool.Get().(*Simplex)
	simplex.Reset()
	defer SimplexPool.Put(simplex)

	return GJK(a, b, simplex)
}

// MinkowskiSupport returns the support point of A - B along direction:
// the furthest point of A along direction minus the furthest point of B
// along the opposite direction.
func MinkowskiSupport(a, b Convex, direction mgl32.Vec3) mgl32.Vec3 {
	supportA := a.Support(direction)
	supportB := b.Support(direction.Mul(-1))
	return supportA.Sub(supportB)
}

// GJK reports whether a and b overlap. The simplex is used as scratch space
// and is left holding the last simplex built (a tetrahedron enclosing the
// origin on overlap, in the general case).
func GJK(a, b Convex, simplex *Simplex) bool {
	direction := b.Centroid().Sub(a.Centroid())
	if direction.LenSqr() < seedEpsilon {
		direction = mgl32.Vec3{1, 0, 0}
	}

	simplex.set(MinkowskiSupport(a, b, direction))
	direction = simplex.Points[0].Mul(-1)

	// first support point on the origin: the shapes touch
	if direction.LenSqr() < originEpsilon {
		return true
	}

	for i := 0; i < maxIterations; i++ {
		newPoint := MinkowskiSupport(a, b, direction)

		// the furthest point towards the origin does not pass it: separated
		if newPoint.Dot(direction) <= 0 {
			return false
		}

		simplex.Points[simplex.Count] = newPoint
		simplex.Count++

		if containsOrigin(simplex, &direction) {
			return true
		}
	}

	// not converged, report a miss
	return false
}

// containsOrigin reduces the simplex to its feature closest to the origin
// and updates the search direction. Only a tetrahedron can enclose the
// origin, except in the degenerate cases where the origin lies exactly on a
// lower dimensional simplex.
func containsOrigin(simplex *Simplex, direction *mgl32.Vec3) bool {
	switch simplex.Count {
	case 2:
		return line(simplex, direction)
	case 3:
		return triangle(simplex, direction)
	case 4:
		return tetrahedron(simplex, direction)
	}
	return false
}

// line handles the segment [B, A], A being the newest point.
func line(simplex *Simplex, direction *mgl32.Vec3) bool {
	a := simplex.Points[1]
	b := simplex.Points[0]
	ab := b.Sub(a)
	ao := a.Mul(-1)

	if ab.LenSqr() < degenerateEpsilon {
		if ao.LenSqr() < degenerateEpsilon {
			return true
		}
		simplex.set(a)
		*direction = ao
		return false
	}

	// origin behind A: only A is useful
	if ab.Dot(ao) <= 0 {
		simplex.set(a)
		*direction = ao
		return false
	}

	abPerp := ab.Cross(ao).Cross(ab)
	if abPerp.LenSqr() < degenerateEpsilon {
		// origin on the segment
		return true
	}

	*direction = abPerp
	return false
}

// triangle handles [C, B, A], A being the newest point.
func triangle(simplex *Simplex, direction *mgl32.Vec3) bool {
	a := simplex.Points[2]
	b := simplex.Points[1]
	c := simplex.Points[0]

	ab := b.Sub(a)
	ac := c.Sub(a)
	ao := a.Mul(-1)

	abc := ab.Cross(ac)

	// collinear points: fall back to the segment [B, A]
	if abc.LenSqr() < flatEpsilon {
		simplex.set(b, a)
		return line(simplex, direction)
	}

	// edge AB region
	if ab.Cross(abc).Dot(ao) > 0 {
		simplex.set(b, a)
		*direction = ab.Cross(ao).Cross(ab)
		return false
	}

	// edge AC region
	if abc.Cross(ac).Dot(ao) > 0 {
		simplex.set(c, a)
		*direction = ac.Cross(ao).Cross(ac)
		return false
	}

	if abc.Dot(ao) > 0 {
		*direction = abc
	} else {
		// below the face: flip the winding so that abc faces the origin
		simplex.set(b, c, a)
		*direction = abc.Mul(-1)
	}

	return false
}

// tetrahedron handles [D, C, B, A], A being the newest point. Face normals
// are oriented away from the opposite vertex before testing the origin.
func tetrahedron(simplex *Simplex, direction *mgl32.Vec3) bool {
	a := simplex.Points[3]
	b := simplex.Points[2]
	c := simplex.Points[1]
	d := simplex.Points[0]

	ab := b.Sub(a)
	ac := c.Sub(a)
	ad := d.Sub(a)
	ao := a.Mul(-1)

	abc := outward(ab.Cross(ac), ad)
	acd := outward(ac.Cross(ad), ab)
	adb := outward(ad.Cross(ab), ac)

	if abc.LenSqr() < flatEpsilon || acd.LenSqr() < flatEpsilon || adb.LenSqr() < flatEpsilon {
		simplex.set(c, b, a)
		return triangle(simplex, direction)
	}

	switch {
	case abc.Dot(ao) > 0:
		simplex.set(c, b, a)
	case acd.Dot(ao) > 0:
		simplex.set(d, c, a)
	case adb.Dot(ao) > 0:
		simplex.set(b, d, a)
	default:
		return true
	}

	return triangle(simplex, direction)
}

// outward flips normal when it points towards opposite.
func outward(normal, opposite mgl32.Vec3) mgl32.Vec3 {
	if normal.Dot(opposite) > 0 {
		return normal.Mul(-1)
	}
	return normal
}
