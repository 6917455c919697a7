package shape

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// AABox represents an axis-aligned bounding box
type AABox struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// Corner indices of the faces returned by Faces. Top is +Z, Front is +Y and
// Right is +X. Every face is wound so that (v1-v0)x(v2-v0) points into the
// box.
var (
	TopIndices    = [4]int{0, 1, 2, 3}
	BottomIndices = [4]int{7, 6, 5, 4}
	FrontIndices  = [4]int{4, 5, 1, 0}
	RightIndices  = [4]int{5, 6, 2, 1}
	BackIndices   = [4]int{6, 7, 3, 2}
	LeftIndices   = [4]int{7, 4, 0, 3}
)

// EmptyAABox returns the identity of Merge and Expand: Min at +Inf and Max at
// -Inf. It is neither valid nor containing anything.
func EmptyAABox() AABox {
	pos, neg := inf(1), inf(-1)
	return AABox{
		Min: mgl32.Vec3{pos, pos, pos},
		Max: mgl32.Vec3{neg, neg, neg},
	}
}

// AABoxFromPoints returns the smallest box containing every point.
func AABoxFromPoints(points []mgl32.Vec3) (AABox, error) {
	if len(points) == 0 {
		return EmptyAABox(), errors.Wrap(ErrNoPoints, "bounding box")
	}

	box := AABox{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		box.Min = minVec3(box.Min, p)
		box.Max = maxVec3(box.Max, p)
	}
	return box, nil
}

// IsValid reports whether Min <= Max on every axis. The Z axis is compared
// strictly, so a box that is flat along Z is not valid.
func (a AABox) IsValid() bool {
	return a.Min.X() <= a.Max.X() &&
		a.Min.Y() <= a.Max.Y() &&
		a.Min.Z() < a.Max.Z()
}

// IsEmpty reports whether the box is inverted on any axis, as EmptyAABox is.
func (a AABox) IsEmpty() bool {
	return a.Min.X() > a.Max.X() ||
		a.Min.Y() > a.Max.Y() ||
		a.Min.Z() > a.Max.Z()
}

func (a AABox) Center() mgl32.Vec3 {
	return a.Min.Add(a.Max).Mul(0.5)
}

// Extent returns the half size of the box on each axis.
func (a AABox) Extent() mgl32.Vec3 {
	return a.Max.Sub(a.Min).Mul(0.5)
}

// Diagonal returns Max - Min.
func (a AABox) Diagonal() mgl32.Vec3 {
	return a.Max.Sub(a.Min)
}

func (a AABox) Volume() float32 {
	d := a.Diagonal()
	return d.X() * d.Y() * d.Z()
}

func (a AABox) MaxSide() float32 {
	d := a.Diagonal()
	return max(d.X(), d.Y(), d.Z())
}

func (a AABox) MinSide() float32 {
	d := a.Diagonal()
	return min(d.X(), d.Y(), d.Z())
}

// CenterBottom returns the center of the bottom face (Y = Min.Y).
func (a AABox) CenterBottom() mgl32.Vec3 {
	c := a.Center()
	return mgl32.Vec3{c.X(), a.Min.Y(), c.Z()}
}

// Corners returns the 8 corners: the top face (Max.Z) first, then the bottom
// face (Min.Z), each starting at (Min.X, Max.Y).
func (a AABox) Corners() [8]mgl32.Vec3 {
	var corners [8]mgl32.Vec3
	a.CornersInto(corners[:])
	return corners
}

// CornersInto writes the corners, in the order of Corners, into dst which
// must hold at least 8 vectors.
func (a AABox) CornersInto(dst []mgl32.Vec3) {
	_ = dst[7]
	dst[0] = mgl32.Vec3{a.Min.X(), a.Max.Y(), a.Max.Z()}
	dst[1] = mgl32.Vec3{a.Max.X(), a.Max.Y(), a.Max.Z()}
	dst[2] = mgl32.Vec3{a.Max.X(), a.Min.Y(), a.Max.Z()}
	dst[3] = mgl32.Vec3{a.Min.X(), a.Min.Y(), a.Max.Z()}
	dst[4] = mgl32.Vec3{a.Min.X(), a.Max.Y(), a.Min.Z()}
	dst[5] = mgl32.Vec3{a.Max.X(), a.Max.Y(), a.Min.Z()}
	dst[6] = mgl32.Vec3{a.Max.X(), a.Min.Y(), a.Min.Z()}
	dst[7] = mgl32.Vec3{a.Min.X(), a.Min.Y(), a.Min.Z()}
}

// Faces returns the six faces in the order top, bottom, front, right, back,
// left, built from the index tables.
func (a AABox) Faces() [6][4]mgl32.Vec3 {
	corners := a.Corners()
	tables := [6][4]int{TopIndices, BottomIndices, FrontIndices, RightIndices, BackIndices, LeftIndices}

	var faces [6][4]mgl32.Vec3
	for f, indices := range tables {
		for i, index := range indices {
			faces[f][i] = corners[index]
		}
	}
	return faces
}

// ContainsPoint checks if a point is inside the AABox, boundary included
func (a AABox) ContainsPoint(point mgl32.Vec3) bool {
	return point.X() >= a.Min.X() && point.X() <= a.Max.X() &&
		point.Y() >= a.Min.Y() && point.Y() <= a.Max.Y() &&
		point.Z() >= a.Min.Z() && point.Z() <= a.Max.Z()
}

// ContainsBox classifies other against the box. Touching boxes intersect.
func (a AABox) ContainsBox(other AABox) ContainmentType {
	if !a.Overlaps(other) {
		return Disjoint
	}

	if other.Min.X() >= a.Min.X() && other.Max.X() <= a.Max.X() &&
		other.Min.Y() >= a.Min.Y() && other.Max.Y() <= a.Max.Y() &&
		other.Min.Z() >= a.Min.Z() && other.Max.Z() <= a.Max.Z() {
		return Contains
	}

	return Intersects
}

// ContainsSphere reports Contains when the sphere fits inside the box,
// surface touching the faces included.
func (a AABox) ContainsSphere(sphere Sphere) ContainmentType {
	c, r := sphere.Center, sphere.Radius

	if c.X()-a.Min.X() >= r && c.Y()-a.Min.Y() >= r && c.Z()-a.Min.Z() >= r &&
		a.Max.X()-c.X() >= r && a.Max.Y()-c.Y() >= r && a.Max.Z()-c.Z() >= r {
		return Contains
	}

	if a.DistanceSquared(c) <= r*r {
		return Intersects
	}

	return Disjoint
}

// Overlaps checks if two AABoxes overlap
func (a AABox) Overlaps(other AABox) bool {
	// AABoxes overlap if they overlap on all three axes
	return a.Max.X() >= other.Min.X() && a.Min.X() <= other.Max.X() &&
		a.Max.Y() >= other.Min.Y() && a.Min.Y() <= other.Max.Y() &&
		a.Max.Z() >= other.Min.Z() && a.Min.Z() <= other.Max.Z()
}

// IntersectsBox is an alias of Overlaps.
func (a AABox) IntersectsBox(other AABox) bool {
	return a.Overlaps(other)
}

func (a AABox) IntersectsSphere(sphere Sphere) bool {
	return a.DistanceSquared(sphere.Center) <= sphere.Radius*sphere.Radius
}

// IntersectsPlane classifies the box against plane using only the two
// corners most and least advanced along the plane normal.
func (a AABox) IntersectsPlane(plane Plane) PlaneIntersectionType {
	var positive, negative mgl32.Vec3

	for axis := 0; axis < 3; axis++ {
		if plane.Normal[axis] >= 0 {
			positive[axis] = a.Max[axis]
			negative[axis] = a.Min[axis]
		} else {
			positive[axis] = a.Min[axis]
			negative[axis] = a.Max[axis]
		}
	}

	if plane.DotCoordinate(negative) > 0 {
		return Front
	}
	if plane.DotCoordinate(positive) < 0 {
		return Back
	}
	return Intersecting
}

// Merge returns the smallest box containing both boxes.
func (a AABox) Merge(other AABox) AABox {
	return AABox{
		Min: minVec3(a.Min, other.Min),
		Max: maxVec3(a.Max, other.Max),
	}
}

// Expand returns the smallest box containing a and point.
func (a AABox) Expand(point mgl32.Vec3) AABox {
	return AABox{
		Min: minVec3(a.Min, point),
		Max: maxVec3(a.Max, point),
	}
}

// Intersection returns the overlap of both boxes. Disjoint boxes give an
// empty (inverted) box.
func (a AABox) Intersection(other AABox) AABox {
	return AABox{
		Min: maxVec3(a.Min, other.Min),
		Max: minVec3(a.Max, other.Max),
	}
}

func (a AABox) Translate(offset mgl32.Vec3) AABox {
	return AABox{Min: a.Min.Add(offset), Max: a.Max.Add(offset)}
}

// Scale scales the box by factor around its center.
func (a AABox) Scale(factor float32) AABox {
	center := a.Center()
	extent := a.Extent().Mul(factor)
	return AABox{Min: center.Sub(extent), Max: center.Add(extent)}
}

// Inflate grows the box by amount on every side. A negative amount shrinks
// it.
func (a AABox) Inflate(amount float32) AABox {
	delta := mgl32.Vec3{amount, amount, amount}
	return AABox{Min: a.Min.Sub(delta), Max: a.Max.Add(delta)}
}

// Transform returns the box bounding the 8 corners of a transformed by m.
func (a AABox) Transform(m mgl32.Mat4) AABox {
	corners := a.Corners()

	worldCorner := mulPoint(m, corners[0])
	box := AABox{Min: worldCorner, Max: worldCorner}

	for i := 1; i < 8; i++ {
		worldCorner = mulPoint(m, corners[i])
		box.Min = minVec3(box.Min, worldCorner)
		box.Max = maxVec3(box.Max, worldCorner)
	}

	return box
}

// ClosestPoint clamps point into the box.
func (a AABox) ClosestPoint(point mgl32.Vec3) mgl32.Vec3 {
	return maxVec3(a.Min, minVec3(a.Max, point))
}

// DistanceSquared is the squared distance from point to the box, 0 inside.
func (a AABox) DistanceSquared(point mgl32.Vec3) float32 {
	var distSqr float32
	for axis := 0; axis < 3; axis++ {
		v := point[axis]
		if v < a.Min[axis] {
			d := a.Min[axis] - v
			distSqr += d * d
		} else if v > a.Max[axis] {
			d := v - a.Max[axis]
			distSqr += d * d
		}
	}
	return distSqr
}

func (a AABox) Distance(point mgl32.Vec3) float32 {
	return sqrt(a.DistanceSquared(point))
}

func (a AABox) BoundingBox() AABox {
	return a
}

// Support returns the corner of the box furthest along direction.
func (a AABox) Support(direction mgl32.Vec3) mgl32.Vec3 {
	support := a.Max

	if direction.X() < 0 {
		support[0] = a.Min.X()
	}
	if direction.Y() < 0 {
		support[1] = a.Min.Y()
	}
	if direction.Z() < 0 {
		support[2] = a.Min.Z()
	}

	return support
}

func (a AABox) Centroid() mgl32.Vec3 {
	return a.Center()
}
