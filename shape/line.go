package shape

import "github.com/go-gl/mathgl/mgl32"

// Line is the segment from A to B.
type Line struct {
	A, B mgl32.Vec3
}

func (l Line) Vector() mgl32.Vec3 {
	return l.B.Sub(l.A)
}

func (l Line) Length() float32 {
	return l.Vector().Len()
}

func (l Line) LengthSquared() float32 {
	return l.Vector().LenSqr()
}

func (l Line) Midpoint() mgl32.Vec3 {
	return l.A.Add(l.B).Mul(0.5)
}

func (l Line) BoundingBox() AABox {
	return AABox{Min: minVec3(l.A, l.B), Max: maxVec3(l.A, l.B)}
}

// Support returns the endpoint furthest along direction.
func (l Line) Support(direction mgl32.Vec3) mgl32.Vec3 {
	if l.B.Dot(direction) > l.A.Dot(direction) {
		return l.B
	}
	return l.A
}

func (l Line) Centroid() mgl32.Vec3 {
	return l.Midpoint()
}
