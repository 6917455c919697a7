package shape

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// AABox2D is the 2D counterpart of AABox.
type AABox2D struct {
	Min mgl32.Vec2
	Max mgl32.Vec2
}

func EmptyAABox2D() AABox2D {
	pos, neg := inf(1), inf(-1)
	return AABox2D{
		Min: mgl32.Vec2{pos, pos},
		Max: mgl32.Vec2{neg, neg},
	}
}

func AABox2DFromPoints(points []mgl32.Vec2) (AABox2D, error) {
	if len(points) == 0 {
		return EmptyAABox2D(), errors.Wrap(ErrNoPoints, "bounding box 2d")
	}

	box := AABox2D{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		box = box.Expand(p)
	}
	return box, nil
}

func (a AABox2D) IsValid() bool {
	return a.Min.X() <= a.Max.X() && a.Min.Y() <= a.Max.Y()
}

func (a AABox2D) IsEmpty() bool {
	return a.Min.X() > a.Max.X() || a.Min.Y() > a.Max.Y()
}

func (a AABox2D) Center() mgl32.Vec2 {
	return a.Min.Add(a.Max).Mul(0.5)
}

func (a AABox2D) Extent() mgl32.Vec2 {
	return a.Max.Sub(a.Min).Mul(0.5)
}

func (a AABox2D) Area() float32 {
	d := a.Max.Sub(a.Min)
	return d.X() * d.Y()
}

// Corners returns the corners counter-clockwise starting at (Min.X, Max.Y).
func (a AABox2D) Corners() [4]mgl32.Vec2 {
	return [4]mgl32.Vec2{
		{a.Min.X(), a.Max.Y()},
		{a.Max.X(), a.Max.Y()},
		{a.Max.X(), a.Min.Y()},
		{a.Min.X(), a.Min.Y()},
	}
}

func (a AABox2D) ContainsPoint(point mgl32.Vec2) bool {
	return point.X() >= a.Min.X() && point.X() <= a.Max.X() &&
		point.Y() >= a.Min.Y() && point.Y() <= a.Max.Y()
}

func (a AABox2D) ContainsBox(other AABox2D) ContainmentType {
	if !a.Overlaps(other) {
		return Disjoint
	}

	if other.Min.X() >= a.Min.X() && other.Max.X() <= a.Max.X() &&
		other.Min.Y() >= a.Min.Y() && other.Max.Y() <= a.Max.Y() {
		return Contains
	}

	return Intersects
}

func (a AABox2D) Overlaps(other AABox2D) bool {
	return a.Max.X() >= other.Min.X() && a.Min.X() <= other.Max.X() &&
		a.Max.Y() >= other.Min.Y() && a.Min.Y() <= other.Max.Y()
}

func (a AABox2D) Merge(other AABox2D) AABox2D {
	return AABox2D{
		Min: mgl32.Vec2{min(a.Min.X(), other.Min.X()), min(a.Min.Y(), other.Min.Y())},
		Max: mgl32.Vec2{max(a.Max.X(), other.Max.X()), max(a.Max.Y(), other.Max.Y())},
	}
}

func (a AABox2D) Expand(point mgl32.Vec2) AABox2D {
	return a.Merge(AABox2D{Min: point, Max: point})
}
