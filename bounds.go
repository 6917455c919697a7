package geometry

import (
	"github.com/akmonengine/geometry/gjk"
	"github.com/akmonengine/geometry/shape"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// BoundsOf returns the smallest box containing every point, folding chunks
// of the slice on workers goroutines.
func BoundsOf(points []mgl32.Vec3, workers int) (shape.AABox, error) {
	if len(points) == 0 {
		return shape.EmptyAABox(), errors.Wrap(shape.ErrNoPoints, "bounds")
	}

	spans := chunks(len(points), workers)
	partial := make([]shape.AABox, len(spans))
	slots := make([]int, len(spans))
	for i := range slots {
		slots[i] = i
	}

	err := task(workers, slots, func(slot int) error {
		s := spans[slot]
		box, err := shape.AABoxFromPoints(points[s.start:s.end])
		if err != nil {
			return errors.Wrapf(err, "bounds of points [%d, %d)", s.start, s.end)
		}
		partial[slot] = box
		return nil
	})
	if err != nil {
		return shape.EmptyAABox(), err
	}

	Logger().Debug("bounds computed",
		zap.Int("points", len(points)),
		zap.Int("workers", len(spans)),
	)

	box := shape.EmptyAABox()
	for _, p := range partial {
		box = box.Merge(p)
	}
	return box, nil
}

// Overlaps reports whether two convex shapes share at least one point.
func Overlaps(a, b gjk.Convex) bool {
	return gjk.Intersects(a, b)
}
