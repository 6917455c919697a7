package main

import (
	"fmt"
	"math"

	"github.com/akmonengine/geometry"
	"github.com/akmonengine/geometry/linalg"
	"github.com/akmonengine/geometry/shape"
	"github.com/akmonengine/geometry/stats"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// SetupScene places a ring of crates and a few balls around the origin.
func SetupScene() []geometry.Bounded {
	var items []geometry.Bounded

	crate := shape.AABox{Min: mgl32.Vec3{-0.5, -0.5, -0.5}, Max: mgl32.Vec3{0.5, 0.5, 0.5}}
	for i := 0; i < 12; i++ {
		angle := float32(i) * 2 * math.Pi / 12
		placement := mgl32.Translate3D(4*float32(math.Cos(float64(angle))), 4*float32(math.Sin(float64(angle))), 0).
			Mul4(mgl32.HomogRotate3DZ(angle))
		items = append(items, crate.Transform(placement))
	}

	items = append(items,
		shape.Sphere{Center: mgl32.Vec3{4, 0, 0.8}, Radius: 0.5},
		shape.Sphere{Center: mgl32.Vec3{0, 0, 0}, Radius: 1},
		shape.Triangle{A: mgl32.Vec3{-1, -1, -1}, B: mgl32.Vec3{1, -1, -1}, C: mgl32.Vec3{0, 1, -1}},
	)
	return items
}

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	geometry.SetLogger(logger)

	items := SetupScene()

	grid := geometry.NewGrid(geometry.DefaultGridConfig())
	grid.Build(items)

	events := geometry.NewEvents()
	events.Subscribe(geometry.OVERLAP_ENTER, func(event geometry.Event) {
		pair := event.(geometry.OverlapEnterEvent).Pair
		fmt.Printf("  enter %d <-> %d\n", pair.A, pair.B)
	})
	events.Subscribe(geometry.OVERLAP_EXIT, func(event geometry.Event) {
		pair := event.(geometry.OverlapExitEvent).Pair
		fmt.Printf("  exit  %d <-> %d\n", pair.A, pair.B)
	})

	fmt.Println("Overlapping bounds:")
	for pair := range grid.FindPairsParallel(4) {
		events.Record(pair)
	}
	events.Flush()

	// lift the first ball off the ring
	items[12] = items[12].(shape.Sphere).Translate(mgl32.Vec3{0, 0, 5})
	grid.Build(items)
	fmt.Println("After moving item 12:")
	events.Record(grid.FindPairs()...)
	events.Flush()

	ray := shape.Ray{Position: mgl32.Vec3{-10, 0, 0}, Direction: mgl32.Vec3{1, 0, 0}}
	if index, t, ok := grid.Raycast(ray, float32(math.Inf(1))); ok {
		fmt.Printf("Ray hits item %d at t=%.3f (%v)\n", index, t, ray.At(t))
	}

	var corners []mgl32.Vec3
	for _, item := range items {
		box := item.BoundingBox()
		c := box.Corners()
		corners = append(corners, c[:]...)
	}
	bounds, err := geometry.BoundsOf(corners, 4)
	if err != nil {
		logger.Fatal("bounds", zap.Error(err))
	}
	sphere, err := shape.SphereFromPoints(corners)
	if err != nil {
		logger.Fatal("sphere", zap.Error(err))
	}
	fmt.Printf("Scene box: %v -> %v\n", bounds.Min, bounds.Max)
	fmt.Printf("Scene sphere: %v r=%.3f\n", sphere.Center, sphere.Radius)

	centroid, err := stats.AverageVec3(corners)
	if err != nil {
		logger.Fatal("centroid", zap.Error(err))
	}
	fmt.Printf("Corner centroid: %v\n", centroid)

	ground := shape.PlaneFromNormalAndPoint(mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 0, -1})
	for i, item := range items {
		fmt.Printf("  item %2d vs ground: %v\n", i, item.BoundingBox().IntersectsPlane(ground))
	}

	placement := linalg.Transform{
		Translation: mgl32.Vec3{1, 2, 3},
		Rotation:    mgl32.QuatRotate(math.Pi/4, mgl32.Vec3{0, 1, 0}),
		Scale:       mgl32.Vec3{2, 3, 4},
	}
	decomposed, err := linalg.Decompose(placement.Matrix())
	if err != nil {
		logger.Fatal("decompose", zap.Error(err))
	}
	fmt.Printf("Decomposed: T=%v S=%v\n", decomposed.Translation, decomposed.Scale)

	a := shape.Sphere{Center: mgl32.Vec3{0, 0, 0}, Radius: 1}
	b := shape.AABox{Min: mgl32.Vec3{0.5, 0.5, 0.5}, Max: mgl32.Vec3{2, 2, 2}}
	fmt.Printf("Sphere overlaps box: %v\n", geometry.Overlaps(a, b))
}
