package shape

import (
	"os"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type rayBoxTable struct {
	Box struct {
		Min []float32 `yaml:"min"`
		Max []float32 `yaml:"max"`
	} `yaml:"box"`
	Cases []rayBoxCase `yaml:"cases"`
}

type rayBoxCase struct {
	Name      string    `yaml:"name"`
	Min       []float32 `yaml:"min,omitempty"`
	Max       []float32 `yaml:"max,omitempty"`
	Position  []float32 `yaml:"position"`
	Direction []float32 `yaml:"direction"`
	Hit       bool      `yaml:"hit"`
	T         float32   `yaml:"t"`
}

func vec3(t *testing.T, v []float32) mgl32.Vec3 {
	t.Helper()
	require.Len(t, v, 3)
	return mgl32.Vec3{v[0], v[1], v[2]}
}

func loadRayBoxTable(t *testing.T) rayBoxTable {
	t.Helper()

	f, err := os.Open("testdata/ray_box.yaml")
	require.NoError(t, err)
	defer f.Close()

	var table rayBoxTable
	require.NoError(t, yaml.NewDecoder(f).Decode(&table))
	require.NotEmpty(t, table.Cases)
	return table
}

func TestRayIntersectsBox_Golden(t *testing.T) {
	table := loadRayBoxTable(t)
	defaultBox := AABox{Min: vec3(t, table.Box.Min), Max: vec3(t, table.Box.Max)}

	for _, tc := range table.Cases {
		t.Run(tc.Name, func(t *testing.T) {
			box := defaultBox
			if tc.Min != nil {
				box = AABox{Min: vec3(t, tc.Min), Max: vec3(t, tc.Max)}
			}
			ray := Ray{Position: vec3(t, tc.Position), Direction: vec3(t, tc.Direction)}

			got, ok := ray.IntersectsBox(box)
			require.Equal(t, tc.Hit, ok, "hit")
			if tc.Hit {
				assert.InDelta(t, tc.T, got, 1e-6)
			}
		})
	}
}

func TestRayIntersectsPlane(t *testing.T) {
	ray := Ray{Position: mgl32.Vec3{0, 0, 0}, Direction: mgl32.Vec3{0, 0, 1}}

	tests := []struct {
		name  string
		ray   Ray
		plane Plane
		hit   bool
		t     float32
	}{
		{"plane ahead", ray, Plane{Normal: mgl32.Vec3{0, 0, 1}, D: -5}, true, 5},
		{"plane ahead facing the ray", ray, Plane{Normal: mgl32.Vec3{0, 0, -1}, D: 5}, true, 5},
		{"plane behind", ray, Plane{Normal: mgl32.Vec3{0, 0, 1}, D: 5}, false, 0},
		{"plane behind within tolerance", ray, Plane{Normal: mgl32.Vec3{0, 0, 1}, D: 1e-8}, true, 0},
		{"parallel", Ray{Direction: mgl32.Vec3{1, 0, 0}}, Plane{Normal: mgl32.Vec3{0, 0, 1}, D: -5}, false, 0},
		{"oblique", Ray{Position: mgl32.Vec3{0, 10, 0}, Direction: mgl32.Vec3{0, -2, 0}}, Plane{Normal: mgl32.Vec3{0, 1, 0}, D: 0}, true, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.ray.IntersectsPlaneDefault(tt.plane)
			require.Equal(t, tt.hit, ok, "hit")
			assert.InDelta(t, tt.t, got, 1e-6)
		})
	}

	t.Run("custom tolerance", func(t *testing.T) {
		nearlyParallel := Ray{Direction: mgl32.Vec3{1, 0, 0.001}}
		plane := Plane{Normal: mgl32.Vec3{0, 0, 1}, D: -1}

		_, ok := nearlyParallel.IntersectsPlane(plane, 0.01)
		assert.False(t, ok)

		got, ok := nearlyParallel.IntersectsPlane(plane, Tolerance)
		assert.True(t, ok)
		assert.InDelta(t, 1000, got, 1e-2)
	})
}

func TestRayIntersectsSphere(t *testing.T) {
	sphere := Sphere{Center: mgl32.Vec3{0, 0, 0}, Radius: 1}

	tests := []struct {
		name string
		ray  Ray
		hit  bool
		t    float32
	}{
		{"head on", Ray{Position: mgl32.Vec3{0, 0, -5}, Direction: mgl32.Vec3{0, 0, 1}}, true, 4},
		{"from inside", Ray{Position: mgl32.Vec3{0.5, 0, 0}, Direction: mgl32.Vec3{1, 0, 0}}, true, 0},
		{"sphere behind", Ray{Position: mgl32.Vec3{0, 0, 5}, Direction: mgl32.Vec3{0, 0, 1}}, false, 0},
		{"passing beside", Ray{Position: mgl32.Vec3{0, 3, -5}, Direction: mgl32.Vec3{0, 0, 1}}, false, 0},
		{"tangent", Ray{Position: mgl32.Vec3{0, 1, -5}, Direction: mgl32.Vec3{0, 0, 1}}, true, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.ray.IntersectsSphere(sphere)
			require.Equal(t, tt.hit, ok, "hit")
			assert.InDelta(t, tt.t, got, 1e-6)
		})
	}
}

func TestRayIntersectsTriangle(t *testing.T) {
	tri := Triangle{A: mgl32.Vec3{0, 0, 0}, B: mgl32.Vec3{1, 0, 0}, C: mgl32.Vec3{0, 1, 0}}

	tests := []struct {
		name string
		ray  Ray
		hit  bool
		t    float32
	}{
		{"front face", Ray{Position: mgl32.Vec3{0.25, 0.25, 1}, Direction: mgl32.Vec3{0, 0, -1}}, true, 1},
		{"back face", Ray{Position: mgl32.Vec3{0.25, 0.25, -2}, Direction: mgl32.Vec3{0, 0, 1}}, true, 2},
		{"outside the edges", Ray{Position: mgl32.Vec3{2, 2, 1}, Direction: mgl32.Vec3{0, 0, -1}}, false, 0},
		{"beyond the hypotenuse", Ray{Position: mgl32.Vec3{0.6, 0.6, 1}, Direction: mgl32.Vec3{0, 0, -1}}, false, 0},
		{"parallel", Ray{Position: mgl32.Vec3{0, 0, 1}, Direction: mgl32.Vec3{1, 0, 0}}, false, 0},
		{"triangle behind", Ray{Position: mgl32.Vec3{0.25, 0.25, 1}, Direction: mgl32.Vec3{0, 0, 1}}, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.ray.IntersectsTriangle(tri, Tolerance)
			require.Equal(t, tt.hit, ok, "hit")
			assert.InDelta(t, tt.t, got, 1e-6)
		})
	}
}

func TestRayAtAndTransform(t *testing.T) {
	ray := Ray{Position: mgl32.Vec3{1, 2, 3}, Direction: mgl32.Vec3{1, 0, 0}}
	assert.Equal(t, mgl32.Vec3{3, 2, 3}, ray.At(2))

	m := mgl32.Translate3D(1, 0, 0).Mul4(mgl32.Scale3D(2, 2, 2))
	moved := Ray{Position: mgl32.Vec3{1, 1, 1}, Direction: mgl32.Vec3{0, 1, 0}}.Transform(m)

	assertVec3InDelta(t, mgl32.Vec3{3, 2, 2}, moved.Position, 1e-6)
	assertVec3InDelta(t, mgl32.Vec3{0, 2, 0}, moved.Direction, 1e-6, "direction ignores translation")
}
