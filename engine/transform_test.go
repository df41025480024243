package engine

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func vec3Near(a, b mgl32.Vec3, epsilon float64) bool {
	for i := 0; i < 3; i++ {
		if math.Abs(float64(a[i]-b[i])) > epsilon {
			return false
		}
	}
	return true
}

func TestCompose(t *testing.T) {
	tests := []struct {
		Name       string
		Scale      mgl32.Vec3
		Rx, Ry, Rz float32
		Translate  mgl32.Vec3
		Point      mgl32.Vec3
		Expected   mgl32.Vec3
	}{
		{
			Name:     "identity",
			Scale:    mgl32.Vec3{1, 1, 1},
			Point:    mgl32.Vec3{0.5, -1, 2},
			Expected: mgl32.Vec3{0.5, -1, 2},
		},
		{
			Name:      "scale then translate",
			Scale:     mgl32.Vec3{2, 1, 1},
			Translate: mgl32.Vec3{1, 0, 0},
			Point:     mgl32.Vec3{0.5, 0.5, 0.5},
			Expected:  mgl32.Vec3{2, 0.5, 0.5},
		},
		{
			// right-handed: a quarter turn about Y sends +X to -Z
			Name:      "rotate Y then translate",
			Scale:     mgl32.Vec3{1, 1, 1},
			Ry:        90,
			Translate: mgl32.Vec3{1, 0, 0},
			Point:     mgl32.Vec3{1, 0, 0},
			Expected:  mgl32.Vec3{1, 0, -1},
		},
		{
			Name:      "rotate Z before translating",
			Scale:     mgl32.Vec3{1, 1, 1},
			Rz:        90,
			Translate: mgl32.Vec3{0, 0, 5},
			Point:     mgl32.Vec3{1, 0, 0},
			Expected:  mgl32.Vec3{0, 1, 5},
		},
		{
			// X rotation is applied after Y: the Y turn sends +X to -Z,
			// then the X turn sends -Z to +Y
			Name:     "X applied after Y",
			Scale:    mgl32.Vec3{1, 1, 1},
			Rx:       90,
			Ry:       90,
			Point:    mgl32.Vec3{1, 0, 0},
			Expected: mgl32.Vec3{0, 1, 0},
		},
		{
			Name:     "scale applies before rotation",
			Scale:    mgl32.Vec3{3, 1, 1},
			Ry:       90,
			Point:    mgl32.Vec3{1, 0, 0},
			Expected: mgl32.Vec3{0, 0, -3},
		},
	}

	for _, c := range tests {
		m := Compose(c.Scale, c.Rx, c.Ry, c.Rz, c.Translate)
		r := mgl32.TransformCoordinate(c.Point, m)
		if !vec3Near(r, c.Expected, 1e-5) {
			t.Errorf("%s: Compose(...) * %v = %v, expected %v", c.Name, c.Point, r, c.Expected)
		}
	}
}
