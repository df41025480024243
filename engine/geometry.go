package engine

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Primitive generators. Dimensions follow the drawing conventions the
// scene transforms were authored against: box and sphere are unit-sized
// and centered, cylinder and cone have radius 1 with the base on the XZ
// plane and height 1, the torus ring has radius 1 around the Z axis,
// the half-sphere rests its flat side on the XZ plane.

const (
	radialSegments = 64
	ringSegments   = 32
)

// PlaneData builds a 2x2 quad on the XZ plane facing +Y.
func PlaneData() *MeshData {
	d := &MeshData{}
	up := mgl32.Vec3{0, 1, 0}
	d.addQuad(
		Vertex{Position: mgl32.Vec3{-1, 0, -1}, Normal: up, UV: mgl32.Vec2{0, 1}},
		Vertex{Position: mgl32.Vec3{-1, 0, 1}, Normal: up, UV: mgl32.Vec2{0, 0}},
		Vertex{Position: mgl32.Vec3{1, 0, 1}, Normal: up, UV: mgl32.Vec2{1, 0}},
		Vertex{Position: mgl32.Vec3{1, 0, -1}, Normal: up, UV: mgl32.Vec2{1, 1}},
	)
	return d
}

// BoxSides names the index groups of a box mesh; each side can be drawn
// on its own.
var BoxSides = []string{"top", "bottom", "left", "right", "front", "back"}

// BoxData builds a unit cube centered at the origin with one index
// group per side.
func BoxData() *MeshData {
	d := &MeshData{}
	h := float32(0.5)

	quad := func(normal mgl32.Vec3, a, b, c, e mgl32.Vec3) {
		d.addQuad(
			Vertex{Position: a, Normal: normal, UV: mgl32.Vec2{0, 1}},
			Vertex{Position: b, Normal: normal, UV: mgl32.Vec2{0, 0}},
			Vertex{Position: c, Normal: normal, UV: mgl32.Vec2{1, 0}},
			Vertex{Position: e, Normal: normal, UV: mgl32.Vec2{1, 1}},
		)
	}

	d.group("top", func() {
		quad(mgl32.Vec3{0, 1, 0},
			mgl32.Vec3{-h, h, -h}, mgl32.Vec3{-h, h, h}, mgl32.Vec3{h, h, h}, mgl32.Vec3{h, h, -h})
	})
	d.group("bottom", func() {
		quad(mgl32.Vec3{0, -1, 0},
			mgl32.Vec3{-h, -h, h}, mgl32.Vec3{-h, -h, -h}, mgl32.Vec3{h, -h, -h}, mgl32.Vec3{h, -h, h})
	})
	d.group("left", func() {
		quad(mgl32.Vec3{-1, 0, 0},
			mgl32.Vec3{-h, h, -h}, mgl32.Vec3{-h, -h, -h}, mgl32.Vec3{-h, -h, h}, mgl32.Vec3{-h, h, h})
	})
	d.group("right", func() {
		quad(mgl32.Vec3{1, 0, 0},
			mgl32.Vec3{h, h, h}, mgl32.Vec3{h, -h, h}, mgl32.Vec3{h, -h, -h}, mgl32.Vec3{h, h, -h})
	})
	d.group("front", func() {
		quad(mgl32.Vec3{0, 0, 1},
			mgl32.Vec3{-h, h, h}, mgl32.Vec3{-h, -h, h}, mgl32.Vec3{h, -h, h}, mgl32.Vec3{h, h, h})
	})
	d.group("back", func() {
		quad(mgl32.Vec3{0, 0, -1},
			mgl32.Vec3{h, h, -h}, mgl32.Vec3{h, -h, -h}, mgl32.Vec3{-h, -h, -h}, mgl32.Vec3{-h, h, -h})
	})

	return d
}

// CylinderData builds a radius-1 cylinder from Y=0 to Y=1 with "top",
// "bottom" and "side" groups so caps can be suppressed or drawn alone.
func CylinderData() *MeshData {
	d := &MeshData{}

	ring := func(i int) (sin, cos float32) {
		angle := 2 * math.Pi * float64(i) / radialSegments
		return float32(math.Sin(angle)), float32(math.Cos(angle))
	}

	d.group("side", func() {
		for i := 0; i < radialSegments; i++ {
			s0, c0 := ring(i)
			s1, c1 := ring(i + 1)
			u0 := float32(i) / radialSegments
			u1 := float32(i+1) / radialSegments

			n0 := mgl32.Vec3{s0, 0, c0}
			n1 := mgl32.Vec3{s1, 0, c1}

			d.addQuad(
				Vertex{Position: mgl32.Vec3{s0, 1, c0}, Normal: n0, UV: mgl32.Vec2{u0, 1}},
				Vertex{Position: mgl32.Vec3{s0, 0, c0}, Normal: n0, UV: mgl32.Vec2{u0, 0}},
				Vertex{Position: mgl32.Vec3{s1, 0, c1}, Normal: n1, UV: mgl32.Vec2{u1, 0}},
				Vertex{Position: mgl32.Vec3{s1, 1, c1}, Normal: n1, UV: mgl32.Vec2{u1, 1}},
			)
		}
	})

	endcap := func(y float32, normal mgl32.Vec3) {
		center := Vertex{
			Position: mgl32.Vec3{0, y, 0},
			Normal:   normal,
			UV:       mgl32.Vec2{0.5, 0.5},
		}
		for i := 0; i < radialSegments; i++ {
			s0, c0 := ring(i)
			s1, c1 := ring(i + 1)

			a := Vertex{Position: mgl32.Vec3{s0, y, c0}, Normal: normal, UV: mgl32.Vec2{0.5 + s0/2, 0.5 + c0/2}}
			b := Vertex{Position: mgl32.Vec3{s1, y, c1}, Normal: normal, UV: mgl32.Vec2{0.5 + s1/2, 0.5 + c1/2}}

			if normal.Y() > 0 {
				d.addTriangle(center, a, b)
			} else {
				d.addTriangle(center, b, a)
			}
		}
	}

	d.group("top", func() { endcap(1, mgl32.Vec3{0, 1, 0}) })
	d.group("bottom", func() { endcap(0, mgl32.Vec3{0, -1, 0}) })

	return d
}

// ConeData builds a radius-1 cone with the base on the XZ plane and the
// apex at Y=1, base cap included.
func ConeData() *MeshData {
	d := &MeshData{}

	// slant normals lean outward by the cone's slope
	slope := float32(1) / float32(math.Sqrt2)

	for i := 0; i < radialSegments; i++ {
		a0 := 2 * math.Pi * float64(i) / radialSegments
		a1 := 2 * math.Pi * float64(i+1) / radialSegments
		am := (a0 + a1) / 2

		s0, c0 := float32(math.Sin(a0)), float32(math.Cos(a0))
		s1, c1 := float32(math.Sin(a1)), float32(math.Cos(a1))
		sm, cm := float32(math.Sin(am)), float32(math.Cos(am))

		n0 := mgl32.Vec3{s0 * slope, slope, c0 * slope}
		n1 := mgl32.Vec3{s1 * slope, slope, c1 * slope}
		nm := mgl32.Vec3{sm * slope, slope, cm * slope}

		u0 := float32(i) / radialSegments
		u1 := float32(i+1) / radialSegments

		d.addTriangle(
			Vertex{Position: mgl32.Vec3{0, 1, 0}, Normal: nm, UV: mgl32.Vec2{(u0 + u1) / 2, 1}},
			Vertex{Position: mgl32.Vec3{s0, 0, c0}, Normal: n0, UV: mgl32.Vec2{u0, 0}},
			Vertex{Position: mgl32.Vec3{s1, 0, c1}, Normal: n1, UV: mgl32.Vec2{u1, 0}},
		)
	}

	down := mgl32.Vec3{0, -1, 0}
	center := Vertex{Position: mgl32.Vec3{0, 0, 0}, Normal: down, UV: mgl32.Vec2{0.5, 0.5}}
	for i := 0; i < radialSegments; i++ {
		a0 := 2 * math.Pi * float64(i) / radialSegments
		a1 := 2 * math.Pi * float64(i+1) / radialSegments
		s0, c0 := float32(math.Sin(a0)), float32(math.Cos(a0))
		s1, c1 := float32(math.Sin(a1)), float32(math.Cos(a1))

		d.addTriangle(
			center,
			Vertex{Position: mgl32.Vec3{s1, 0, c1}, Normal: down, UV: mgl32.Vec2{0.5 + s1/2, 0.5 + c1/2}},
			Vertex{Position: mgl32.Vec3{s0, 0, c0}, Normal: down, UV: mgl32.Vec2{0.5 + s0/2, 0.5 + c0/2}},
		)
	}

	return d
}

// SphereData builds a unit sphere centered at the origin.
func SphereData() *MeshData {
	return sphereData(math.Pi)
}

// HalfSphereData builds the top hemisphere of a unit sphere with its
// flat side on the XZ plane, closed by a bottom disk.
func HalfSphereData() *MeshData {
	d := sphereData(math.Pi / 2)

	down := mgl32.Vec3{0, -1, 0}
	center := Vertex{Position: mgl32.Vec3{0, 0, 0}, Normal: down, UV: mgl32.Vec2{0.5, 0.5}}
	for i := 0; i < radialSegments; i++ {
		a0 := 2 * math.Pi * float64(i) / radialSegments
		a1 := 2 * math.Pi * float64(i+1) / radialSegments
		s0, c0 := float32(math.Sin(a0)), float32(math.Cos(a0))
		s1, c1 := float32(math.Sin(a1)), float32(math.Cos(a1))

		d.addTriangle(
			center,
			Vertex{Position: mgl32.Vec3{s1, 0, c1}, Normal: down, UV: mgl32.Vec2{0.5 + s1/2, 0.5 + c1/2}},
			Vertex{Position: mgl32.Vec3{s0, 0, c0}, Normal: down, UV: mgl32.Vec2{0.5 + s0/2, 0.5 + c0/2}},
		)
	}

	return d
}

// sphereData sweeps the polar angle from 0 (north pole) to thetaLength.
func sphereData(thetaLength float64) *MeshData {
	d := &MeshData{}

	position := func(x, y int) (mgl32.Vec3, mgl32.Vec2) {
		u := float64(x) / radialSegments
		v := float64(y) / ringSegments

		theta := v * thetaLength
		phi := u * 2 * math.Pi

		p := mgl32.Vec3{
			float32(-math.Cos(phi) * math.Sin(theta)),
			float32(math.Cos(theta)),
			float32(math.Sin(phi) * math.Sin(theta)),
		}
		return p, mgl32.Vec2{float32(u), float32(1 - v)}
	}

	for y := 0; y < ringSegments; y++ {
		for x := 0; x < radialSegments; x++ {
			p1, uv1 := position(x+1, y)
			p2, uv2 := position(x, y)
			p3, uv3 := position(x, y+1)
			p4, uv4 := position(x+1, y+1)

			v1 := Vertex{Position: p1, Normal: p1.Normalize(), UV: uv1}
			v2 := Vertex{Position: p2, Normal: p2.Normalize(), UV: uv2}
			v3 := Vertex{Position: p3, Normal: p3.Normalize(), UV: uv3}
			v4 := Vertex{Position: p4, Normal: p4.Normalize(), UV: uv4}

			if y == 0 {
				// pole row degenerates to triangles
				d.addTriangle(v1, v3, v4)
			} else {
				d.addTriangle(v1, v2, v3)
				d.addTriangle(v1, v3, v4)
			}
		}
	}

	return d
}

// TorusData builds a ring of radius 1 around the Z axis with the given
// tube radius.
func TorusData(tube float32) *MeshData {
	return torusData(tube, 2*math.Pi)
}

// HalfTorusData builds half of the ring (main angle 0..180 degrees).
func HalfTorusData(tube float32) *MeshData {
	return torusData(tube, math.Pi)
}

func torusData(tube float32, arc float64) *MeshData {
	d := &MeshData{}

	point := func(i, j int) Vertex {
		u := arc * float64(i) / radialSegments
		v := 2 * math.Pi * float64(j) / ringSegments

		cu, su := float32(math.Cos(u)), float32(math.Sin(u))
		cv, sv := float32(math.Cos(v)), float32(math.Sin(v))

		return Vertex{
			Position: mgl32.Vec3{(1 + tube*cv) * cu, (1 + tube*cv) * su, tube * sv},
			Normal:   mgl32.Vec3{cv * cu, cv * su, sv},
			UV:       mgl32.Vec2{float32(i) / radialSegments, float32(j) / ringSegments},
		}
	}

	for i := 0; i < radialSegments; i++ {
		for j := 0; j < ringSegments; j++ {
			d.addQuad(point(i, j), point(i+1, j), point(i+1, j+1), point(i, j+1))
		}
	}

	return d
}

// PrismData builds a triangular prism: a right triangle cross-section
// spanning X and Y in [0,1] ranges, extruded along Z from -0.5 to 0.5.
func PrismData() *MeshData {
	d := &MeshData{}

	// cross-section corners (X, Y)
	a := mgl32.Vec2{-0.5, 0}
	b := mgl32.Vec2{0.5, 0}
	c := mgl32.Vec2{0, 1}

	front := mgl32.Vec3{0, 0, 1}
	d.addTriangle(
		Vertex{Position: mgl32.Vec3{a.X(), a.Y(), 0.5}, Normal: front, UV: mgl32.Vec2{0, 0}},
		Vertex{Position: mgl32.Vec3{b.X(), b.Y(), 0.5}, Normal: front, UV: mgl32.Vec2{1, 0}},
		Vertex{Position: mgl32.Vec3{c.X(), c.Y(), 0.5}, Normal: front, UV: mgl32.Vec2{0.5, 1}},
	)

	back := mgl32.Vec3{0, 0, -1}
	d.addTriangle(
		Vertex{Position: mgl32.Vec3{b.X(), b.Y(), -0.5}, Normal: back, UV: mgl32.Vec2{0, 0}},
		Vertex{Position: mgl32.Vec3{a.X(), a.Y(), -0.5}, Normal: back, UV: mgl32.Vec2{1, 0}},
		Vertex{Position: mgl32.Vec3{c.X(), c.Y(), -0.5}, Normal: back, UV: mgl32.Vec2{0.5, 1}},
	)

	side := func(p0, p1 mgl32.Vec2) {
		edge := p1.Sub(p0)
		normal := mgl32.Vec3{edge.Y(), -edge.X(), 0}.Normalize()
		d.addQuad(
			Vertex{Position: mgl32.Vec3{p0.X(), p0.Y(), 0.5}, Normal: normal, UV: mgl32.Vec2{0, 0}},
			Vertex{Position: mgl32.Vec3{p0.X(), p0.Y(), -0.5}, Normal: normal, UV: mgl32.Vec2{0, 1}},
			Vertex{Position: mgl32.Vec3{p1.X(), p1.Y(), -0.5}, Normal: normal, UV: mgl32.Vec2{1, 1}},
			Vertex{Position: mgl32.Vec3{p1.X(), p1.Y(), 0.5}, Normal: normal, UV: mgl32.Vec2{1, 0}},
		)
	}

	// edges in cross-section winding order so normals face outward
	side(a, b) // bottom
	side(b, c) // right slope
	side(c, a) // left slope

	return d
}
