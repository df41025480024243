package main

import (
	"math"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a free-flying first person camera. Yaw and pitch come from
// mouse movement, position from the movement keys, travel speed from
// the scroll wheel.
type Camera struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3

	Yaw, Pitch float32
	Speed      float32

	Orthographic bool

	lastX, lastY float64
	firstMouse   bool
}

func NewCamera() *Camera {
	c := &Camera{
		Position:   mgl32.Vec3{0, 5.5, 12},
		Up:         mgl32.Vec3{0, 1, 0},
		Yaw:        -90,
		Pitch:      -20,
		Speed:      2.5,
		firstMouse: true,
	}
	c.updateFront()
	return c
}

func (c *Camera) updateFront() {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))
	c.Front = mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}.Normalize()
}

// View returns the camera's view matrix.
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

// Projection returns either a perspective or an orthographic projection
// for the given aspect ratio, depending on the current mode.
func (c *Camera) Projection(aspect float32) mgl32.Mat4 {
	if c.Orthographic {
		h := float32(10)
		w := h * aspect
		return mgl32.Ortho(-w, w, -h, h, 0.1, 100)
	}
	return mgl32.Perspective(mgl32.DegToRad(45), aspect, 0.1, 100)
}

// ProcessKeys moves the camera for the keys held this frame.
func (c *Camera) ProcessKeys(w *glfw.Window, dt float32) {
	v := c.Speed * dt
	right := c.Front.Cross(c.Up).Normalize()

	if w.GetKey(glfw.KeyW) == glfw.Press {
		c.Position = c.Position.Add(c.Front.Mul(v))
	}
	if w.GetKey(glfw.KeyS) == glfw.Press {
		c.Position = c.Position.Sub(c.Front.Mul(v))
	}
	if w.GetKey(glfw.KeyA) == glfw.Press {
		c.Position = c.Position.Sub(right.Mul(v))
	}
	if w.GetKey(glfw.KeyD) == glfw.Press {
		c.Position = c.Position.Add(right.Mul(v))
	}
	if w.GetKey(glfw.KeyQ) == glfw.Press {
		c.Position = c.Position.Add(c.Up.Mul(v))
	}
	if w.GetKey(glfw.KeyE) == glfw.Press {
		c.Position = c.Position.Sub(c.Up.Mul(v))
	}

	if w.GetKey(glfw.KeyP) == glfw.Press {
		c.Orthographic = false
	}
	if w.GetKey(glfw.KeyO) == glfw.Press {
		c.Orthographic = true
	}
}

// OnMouseMove turns mouse motion into yaw and pitch.
func (c *Camera) OnMouseMove(_ *glfw.Window, x, y float64) {
	if c.firstMouse {
		c.lastX, c.lastY = x, y
		c.firstMouse = false
		return
	}

	const sensitivity = 0.1
	c.Yaw += float32(x-c.lastX) * sensitivity
	c.Pitch += float32(c.lastY-y) * sensitivity
	c.lastX, c.lastY = x, y

	if c.Pitch > 89 {
		c.Pitch = 89
	}
	if c.Pitch < -89 {
		c.Pitch = -89
	}
	c.updateFront()
}

// OnScroll adjusts movement speed.
func (c *Camera) OnScroll(_ *glfw.Window, _, yoff float64) {
	c.Speed += float32(yoff) * 0.5
	if c.Speed < 0.5 {
		c.Speed = 0.5
	}
	if c.Speed > 20 {
		c.Speed = 20
	}
}
