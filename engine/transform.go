package engine

import "github.com/go-gl/mathgl/mgl32"

// Compose builds a model matrix from scale, per-axis rotation in
// degrees, and translation. The multiplication order is a design
// commitment: translation * rotX * rotY * rotZ * scale, applied to
// model-space vertices. Changing it changes the orientation of any
// composite rotation.
func Compose(scale mgl32.Vec3, rxDeg, ryDeg, rzDeg float32, translate mgl32.Vec3) mgl32.Mat4 {
	t := mgl32.Translate3D(translate.X(), translate.Y(), translate.Z())
	rx := mgl32.HomogRotate3DX(mgl32.DegToRad(rxDeg))
	ry := mgl32.HomogRotate3DY(mgl32.DegToRad(ryDeg))
	rz := mgl32.HomogRotate3DZ(mgl32.DegToRad(rzDeg))
	s := mgl32.Scale3D(scale.X(), scale.Y(), scale.Z())

	return t.Mul4(rx).Mul4(ry).Mul4(rz).Mul4(s)
}
