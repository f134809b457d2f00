package transform

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/taylorstapus/Comp-Graphics-Visuals-C/internal/shader"
)

// Transform places one mesh instance in the world. Rotation holds degrees
// about the X, Y and Z axes. It is rebuilt for every draw call and never stored
// on the GPU side.
type Transform struct {
	Scale    mgl32.Vec3 `yaml:"scale"`
	Rotation mgl32.Vec3 `yaml:"rotation,omitempty"`
	Position mgl32.Vec3 `yaml:"position"`
}

// Compose builds the model matrix T * Rz * Ry * Rx * S: scale first, then
// rotate about X, then Y, then Z, then translate. Placement of every object in
// the room depends on this exact order.
func Compose(scale, rotationDeg, position mgl32.Vec3) mgl32.Mat4 {
	t := mgl32.Translate3D(position.X(), position.Y(), position.Z())
	rx := mgl32.HomogRotate3DX(mgl32.DegToRad(rotationDeg.X()))
	ry := mgl32.HomogRotate3DY(mgl32.DegToRad(rotationDeg.Y()))
	rz := mgl32.HomogRotate3DZ(mgl32.DegToRad(rotationDeg.Z()))
	s := mgl32.Scale3D(scale.X(), scale.Y(), scale.Z())
	return t.Mul4(rz).Mul4(ry).Mul4(rx).Mul4(s)
}

// Matrix returns the composed model matrix.
func (t Transform) Matrix() mgl32.Mat4 {
	return Compose(t.Scale, t.Rotation, t.Position)
}

// Apply pushes the model matrix into the model uniform.
func (t Transform) Apply(u shader.Uniforms, n shader.Names) {
	u.SetMat4(n.Model, t.Matrix())
}
