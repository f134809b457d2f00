package graphics

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	gridExtent     = 50
	gridMinorStep  = 1
	gridMajorStep  = 10
	gridMinorAlpha = 50
	gridMajorAlpha = 120
	axisLineAlpha  = 220
)

// CameraMode says how View.Update moves the camera.
type CameraMode int

const (
	// Fixed leaves the camera where it was placed.
	Fixed CameraMode = iota
	// Free uses raylib's free camera: mouse to look, WASD to move.
	Free
	// Orbital circles the target.
	Orbital
)

// ParseCameraMode maps "fixed", "free" and "orbital" to a CameraMode.
func ParseCameraMode(s string) (CameraMode, error) {
	switch s {
	case "", "fixed":
		return Fixed, nil
	case "free":
		return Free, nil
	case "orbital":
		return Orbital, nil
	}
	return Fixed, fmt.Errorf("graphics: unknown camera mode %q", s)
}

// View holds the 3D camera and the optional editor grid.
type View struct {
	Camera      rl.Camera3D
	Mode        CameraMode
	GridVisible bool
	cursorDone  bool
}

// NewView returns a perspective view placed at position looking at target.
func NewView(position, target, up [3]float32, fovy float32, mode CameraMode) *View {
	v := &View{Mode: mode}
	v.Camera.Position = rl.NewVector3(position[0], position[1], position[2])
	v.Camera.Target = rl.NewVector3(target[0], target[1], target[2])
	v.Camera.Up = rl.NewVector3(up[0], up[1], up[2])
	v.Camera.Fovy = fovy
	v.Camera.Projection = rl.CameraPerspective
	return v
}

// Position returns the camera position, for the shader's viewPosition.
func (v *View) Position() mgl32.Vec3 {
	p := v.Camera.Position
	return mgl32.Vec3{p.X, p.Y, p.Z}
}

// Update runs once per frame. In Free mode the cursor is captured on the
// first call so the mouse steers the camera.
func (v *View) Update() {
	switch v.Mode {
	case Free:
		if !v.cursorDone {
			rl.DisableCursor()
			v.cursorDone = true
		}
		rl.UpdateCamera(&v.Camera, rl.CameraFree)
	case Orbital:
		rl.UpdateCamera(&v.Camera, rl.CameraOrbital)
	}
}

// Draw runs draw between BeginMode3D and EndMode3D, then the grid when it
// is visible.
func (v *View) Draw(draw func()) {
	rl.BeginMode3D(v.Camera)
	if draw != nil {
		draw()
	}
	if v.GridVisible {
		drawEditorGrid()
	}
	rl.EndMode3D()
}

// drawEditorGrid draws a grid on the XZ plane with major/minor lines and axis lines.
func drawEditorGrid() {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)

	var start, end rl.Vector3
	for i := -gridExtent; i <= gridExtent; i += gridMinorStep {
		c := major
		if i%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(i), 0, -gridExtent
		end.X, end.Y, end.Z = float32(i), 0, gridExtent
		rl.DrawLine3D(start, end, c)
		start.X, start.Y, start.Z = -gridExtent, 0, float32(i)
		end.X, end.Y, end.Z = gridExtent, 0, float32(i)
		rl.DrawLine3D(start, end, c)
	}

	// X red, Y green, Z blue
	rl.DrawLine3D(rl.NewVector3(-gridExtent, 0, 0), rl.NewVector3(gridExtent, 0, 0), rl.NewColor(220, 80, 80, axisLineAlpha))
	rl.DrawLine3D(rl.NewVector3(0, -gridExtent, 0), rl.NewVector3(0, gridExtent, 0), rl.NewColor(80, 220, 80, axisLineAlpha))
	rl.DrawLine3D(rl.NewVector3(0, 0, -gridExtent), rl.NewVector3(0, 0, gridExtent), rl.NewColor(80, 80, 220, axisLineAlpha))
}
