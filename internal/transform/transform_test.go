package transform_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taylorstapus/Comp-Graphics-Visuals-C/internal/shader"
	"github.com/taylorstapus/Comp-Graphics-Visuals-C/internal/trace"
	"github.com/taylorstapus/Comp-Graphics-Visuals-C/internal/transform"
)

const tol = 1e-5

// assertVec3 and assertMat4 compare with an absolute tolerance per component.
func assertVec3(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], tol, "component %d: want %v, got %v", i, want, got)
	}
}

func assertMat4(t *testing.T, want, got mgl32.Mat4) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], tol, "element %d: want %v, got %v", i, want, got)
	}
}

// maxDiff is the largest absolute difference between two matrices.
func maxDiff(a, b mgl32.Mat4) float32 {
	var d float32
	for i := range a {
		d = max(d, mgl32.Abs(a[i]-b[i]))
	}
	return d
}

func TestComposeUnitCube(t *testing.T) {
	m := transform.Compose(mgl32.Vec3{2, 1, 1}, mgl32.Vec3{0, 90, 0}, mgl32.Vec3{1, 0, 0})

	// scale x by 2, rotate 90 degrees about Y (x->-z, z->x), move +1 on x
	for _, x := range []float32{0, 1} {
		for _, y := range []float32{0, 1} {
			for _, z := range []float32{0, 1} {
				got := m.Mul4x1(mgl32.Vec4{x, y, z, 1}).Vec3()
				assertVec3(t, mgl32.Vec3{z + 1, y, -2 * x}, got)
			}
		}
	}

	want := mgl32.Translate3D(1, 0, 0).Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(90))).Mul4(mgl32.Scale3D(2, 1, 1))
	assertMat4(t, want, m)
}

func TestComposeOrder(t *testing.T) {
	scale := mgl32.Vec3{0.5, 1.5, 0.5}
	rot := mgl32.Vec3{45, -90, 30}
	pos := mgl32.Vec3{-0.5, 3, 0}

	m := transform.Compose(scale, rot, pos)

	p := mgl32.Vec4{1, 1, 1, 1}
	want := mgl32.Scale3D(scale.X(), scale.Y(), scale.Z()).Mul4x1(p)
	want = mgl32.HomogRotate3DX(mgl32.DegToRad(rot.X())).Mul4x1(want)
	want = mgl32.HomogRotate3DY(mgl32.DegToRad(rot.Y())).Mul4x1(want)
	want = mgl32.HomogRotate3DZ(mgl32.DegToRad(rot.Z())).Mul4x1(want)
	want = mgl32.Translate3D(pos.X(), pos.Y(), pos.Z()).Mul4x1(want)

	assertVec3(t, want.Vec3(), m.Mul4x1(p).Vec3())

	// rotating Z before X gives a different placement
	wrong := mgl32.Translate3D(pos.X(), pos.Y(), pos.Z()).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(rot.X()))).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(rot.Y()))).
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(rot.Z()))).
		Mul4(mgl32.Scale3D(scale.X(), scale.Y(), scale.Z()))
	assert.Greater(t, maxDiff(wrong, m), float32(tol))
}

func TestComposeIdentity(t *testing.T) {
	m := transform.Compose(mgl32.Vec3{1, 1, 1}, mgl32.Vec3{}, mgl32.Vec3{})
	assertMat4(t, mgl32.Ident4(), m)
}

func TestApplySetsModelUniform(t *testing.T) {
	rec := trace.NewRecorder()
	names := shader.DefaultNames()
	tr := transform.Transform{
		Scale:    mgl32.Vec3{20, 1, 20},
		Rotation: mgl32.Vec3{90, 90, 0},
		Position: mgl32.Vec3{20, 20, 0},
	}

	tr.Apply(rec, names)

	require.Len(t, rec.Events, 1)
	ev := rec.Events[0]
	assert.Equal(t, trace.OpMat4, ev.Op)
	assert.Equal(t, "model", ev.Name)
	m := tr.Matrix()
	assert.Equal(t, m[:], ev.Value)
}

func TestComposeKeepsZeroScale(t *testing.T) {
	m := transform.Transform{Scale: mgl32.Vec3{2, 0, 1}}.Matrix()
	assertVec3(t, mgl32.Vec3{2, 0, 3}, m.Mul4x1(mgl32.Vec4{1, 5, 3, 1}).Vec3())
}
