package lights_test

import (
	"fmt"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taylorstapus/Comp-Graphics-Visuals-C/internal/lights"
	"github.com/taylorstapus/Comp-Graphics-Visuals-C/internal/shader"
	"github.com/taylorstapus/Comp-Graphics-Visuals-C/internal/trace"
)

func lamp(x float32) lights.Point {
	return lights.Point{
		Position:  mgl32.Vec3{x, 13, -17},
		Ambient:   mgl32.Vec3{.05, .05, .05},
		Diffuse:   mgl32.Vec3{.3, .3, .3},
		Specular:  mgl32.Vec3{.1, .1, .1},
		Constant:  1,
		Linear:    .09,
		Quadratic: .032,
		Active:    true,
	}
}

func TestApplyOrderAndInactiveSlots(t *testing.T) {
	rec := trace.NewRecorder()
	s := lights.Setup{
		UseLighting: true,
		Directional: lights.Directional{
			Direction: mgl32.Vec3{-7, 10, -10},
			Ambient:   mgl32.Vec3{.2, .2, .2},
			Diffuse:   mgl32.Vec3{.7, .7, .7},
			Active:    true,
		},
		Points: []lights.Point{lamp(-2), lamp(2)},
	}

	require.NoError(t, s.Apply(rec, shader.DefaultNames()))

	var names []string
	for _, e := range rec.Events {
		names = append(names, e.Name)
	}
	want := []string{
		"bUseLighting",
		"directionalLight.direction",
		"directionalLight.ambient",
		"directionalLight.diffuse",
		"directionalLight.specular",
		"directionalLight.bActive",
	}
	for i := 0; i < 2; i++ {
		for _, f := range []string{"position", "ambient", "diffuse", "specular", "constant", "linear", "quadratic", "bActive"} {
			want = append(want, fmt.Sprintf("pointLights[%d].%s", i, f))
		}
	}
	want = append(want, "pointLights[2].bActive", "pointLights[3].bActive")
	assert.Equal(t, want, names)

	for i, active := range []bool{true, true, false, false} {
		e, ok := rec.Last(fmt.Sprintf("pointLights[%d].bActive", i))
		require.True(t, ok)
		assert.Equal(t, active, e.Value, "slot %d", i)
	}
	e, _ := rec.Last("pointLights[1].position")
	assert.Equal(t, []float32{2, 13, -17}, e.Value)
}

func TestApplyRejectsTooManyPoints(t *testing.T) {
	rec := trace.NewRecorder()
	s := lights.Setup{Points: []lights.Point{lamp(0), lamp(1), lamp(2), lamp(3), lamp(4)}}

	err := s.Apply(rec, shader.DefaultNames())
	assert.ErrorIs(t, err, lights.ErrTooManyPointLights)
	assert.Empty(t, rec.Events)
}

func TestAttenuation(t *testing.T) {
	p := lamp(0)
	assert.InDelta(t, 1, p.Attenuation(0), 1e-6)
	assert.InDelta(t, 1/(1+.9+3.2), p.Attenuation(10), 1e-6)
}

func TestRange(t *testing.T) {
	p := lamp(0)
	for _, threshold := range []float32{0.5, 0.1, 0.01} {
		d := p.Range(threshold)
		assert.Greater(t, d, float32(0))
		assert.InDelta(t, threshold, p.Attenuation(d), 1e-5, "threshold %v", threshold)
	}

	assert.Zero(t, p.Range(2))
	assert.True(t, math32.IsInf(p.Range(0), 1))

	linear := lights.Point{Constant: 1, Linear: 1}
	assert.InDelta(t, 9, linear.Range(0.1), 1e-5)

	flat := lights.Point{Constant: 1}
	assert.True(t, math32.IsInf(flat.Range(0.5), 1))
}
