package lights

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/taylorstapus/Comp-Graphics-Visuals-C/internal/shader"
)

// MaxPointLights is the size of the point light array in the scene shader.
const MaxPointLights = 4

// ErrTooManyPointLights is returned by Apply when a setup has more point
// lights than the shader has slots for.
var ErrTooManyPointLights = errors.New("too many point lights")

// Directional is a light infinitely far away, shining along Direction.
type Directional struct {
	Direction mgl32.Vec3 `yaml:"direction"`
	Ambient   mgl32.Vec3 `yaml:"ambient"`
	Diffuse   mgl32.Vec3 `yaml:"diffuse"`
	Specular  mgl32.Vec3 `yaml:"specular"`
	Active    bool       `yaml:"active"`
}

// Point is a light at Position whose intensity falls off with distance d as
// 1 / (Constant + Linear*d + Quadratic*d*d).
type Point struct {
	Position  mgl32.Vec3 `yaml:"position"`
	Ambient   mgl32.Vec3 `yaml:"ambient"`
	Diffuse   mgl32.Vec3 `yaml:"diffuse"`
	Specular  mgl32.Vec3 `yaml:"specular"`
	Constant  float32    `yaml:"constant"`
	Linear    float32    `yaml:"linear"`
	Quadratic float32    `yaml:"quadratic"`
	Active    bool       `yaml:"active"`
}

// Setup is the complete, static lighting of a scene.
type Setup struct {
	UseLighting bool        `yaml:"use_lighting"`
	Directional Directional `yaml:"directional"`
	Points      []Point     `yaml:"points"`
}

// Apply pushes the whole setup to the shader. Point light slots past
// len(Points) are explicitly switched off so nothing stale stays lit.
// A setup with more than MaxPointLights points sets nothing.
func (s Setup) Apply(u shader.Uniforms, n shader.Names) error {
	if len(s.Points) > MaxPointLights {
		return fmt.Errorf("lights: %d point lights, max %d: %w", len(s.Points), MaxPointLights, ErrTooManyPointLights)
	}

	u.SetBool(n.UseLighting, s.UseLighting)

	d := s.Directional
	u.SetVec3(n.DirectionalField(shader.FieldDirection), d.Direction)
	u.SetVec3(n.DirectionalField(shader.FieldAmbient), d.Ambient)
	u.SetVec3(n.DirectionalField(shader.FieldDiffuse), d.Diffuse)
	u.SetVec3(n.DirectionalField(shader.FieldSpecular), d.Specular)
	u.SetBool(n.DirectionalField(shader.FieldActive), d.Active)

	for i := 0; i < MaxPointLights; i++ {
		if i >= len(s.Points) {
			u.SetBool(n.PointLightField(i, shader.FieldActive), false)
			continue
		}
		p := s.Points[i]
		u.SetVec3(n.PointLightField(i, shader.FieldPosition), p.Position)
		u.SetVec3(n.PointLightField(i, shader.FieldAmbient), p.Ambient)
		u.SetVec3(n.PointLightField(i, shader.FieldDiffuse), p.Diffuse)
		u.SetVec3(n.PointLightField(i, shader.FieldSpecular), p.Specular)
		u.SetFloat(n.PointLightField(i, shader.FieldConstant), p.Constant)
		u.SetFloat(n.PointLightField(i, shader.FieldLinear), p.Linear)
		u.SetFloat(n.PointLightField(i, shader.FieldQuadratic), p.Quadratic)
		u.SetBool(n.PointLightField(i, shader.FieldActive), p.Active)
	}
	return nil
}

// Attenuation returns the intensity factor at distance d.
func (p Point) Attenuation(d float32) float32 {
	return 1 / (p.Constant + p.Linear*d + p.Quadratic*d*d)
}

// Range returns the distance at which Attenuation drops to threshold. It is
// 0 when the light is already dimmer than threshold at its own position and
// +Inf when it never gets that dim.
func (p Point) Range(threshold float32) float32 {
	if threshold <= 0 {
		return math32.Inf(1)
	}
	k := 1/threshold - p.Constant
	if k <= 0 {
		return 0
	}
	if p.Quadratic == 0 {
		if p.Linear <= 0 {
			return math32.Inf(1)
		}
		return k / p.Linear
	}
	// positive root of q*d^2 + l*d - k = 0
	disc := p.Linear*p.Linear + 4*p.Quadratic*k
	return (-p.Linear + math32.Sqrt(disc)) / (2 * p.Quadratic)
}
