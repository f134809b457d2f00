package shader

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Uniforms sets named values on the scene's shader program. Values apply to
// every draw call issued after them until they are set again.
type Uniforms interface {
	SetBool(name string, v bool)
	SetInt(name string, v int32)
	SetFloat(name string, v float32)
	SetVec2(name string, v mgl32.Vec2)
	SetVec3(name string, v mgl32.Vec3)
	SetVec4(name string, v mgl32.Vec4)
	SetMat4(name string, v mgl32.Mat4)
	// SetSampler2D points a sampler at a texture unit. A negative slot means
	// the texture was never loaded; backends pass it through unchanged.
	SetSampler2D(name string, slot int32)
}

// Light field names shared by the directional light and the point lights.
const (
	FieldDirection = "direction"
	FieldPosition  = "position"
	FieldAmbient   = "ambient"
	FieldDiffuse   = "diffuse"
	FieldSpecular  = "specular"
	FieldConstant  = "constant"
	FieldLinear    = "linear"
	FieldQuadratic = "quadratic"
	FieldActive    = "bActive"
)

// Names is the uniform naming contract between the host code and the shader
// program. It is a value type; components receive a copy and never mutate it.
type Names struct {
	Model        string
	Color        string
	Texture      string
	UseTexture   string
	UseLighting  string
	UVScale      string
	ViewPosition string

	MaterialDiffuse   string
	MaterialSpecular  string
	MaterialShininess string

	// Directional is the struct uniform prefix of the directional light.
	Directional string
	// PointLights is the array uniform prefix of the point lights.
	PointLights string
}

// DefaultNames returns the names used by the bundled GLSL program.
func DefaultNames() Names {
	return Names{
		Model:        "model",
		Color:        "objectColor",
		Texture:      "objectTexture",
		UseTexture:   "bUseTexture",
		UseLighting:  "bUseLighting",
		UVScale:      "UVscale",
		ViewPosition: "viewPosition",

		MaterialDiffuse:   "material.diffuseColor",
		MaterialSpecular:  "material.specularColor",
		MaterialShininess: "material.shininess",

		Directional: "directionalLight",
		PointLights: "pointLights",
	}
}

// DirectionalField returns the full uniform name of a directional light field,
// e.g. "directionalLight.ambient".
func (n Names) DirectionalField(field string) string {
	return n.Directional + "." + field
}

// PointLightField returns the full uniform name of a point light field,
// e.g. "pointLights[2].position".
func (n Names) PointLightField(i int, field string) string {
	return fmt.Sprintf("%s[%d].%s", n.PointLights, i, field)
}
