package materials

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/taylorstapus/Comp-Graphics-Visuals-C/internal/shader"
)

// Material is a named set of Phong surface properties.
type Material struct {
	Tag       string     `yaml:"tag"`
	Diffuse   mgl32.Vec3 `yaml:"diffuse"`
	Specular  mgl32.Vec3 `yaml:"specular"`
	Shininess float32    `yaml:"shininess"`
}

// Registry is an append-only list of materials. Lookups scan in definition
// order and the first match wins.
type Registry struct {
	list []Material
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Define appends m. Tags are not deduplicated.
func (r *Registry) Define(m Material) {
	r.list = append(r.list, m)
}

// Find returns the first material with the given tag. ok is false when no
// material has that tag, however many others are defined.
func (r *Registry) Find(tag string) (m Material, ok bool) {
	for _, m := range r.list {
		if m.Tag == tag {
			return m, true
		}
	}
	return Material{}, false
}

// Apply pushes the material's diffuse color, specular color and shininess.
// An unknown tag sets nothing and returns false.
func (r *Registry) Apply(u shader.Uniforms, n shader.Names, tag string) bool {
	m, ok := r.Find(tag)
	if !ok {
		return false
	}
	u.SetVec3(n.MaterialDiffuse, m.Diffuse)
	u.SetVec3(n.MaterialSpecular, m.Specular)
	u.SetFloat(n.MaterialShininess, m.Shininess)
	return true
}

// All returns a copy of the materials in definition order.
func (r *Registry) All() []Material {
	out := make([]Material, len(r.list))
	copy(out, r.list)
	return out
}

// Len returns the number of defined materials.
func (r *Registry) Len() int {
	return len(r.list)
}
