// Package scene describes what is in a room: its textures, materials, lights,
// mesh kinds and the ordered list of objects drawn every frame. Descriptions
// are plain data read from YAML; the default room is embedded.
package scene

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"

	"github.com/taylorstapus/Comp-Graphics-Visuals-C/internal/lights"
	"github.com/taylorstapus/Comp-Graphics-Visuals-C/internal/materials"
	"github.com/taylorstapus/Comp-Graphics-Visuals-C/internal/meshes"
	"github.com/taylorstapus/Comp-Graphics-Visuals-C/internal/textures"
	"github.com/taylorstapus/Comp-Graphics-Visuals-C/internal/transform"
)

//go:embed room.yaml
var roomYAML []byte

// Object is one mesh instance. It is drawn with its texture when the tag
// resolves, otherwise with Color when one is set.
type Object struct {
	Name      string              `yaml:"name"`
	Mesh      meshes.Kind         `yaml:"mesh"`
	Transform transform.Transform `yaml:",inline"`
	Texture   string              `yaml:"texture,omitempty"`
	Color     *mgl32.Vec4         `yaml:"color,omitempty"`
	Material  string              `yaml:"material,omitempty"`
	// UVScale repeats the texture across the surface; nil means (1, 1).
	UVScale *mgl32.Vec2 `yaml:"uv_scale,omitempty"`
}

// UV returns the texture coordinate scale of o.
func (o Object) UV() mgl32.Vec2 {
	if o.UVScale == nil {
		return mgl32.Vec2{1, 1}
	}
	return *o.UVScale
}

// Description is a whole scene.
type Description struct {
	Name      string               `yaml:"name"`
	Textures  []textures.Source    `yaml:"textures"`
	Materials []materials.Material `yaml:"materials"`
	Lights    lights.Setup         `yaml:"lights"`
	// Meshes lists kinds to load up front in addition to those objects use.
	Meshes  []meshes.Kind `yaml:"meshes,omitempty"`
	Objects []Object      `yaml:"objects"`
}

// Room returns the embedded default room.
func Room() Description {
	d, err := Parse(roomYAML)
	if err != nil {
		panic(fmt.Sprintf("scene: embedded room: %v", err))
	}
	return d
}

// RoomYAML returns the raw embedded room description.
func RoomYAML() []byte {
	return slices.Clone(roomYAML)
}

// Parse decodes a YAML description. Unknown keys are errors so that typos in
// hand-written files do not silently drop data.
func Parse(data []byte) (Description, error) {
	var d Description
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		if errors.Is(err, io.EOF) {
			return Description{}, fmt.Errorf("scene: parse: empty document")
		}
		return Description{}, fmt.Errorf("scene: parse: %w", err)
	}
	return d, nil
}

// Load reads and parses the description at path.
func Load(path string) (Description, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Description{}, fmt.Errorf("scene: %w", err)
	}
	d, err := Parse(data)
	if err != nil {
		return Description{}, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Marshal encodes d as YAML.
func (d Description) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return nil, fmt.Errorf("scene: marshal: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MeshKinds returns the preload list followed by every kind an object uses,
// each kind once, in first-seen order.
func (d Description) MeshKinds() []meshes.Kind {
	var out []meshes.Kind
	add := func(k meshes.Kind) {
		if !slices.Contains(out, k) {
			out = append(out, k)
		}
	}
	for _, k := range d.Meshes {
		add(k)
	}
	for _, o := range d.Objects {
		add(o.Mesh)
	}
	return out
}

// Clone returns a deep copy of d. The composer keeps its own copy so a
// reload cannot change a description mid-frame.
func (d Description) Clone() (Description, error) {
	var out Description
	if err := copier.CopyWithOption(&out, &d, copier.Option{DeepCopy: true}); err != nil {
		return Description{}, fmt.Errorf("scene: clone: %w", err)
	}
	return out, nil
}
