// Package composer turns a scene description into GPU state and draw calls.
// Prepare runs once per description; Render runs every frame and walks the
// object list in order.
package composer

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"github.com/taylorstapus/Comp-Graphics-Visuals-C/internal/materials"
	"github.com/taylorstapus/Comp-Graphics-Visuals-C/internal/meshes"
	"github.com/taylorstapus/Comp-Graphics-Visuals-C/internal/scene"
	"github.com/taylorstapus/Comp-Graphics-Visuals-C/internal/shader"
	"github.com/taylorstapus/Comp-Graphics-Visuals-C/internal/textures"
)

// rangeThreshold is the attenuation at which a point light's reach is logged.
const rangeThreshold = 0.01

// Deps are the collaborators a Composer drives. Uniforms, Textures and Meshes
// are usually one backend (rlgpu on screen, trace for dumps and tests).
type Deps struct {
	Uniforms shader.Uniforms
	Names    shader.Names
	Textures textures.GPU
	// Files resolves texture paths from the description.
	Files  fs.FS
	Meshes meshes.Backend
	Log    *slog.Logger
}

// Frame summarizes one Render call.
type Frame struct {
	Objects int
	Draws   int
}

// Composer owns the texture and material registries and the mesh library for
// one scene description.
type Composer struct {
	deps      Deps
	desc      scene.Description
	textures  *textures.Registry
	materials *materials.Registry
	meshes    *meshes.Library
	prepared  bool
}

// New returns a composer for a private copy of desc. Nothing touches the GPU
// until Prepare.
func New(deps Deps, desc scene.Description) (*Composer, error) {
	if deps.Log == nil {
		deps.Log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	d, err := desc.Clone()
	if err != nil {
		return nil, err
	}
	c := &Composer{deps: deps, desc: d}
	c.reset()
	return c, nil
}

func (c *Composer) reset() {
	c.textures = textures.NewRegistry(c.deps.Textures, c.deps.Files, c.deps.Log)
	c.materials = materials.NewRegistry()
	c.meshes = meshes.NewLibrary(c.deps.Meshes)
}

// Prepare loads textures and binds them to their slots, defines materials,
// configures lights and uploads each mesh kind once. Texture failures are
// logged and skipped; light and mesh failures are returned.
func (c *Composer) Prepare() error {
	log := c.deps.Log
	if c.prepared {
		c.Release()
	}
	for _, p := range c.desc.Validate() {
		log.Warn("composer: scene problem", "scene", c.desc.Name, "problem", p.String())
	}

	loaded := c.textures.LoadAll(c.desc.Textures)
	c.textures.BindAll()

	for _, m := range c.desc.Materials {
		c.materials.Define(m)
	}

	if err := c.desc.Lights.Apply(c.deps.Uniforms, c.deps.Names); err != nil {
		return c.abort(err)
	}
	for i, p := range c.desc.Lights.Points {
		log.Debug("composer: point light", "index", i, "active", p.Active,
			"range", p.Range(rangeThreshold))
	}

	if err := c.meshes.Load(c.desc.MeshKinds()...); err != nil {
		return c.abort(err)
	}
	c.prepared = true

	log.Info("composer: prepared", "scene", c.desc.Name,
		"textures", loaded, "textures_wanted", len(c.desc.Textures),
		"materials", c.materials.Len(), "meshes", len(c.meshes.Kinds()),
		"objects", len(c.desc.Objects))
	return nil
}

// abort undoes a partial Prepare.
func (c *Composer) abort(err error) error {
	c.textures.ReleaseAll()
	c.meshes.Release()
	c.reset()
	return fmt.Errorf("composer: prepare %s: %w", c.desc.Name, err)
}

// Render draws every object in order. Each draw is preceded by the model
// matrix, then the texture or flat color, then the material. Nothing is kept
// between calls, so every frame issues the same sequence.
func (c *Composer) Render() Frame {
	f := Frame{Objects: len(c.desc.Objects)}
	u, n := c.deps.Uniforms, c.deps.Names
	for _, o := range c.desc.Objects {
		o.Transform.Apply(u, n)
		c.surface(o)
		c.materials.Apply(u, n, o.Material)
		if err := c.meshes.Draw(o.Mesh); err != nil {
			continue
		}
		f.Draws++
	}
	return f
}

// surface selects the texture slot for o, or its flat color when the texture
// tag does not resolve. An unresolved tag without a color samples NoSlot.
func (c *Composer) surface(o scene.Object) {
	u, n := c.deps.Uniforms, c.deps.Names
	slot := textures.NoSlot
	if o.Texture != "" {
		slot = c.textures.FindSlot(o.Texture)
	}
	if slot == textures.NoSlot && o.Color != nil {
		u.SetBool(n.UseTexture, false)
		u.SetVec4(n.Color, *o.Color)
		return
	}
	u.SetBool(n.UseTexture, true)
	u.SetSampler2D(n.Texture, int32(slot))
	u.SetVec2(n.UVScale, o.UV())
}

// Release frees textures and meshes. It is safe to call more than once.
func (c *Composer) Release() {
	if !c.prepared {
		return
	}
	c.textures.ReleaseAll()
	c.meshes.Release()
	c.reset()
	c.prepared = false
	c.deps.Log.Debug("composer: released", "scene", c.desc.Name)
}

// Reload swaps in a new description and prepares it. On error the composer
// is left released.
func (c *Composer) Reload(desc scene.Description) error {
	d, err := desc.Clone()
	if err != nil {
		return err
	}
	c.Release()
	c.desc = d
	return c.Prepare()
}

// Description returns the description being rendered.
func (c *Composer) Description() scene.Description {
	return c.desc
}

// Textures returns the loaded textures in slot order.
func (c *Composer) Textures() []textures.Entry {
	return c.textures.Entries()
}

// Prepared reports whether Prepare has succeeded since the last Release.
func (c *Composer) Prepared() bool {
	return c.prepared
}
