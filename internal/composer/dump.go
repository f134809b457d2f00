package composer

import (
	"io"
	"io/fs"
	"log/slog"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/taylorstapus/Comp-Graphics-Visuals-C/internal/scene"
	"github.com/taylorstapus/Comp-Graphics-Visuals-C/internal/shader"
	"github.com/taylorstapus/Comp-Graphics-Visuals-C/internal/trace"
)

// Dump is the call trace of one Prepare followed by a number of Render calls.
type Dump struct {
	Scene   string          `yaml:"scene"`
	Prepare []trace.Event   `yaml:"prepare"`
	Frames  [][]trace.Event `yaml:"frames"`
}

// Record prepares desc against a recording backend and renders it frames
// times, returning every call made. Texture paths resolve in files.
func Record(desc scene.Description, files fs.FS, frames int, log *slog.Logger) (Dump, error) {
	rec := trace.NewRecorder()
	c, err := New(Deps{
		Uniforms: rec,
		Names:    shader.DefaultNames(),
		Textures: rec,
		Files:    files,
		Meshes:   rec,
		Log:      log,
	}, desc)
	if err != nil {
		return Dump{}, err
	}
	if err := c.Prepare(); err != nil {
		return Dump{}, err
	}
	defer c.Release()

	d := Dump{Scene: desc.Name, Prepare: slices.Clone(rec.Events)}
	for i := 0; i < frames; i++ {
		rec.Reset()
		c.Render()
		d.Frames = append(d.Frames, slices.Clone(rec.Events))
	}
	return d, nil
}

// WriteYAML writes d as a YAML document.
func (d Dump) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return err
	}
	return enc.Close()
}
