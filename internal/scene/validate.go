package scene

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/taylorstapus/Comp-Graphics-Visuals-C/internal/lights"
	"github.com/taylorstapus/Comp-Graphics-Visuals-C/internal/textures"
)

// ErrInvalid is wrapped by Check when a description has problems.
var ErrInvalid = errors.New("invalid scene")

// Problem is one thing wrong with a description. Object is empty for
// problems that are not about a single object.
type Problem struct {
	Object string `yaml:"object,omitempty"`
	Msg    string `yaml:"msg"`
}

func (p Problem) String() string {
	if p.Object == "" {
		return p.Msg
	}
	return fmt.Sprintf("object %q: %s", p.Object, p.Msg)
}

// Validate reports references that will not resolve at render time and
// limits the renderer cannot honor. None of them stop rendering: an
// unresolved texture samples slot -1, a missing or unknown material leaves
// the previous one in place and a zero scale collapses the object.
func (d Description) Validate() []Problem {
	var out []Problem
	add := func(obj, format string, args ...any) {
		out = append(out, Problem{Object: obj, Msg: fmt.Sprintf(format, args...)})
	}

	texTags := make(map[string]bool)
	for _, t := range d.Textures {
		if texTags[t.Tag] {
			add("", "duplicate texture tag %q", t.Tag)
		}
		texTags[t.Tag] = true
	}
	if len(d.Textures) > textures.MaxSlots {
		add("", "%d textures, only %d slots", len(d.Textures), textures.MaxSlots)
	}

	matTags := make(map[string]bool)
	for _, m := range d.Materials {
		if matTags[m.Tag] {
			add("", "duplicate material tag %q", m.Tag)
		}
		matTags[m.Tag] = true
	}

	if n := len(d.Lights.Points); n > lights.MaxPointLights {
		add("", "%d point lights, max %d", n, lights.MaxPointLights)
	}

	for _, o := range d.Objects {
		switch {
		case o.Texture != "" && !texTags[o.Texture]:
			if o.Color == nil {
				add(o.Name, "unknown texture %q and no color", o.Texture)
			}
		case o.Texture == "" && o.Color == nil:
			add(o.Name, "neither texture nor color")
		}
		switch {
		case o.Material == "":
			add(o.Name, "no material")
		case !matTags[o.Material]:
			add(o.Name, "unknown material %q", o.Material)
		}
		if s := o.Transform.Scale; s.X() == 0 || s.Y() == 0 || s.Z() == 0 {
			add(o.Name, "scale %v has a zero component", s)
		}
		if uv := o.UV(); uv.X() == 0 || uv.Y() == 0 {
			add(o.Name, "zero uv scale")
		}
	}
	return out
}

// Check returns an error wrapping ErrInvalid when Validate finds problems.
func (d Description) Check() error {
	problems := d.Validate()
	switch len(problems) {
	case 0:
		return nil
	case 1:
		return fmt.Errorf("%w: %s", ErrInvalid, problems[0])
	}
	return fmt.Errorf("%w: %s (and %d more)", ErrInvalid, problems[0], len(problems)-1)
}

// CheckFiles reports textures that cannot be opened or decoded from fsys.
func (d Description) CheckFiles(fsys fs.FS) []Problem {
	var out []Problem
	for _, t := range d.Textures {
		f, err := fsys.Open(t.Path)
		if err != nil {
			out = append(out, Problem{Msg: fmt.Sprintf("texture %q: %v", t.Tag, err)})
			continue
		}
		_, err = textures.Decode(f)
		f.Close()
		if err != nil {
			out = append(out, Problem{Msg: fmt.Sprintf("texture %q: %v", t.Tag, err)})
		}
	}
	return out
}
