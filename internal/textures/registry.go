package textures

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
)

// MaxSlots is the number of texture units the scene shader can sample from.
const MaxSlots = 16

// NoSlot is returned by FindSlot for a tag that was never loaded.
const NoSlot = -1

// ErrSlotsExhausted is returned when loading past MaxSlots textures.
var ErrSlotsExhausted = errors.New("texture slots exhausted")

// GPU uploads decoded pixels and manages the resulting texture handles.
// Upload is expected to set repeat wrapping, linear filtering and mipmaps.
type GPU interface {
	Upload(p Pixels) (uint32, error)
	Bind(unit int, id uint32)
	Delete(id uint32)
}

// Source names one texture file to load under a tag.
type Source struct {
	Tag  string `yaml:"tag"`
	Path string `yaml:"path"`
}

// Entry is a loaded texture. Its index in the registry is its slot.
type Entry struct {
	ID  uint32
	Tag string
}

// Registry holds loaded textures in registration order. Tags are looked up by
// linear scan; the first match wins.
type Registry struct {
	gpu     GPU
	fsys    fs.FS
	log     *slog.Logger
	entries []Entry
}

// NewRegistry returns an empty registry that reads image files from fsys and
// uploads through gpu. A nil log discards messages.
func NewRegistry(gpu GPU, fsys fs.FS, log *slog.Logger) *Registry {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Registry{gpu: gpu, fsys: fsys, log: log}
}

// Load decodes the image at path, uploads it and records it under tag.
// Failures are logged and reported as false; the registry is unchanged.
func (r *Registry) Load(path, tag string) bool {
	p, err := r.load(path, tag)
	if err != nil {
		r.log.Error("textures: load failed", "tag", tag, "path", path, "err", err)
		return false
	}
	r.log.Info("textures: loaded", "tag", tag, "path", path,
		"width", p.Width, "height", p.Height, "channels", p.Channels, "slot", len(r.entries)-1)
	return true
}

func (r *Registry) load(path, tag string) (Pixels, error) {
	if len(r.entries) >= MaxSlots {
		return Pixels{}, fmt.Errorf("%w: %d in use", ErrSlotsExhausted, MaxSlots)
	}
	f, err := r.fsys.Open(path)
	if err != nil {
		return Pixels{}, err
	}
	defer f.Close()

	p, err := Decode(f)
	if err != nil {
		return Pixels{}, err
	}
	id, err := r.gpu.Upload(p)
	if err != nil {
		return Pixels{}, fmt.Errorf("textures: upload: %w", err)
	}
	r.entries = append(r.entries, Entry{ID: id, Tag: tag})
	// only the header is needed past this point
	p.Data = nil
	return p, nil
}

// LoadAll loads every source in order and returns how many succeeded.
func (r *Registry) LoadAll(srcs []Source) int {
	n := 0
	for _, s := range srcs {
		if r.Load(s.Path, s.Tag) {
			n++
		}
	}
	return n
}

// BindAll binds the i-th registered texture to texture unit i.
func (r *Registry) BindAll() {
	for i, e := range r.entries {
		r.gpu.Bind(i, e.ID)
	}
}

// FindID returns the GPU handle of the first texture registered under tag.
func (r *Registry) FindID(tag string) (uint32, bool) {
	for _, e := range r.entries {
		if e.Tag == tag {
			return e.ID, true
		}
	}
	return 0, false
}

// FindSlot returns the slot of the first texture registered under tag, or
// NoSlot.
func (r *Registry) FindSlot(tag string) int {
	for i, e := range r.entries {
		if e.Tag == tag {
			return i
		}
	}
	return NoSlot
}

// ReleaseAll deletes every texture and empties the registry.
func (r *Registry) ReleaseAll() {
	for _, e := range r.entries {
		r.gpu.Delete(e.ID)
	}
	r.entries = nil
}

// Entries returns a copy of the registered textures in slot order.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of registered textures.
func (r *Registry) Len() int {
	return len(r.entries)
}
