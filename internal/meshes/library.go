package meshes

import (
	"errors"
	"fmt"
)

// ErrNotLoaded is returned when drawing a kind that was never loaded.
var ErrNotLoaded = errors.New("mesh not loaded")

// ID is a backend handle for an uploaded mesh.
type ID uint32

// Backend owns the GPU buffers of uploaded meshes.
type Backend interface {
	UploadMesh(k Kind) (ID, error)
	// DrawMesh issues one draw call with whatever uniforms are currently set.
	DrawMesh(id ID)
	UnloadMesh(id ID)
}

// Library keeps one uploaded mesh per kind. Only one copy of a mesh needs to
// live on the GPU no matter how many times it is drawn.
type Library struct {
	backend Backend
	loaded  map[Kind]ID
	order   []Kind
}

// NewLibrary returns an empty library that uploads through b.
func NewLibrary(b Backend) *Library {
	return &Library{backend: b, loaded: make(map[Kind]ID)}
}

// Load uploads each kind that is not loaded yet. Repeated kinds are skipped.
func (l *Library) Load(kinds ...Kind) error {
	for _, k := range kinds {
		if _, ok := l.loaded[k]; ok {
			continue
		}
		if int(k) < 0 || int(k) >= len(kindNames) {
			return fmt.Errorf("meshes: load: %w: %d", ErrUnknownKind, int(k))
		}
		id, err := l.backend.UploadMesh(k)
		if err != nil {
			return fmt.Errorf("meshes: load %s: %w", k, err)
		}
		l.loaded[k] = id
		l.order = append(l.order, k)
	}
	return nil
}

// Loaded reports whether k has been uploaded.
func (l *Library) Loaded(k Kind) bool {
	_, ok := l.loaded[k]
	return ok
}

// Kinds returns the loaded kinds in upload order.
func (l *Library) Kinds() []Kind {
	out := make([]Kind, len(l.order))
	copy(out, l.order)
	return out
}

// Draw issues the draw call for k.
func (l *Library) Draw(k Kind) error {
	id, ok := l.loaded[k]
	if !ok {
		return fmt.Errorf("meshes: draw %s: %w", k, ErrNotLoaded)
	}
	l.backend.DrawMesh(id)
	return nil
}

// Release unloads every mesh. The library can be loaded again afterwards.
func (l *Library) Release() {
	for _, k := range l.order {
		l.backend.UnloadMesh(l.loaded[k])
	}
	l.loaded = make(map[Kind]ID)
	l.order = nil
}
