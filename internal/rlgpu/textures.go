package rlgpu

import (
	"errors"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/taylorstapus/Comp-Graphics-Visuals-C/internal/textures"
)

// Textures uploads decoded images as raylib textures and remembers which
// unit each one is bound to.
type Textures struct {
	loaded map[uint32]rl.Texture2D
	bound  map[int]uint32
}

// NewTextures returns an empty texture backend.
func NewTextures() *Textures {
	return &Textures{loaded: make(map[uint32]rl.Texture2D), bound: make(map[int]uint32)}
}

// Upload creates a texture with repeat wrapping, linear filtering and a full
// mipmap chain.
func (t *Textures) Upload(p textures.Pixels) (uint32, error) {
	var format rl.PixelFormat
	switch p.Channels {
	case 3:
		format = rl.UncompressedR8g8b8
	case 4:
		format = rl.UncompressedR8g8b8a8
	default:
		return 0, fmt.Errorf("rlgpu: %d channels: %w", p.Channels, textures.ErrUnsupportedChannels)
	}
	if len(p.Data) == 0 {
		return 0, errors.New("rlgpu: empty image")
	}

	img := rl.NewImage(p.Data, int32(p.Width), int32(p.Height), 1, format)
	tex := rl.LoadTextureFromImage(img)
	if !rl.IsTextureValid(tex) {
		return 0, fmt.Errorf("rlgpu: texture upload failed (%dx%d)", p.Width, p.Height)
	}
	rl.GenTextureMipmaps(&tex)
	rl.SetTextureWrap(tex, rl.WrapRepeat)
	rl.SetTextureFilter(tex, rl.FilterBilinear)

	t.loaded[tex.ID] = tex
	return tex.ID, nil
}

// Bind makes id the texture on the given unit.
func (t *Textures) Bind(unit int, id uint32) {
	rl.ActiveTextureSlot(int32(unit))
	rl.EnableTexture(id)
	rl.ActiveTextureSlot(0)
	t.bound[unit] = id
}

// Rebind restores every binding made with Bind. raylib's 2D batch renderer
// binds its own textures on unit 0 while drawing the overlay, so the run loop
// calls this at the start of each 3D pass.
func (t *Textures) Rebind() {
	for unit, id := range t.bound {
		rl.ActiveTextureSlot(int32(unit))
		rl.EnableTexture(id)
	}
	rl.ActiveTextureSlot(0)
}

// Delete frees the texture and drops any binding to it.
func (t *Textures) Delete(id uint32) {
	tex, ok := t.loaded[id]
	if !ok {
		return
	}
	rl.UnloadTexture(tex)
	delete(t.loaded, id)
	for unit, b := range t.bound {
		if b == id {
			delete(t.bound, unit)
		}
	}
}
