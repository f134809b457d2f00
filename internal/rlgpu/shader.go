// Package rlgpu is the raylib backend: it implements shader.Uniforms,
// textures.GPU and meshes.Backend on top of raylib-go. Every call must come
// from the goroutine that opened the window.
package rlgpu

import (
	"errors"
	"log/slog"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// ErrShader is returned when the scene shader fails to compile or link.
var ErrShader = errors.New("rlgpu: scene shader failed to load")

// Shader is the scene's shader program. Uniform locations are looked up once
// and cached; names the program does not use are logged once and ignored.
type Shader struct {
	prog rl.Shader
	locs map[string]int32
	log  *slog.Logger
}

// LoadShader compiles the scene program. The window must already be open.
func LoadShader(log *slog.Logger) (*Shader, error) {
	prog := rl.LoadShaderFromMemory(sceneVS, sceneFS)
	if !rl.IsShaderValid(prog) {
		return nil, ErrShader
	}
	log.Debug("rlgpu: shader loaded", "id", prog.ID)
	return &Shader{prog: prog, locs: make(map[string]int32), log: log}, nil
}

// Program returns the raylib shader handle.
func (s *Shader) Program() rl.Shader {
	return s.prog
}

// Unload frees the program.
func (s *Shader) Unload() {
	rl.UnloadShader(s.prog)
}

func (s *Shader) loc(name string) int32 {
	if l, ok := s.locs[name]; ok {
		return l
	}
	l := rl.GetShaderLocation(s.prog, name)
	if l < 0 {
		// the GLSL compiler drops uniforms that do not affect the output
		s.log.Debug("rlgpu: uniform not found", "name", name)
	}
	s.locs[name] = l
	return l
}

// intBits carries an int through raylib's float32-typed uniform setter.
func intBits(v int32) []float32 {
	return []float32{math.Float32frombits(uint32(v))}
}

func (s *Shader) SetBool(name string, v bool) {
	var i int32
	if v {
		i = 1
	}
	s.SetInt(name, i)
}

func (s *Shader) SetInt(name string, v int32) {
	if l := s.loc(name); l >= 0 {
		rl.SetShaderValue(s.prog, l, intBits(v), rl.ShaderUniformInt)
	}
}

func (s *Shader) SetFloat(name string, v float32) {
	if l := s.loc(name); l >= 0 {
		rl.SetShaderValue(s.prog, l, []float32{v}, rl.ShaderUniformFloat)
	}
}

func (s *Shader) SetVec2(name string, v mgl32.Vec2) {
	if l := s.loc(name); l >= 0 {
		rl.SetShaderValue(s.prog, l, v[:], rl.ShaderUniformVec2)
	}
}

func (s *Shader) SetVec3(name string, v mgl32.Vec3) {
	if l := s.loc(name); l >= 0 {
		rl.SetShaderValue(s.prog, l, v[:], rl.ShaderUniformVec3)
	}
}

func (s *Shader) SetVec4(name string, v mgl32.Vec4) {
	if l := s.loc(name); l >= 0 {
		rl.SetShaderValue(s.prog, l, v[:], rl.ShaderUniformVec4)
	}
}

func (s *Shader) SetMat4(name string, m mgl32.Mat4) {
	if l := s.loc(name); l >= 0 {
		rl.SetShaderValueMatrix(s.prog, l, matrix(m))
	}
}

// SetSampler2D points the sampler at a texture unit. Negative slots are
// passed to the driver as-is, which leaves the sampler unchanged.
func (s *Shader) SetSampler2D(name string, slot int32) {
	if l := s.loc(name); l >= 0 {
		rl.SetShaderValue(s.prog, l, intBits(slot), rl.ShaderUniformSampler2d)
	}
}

// matrix converts a column-major mgl32 matrix to raylib's layout, which is
// column-major as well but stored as named fields.
func matrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}
