// Package trace provides a GPU stand-in that records every uniform, texture
// and mesh call in order. It backs the dump command and the tests.
package trace

import (
	"fmt"
	"slices"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/taylorstapus/Comp-Graphics-Visuals-C/internal/meshes"
	"github.com/taylorstapus/Comp-Graphics-Visuals-C/internal/textures"
)

// Op identifies the kind of recorded call.
type Op string

const (
	OpBool    Op = "bool"
	OpInt     Op = "int"
	OpFloat   Op = "float"
	OpVec2    Op = "vec2"
	OpVec3    Op = "vec3"
	OpVec4    Op = "vec4"
	OpMat4    Op = "mat4"
	OpSampler Op = "sampler2D"

	OpUpload Op = "texture.upload"
	OpBind   Op = "texture.bind"
	OpDelete Op = "texture.delete"

	OpMeshLoad   Op = "mesh.load"
	OpDraw       Op = "mesh.draw"
	OpMeshUnload Op = "mesh.unload"
)

// Event is one recorded call. Uniform events carry the uniform name and its
// value; vectors and matrices are stored as []float32 copies. Texture and mesh
// events carry the handle in ID.
type Event struct {
	Op    Op     `yaml:"op"`
	Name  string `yaml:"name,omitempty"`
	Value any    `yaml:"value"`
	ID    uint32 `yaml:"id,omitempty"`
}

func (e Event) String() string {
	if e.Name == "" {
		return fmt.Sprintf("%s #%d %v", e.Op, e.ID, e.Value)
	}
	return fmt.Sprintf("%s %s %v", e.Op, e.Name, e.Value)
}

// Recorder implements shader.Uniforms, textures.GPU and meshes.Backend.
// Handles are assigned sequentially from 1.
type Recorder struct {
	Events []Event

	// FailUpload, when set, is consulted before each texture upload; a non-nil
	// error fails the upload.
	FailUpload func(p textures.Pixels) error

	nextTexture uint32
	nextMesh    meshes.ID
	kinds       map[meshes.ID]meshes.Kind
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{kinds: make(map[meshes.ID]meshes.Kind)}
}

func (r *Recorder) add(e Event) {
	r.Events = append(r.Events, e)
}

func (r *Recorder) SetBool(name string, v bool)     { r.add(Event{Op: OpBool, Name: name, Value: v}) }
func (r *Recorder) SetInt(name string, v int32)     { r.add(Event{Op: OpInt, Name: name, Value: v}) }
func (r *Recorder) SetFloat(name string, v float32) { r.add(Event{Op: OpFloat, Name: name, Value: v}) }

func (r *Recorder) SetVec2(name string, v mgl32.Vec2) {
	r.add(Event{Op: OpVec2, Name: name, Value: slices.Clone(v[:])})
}

func (r *Recorder) SetVec3(name string, v mgl32.Vec3) {
	r.add(Event{Op: OpVec3, Name: name, Value: slices.Clone(v[:])})
}

func (r *Recorder) SetVec4(name string, v mgl32.Vec4) {
	r.add(Event{Op: OpVec4, Name: name, Value: slices.Clone(v[:])})
}

func (r *Recorder) SetMat4(name string, v mgl32.Mat4) {
	r.add(Event{Op: OpMat4, Name: name, Value: slices.Clone(v[:])})
}

func (r *Recorder) SetSampler2D(name string, slot int32) {
	r.add(Event{Op: OpSampler, Name: name, Value: slot})
}

// Upload records the image size and returns a fresh handle.
func (r *Recorder) Upload(p textures.Pixels) (uint32, error) {
	if r.FailUpload != nil {
		if err := r.FailUpload(p); err != nil {
			return 0, err
		}
	}
	r.nextTexture++
	r.add(Event{Op: OpUpload, ID: r.nextTexture, Value: []int{p.Width, p.Height, p.Channels}})
	return r.nextTexture, nil
}

func (r *Recorder) Bind(unit int, id uint32) {
	r.add(Event{Op: OpBind, ID: id, Value: unit})
}

func (r *Recorder) Delete(id uint32) {
	r.add(Event{Op: OpDelete, ID: id})
}

// UploadMesh records the kind and returns a fresh mesh handle.
func (r *Recorder) UploadMesh(k meshes.Kind) (meshes.ID, error) {
	r.nextMesh++
	r.kinds[r.nextMesh] = k
	r.add(Event{Op: OpMeshLoad, Name: k.String(), ID: uint32(r.nextMesh)})
	return r.nextMesh, nil
}

// DrawMesh records a draw call named after the mesh kind.
func (r *Recorder) DrawMesh(id meshes.ID) {
	r.add(Event{Op: OpDraw, Name: r.kinds[id].String(), ID: uint32(id)})
}

func (r *Recorder) UnloadMesh(id meshes.ID) {
	r.add(Event{Op: OpMeshUnload, Name: r.kinds[id].String(), ID: uint32(id)})
	delete(r.kinds, id)
}

// Reset drops every recorded event. Handle counters keep counting.
func (r *Recorder) Reset() {
	r.Events = nil
}

// Filter returns the events whose op is one of ops, in order.
func (r *Recorder) Filter(ops ...Op) []Event {
	var out []Event
	for _, e := range r.Events {
		if slices.Contains(ops, e.Op) {
			out = append(out, e)
		}
	}
	return out
}

// Last returns the most recent uniform event for name.
func (r *Recorder) Last(name string) (Event, bool) {
	for i := len(r.Events) - 1; i >= 0; i-- {
		if r.Events[i].Name == name && r.Events[i].ID == 0 {
			return r.Events[i], true
		}
	}
	return Event{}, false
}

// Count returns the number of events with the given op.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, e := range r.Events {
		if e.Op == op {
			n++
		}
	}
	return n
}
