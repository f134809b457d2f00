package rlgpu

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/taylorstapus/Comp-Graphics-Visuals-C/internal/meshes"
)

// Mesh resolution. The room is small enough that every mesh stays well under
// raylib's 16-bit index limit.
const (
	roundSlices = 32
	sphereRings = 24
)

// Meshes generates and draws the procedural meshes. Every draw uses the
// scene shader through one shared material whose albedo map is cleared, so
// DrawMesh leaves the bound texture units alone.
type Meshes struct {
	mtl    rl.Material
	meshes map[meshes.ID]rl.Mesh
	next   meshes.ID
}

// NewMeshes returns a mesh backend drawing with s.
func NewMeshes(s *Shader) *Meshes {
	mtl := rl.LoadMaterialDefault()
	mtl.Shader = s.Program()
	if albedo := mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Texture.ID = 0
		albedo.Color = rl.White
	}
	return &Meshes{mtl: mtl, meshes: make(map[meshes.ID]rl.Mesh)}
}

// generate builds the unit-sized mesh for k. Planes span -1..1 in XZ; boxes
// and spheres are centered on the origin; round solids stand on Y=0 with
// height 1.
func generate(k meshes.Kind) (rl.Mesh, error) {
	switch k {
	case meshes.Plane:
		return rl.GenMeshPlane(2, 2, 1, 1), nil
	case meshes.Sphere:
		return rl.GenMeshSphere(1, sphereRings, roundSlices), nil
	case meshes.Cylinder:
		return rl.GenMeshCylinder(1, 1, roundSlices), nil
	case meshes.Box:
		return rl.GenMeshCube(1, 1, 1), nil
	case meshes.Cone:
		return rl.GenMeshCone(1, 1, roundSlices), nil
	case meshes.Prism:
		return rl.GenMeshCylinder(0.5, 1, 3), nil
	case meshes.Pyramid4:
		// a four-sided cone; radius sqrt(2)/2 gives a base with unit sides
		return rl.GenMeshCone(0.70710678, 1, 4), nil
	case meshes.TaperedCylinder:
		return upload(meshes.Frustum(roundSlices, 1, 0.5, 1)), nil
	}
	return rl.Mesh{}, fmt.Errorf("rlgpu: %w: %s", meshes.ErrUnknownKind, k)
}

// upload sends Go-built geometry to the GPU. The CPU-side arrays are dropped
// afterwards; drawing only needs the vertex array object.
func upload(g meshes.Geometry) rl.Mesh {
	n := g.VertexCount()
	m := rl.Mesh{
		VertexCount:   int32(n),
		TriangleCount: int32(n / 3),
		Vertices:      &g.Positions[0],
		Normals:       &g.Normals[0],
		Texcoords:     &g.UVs[0],
	}
	rl.UploadMesh(&m, false)
	m.Vertices, m.Normals, m.Texcoords = nil, nil, nil
	return m
}

// UploadMesh generates k and returns its handle.
func (b *Meshes) UploadMesh(k meshes.Kind) (meshes.ID, error) {
	m, err := generate(k)
	if err != nil {
		return 0, err
	}
	if m.VaoID == 0 && m.VertexCount == 0 {
		return 0, fmt.Errorf("rlgpu: generating %s produced no vertices", k)
	}
	b.next++
	b.meshes[b.next] = m
	return b.next, nil
}

// DrawMesh draws id with the current uniforms. The model matrix is supplied
// by the scene through the shader, so raylib's own transform is identity.
func (b *Meshes) DrawMesh(id meshes.ID) {
	m, ok := b.meshes[id]
	if !ok {
		return
	}
	rl.DrawMesh(m, b.mtl, rl.MatrixIdentity())
}

// UnloadMesh frees id.
func (b *Meshes) UnloadMesh(id meshes.ID) {
	m, ok := b.meshes[id]
	if !ok {
		return
	}
	rl.UnloadMesh(&m)
	delete(b.meshes, id)
}
