package meshes

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	next     ID
	uploads  []Kind
	draws    []ID
	unloads  []ID
	failKind Kind
	fail     bool
}

func (f *fakeBackend) UploadMesh(k Kind) (ID, error) {
	if f.fail && k == f.failKind {
		return 0, errors.New("out of memory")
	}
	f.next++
	f.uploads = append(f.uploads, k)
	return f.next, nil
}

func (f *fakeBackend) DrawMesh(id ID)   { f.draws = append(f.draws, id) }
func (f *fakeBackend) UnloadMesh(id ID) { f.unloads = append(f.unloads, id) }

func TestKindNames(t *testing.T) {
	for _, k := range Kinds() {
		parsed, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}
	assert.Len(t, Kinds(), 8)
	assert.Equal(t, "tapered_cylinder", TaperedCylinder.String())
	assert.Equal(t, "Kind(42)", Kind(42).String())

	_, err := ParseKind("teapot")
	assert.ErrorIs(t, err, ErrUnknownKind)

	var k Kind
	require.NoError(t, k.UnmarshalText([]byte("pyramid4")))
	assert.Equal(t, Pyramid4, k)
	assert.Error(t, k.UnmarshalText([]byte("")))
}

func TestLibraryLoadsEachKindOnce(t *testing.T) {
	b := &fakeBackend{}
	lib := NewLibrary(b)

	require.NoError(t, lib.Load(Plane, Sphere, Cone, Cone, Plane))
	require.NoError(t, lib.Load(Cone, Box))

	assert.Equal(t, []Kind{Plane, Sphere, Cone, Box}, b.uploads)
	assert.Equal(t, []Kind{Plane, Sphere, Cone, Box}, lib.Kinds())
	assert.True(t, lib.Loaded(Cone))
	assert.False(t, lib.Loaded(Prism))
}

func TestLibraryDraw(t *testing.T) {
	b := &fakeBackend{}
	lib := NewLibrary(b)
	require.NoError(t, lib.Load(Box, Sphere))

	require.NoError(t, lib.Draw(Sphere))
	require.NoError(t, lib.Draw(Box))
	assert.Equal(t, []ID{2, 1}, b.draws)

	err := lib.Draw(Prism)
	assert.ErrorIs(t, err, ErrNotLoaded)
	assert.Len(t, b.draws, 2)
}

func TestLibraryLoadError(t *testing.T) {
	b := &fakeBackend{fail: true, failKind: Sphere}
	lib := NewLibrary(b)

	err := lib.Load(Plane, Sphere, Box)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sphere")
	assert.True(t, lib.Loaded(Plane))
	assert.False(t, lib.Loaded(Box))

	assert.ErrorIs(t, lib.Load(Kind(-1)), ErrUnknownKind)
}

func TestLibraryRelease(t *testing.T) {
	b := &fakeBackend{}
	lib := NewLibrary(b)
	require.NoError(t, lib.Load(Plane, Box))

	lib.Release()
	assert.Equal(t, []ID{1, 2}, b.unloads)
	assert.False(t, lib.Loaded(Plane))
	assert.Empty(t, lib.Kinds())

	lib.Release()
	assert.Len(t, b.unloads, 2)

	require.NoError(t, lib.Load(Plane))
	assert.Equal(t, []Kind{Plane, Box, Plane}, b.uploads)
}

func TestFrustum(t *testing.T) {
	const slices = 16
	g := Frustum(slices, 1, 0.5, 1)

	require.Equal(t, slices*12, g.VertexCount())
	require.Len(t, g.Normals, len(g.Positions))
	require.Len(t, g.UVs, g.VertexCount()*2)

	for i := 0; i < g.VertexCount(); i++ {
		x, y, z := g.Positions[i*3], g.Positions[i*3+1], g.Positions[i*3+2]
		assert.True(t, y == 0 || y == 1, "y=%v", y)

		r := math32.Sqrt(x*x + z*z)
		if y == 0 {
			assert.LessOrEqual(t, r, float32(1.0001))
		} else {
			assert.LessOrEqual(t, r, float32(0.5001))
		}

		nx, ny, nz := g.Normals[i*3], g.Normals[i*3+1], g.Normals[i*3+2]
		assert.InDelta(t, 1, math32.Sqrt(nx*nx+ny*ny+nz*nz), 1e-5)
	}

	// fewer than three slices is not a solid
	assert.Equal(t, 3*12, Frustum(1, 1, 1, 1).VertexCount())
}
