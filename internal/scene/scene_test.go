package scene

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taylorstapus/Comp-Graphics-Visuals-C/internal/lights"
	"github.com/taylorstapus/Comp-Graphics-Visuals-C/internal/meshes"
	"github.com/taylorstapus/Comp-Graphics-Visuals-C/internal/textures"
	"github.com/taylorstapus/Comp-Graphics-Visuals-C/internal/transform"
)

const small = `
name: small
textures:
  - {tag: floor, path: floor.png}
materials:
  - {tag: wood, diffuse: [0.3, 0.3, 0.3], specular: [0.4, 0.4, 0.4], shininess: 40}
lights:
  use_lighting: true
  directional: {direction: [0, -1, 0], ambient: [0.2, 0.2, 0.2], diffuse: [0.7, 0.7, 0.7], specular: [0, 0, 0], active: true}
objects:
  - name: floor
    mesh: plane
    scale: [20, 1, 20]
    position: [0, 0, 0]
    texture: floor
    material: wood
  - name: ball
    mesh: sphere
    scale: [1, 1, 1]
    position: [0, 1, 0]
    color: [1, 0, 0, 1]
    material: wood
`

func TestRoom(t *testing.T) {
	d := Room()

	assert.Equal(t, "room", d.Name)
	assert.Len(t, d.Objects, 33)
	assert.Len(t, d.Textures, 14)
	assert.Len(t, d.Materials, 8)
	assert.Len(t, d.Lights.Points, lights.MaxPointLights)
	assert.True(t, d.Lights.UseLighting)
	assert.Empty(t, d.Validate())
	assert.NoError(t, d.Check())

	assert.Equal(t, meshes.Kinds(), d.MeshKinds())

	first := d.Objects[0]
	assert.Equal(t, "floor", first.Name)
	assert.Equal(t, meshes.Plane, first.Mesh)
	assert.Equal(t, mgl32.Vec3{20, 1, 20}, first.Transform.Scale)
	assert.Equal(t, mgl32.Vec2{1, 1}, first.UV())

	var lampTop Object
	for _, o := range d.Objects {
		if o.Name == "lamp top" {
			lampTop = o
		}
	}
	require.NotNil(t, lampTop.Color)
	assert.Equal(t, mgl32.Vec4{0.3, 0.3, 0.3, 0.3}, *lampTop.Color)
	assert.Equal(t, "lamp_top", lampTop.Texture)
	assert.Equal(t, meshes.TaperedCylinder, lampTop.Mesh)

	wall := d.Objects[1]
	assert.Equal(t, mgl32.Vec3{90, 90, 0}, wall.Transform.Rotation)
	assert.Equal(t, mgl32.Vec3{20, 20, 0}, wall.Transform.Position)
}

func TestParse(t *testing.T) {
	d, err := Parse([]byte(small))
	require.NoError(t, err)

	require.Len(t, d.Objects, 2)
	assert.Equal(t, mgl32.Vec3{20, 1, 20}, d.Objects[0].Transform.Scale)
	assert.Equal(t, []meshes.Kind{meshes.Plane, meshes.Sphere}, d.MeshKinds())
	assert.Equal(t, textures.Source{Tag: "floor", Path: "floor.png"}, d.Textures[0])
	assert.Empty(t, d.Lights.Points)
}

func TestParseErrors(t *testing.T) {
	tests := map[string]string{
		"empty":         "",
		"unknown key":   "name: x\nwidgets: 3\n",
		"unknown mesh":  "objects:\n  - {name: pot, mesh: teapot}\n",
		"short vector":  "objects:\n  - {name: a, mesh: box, scale: [1, 2]}\n",
		"not a mapping": "- 1\n- 2\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	room := Room()
	data, err := room.Marshal()
	require.NoError(t, err)

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, room, back)
}

func TestValidate(t *testing.T) {
	d, err := Parse([]byte(small))
	require.NoError(t, err)
	require.Empty(t, d.Validate())

	zero := mgl32.Vec2{0, 1}
	unit := transform.Transform{Scale: mgl32.Vec3{1, 1, 1}}
	d.Textures = append(d.Textures, d.Textures[0])
	d.Objects = append(d.Objects,
		Object{Name: "lost", Mesh: meshes.Box, Transform: unit, Texture: "nope", Material: "wood"},
		Object{Name: "tinted", Mesh: meshes.Box, Transform: unit, Texture: "nope", Color: &mgl32.Vec4{1, 1, 1, 1}, Material: "wood"},
		Object{Name: "bare", Mesh: meshes.Box, Transform: unit, Material: "steel"},
		Object{Name: "squashed", Mesh: meshes.Box, Transform: unit, Texture: "floor", UVScale: &zero, Material: "wood"},
		Object{Name: "plain", Mesh: meshes.Box, Transform: unit, Texture: "floor"},
		Object{Name: "flat", Mesh: meshes.Plane, Transform: transform.Transform{Scale: mgl32.Vec3{20, 0, 20}}, Texture: "floor", Material: "wood"},
	)
	d.Lights.Points = make([]lights.Point, lights.MaxPointLights+1)

	want := []Problem{
		{Msg: `duplicate texture tag "floor"`},
		{Msg: "5 point lights, max 4"},
		{Object: "lost", Msg: `unknown texture "nope" and no color`},
		{Object: "bare", Msg: "neither texture nor color"},
		{Object: "bare", Msg: `unknown material "steel"`},
		{Object: "squashed", Msg: "zero uv scale"},
		{Object: "plain", Msg: "no material"},
		{Object: "flat", Msg: "scale [20 0 20] has a zero component"},
	}
	assert.Equal(t, want, d.Validate())

	err = d.Check()
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "and 7 more")
}

func TestCheckFiles(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewNRGBA(image.Rect(0, 0, 2, 2))))

	d := Description{Textures: []textures.Source{
		{Tag: "ok", Path: "ok.png"},
		{Tag: "gone", Path: "gone.png"},
		{Tag: "junk", Path: "junk.png"},
	}}
	files := fstest.MapFS{
		"ok.png":   {Data: buf.Bytes()},
		"junk.png": {Data: []byte("junk")},
	}

	problems := d.CheckFiles(files)
	require.Len(t, problems, 2)
	assert.Contains(t, problems[0].Msg, `"gone"`)
	assert.Contains(t, problems[1].Msg, `"junk"`)
}

func TestClone(t *testing.T) {
	room := Room()
	c, err := room.Clone()
	require.NoError(t, err)
	assert.Equal(t, room, c)

	c.Objects[0].Name = "changed"
	c.Lights.Points[0].Active = false
	c.Textures = c.Textures[:1]
	assert.Equal(t, "floor", room.Objects[0].Name)
	assert.True(t, room.Lights.Points[0].Active)
	assert.Len(t, room.Textures, 14)
}

func TestWatchReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(small), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan Description, 4)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, slog.New(slog.NewTextHandler(io.Discard, nil)), func(d Description) { got <- d })
	}()

	// broken files are skipped, the next good save is delivered
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("objects: [oops"), 0o644))
	time.Sleep(2 * settle)
	require.NoError(t, os.WriteFile(path, bytes.Replace([]byte(small), []byte("name: small"), []byte("name: edited"), 1), 0o644))

	select {
	case d := <-got:
		assert.Equal(t, "edited", d.Name)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}
