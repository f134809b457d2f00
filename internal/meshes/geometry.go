package meshes

import "github.com/chewxy/math32"

// Geometry is non-indexed triangle data: three floats per position and
// normal, two per texture coordinate.
type Geometry struct {
	Positions []float32
	Normals   []float32
	UVs       []float32
}

// VertexCount returns the number of vertices in g.
func (g Geometry) VertexCount() int {
	return len(g.Positions) / 3
}

func (g *Geometry) add(p, n [3]float32, uv [2]float32) {
	g.Positions = append(g.Positions, p[0], p[1], p[2])
	g.Normals = append(g.Normals, n[0], n[1], n[2])
	g.UVs = append(g.UVs, uv[0], uv[1])
}

// Frustum builds a capped frustum standing on Y=0 with the given
// bottom and top radius, the same base convention as the backend's cylinder.
// Triangles wind counter-clockwise when seen from outside.
func Frustum(slices int, bottom, top, height float32) Geometry {
	if slices < 3 {
		slices = 3
	}
	g := Geometry{
		Positions: make([]float32, 0, slices*12*3),
		Normals:   make([]float32, 0, slices*12*3),
		UVs:       make([]float32, 0, slices*12*2),
	}

	// side normal leans outward by the slope of the wall
	slope := bottom - top
	nlen := math32.Sqrt(height*height + slope*slope)
	ny := slope / nlen
	nh := height / nlen

	step := 2 * math32.Pi / float32(slices)
	for i := 0; i < slices; i++ {
		s0, c0 := math32.Sincos(float32(i) * step)
		s1, c1 := math32.Sincos(float32(i+1) * step)
		u0 := float32(i) / float32(slices)
		u1 := float32(i+1) / float32(slices)

		b0 := [3]float32{bottom * c0, 0, bottom * s0}
		b1 := [3]float32{bottom * c1, 0, bottom * s1}
		t0 := [3]float32{top * c0, height, top * s0}
		t1 := [3]float32{top * c1, height, top * s1}
		n0 := [3]float32{c0 * nh, ny, s0 * nh}
		n1 := [3]float32{c1 * nh, ny, s1 * nh}

		g.add(b0, n0, [2]float32{u0, 0})
		g.add(t0, n0, [2]float32{u0, 1})
		g.add(t1, n1, [2]float32{u1, 1})

		g.add(b0, n0, [2]float32{u0, 0})
		g.add(t1, n1, [2]float32{u1, 1})
		g.add(b1, n1, [2]float32{u1, 0})

		down := [3]float32{0, -1, 0}
		g.add([3]float32{0, 0, 0}, down, [2]float32{0.5, 0.5})
		g.add(b0, down, [2]float32{0.5 + 0.5*c0, 0.5 + 0.5*s0})
		g.add(b1, down, [2]float32{0.5 + 0.5*c1, 0.5 + 0.5*s1})

		up := [3]float32{0, 1, 0}
		g.add([3]float32{0, height, 0}, up, [2]float32{0.5, 0.5})
		g.add(t1, up, [2]float32{0.5 + 0.5*c1, 0.5 + 0.5*s1})
		g.add(t0, up, [2]float32{0.5 + 0.5*c0, 0.5 + 0.5*s0})
	}
	return g
}
