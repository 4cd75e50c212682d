// Package procmesh generates small procedural triangle meshes
// (interleaved position+normal vertices, uint32 indices) so demo
// programs don't need to ship or load an external asset.
package procmesh

import "github.com/chewxy/math32"

// Mesh is a generated triangle mesh: Vertices holds interleaved
// position (3 floats) and normal (3 floats) per vertex, and Indices
// lists triangle corners as vertex indices.
type Mesh struct {
	Vertices []float32
	Indices  []uint32
}

// Cube returns a unit cube centered at the origin, each face split
// into two triangles with flat per-face normals.
func Cube() Mesh {
	faces := []struct {
		normal   [3]float32
		corners  [4][3]float32
	}{
		{[3]float32{0, 0, 1}, [4][3]float32{{-.5, -.5, .5}, {.5, -.5, .5}, {.5, .5, .5}, {-.5, .5, .5}}},
		{[3]float32{0, 0, -1}, [4][3]float32{{.5, -.5, -.5}, {-.5, -.5, -.5}, {-.5, .5, -.5}, {.5, .5, -.5}}},
		{[3]float32{1, 0, 0}, [4][3]float32{{.5, -.5, .5}, {.5, -.5, -.5}, {.5, .5, -.5}, {.5, .5, .5}}},
		{[3]float32{-1, 0, 0}, [4][3]float32{{-.5, -.5, -.5}, {-.5, -.5, .5}, {-.5, .5, .5}, {-.5, .5, -.5}}},
		{[3]float32{0, 1, 0}, [4][3]float32{{-.5, .5, .5}, {.5, .5, .5}, {.5, .5, -.5}, {-.5, .5, -.5}}},
		{[3]float32{0, -1, 0}, [4][3]float32{{-.5, -.5, -.5}, {.5, -.5, -.5}, {.5, -.5, .5}, {-.5, -.5, .5}}},
	}

	var m Mesh
	for _, f := range faces {
		base := uint32(len(m.Vertices) / 6)
		for _, c := range f.corners {
			m.Vertices = append(m.Vertices, c[0], c[1], c[2], f.normal[0], f.normal[1], f.normal[2])
		}
		m.Indices = append(m.Indices,
			base, base+1, base+2,
			base, base+2, base+3,
		)
	}
	return m
}

// Icosphere returns a unit icosahedron subdivided subdivisions times
// and re-projected onto the unit sphere, with per-vertex normals
// equal to the (already unit-length) position.
func Icosphere(subdivisions int) Mesh {
	t := (1 + math32.Sqrt(5)) / 2

	verts := [][3]float32{
		{-1, t, 0}, {1, t, 0}, {-1, -t, 0}, {1, -t, 0},
		{0, -1, t}, {0, 1, t}, {0, -1, -t}, {0, 1, -t},
		{t, 0, -1}, {t, 0, 1}, {-t, 0, -1}, {-t, 0, 1},
	}
	for i := range verts {
		verts[i] = normalize(verts[i])
	}

	indices := [][3]uint32{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}

	cache := make(map[[2]uint32]uint32)
	midpoint := func(a, b uint32) uint32 {
		key := [2]uint32{a, b}
		if a > b {
			key = [2]uint32{b, a}
		}
		if i, ok := cache[key]; ok {
			return i
		}
		m := normalize([3]float32{
			(verts[a][0] + verts[b][0]) / 2,
			(verts[a][1] + verts[b][1]) / 2,
			(verts[a][2] + verts[b][2]) / 2,
		})
		verts = append(verts, m)
		i := uint32(len(verts) - 1)
		cache[key] = i
		return i
	}

	for s := 0; s < subdivisions; s++ {
		next := make([][3]uint32, 0, len(indices)*4)
		for _, tri := range indices {
			a := midpoint(tri[0], tri[1])
			b := midpoint(tri[1], tri[2])
			c := midpoint(tri[2], tri[0])
			next = append(next,
				[3]uint32{tri[0], a, c},
				[3]uint32{tri[1], b, a},
				[3]uint32{tri[2], c, b},
				[3]uint32{a, b, c},
			)
		}
		indices = next
	}

	var m Mesh
	for _, v := range verts {
		m.Vertices = append(m.Vertices, v[0], v[1], v[2], v[0], v[1], v[2])
	}
	for _, tri := range indices {
		m.Indices = append(m.Indices, tri[0], tri[1], tri[2])
	}
	return m
}

func normalize(v [3]float32) [3]float32 {
	l := math32.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	return [3]float32{v[0] / l, v[1] / l, v[2] / l}
}
