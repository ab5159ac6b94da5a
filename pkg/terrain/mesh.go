package terrain

import "github.com/go-gl/mathgl/mgl64"

// TerrainMesh is the terminal artifact of a run: a renderable grid mesh.
// Vertices are row-major in the same order the grid was sampled, so the
// buffer is reproducible run-to-run and safe to hash in tests.
type TerrainMesh struct {
	Vertices []mgl64.Vec3
	Faces    [][4]int // quad corner indices into Vertices
	Smooth   bool
}

// Tessellate samples the elevation function on the configured grid and
// emits one quad per grid cell. The uniform grid guarantees no gaps or
// T-junctions; all faces are flagged for smooth shading.
func Tessellate(cfg WorldConfig, elevation func(x, y float64) float64) (*TerrainMesh, error) {
	grid, err := GenerateGrid(cfg, elevation)
	if err != nil {
		return nil, err
	}
	return MeshFromGrid(grid), nil
}

// Tessellate builds the mesh for this synthesizer's world.
func (s *Synthesizer) Tessellate() (*TerrainMesh, error) {
	return Tessellate(s.doc.World, s.ElevationAt)
}

// MeshFromGrid tessellates an already-generated grid.
func MeshFromGrid(g *HeightFieldGrid) *TerrainMesh {
	res := g.cfg.Resolution
	n := res + 1

	mesh := &TerrainMesh{
		Vertices: make([]mgl64.Vec3, 0, n*n),
		Faces:    make([][4]int, 0, res*res),
		Smooth:   true,
	}

	for iy := 0; iy < n; iy++ {
		for ix := 0; ix < n; ix++ {
			x, y := g.PosAt(ix, iy)
			mesh.Vertices = append(mesh.Vertices, mgl64.Vec3{x, y, g.heights[iy][ix]})
		}
	}

	for iy := 0; iy < res; iy++ {
		for ix := 0; ix < res; ix++ {
			i := iy*n + ix
			mesh.Faces = append(mesh.Faces, [4]int{i, i + 1, i + n + 1, i + n})
		}
	}

	return mesh
}
