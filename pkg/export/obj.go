// Package export holds the downstream collaborators of the terrain core:
// mesh interchange and preview rendering. Nothing in here feeds back into
// generation.
package export

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/StoreStation/TerraForge/pkg/terrain"
)

// WriteOBJ encodes the mesh as Wavefront OBJ. Quads are kept as quads and
// vertices are written in mesh order with fixed precision, so the output
// is byte-identical across runs for the same mesh.
func WriteOBJ(w io.Writer, mesh *terrain.TerrainMesh) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# TerraForge terrain mesh: %d vertices, %d faces\n", len(mesh.Vertices), len(mesh.Faces))
	fmt.Fprintln(bw, "o Terrain")

	for _, v := range mesh.Vertices {
		// OBJ is y-up; the terrain plane is x/y with z elevation.
		fmt.Fprintf(bw, "v %.6f %.6f %.6f\n", v.X(), v.Z(), v.Y())
	}

	if mesh.Smooth {
		fmt.Fprintln(bw, "s 1")
	} else {
		fmt.Fprintln(bw, "s off")
	}

	for _, f := range mesh.Faces {
		// OBJ indices are 1-based.
		fmt.Fprintf(bw, "f %d %d %d %d\n", f[0]+1, f[1]+1, f[2]+1, f[3]+1)
	}

	return bw.Flush()
}

// WriteOBJFile writes the mesh to a file at path.
func WriteOBJFile(path string, mesh *terrain.TerrainMesh) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	if err := WriteOBJ(f, mesh); err != nil {
		f.Close()
		return fmt.Errorf("export: write %s: %w", path, err)
	}
	return f.Close()
}
