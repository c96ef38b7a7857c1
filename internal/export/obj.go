package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/Faultbox/plantmesh/pkg/geom"
)

// WriteOBJ writes mesh as a Wavefront OBJ object with per-vertex normals.
// Face indices are 1-based and reference the vertex and normal of the
// same number.
func WriteOBJ(w io.Writer, mesh *geom.Mesh, name string) error {
	if err := mesh.Validate(); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	if name != "" {
		fmt.Fprintf(bw, "o %s\n", name)
	}
	for _, v := range mesh.Vertices {
		fmt.Fprintf(bw, "v %g %g %g\n", v.X, v.Y, v.Z)
	}
	for _, n := range mesh.Normals {
		fmt.Fprintf(bw, "vn %g %g %g\n", n.X, n.Y, n.Z)
	}
	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		a, b, c := mesh.Indices[i]+1, mesh.Indices[i+1]+1, mesh.Indices[i+2]+1
		fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n", a, a, b, b, c, c)
	}
	return bw.Flush()
}
