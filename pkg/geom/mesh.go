package geom

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/plantmesh/pkg/math"
)

// CollinearEpsilon is the sine of the smallest corner angle Assemble keeps.
// It compares |e1 x e2| against |e1|*|e2|, so it does not depend on the
// scale the plant is authored at.
const CollinearEpsilon float32 = 1e-6

// AssembleOptions controls mesh assembly.
type AssembleOptions struct {
	// MinArea additionally drops triangles whose area is below it.
	// Zero or negative disables the floor.
	MinArea float32
}

// Mesh holds flat-shaded triangle buffers ready for upload. Vertices are
// not shared between triangles: vertex i belongs to triangle i/3.
type Mesh struct {
	Vertices []math.Vec3
	Normals  []math.Vec3
	Indices  []uint32
	Bounds   Bounds
	Skipped  int // Degenerate triangles left out
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// Validate checks that the buffers line up.
func (m *Mesh) Validate() error {
	if len(m.Normals) != len(m.Vertices) {
		return fmt.Errorf("%w: %d normals for %d vertices", ErrBufferMismatch, len(m.Normals), len(m.Vertices))
	}
	if len(m.Indices) != len(m.Vertices) {
		return fmt.Errorf("%w: %d indices for %d vertices", ErrBufferMismatch, len(m.Indices), len(m.Vertices))
	}
	if len(m.Vertices)%3 != 0 {
		return fmt.Errorf("%w: %d vertices is not a whole number of triangles", ErrBufferMismatch, len(m.Vertices))
	}
	return nil
}

// Flatten returns positions and normals as flat x,y,z float arrays.
func (m *Mesh) Flatten() (positions, normals []float32) {
	positions = make([]float32, 0, len(m.Vertices)*3)
	normals = make([]float32, 0, len(m.Normals)*3)
	for _, v := range m.Vertices {
		positions = append(positions, v.X, v.Y, v.Z)
	}
	for _, n := range m.Normals {
		normals = append(normals, n.X, n.Y, n.Z)
	}
	return positions, normals
}

// Assemble flattens grouped faces into a mesh. Each face becomes three
// vertices in the order p0, p2, p1, all carrying the face normal
// normalize((p2-p0) x (p1-p0)), so the emitted winding is counter-clockwise
// around the normal. Indices run 0..n-1. Triangles whose corners coincide
// or are collinear are left out and counted in Skipped.
func Assemble(groups [][]Face, opts AssembleOptions) (*Mesh, error) {
	total := 0
	for _, faces := range groups {
		total += len(faces)
	}

	mesh := &Mesh{
		Vertices: make([]math.Vec3, 0, total*3),
		Normals:  make([]math.Vec3, 0, total*3),
		Indices:  make([]uint32, 0, total*3),
		Bounds: Bounds{
			Min: math.Vec3{X: 1e10, Y: 1e10, Z: 1e10},
			Max: math.Vec3{X: -1e10, Y: -1e10, Z: -1e10},
		},
	}

	for _, faces := range groups {
		for _, face := range faces {
			origin := face.Points[0]
			first := face.Points[2]
			second := face.Points[1]

			e1 := first.Sub(origin)
			e2 := second.Sub(origin)
			cross := e1.Cross(e2)

			mag := cross.Length()
			if degenerate(mag, e1.Length()*e2.Length(), opts.MinArea) {
				mesh.Skipped++
				continue
			}
			normal := cross.Scale(1 / mag)

			for _, p := range [3]math.Vec3{origin, first, second} {
				mesh.Indices = append(mesh.Indices, uint32(len(mesh.Vertices)))
				mesh.Vertices = append(mesh.Vertices, p)
				mesh.Normals = append(mesh.Normals, normal)
				updateBounds(&mesh.Bounds, p)
			}
		}
	}

	if mesh.IsEmpty() {
		mesh.Bounds = Bounds{}
	}

	if err := mesh.Validate(); err != nil {
		return nil, err
	}
	return mesh, nil
}

// degenerate reports whether a triangle with cross-product magnitude mag
// and edge length product edges has no usable normal.
func degenerate(mag, edges, minArea float32) bool {
	if !(mag > 0) || math32.IsInf(mag, 0) {
		return true
	}
	if mag <= CollinearEpsilon*edges {
		return true
	}
	return minArea > 0 && mag*0.5 < minArea
}

func updateBounds(b *Bounds, p math.Vec3) {
	if p.X < b.Min.X {
		b.Min.X = p.X
	}
	if p.Y < b.Min.Y {
		b.Min.Y = p.Y
	}
	if p.Z < b.Min.Z {
		b.Min.Z = p.Z
	}
	if p.X > b.Max.X {
		b.Max.X = p.X
	}
	if p.Y > b.Max.Y {
		b.Max.Y = p.Y
	}
	if p.Z > b.Max.Z {
		b.Max.Z = p.Z
	}
}

// ComputeBounds returns the axis-aligned box around points. An empty
// slice yields the zero Bounds.
func ComputeBounds(points []math.Vec3) Bounds {
	if len(points) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		updateBounds(&b, p)
	}
	return b
}
