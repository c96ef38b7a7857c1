// Package geom builds plant meshes from a chain of bones.
//
// The pipeline runs in a fixed order: bones are generated from a Policy,
// their frames are resolved along the chain, a cross-section ring (step)
// is generated for each bone and moved into world space, adjacent rings
// are stitched into triangles and the triangles are flattened into
// vertex, normal and index buffers.
package geom

import (
	"github.com/Faultbox/plantmesh/pkg/math"
)

// Bone is one segment of the chain.
type Bone struct {
	Index         int
	Size          float32 // Segment length along the local axis
	SizeFromStart float32 // Cumulative size up to and including this bone
	Translation   math.Vec3
	Orientation   math.Mat3
	Absolute      bool // Position/rotation set directly, not composed with the parent
	Last          bool

	// Filled by ResolveFrames. Origin is where the bone starts (the
	// parent's position, or Position itself for an absolute bone);
	// Position is where it ends.
	Origin   math.Vec3
	Position math.Vec3
	Rotation math.Mat3
}

// Step is the cross-section ring attached to the bone with the same index.
// Index is the link into Geometry.Bones(); steps hold no bone pointer.
type Step struct {
	Index  int
	Points []math.Vec3
}

// Face is a single triangle between two adjacent rings.
type Face struct {
	Points [3]math.Vec3
}

// Material describes the flat surface appearance of the mesh.
type Material struct {
	Name        string
	Color       [4]float32 // RGBA
	DoubleSided bool
}

// DefaultMaterial returns a single blue, double-sided material.
func DefaultMaterial() Material {
	return Material{
		Name:        "default",
		Color:       [4]float32{0, 0, 1, 1},
		DoubleSided: true,
	}
}

// Bounds holds the axis-aligned bounding box of a mesh.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Size returns the extent of the box on each axis.
func (b Bounds) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// Center returns the middle of the box.
func (b Bounds) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}
