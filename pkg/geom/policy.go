package geom

import "github.com/Faultbox/plantmesh/pkg/math"

// BoneContext is passed to Policy.BoneAt for every bone of the chain.
type BoneContext struct {
	Prior         []Bone // Bones generated so far, read-only
	Index         int
	SizeFromStart float32 // Sum of the sizes of Prior
}

// BoneSpec is what a policy returns for one bone.
// A zero Orientation is treated as the identity.
type BoneSpec struct {
	Size        float32
	Translation math.Vec3
	Orientation math.Mat3
	Absolute    bool
	Last        bool
}

// StepContext is passed to Policy.StepShape for every bone.
type StepContext struct {
	Bone          Bone
	StepCount     int
	TotalBoneSize float32
}

// Progress returns how far along the chain the bone ends, in [0, 1].
func (c StepContext) Progress() float32 {
	if c.TotalBoneSize == 0 {
		return 0
	}
	return c.Bone.SizeFromStart / c.TotalBoneSize
}

// Policy decides the shape of a geometry.
type Policy interface {
	// BoneAt returns the next bone of the chain. It must eventually
	// return a spec with Last set.
	BoneAt(ctx BoneContext) BoneSpec
	// StepShape returns the local ring points for a bone. At least one
	// point is required.
	StepShape(ctx StepContext) []math.Vec3
}

// MaterialProvider is implemented by policies that bring their own materials.
type MaterialProvider interface {
	Materials() []Material
}

// PolicyFuncs adapts two functions to the Policy interface.
type PolicyFuncs struct {
	Bone func(ctx BoneContext) BoneSpec
	Step func(ctx StepContext) []math.Vec3
}

// BoneAt calls f.Bone.
func (f PolicyFuncs) BoneAt(ctx BoneContext) BoneSpec {
	return f.Bone(ctx)
}

// StepShape calls f.Step.
func (f PolicyFuncs) StepShape(ctx StepContext) []math.Vec3 {
	return f.Step(ctx)
}
