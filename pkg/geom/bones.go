package geom

import (
	"fmt"

	"github.com/Faultbox/plantmesh/pkg/math"
)

// DefaultMaxBones caps the chain length when no limit is configured.
const DefaultMaxBones = 4096

// GenerateBones asks the policy for bones until it reports the last one.
// The last bone is part of the result. It returns the chain and the sum of
// all bone sizes. A policy that has not finished after maxBones bones is
// rejected with ErrInvalidPolicy.
func GenerateBones(p Policy, maxBones int) ([]Bone, float32, error) {
	if p == nil {
		return nil, 0, fmt.Errorf("%w: nil policy", ErrInvalidPolicy)
	}
	if maxBones <= 0 {
		maxBones = DefaultMaxBones
	}

	var bones []Bone
	var sizeFromStart float32
	index := 0

	for {
		if len(bones) >= maxBones {
			return nil, 0, fmt.Errorf("%w: no last bone after %d bones", ErrInvalidPolicy, maxBones)
		}

		spec := p.BoneAt(BoneContext{
			Prior:         bones[:len(bones):len(bones)],
			Index:         index,
			SizeFromStart: sizeFromStart,
		})

		bones = append(bones, Bone{
			Index:         index,
			Size:          spec.Size,
			SizeFromStart: sizeFromStart + spec.Size,
			Translation:   spec.Translation,
			Orientation:   orIdentity(spec.Orientation),
			Absolute:      spec.Absolute,
			Last:          spec.Last,
		})
		sizeFromStart += spec.Size

		if spec.Last {
			break
		}
		index++
	}

	return bones, sizeFromStart, nil
}

// ResolveFrames walks the chain and returns a copy of bones with Origin,
// Position and Rotation filled in. bones is not modified.
//
// A relative bone moves by its translation rotated first by its own
// orientation, then by the accumulated rotation of the chain, and its
// rotation is accumulated as parent * orientation. An absolute bone takes
// its translation and orientation as-is and restarts the chain there.
func ResolveFrames(bones []Bone) []Bone {
	resolved := make([]Bone, len(bones))

	position := math.Vec3{}
	rotation := math.Identity()

	for i, bone := range bones {
		bone.Orientation = orIdentity(bone.Orientation)
		bone.Origin = position
		if bone.Absolute {
			position = bone.Translation
			bone.Origin = position
			rotation = bone.Orientation
		} else {
			offset := rotation.MulVec3(bone.Orientation.MulVec3(bone.Translation))
			position = position.Add(offset)
			rotation = rotation.Mul(bone.Orientation)
		}

		bone.Position = position
		bone.Rotation = rotation
		resolved[i] = bone
	}

	return resolved
}

// orIdentity maps the zero matrix to the identity so an unset orientation
// means "no rotation".
func orIdentity(m math.Mat3) math.Mat3 {
	if m == (math.Mat3{}) {
		return math.Identity()
	}
	return m
}
