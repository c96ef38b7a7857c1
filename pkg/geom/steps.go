package geom

import (
	"fmt"

	"github.com/Faultbox/plantmesh/pkg/math"
)

// GenerateSteps asks the policy for the local ring of every bone.
// Each returned step has the index of its bone.
func GenerateSteps(p Policy, bones []Bone, totalBoneSize float32) ([]Step, error) {
	steps := make([]Step, len(bones))

	for i, bone := range bones {
		points := p.StepShape(StepContext{
			Bone:          bone,
			StepCount:     len(bones),
			TotalBoneSize: totalBoneSize,
		})
		if len(points) == 0 {
			return nil, fmt.Errorf("%w: step %d", ErrEmptyRing, bone.Index)
		}

		// Copy so later stages never write into policy-owned memory
		steps[i] = Step{
			Index:  bone.Index,
			Points: append([]math.Vec3(nil), points...),
		}
	}

	return steps, nil
}

// TransformSteps moves every ring from its bone's local frame into world
// space: p' = bone.Position + bone.Rotation * p. Bones must be resolved.
func TransformSteps(bones []Bone, steps []Step) ([]Step, error) {
	if len(bones) != len(steps) {
		return nil, fmt.Errorf("%w: %d steps for %d bones", ErrStepMismatch, len(steps), len(bones))
	}

	world := make([]Step, len(steps))
	for i, step := range steps {
		bone := bones[i]
		points := make([]math.Vec3, len(step.Points))
		for j, p := range step.Points {
			points[j] = bone.Position.Add(bone.Rotation.MulVec3(p))
		}
		world[i] = Step{Index: step.Index, Points: points}
	}

	return world, nil
}
