// Package shape provides ready-made policies for geom.
package shape

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/plantmesh/pkg/geom"
	"github.com/Faultbox/plantmesh/pkg/math"
)

const progressEpsilon = 1e-6

// Sprout is the reference policy: a straight stalk of equal bones with a
// flat two-point base, square rings along the stalk and a pointed tip.
type Sprout struct {
	Steps  int     // Number of segments after the first bone
	Length float32 // Total stalk length
}

// NewSprout returns the reference sprout: 5 steps over a length of 2.
func NewSprout() Sprout {
	return Sprout{Steps: 5, Length: 2}
}

// BoneAt returns Steps+1 bones of size Length/Steps pointing up.
func (s Sprout) BoneAt(ctx geom.BoneContext) geom.BoneSpec {
	steps := s.Steps
	if steps < 1 {
		steps = 1
	}
	size := s.Length / float32(steps)

	return geom.BoneSpec{
		Size:        size,
		Translation: math.Vec3{Y: size},
		Orientation: math.Identity(),
		Last:        ctx.Index >= steps,
	}
}

// StepShape picks the ring from the bone's progress along the stalk.
func (s Sprout) StepShape(ctx geom.StepContext) []math.Vec3 {
	progress := ctx.Progress()

	switch {
	case near(progress, 1):
		return []math.Vec3{{}}
	case near(progress, 0):
		return []math.Vec3{
			{X: 0.25},
			{X: -0.25},
		}
	case near(progress, 0.6):
		return []math.Vec3{
			{X: 0.5, Z: 0.5},
			{X: 0.5, Z: -0.5},
			{X: -0.5, Z: -0.5},
		}
	default:
		return []math.Vec3{
			{X: 0.5, Z: 0.5},
			{X: 0.5, Z: -0.5},
			{X: -0.5, Z: -0.5},
			{X: -0.5, Z: 0.5},
		}
	}
}

func near(a, b float32) bool {
	return math32.Abs(a-b) <= progressEpsilon
}
