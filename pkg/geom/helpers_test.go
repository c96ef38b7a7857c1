package geom

import (
	"github.com/Faultbox/plantmesh/pkg/math"
)

// tubePolicy builds a straight chain of unit bones along +Y with a fixed
// ring per bone. A non-zero scale shrinks bones and rings uniformly.
type tubePolicy struct {
	bones int
	rings []int // Points per ring, indexed by bone; missing entries use 4
	scale float32
	calls int
}

func (p *tubePolicy) unit() float32 {
	if p.scale == 0 {
		return 1
	}
	return p.scale
}

func (p *tubePolicy) BoneAt(ctx BoneContext) BoneSpec {
	p.calls++
	return BoneSpec{
		Size:        p.unit(),
		Translation: math.Vec3{Y: p.unit()},
		Orientation: math.Identity(),
		Last:        ctx.Index == p.bones-1,
	}
}

func (p *tubePolicy) StepShape(ctx StepContext) []math.Vec3 {
	n := 4
	if ctx.Bone.Index < len(p.rings) {
		n = p.rings[ctx.Bone.Index]
	}
	if n == 1 {
		return []math.Vec3{{}}
	}
	pts := math.Polygon(n, 0.5*p.unit())
	ring := make([]math.Vec3, len(pts))
	for i, pt := range pts {
		ring[i] = pt.Lift()
	}
	return ring
}

// ring returns n distinct points tagged by id so tests can tell them apart.
func ring(id float32, n int) []math.Vec3 {
	pts := make([]math.Vec3, n)
	for i := range pts {
		pts[i] = math.Vec3{X: float32(i), Y: id}
	}
	return pts
}
