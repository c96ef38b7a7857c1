package shape

import (
	"github.com/Faultbox/plantmesh/pkg/geom"
	"github.com/Faultbox/plantmesh/pkg/math"
)

// Profile is a policy driven by a Preset. The first bone is absolute and
// sits at the preset origin with the preset rotation and no length; each
// of the following Segments bones bends and twists relative to its parent.
// With Ease the per-segment turn grows from nothing at the base to the full
// bend and twist at the tip. Ring radius tapers linearly from BaseRadius to
// TipRadius along the chain.
type Profile struct {
	preset       Preset
	size         float32
	base         math.Mat3
	orientations []math.Mat3 // Indexed by bone, entry 0 unused
	section      []math.Vec2
}

// NewProfile validates the preset and builds a policy from it.
func NewProfile(p Preset) (*Profile, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	bend := math.QuatFromAxisAngle(math.Vec3{Z: 1}, p.Bend)
	twist := math.QuatFromAxisAngle(math.Vec3{Y: 1}, p.Twist)
	turn := bend.Mul(twist)

	orientations := make([]math.Mat3, p.Segments+1)
	for i := 1; i <= p.Segments; i++ {
		q := turn
		if p.Ease {
			q = math.QuatIdentity().Slerp(turn, float32(i)/float32(p.Segments))
		}
		orientations[i] = q.ToMat3()
	}

	r := p.Rotation
	base := math.RotateY(r[1]).Mul(math.RotateX(r[0])).Mul(math.RotateZ(r[2]))

	section := make([]math.Vec2, 0, len(p.Profile))
	for _, pt := range p.Profile {
		section = append(section, math.Vec2{X: pt[0], Y: pt[1]})
	}
	if len(section) == 0 {
		section = math.Polygon(p.Sides, 1)
	}

	return &Profile{
		preset:       p,
		size:         p.Length / float32(p.Segments),
		base:         base,
		orientations: orientations,
		section:      section,
	}, nil
}

// Preset returns the preset the profile was built from.
func (p *Profile) Preset() Preset {
	return p.preset
}

// BoneAt implements geom.Policy.
func (p *Profile) BoneAt(ctx geom.BoneContext) geom.BoneSpec {
	if ctx.Index == 0 {
		o := p.preset.Origin
		return geom.BoneSpec{
			Translation: math.Vec3{X: o[0], Y: o[1], Z: o[2]},
			Orientation: p.base,
			Absolute:    true,
		}
	}

	i := ctx.Index
	if i > p.preset.Segments {
		i = p.preset.Segments
	}
	return geom.BoneSpec{
		Size:        p.size,
		Translation: math.Vec3{Y: p.size},
		Orientation: p.orientations[i],
		Last:        ctx.Index >= p.preset.Segments,
	}
}

// StepShape implements geom.Policy.
func (p *Profile) StepShape(ctx geom.StepContext) []math.Vec3 {
	if (p.preset.PinchBase && ctx.Bone.Index == 0) || (p.preset.PinchTip && ctx.Bone.Last) {
		return []math.Vec3{{}}
	}

	t := ctx.Progress()
	radius := p.preset.BaseRadius + (p.preset.TipRadius-p.preset.BaseRadius)*t

	ring := make([]math.Vec3, len(p.section))
	for i, pt := range p.section {
		ring[i] = pt.Scale(radius).Lift()
	}
	return ring
}

// Materials implements geom.MaterialProvider.
func (p *Profile) Materials() []geom.Material {
	name := p.preset.Name
	if name == "" {
		name = "profile"
	}
	color := p.preset.Color
	if color == ([4]float32{}) {
		color = geom.DefaultMaterial().Color
	}
	return []geom.Material{{
		Name:        name,
		Color:       color,
		DoubleSided: true,
	}}
}
