package geom

import (
	"fmt"

	"go.uber.org/zap"
)

// Option configures a Geometry.
type Option func(*Geometry)

// WithMaxBones caps the number of bones a policy may produce.
func WithMaxBones(n int) Option {
	return func(g *Geometry) { g.maxBones = n }
}

// WithStitchOptions sets how adjacent rings are joined.
func WithStitchOptions(opts StitchOptions) Option {
	return func(g *Geometry) { g.stitch = opts }
}

// WithMinArea sets an absolute triangle area floor for Assemble. Zero
// keeps every non-degenerate triangle.
func WithMinArea(area float32) Option {
	return func(g *Geometry) { g.assemble.MinArea = area }
}

// WithMaterials overrides the materials chosen by the policy.
func WithMaterials(materials ...Material) Option {
	return func(g *Geometry) { g.override = materials }
}

// WithLogger sets the logger used for pipeline diagnostics.
func WithLogger(log *zap.Logger) Option {
	return func(g *Geometry) {
		if log != nil {
			g.log = log
		}
	}
}

// Geometry turns a policy into a mesh. Bones and steps are built when the
// geometry is created; faces and the mesh are built on first request and
// cached. A Geometry is not safe for concurrent use.
type Geometry struct {
	policy Policy
	owner  any

	maxBones int
	stitch   StitchOptions
	assemble AssembleOptions
	override []Material
	log      *zap.Logger

	totalBoneSize float32
	bones         []Bone
	steps         []Step
	faces         [][]Face
	mesh          *Mesh
	materials     []Material
}

// New creates a geometry and runs bone and step generation. owner is kept
// for the caller and never used by the pipeline.
func New(policy Policy, owner any, opts ...Option) (*Geometry, error) {
	g := NewDeferred(policy, owner, opts...)

	if err := g.generateBones(); err != nil {
		return nil, err
	}
	if err := g.generateSteps(); err != nil {
		return nil, err
	}
	g.generateMaterials()

	return g, nil
}

// NewDeferred creates a geometry without generating anything. Accessors
// generate what they need on first use.
func NewDeferred(policy Policy, owner any, opts ...Option) *Geometry {
	g := &Geometry{
		policy:   policy,
		owner:    owner,
		maxBones: DefaultMaxBones,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Owner returns the value passed to New.
func (g *Geometry) Owner() any {
	return g.owner
}

// TotalBoneSize returns the sum of all bone sizes.
func (g *Geometry) TotalBoneSize() float32 {
	return g.totalBoneSize
}

// Bones returns the resolved bone chain, generating it if needed.
func (g *Geometry) Bones() ([]Bone, error) {
	if len(g.bones) == 0 {
		if err := g.generateBones(); err != nil {
			return nil, err
		}
	}
	return g.bones, nil
}

// Steps returns the world-space rings, generating them if needed.
func (g *Geometry) Steps() ([]Step, error) {
	if len(g.steps) == 0 {
		if _, err := g.Bones(); err != nil {
			return nil, err
		}
		if err := g.generateSteps(); err != nil {
			return nil, err
		}
	}
	return g.steps, nil
}

// Faces returns the triangles grouped by the ring gap that produced them.
func (g *Geometry) Faces() ([][]Face, error) {
	if g.faces == nil {
		steps, err := g.Steps()
		if err != nil {
			return nil, err
		}
		g.faces = StitchSteps(steps, g.stitch)
		if g.faces == nil {
			g.faces = [][]Face{}
		}

		total := 0
		for _, group := range g.faces {
			total += len(group)
		}
		g.log.Debug("faces stitched",
			zap.Int("gaps", len(g.faces)),
			zap.Int("faces", total),
			zap.Bool("close_seam", g.stitch.CloseSeam))
	}
	return g.faces, nil
}

// Mesh returns the assembled mesh, building faces first if needed.
func (g *Geometry) Mesh() (*Mesh, error) {
	if g.mesh != nil {
		return g.mesh, nil
	}

	faces, err := g.Faces()
	if err != nil {
		return nil, err
	}

	mesh, err := Assemble(faces, g.assemble)
	if err != nil {
		return nil, fmt.Errorf("assembling mesh: %w", err)
	}
	if mesh.Skipped > 0 {
		g.log.Debug("degenerate triangles skipped", zap.Int("skipped", mesh.Skipped))
	}
	g.log.Debug("mesh assembled",
		zap.Int("vertices", mesh.VertexCount()),
		zap.Int("triangles", mesh.TriangleCount()))

	g.mesh = mesh
	return mesh, nil
}

// Materials returns the surface materials of the mesh.
func (g *Geometry) Materials() []Material {
	if g.materials == nil {
		g.generateMaterials()
	}
	return g.materials
}

// Regenerate discards everything and runs the whole pipeline again.
func (g *Geometry) Regenerate() (*Mesh, error) {
	g.totalBoneSize = 0
	g.bones = nil
	g.steps = nil
	g.faces = nil
	g.mesh = nil
	g.materials = nil

	if err := g.generateBones(); err != nil {
		return nil, err
	}
	if err := g.generateSteps(); err != nil {
		return nil, err
	}
	g.generateMaterials()
	return g.Mesh()
}

func (g *Geometry) generateBones() error {
	bones, total, err := GenerateBones(g.policy, g.maxBones)
	if err != nil {
		return fmt.Errorf("generating bones: %w", err)
	}

	g.bones = ResolveFrames(bones)
	g.totalBoneSize = total

	g.log.Debug("bones generated",
		zap.Int("bones", len(g.bones)),
		zap.Float32("total_size", total))
	return nil
}

func (g *Geometry) generateSteps() error {
	local, err := GenerateSteps(g.policy, g.bones, g.totalBoneSize)
	if err != nil {
		return fmt.Errorf("generating steps: %w", err)
	}

	world, err := TransformSteps(g.bones, local)
	if err != nil {
		return fmt.Errorf("transforming steps: %w", err)
	}
	g.steps = world

	if ce := g.log.Check(zap.DebugLevel, "steps generated"); ce != nil {
		sizes := make([]int, len(world))
		for i, s := range world {
			sizes[i] = len(s.Points)
		}
		ce.Write(zap.Ints("ring_sizes", sizes))
	}
	return nil
}

func (g *Geometry) generateMaterials() {
	switch {
	case len(g.override) > 0:
		g.materials = append([]Material(nil), g.override...)
	default:
		if mp, ok := g.policy.(MaterialProvider); ok {
			if m := mp.Materials(); len(m) > 0 {
				g.materials = m
				return
			}
		}
		g.materials = []Material{DefaultMaterial()}
	}
}
