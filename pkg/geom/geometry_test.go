package geom

import (
	"testing"

	"github.com/Faultbox/plantmesh/pkg/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type colouredTube struct {
	tubePolicy
}

func (colouredTube) Materials() []Material {
	return []Material{{Name: "bark", Color: [4]float32{0.4, 0.3, 0.2, 1}}}
}

func TestGeometry_EagerBonesLazyMesh(t *testing.T) {
	owner := "plant-1"
	g, err := New(&tubePolicy{bones: 4, rings: []int{2, 4, 4, 1}}, owner)
	require.NoError(t, err)

	assert.Equal(t, owner, g.Owner())
	assert.Len(t, g.bones, 4)
	assert.Len(t, g.steps, 4)
	assert.Nil(t, g.faces)
	assert.Nil(t, g.mesh)

	mesh, err := g.Mesh()
	require.NoError(t, err)
	require.NotNil(t, g.faces)

	again, err := g.Mesh()
	require.NoError(t, err)
	assert.Same(t, mesh, again)
}

func TestGeometry_Invariants(t *testing.T) {
	g, err := New(&tubePolicy{bones: 5, rings: []int{2, 4, 6, 3, 1}}, nil)
	require.NoError(t, err)

	bones, err := g.Bones()
	require.NoError(t, err)
	steps, err := g.Steps()
	require.NoError(t, err)
	require.Len(t, steps, len(bones))

	var sum float32
	for _, b := range bones {
		sum += b.Size
	}
	assert.Equal(t, sum, g.TotalBoneSize())

	faces, err := g.Faces()
	require.NoError(t, err)
	require.Len(t, faces, 4)
	total := 0
	for _, group := range faces {
		total += len(group)
	}
	assert.Equal(t, 5+9+8+2, total)

	mesh, err := g.Mesh()
	require.NoError(t, err)
	assert.Equal(t, 0, mesh.Skipped)
	assert.Equal(t, total, mesh.TriangleCount())
	assert.Len(t, mesh.Vertices, 3*total)
	assert.Len(t, mesh.Normals, len(mesh.Vertices))
	for i, idx := range mesh.Indices {
		assert.Equal(t, uint32(i), idx)
	}
	for _, n := range mesh.Normals {
		assert.InDelta(t, 1.0, n.Length(), 1e-5)
	}
}

func TestGeometry_RingsFollowBones(t *testing.T) {
	g, err := New(&tubePolicy{bones: 3, rings: []int{1, 1, 1}}, nil)
	require.NoError(t, err)

	steps, err := g.Steps()
	require.NoError(t, err)
	for i, s := range steps {
		assert.Equal(t, math.Vec3{Y: float32(i + 1)}, s.Points[0])
	}
}

func TestGeometry_Deterministic(t *testing.T) {
	build := func() *Mesh {
		g, err := New(&tubePolicy{bones: 6, rings: []int{2, 5, 4, 4, 3, 1}}, nil)
		require.NoError(t, err)
		mesh, err := g.Mesh()
		require.NoError(t, err)
		return mesh
	}

	a, b := build(), build()
	assert.Equal(t, a.Vertices, b.Vertices)
	assert.Equal(t, a.Normals, b.Normals)
	assert.Equal(t, a.Indices, b.Indices)
}

func TestGeometry_SingleStepIsEmpty(t *testing.T) {
	g, err := New(&tubePolicy{bones: 1}, nil)
	require.NoError(t, err)

	faces, err := g.Faces()
	require.NoError(t, err)
	assert.Empty(t, faces)

	mesh, err := g.Mesh()
	require.NoError(t, err)
	assert.True(t, mesh.IsEmpty())
	assert.Empty(t, mesh.Normals)
	assert.Empty(t, mesh.Indices)
}

func TestGeometry_Deferred(t *testing.T) {
	p := &tubePolicy{bones: 3}
	g := NewDeferred(p, nil)
	assert.Equal(t, 0, p.calls)

	bones, err := g.Bones()
	require.NoError(t, err)
	assert.Len(t, bones, 3)
	assert.Equal(t, 3, p.calls)

	mesh, err := g.Mesh()
	require.NoError(t, err)
	assert.Equal(t, 14, mesh.TriangleCount())
}

func TestGeometry_InvalidPolicy(t *testing.T) {
	endless := PolicyFuncs{
		Bone: func(ctx BoneContext) BoneSpec { return BoneSpec{Size: 1} },
		Step: func(ctx StepContext) []math.Vec3 { return []math.Vec3{{}} },
	}

	_, err := New(endless, nil, WithMaxBones(16))
	assert.ErrorIs(t, err, ErrInvalidPolicy)

	g := NewDeferred(endless, nil, WithMaxBones(16))
	_, err = g.Mesh()
	assert.ErrorIs(t, err, ErrInvalidPolicy)
}

func TestGeometry_EmptyRing(t *testing.T) {
	p := &tubePolicy{bones: 3, rings: []int{4, 0, 4}}
	_, err := New(p, nil)
	assert.ErrorIs(t, err, ErrEmptyRing)
}

func TestGeometry_CloseSeam(t *testing.T) {
	g, err := New(&tubePolicy{bones: 2}, nil, WithStitchOptions(StitchOptions{CloseSeam: true}))
	require.NoError(t, err)

	mesh, err := g.Mesh()
	require.NoError(t, err)
	assert.Equal(t, 8, mesh.TriangleCount())
}

func TestGeometry_Materials(t *testing.T) {
	g, err := New(&tubePolicy{bones: 2}, nil)
	require.NoError(t, err)
	assert.Equal(t, []Material{DefaultMaterial()}, g.Materials())

	g, err = New(&colouredTube{tubePolicy{bones: 2}}, nil)
	require.NoError(t, err)
	require.Len(t, g.Materials(), 1)
	assert.Equal(t, "bark", g.Materials()[0].Name)

	leaf := Material{Name: "leaf", Color: [4]float32{0, 1, 0, 1}}
	g, err = New(&colouredTube{tubePolicy{bones: 2}}, nil, WithMaterials(leaf))
	require.NoError(t, err)
	assert.Equal(t, []Material{leaf}, g.Materials())
}

func TestGeometry_Regenerate(t *testing.T) {
	p := &tubePolicy{bones: 3}
	g, err := New(p, nil)
	require.NoError(t, err)

	first, err := g.Mesh()
	require.NoError(t, err)

	second, err := g.Regenerate()
	require.NoError(t, err)
	assert.NotSame(t, first, second)
	assert.Equal(t, first.Vertices, second.Vertices)
	assert.Equal(t, 6, p.calls)
}

func TestGeometry_Logging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	g, err := New(&tubePolicy{bones: 3, rings: []int{4, 4, 1}}, nil, WithLogger(zap.New(core)))
	require.NoError(t, err)
	_, err = g.Mesh()
	require.NoError(t, err)

	assert.Equal(t, 1, logs.FilterMessage("bones generated").Len())
	assert.Equal(t, 1, logs.FilterMessage("steps generated").Len())
	assert.Equal(t, 1, logs.FilterMessage("mesh assembled").Len())

	faces := logs.FilterMessage("faces stitched").All()
	require.Len(t, faces, 1)
	assert.Equal(t, int64(10), faces[0].ContextMap()["faces"])
}
