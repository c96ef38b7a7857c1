package geom

import "github.com/Faultbox/plantmesh/pkg/math"

// StitchOptions controls how adjacent rings are joined.
type StitchOptions struct {
	// CloseSeam emits one extra triangle per ring pair that joins the last
	// points of both rings back to the first ones.
	CloseSeam bool
}

// side is the ring whose index advances to produce a triangle's third point.
type side int

const (
	advanceLeft side = iota
	advanceRight
)

func (s side) String() string {
	if s == advanceLeft {
		return "left"
	}
	return "right"
}

// faceCount returns how many triangles join a ring of m points to a ring
// of n points. A single-point ring adds no triangles of its own.
func faceCount(m, n int, closeSeam bool) int {
	count := m + n - 1
	if m == 1 {
		count--
	}
	if n == 1 {
		count--
	}
	if count < 0 {
		count = 0
	}
	if closeSeam {
		count++
	}
	return count
}

// nextSide picks the ring to advance. Indices are the raw walk positions
// and may run past the ring size once the walk wraps.
//
// Edge rules come first: a ring that sits on its last point waits for the
// other one. When both sit on their last point the left ring advances,
// except when the left ring is a single point.
// Otherwise the ring whose next point is proportionally closer advances,
// ties going left.
func nextSide(left, right, m, n int) side {
	leftLast := left == m-1
	rightLast := right == n-1

	switch {
	case leftLast && right < n-1:
		return advanceRight
	case left < m-1 && rightLast:
		return advanceLeft
	case leftLast && rightLast:
		if m == 1 {
			return advanceRight
		}
		return advanceLeft
	}

	leftProgress := float32(left+1) / float32(m+1)
	rightProgress := float32(right+1) / float32(n+1)
	if leftProgress <= rightProgress {
		return advanceLeft
	}
	return advanceRight
}

// StitchRings joins two rings with a band of triangles. Every triangle
// starts with the current left and right points; its third point is the
// next point of whichever ring advances. Rings of different sizes,
// including single-point rings, are handled by the same walk.
func StitchRings(a, b []math.Vec3, opts StitchOptions) []Face {
	m, n := len(a), len(b)
	if m == 0 || n == 0 {
		return nil
	}

	count := faceCount(m, n, opts.CloseSeam)
	faces := make([]Face, 0, count)

	left, right := 0, 0
	for range count {
		face := Face{}
		face.Points[0] = a[left%m]
		face.Points[1] = b[right%n]

		if nextSide(left, right, m, n) == advanceLeft {
			left++
			face.Points[2] = a[left%m]
		} else {
			right++
			face.Points[2] = b[right%n]
		}

		faces = append(faces, face)
	}

	return faces
}

// StitchSteps stitches every pair of adjacent steps. The result holds one
// group of faces per gap, so it has len(steps)-1 entries. Fewer than two
// steps produce no faces.
func StitchSteps(steps []Step, opts StitchOptions) [][]Face {
	if len(steps) < 2 {
		return nil
	}

	groups := make([][]Face, 0, len(steps)-1)
	for i := 0; i < len(steps)-1; i++ {
		groups = append(groups, StitchRings(steps[i].Points, steps[i+1].Points, opts))
	}
	return groups
}
