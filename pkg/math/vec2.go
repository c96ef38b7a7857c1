package math

import "github.com/chewxy/math32"

// Vec2 is a 2D vector. Cross-section profiles are authored as Vec2 in the
// ring plane and lifted with Lift.
type Vec2 struct {
	X, Y float32
}

// Scale returns v * scalar.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Lift places the vector in the XZ plane (Y = 0), which is the local ring
// plane of a bone whose axis is +Y.
func (v Vec2) Lift() Vec3 {
	return Vec3{v.X, 0, v.Y}
}

// Polygon returns sides points evenly spaced on a circle of the given
// radius, counter-clockwise starting on +X. sides < 1 yields nil.
func Polygon(sides int, radius float32) []Vec2 {
	if sides < 1 {
		return nil
	}
	points := make([]Vec2, sides)
	step := 2 * math32.Pi / float32(sides)
	for i := range points {
		a := float32(i) * step
		points[i] = Vec2{radius * math32.Cos(a), radius * math32.Sin(a)}
	}
	return points
}
