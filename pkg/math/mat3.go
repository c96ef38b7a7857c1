package math

import "github.com/chewxy/math32"

// Mat3 is a 3x3 rotation matrix in column-major order, the same layout as
// the upper-left block of an OpenGL matrix.
// Layout: [m0 m3 m6]
//
//	[m1 m4 m7]
//	[m2 m5 m8]
//
// Vectors are column vectors: MulVec3 computes m * v.
type Mat3 [9]float32

// Identity returns an identity matrix.
func Identity() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// RotateX returns a rotation matrix around the X axis.
// angle is in radians.
func RotateX(angle float32) Mat3 {
	c, s := math32.Cos(angle), math32.Sin(angle)
	return Mat3{
		1, 0, 0,
		0, c, s,
		0, -s, c,
	}
}

// RotateY returns a rotation matrix around the Y axis.
// angle is in radians.
func RotateY(angle float32) Mat3 {
	c, s := math32.Cos(angle), math32.Sin(angle)
	return Mat3{
		c, 0, -s,
		0, 1, 0,
		s, 0, c,
	}
}

// RotateZ returns a rotation matrix around the Z axis.
// angle is in radians.
func RotateZ(angle float32) Mat3 {
	c, s := math32.Cos(angle), math32.Sin(angle)
	return Mat3{
		c, s, 0,
		-s, c, 0,
		0, 0, 1,
	}
}

// Mul multiplies this matrix by another (m * other). Applied to a vector,
// other acts first and m second.
func (m Mat3) Mul(other Mat3) Mat3 {
	var result Mat3
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			result[col*3+row] =
				m[0*3+row]*other[col*3+0] +
					m[1*3+row]*other[col*3+1] +
					m[2*3+row]*other[col*3+2]
		}
	}
	return result
}

// MulVec3 rotates v by this matrix.
func (m Mat3) MulVec3(v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[3]*v.Y + m[6]*v.Z,
		m[1]*v.X + m[4]*v.Y + m[7]*v.Z,
		m[2]*v.X + m[5]*v.Y + m[8]*v.Z,
	}
}

// ApproxEqual reports whether every element is within eps of other.
func (m Mat3) ApproxEqual(other Mat3, eps float32) bool {
	for i := range m {
		if math32.Abs(m[i]-other[i]) > eps {
			return false
		}
	}
	return true
}
