package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	if m[0] != 1 || m[4] != 1 || m[8] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	if m[1] != 0 || m[3] != 0 || m[6] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := RotateX(0.7).Mul(RotateY(0.4))
	result := m.Mul(Identity())

	for i := 0; i < 9; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestRotateY90(t *testing.T) {
	m := RotateY(float32(math.Pi / 2))
	result := m.MulVec3(Vec3{1, 0, 0})

	// (1,0,0) rotated 90 degrees around Y lands on (0,0,-1)
	if !result.ApproxEqual(Vec3{0, 0, -1}, 0.001) {
		t.Errorf("RotateY 90: got %v, want (0, 0, -1)", result)
	}
}

func TestRotateZ90(t *testing.T) {
	m := RotateZ(float32(math.Pi / 2))
	result := m.MulVec3(Vec3{0, 1, 0})

	if !result.ApproxEqual(Vec3{-1, 0, 0}, 0.001) {
		t.Errorf("RotateZ 90: got %v, want (-1, 0, 0)", result)
	}
}

func TestMulComposition(t *testing.T) {
	a := RotateZ(0.3)
	b := RotateX(1.1)
	v := Vec3{0.2, 1, -0.5}

	// (a*b)v == a(b v): b is applied first
	got := a.Mul(b).MulVec3(v)
	want := a.MulVec3(b.MulVec3(v))
	if !got.ApproxEqual(want, 0.0001) {
		t.Errorf("(a*b)v = %v, want %v", got, want)
	}

	if !RotateZ(0.3).Mul(RotateZ(0.5)).ApproxEqual(RotateZ(0.8), 0.0001) {
		t.Error("RotateZ(0.3)*RotateZ(0.5) should equal RotateZ(0.8)")
	}
}
