package math

import (
	gomath "math"
	"testing"
)

const eps = 1e-5

func vecNear(a, b Vec3) bool {
	return gomath.Abs(float64(a.X-b.X)) < eps &&
		gomath.Abs(float64(a.Y-b.Y)) < eps &&
		gomath.Abs(float64(a.Z-b.Z)) < eps
}

func TestIdentityTransform(t *testing.T) {
	p := Vec3{1, 2, 3}
	got := Identity().TransformVec3(p)
	if got != p {
		t.Errorf("Identity().TransformVec3() = %v, want %v", got, p)
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(1, 2, 3)
	got := m.TransformVec3(Vec3{1, 1, 1})
	want := Vec3{2, 3, 4}
	if !vecNear(got, want) {
		t.Errorf("Translate.TransformVec3() = %v, want %v", got, want)
	}
}

func TestUniformScale(t *testing.T) {
	m := UniformScale(2)
	got := m.TransformVec3(Vec3{1, -2, 3})
	want := Vec3{2, -4, 6}
	if !vecNear(got, want) {
		t.Errorf("UniformScale.TransformVec3() = %v, want %v", got, want)
	}
}

func TestRotateY90(t *testing.T) {
	m := RotateY(gomath.Pi / 2)
	got := m.TransformVec3(Vec3{1, 0, 0})
	want := Vec3{0, 0, -1}
	if !vecNear(got, want) {
		t.Errorf("RotateY(90deg) of +X = %v, want %v", got, want)
	}
}

func TestRotateEulerOrder(t *testing.T) {
	// Rz*Ry*Rx applied to a point must equal applying X, then Y, then Z.
	x, y, z := float32(0.3), float32(-0.7), float32(1.1)
	p := Vec3{0.2, -0.5, 0.9}

	step := RotateZ(z).TransformVec3(RotateY(y).TransformVec3(RotateX(x).TransformVec3(p)))
	combined := RotateEuler(x, y, z).TransformVec3(p)

	if !vecNear(step, combined) {
		t.Errorf("RotateEuler = %v, stepwise = %v", combined, step)
	}
}

func TestTransformDirectionIgnoresTranslation(t *testing.T) {
	m := Translate(10, 20, 30)
	got := m.TransformDirection(Vec3{1, 2, 3})
	want := Vec3{1, 2, 3}
	if !vecNear(got, want) {
		t.Errorf("TransformDirection() = %v, want %v", got, want)
	}
}

func TestMulAssociativity(t *testing.T) {
	a := RotateX(0.4)
	b := RotateY(0.8)
	c := Translate(1, 2, 3)
	p := Vec3{0.5, 0.25, -1}

	left := a.Mul(b).Mul(c).TransformVec3(p)
	right := a.Mul(b.Mul(c)).TransformVec3(p)
	if !vecNear(left, right) {
		t.Errorf("matrix Mul not associative: %v vs %v", left, right)
	}
}
