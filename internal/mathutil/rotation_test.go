package mathutil

import (
	"math"
	"testing"
)

func near(a, b, eps float64) bool { return math.Abs(a-b) <= eps }

func TestRotAxisMatchesPrincipalAxes(t *testing.T) {
	cases := []struct {
		name string
		axis Vec3
		rot  func(float64) Mat3
	}{
		{"x", Vec3{1, 0, 0}, RotX},
		{"y", Vec3{0, 2, 0}, RotY},
		{"z", Vec3{0, 0, 0.5}, RotZ},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, a := range []float64{0, 0.05, 1, -2.5, math.Pi} {
				got := RotAxis(tc.axis, a)
				want := tc.rot(a)
				for i := range got {
					if !near(got[i], want[i], 1e-12) {
						t.Fatalf("angle %v entry %d: got %v, want %v", a, i, got[i], want[i])
					}
				}
			}
		})
	}
}

func TestRotAxisZeroAxis(t *testing.T) {
	if got := RotAxis(Vec3{}, 1); got != Mat3Identity() {
		t.Errorf("zero axis: got %v, want identity", got)
	}
}

func TestRotationPreservesLength(t *testing.T) {
	m := RotAxis(Vec3{0, 1, 0.2}, 0.05)
	v := Vec3{200, -400, 120}
	for i := 0; i < 1000; i++ {
		v = m.MulVec3(v)
	}
	if !near(v.Len(), Vec3{200, -400, 120}.Len(), 1e-8) {
		t.Errorf("length drifted to %v", v.Len())
	}
	if d := m.Det(); !near(d, 1, 1e-12) {
		t.Errorf("det = %v, want 1", d)
	}
	if e := m.OrthoError(); e > 1e-12 {
		t.Errorf("ortho error = %v", e)
	}
}

func TestMat3MulOrder(t *testing.T) {
	// RotZ(90°) after RotX(90°): x axis is unaffected by RotX, then maps to y.
	m := Mat3Mul(RotZ(math.Pi/2), RotX(math.Pi/2))
	got := m.MulVec3(Vec3{1, 0, 0})
	want := Vec3{0, 1, 0}
	for i := range got {
		if !near(got[i], want[i], 1e-12) {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
