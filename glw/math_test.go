package glw

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/image/math/f32"
)

var approx = cmpopts.EquateApprox(0, 0.0001)

// project applies m to point p and divides by w.
func project(m f32.Mat4, p f32.Vec3) f32.Vec3 {
	v := MulVec4(m, f32.Vec4{p[0], p[1], p[2], 1})
	return f32.Vec3{v[0] / v[3], v[1] / v[3], v[2] / v[3]}
}

func TestMul(t *testing.T) {
	m := Mul(Translate(1, 2, 3), Ident())
	if diff := cmp.Diff(Translate(1, 2, 3), m); diff != "" {
		t.Fatalf("translate*ident (-want +got):\n%s", diff)
	}

	// translate after rotate
	m = Mul(Translate(1, 0, 0), RotateZ(90))
	got := MulVec4(m, f32.Vec4{1, 0, 0, 1})
	if diff := cmp.Diff(f32.Vec4{1, 1, 0, 1}, got, approx); diff != "" {
		t.Fatalf("(-want +got):\n%s\n%s", diff, string16fv(m))
	}
}

func TestRotateZ(t *testing.T) {
	for _, tc := range []struct {
		deg  float32
		want f32.Vec4
	}{
		{0, f32.Vec4{1, 0, 0, 1}},
		{90, f32.Vec4{0, 1, 0, 1}},
		{-90, f32.Vec4{0, -1, 0, 1}},
		{180, f32.Vec4{-1, 0, 0, 1}},
	} {
		got := MulVec4(RotateZ(tc.deg), f32.Vec4{1, 0, 0, 1})
		if diff := cmp.Diff(tc.want, got, approx); diff != "" {
			t.Errorf("RotateZ(%v) (-want +got):\n%s", tc.deg, diff)
		}
	}
}

func TestOrtho(t *testing.T) {
	m := Ortho(-2, 2, -1, 1, -1, 1)
	got := project(m, f32.Vec3{2, -1, 0})
	if diff := cmp.Diff(f32.Vec3{1, -1, 0}, got, approx); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestFrustum(t *testing.T) {
	const ar = 1.5
	m := Frustum(ar)
	for _, p := range []f32.Vec3{{ar, 1, 0}, {-ar, -1, 0}, {0.3, -0.4, 0}} {
		got := project(m, p)
		want := f32.Vec3{p[0] / ar, p[1], got[2]}
		if diff := cmp.Diff(want, got, approx); diff != "" {
			t.Errorf("flat %v (-want +got):\n%s", p, diff)
		}
	}

	// lifted points move away from center
	got := project(m, f32.Vec3{ar / 2, 0.5, 0.5})
	if got[0] <= 0.5 || got[1] <= 0.5 {
		t.Errorf("lifted point not magnified: %v", got)
	}
}

func TestGrid(t *testing.T) {
	verts, idx := Grid(2, 1)
	want := []float32{
		0, 0, 0.5, 0, 1, 0,
		0, 1, 0.5, 1, 1, 1,
	}
	if diff := cmp.Diff(want, verts); diff != "" {
		t.Fatalf("vertices (-want +got):\n%s", diff)
	}
	wantIdx := []uint16{0, 1, 3, 1, 4, 3, 1, 2, 4, 2, 5, 4}
	if diff := cmp.Diff(wantIdx, idx); diff != "" {
		t.Fatalf("indices (-want +got):\n%s", diff)
	}
}
