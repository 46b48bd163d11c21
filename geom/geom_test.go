package geom

import (
	"testing"

	"golang.org/x/image/math/f32"
)

func TestRect(t *testing.T) {
	r := R(-1, 1, 1, -1)
	if w, h := r.Width(), r.Height(); w != 2 || h != 2 {
		t.Fatalf("have %vx%v, want 2x2", w, h)
	}

	in := r.Inset(0.25, 0.1, 0.25, 0.1)
	if want := R(-0.5, 0.8, 0.5, -0.8); !rectEquals(in, want) {
		t.Errorf("Inset: have %s, want %s", in, want)
	}

	up := in.Offset(0, in.Height()/2)
	if !Equals(up.Bottom, 0) || !Equals(up.Top, 1.6) {
		t.Errorf("Offset: have %s", up)
	}

	if !r.Contains(Vec2(1, -1)) {
		t.Error("edges should be contained")
	}
	if r.Contains(Vec2(1.01, 0)) {
		t.Error("point right of rect reported as contained")
	}
	if (Rect{}).Empty() != true {
		t.Error("zero rect should be empty")
	}
}

func TestNorm(t *testing.T) {
	if _, ok := Norm(f32.Vec2{}); ok {
		t.Fatal("zero vector normalized")
	}
	n, ok := Norm(Vec2(3, 4))
	if !ok || !Equals(n[0], 0.6) || !Equals(n[1], 0.8) {
		t.Fatalf("have %v %v", n, ok)
	}
	if l := Len(n); !Equals(l, 1) {
		t.Errorf("have len %v", l)
	}
}

func TestLerp(t *testing.T) {
	a, b := Vec2(0, 0), Vec2(2, -4)
	for _, tc := range []struct {
		t    float32
		want f32.Vec2
	}{
		{0, a},
		{0.5, Vec2(1, -2)},
		{1, b},
	} {
		if have := Lerp(a, b, tc.t); !Equals(have[0], tc.want[0]) || !Equals(have[1], tc.want[1]) {
			t.Errorf("Lerp(%v): have %v, want %v", tc.t, have, tc.want)
		}
	}
}

func TestClamp(t *testing.T) {
	if Clamp(2, -1, 1) != 1 || Clamp(-2, -1, 1) != -1 || Clamp(0.5, -1, 1) != 0.5 {
		t.Fail()
	}
}

func rectEquals(a, b Rect) bool {
	return Equals(a.Left, b.Left) && Equals(a.Top, b.Top) && Equals(a.Right, b.Right) && Equals(a.Bottom, b.Bottom)
}
