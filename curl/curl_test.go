package curl

import (
	"math"
	"math/rand"
	"testing"

	"golang.org/x/image/math/f32"

	"dasa.cc/curl/geom"
)

// page is 1.6 units tall.
var page = geom.R(-0.5, 0.8, 0.5, -0.8)

func vec(x, y float32) f32.Vec2 { return f32.Vec2{x, y} }

func near(a, b f32.Vec2) bool { return geom.EqualEps(a[0], b[0], 1e-3) && geom.EqualEps(a[1], b[1], 1e-3) }

func TestSolveDegenerate(t *testing.T) {
	if f, ok := Solve(vec(0, 0), vec(0, 0), page, DefaultRadius); ok {
		t.Errorf("no movement produced %s", f)
	}
	// dragging along the bottom edge never lifts the page.
	if f, ok := Solve(vec(0.3, -0.8), vec(0, -0.8), page, DefaultRadius); ok {
		t.Errorf("fold on bottom edge produced %s", f)
	}
	// pointer dragged below the page.
	if f, ok := Solve(vec(0, -1.5), vec(0, -0.8), page, DefaultRadius); ok {
		t.Errorf("fold below page produced %s", f)
	}
}

func TestSolveWrap(t *testing.T) {
	// dist 0.1 < curlLen 0.2513: the fold leads the pointer around the cylinder.
	f, ok := Solve(vec(0, -0.7), vec(0, -0.8), page, DefaultRadius)
	if !ok {
		t.Fatal("no fold")
	}
	if want := vec(0, -0.6267); !near(f.Pos, want) {
		t.Errorf("have pos %v, want %v", f.Pos, want)
	}
	if !near(f.Dir, vec(0, 1)) {
		t.Errorf("have dir %v", f.Dir)
	}
	if f.Radius != DefaultRadius {
		t.Errorf("have radius %v", f.Radius)
	}

	f, ok = Solve(vec(-0.3, 0), vec(-0.4, 0), page, DefaultRadius)
	if !ok {
		t.Fatal("no fold")
	}
	if f.Pos[0] <= -0.3 {
		t.Errorf("wrapped fold %s should lead pointer", f)
	}
}

func TestSolveTranslate(t *testing.T) {
	// dist 0.5 >= curlLen: the fold trails the pointer by half the excess.
	f, ok := Solve(vec(0, -0.3), vec(0, -0.8), page, DefaultRadius)
	if !ok {
		t.Fatal("no fold")
	}
	excess := (0.5 - ArcLen(DefaultRadius)) / 2
	if want := vec(0, -0.3-excess); !near(f.Pos, want) {
		t.Errorf("have pos %v, want %v", f.Pos, want)
	}

	f, ok = Solve(vec(0.1, 0), vec(-0.4, 0), page, DefaultRadius)
	if !ok {
		t.Fatal("no fold")
	}
	if want := vec(0.1-excess, 0); !near(f.Pos, want) {
		t.Errorf("have pos %v, want %v", f.Pos, want)
	}
	// anchored to the page's top-left corner
	dir, _ := geom.Norm(vec(page.Top-f.Pos[1], f.Pos[0]-page.Left))
	if !near(f.Dir, dir) {
		t.Errorf("have dir %v, want %v", f.Dir, dir)
	}
}

func TestSolveClampTop(t *testing.T) {
	f, ok := Solve(vec(0, 3), vec(0, -0.8), page, DefaultRadius)
	if !ok {
		t.Fatal("no fold")
	}
	if f.Pos[1] != page.Top {
		t.Errorf("have pos %v, want clamped to top %v", f.Pos, page.Top)
	}
}

func TestSolveBounds(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	rnd := func(lo, hi float32) float32 { return lo + r.Float32()*(hi-lo) }
	for i := 0; i < 10000; i++ {
		start := vec(rnd(page.Left, page.Right), page.Bottom)
		if i%2 == 0 {
			start[1] = rnd(page.Bottom, page.Top)
		}
		pointer := vec(rnd(-3, 3), rnd(-3, 3))
		f, ok := Solve(pointer, start, page, DefaultRadius)
		if !ok {
			continue
		}
		if f.Pos[1] <= page.Bottom || f.Pos[1] > page.Top {
			t.Fatalf("pointer %v start %v: fold %s outside page %s", pointer, start, f, page)
		}
		if l := geom.Len(f.Dir); math.Abs(float64(l-1)) > 1e-4 {
			t.Fatalf("pointer %v start %v: dir not unit, len %v", pointer, start, l)
		}
	}
}

func TestDeform(t *testing.T) {
	f := Fold{Pos: f32.Vec2{0, 0}, Dir: f32.Vec2{0, 1}, Radius: 0.1}
	arc := ArcLen(f.Radius)

	// ahead of the fold stays flat
	if v, back := f.Deform(f32.Vec2{0.2, 0.3}); v != (f32.Vec3{0.2, 0.3, 0}) || back {
		t.Errorf("have %v %v", v, back)
	}

	// a sixth of a turn is still on the front side
	v, back := f.Deform(f32.Vec2{0, -arc / 3})
	if !geom.Equals(v[1], -0.0866) || !geom.Equals(v[2], 0.05) || back {
		t.Errorf("sixth turn: have %v %v", v, back)
	}

	// past half a turn lands flipped in front of the fold
	v, back = f.Deform(f32.Vec2{0.4, -arc - 0.25})
	if !geom.Equals(v[0], 0.4) || !geom.Equals(v[1], 0.25) || !geom.Equals(v[2], 0.2) || !back {
		t.Errorf("flipped: have %v %v", v, back)
	}
}

func TestDeformCornerTracksPointer(t *testing.T) {
	start, pointer := vec(0, page.Bottom), vec(0, -0.2)
	f, ok := Solve(pointer, start, page, DefaultRadius)
	if !ok {
		t.Fatal("no fold")
	}
	v, back := f.Deform(start)
	if !back || !geom.EqualEps(v[0], pointer[0], 1e-3) || !geom.EqualEps(v[1], pointer[1], 1e-3) {
		t.Errorf("have %v %v, want %v", v, back, pointer)
	}
}
