package anim

import (
	"testing"
	"time"

	"golang.org/x/image/math/f32"

	"dasa.cc/curl/geom"
)

const ms = time.Millisecond

func TestSmoothstep(t *testing.T) {
	if Smoothstep(0) != 0 || Smoothstep(1) != 1 {
		t.Fatalf("have ends %v %v", Smoothstep(0), Smoothstep(1))
	}
	prev := Smoothstep(0)
	for i := 1; i <= 1000; i++ {
		u := float32(i) / 1000
		x := Smoothstep(u)
		if x < prev {
			t.Fatalf("not monotonic at u=%v: %v < %v", u, x, prev)
		}
		prev = x
	}
	const h = 1e-3
	if d := (Smoothstep(1) - Smoothstep(1-h)) / h; d > 0.01 {
		t.Errorf("slope at 1 is %v", d)
	}
	if Smoothstep(-1) != 0 || Smoothstep(2) != 1 {
		t.Error("out of range input not clamped")
	}
}

func TestLift(t *testing.T) {
	if !geom.Equals(Lift(0), 1.0/16) || Lift(1) != 0 {
		t.Fatalf("have ends %v %v", Lift(0), Lift(1))
	}
	if !geom.Equals(Lift(0.5), (1-0.0625)/16) {
		t.Errorf("have %v", Lift(0.5))
	}
}

func TestAnimation(t *testing.T) {
	epoch := time.Unix(0, 0)
	a := Animation{
		Source: f32.Vec2{0, 0},
		Target: f32.Vec2{1, 2},
		Epoch:  epoch,
		Dur:    500 * ms,
		Event:  CurlToBottom,
	}
	if !a.Active() {
		t.Fatal("animation inactive")
	}
	if p := a.Pointer(epoch); p != a.Source {
		t.Errorf("have start %v", p)
	}
	if p := a.Pointer(epoch.Add(250 * ms)); !geom.Equals(p[0], 0.75) || !geom.Equals(p[1], 1.5) {
		t.Errorf("have midpoint %v", p)
	}
	if p := a.Pointer(epoch.Add(time.Second)); p != a.Target {
		t.Errorf("have end %v", p)
	}
	if p := a.Pointer(epoch.Add(-time.Second)); p != a.Source {
		t.Errorf("clock before epoch: have %v", p)
	}

	for _, tc := range []struct {
		ev   Event
		at   time.Duration
		want Phase
	}{
		{CurlToBottom, 0, Ease},
		{CurlToBottom, 499 * ms, Ease},
		{CurlToBottom, 500 * ms, Done},
		{CurlToTop, 499 * ms, Ease},
		{CurlToTop, 500 * ms, Lifting},
		{CurlToTop, 999 * ms, Lifting},
		{CurlToTop, 1000 * ms, Done},
	} {
		a.Event = tc.ev
		if have := a.Phase(epoch.Add(tc.at)); have != tc.want {
			t.Errorf("%s at %v: have phase %v, want %v", tc.ev, tc.at, have, tc.want)
		}
	}

	if (Animation{}).Active() {
		t.Error("zero animation active")
	}
}

func TestSettle(t *testing.T) {
	for _, tc := range []struct {
		from   float32
		frames int
	}{
		{30, 10},  // 30 -> 0
		{-44, 15}, // -44 -> 0
		{45, 15},  // 45 -> 90
		{-60, 10}, // -60 -> -90
	} {
		deg, n := tc.from, 0
		for {
			next, done := Settle(deg)
			if done {
				break
			}
			deg = next
			n++
			if n > 100 {
				t.Fatalf("from %v: did not settle", tc.from)
			}
		}
		if n != tc.frames {
			t.Errorf("from %v: settled in %v frames, want %v", tc.from, n, tc.frames)
		}
	}
}

func TestClampDegrees(t *testing.T) {
	for _, tc := range []struct{ in, want float32 }{
		{50, 50}, {120, 90}, {-120, -90}, {-10, -10},
	} {
		if have := ClampDegrees(tc.in); have != tc.want {
			t.Errorf("ClampDegrees(%v): have %v, want %v", tc.in, have, tc.want)
		}
	}
}
