package gesture

import (
	"math"
	"testing"
	"time"

	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/touch"
)

func init() {
	setTime(time.Unix(0, 0))
}

// setTime replaces the global var func used by Tracker to return a static time.
func setTime(t time.Time) { now = func() time.Time { return t } }

func tev(seq touch.Sequence, x, y float32, typ touch.Type) touch.Event {
	return touch.Event{X: x, Y: y, Sequence: seq, Type: typ}
}

func TestTrackerTouch(t *testing.T) {
	var tr Tracker
	for i, tc := range []struct {
		in     touch.Event
		action Action
		index  int
		n      int // pointers in event
		ok     bool
	}{
		{tev(3, 0, 0, touch.TypeMove), 0, 0, 0, false}, // stale move
		{tev(3, 1, 1, touch.TypeBegin), ActionDown, 0, 1, true},
		{tev(3, 2, 2, touch.TypeMove), ActionMove, 0, 1, true},
		{tev(5, 9, 9, touch.TypeBegin), ActionPointerDown, 1, 2, true},
		{tev(5, 8, 8, touch.TypeMove), ActionMove, 1, 2, true},
		{tev(3, 2, 2, touch.TypeEnd), ActionPointerUp, 0, 2, true},
		{tev(3, 2, 2, touch.TypeEnd), 0, 0, 0, false}, // already up
		{tev(5, 7, 7, touch.TypeEnd), ActionUp, 0, 1, true},
	} {
		e, ok := tr.Filter(tc.in)
		if ok != tc.ok {
			t.Fatalf("%v: have ok %v, want %v", i, ok, tc.ok)
		}
		if !ok {
			continue
		}
		if e.Action != tc.action || e.Index != tc.index || len(e.Pointers) != tc.n {
			t.Errorf("%v: have %#v", i, e)
		}
		if p := e.Pointer(); p.ID != tc.in.Sequence || p.X != tc.in.X || p.Y != tc.in.Y {
			t.Errorf("%v: have pointer %+v for %+v", i, p, tc.in)
		}
	}
	if tr.Len() != 0 {
		t.Errorf("have %v pointers after all up", tr.Len())
	}
}

func TestTrackerMouse(t *testing.T) {
	var tr Tracker
	mev := func(x, y float32, dir mouse.Direction, btn mouse.Button) mouse.Event {
		return mouse.Event{X: x, Y: y, Direction: dir, Button: btn}
	}
	if _, ok := tr.Filter(mev(1, 1, mouse.DirNone, mouse.ButtonNone)); ok {
		t.Fatal("hover reported as move")
	}
	if _, ok := tr.Filter(mev(1, 1, mouse.DirPress, mouse.ButtonRight)); ok {
		t.Fatal("right button reported")
	}
	e, ok := tr.Filter(mev(1, 1, mouse.DirPress, mouse.ButtonLeft))
	if !ok || e.Action != ActionDown || e.Pointer().ID != 0 {
		t.Fatalf("have %#v, %v", e, ok)
	}
	if e, ok = tr.Filter(mev(2, 3, mouse.DirNone, mouse.ButtonNone)); !ok || e.Action != ActionMove {
		t.Fatalf("have %#v, %v", e, ok)
	}
	if _, ok = tr.Filter(mev(2, 3, mouse.DirStep, mouse.ButtonWheelUp)); ok {
		t.Fatal("wheel reported")
	}
	if _, ok = tr.Filter(mev(2, 3, mouse.DirRelease, mouse.ButtonRight)); ok || tr.Len() != 1 {
		t.Fatalf("right release ended the drag: %v, %d pointers", ok, tr.Len())
	}
	if e, ok = tr.Filter(mev(4, 5, mouse.DirNone, mouse.ButtonNone)); !ok || e.Action != ActionMove {
		t.Fatalf("move after right release: have %#v, %v", e, ok)
	}
	if e, ok = tr.Filter(mev(2, 3, mouse.DirRelease, mouse.ButtonLeft)); !ok || e.Action != ActionUp {
		t.Fatalf("have %#v, %v", e, ok)
	}
	if _, ok = tr.Filter(mev(2, 3, mouse.DirNone, mouse.ButtonNone)); ok {
		t.Fatal("move after release reported")
	}
	if _, ok = tr.Filter("not an event"); ok {
		t.Fatal("unknown value reported")
	}
}

func TestMod(t *testing.T) {
	for _, tc := range []struct{ in, want float32 }{
		{0, 0},
		{50, 50},
		{360, 0},
		{370, 10},
		{-1, -1},
		{-370, -10},
		{725, 5},
	} {
		have := Mod(tc.in, 360)
		if math.Abs(float64(have-tc.want)) > 1e-4 {
			t.Errorf("Mod(%v, 360): have %v, want %v", tc.in, have, tc.want)
		}
		if again := Mod(have, 360); again != have {
			t.Errorf("Mod(%v, 360) not idempotent: %v then %v", tc.in, have, again)
		}
	}
}

type rotationLog struct {
	began, finished int
	degs            []float32
}

func (l *rotationLog) RotateBegan()         { l.began++ }
func (l *rotationLog) Rotation(deg float32) { l.degs = append(l.degs, deg) }
func (l *rotationLog) RotateFinished()      { l.finished++ }

func (l *rotationLog) last() float32 { return l.degs[len(l.degs)-1] }

// polar returns a pointer at deg from origin such that angle(origin, p) == deg.
func polar(deg float64) (x, y float32) {
	r := deg * math.Pi / 180
	return float32(-100 * math.Cos(r)), float32(-100 * math.Sin(r))
}

func TestRotation(t *testing.T) {
	var (
		tr  Tracker
		log rotationLog
		rot = Rotation{Listener: &log}
	)
	send := func(e touch.Event) {
		t.Helper()
		ev, ok := tr.Filter(e)
		if !ok {
			t.Fatalf("dropped %+v", e)
		}
		rot.Handle(ev)
	}
	near := func(have, want float32) bool { return math.Abs(float64(have-want)) < 1e-3 }

	send(tev(0, 0, 0, touch.TypeBegin))
	send(tev(0, 0, 0, touch.TypeMove))
	if rot.Rotating() || log.began != 0 {
		t.Fatal("single pointer started rotation")
	}

	x, y := polar(10)
	send(tev(1, x, y, touch.TypeBegin))
	x, y = polar(60)
	send(tev(1, x, y, touch.TypeMove))
	if !rot.Rotating() || log.began != 1 {
		t.Fatalf("rotation not started: %+v", log)
	}
	if !near(log.last(), 50) {
		t.Errorf("have %v, want 50", log.last())
	}

	// lift second pointer; angle is kept and continued by a new pair
	send(tev(1, x, y, touch.TypeEnd))
	x, y = polar(0)
	send(tev(2, x, y, touch.TypeBegin))
	x, y = polar(-20)
	send(tev(2, x, y, touch.TypeMove))
	if log.began != 1 {
		t.Errorf("have %v RotateBegan, want 1", log.began)
	}
	if !near(log.last(), 30) {
		t.Errorf("have %v, want 30", log.last())
	}

	send(tev(2, x, y, touch.TypeEnd))
	send(tev(0, 0, 0, touch.TypeEnd))
	if rot.Rotating() || log.finished != 1 {
		t.Fatalf("rotation not finished: %+v", log)
	}

	// fresh gesture starts from zero
	send(tev(0, 0, 0, touch.TypeBegin))
	x, y = polar(0)
	send(tev(1, x, y, touch.TypeBegin))
	x, y = polar(-5)
	send(tev(1, x, y, touch.TypeMove))
	if !near(log.last(), -5) {
		t.Errorf("have %v, want -5", log.last())
	}
	rot.Reset()
	if rot.Rotating() {
		t.Error("Reset left rotation in progress")
	}
}
