package main

import "dasa.cc/curl/gesture"

// tapSlop is how far in pixels a pointer may travel and still tap.
const tapSlop = 24

// taps recognizes single pointer taps. It follows input on its own so the
// view's gesture state stays private.
type taps struct {
	tr    gesture.Tracker
	x, y  float32
	multi bool
	moved bool
}

// filter consumes a touch or mouse event and reports whether it ended a tap:
// one pointer pressed and lifted without travelling past tapSlop.
func (t *taps) filter(e interface{}) bool {
	ev, ok := t.tr.Filter(e)
	if !ok {
		return false
	}
	p := ev.Pointer()
	switch ev.Action {
	case gesture.ActionDown:
		t.x, t.y = p.X, p.Y
		t.multi, t.moved = false, false
	case gesture.ActionPointerDown:
		t.multi = true
	case gesture.ActionMove, gesture.ActionUp:
		if dx, dy := p.X-t.x, p.Y-t.y; dx*dx+dy*dy > tapSlop*tapSlop {
			t.moved = true
		}
	}
	return ev.Action == gesture.ActionUp && !t.multi && !t.moved
}
