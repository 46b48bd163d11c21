package view

import (
	"golang.org/x/image/math/f32"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/touch"

	"dasa.cc/curl/anim"
	"dasa.cc/curl/curl"
	"dasa.cc/curl/gesture"
	"dasa.cc/curl/mesh"
)

// OnTouch consumes a touch event.
func (v *View) OnTouch(e touch.Event) { v.filter(e) }

// OnMouse consumes a mouse event; the left button acts as a single touch.
func (v *View) OnMouse(e mouse.Event) { v.filter(e) }

func (v *View) filter(e interface{}) {
	v.mu.Lock()
	defer v.unlock()
	if ev, ok := v.tracker.Filter(e); ok {
		v.handle(ev)
	}
}

// busy reports whether new gestures are refused.
func (v *View) busy() bool { return v.anim.Active() || v.settling }

func (v *View) handle(e gesture.Event) {
	if e.Action == gesture.ActionDown {
		v.absorbing = v.busy()
		v.primary = e.Pointer().ID
		v.held = true
	}
	if v.absorbing {
		if e.Action == gesture.ActionUp {
			v.absorbing, v.held = false, false
		}
		return
	}

	switch e.Action {
	case gesture.ActionDown:
		v.down(v.toNormalized(e.Pointer()))
	case gesture.ActionMove:
		for _, p := range e.Pointers {
			if v.held && p.ID == v.primary {
				v.move(v.toNormalized(p))
			}
		}
	case gesture.ActionPointerUp, gesture.ActionUp:
		if p := e.Pointer(); v.held && p.ID == v.primary {
			v.held = false
			v.up(v.toNormalized(p))
		}
	}

	if v.anim.Active() {
		// release started a transition; ignore the rest of this gesture.
		v.absorbing = e.Action != gesture.ActionUp
		return
	}
	if !v.curling {
		v.rotation.Handle(e)
	}
}

func (v *View) toNormalized(p gesture.Pointer) f32.Vec2 {
	return v.layout.Viewport.ToNormalized(p.X, p.Y)
}

func (v *View) down(pos f32.Vec2) {
	if v.curled {
		return
	}
	v.dragging = true
	v.pointer = pos

	bottom := v.layout.Bottom
	switch {
	case pos[1] > bottom.Top:
		pos[1] = bottom.Top
	case pos[1] < bottom.Bottom:
		pos[1] = bottom.Bottom
	}
	v.dragStart = pos

	// only a hold near the bottom edge lifts the page
	if pos[1] <= bottom.Bottom+bottom.Height()/4 {
		v.dragStart[1] = bottom.Bottom
		v.startCurl()
	}
}

func (v *View) move(pos f32.Vec2) {
	if v.curled {
		return
	}
	v.pointer = pos
	if v.curling {
		v.updateCurl(pos)
	}
}

func (v *View) up(pos f32.Vec2) {
	v.dragging = false
	if v.curled || !v.curling {
		return
	}
	v.pointer = pos

	bottom, top := v.layout.Bottom, v.layout.Top
	a := anim.Animation{Source: pos, Epoch: v.now(), Dur: v.dur}
	if pos[1] < bottom.Top {
		a.Target = f32.Vec2{bottom.Right, bottom.Bottom}
		a.Event = anim.CurlToBottom
	} else {
		a.Target = f32.Vec2{v.dragStart[0], top.Top}
		a.Event = anim.CurlToTop
		v.lift = top
	}
	v.logger.Printf("released at %.3f, %v", pos, a.Event)
	v.anim = a
	v.render()
}

// startCurl hands the bottom page to the curl slot.
func (v *View) startCurl() {
	v.rotation.Reset()
	v.meshes.HideAll()
	v.meshes.Swap(mesh.Bottom, mesh.Curl)

	m := v.meshes.Get(mesh.Curl)
	m.Rect = v.layout.Bottom
	m.Flip = false
	m.Reset()
	m.Visible = true

	v.curling = true
	v.logger.Printf("curl started at %.3f", v.dragStart)
	v.render()
}

func (v *View) updateCurl(pointer f32.Vec2) {
	m := v.meshes.Get(mesh.Curl)
	if f, ok := curl.Solve(pointer, v.dragStart, v.layout.Bottom, v.radius); ok {
		m.Curl(f)
	} else {
		m.Reset()
	}
	v.render()
}

// cancelCurl returns a curling page flat to the bottom slot at once.
func (v *View) cancelCurl() {
	v.anim = anim.Animation{}
	if !v.curling {
		v.meshes.Get(mesh.Curl).Reset()
		return
	}
	v.curling = false
	m := v.meshes.Get(mesh.Curl)
	m.Rect = v.layout.Bottom
	m.Flip = false
	m.Reset()
	v.meshes.Swap(mesh.Curl, mesh.Bottom)
	v.meshes.Get(mesh.Curl).Visible = false
	v.render()
}

// rotationListener receives recognizer callbacks with the View locked.
type rotationListener View

func (l *rotationListener) RotateBegan() {
	v := (*View)(l)
	v.dragging = false
	v.cancelCurl()
	v.render()
}

func (l *rotationListener) Rotation(deg float32) {
	v := (*View)(l)
	v.degrees = anim.ClampDegrees(deg)
	v.render()
}

func (l *rotationListener) RotateFinished() {
	(*View)(l).turn(false)
}
