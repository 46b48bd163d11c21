package view

import (
	"time"

	"golang.org/x/image/math/f32"
	"golang.org/x/mobile/event/size"

	"dasa.cc/curl/anim"
	"dasa.cc/curl/geom"
	"dasa.cc/curl/layout"
	"dasa.cc/curl/mesh"
	"dasa.cc/curl/texture"
)

var sides = [...]texture.Side{texture.Front, texture.Back}

// OnSize consumes a size event.
func (v *View) OnSize(e size.Event) { v.Resize(layout.FromSize(e)) }

// Resize sets the surface viewport and lays pages out again.
func (v *View) Resize(vp layout.Viewport) {
	v.mu.Lock()
	defer v.unlock()
	v.layout.Viewport = vp
	v.updateMargins()
	v.viewSizeChanged()
}

// OnSurfaceCreated marks every page texture for upload, as after the
// renderer lost its GL context. Page content is kept.
func (v *View) OnSurfaceCreated() {
	v.mu.Lock()
	defer v.unlock()
	v.meshes.Invalidate()
	v.render()
}

// UpdateMargins centers page content for the current viewport and
// orientation.
func (v *View) UpdateMargins() {
	v.mu.Lock()
	defer v.unlock()
	v.updateMargins()
}

// UpdatePages requests fresh content for visible pages.
func (v *View) UpdatePages() {
	v.mu.Lock()
	defer v.unlock()
	v.updatePages()
}

// SetProvider replaces the page provider; nil stops page requests.
func (v *View) SetProvider(p PageProvider) {
	v.mu.Lock()
	defer v.unlock()
	v.provider = p
	v.updatePages()
	v.render()
}

// Reset returns the View to Idle from any state, cancelling transitions
// in flight, and restores the portrait two-slot layout.
func (v *View) Reset() {
	v.mu.Lock()
	defer v.unlock()

	v.logger.Print("reset")
	v.curled = false
	v.curling = false
	v.dragging = false
	v.anim = anim.Animation{}
	v.dragStart, v.pointer = f32.Vec2{}, f32.Vec2{}
	v.lift = geom.Rect{}

	v.orientation = layout.Portrait
	v.settling = false
	v.degrees = 0
	v.rotation.Reset()
	v.absorbing = v.tracker.Len() > 0

	v.pageW, v.pageH = 0, 0
	v.meshes.Reset()
	v.meshes.HideAll()
	v.layout.Curled = false
	v.updateMargins()
	v.updatePages()
	v.render()
}

// Rotate turns the view a quarter turn clockwise as if rotated by hand.
func (v *View) Rotate() {
	v.mu.Lock()
	defer v.unlock()
	if v.busy() || v.rotation.Rotating() {
		return
	}
	v.cancelCurl()
	v.turn(true)
}

// turn starts settling a finished rotation. A rotation of at least
// anim.TurnDegrees, or any forced one, turns the orientation.
func (v *View) turn(force bool) {
	v.settling = true
	if force {
		v.degrees = anim.TurnDegrees
	}
	deg := v.degrees
	if deg < 0 {
		deg = -deg
	}
	if deg >= anim.TurnDegrees {
		v.orientation = v.orientation.Turn(v.degrees < 0)
		v.logger.Printf("orientation %v", v.orientation)
		if p, o := v.provider, v.orientation; p != nil {
			v.later(func() { p.RotateBegan(o) })
		}
	}
	v.render()
}

func (v *View) settle() {
	next, done := anim.Settle(v.degrees)
	v.degrees = next
	if done {
		v.settling = false
		v.updateMargins()
		v.viewSizeChanged()
	}
	v.render()
}

func (v *View) viewSizeChanged() {
	if o := v.observer; o != nil {
		v.later(o.ViewSizeChanged)
	}
	v.render()
}

func (v *View) updateMargins() {
	if v.layout.Viewport.Empty() {
		return
	}
	v.layout.Margins = layout.MarginsFor(v.layout.Viewport, v.orientation)
	v.layout.Update()
}

// pageSizeChanged is called by layout updates. Content is only requested
// again when the page size in pixels differs.
func (v *View) pageSizeChanged(w, h int) {
	if w == v.pageW && h == v.pageH {
		v.place()
		return
	}
	v.pageW, v.pageH = w, h
	if o := v.observer; o != nil {
		v.later(func() { o.PageSizeChanged(w, h) })
	}
	v.updatePages()
	v.render()
}

// updatePages fills and shows the resting page: the flipped top page once
// curled, otherwise the bottom page. A page being curled is refilled too.
func (v *View) updatePages() {
	if v.pageW <= 0 || v.pageH <= 0 {
		return
	}
	if v.provider == nil {
		v.logger.Print("no page provider")
		return
	}
	v.meshes.HideAll()
	if v.curled {
		v.show(mesh.Top, true)
	} else {
		v.show(mesh.Bottom, false)
	}
	if v.curling {
		v.show(mesh.Curl, false)
	}
	v.render()
}

func (v *View) show(r mesh.Role, flip bool) {
	m := v.meshes.Get(r)
	v.fill(r, &m.Page)
	m.Flip = flip
	m.Rect = v.slot(r)
	m.Reset()
	m.Visible = true
}

// place moves visible resting pages to their current layout slots.
func (v *View) place() {
	for _, r := range [...]mesh.Role{mesh.Bottom, mesh.Top} {
		if m := v.meshes.Get(r); m.Visible {
			m.Rect = v.slot(r)
		}
	}
	v.render()
}

func (v *View) slot(r mesh.Role) geom.Rect {
	if r == mesh.Top {
		return v.layout.Top
	}
	return v.layout.Bottom
}

func (v *View) fill(r mesh.Role, page *texture.Page) {
	page.Reset()
	req := PageRequest{Role: r, Width: v.pageW, Height: v.pageH, Orientation: v.orientation}
	front, back := v.provider.UpdatePage(req)
	if front == nil && back == nil {
		v.logger.Printf("no content for %v page at %vx%v", r, req.Width, req.Height)
	}
	page.SetTexture(texture.Front, front)
	page.SetTexture(texture.Back, back)
}

// advance steps a release transition.
func (v *View) advance(now time.Time) {
	switch v.anim.Phase(now) {
	case anim.Ease:
		v.pointer = v.anim.Pointer(now)
		v.updateCurl(v.pointer)
	case anim.Lifting:
		v.slide(v.anim.Lift(now))
	case anim.Done:
		if v.anim.Event == anim.CurlToBottom {
			v.finishToBottom()
		} else {
			v.finishToTop(now)
		}
	}
}

// slide moves the flipped page down from the top slot by dy, stopping at
// the top edge of the bottom slot.
func (v *View) slide(dy float32) {
	limit := v.layout.Bottom.Top
	if v.lift.Top-dy < limit {
		v.lift = v.lift.Offset(0, limit-v.lift.Top)
	} else {
		v.lift = v.lift.Offset(0, -dy)
	}
	m := v.meshes.Get(mesh.Curl)
	m.Rect = v.lift
	m.Flip = true
	m.Reset()
	v.render()
}

func (v *View) finishToBottom() {
	m := v.meshes.Get(mesh.Curl)
	m.Rect = v.layout.Bottom
	m.Flip = false
	m.Reset()
	v.meshes.Swap(mesh.Curl, mesh.Bottom)
	v.meshes.Get(mesh.Curl).Visible = false

	v.curling = false
	v.anim = anim.Animation{}
	v.render()
}

func (v *View) finishToTop(now time.Time) {
	if limit := v.layout.Bottom.Top; v.lift.Top > limit {
		v.lift = v.lift.Offset(0, limit-v.lift.Top)
	}
	m := v.meshes.Get(mesh.Curl)
	m.Rect = v.lift
	m.Flip = true
	m.Reset()

	top := v.meshes.Get(mesh.Top)
	top.Reset()
	top.Page.Reset()

	v.logger.Printf("curl completed in %v", now.Sub(v.anim.Epoch))
	v.curling = false
	v.anim = anim.Animation{}
	v.curled = true
	v.layout.Curled = true
	v.layout.Update()
	v.updatePages()
	if p := v.provider; p != nil {
		v.later(p.CurlCompleted)
	}
	v.render()
}
