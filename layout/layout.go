// Package layout maps device pixels into normalized render space and computes
// the rectangles occupied by the top and bottom page slots.
package layout

import (
	"golang.org/x/image/math/f32"
	"golang.org/x/mobile/event/size"

	"dasa.cc/curl/geom"
)

// Viewport is the pixel size of the render surface and its density in pixels
// per density-independent pixel (1/160 inch).
type Viewport struct {
	WidthPx, HeightPx int
	Density           float32
}

// FromSize returns the Viewport described by a size event.
func FromSize(e size.Event) Viewport {
	return Viewport{
		WidthPx:  e.WidthPx,
		HeightPx: e.HeightPx,
		Density:  e.PixelsPerPt * 72 / 160,
	}
}

func (vp Viewport) Empty() bool { return vp.WidthPx <= 0 || vp.HeightPx <= 0 }

// Rect returns the aspect-corrected view rectangle; height spans -1..+1.
func (vp Viewport) Rect() geom.Rect {
	if vp.Empty() {
		return geom.Rect{}
	}
	ar := float32(vp.WidthPx) / float32(vp.HeightPx)
	return geom.R(-ar, 1, ar, -1)
}

// ToNormalized maps pixel coordinates, y growing downward, into the view
// rectangle, y growing upward. Coordinates outside the surface map outside the
// rectangle; no clamping is done.
func (vp Viewport) ToNormalized(px, py float32) f32.Vec2 {
	if vp.Empty() {
		return f32.Vec2{}
	}
	r := vp.Rect()
	return f32.Vec2{
		r.Left + r.Width()*px/float32(vp.WidthPx),
		r.Top - r.Height()*py/float32(vp.HeightPx),
	}
}

// ToPixels is the inverse of ToNormalized.
func (vp Viewport) ToPixels(p f32.Vec2) (px, py float32) {
	if vp.Empty() {
		return 0, 0
	}
	r := vp.Rect()
	px = (p[0] - r.Left) * float32(vp.WidthPx) / r.Width()
	py = (r.Top - p[1]) * float32(vp.HeightPx) / r.Height()
	return px, py
}

// PixelSize returns the pixel dimensions r covers on the surface.
func (vp Viewport) PixelSize(r geom.Rect) (w, h int) {
	view := vp.Rect()
	if view.Empty() {
		return 0, 0
	}
	w = int(r.Width() * float32(vp.WidthPx) / view.Width())
	h = int(r.Height() * float32(vp.HeightPx) / view.Height())
	return w, h
}

// Target content size in density-independent pixels.
const (
	ContentWidth  = 254
	ContentHeight = 354

	// MaxContentHeight is the largest fraction of view height content may use.
	MaxContentHeight = 0.5
)

// Margins are proportional; a value of 0.1 is a margin of 10% of the view
// dimension on that side.
type Margins struct {
	Left, Top, Right, Bottom float32
}

// MarginsFor centers the target content in vp. Content keeps its 254:354
// ratio, is capped at half the view height and has width and height swapped
// for landscape orientations.
func MarginsFor(vp Viewport, o Orientation) Margins {
	if vp.Empty() {
		return Margins{}
	}
	w, h := float32(vp.WidthPx), float32(vp.HeightPx)
	d := vp.Density
	if d <= 0 {
		d = 1
	}

	cw, ch := ContentWidth*d, ContentHeight*d
	if max := h * MaxContentHeight; ch > max {
		ch = max
		cw = ch * ContentWidth / ContentHeight
	}
	if o.Landscape() {
		cw, ch = ch, cw
	}

	lr := (w - cw) / w / 2
	tb := (h - ch) / h / 2
	return Margins{Left: lr, Top: tb, Right: lr, Bottom: tb}
}

// Compute returns the top and bottom page rects. The bottom rect is view
// shrunk by margins. The top rect is the bottom rect moved up by half its
// height, or equal to it once a page is fully curled.
func Compute(view geom.Rect, m Margins, curled bool) (top, bottom geom.Rect) {
	bottom = view.Inset(m.Left, m.Top, m.Right, m.Bottom)
	top = bottom
	if !curled {
		top = bottom.Offset(0, bottom.Height()/2)
	}
	return top, bottom
}

// Layout holds the current page rects for a viewport and margins.
type Layout struct {
	Viewport Viewport
	Margins  Margins
	Curled   bool

	View, Top, Bottom geom.Rect

	// OnPageSize, if set, receives the pixel size a page texture should be
	// rendered at each time Update succeeds.
	OnPageSize func(width, height int)
}

// Update recomputes rects from the current viewport, margins and curl state.
// Nothing changes if the viewport is empty.
func (l *Layout) Update() bool {
	view := l.Viewport.Rect()
	if view.Empty() {
		return false
	}
	l.View = view
	l.Top, l.Bottom = Compute(view, l.Margins, l.Curled)
	if l.OnPageSize != nil {
		l.OnPageSize(l.Viewport.PixelSize(l.Bottom))
	}
	return true
}
