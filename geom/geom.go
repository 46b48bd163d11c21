// Package geom provides the small set of 2-D primitives shared by the page
// layout, curl solver and renderer.
//
// All coordinates are in normalized render space: y grows upward, the view
// height spans -1..+1 and the width spans -aspect..+aspect.
package geom

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f32"
)

// Rect is an axis-aligned rectangle in y-up space; Top >= Bottom for any
// rectangle produced by this module.
type Rect struct {
	Left, Top, Right, Bottom float32
}

// R is shorthand for Rect{l, t, r, b}.
func R(l, t, r, b float32) Rect { return Rect{Left: l, Top: t, Right: r, Bottom: b} }

func (r Rect) Width() float32  { return r.Right - r.Left }
func (r Rect) Height() float32 { return r.Top - r.Bottom }

// Empty reports whether r has no area.
func (r Rect) Empty() bool { return r.Width() <= 0 || r.Height() <= 0 }

// Offset returns r moved by dx, dy.
func (r Rect) Offset(dx, dy float32) Rect {
	return Rect{r.Left + dx, r.Top + dy, r.Right + dx, r.Bottom + dy}
}

// Inset returns r shrunk on each side by the given fractions of r's own size.
func (r Rect) Inset(left, top, right, bottom float32) Rect {
	w, h := r.Width(), r.Height()
	return Rect{
		Left:   r.Left + w*left,
		Top:    r.Top - h*top,
		Right:  r.Right - w*right,
		Bottom: r.Bottom + h*bottom,
	}
}

// Contains reports whether p lies within r, edges included.
func (r Rect) Contains(p f32.Vec2) bool {
	return r.Left <= p[0] && p[0] <= r.Right && r.Bottom <= p[1] && p[1] <= r.Top
}

func (r Rect) String() string {
	return fmt.Sprintf("[l:%+.3f t:%+.3f r:%+.3f b:%+.3f]", r.Left, r.Top, r.Right, r.Bottom)
}

func Vec2(x, y float32) f32.Vec2 { return f32.Vec2{x, y} }

func Add(a, b f32.Vec2) f32.Vec2          { return f32.Vec2{a[0] + b[0], a[1] + b[1]} }
func Sub(a, b f32.Vec2) f32.Vec2          { return f32.Vec2{a[0] - b[0], a[1] - b[1]} }
func Scale(a f32.Vec2, s float32) f32.Vec2 { return f32.Vec2{a[0] * s, a[1] * s} }
func Dot(a, b f32.Vec2) float32           { return a[0]*b[0] + a[1]*b[1] }

// Len returns the euclidean length of a.
func Len(a f32.Vec2) float32 {
	return float32(math.Sqrt(float64(a[0]*a[0] + a[1]*a[1])))
}

// Norm returns a scaled to unit length and false if a has zero length.
func Norm(a f32.Vec2) (f32.Vec2, bool) {
	n := Len(a)
	if n == 0 {
		return f32.Vec2{}, false
	}
	return f32.Vec2{a[0] / n, a[1] / n}, true
}

// Lerp interpolates between a and b by t.
func Lerp(a, b f32.Vec2, t float32) f32.Vec2 {
	return f32.Vec2{
		a[0] + t*(b[0]-a[0]),
		a[1] + t*(b[1]-a[1]),
	}
}

// Clamp limits x to [lo, hi].
func Clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

const Epsilon = 0.0001

func Equals(a, b float32) bool { return EqualEps(a, b, Epsilon) }

func EqualEps(a, b float32, eps float32) bool {
	return (a-b) < eps && (b-a) < eps
}
