// Package curl solves the fold line of a page being dragged by a pointer.
//
// A fold is a line through Pos along Dir around which the page wraps a
// cylinder of the given Radius. The solver produces only that line; turning it
// into a tessellated surface is left to the renderer.
package curl

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f32"

	"dasa.cc/curl/geom"
)

// DefaultRadius of the fold cylinder in normalized units.
const DefaultRadius = 0.08

// slack keeps the shrunken arc length from collapsing to zero when the page
// is dragged far past the opposite edge.
const slack = 0.01

// Fold describes the bend of a curled page.
type Fold struct {
	Pos    f32.Vec2 // point on the fold line
	Dir    f32.Vec2 // unit normal of the fold line, pointing along the drag
	Radius float32
}

func (f Fold) String() string {
	return fmt.Sprintf("Fold{Pos:%+.3f,%+.3f Dir:%+.3f,%+.3f R:%.3f}", f.Pos[0], f.Pos[1], f.Dir[0], f.Dir[1], f.Radius)
}

// ArcLen returns the nominal arc length of half the fold cylinder.
func ArcLen(radius float32) float32 { return radius * math.Pi }

// Solve computes the fold for a page occupying rect page, held at start and
// dragged to pointer. The boolean result is false when no fold exists, either
// because the pointer hasn't moved or the fold would lie on or below the
// page's bottom edge; callers lay the page flat in that case.
func Solve(pointer, start f32.Vec2, page geom.Rect, radius float32) (Fold, bool) {
	dir := geom.Sub(pointer, start)
	dist := geom.Len(dir)
	if dist == 0 {
		return Fold{}, false
	}

	// shrink the arc as the page is dragged far across so the fold doesn't
	// grow without bound.
	h := page.Height()
	curlLen := ArcLen(radius)
	if dist > 2*h-curlLen {
		curlLen = float32(math.Max(float64(2*h-dist), 0)) + ArcLen(radius) + slack
	}

	pos := pointer
	if dist >= curlLen {
		// fold slides along the drag direction.
		t := (dist - curlLen) / 2
		pos = geom.Sub(pos, geom.Scale(dir, t/dist))
	} else {
		// fold wraps around the cylinder.
		angle := math.Pi * math.Sqrt(float64(dist/curlLen))
		t := radius * float32(math.Sin(angle))
		pos = geom.Add(pos, geom.Scale(dir, t/dist))
	}

	if pos[1] <= page.Bottom {
		return Fold{}, false
	}
	if pos[1] > page.Top {
		pos[1] = page.Top
	}

	// anchor the fold to the page corner when its line would leave the page
	// horizontally at the top edge.
	if dir[0] != 0 {
		dy := page.Top - pos[1]
		x := pos[0] - dy*dir[1]/dir[0]
		if dir[0] < 0 && x < page.Right {
			dir = f32.Vec2{pos[1] - page.Top, page.Right - pos[0]}
		} else if dir[0] > 0 && x > page.Left {
			dir = f32.Vec2{page.Top - pos[1], pos[0] - page.Left}
		}
	}

	n, ok := geom.Norm(dir)
	if !ok {
		return Fold{}, false
	}
	return Fold{Pos: pos, Dir: n, Radius: radius}, true
}

// Deform maps a flat page point p onto the folded surface. Points behind the
// fold line wrap around the cylinder and land past it upside down; back
// reports whether the reverse side of the page faces the viewer at p.
func (f Fold) Deform(p f32.Vec2) (v f32.Vec3, back bool) {
	s := -geom.Dot(geom.Sub(p, f.Pos), f.Dir)
	if s <= 0 || f.Radius <= 0 {
		return f32.Vec3{p[0], p[1], 0}, false
	}
	base := geom.Add(p, geom.Scale(f.Dir, s))
	if arc := ArcLen(f.Radius); s > arc {
		q := geom.Add(base, geom.Scale(f.Dir, s-arc))
		return f32.Vec3{q[0], q[1], 2 * f.Radius}, true
	}
	a := float64(s / f.Radius)
	q := geom.Sub(base, geom.Scale(f.Dir, f.Radius*float32(math.Sin(a))))
	z := f.Radius * float32(1-math.Cos(a))
	return f32.Vec3{q[0], q[1], z}, a > math.Pi/2
}
