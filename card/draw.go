package card

import (
	"image"
	"image/color"
	"sync"

	"github.com/golang/freetype/truetype"
	"github.com/nfnt/resize"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"

	"dasa.cc/curl/layout"
)

var (
	bold = mustParseTTF(gobold.TTF)

	facemu sync.Mutex
	faces  = make(map[int]font.Face)
)

func mustParseTTF(ttf []byte) *truetype.Font {
	f, err := truetype.Parse(ttf)
	if err != nil {
		panic(err)
	}
	return f
}

// face returns bold text of px pixels in height.
func face(px int) font.Face {
	if px < 1 {
		px = 1
	}
	facemu.Lock()
	defer facemu.Unlock()
	if f, ok := faces[px]; ok {
		return f
	}
	f := truetype.NewFace(bold, &truetype.Options{Size: float64(px), DPI: 72, Hinting: font.HintingFull})
	faces[px] = f
	return f
}

func fill(dst *image.RGBA, r image.Rectangle, c color.Color) {
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// frame draws a border of width t just inside r.
func frame(dst *image.RGBA, r image.Rectangle, t int, c color.Color) {
	fill(dst, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+t), c)
	fill(dst, image.Rect(r.Min.X, r.Max.Y-t, r.Max.X, r.Max.Y), c)
	fill(dst, image.Rect(r.Min.X, r.Min.Y, r.Min.X+t, r.Max.Y), c)
	fill(dst, image.Rect(r.Max.X-t, r.Min.Y, r.Max.X, r.Max.Y), c)
}

// text draws s with its center at pt.
func text(dst *image.RGBA, s string, pt image.Point, px int, c color.Color) {
	f := face(px)
	adv := font.MeasureString(f, s)
	m := f.Metrics()
	dr := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: f,
		Dot: fixed.Point26_6{
			X: fixed.I(pt.X) - adv/2,
			Y: fixed.I(pt.Y) + (m.Ascent-m.Descent)/2,
		},
	}
	dr.DrawString(s)
}

func (d *Deck) drawFront(w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	r := dst.Bounds()
	fill(dst, r, d.palette.Front)
	pad := max(1, w/16)
	inner := r.Inset(pad)
	frame(dst, inner, max(1, pad/3), d.palette.FrontAccent)

	if d.cover != nil {
		art := inner.Inset(pad)
		if !art.Empty() {
			m := resize.Resize(uint(art.Dx()), uint(art.Dy()), d.cover, d.interp)
			draw.Draw(dst, art, m, m.Bounds().Min, draw.Over)
		}
	}
	if d.hint != "" {
		text(dst, d.hint, image.Pt(w/2, h/2), max(1, w/14), d.palette.FrontAccent)
	}
	return dst
}

func (d *Deck) drawBack(w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	r := dst.Bounds()
	fill(dst, r, d.palette.Back)
	pad := max(1, w/16)
	frame(dst, r.Inset(pad), max(1, pad/3), d.palette.BackAccent)

	s := d.value.String()
	text(dst, s, image.Pt(w/2, h/2), max(1, w/3), d.palette.BackAccent)
	corner := max(1, w/10)
	text(dst, s, image.Pt(2*pad+corner/2, 2*pad+corner/2), corner, d.palette.BackAccent)
	text(dst, s, image.Pt(w-2*pad-corner/2, h-2*pad-corner/2), corner, d.palette.BackAccent)
	return dst
}

// Rotate turns upright art clockwise by o.Degrees(). Landscape orientations
// swap width and height.
func Rotate(src *image.RGBA, o layout.Orientation) *image.RGBA {
	b := src.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	var s2d f64.Aff3
	switch o {
	case layout.LandscapeRight:
		s2d = f64.Aff3{0, -1, h, 1, 0, 0}
	case layout.PortraitUpsideDown:
		s2d = f64.Aff3{-1, 0, w, 0, -1, h}
	case layout.LandscapeLeft:
		s2d = f64.Aff3{0, 1, 0, -1, 0, w}
	default:
		return src
	}
	r := image.Rect(0, 0, b.Dx(), b.Dy())
	if o.Landscape() {
		r = image.Rect(0, 0, b.Dy(), b.Dx())
	}
	// shift src bounds to the origin
	s2d[2] -= s2d[0]*float64(b.Min.X) + s2d[1]*float64(b.Min.Y)
	s2d[5] -= s2d[3]*float64(b.Min.X) + s2d[4]*float64(b.Min.Y)
	dst := image.NewRGBA(r)
	draw.BiLinear.Transform(dst, s2d, src, b, draw.Src, nil)
	return dst
}
