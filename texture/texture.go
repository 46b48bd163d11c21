// Package texture packs page bitmaps into power-of-two textures.
package texture

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// NextPow2 returns the smallest power of two >= n, for n > 0.
func NextPow2(n int) int {
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}

// UV is the valid sub-rectangle of a padded texture. X0 and Y0 are always 0.
type UV struct {
	X0, Y0, X1, Y1 float32
}

func (uv UV) String() string { return fmt.Sprintf("UV(%v,%v %v,%v)", uv.X0, uv.Y0, uv.X1, uv.Y1) }

// Pack draws src at the origin of a transparent power-of-two canvas. src must
// not be empty.
func Pack(src image.Image) (*image.RGBA, UV) {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	pw, ph := NextPow2(w), NextPow2(h)
	dst := image.NewRGBA(image.Rect(0, 0, pw, ph))
	draw.Draw(dst, image.Rect(0, 0, w, h), src, b.Min, draw.Src)
	return dst, UV{X1: float32(w) / float32(pw), Y1: float32(h) / float32(ph)}
}

// Side of a page.
type Side int

const (
	Front Side = iota
	Back
	nsides
)

func (s Side) String() string {
	switch s {
	case Front:
		return "Front"
	case Back:
		return "Back"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// Page holds packed front and back textures of a page. Changed reports
// sides that need uploading to the renderer.
type Page struct {
	pix     [nsides]*image.RGBA
	uv      [nsides]UV
	changed [nsides]bool
}

// SetTexture packs img as side s; nil clears the side.
func (p *Page) SetTexture(s Side, img image.Image) {
	if img == nil || img.Bounds().Empty() {
		p.pix[s], p.uv[s] = nil, UV{}
	} else {
		p.pix[s], p.uv[s] = Pack(img)
	}
	p.changed[s] = true
}

// Texture returns packed side s, nil if unset.
func (p *Page) Texture(s Side) (*image.RGBA, UV) { return p.pix[s], p.uv[s] }

// Changed reports whether side s needs uploading.
func (p *Page) Changed(s Side) bool { return p.changed[s] }

// MarkUploaded clears the changed state of side s.
func (p *Page) MarkUploaded(s Side) { p.changed[s] = false }

// Invalidate marks both sides changed, as after losing the GL context.
func (p *Page) Invalidate() {
	for s := range p.pix {
		p.changed[s] = true
	}
}

// Reset clears both sides.
func (p *Page) Reset() {
	p.SetTexture(Front, nil)
	p.SetTexture(Back, nil)
}
