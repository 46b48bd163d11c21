package glw

import (
	"image"

	"golang.org/x/mobile/gl"
)

var (
	FilterNearest = TextureFilter(gl.NEAREST, gl.NEAREST)
	FilterLinear  = TextureFilter(gl.LINEAR, gl.LINEAR)
)

func TextureFilter(min, mag int) func(*Texture) {
	return func(tex *Texture) { tex.min, tex.mag = min, mag }
}

type Texture struct {
	gl.Texture
	min, mag int
	r        image.Rectangle
}

func (tex *Texture) Create(options ...func(*Texture)) {
	tex.min, tex.mag = gl.LINEAR, gl.LINEAR
	for _, opt := range options {
		opt(tex)
	}
	tex.Texture = ctx.CreateTexture()
	tex.r = image.Rectangle{}
}

func (tex *Texture) Delete() { ctx.DeleteTexture(tex.Texture) }

// Bind makes tex current on texture unit.
func (tex Texture) Bind(unit int) {
	ctx.ActiveTexture(gl.Enum(uint32(gl.TEXTURE0) + uint32(unit)))
	ctx.BindTexture(gl.TEXTURE_2D, tex.Texture)
	ctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, tex.min)
	ctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, tex.mag)
	ctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	ctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
}

// Update uploads src to the bound texture, reallocating storage only when
// src dimensions changed.
func (tex *Texture) Update(src *image.RGBA) {
	r := src.Bounds()
	if r == tex.r && !r.Empty() {
		ctx.TexSubImage2D(gl.TEXTURE_2D, 0, r.Min.X, r.Min.Y, r.Dx(), r.Dy(), gl.RGBA, gl.UNSIGNED_BYTE, src.Pix)
		return
	}
	ctx.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, r.Dx(), r.Dy(), gl.RGBA, gl.UNSIGNED_BYTE, src.Pix)
	tex.r = r
}
