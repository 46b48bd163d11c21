package glw

import (
	"golang.org/x/image/math/f32"
	"golang.org/x/mobile/gl"
)

type U1i gl.Uniform

func (u U1i) Set(v int) { ctx.Uniform1i(gl.Uniform(u), v) }

type U1f gl.Uniform

func (u U1f) Set(v float32) { ctx.Uniform1f(gl.Uniform(u), v) }

// SetBool sets 1 for true and 0 for false.
func (u U1f) SetBool(b bool) {
	if b {
		u.Set(1)
	} else {
		u.Set(0)
	}
}

type U4fv gl.Uniform

func (u U4fv) Set(v f32.Vec4) { ctx.Uniform4fv(gl.Uniform(u), v[:]) }

type U16fv gl.Uniform

func (u U16fv) Set(m f32.Mat4) { ctx.UniformMatrix4fv(gl.Uniform(u), m[:]) }

type A2fv gl.Attrib

func (a A2fv) Enable()  { ctx.EnableVertexAttribArray(gl.Attrib(a)) }
func (a A2fv) Disable() { ctx.DisableVertexAttribArray(gl.Attrib(a)) }
func (a A2fv) Pointer() {
	a.Enable()
	ctx.VertexAttribPointer(gl.Attrib(a), 2, gl.FLOAT, false, 0, 0)
}
