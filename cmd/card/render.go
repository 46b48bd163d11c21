package main

import (
	"golang.org/x/exp/shiny/materialdesign/colornames"
	"golang.org/x/image/math/f32"
	"golang.org/x/mobile/gl"

	"dasa.cc/curl/glw"
	"dasa.cc/curl/mesh"
	"dasa.cc/curl/texture"
	"dasa.cc/curl/view"
)

// grid resolution pages are tessellated at
const gridX, gridY = 24, 32

var sides = [...]texture.Side{texture.Front, texture.Back}

// slotTex holds gl textures of a mesh slot.
type slotTex struct {
	tex [2]glw.Texture
	uv  [2]texture.UV
	ok  [2]bool
}

type renderer struct {
	ctx gl.Context
	prg glw.Program

	Proj    glw.U16fv
	Model   glw.U16fv
	Rect    glw.U4fv
	Fold    glw.U4fv
	Radius  glw.U1f
	Curled  glw.U1f
	Flip    glw.U1f
	UVFront glw.U4fv
	UVBack  glw.U4fv
	Front   glw.U1i
	Back    glw.U1i
	Grid    glw.A2fv

	GridBuf glw.FloatBuffer
	GridInd glw.ShortBuffer

	slots [3]slotTex
}

func (r *renderer) create(glctx gl.Context) {
	r.ctx = glw.With(glctx)
	r.prg.MustBuild(vsrc, fsrc)
	r.prg.SetLocations(r)
	r.prg.Use()

	verts, idx := glw.Grid(gridX, gridY)
	r.GridBuf.Create(gl.STATIC_DRAW, verts)
	r.GridInd.Create(gl.STATIC_DRAW, idx)
	r.Grid.Pointer()

	r.Front.Set(0)
	r.Back.Set(1)
	for i := range r.slots {
		for j := range sides {
			r.slots[i].tex[j].Create(glw.FilterLinear)
			r.slots[i].ok[j] = false
		}
	}

	r.ctx.Enable(gl.DEPTH_TEST)
	r.ctx.DepthFunc(gl.LEQUAL)
	r.ctx.Enable(gl.BLEND)
	r.ctx.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	r.ctx.ClearColor(glw.RGBA(colornames.BlueGrey800))
}

func (r *renderer) destroy() {
	for i := range r.slots {
		for j := range sides {
			r.slots[i].tex[j].Delete()
		}
	}
	r.GridInd.Delete()
	r.GridBuf.Delete()
	r.prg.Delete()
	r.ctx = nil
}

// upload sends changed page sides of m to gl.
func (r *renderer) upload(m *mesh.Mesh) {
	st := &r.slots[m.Slot]
	for j, side := range sides {
		if !m.Page.Changed(side) {
			continue
		}
		pix, uv := m.Page.Texture(side)
		st.ok[j] = pix != nil
		st.uv[j] = uv
		if pix == nil {
			continue
		}
		st.tex[j].Bind(j)
		st.tex[j].Update(pix)
	}
}

func (r *renderer) draw(f view.Frame) {
	if f.Viewport.Empty() {
		return
	}
	r.ctx.Viewport(0, 0, f.Viewport.WidthPx, f.Viewport.HeightPx)
	r.ctx.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	ar := float32(f.Viewport.WidthPx) / float32(f.Viewport.HeightPx)
	r.Proj.Set(glw.Frustum(ar))
	r.Model.Set(glw.RotateZ(-f.Rotation))

	for i := range f.Meshes {
		m := &f.Meshes[i]
		r.upload(m)
		st := &r.slots[m.Slot]
		if !st.ok[0] && !st.ok[1] {
			continue
		}
		for j := range sides {
			st.tex[j].Bind(j)
		}
		uvf, uvb := st.uv[0], st.uv[1]
		r.UVFront.Set(f32.Vec4{uvf.X0, uvf.Y0, uvf.X1, uvf.Y1})
		r.UVBack.Set(f32.Vec4{uvb.X0, uvb.Y0, uvb.X1, uvb.Y1})
		r.Rect.Set(f32.Vec4{m.Rect.Left, m.Rect.Bottom, m.Rect.Width(), m.Rect.Height()})
		r.Fold.Set(f32.Vec4{m.Fold.Pos[0], m.Fold.Pos[1], m.Fold.Dir[0], m.Fold.Dir[1]})
		r.Radius.Set(m.Fold.Radius)
		r.Curled.SetBool(m.Curled)
		r.Flip.SetBool(m.Flip)
		r.GridInd.Draw(gl.TRIANGLES)
	}
}

const (
	vsrc = `#version 100
uniform mat4 proj;
uniform mat4 model;
uniform vec4 rect;
uniform vec4 fold;
uniform float radius;
uniform float curled;
uniform float flip;
uniform vec4 uvfront;
uniform vec4 uvback;
attribute vec2 grid;
varying vec2 vfront;
varying vec2 vback;
varying float vside;

const float PI = 3.14159265;

// uv maps page coordinates, y up, into a packed texture whose first row is
// the top of the page.
vec2 uv(vec4 r, vec2 q) {
	return vec2(mix(r.x, r.z, q.x), mix(r.w, r.y, q.y));
}

void main() {
	vec2 p = rect.xy + grid*rect.zw;
	vec3 v = vec3(p, 0.0);
	float back = 0.0;
	if (curled > 0.5 && radius > 0.0) {
		vec2 dir = fold.zw;
		float s = -dot(p-fold.xy, dir);
		if (s > 0.0) {
			vec2 base = p + dir*s;
			float arc = PI*radius;
			if (s > arc) {
				v = vec3(base + dir*(s-arc), 2.0*radius);
				back = 1.0;
			} else {
				float a = s/radius;
				v = vec3(base - dir*radius*sin(a), radius*(1.0-cos(a)));
				back = step(PI/2.0, a);
			}
		}
	}

	// a flipped page lies reflected over its top edge
	vec2 q = grid;
	if (flip > 0.5) {
		q.y = 1.0-q.y;
		back = 1.0-back;
	}
	vfront = uv(uvfront, q);
	vback = uv(uvback, vec2(q.x, 1.0-q.y));
	vside = back;
	gl_Position = proj*model*vec4(v, 1.0);
}`

	fsrc = `#version 100
precision mediump float;
uniform sampler2D front;
uniform sampler2D back;
varying vec2 vfront;
varying vec2 vback;
varying float vside;
void main() {
	if (vside > 0.5) {
		gl_FragColor = texture2D(back, vback);
	} else {
		gl_FragColor = texture2D(front, vfront);
	}
}`
)
