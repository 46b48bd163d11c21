package glw

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f32"
)

// Matrices are column-major, as uploaded by U16fv.

func Ident() f32.Mat4 {
	return f32.Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mul returns a*b.
func Mul(a, b f32.Mat4) (m f32.Mat4) {
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			var x float32
			for k := 0; k < 4; k++ {
				x += a[k*4+r] * b[c*4+k]
			}
			m[c*4+r] = x
		}
	}
	return m
}

// MulVec4 returns m*v.
func MulVec4(m f32.Mat4, v f32.Vec4) (u f32.Vec4) {
	for r := 0; r < 4; r++ {
		u[r] = m[r]*v[0] + m[4+r]*v[1] + m[8+r]*v[2] + m[12+r]*v[3]
	}
	return u
}

func Translate(x, y, z float32) f32.Mat4 {
	return f32.Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

// RotateZ returns a counter-clockwise rotation by deg degrees.
func RotateZ(deg float32) f32.Mat4 {
	rad := float64(deg) * math.Pi / 180
	c, s := float32(math.Cos(rad)), float32(math.Sin(rad))
	return f32.Mat4{
		+c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func Ortho(l, r, b, t, n, f float32) f32.Mat4 {
	return f32.Mat4{
		2 / (r - l), 0, 0, 0,
		0, 2 / (t - b), 0, 0,
		0, 0, -2 / (f - n), 0,
		-(r + l) / (r - l), -(t + b) / (t - b), -(f + n) / (f - n), 1,
	}
}

// Perspective returns a projection with vertical field of view fovy radians.
func Perspective(fovy, aspect, near, far float32) f32.Mat4 {
	f := float32(1 / math.Tan(float64(fovy)/2))
	return f32.Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) / (near - far), -1,
		0, 0, 2 * far * near / (near - far), 0,
	}
}

// Eye is the camera distance of Frustum.
const Eye = 6

// Frustum returns a perspective projection, camera included, that maps the
// plane z=0 onto x in [-aspect, aspect] and y in [-1, 1] so pages lying flat
// match their normalized coordinates and curled parts rise toward the eye.
func Frustum(aspect float32) f32.Mat4 {
	fovy := float32(2 * math.Atan(1.0/Eye))
	return Mul(Perspective(fovy, aspect, 1, 2*Eye), Translate(0, 0, -Eye))
}

// Grid returns vertices of an nx by ny cell grid spanning the unit square,
// as xy pairs, and triangle indices into them.
func Grid(nx, ny int) (vertices []float32, indices []uint16) {
	vertices = make([]float32, 0, 2*(nx+1)*(ny+1))
	for j := 0; j <= ny; j++ {
		for i := 0; i <= nx; i++ {
			vertices = append(vertices, float32(i)/float32(nx), float32(j)/float32(ny))
		}
	}
	indices = make([]uint16, 0, 6*nx*ny)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			a := uint16(j*(nx+1) + i)
			b, c, d := a+1, a+uint16(nx+1), a+uint16(nx+2)
			indices = append(indices, a, b, c, b, d, c)
		}
	}
	return vertices, indices
}

func string16fv(m f32.Mat4) string {
	return fmt.Sprintf("%+.2f %+.2f %+.2f %+.2f\n%+.2f %+.2f %+.2f %+.2f\n%+.2f %+.2f %+.2f %+.2f\n%+.2f %+.2f %+.2f %+.2f",
		m[0], m[4], m[8], m[12], m[1], m[5], m[9], m[13], m[2], m[6], m[10], m[14], m[3], m[7], m[11], m[15])
}
