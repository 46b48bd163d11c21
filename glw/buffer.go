package glw

import (
	"encoding/binary"
	"math"

	"golang.org/x/mobile/gl"
)

// buffer holds encoded data of a gl buffer object, reusing its storage
// when updates fit.
type buffer struct {
	gl.Buffer
	target gl.Enum
	usage  gl.Enum
	bin    []byte
	count  int
}

func (buf *buffer) create(target, usage gl.Enum) {
	buf.target, buf.usage = target, usage
	buf.Buffer = ctx.CreateBuffer()
}

func (buf buffer) Delete() { ctx.DeleteBuffer(buf.Buffer) }
func (buf buffer) Bind()   { ctx.BindBuffer(buf.target, buf.Buffer) }
func (buf buffer) Unbind() { ctx.BindBuffer(buf.target, gl.Buffer{Value: 0}) }

// upload sends bin[:n] to the bound buffer.
func (buf *buffer) upload(n int, sub bool) {
	if sub {
		ctx.BufferSubData(buf.target, 0, buf.bin[:n])
	} else {
		ctx.BufferData(buf.target, buf.bin[:n], buf.usage)
	}
}

// grow makes room for n bytes and reports whether existing storage sufficed.
func (buf *buffer) grow(n int) bool {
	if len(buf.bin) > 0 && n <= len(buf.bin) {
		return true
	}
	buf.bin = make([]byte, n)
	return false
}

type FloatBuffer struct{ buffer }

func (buf *FloatBuffer) Create(usage gl.Enum, data []float32) {
	buf.create(gl.ARRAY_BUFFER, usage)
	buf.Bind()
	buf.Update(data)
}

func (buf *FloatBuffer) Update(data []float32) {
	buf.count = len(data)
	sub := buf.grow(4 * len(data))
	for i, x := range data {
		binary.LittleEndian.PutUint32(buf.bin[4*i:], math.Float32bits(x))
	}
	buf.upload(4*len(data), sub)
}

func (buf FloatBuffer) Draw(mode gl.Enum) { ctx.DrawArrays(mode, 0, buf.count) }

// ShortBuffer is an element buffer of uint16 indices, the widest index type
// OpenGL ES 2 guarantees.
type ShortBuffer struct{ buffer }

func (buf *ShortBuffer) Create(usage gl.Enum, data []uint16) {
	buf.create(gl.ELEMENT_ARRAY_BUFFER, usage)
	buf.Bind()
	buf.Update(data)
}

func (buf *ShortBuffer) Update(data []uint16) {
	buf.count = len(data)
	sub := buf.grow(2 * len(data))
	for i, u := range data {
		binary.LittleEndian.PutUint16(buf.bin[2*i:], u)
	}
	buf.upload(2*len(data), sub)
}

func (buf ShortBuffer) Draw(mode gl.Enum) { ctx.DrawElements(mode, buf.count, gl.UNSIGNED_SHORT, 0) }
