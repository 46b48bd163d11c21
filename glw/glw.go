// Package glw wraps the x/mobile OpenGL ES 2 context with typed programs,
// uniforms, buffers and textures.
package glw

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"reflect"
	"runtime"
	"strings"

	"golang.org/x/mobile/asset"
	"golang.org/x/mobile/gl"
)

var (
	ctx    gl.Context
	logger = log.New(os.Stderr, "glw: ", 0)
)

// With sets the context used by the package and returns it.
func With(glctx gl.Context) gl.Context { ctx = glctx; return glctx }

func RGBA(c color.Color) (r, g, b, a float32) {
	ur, ug, ub, ua := c.RGBA()
	return float32(ur>>8) / 255, float32(ug>>8) / 255, float32(ub>>8) / 255, float32(ua>>8) / 255
}

func must(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}

// ReadAsset returns contents of named asset.
func ReadAsset(name string) ([]byte, error) {
	f, err := asset.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// caller returns first file and line number outside of this package for calling
// goroutine's stack, prefixed with defaultName which may be overridden based on
// stack frames.
func caller(defaultName string) string {
	pc := make([]uintptr, 10)
	n := runtime.Callers(3, pc)
	frames := runtime.CallersFrames(pc[:n])

	var (
		frame runtime.Frame
		more  bool
		name  = defaultName
		inpkg = func(s string) bool { return strings.HasPrefix(s, "dasa.cc/curl/glw") }
	)

	for frame, more = frames.Next(); more && inpkg(frame.Function); frame, more = frames.Next() {
		switch frame.Function {
		case "dasa.cc/curl/glw.VertSrc.Compile":
			name = "VertexShader"
		case "dasa.cc/curl/glw.FragSrc.Compile":
			name = "FragmentShader"
		}
	}

	return fmt.Sprintf("%s %s:%v", name, frame.File, frame.Line)
}

func compile(typ gl.Enum, src string) (gl.Shader, error) {
	shd := ctx.CreateShader(typ)
	ctx.ShaderSource(shd, src)
	ctx.CompileShader(shd)
	if ctx.GetShaderi(shd, gl.COMPILE_STATUS) == 0 {
		return shd, fmt.Errorf("%s\n%s", caller("CompileShader"), ctx.GetShaderInfoLog(shd))
	}
	return shd, nil
}

// VertSrc is vertex shader source code.
type VertSrc string

func (src VertSrc) Compile() (gl.Shader, error) { return compile(gl.VERTEX_SHADER, string(src)) }

// FragSrc is fragment shader source code.
type FragSrc string

func (src FragSrc) Compile() (gl.Shader, error) { return compile(gl.FRAGMENT_SHADER, string(src)) }

type Program struct{ gl.Program }

func (prg Program) Use()                           { ctx.UseProgram(prg.Program) }
func (prg Program) Uniform(name string) gl.Uniform { return ctx.GetUniformLocation(prg.Program, name) }
func (prg Program) Attrib(name string) gl.Attrib   { return ctx.GetAttribLocation(prg.Program, name) }
func (prg Program) Delete()                        { ctx.DeleteProgram(prg.Program) }

func (prg *Program) MustBuild(vsrc VertSrc, fsrc FragSrc) { must(prg.Build(vsrc, fsrc)) }

// Build compiles shaders and links program.
func (prg *Program) Build(vsrc VertSrc, fsrc FragSrc) error {
	prg.Program = ctx.CreateProgram()

	vshd, err := vsrc.Compile()
	if err != nil {
		return err
	}
	ctx.AttachShader(prg.Program, vshd)
	defer ctx.DeleteShader(vshd)

	fshd, err := fsrc.Compile()
	if err != nil {
		return err
	}
	ctx.AttachShader(prg.Program, fshd)
	defer ctx.DeleteShader(fshd)

	ctx.LinkProgram(prg.Program)
	if ctx.GetProgrami(prg.Program, gl.LINK_STATUS) == 0 {
		return fmt.Errorf("%s\n%s", caller("LinkProgram"), ctx.GetProgramInfoLog(prg.Program))
	}
	return nil
}

// SetLocations sets attribute and uniform fields of struct pointer dst by
// the lower-cased field name.
func (prg Program) SetLocations(dst interface{}) {
	val := reflect.ValueOf(dst).Elem()
	typ := val.Type()
	for i := 0; i < val.NumField(); i++ {
		f := val.Field(i)
		if !f.CanSet() {
			continue
		}
		name := strings.ToLower(typ.Field(i).Name)
		switch f.Interface().(type) {
		case A2fv:
			f.Set(reflect.ValueOf(A2fv(prg.Attrib(name))))
		case U1i:
			f.Set(reflect.ValueOf(U1i(prg.Uniform(name))))
		case U1f:
			f.Set(reflect.ValueOf(U1f(prg.Uniform(name))))
		case U4fv:
			f.Set(reflect.ValueOf(U4fv(prg.Uniform(name))))
		case U16fv:
			f.Set(reflect.ValueOf(U16fv(prg.Uniform(name))))
		}
	}
}
