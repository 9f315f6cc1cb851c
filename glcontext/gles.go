// +build !darwin,!windows

package glcontext

/*
#cgo LDFLAGS: -lGLESv2
*/
import "C"
import (
	"log"

	gl "github.com/remogatto/opengles2"

	"github.com/VidScreen/VidScreen/render"
)

// Context implements render.Context on OpenGL ES 2.0. GLES2 has no vertex
// array objects, so attribute layout lives in global context state.
type Context struct {
	caps render.Capabilities
}

// New returns the context wrapper. A GLES context must already be current on
// the calling thread; the GLES2 entry points are linked in, no loader step
// is needed.
func New() (*Context, error) {
	log.Printf("OpenGL ES version \"%s\"\n", gl.GetString(gl.VERSION))
	return &Context{caps: render.Capabilities{VertexArrays: false}}, nil
}

// Caps returns the capabilities of this target.
func (c *Context) Caps() render.Capabilities { return c.caps }

// DisableVertexArrays is a no-op on GLES2, which never uses vertex arrays.
func (c *Context) DisableVertexArrays() {}

func stageEnum(stage render.Stage) gl.Enum {
	if stage == render.VertexStage {
		return gl.VERTEX_SHADER
	}
	return gl.FRAGMENT_SHADER
}

func (c *Context) CreateShader(stage render.Stage) uint32 {
	return gl.CreateShader(stageEnum(stage))
}

func (c *Context) ShaderSource(shader uint32, source string) {
	gl.ShaderSource(shader, 1, &source, nil)
}

func (c *Context) CompileShader(shader uint32) bool {
	gl.CompileShader(shader)
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status != 0
}

func (c *Context) ShaderInfoLog(shader uint32) string {
	var length int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &length)
	if length <= 0 {
		return ""
	}
	infoLog := gl.GetShaderInfoLog(shader, gl.Sizei(length), nil)
	return infoLog[:len(infoLog)-1]
}

func (c *Context) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (c *Context) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (c *Context) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (c *Context) LinkProgram(program uint32) bool {
	gl.LinkProgram(program)
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status != 0
}

func (c *Context) ProgramInfoLog(program uint32) string {
	var length int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &length)
	if length <= 0 {
		return ""
	}
	infoLog := gl.GetProgramInfoLog(program, gl.Sizei(length), nil)
	return infoLog[:len(infoLog)-1]
}

func (c *Context) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (c *Context) AttribLocation(program uint32, name string) int32 {
	return int32(gl.GetAttribLocation(program, name))
}

func (c *Context) UniformLocation(program uint32, name string) int32 {
	return int32(gl.GetUniformLocation(program, name))
}

func (c *Context) GenVertexArray() uint32 {
	// never reached: Caps().VertexArrays is false on this target
	return 0
}

func (c *Context) BindVertexArray(array uint32) {}

func (c *Context) DeleteVertexArray(array uint32) {}

func (c *Context) GenBuffer() uint32 {
	var buffer uint32
	gl.GenBuffers(1, &buffer)
	return buffer
}

func (c *Context) BindArrayBuffer(buffer uint32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, buffer)
}

func (c *Context) ArrayBufferData(data []float32) {
	gl.BufferData(gl.ARRAY_BUFFER,
		gl.SizeiPtr(len(data)*render.SizeOfFloat), gl.Void(&data[0]),
		gl.DYNAMIC_DRAW)
}

func (c *Context) VertexAttribPointer(location uint32, size, stride, offset int32) {
	gl.VertexAttribPointer(location, int(size), gl.FLOAT, false,
		gl.Sizei(stride), gl.Void(uintptr(offset)))
}

func (c *Context) EnableVertexAttribArray(location uint32) {
	gl.EnableVertexAttribArray(location)
}

// Viewport maps the clip space to the given drawable size.
func (c *Context) Viewport(width, height int32) {
	gl.Viewport(0, 0, gl.Sizei(width), gl.Sizei(height))
}

// Clear clears the color buffer.
func (c *Context) Clear() {
	gl.ClearColor(0.0, 0.0, 0.0, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// DrawQuad draws the full-screen quad with the given program. Caller-side
// helper for the render loop; not part of render.Context.
func (c *Context) DrawQuad(program uint32, quad render.Quad) {
	gl.UseProgram(program)
	gl.BindBuffer(gl.ARRAY_BUFFER, quad.VertexBuffer)
	gl.DrawArrays(gl.TRIANGLE_FAN, 0, 4)
}
