// +build darwin windows

package glcontext

import (
	"fmt"
	"log"

	"github.com/go-gl/gl/all-core/gl"

	"github.com/VidScreen/VidScreen/render"
)

// Context implements render.Context on desktop OpenGL. Vertex array objects
// are available here.
type Context struct {
	caps render.Capabilities
}

// New loads the OpenGL function pointers and returns the context wrapper.
// A GL context must already be current on the calling thread.
func New() (*Context, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("could not initialize OpenGL: %v", err)
	}
	log.Printf("OpenGL version \"%s\"\n", gl.GoStr(gl.GetString(gl.VERSION)))
	return &Context{caps: render.Capabilities{VertexArrays: true}}, nil
}

// Caps returns the capabilities of this target.
func (c *Context) Caps() render.Capabilities { return c.caps }

// DisableVertexArrays turns off vertex array usage, making the geometry
// binder behave as on the GLES targets.
func (c *Context) DisableVertexArrays() { c.caps.VertexArrays = false }

func stageEnum(stage render.Stage) uint32 {
	if stage == render.VertexStage {
		return gl.VERTEX_SHADER
	}
	return gl.FRAGMENT_SHADER
}

func (c *Context) CreateShader(stage render.Stage) uint32 {
	return gl.CreateShader(stageEnum(stage))
}

func (c *Context) ShaderSource(shader uint32, source string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
}

func (c *Context) CompileShader(shader uint32) bool {
	gl.CompileShader(shader)
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (c *Context) ShaderInfoLog(shader uint32) string {
	var length int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &length)
	if length <= 0 {
		return ""
	}
	infoLog := make([]byte, length)
	gl.GetShaderInfoLog(shader, length, nil, &infoLog[0])
	return string(infoLog[:length-1])
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
	return status != gl.FALSE
}

func (c *Context) ProgramInfoLog(program uint32) string {
	var length int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &length)
	if length <= 0 {
		return ""
	}
	infoLog := make([]byte, length)
	gl.GetProgramInfoLog(program, length, nil, &infoLog[0])
	return string(infoLog[:length-1])
}

func (c *Context) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (c *Context) AttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(name+"\x00"))
}

func (c *Context) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (c *Context) GenVertexArray() uint32 {
	var array uint32
	gl.GenVertexArrays(1, &array)
	return array
}

func (c *Context) BindVertexArray(array uint32) {
	gl.BindVertexArray(array)
}

func (c *Context) DeleteVertexArray(array uint32) {
	gl.DeleteVertexArrays(1, &array)
}

func (c *Context) GenBuffer() uint32 {
	var buffer uint32
	gl.GenBuffers(1, &buffer)
	return buffer
}

func (c *Context) BindArrayBuffer(buffer uint32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, buffer)
}

func (c *Context) ArrayBufferData(data []float32) {
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*render.SizeOfFloat, gl.Ptr(data),
		gl.DYNAMIC_DRAW)
}

func (c *Context) VertexAttribPointer(location uint32, size, stride, offset int32) {
	gl.VertexAttribPointerWithOffset(location, size, gl.FLOAT, false, stride,
		uintptr(offset))
}

func (c *Context) EnableVertexAttribArray(location uint32) {
	gl.EnableVertexAttribArray(location)
}

// Viewport maps the clip space to the given drawable size.
func (c *Context) Viewport(width, height int32) {
	gl.Viewport(0, 0, width, height)
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
	if c.caps.VertexArrays && quad.VertexArray != 0 {
		gl.BindVertexArray(quad.VertexArray)
	} else {
		gl.BindBuffer(gl.ARRAY_BUFFER, quad.VertexBuffer)
	}
	gl.DrawArrays(gl.TRIANGLE_FAN, 0, 4)
}
