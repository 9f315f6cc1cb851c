// Package render builds the GPU shader programs of the video pipeline and
// configures the full-screen quad they draw into. It talks to the GPU
// exclusively through the Context interface; the glcontext package provides
// the platform backends.
package render

// Stage identifies a shader stage.
type Stage int

const (
	// VertexStage is the vertex shader stage.
	VertexStage Stage = iota
	// FragmentStage is the fragment shader stage.
	FragmentStage
)

// Capabilities describes optional features of the GPU target.
type Capabilities struct {
	// VertexArrays tells whether vertex array objects are available.
	// It is false on the GLES2 targets.
	VertexArrays bool
}

// Context is the set of GPU driver entry points used for building programs
// and vertex geometry. A GL context must be current on the calling thread;
// nothing here synchronizes concurrent callers. All handles are driver-owned
// object names where 0 means "no object"; delete calls ignore handle 0.
type Context interface {
	Caps() Capabilities

	// CreateShader requests a new shader object. Returns 0 if the driver
	// refuses to allocate one.
	CreateShader(stage Stage) uint32
	// ShaderSource submits GLSL source text for the shader.
	ShaderSource(shader uint32, source string)
	// CompileShader compiles the submitted source and reports the compile
	// status.
	CompileShader(shader uint32) bool
	// ShaderInfoLog returns the compiler diagnostics, or "" if the driver
	// produced none.
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	// CreateProgram requests a new program object. Returns 0 if the driver
	// refuses to allocate one.
	CreateProgram() uint32
	AttachShader(program, shader uint32)
	// LinkProgram links the attached stages and reports the link status.
	LinkProgram(program uint32) bool
	ProgramInfoLog(program uint32) string
	DeleteProgram(program uint32)

	// AttribLocation returns the location of the named vertex input of a
	// linked program, or a negative value if the program has no such input.
	AttribLocation(program uint32, name string) int32
	// UniformLocation returns the location of the named uniform, or a
	// negative value if the program has no such uniform.
	UniformLocation(program uint32, name string) int32

	// GenVertexArray allocates a vertex array object. Only valid on targets
	// where Caps().VertexArrays is true.
	GenVertexArray() uint32
	BindVertexArray(array uint32)
	DeleteVertexArray(array uint32)

	// GenBuffer allocates a buffer object.
	GenBuffer() uint32
	// BindArrayBuffer binds the buffer as the current vertex buffer.
	BindArrayBuffer(buffer uint32)
	// ArrayBufferData uploads data to the current vertex buffer with a
	// dynamic-update usage hint.
	ArrayBufferData(data []float32)

	// VertexAttribPointer describes a float attribute layout over the
	// current vertex buffer. stride and offset are in bytes.
	VertexAttribPointer(location uint32, size, stride, offset int32)
	EnableVertexAttribArray(location uint32)
}
