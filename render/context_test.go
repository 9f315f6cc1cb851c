package render

// fakeContext implements Context on plain maps so that the build sequences
// can be tested without a GL context. Object names are handed out from a
// single counter; the refuse* fields simulate driver allocation failures and
// failCompile / failLink simulate compiler and linker errors.
type fakeContext struct {
	caps Capabilities

	refuseShaders      bool
	refusePrograms     bool
	refuseBuffers      bool
	refuseVertexArrays bool
	failCompile        map[Stage]bool
	failLink           bool
	infoLog            string
	attribs            map[string]int32

	nextHandle uint32
	shaders    map[uint32]*fakeShader
	programs   map[uint32]*fakeProgram
	buffers    map[uint32][]float32

	vertexArrays        map[uint32]bool
	deletedVertexArrays []uint32

	boundBuffer      uint32
	boundVertexArray uint32
	bufferGens       int
	vertexArrayGens  int

	pointers map[uint32][3]int32
	enabled  map[uint32]bool
}

type fakeShader struct {
	stage   Stage
	source  string
	deleted bool
}

type fakeProgram struct {
	attached []uint32
	linked   bool
	deleted  bool
}

func newFakeContext() *fakeContext {
	return &fakeContext{
		caps:         Capabilities{VertexArrays: true},
		failCompile:  make(map[Stage]bool),
		attribs:      map[string]int32{"position": 0, "texcoord": 1},
		shaders:      make(map[uint32]*fakeShader),
		programs:     make(map[uint32]*fakeProgram),
		buffers:      make(map[uint32][]float32),
		vertexArrays: make(map[uint32]bool),
		pointers:     make(map[uint32][3]int32),
		enabled:      make(map[uint32]bool),
	}
}

func (c *fakeContext) handle() uint32 {
	c.nextHandle++
	return c.nextHandle
}

func (c *fakeContext) Caps() Capabilities { return c.caps }

func (c *fakeContext) CreateShader(stage Stage) uint32 {
	if c.refuseShaders {
		return 0
	}
	shader := c.handle()
	c.shaders[shader] = &fakeShader{stage: stage}
	return shader
}

func (c *fakeContext) ShaderSource(shader uint32, source string) {
	c.shaders[shader].source = source
}

func (c *fakeContext) CompileShader(shader uint32) bool {
	return !c.failCompile[c.shaders[shader].stage]
}

func (c *fakeContext) ShaderInfoLog(shader uint32) string {
	if c.failCompile[c.shaders[shader].stage] {
		return c.infoLog
	}
	return ""
}

func (c *fakeContext) DeleteShader(shader uint32) {
	if shader == 0 {
		return
	}
	c.shaders[shader].deleted = true
}

func (c *fakeContext) CreateProgram() uint32 {
	if c.refusePrograms {
		return 0
	}
	program := c.handle()
	c.programs[program] = &fakeProgram{}
	return program
}

func (c *fakeContext) AttachShader(program, shader uint32) {
	p := c.programs[program]
	p.attached = append(p.attached, shader)
}

func (c *fakeContext) LinkProgram(program uint32) bool {
	c.programs[program].linked = !c.failLink
	return !c.failLink
}

func (c *fakeContext) ProgramInfoLog(program uint32) string {
	if c.failLink {
		return c.infoLog
	}
	return ""
}

func (c *fakeContext) DeleteProgram(program uint32) {
	if program == 0 {
		return
	}
	c.programs[program].deleted = true
}

func (c *fakeContext) AttribLocation(program uint32, name string) int32 {
	if location, ok := c.attribs[name]; ok {
		return location
	}
	return -1
}

func (c *fakeContext) UniformLocation(program uint32, name string) int32 {
	return -1
}

func (c *fakeContext) GenVertexArray() uint32 {
	c.vertexArrayGens++
	if c.refuseVertexArrays {
		return 0
	}
	array := c.handle()
	c.vertexArrays[array] = true
	return array
}

func (c *fakeContext) BindVertexArray(array uint32) {
	c.boundVertexArray = array
}

func (c *fakeContext) DeleteVertexArray(array uint32) {
	if array == 0 {
		return
	}
	delete(c.vertexArrays, array)
	c.deletedVertexArrays = append(c.deletedVertexArrays, array)
}

func (c *fakeContext) GenBuffer() uint32 {
	c.bufferGens++
	if c.refuseBuffers {
		return 0
	}
	buffer := c.handle()
	c.buffers[buffer] = nil
	return buffer
}

func (c *fakeContext) BindArrayBuffer(buffer uint32) {
	c.boundBuffer = buffer
}

func (c *fakeContext) ArrayBufferData(data []float32) {
	c.buffers[c.boundBuffer] = append([]float32(nil), data...)
}

func (c *fakeContext) VertexAttribPointer(location uint32, size, stride, offset int32) {
	c.pointers[location] = [3]int32{size, stride, offset}
}

func (c *fakeContext) EnableVertexAttribArray(location uint32) {
	c.enabled[location] = true
}

// liveShaders returns the handles of shader objects not yet deleted.
func (c *fakeContext) liveShaders() []uint32 {
	var live []uint32
	for handle, shader := range c.shaders {
		if !shader.deleted {
			live = append(live, handle)
		}
	}
	return live
}
