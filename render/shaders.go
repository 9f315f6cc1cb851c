package render

import "log"

// vertex shader of the full-screen quad. kept free of a #version directive
// so that it compiles as GLSL 1.10 on desktop targets and GLSL ES 1.00 on
// GLES2 targets.
const vertexShaderSource = `
attribute vec2 position;
attribute vec2 texcoord;
varying vec2 vTexCoord;
void main() {
	gl_Position = vec4(position, 0.0, 1.0);
	vTexCoord = texcoord;
}
`

// CompileShader compiles the given source as a shader of the given stage and
// returns its handle. On compile failure it reports the compiler diagnostics
// through the log, releases the shader object and returns 0. Compilation is
// deterministic, so failures are never retried. The caller owns a returned
// non-zero handle.
func CompileShader(ctx Context, stage Stage, source string) uint32 {
	shader := ctx.CreateShader(stage)
	if shader == 0 {
		return 0
	}
	ctx.ShaderSource(shader, source)
	if !ctx.CompileShader(shader) {
		if infoLog := ctx.ShaderInfoLog(shader); len(infoLog) > 0 {
			log.Printf("Compile error in shader %d: \"%s\"\n", shader, infoLog)
		}
		ctx.DeleteShader(shader)
		return 0
	}
	return shader
}

// LinkProgram attaches the two compiled stages to a new program object and
// links it. If either handle is 0 (a failed compile), no program is created
// and 0 is returned. On link failure the program object is released and 0 is
// returned. The shader objects stay attached to a successfully linked
// program; deleting them afterwards is the caller's job.
func LinkProgram(ctx Context, vertexShader, fragmentShader uint32) uint32 {
	if vertexShader == 0 || fragmentShader == 0 {
		return 0
	}
	program := ctx.CreateProgram()
	if program == 0 {
		return 0
	}
	ctx.AttachShader(program, vertexShader)
	ctx.AttachShader(program, fragmentShader)
	if !ctx.LinkProgram(program) {
		if infoLog := ctx.ProgramInfoLog(program); len(infoLog) > 0 {
			log.Printf("Link error in program %d: \"%s\"\n", program, infoLog)
		}
		ctx.DeleteProgram(program)
		return 0
	}
	return program
}

// BuildProgram builds a drawable program from the fixed full-screen vertex
// shader and the given fragment shader source. The two shader objects are
// single-use intermediates and are released once the link attempt is over,
// whatever its outcome. Returns the program handle, or 0 if the fragment
// shader did not compile or linking failed; the caller owns a non-zero
// handle and this package never deletes it.
//
// The vertex shader source is a build-time constant, so a failure to compile
// it means a broken GL environment and panics.
func BuildProgram(ctx Context, fragmentSource string) uint32 {
	vertexShader := CompileShader(ctx, VertexStage, vertexShaderSource)
	if vertexShader == 0 {
		panic("full-screen vertex shader failed to compile")
	}
	fragmentShader := CompileShader(ctx, FragmentStage, fragmentSource)
	program := LinkProgram(ctx, vertexShader, fragmentShader)
	ctx.DeleteShader(vertexShader)
	ctx.DeleteShader(fragmentShader)
	return program
}
