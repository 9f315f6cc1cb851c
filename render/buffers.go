package render

const (
	// SizeOfFloat is the byte size of a GL float.
	SizeOfFloat = 4

	quadFloatsPerVertex = 4
)

// quadVertices is the full-screen quad in clip space, interleaved as
// x, y, u, v. Winding is bottom-left, bottom-right, top-right, top-left so
// it draws as a fan or strip. Texture coordinates are flipped vertically:
// source frames have a top-left origin while GL textures grow bottom-up.
var quadVertices = []float32{
	-1, -1, 0, 1,
	1, -1, 1, 1,
	1, 1, 1, 0,
	-1, 1, 0, 0,
}

// Quad holds the GPU resources describing the full-screen quad geometry of
// one program. Both handles are owned by the caller for the lifetime of the
// render target; VertexArray is 0 on targets without vertex array support.
type Quad struct {
	VertexArray  uint32
	VertexBuffer uint32
}

// BindFullScreenQuad allocates and fills a vertex buffer with the
// full-screen quad and binds the program's "position" and "texcoord" inputs
// to its interleaved layout. On targets with vertex array support the whole
// layout is captured in a fresh vertex array object which is left bound.
//
// Returns ok == false if the program lacks one of the two named inputs (in
// which case nothing is allocated) or if the driver refuses to allocate a
// resource; a partially allocated quad is released before returning.
func BindFullScreenQuad(ctx Context, program uint32) (quad Quad, ok bool) {
	position := ctx.AttribLocation(program, "position")
	texcoord := ctx.AttribLocation(program, "texcoord")
	if position < 0 || texcoord < 0 {
		return Quad{}, false
	}

	if ctx.Caps().VertexArrays {
		quad.VertexArray = ctx.GenVertexArray()
		if quad.VertexArray == 0 {
			return Quad{}, false
		}
		ctx.BindVertexArray(quad.VertexArray)
	}

	quad.VertexBuffer = ctx.GenBuffer()
	if quad.VertexBuffer == 0 {
		ctx.DeleteVertexArray(quad.VertexArray)
		return Quad{}, false
	}
	ctx.BindArrayBuffer(quad.VertexBuffer)
	ctx.ArrayBufferData(quadVertices)

	const stride = quadFloatsPerVertex * SizeOfFloat
	ctx.VertexAttribPointer(uint32(position), 2, stride, 0)
	ctx.VertexAttribPointer(uint32(texcoord), 2, stride, 2*SizeOfFloat)
	ctx.EnableVertexAttribArray(uint32(position))
	ctx.EnableVertexAttribArray(uint32(texcoord))
	return quad, true
}
