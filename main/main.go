package main

import (
	"io/ioutil"
	"log"
	"runtime"

	"github.com/pborman/getopt"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/VidScreen/VidScreen/glcontext"
	"github.com/VidScreen/VidScreen/render"
)

func init() {
	runtime.LockOSThread()
}

// drawn when no fragment shader file is given. self-contained so the viewer
// works without any frame source attached.
const defaultFragmentSource = `
varying vec2 vTexCoord;
void main() {
	gl_FragColor = vec4(vTexCoord, 0.25, 1.0);
}
`

func main() {
	configPath := getopt.StringLong("config", 'c', "", "path to a config file")
	fullscreenFlag := getopt.BoolLong("fullscreen", 'f', "start in fullscreen")
	width := getopt.Int32Long("width", 'w', 0, "width of the window")
	height := getopt.Int32Long("height", 'h', 0, "height of the window")
	shaderPath := getopt.StringLong("shader", 's', "",
		"file containing the fragment shader to display")
	noVertexArrays := getopt.BoolLong("no-vertex-arrays", 0,
		"do not use vertex array objects")
	getopt.Parse()

	config := loadConfig(*configPath)
	if *fullscreenFlag {
		config.fullscreen = true
	}
	if *width != 0 {
		config.width = *width
	}
	if *height != 0 {
		config.height = *height
	}
	if *shaderPath != "" {
		config.shader = *shaderPath
	}
	if *noVertexArrays {
		config.noVertexArrays = true
	}

	fragmentSource := defaultFragmentSource
	if config.shader != "" {
		raw, err := ioutil.ReadFile(config.shader)
		if err != nil {
			log.Fatalf("could not read shader file %s: %s", config.shader,
				err.Error())
		}
		fragmentSource = string(raw)
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		panic(err)
	}
	defer sdl.Quit()
	setGLAttributes()

	var flags uint32 = sdl.WINDOW_OPENGL | sdl.WINDOW_ALLOW_HIGHDPI
	if config.fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}
	window, err := sdl.CreateWindow("VidScreen", sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED, config.width, config.height, flags)
	if err != nil {
		panic(err)
	}
	defer window.Destroy()
	glc, err := window.GLCreateContext()
	if err != nil {
		panic(err)
	}
	defer sdl.GLDeleteContext(glc)

	ctx, err := glcontext.New()
	if err != nil {
		panic(err)
	}
	if config.noVertexArrays {
		ctx.DisableVertexArrays()
	}

	program := render.BuildProgram(ctx, fragmentSource)
	if program == 0 {
		log.Fatal("could not build the shader program")
	}
	quad, ok := render.BindFullScreenQuad(ctx, program)
	if !ok {
		log.Fatal("program lacks the position/texcoord vertex inputs")
	}

	if err = sdl.GLSetSwapInterval(-1); err != nil {
		log.Println("Could not set swap interval to -1")
	}
	drawableWidth, drawableHeight := window.GLGetDrawableSize()
	ctx.Viewport(drawableWidth, drawableHeight)

	renderLoop(window, ctx, program, quad)
}

func renderLoop(window *sdl.Window, ctx *glcontext.Context, program uint32,
	quad render.Quad) {
	for {
		ctx.Clear()
		ctx.DrawQuad(program, quad)
		window.GLSwap()
		switch e := sdl.WaitEvent().(type) {
		case *sdl.QuitEvent:
			return
		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Keysym.Sym == sdl.K_ESCAPE {
				return
			}
		}
	}
}
