// +build darwin windows

package main

import (
	"log"

	"github.com/veandco/go-sdl2/sdl"
)

func setGLAttributes() {
	// default (compatibility) profile: the shader set is written in
	// version-less GLSL so it runs unchanged against GLSL 1.10 here and
	// GLSL ES 1.00 on the GLES targets.
	log.Println("using OpenGL 2.1 profile")

	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 2)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
}
