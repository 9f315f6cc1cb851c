// Package glcontext provides the platform GL backends behind
// render.Context: desktop OpenGL on darwin and windows, OpenGL ES 2.0
// everywhere else. Both expose the same Context type, so callers only
// depend on the build target through this package.
package glcontext
