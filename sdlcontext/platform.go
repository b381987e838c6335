// This file is part of glfbo.
//
// glfbo is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// glfbo is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with glfbo.  If not, see <https://www.gnu.org/licenses/>.
// Package sdlcontext creates an SDL window with an OpenGL 3.2 core context
// and wraps it in a glcontext.Context backed by the gldevice package.
//
// All functions must be called from the main goroutine. The OS thread is
// locked by New() and never unlocked.
package sdlcontext

import (
	"fmt"
	"runtime"

	"github.com/jetsetilly/glfbo/glcontext"
	"github.com/jetsetilly/glfbo/gpu/gldevice"
	"github.com/jetsetilly/glfbo/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// Platform is an SDL window and its GL context.
type Platform struct {
	window    *sdl.Window
	glContext sdl.GLContext
	device    *gldevice.Device
	ctx       *glcontext.Context

	// size of the window's drawable area in pixels
	drawableSize func() (int32, int32)
}

// New is the preferred method of initialisation for the Platform type. A
// hidden window is useful for off-screen work but still requires a display.
func New(title string, width int, height int, visible bool) (*Platform, error) {
	// the SDL package calls LockOSThread() but we call it here too. it can't
	// hurt and we never unlock it in any case
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	err = setAttributes()
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_ALLOW_HIGHDPI | sdl.WINDOW_RESIZABLE)
	if visible {
		flags |= sdl.WINDOW_SHOWN
	} else {
		flags |= sdl.WINDOW_HIDDEN
	}

	plt := &Platform{}

	plt.window, err = sdl.CreateWindow(title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(width), int32(height), flags)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	plt.drawableSize = plt.window.GLGetDrawableSize

	err = plt.createGLContext()
	if err != nil {
		plt.Destroy()
		return nil, err
	}

	plt.device, err = gldevice.New()
	if err != nil {
		plt.Destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	w, h := plt.drawableSize()
	plt.ctx, err = glcontext.New(plt.device, int(w), int(h))
	if err != nil {
		plt.Destroy()
		return nil, err
	}

	return plt, nil
}

func setAttributes() error {
	err := sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 3)
	if err != nil {
		return err
	}
	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 2)
	if err != nil {
		return err
	}
	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG)
	if err != nil {
		return err
	}
	return sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
}

func (plt *Platform) createGLContext() error {
	var err error

	plt.glContext, err = plt.window.GLCreateContext()
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}

	err = plt.window.GLMakeCurrent(plt.glContext)
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}

	major, _ := sdl.GLGetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION)
	minor, _ := sdl.GLGetAttribute(sdl.GL_CONTEXT_MINOR_VERSION)
	logger.Logf(logger.Allow, "sdl", "using GL version %d.%d core", major, minor)

	return nil
}

// Context returns the graphics context for the window.
func (plt *Platform) Context() *glcontext.Context {
	return plt.ctx
}

// Device returns the GL device.
func (plt *Platform) Device() *gldevice.Device {
	return plt.device
}

// Service SDL events. Returns false if the window has been closed.
func (plt *Platform) Service() bool {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		if !plt.handleEvent(ev) {
			return false
		}
	}
	return true
}

func (plt *Platform) handleEvent(ev sdl.Event) bool {
	switch ev := ev.(type) {
	case *sdl.QuitEvent:
		return false
	case *sdl.WindowEvent:
		if ev.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			w, h := plt.drawableSize()
			plt.ctx.Resize(int(w), int(h))
			logger.Logf(logger.Allow, "sdl", "resized to %dx%d", w, h)
		}
	}
	return true
}

// Swap the window's buffers.
func (plt *Platform) Swap() {
	plt.window.GLSwap()
}

// LoseContext deletes the GL context and creates a new one, which invalidates
// every texture and frame buffer. Managed objects are then recreated with
// glcontext.Context.Restore().
func (plt *Platform) LoseContext() error {
	logger.Log(logger.Allow, "sdl", "losing GL context")

	sdl.GLDeleteContext(plt.glContext)
	plt.glContext = nil

	err := plt.createGLContext()
	if err != nil {
		return err
	}

	return plt.ctx.Restore()
}

// Destroy the window and quit SDL.
func (plt *Platform) Destroy() {
	if plt.glContext != nil {
		sdl.GLDeleteContext(plt.glContext)
		plt.glContext = nil
	}
	if plt.window != nil {
		if err := plt.window.Destroy(); err != nil {
			logger.Logf(logger.Allow, "sdl", "destroy: %v", err)
		}
		plt.window = nil
	}
	sdl.Quit()
}
