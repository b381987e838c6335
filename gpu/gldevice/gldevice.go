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
// Package gldevice implements the gpu.Device interface using OpenGL 3.2 core.
//
// A GL context must be current on the calling goroutine before New() is
// called and for every subsequent call to the device.
package gldevice

import (
	"unsafe"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetsetilly/glfbo/gpu"
	"github.com/jetsetilly/glfbo/logger"
)

// Device implements the gpu.Device interface.
type Device struct {
	vendor   string
	renderer string
	driver   string
}

// New is the preferred method of initialisation for the Device type.
func New() (*Device, error) {
	err := gl.Init()
	if err != nil {
		return nil, err
	}

	dev := &Device{
		vendor:   gl.GoStr(gl.GetString(gl.VENDOR)),
		renderer: gl.GoStr(gl.GetString(gl.RENDERER)),
		driver:   gl.GoStr(gl.GetString(gl.VERSION)),
	}

	logger.Logf(logger.Allow, "gldevice", "vendor: %s", dev.vendor)
	logger.Logf(logger.Allow, "gldevice", "renderer: %s", dev.renderer)
	logger.Logf(logger.Allow, "gldevice", "driver: %s", dev.driver)

	return dev, nil
}

// Strings returns the vendor, renderer and driver strings as reported by the
// GL driver.
func (dev *Device) Strings() (vendor string, renderer string, driver string) {
	return dev.vendor, dev.renderer, dev.driver
}

// MaxRenderbufferSize implements the gpu.Device interface.
func (dev *Device) MaxRenderbufferSize() int {
	var v int32
	gl.GetIntegerv(gl.MAX_RENDERBUFFER_SIZE, &v)
	return int(v)
}

// GenFramebuffer implements the gpu.Device interface.
func (dev *Device) GenFramebuffer() uint32 {
	var id uint32
	gl.GenFramebuffers(1, &id)
	return id
}

// DeleteFramebuffer implements the gpu.Device interface.
func (dev *Device) DeleteFramebuffer(id uint32) {
	gl.DeleteFramebuffers(1, &id)
}

// BindFramebuffer implements the gpu.Device interface.
func (dev *Device) BindFramebuffer(id uint32) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, id)
}

// FramebufferTexture2D implements the gpu.Device interface.
func (dev *Device) FramebufferTexture2D(target gpu.Target, texture uint32) {
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, glTarget(target), texture, 0)
}

// CheckFramebufferStatus implements the gpu.Device interface.
func (dev *Device) CheckFramebufferStatus() gpu.Status {
	return status(gl.CheckFramebufferStatus(gl.FRAMEBUFFER))
}

// Viewport implements the gpu.Device interface.
func (dev *Device) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

// GenTexture implements the gpu.Device interface.
func (dev *Device) GenTexture() uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	return id
}

// DeleteTexture implements the gpu.Device interface.
func (dev *Device) DeleteTexture(id uint32) {
	gl.DeleteTextures(1, &id)
}

// BindTexture implements the gpu.Device interface.
func (dev *Device) BindTexture(target gpu.Target, id uint32) {
	gl.BindTexture(glTarget(target), id)
}

// TexImage2D implements the gpu.Device interface.
func (dev *Device) TexImage2D(target gpu.Target, format gpu.Format, width, height int, pixels []uint8) {
	// gl.Ptr() panics on an empty slice
	var ptr unsafe.Pointer
	if len(pixels) > 0 {
		ptr = gl.Ptr(pixels)
	}

	gl.TexImage2D(glTarget(target), 0,
		glFormat(format), int32(width), int32(height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE,
		ptr)
}

// TexParameters implements the gpu.Device interface.
func (dev *Device) TexParameters(target gpu.Target, filter gpu.Filter, wrap gpu.Wrap) {
	t := glTarget(target)

	f := int32(gl.LINEAR)
	if filter == gpu.Nearest {
		f = gl.NEAREST
	}
	gl.TexParameteri(t, gl.TEXTURE_MAG_FILTER, f)
	gl.TexParameteri(t, gl.TEXTURE_MIN_FILTER, f)

	w := int32(gl.CLAMP_TO_EDGE)
	if wrap == gpu.Repeat {
		w = gl.REPEAT
	}
	gl.TexParameteri(t, gl.TEXTURE_WRAP_S, w)
	gl.TexParameteri(t, gl.TEXTURE_WRAP_T, w)
}

// ClearColor implements the gpu.Device interface.
func (dev *Device) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

// Clear implements the gpu.Device interface.
func (dev *Device) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// ReadPixels implements the gpu.Device interface.
func (dev *Device) ReadPixels(x, y, width, height int, pixels []uint8) {
	if len(pixels) < width*height*4 || len(pixels) == 0 {
		return
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(int32(x), int32(y), int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
}
