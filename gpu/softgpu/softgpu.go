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
// Package softgpu is a software implementation of the gpu.Device interface.
// It keeps textures and frame buffers in memory and implements enough of the
// behaviour of a GL device for frame buffers to be created, cleared and read
// back. Nothing is ever drawn except by Clear().
//
// Pixel storage is always RGBA with rows in bottom-to-top order, the same as
// GL. Textures with the RGB format read back with an alpha of 255.
//
// The Lose() function simulates a lost context. All existing handles become
// invalid, exactly as they would on a real device, and objects must be
// recreated.
package softgpu

import (
	"math"

	"github.com/jetsetilly/glfbo/gpu"
)

// DefaultMaxRenderbufferSize is the value returned by MaxRenderbufferSize()
// unless it is changed with SetMaxRenderbufferSize().
const DefaultMaxRenderbufferSize = 8192

type texture struct {
	format gpu.Format
	width  int
	height int
	pixels []uint8
	filter gpu.Filter
	wrap   gpu.Wrap
}

type framebuffer struct {
	attachment uint32
}

type viewport struct {
	x, y, width, height int
}

// Device implements the gpu.Device interface.
type Device struct {
	maxSize int

	textures     map[uint32]*texture
	framebuffers map[uint32]*framebuffer

	// handles are never reused, even after Lose()
	nextHandle uint32

	// the default frame buffer
	screen texture

	boundFramebuffer uint32
	boundTexture     uint32
	viewport         viewport
	clear            [4]float32

	// status returned by CheckFramebufferStatus() instead of the real
	// status. nil means the real status is returned
	forcedStatus *gpu.Status
}

// NewDevice is the preferred method of initialisation for the Device type.
// The width and height are the dimensions of the default frame buffer. Values
// less than one are treated as one.
func NewDevice(width, height int) *Device {
	width = max(1, width)
	height = max(1, height)

	dev := &Device{
		maxSize: DefaultMaxRenderbufferSize,
	}
	dev.Lose()

	dev.screen = texture{
		format: gpu.RGBA,
		width:  width,
		height: height,
		pixels: make([]uint8, width*height*4),
	}
	dev.viewport = viewport{width: width, height: height}

	return dev
}

// SetMaxRenderbufferSize changes the value returned by MaxRenderbufferSize().
func (dev *Device) SetMaxRenderbufferSize(size int) {
	dev.maxSize = size
}

// ForceStatus causes CheckFramebufferStatus() to return the specified status
// for non-default frame buffers. Use gpu.StatusComplete to restore normal
// behaviour.
func (dev *Device) ForceStatus(status gpu.Status) {
	if status == gpu.StatusComplete {
		dev.forcedStatus = nil
		return
	}
	dev.forcedStatus = &status
}

// Lose simulates the loss of the device context. All textures and frame
// buffers are forgotten and the default frame buffer is bound.
func (dev *Device) Lose() {
	dev.textures = make(map[uint32]*texture)
	dev.framebuffers = make(map[uint32]*framebuffer)
	dev.boundFramebuffer = 0
	dev.boundTexture = 0
}

// LiveFramebuffers returns the number of frame buffers that have not been
// deleted.
func (dev *Device) LiveFramebuffers() int {
	return len(dev.framebuffers)
}

// LiveTextures returns the number of textures that have not been deleted.
func (dev *Device) LiveTextures() int {
	return len(dev.textures)
}

// BoundFramebuffer returns the handle of the currently bound frame buffer.
func (dev *Device) BoundFramebuffer() uint32 {
	return dev.boundFramebuffer
}

// CurrentViewport returns the most recent values given to Viewport().
func (dev *Device) CurrentViewport() (x, y, width, height int) {
	return dev.viewport.x, dev.viewport.y, dev.viewport.width, dev.viewport.height
}

// TextureParameters returns the filter and wrap values of the texture. The ok
// value is false if the texture does not exist.
func (dev *Device) TextureParameters(id uint32) (filter gpu.Filter, wrap gpu.Wrap, ok bool) {
	tex, ok := dev.textures[id]
	if !ok {
		return gpu.Linear, gpu.ClampToEdge, false
	}
	return tex.filter, tex.wrap, true
}

// MaxRenderbufferSize implements the gpu.Device interface.
func (dev *Device) MaxRenderbufferSize() int {
	return dev.maxSize
}

func (dev *Device) handle() uint32 {
	dev.nextHandle++
	return dev.nextHandle
}

// GenFramebuffer implements the gpu.Device interface.
func (dev *Device) GenFramebuffer() uint32 {
	id := dev.handle()
	dev.framebuffers[id] = &framebuffer{}
	return id
}

// DeleteFramebuffer implements the gpu.Device interface.
func (dev *Device) DeleteFramebuffer(id uint32) {
	if id == 0 {
		return
	}
	delete(dev.framebuffers, id)
	if dev.boundFramebuffer == id {
		dev.boundFramebuffer = 0
	}
}

// BindFramebuffer implements the gpu.Device interface. Binding a handle that
// does not exist is ignored.
func (dev *Device) BindFramebuffer(id uint32) {
	if id != 0 {
		if _, ok := dev.framebuffers[id]; !ok {
			return
		}
	}
	dev.boundFramebuffer = id
}

// FramebufferTexture2D implements the gpu.Device interface.
func (dev *Device) FramebufferTexture2D(_ gpu.Target, texture uint32) {
	if fb, ok := dev.framebuffers[dev.boundFramebuffer]; ok {
		fb.attachment = texture
	}
}

// CheckFramebufferStatus implements the gpu.Device interface.
func (dev *Device) CheckFramebufferStatus() gpu.Status {
	if dev.boundFramebuffer == 0 {
		return gpu.StatusComplete
	}

	if dev.forcedStatus != nil {
		return *dev.forcedStatus
	}

	fb := dev.framebuffers[dev.boundFramebuffer]
	if fb.attachment == 0 {
		return gpu.StatusMissingAttachment
	}

	tex, ok := dev.textures[fb.attachment]
	if !ok || tex.width == 0 || tex.height == 0 {
		return gpu.StatusIncompleteAttachment
	}

	return gpu.StatusComplete
}

// Viewport implements the gpu.Device interface.
func (dev *Device) Viewport(x, y, width, height int) {
	dev.viewport = viewport{x: x, y: y, width: width, height: height}
}

// GenTexture implements the gpu.Device interface.
func (dev *Device) GenTexture() uint32 {
	id := dev.handle()
	dev.textures[id] = &texture{}
	return id
}

// DeleteTexture implements the gpu.Device interface.
func (dev *Device) DeleteTexture(id uint32) {
	if id == 0 {
		return
	}
	delete(dev.textures, id)
	if dev.boundTexture == id {
		dev.boundTexture = 0
	}
}

// BindTexture implements the gpu.Device interface.
func (dev *Device) BindTexture(_ gpu.Target, id uint32) {
	dev.boundTexture = id
}

// TexImage2D implements the gpu.Device interface.
func (dev *Device) TexImage2D(_ gpu.Target, format gpu.Format, width, height int, pixels []uint8) {
	tex, ok := dev.textures[dev.boundTexture]
	if !ok {
		return
	}

	tex.format = format
	tex.width = width
	tex.height = height
	tex.pixels = make([]uint8, width*height*4)
	copy(tex.pixels, pixels)

	if format == gpu.RGB {
		for i := 3; i < len(tex.pixels); i += 4 {
			tex.pixels[i] = 255
		}
	}
}

// TexParameters implements the gpu.Device interface.
func (dev *Device) TexParameters(_ gpu.Target, filter gpu.Filter, wrap gpu.Wrap) {
	if tex, ok := dev.textures[dev.boundTexture]; ok {
		tex.filter = filter
		tex.wrap = wrap
	}
}

// ClearColor implements the gpu.Device interface.
func (dev *Device) ClearColor(r, g, b, a float32) {
	dev.clear = [4]float32{r, g, b, a}
}

// current returns the pixel storage of the bound frame buffer. returns nil if
// the frame buffer has no valid attachment
func (dev *Device) current() *texture {
	if dev.boundFramebuffer == 0 {
		return &dev.screen
	}
	fb, ok := dev.framebuffers[dev.boundFramebuffer]
	if !ok {
		return nil
	}
	tex, ok := dev.textures[fb.attachment]
	if !ok {
		return nil
	}
	return tex
}

func component(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(float64(v) * 255))
}

// Clear implements the gpu.Device interface.
func (dev *Device) Clear() {
	tex := dev.current()
	if tex == nil {
		return
	}

	c := [4]uint8{
		component(dev.clear[0]),
		component(dev.clear[1]),
		component(dev.clear[2]),
		component(dev.clear[3]),
	}
	if tex.format == gpu.RGB {
		c[3] = 255
	}

	for i := 0; i < len(tex.pixels); i += 4 {
		copy(tex.pixels[i:i+4], c[:])
	}
}

// ReadPixels implements the gpu.Device interface. Pixels outside of the
// current target are left unchanged.
func (dev *Device) ReadPixels(x, y, width, height int, pixels []uint8) {
	tex := dev.current()
	if tex == nil {
		return
	}

	for row := 0; row < height; row++ {
		sy := y + row
		if sy < 0 || sy >= tex.height {
			continue
		}
		for col := 0; col < width; col++ {
			sx := x + col
			if sx < 0 || sx >= tex.width {
				continue
			}
			src := (sy*tex.width + sx) * 4
			dst := (row*width + col) * 4
			copy(pixels[dst:dst+4], tex.pixels[src:src+4])
		}
	}
}
