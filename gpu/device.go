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
package gpu

// Device is the native graphics device.
type Device interface {
	// MaxRenderbufferSize returns the largest width or height of a frame
	// buffer attachment supported by the device.
	MaxRenderbufferSize() int

	// GenFramebuffer creates a new frame buffer object and returns its
	// handle.
	GenFramebuffer() uint32

	// DeleteFramebuffer deletes the frame buffer object. If the frame buffer
	// is currently bound then the default frame buffer becomes bound.
	DeleteFramebuffer(id uint32)

	// BindFramebuffer makes the frame buffer the target for drawing and
	// reading. A handle of zero binds the default frame buffer.
	BindFramebuffer(id uint32)

	// FramebufferTexture2D attaches the texture to the colour attachment
	// zero of the currently bound frame buffer.
	FramebufferTexture2D(target Target, texture uint32)

	// CheckFramebufferStatus returns the completeness status of the
	// currently bound frame buffer.
	CheckFramebufferStatus() Status

	// Viewport sets the drawing area of the current target.
	Viewport(x, y, width, height int)

	// GenTexture creates a new texture object and returns its handle.
	GenTexture() uint32

	// DeleteTexture deletes the texture object.
	DeleteTexture(id uint32)

	// BindTexture makes the texture the current texture for target.
	BindTexture(target Target, id uint32)

	// TexImage2D allocates storage for the currently bound texture. Pixels
	// are RGBA with 8 bits per component and can be nil, in which case the
	// texture is cleared to zero.
	TexImage2D(target Target, format Format, width, height int, pixels []uint8)

	// TexParameters sets the filtering and wrapping of the currently bound
	// texture.
	TexParameters(target Target, filter Filter, wrap Wrap)

	// ClearColor sets the colour used by Clear(). Components are in the
	// range 0.0 to 1.0.
	ClearColor(r, g, b, a float32)

	// Clear the colour buffer of the current target.
	Clear()

	// ReadPixels reads RGBA pixels from the current target into the pixels
	// slice. Rows are in bottom-to-top order. The slice must be at least
	// width*height*4 in length.
	ReadPixels(x, y, width, height int, pixels []uint8)
}
