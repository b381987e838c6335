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
package framebuffer

import (
	"github.com/jetsetilly/glfbo/curated"
	"github.com/jetsetilly/glfbo/glcontext"
	"github.com/jetsetilly/glfbo/gpu"
	"github.com/jetsetilly/glfbo/texture"
)

// FrameBuffer is an off-screen render target.
type FrameBuffer struct {
	ctx     *glcontext.Context
	dev     gpu.Device
	texture ColorAttachment
	id      uint32
}

// MaxSize returns the largest width or height supported by the device.
func MaxSize(dev gpu.Device) (int, error) {
	if dev == nil {
		return 0, curated.Errorf(NoDevice)
	}
	return dev.MaxRenderbufferSize(), nil
}

// New is the preferred method of initialisation for the FrameBuffer type. An
// error is returned if the size of the frame buffer is above the limit of the
// device, in which case nothing has been allocated on the device.
func New(ctx *glcontext.Context, src Source) (*FrameBuffer, error) {
	if ctx == nil {
		return nil, curated.Errorf(InvalidContext)
	}

	var width, height int

	switch s := src.(type) {
	case FromSize:
		width = max(1, s.Width)
		height = max(1, s.Height)
	case FromTexture:
		if s.Texture == nil {
			return nil, curated.Errorf(InvalidSize)
		}
		if s.Texture.ID() == 0 {
			return nil, curated.Errorf(InvalidTexture)
		}
		width = s.Texture.Width()
		height = s.Texture.Height()
	default:
		return nil, curated.Errorf(InvalidSize)
	}

	maxSize, err := MaxSize(ctx.Device())
	if err != nil {
		return nil, err
	}
	if width > maxSize || height > maxSize {
		return nil, curated.Errorf(AboveMaxSize, maxSize)
	}

	fb := &FrameBuffer{
		ctx: ctx,
	}

	switch s := src.(type) {
	case FromSize:
		tex, err := texture.New(ctx, texture.Spec{
			Width:  width,
			Height: height,
			Format: s.Format,
			Filter: s.Filter,
			Wrap:   s.Wrap,
		})
		if err != nil {
			return nil, err
		}
		fb.texture = tex
	case FromTexture:
		fb.texture = s.Texture
	}

	ctx.AddManagedObject(fb)

	err = fb.Create()
	if err != nil {
		return nil, err
	}

	return fb, nil
}

// Create the frame buffer on the device and attach the texture. Called by New()
// and by Recreate(). There is no need to call it directly.
//
// If the frame buffer is not complete then the FrameBuffer is destroyed and a
// completeness error is returned.
func (fb *FrameBuffer) Create() error {
	fb.dev = fb.ctx.Device()

	fb.texture.Bind()

	fb.id = fb.dev.GenFramebuffer()
	fb.dev.BindFramebuffer(fb.id)
	fb.dev.FramebufferTexture2D(fb.texture.Target(), fb.texture.ID())

	status := fb.dev.CheckFramebufferStatus()
	if status != gpu.StatusComplete {
		fb.Destroy()
		return incompleteError(status)
	}

	fb.dev.BindFramebuffer(0)

	return nil
}

// Recreate implements the glcontext.Recreatable interface.
func (fb *FrameBuffer) Recreate() error {
	return fb.Create()
}

// Destroy the frame buffer and the texture. The FrameBuffer should not be used
// after this call. Destroying more than once is safe.
func (fb *FrameBuffer) Destroy() {
	if fb.texture != nil {
		fb.texture.Destroy()
	}
	if fb.id != 0 && fb.dev != nil {
		fb.dev.DeleteFramebuffer(fb.id)
	}
	if fb.ctx != nil {
		fb.ctx.RemoveManagedObject(fb)
	}

	fb.id = 0
	fb.dev = nil
	fb.texture = nil
	fb.ctx = nil
}

// Begin redirects rendering to the frame buffer and sets the viewport to the
// size of the texture.
func (fb *FrameBuffer) Begin() {
	fb.dev.Viewport(0, 0, fb.texture.Width(), fb.texture.Height())
	fb.dev.BindFramebuffer(fb.id)
}

// End restores rendering to the screen and sets the viewport to the size of
// the context.
func (fb *FrameBuffer) End() {
	fb.dev.Viewport(0, 0, fb.ctx.Width(), fb.ctx.Height())
	fb.dev.BindFramebuffer(0)
}

// Width of the frame buffer. Always the same as the width of the texture.
func (fb *FrameBuffer) Width() int {
	return fb.texture.Width()
}

// Height of the frame buffer. Always the same as the height of the texture.
func (fb *FrameBuffer) Height() int {
	return fb.texture.Height()
}

// Texture returns the colour attachment. The texture is still owned by the
// FrameBuffer.
func (fb *FrameBuffer) Texture() ColorAttachment {
	return fb.texture
}

// ID returns the device handle of the frame buffer.
func (fb *FrameBuffer) ID() uint32 {
	return fb.id
}
