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
// Package framebuffer provides a convenient way of working with frame buffer
// objects. A FrameBuffer redirects rendering into a texture, the colour
// attachment, rather than to the screen.
//
// A FrameBuffer is created from either a size or an existing texture:
//
//	fb, err := framebuffer.New(ctx, framebuffer.FromSize{Width: 256, Height: 256})
//
//	fb, err := framebuffer.New(ctx, framebuffer.FromTexture{Texture: tex})
//
// In the second case ownership of the texture passes to the FrameBuffer. The
// texture will be destroyed when the FrameBuffer is destroyed and the caller
// must not destroy it.
//
// Rendering is redirected between calls to Begin() and End():
//
//	fb.Begin()
//	// draw calls
//	fb.End()
//
// Begin() sets the viewport to the size of the texture and End() sets it back
// to the size of the context. Every call to Begin() must be paired with a call
// to End().
//
// The size of a FrameBuffer is limited by the device. New() returns an error
// rather than creating a frame buffer that is too large. The MaxSize()
// function can be used to check the limit beforehand.
//
// A FrameBuffer registers itself with the context and is recreated by
// glcontext.Context.Restore() after the device context has been lost. The
// texture is registered separately and must be restored first, which is the
// case because the texture is always registered before the frame buffer.
//
// Using a FrameBuffer after Destroy() has been called has undefined results.
package framebuffer
