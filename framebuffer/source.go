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

import "github.com/jetsetilly/glfbo/gpu"

// ColorAttachment is the texture that receives the output of a FrameBuffer.
// The texture must have been created on the device before it is used. ID()
// must return zero for a texture that has not been created or has been
// destroyed, including a nil pointer stored in the interface.
//
// The texture.Texture type implements this interface.
type ColorAttachment interface {
	ID() uint32
	Target() gpu.Target
	Width() int
	Height() int
	Bind()
	Destroy()
}

// Source describes where the colour attachment of a new FrameBuffer comes
// from. It is implemented by FromSize and FromTexture.
type Source interface {
	source()
}

// FromSize creates a new texture for the FrameBuffer. Width and height values
// less than one are treated as one.
type FromSize struct {
	Width  int
	Height int
	Format gpu.Format
	Filter gpu.Filter
	Wrap   gpu.Wrap
}

func (FromSize) source() {}

// FromTexture uses an existing texture as the colour attachment. Ownership of
// the texture passes to the FrameBuffer.
type FromTexture struct {
	Texture ColorAttachment
}

func (FromTexture) source() {}
