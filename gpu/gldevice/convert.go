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
package gldevice

import (
	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetsetilly/glfbo/gpu"
)

// GL ES and WebGL define a status for attachments of differing size. desktop
// GL has no name for it but some drivers return it anyway
const framebufferIncompleteDimensions = 0x8cd9

func status(s uint32) gpu.Status {
	switch s {
	case gl.FRAMEBUFFER_COMPLETE:
		return gpu.StatusComplete
	case gl.FRAMEBUFFER_UNSUPPORTED:
		return gpu.StatusUnsupported
	case framebufferIncompleteDimensions:
		return gpu.StatusIncompleteDimensions
	case gl.FRAMEBUFFER_INCOMPLETE_ATTACHMENT:
		return gpu.StatusIncompleteAttachment
	case gl.FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT:
		return gpu.StatusMissingAttachment
	}
	return gpu.Status(s)
}

func glTarget(target gpu.Target) uint32 {
	return gl.TEXTURE_2D
}

// internal format of texture storage. pixel data is always supplied as RGBA
func glFormat(format gpu.Format) int32 {
	if format == gpu.RGB {
		return gl.RGB8
	}
	return gl.RGBA8
}
