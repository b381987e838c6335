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
	"github.com/jetsetilly/glfbo/gpu"
)

// Sentinal error patterns. Test for these with curated.Is().
const (
	InvalidContext = "framebuffer: valid GL context not specified"
	InvalidSize    = "framebuffer: must specify width and height"
	AboveMaxSize   = "framebuffer: above available renderbuffer size (%d)"
	NoDevice       = "framebuffer: no device specified to MaxSize"
	InvalidTexture = "framebuffer: texture has not been created"

	// completeness errors. the frame buffer has been destroyed by the time
	// these are returned
	Unsupported          = "framebuffer: not complete: unsupported"
	IncompleteDimensions = "framebuffer: not complete: incomplete dimensions"
	IncompleteAttachment = "framebuffer: not complete: incomplete attachment"
	MissingAttachment    = "framebuffer: not complete: missing attachment"
	NotComplete          = "framebuffer: not complete (%v)"
)

func incompleteError(status gpu.Status) error {
	switch status {
	case gpu.StatusUnsupported:
		return curated.Errorf(Unsupported)
	case gpu.StatusIncompleteDimensions:
		return curated.Errorf(IncompleteDimensions)
	case gpu.StatusIncompleteAttachment:
		return curated.Errorf(IncompleteAttachment)
	case gpu.StatusMissingAttachment:
		return curated.Errorf(MissingAttachment)
	}
	return curated.Errorf(NotComplete, status)
}

// IsIncomplete returns true if the error is any of the completeness errors.
func IsIncomplete(err error) bool {
	return curated.Is(err, Unsupported) ||
		curated.Is(err, IncompleteDimensions) ||
		curated.Is(err, IncompleteAttachment) ||
		curated.Is(err, MissingAttachment) ||
		curated.Is(err, NotComplete)
}
