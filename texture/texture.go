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
// Package texture implements a two dimensional texture on a gpu.Device. The
// texture is registered with its glcontext.Context and is recreated, with the
// original pixel data, when the context is restored.
package texture

import (
	"github.com/jetsetilly/glfbo/curated"
	"github.com/jetsetilly/glfbo/glcontext"
	"github.com/jetsetilly/glfbo/gpu"
)

// Sentinal error patterns.
const (
	InvalidContext = "texture: valid GL context not specified"
	InvalidSize    = "texture: invalid size (%dx%d)"
	InvalidPixels  = "texture: pixel data is %d bytes, expected %d"
)

// Spec describes the texture to create.
type Spec struct {
	Width  int
	Height int
	Format gpu.Format
	Filter gpu.Filter
	Wrap   gpu.Wrap

	// initial RGBA pixel data. can be nil, in which case the texture is
	// cleared to zero. the slice is retained for use by Recreate()
	Pixels []uint8
}

// Texture is a texture resource on a gpu.Device.
type Texture struct {
	ctx  *glcontext.Context
	dev  gpu.Device
	spec Spec
	id   uint32
}

// New is the preferred method of initialisation for the Texture type. The
// texture is created on the device before the function returns.
func New(ctx *glcontext.Context, spec Spec) (*Texture, error) {
	if ctx == nil {
		return nil, curated.Errorf(InvalidContext)
	}

	if spec.Width < 1 || spec.Height < 1 {
		return nil, curated.Errorf(InvalidSize, spec.Width, spec.Height)
	}

	if spec.Pixels != nil && len(spec.Pixels) != spec.Width*spec.Height*4 {
		return nil, curated.Errorf(InvalidPixels, len(spec.Pixels), spec.Width*spec.Height*4)
	}

	tex := &Texture{
		ctx:  ctx,
		spec: spec,
	}

	ctx.AddManagedObject(tex)
	tex.Create()

	return tex, nil
}

// NewWhite creates a 1x1 opaque white texture.
func NewWhite(ctx *glcontext.Context) (*Texture, error) {
	return New(ctx, Spec{
		Width:  1,
		Height: 1,
		Format: gpu.RGBA,
		Filter: gpu.Nearest,
		Pixels: []uint8{255, 255, 255, 255},
	})
}

// Create the texture on the device. Any previous handle is abandoned, which is
// the correct thing to do after the context has been lost.
func (tex *Texture) Create() {
	tex.dev = tex.ctx.Device()
	tex.id = tex.dev.GenTexture()
	tex.Bind()
	tex.dev.TexParameters(gpu.Texture2D, tex.spec.Filter, tex.spec.Wrap)
	tex.dev.TexImage2D(gpu.Texture2D, tex.spec.Format, tex.spec.Width, tex.spec.Height, tex.spec.Pixels)
}

// Recreate implements the glcontext.Recreatable interface.
func (tex *Texture) Recreate() error {
	tex.Create()
	return nil
}

// Destroy the texture. The texture should not be used after this call.
// Destroying more than once is safe.
func (tex *Texture) Destroy() {
	if tex.id != 0 && tex.dev != nil {
		tex.dev.DeleteTexture(tex.id)
	}
	if tex.ctx != nil {
		tex.ctx.RemoveManagedObject(tex)
	}
	tex.id = 0
	tex.dev = nil
	tex.ctx = nil
}

// Bind the texture to the Texture2D target.
func (tex *Texture) Bind() {
	tex.dev.BindTexture(gpu.Texture2D, tex.id)
}

// ID returns the device handle of the texture.
func (tex *Texture) ID() uint32 {
	if tex == nil {
		return 0
	}
	return tex.id
}

// Target returns the binding point of the texture.
func (tex *Texture) Target() gpu.Target {
	return gpu.Texture2D
}

// Width of the texture in pixels.
func (tex *Texture) Width() int {
	return tex.spec.Width
}

// Height of the texture in pixels.
func (tex *Texture) Height() int {
	return tex.spec.Height
}

// Format of the texture.
func (tex *Texture) Format() gpu.Format {
	return tex.spec.Format
}
