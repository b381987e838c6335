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
package texture_test

import (
	"testing"

	"github.com/jetsetilly/glfbo/curated"
	"github.com/jetsetilly/glfbo/glcontext"
	"github.com/jetsetilly/glfbo/gpu"
	"github.com/jetsetilly/glfbo/gpu/softgpu"
	"github.com/jetsetilly/glfbo/test"
	"github.com/jetsetilly/glfbo/texture"
)

func newContext(t *testing.T) (*glcontext.Context, *softgpu.Device) {
	t.Helper()
	dev := softgpu.NewDevice(16, 16)
	ctx, err := glcontext.New(dev, 16, 16)
	test.DemandSuccess(t, err)
	return ctx, dev
}

func TestNew(t *testing.T) {
	ctx, dev := newContext(t)

	tex, err := texture.New(ctx, texture.Spec{Width: 4, Height: 8, Filter: gpu.Nearest, Wrap: gpu.Repeat})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tex.Width(), 4)
	test.ExpectEquality(t, tex.Height(), 8)
	test.ExpectEquality(t, tex.Target(), gpu.Texture2D)
	test.ExpectEquality(t, tex.Format(), gpu.RGBA)
	test.ExpectInequality(t, tex.ID(), uint32(0))
	test.ExpectEquality(t, dev.LiveTextures(), 1)
	test.ExpectEquality(t, ctx.Managed(), 1)

	filter, wrap, ok := dev.TextureParameters(tex.ID())
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, filter, gpu.Nearest)
	test.ExpectEquality(t, wrap, gpu.Repeat)

	tex.Destroy()
	test.ExpectEquality(t, tex.ID(), uint32(0))
	test.ExpectEquality(t, dev.LiveTextures(), 0)
	test.ExpectEquality(t, ctx.Managed(), 0)

	// destroying twice is safe
	tex.Destroy()
}

func TestInvalid(t *testing.T) {
	ctx, dev := newContext(t)

	_, err := texture.New(nil, texture.Spec{Width: 1, Height: 1})
	test.ExpectSuccess(t, curated.Is(err, texture.InvalidContext))

	_, err = texture.New(ctx, texture.Spec{Width: 0, Height: 1})
	test.ExpectSuccess(t, curated.Is(err, texture.InvalidSize))

	_, err = texture.New(ctx, texture.Spec{Width: 2, Height: 2, Pixels: []uint8{1, 2, 3}})
	test.ExpectSuccess(t, curated.Is(err, texture.InvalidPixels))

	// nothing was allocated or registered
	test.ExpectEquality(t, dev.LiveTextures(), 0)
	test.ExpectEquality(t, ctx.Managed(), 0)
}

func TestRestore(t *testing.T) {
	ctx, dev := newContext(t)

	tex, err := texture.NewWhite(ctx)
	test.DemandSuccess(t, err)
	id := tex.ID()

	dev.Lose()
	test.ExpectEquality(t, dev.LiveTextures(), 0)

	test.ExpectSuccess(t, ctx.Restore())
	test.ExpectEquality(t, dev.LiveTextures(), 1)
	test.ExpectInequality(t, tex.ID(), id)
	test.ExpectEquality(t, tex.Width(), 1)
	test.ExpectEquality(t, tex.Height(), 1)
}
