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
package framebuffer_test

import (
	"math"
	"testing"

	"github.com/jetsetilly/glfbo/curated"
	"github.com/jetsetilly/glfbo/framebuffer"
	"github.com/jetsetilly/glfbo/glcontext"
	"github.com/jetsetilly/glfbo/gpu"
	"github.com/jetsetilly/glfbo/gpu/softgpu"
	"github.com/jetsetilly/glfbo/test"
	"github.com/jetsetilly/glfbo/texture"
)

const screenWidth = 64
const screenHeight = 48

func newContext(t *testing.T) (*glcontext.Context, *softgpu.Device) {
	t.Helper()
	dev := softgpu.NewDevice(screenWidth, screenHeight)
	ctx, err := glcontext.New(dev, screenWidth, screenHeight)
	test.DemandSuccess(t, err)
	return ctx, dev
}

func readPixel(dev gpu.Device) [4]uint8 {
	var p [4]uint8
	dev.ReadPixels(0, 0, 1, 1, p[:])
	return p
}

func TestWithTexture(t *testing.T) {
	ctx, dev := newContext(t)

	tex, err := texture.NewWhite(ctx)
	test.DemandSuccess(t, err)

	fb, err := framebuffer.New(ctx, framebuffer.FromTexture{Texture: tex})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fb.Width(), 1)
	test.ExpectEquality(t, fb.Height(), 1)

	fb.Begin()
	test.ExpectEquality(t, readPixel(dev), [4]uint8{255, 255, 255, 255})
	fb.End()
}

func TestWithoutTexture(t *testing.T) {
	ctx, dev := newContext(t)

	fb, err := framebuffer.New(ctx, framebuffer.FromSize{Width: 1, Height: 256})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fb.Width(), 1)
	test.ExpectEquality(t, fb.Height(), 256)

	_, err = framebuffer.New(ctx, framebuffer.FromSize{Width: math.MaxInt32, Height: math.MaxInt32})
	test.ExpectSuccess(t, curated.Is(err, framebuffer.AboveMaxSize))

	// render to texture
	fb.Begin()
	dev.ClearColor(1, 1, 0, 1)
	dev.Clear()
	test.ExpectEquality(t, readPixel(dev), [4]uint8{255, 255, 0, 255})
	fb.End()

	// the screen does not show the off-screen clear
	test.ExpectEquality(t, readPixel(dev), [4]uint8{0, 0, 0, 0})
}

func TestScreenContentsIgnored(t *testing.T) {
	ctx, dev := newContext(t)

	dev.ClearColor(0, 0, 1, 1)
	dev.Clear()

	fb, err := framebuffer.New(ctx, framebuffer.FromSize{Width: 8, Height: 8})
	test.DemandSuccess(t, err)

	fb.Begin()
	dev.ClearColor(1, 0, 0, 1)
	dev.Clear()
	test.ExpectEquality(t, readPixel(dev), [4]uint8{255, 0, 0, 255})
	fb.End()

	test.ExpectEquality(t, readPixel(dev), [4]uint8{0, 0, 255, 255})
}

func TestMaxSize(t *testing.T) {
	ctx, dev := newContext(t)
	dev.SetMaxRenderbufferSize(128)

	sz, err := framebuffer.MaxSize(dev)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, sz, 128)

	_, err = framebuffer.MaxSize(nil)
	test.ExpectSuccess(t, curated.Is(err, framebuffer.NoDevice))

	// exactly the maximum is fine
	fb, err := framebuffer.New(ctx, framebuffer.FromSize{Width: 128, Height: 128})
	test.DemandSuccess(t, err)
	fb.Destroy()

	// either dimension above the maximum is an error
	_, err = framebuffer.New(ctx, framebuffer.FromSize{Width: 129, Height: 1})
	test.ExpectSuccess(t, curated.Is(err, framebuffer.AboveMaxSize))
	_, err = framebuffer.New(ctx, framebuffer.FromSize{Width: 1, Height: 129})
	test.ExpectSuccess(t, curated.Is(err, framebuffer.AboveMaxSize))
	test.ExpectEquality(t, err.Error(), "framebuffer: above available renderbuffer size (128)")

	// the limit applies to textures too
	tex, err := texture.New(ctx, texture.Spec{Width: 200, Height: 1})
	test.DemandSuccess(t, err)
	_, err = framebuffer.New(ctx, framebuffer.FromTexture{Texture: tex})
	test.ExpectSuccess(t, curated.Is(err, framebuffer.AboveMaxSize))

	// nothing has been allocated by the failed calls. the texture created for
	// the test is the only object left on the device
	test.ExpectEquality(t, dev.LiveFramebuffers(), 0)
	test.ExpectEquality(t, dev.LiveTextures(), 1)
	test.ExpectEquality(t, ctx.Managed(), 1)
}

func TestSizeFloor(t *testing.T) {
	ctx, _ := newContext(t)

	fb, err := framebuffer.New(ctx, framebuffer.FromSize{Width: 0, Height: -10})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fb.Width(), 1)
	test.ExpectEquality(t, fb.Height(), 1)
}

func TestInvalidArguments(t *testing.T) {
	ctx, dev := newContext(t)

	_, err := framebuffer.New(nil, framebuffer.FromSize{Width: 1, Height: 1})
	test.ExpectSuccess(t, curated.Is(err, framebuffer.InvalidContext))

	_, err = framebuffer.New(ctx, nil)
	test.ExpectSuccess(t, curated.Is(err, framebuffer.InvalidSize))

	_, err = framebuffer.New(ctx, framebuffer.FromTexture{})
	test.ExpectSuccess(t, curated.Is(err, framebuffer.InvalidSize))

	// nil pointer stored in the interface
	var nilTexture *texture.Texture
	_, err = framebuffer.New(ctx, framebuffer.FromTexture{Texture: nilTexture})
	test.ExpectSuccess(t, curated.Is(err, framebuffer.InvalidTexture))

	// destroyed texture
	tex, err := texture.NewWhite(ctx)
	test.DemandSuccess(t, err)
	tex.Destroy()
	_, err = framebuffer.New(ctx, framebuffer.FromTexture{Texture: tex})
	test.ExpectSuccess(t, curated.Is(err, framebuffer.InvalidTexture))

	test.ExpectEquality(t, dev.LiveTextures(), 0)
	test.ExpectEquality(t, ctx.Managed(), 0)
}

func TestTextureOverridesSize(t *testing.T) {
	ctx, _ := newContext(t)

	tex, err := texture.New(ctx, texture.Spec{Width: 3, Height: 5})
	test.DemandSuccess(t, err)

	fb, err := framebuffer.New(ctx, framebuffer.FromTexture{Texture: tex})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fb.Width(), 3)
	test.ExpectEquality(t, fb.Height(), 5)
	test.ExpectEquality(t, fb.Texture(), framebuffer.ColorAttachment(tex))
}

func TestBeginEnd(t *testing.T) {
	ctx, dev := newContext(t)

	fb, err := framebuffer.New(ctx, framebuffer.FromSize{Width: 10, Height: 20})
	test.DemandSuccess(t, err)

	// creation leaves the default frame buffer bound
	test.ExpectEquality(t, dev.BoundFramebuffer(), uint32(0))

	fb.Begin()
	test.ExpectEquality(t, dev.BoundFramebuffer(), fb.ID())
	_, _, w, h := dev.CurrentViewport()
	test.ExpectEquality(t, w, 10)
	test.ExpectEquality(t, h, 20)

	fb.End()
	test.ExpectEquality(t, dev.BoundFramebuffer(), uint32(0))
	_, _, w, h = dev.CurrentViewport()
	test.ExpectEquality(t, w, screenWidth)
	test.ExpectEquality(t, h, screenHeight)

	// end uses the current size of the context
	ctx.Resize(100, 50)
	fb.Begin()
	fb.End()
	_, _, w, h = dev.CurrentViewport()
	test.ExpectEquality(t, w, 100)
	test.ExpectEquality(t, h, 50)
}

func TestDestroy(t *testing.T) {
	ctx, dev := newContext(t)

	tex, err := texture.NewWhite(ctx)
	test.DemandSuccess(t, err)

	fb, err := framebuffer.New(ctx, framebuffer.FromTexture{Texture: tex})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, dev.LiveFramebuffers(), 1)
	test.ExpectEquality(t, ctx.Managed(), 2)

	// the adopted texture is destroyed along with the frame buffer
	fb.Destroy()
	test.ExpectEquality(t, fb.ID(), uint32(0))
	test.ExpectEquality(t, fb.Texture(), nil)
	test.ExpectEquality(t, tex.ID(), uint32(0))
	test.ExpectEquality(t, dev.LiveFramebuffers(), 0)
	test.ExpectEquality(t, dev.LiveTextures(), 0)
	test.ExpectEquality(t, ctx.Managed(), 0)

	// destroying twice is safe
	fb.Destroy()
}

func TestIncomplete(t *testing.T) {
	statuses := []struct {
		status  gpu.Status
		pattern string
	}{
		{gpu.StatusUnsupported, framebuffer.Unsupported},
		{gpu.StatusIncompleteDimensions, framebuffer.IncompleteDimensions},
		{gpu.StatusIncompleteAttachment, framebuffer.IncompleteAttachment},
		{gpu.StatusMissingAttachment, framebuffer.MissingAttachment},
		{gpu.Status(0x8cdb), framebuffer.NotComplete},

		// the zero status is a failed check and not a complete frame buffer
		{gpu.Status(0), framebuffer.NotComplete},
	}

	for _, s := range statuses {
		ctx, dev := newContext(t)
		dev.ForceStatus(s.status)

		fb, err := framebuffer.New(ctx, framebuffer.FromSize{Width: 4, Height: 4})
		test.ExpectEquality(t, fb, nil, s.status)
		test.ExpectSuccess(t, curated.Is(err, s.pattern), s.status)
		test.ExpectSuccess(t, framebuffer.IsIncomplete(err), s.status)

		// all resources have been released
		test.ExpectEquality(t, dev.LiveFramebuffers(), 0, s.status)
		test.ExpectEquality(t, dev.LiveTextures(), 0, s.status)
		test.ExpectEquality(t, ctx.Managed(), 0, s.status)
		test.ExpectEquality(t, dev.BoundFramebuffer(), uint32(0), s.status)
	}

	test.ExpectFailure(t, framebuffer.IsIncomplete(curated.Errorf(framebuffer.AboveMaxSize, 10)))
}

func TestIncompleteMessage(t *testing.T) {
	ctx, dev := newContext(t)
	dev.ForceStatus(gpu.StatusMissingAttachment)

	_, err := framebuffer.New(ctx, framebuffer.FromSize{Width: 4, Height: 4})
	test.ExpectEquality(t, err.Error(), "framebuffer: not complete: missing attachment")
}

func TestRestore(t *testing.T) {
	ctx, dev := newContext(t)

	fb, err := framebuffer.New(ctx, framebuffer.FromSize{Width: 2, Height: 2})
	test.DemandSuccess(t, err)
	id := fb.ID()

	dev.Lose()
	test.ExpectSuccess(t, ctx.Restore())
	test.ExpectInequality(t, fb.ID(), id)
	test.ExpectEquality(t, dev.LiveFramebuffers(), 1)
	test.ExpectEquality(t, dev.LiveTextures(), 1)

	fb.Begin()
	dev.ClearColor(0, 1, 0, 1)
	dev.Clear()
	test.ExpectEquality(t, readPixel(dev), [4]uint8{0, 255, 0, 255})
	fb.End()
}

func TestRestoreFailure(t *testing.T) {
	ctx, dev := newContext(t)

	fb, err := framebuffer.New(ctx, framebuffer.FromSize{Width: 2, Height: 2})
	test.DemandSuccess(t, err)

	dev.Lose()
	dev.ForceStatus(gpu.StatusUnsupported)

	err = ctx.Restore()
	test.ExpectSuccess(t, curated.Has(err, framebuffer.Unsupported))

	// the frame buffer destroyed itself
	test.ExpectEquality(t, fb.ID(), uint32(0))
	test.ExpectEquality(t, dev.LiveFramebuffers(), 0)
	test.ExpectEquality(t, dev.LiveTextures(), 0)
	test.ExpectEquality(t, ctx.Managed(), 0)
}
