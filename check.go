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
package main

import (
	"fmt"
	"image/color"
	"io"

	"github.com/jetsetilly/glfbo/curated"
	"github.com/jetsetilly/glfbo/framebuffer"
	"github.com/jetsetilly/glfbo/glcontext"
	"github.com/jetsetilly/glfbo/snapshot"
	"github.com/jetsetilly/glfbo/texture"
)

// sentinal error patterns for the CHECK mode.
const (
	checkFailed  = "check: %s: %v"
	checkSummary = "check: %d of %d checks failed"
)

type check struct {
	name string
	run  func(ctx *glcontext.Context, lose func() error) error
}

var checks = []check{
	{name: "adopt white texture", run: checkWhiteTexture},
	{name: "renderbuffer capacity", run: checkCapacity},
	{name: "clear colour", run: checkClearColour},
	{name: "restore after context loss", run: checkRestore},
}

// runChecks runs every check in order, printing the outcome of each to the
// output. The lose function should cause the loss of the GL context and then
// call Restore() on the context.
func runChecks(output io.Writer, ctx *glcontext.Context, lose func() error) error {
	var failed int
	for _, c := range checks {
		err := c.run(ctx, lose)
		if err != nil {
			failed++
			fmt.Fprintf(output, "FAIL %s\n", curated.Errorf(checkFailed, c.name, err))
		} else {
			fmt.Fprintf(output, "ok   %s\n", c.name)
		}
	}

	if failed > 0 {
		return curated.Errorf(checkSummary, failed, len(checks))
	}
	return nil
}

// pixelAt reads the pixel at the origin of the frame buffer.
func pixelAt(fb *framebuffer.FrameBuffer, ctx *glcontext.Context) color.RGBA {
	fb.Begin()
	defer fb.End()
	return snapshot.Read(ctx.Device(), 1, 1).RGBAAt(0, 0)
}

func expectSize(fb *framebuffer.FrameBuffer, width int, height int) error {
	if fb.Width() != width || fb.Height() != height {
		return fmt.Errorf("size is %dx%d not %dx%d", fb.Width(), fb.Height(), width, height)
	}
	return nil
}

func expectPixel(got color.RGBA, expected color.RGBA) error {
	if got != expected {
		return fmt.Errorf("pixel is %v not %v", got, expected)
	}
	return nil
}

func checkWhiteTexture(ctx *glcontext.Context, _ func() error) error {
	tex, err := texture.NewWhite(ctx)
	if err != nil {
		return err
	}

	fb, err := framebuffer.New(ctx, framebuffer.FromTexture{Texture: tex})
	if err != nil {
		tex.Destroy()
		return err
	}
	defer fb.Destroy()

	err = expectSize(fb, 1, 1)
	if err != nil {
		return err
	}

	return expectPixel(pixelAt(fb, ctx), color.RGBA{R: 255, G: 255, B: 255, A: 255})
}

func checkCapacity(ctx *glcontext.Context, _ func() error) error {
	fb, err := framebuffer.New(ctx, framebuffer.FromSize{Width: 1, Height: 256})
	if err != nil {
		return err
	}
	fb.Destroy()

	maxSize, err := framebuffer.MaxSize(ctx.Device())
	if err != nil {
		return err
	}

	huge := maxSize * 16
	fb, err = framebuffer.New(ctx, framebuffer.FromSize{Width: huge, Height: huge})
	if err == nil {
		fb.Destroy()
		return fmt.Errorf("%dx%d frame buffer was created", huge, huge)
	}
	if !curated.Is(err, framebuffer.AboveMaxSize) {
		return err
	}

	return nil
}

func checkClearColour(ctx *glcontext.Context, _ func() error) error {
	fb, err := framebuffer.New(ctx, framebuffer.FromSize{Width: 1, Height: 256})
	if err != nil {
		return err
	}
	defer fb.Destroy()

	dev := ctx.Device()

	fb.Begin()
	dev.ClearColor(1, 1, 0, 1)
	dev.Clear()
	got := snapshot.Read(dev, 1, 1).RGBAAt(0, 0)
	fb.End()

	return expectPixel(got, color.RGBA{R: 255, G: 255, B: 0, A: 255})
}

func checkRestore(ctx *glcontext.Context, lose func() error) error {
	if lose == nil {
		return fmt.Errorf("context loss not available")
	}

	fb, err := framebuffer.New(ctx, framebuffer.FromSize{Width: 4, Height: 4})
	if err != nil {
		return err
	}
	defer fb.Destroy()

	err = lose()
	if err != nil {
		return err
	}

	if fb.ID() == 0 || fb.Texture() == nil || fb.Texture().ID() == 0 {
		return fmt.Errorf("frame buffer was not recreated")
	}

	err = expectSize(fb, 4, 4)
	if err != nil {
		return err
	}

	dev := ctx.Device()

	fb.Begin()
	dev.ClearColor(0, 0, 1, 1)
	dev.Clear()
	got := snapshot.Read(dev, 1, 1).RGBAAt(0, 0)
	fb.End()

	return expectPixel(got, color.RGBA{R: 0, G: 0, B: 255, A: 255})
}
