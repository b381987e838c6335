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
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/glfbo/curated"
	"github.com/jetsetilly/glfbo/framebuffer"
	"github.com/jetsetilly/glfbo/modalflag"
	"github.com/jetsetilly/glfbo/test"
)

func TestParseColour(t *testing.T) {
	r, g, b, a, err := parseColour("1, 1, 0, 1")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r, float32(1))
	test.ExpectEquality(t, g, float32(1))
	test.ExpectEquality(t, b, float32(0))
	test.ExpectEquality(t, a, float32(1))

	// alpha defaults to opaque
	_, _, _, a, err = parseColour("0.5,0.5,0.5")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, a, float32(1))

	_, _, _, _, err = parseColour("1,1")
	test.ExpectFailure(t, err)
	_, _, _, _, err = parseColour("1,1,x,1")
	test.ExpectFailure(t, err)
	_, _, _, _, err = parseColour("1,1,2,1")
	test.ExpectFailure(t, err)
}

func TestLaunchHelp(t *testing.T) {
	tw := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"-help"}, tw), 0)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "available sub-modes: PROBE, RENDER, CHECK"))
}

func TestLaunchBadFlag(t *testing.T) {
	tw := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"-nosuchflag"}, tw), 10)
}

func TestRender(t *testing.T) {
	dir := t.TempDir()

	prf, err := newPreferences(filepath.Join(dir, "preferences"))
	test.DemandSuccess(t, err)

	for _, adopt := range []string{"-texture=false", "-texture=true"} {
		fn := filepath.Join(dir, "out.png")
		dot := filepath.Join(dir, "fbo.dot")

		tw := &test.CompareWriter{}
		md := &modalflag.Modes{Output: tw}
		md.NewArgs([]string{adopt, "-width", "4", "-height", "2", "-colour", "1,0,0,1", "-memviz", dot, fn})
		test.DemandSuccess(t, render(md, tw, prf, true), adopt)

		test.ExpectSuccess(t, strings.Contains(tw.String(), "4x2 frame buffer saved to"), adopt)
		test.ExpectSuccess(t, strings.Contains(tw.String(), "sha1: "), adopt)

		f, err := os.Open(fn)
		test.DemandSuccess(t, err)
		img, err := png.Decode(f)
		f.Close()
		test.DemandSuccess(t, err)

		test.ExpectEquality(t, img.Bounds().Dx(), 4)
		test.ExpectEquality(t, img.Bounds().Dy(), 2)
		test.ExpectEquality(t, color.RGBAModel.Convert(img.At(3, 1)).(color.RGBA), color.RGBA{R: 255, A: 255})

		_, err = os.Stat(dot)
		test.ExpectSuccess(t, err)
	}
}

func TestRenderFloorSize(t *testing.T) {
	dir := t.TempDir()

	prf, err := newPreferences(filepath.Join(dir, "preferences"))
	test.DemandSuccess(t, err)

	for _, adopt := range []string{"-texture=false", "-texture=true"} {
		tw := &test.CompareWriter{}
		md := &modalflag.Modes{Output: tw}
		md.NewArgs([]string{adopt, "-width", "-5", "-height", "2", filepath.Join(dir, "floor.png")})
		test.ExpectSuccess(t, render(md, tw, prf, true), adopt)
		test.ExpectSuccess(t, strings.Contains(tw.String(), "1x2 frame buffer saved to"), adopt)
	}
}

func TestRenderAboveMaxSize(t *testing.T) {
	dir := t.TempDir()

	prf, err := newPreferences(filepath.Join(dir, "preferences"))
	test.DemandSuccess(t, err)

	for _, adopt := range []string{"-texture=false", "-texture=true"} {
		fn := filepath.Join(dir, "huge.png")

		tw := &test.CompareWriter{}
		md := &modalflag.Modes{Output: tw}
		md.NewArgs([]string{adopt, "-width", "100000", "-height", "100000", fn})
		err := render(md, tw, prf, true)
		test.ExpectSuccess(t, curated.Is(err, framebuffer.AboveMaxSize), adopt)

		_, err = os.Stat(fn)
		test.ExpectFailure(t, err, adopt)
	}
}

func TestSoftSession(t *testing.T) {
	ses, err := openSession(true, -1, 100000, false)
	test.DemandSuccess(t, err)
	defer ses.destroy()

	test.ExpectEquality(t, ses.ctx.Width(), 1)
	test.ExpectEquality(t, ses.ctx.Height(), maxSessionSize)
	test.ExpectSuccess(t, ses.service())
}

func TestProbe(t *testing.T) {
	prf, err := newPreferences(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)

	tw := &test.CompareWriter{}
	md := &modalflag.Modes{Output: tw}
	md.NewArgs([]string{})
	test.DemandSuccess(t, probe(md, tw, prf, true))

	test.ExpectSuccess(t, strings.Contains(tw.String(), "device: software"))
	test.ExpectSuccess(t, strings.Contains(tw.String(), "max renderbuffer size: 8192"))
	test.ExpectSuccess(t, strings.Contains(tw.String(), "preferred frame buffer: 256x256 rgba linear clamp"))
}
