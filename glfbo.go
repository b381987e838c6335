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
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/glfbo/curated"
	"github.com/jetsetilly/glfbo/digest"
	"github.com/jetsetilly/glfbo/framebuffer"
	"github.com/jetsetilly/glfbo/glcontext"
	"github.com/jetsetilly/glfbo/gpu/softgpu"
	"github.com/jetsetilly/glfbo/logger"
	"github.com/jetsetilly/glfbo/modalflag"
	"github.com/jetsetilly/glfbo/prefs"
	"github.com/jetsetilly/glfbo/sdlcontext"
	"github.com/jetsetilly/glfbo/snapshot"
	"github.com/jetsetilly/glfbo/statsview"
	"github.com/jetsetilly/glfbo/texture"
	"github.com/jetsetilly/glfbo/version"
)

// #mainthread
func init() {
	// SDL and OpenGL calls must all be made from the main thread
	runtime.LockOSThread()
}

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch the program with the command line arguments. The return value is the
// exit code for the process.
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	soft := md.AddBool("soft", false, "use the software device (no window or GL driver required)")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	override := md.AddString("prefs", "", "preferences for this run. eg. \"fbo.width::64; fbo.filter::nearest\"")
	md.AddSubModes("PROBE", "RENDER", "CHECK")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	if *log {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		stop := statsview.Launch(output)
		defer stop()
	}

	if *override != "" {
		prefs.PushCommandLineStack(*override)
		defer func() {
			if s := prefs.PopCommandLineStack(); s != "" {
				logger.Logf(logger.Allow, "prefs", "unused preferences: %s", s)
			}
		}()
	}

	prf, err := loadPreferences()
	if err != nil {
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "PROBE":
		err = probe(md, output, prf, *soft)
	case "RENDER":
		err = render(md, output, prf, *soft)
	case "CHECK":
		err = runCheck(md, output, prf, *soft)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

// session is the graphics context and the means of losing it.
type session struct {
	ctx      *glcontext.Context
	lose     func() error
	describe func(output io.Writer)
	destroy  func()

	// service returns false if the user has closed the window
	service func() bool
	swap    func()
}

// the largest screen created for a session. frame buffers can be larger
const maxSessionSize = 1024

func openSession(soft bool, width int, height int, visible bool) (*session, error) {
	width = min(max(1, width), maxSessionSize)
	height = min(max(1, height), maxSessionSize)

	if soft {
		dev := softgpu.NewDevice(width, height)
		ctx, err := glcontext.New(dev, width, height)
		if err != nil {
			return nil, err
		}
		return &session{
			ctx: ctx,
			lose: func() error {
				dev.Lose()
				return ctx.Restore()
			},
			describe: func(output io.Writer) {
				fmt.Fprintln(output, "device: software")
			},
			destroy: func() {},
			service: func() bool { return true },
			swap:    func() {},
		}, nil
	}

	plt, err := sdlcontext.New(version.ApplicationName, width, height, visible)
	if err != nil {
		return nil, err
	}
	return &session{
		ctx:  plt.Context(),
		lose: plt.LoseContext,
		describe: func(output io.Writer) {
			vendor, renderer, driver := plt.Device().Strings()
			fmt.Fprintf(output, "vendor: %s\nrenderer: %s\ndriver: %s\n", vendor, renderer, driver)
		},
		destroy: plt.Destroy,
		service: plt.Service,
		swap:    plt.Swap,
	}, nil
}

func probe(md *modalflag.Modes, output io.Writer, prf *preferences, soft bool) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	ver, rev, _ := version.Version()
	fmt.Fprintf(output, "%s %s (%s)\n", version.ApplicationName, ver, rev)

	ses, err := openSession(soft, 1, 1, false)
	if err != nil {
		return err
	}
	defer ses.destroy()

	ses.describe(output)

	maxSize, err := framebuffer.MaxSize(ses.ctx.Device())
	if err != nil {
		return err
	}
	fmt.Fprintf(output, "max renderbuffer size: %d\n", maxSize)

	src := prf.source()
	fmt.Fprintf(output, "preferred frame buffer: %dx%d %s %s %s\n",
		src.Width, src.Height, src.Format, src.Filter, src.Wrap)

	return nil
}

func render(md *modalflag.Modes, output io.Writer, prf *preferences, soft bool) error {
	md.NewMode()

	src := prf.source()

	width := md.AddInt("width", src.Width, "width of frame buffer")
	height := md.AddInt("height", src.Height, "height of frame buffer")
	colour := md.AddString("colour", "0,0,0,1", "clear colour as r,g,b,a in the range 0 to 1")
	adopt := md.AddBool("texture", false, "create the texture first and pass it to the frame buffer")
	dump := md.AddString("memviz", "", "write a memviz graph of the frame buffer to file")
	md.AdditionalHelp("the output format is decided by the OUTFILE extension: png, jpg, bmp or tif")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	r, g, b, a, err := parseColour(*colour)
	if err != nil {
		return err
	}

	// sizes less than one are treated as one, the same as framebuffer.New()
	src.Width = max(1, *width)
	src.Height = max(1, *height)

	var path string
	switch len(md.RemainingArgs()) {
	case 0:
		path = snapshot.Filename(src.Width, src.Height, "png")
	case 1:
		path = md.GetArg(0)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	ses, err := openSession(soft, src.Width, src.Height, prf.windowVisible.Get().(bool))
	if err != nil {
		return err
	}
	defer ses.destroy()

	// process any pending window events so that the context is the size of
	// the window when End() is called
	if !ses.service() {
		return nil
	}

	var fb *framebuffer.FrameBuffer
	if *adopt {
		// the texture is created before the frame buffer so the size must be
		// checked here to avoid allocating a texture that can never be used
		maxSize, err := framebuffer.MaxSize(ses.ctx.Device())
		if err != nil {
			return err
		}
		if src.Width > maxSize || src.Height > maxSize {
			return curated.Errorf(framebuffer.AboveMaxSize, maxSize)
		}

		tex, err := texture.New(ses.ctx, texture.Spec{
			Width:  src.Width,
			Height: src.Height,
			Format: src.Format,
			Filter: src.Filter,
			Wrap:   src.Wrap,
		})
		if err != nil {
			return err
		}
		fb, err = framebuffer.New(ses.ctx, framebuffer.FromTexture{Texture: tex})
		if err != nil {
			tex.Destroy()
			return err
		}
	} else {
		fb, err = framebuffer.New(ses.ctx, src)
		if err != nil {
			return err
		}
	}
	defer fb.Destroy()

	dev := ses.ctx.Device()

	fb.Begin()
	dev.ClearColor(r, g, b, a)
	dev.Clear()
	fb.End()

	img := snapshot.Capture(fb, dev)
	err = snapshot.Save(img, path)
	if err != nil {
		return err
	}
	fmt.Fprintf(output, "%dx%d frame buffer saved to %s\n", fb.Width(), fb.Height(), path)

	dig := digest.NewImage()
	dig.Add(img)
	fmt.Fprintf(output, "sha1: %s\n", dig.Hash())

	// show the clear colour in the window
	if ses.service() {
		dev.ClearColor(r, g, b, a)
		dev.Clear()
		ses.swap()
	}

	if *dump != "" {
		err = writeMemviz(*dump, fb)
		if err != nil {
			return err
		}
	}

	return nil
}

func writeMemviz(path string, fb *framebuffer.FrameBuffer) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return err
	}
	defer f.Close()

	memviz.Map(f, fb)
	logger.Logf(logger.Allow, "memviz", "frame buffer graph written to %s", path)

	return nil
}

func runCheck(md *modalflag.Modes, output io.Writer, prf *preferences, soft bool) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	ses, err := openSession(soft, 64, 64, prf.windowVisible.Get().(bool))
	if err != nil {
		return err
	}
	defer ses.destroy()

	return runChecks(output, ses.ctx, ses.lose)
}

// parseColour parses a string of the form "r,g,b,a". Each component must be
// in the range 0 to 1. The alpha component can be omitted.
func parseColour(s string) (r, g, b, a float32, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return 0, 0, 0, 0, fmt.Errorf("colour must be r,g,b or r,g,b,a (%s)", s)
	}

	c := [4]float32{0, 0, 0, 1}
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return 0, 0, 0, 0, fmt.Errorf("colour component: %w", err)
		}
		if v < 0 || v > 1 {
			return 0, 0, 0, 0, fmt.Errorf("colour component out of range (%s)", p)
		}
		c[i] = float32(v)
	}

	return c[0], c[1], c[2], c[3], nil
}
