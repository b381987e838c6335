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
// Package snapshot reads the contents of a frame buffer into an image and
// saves images to disk. The file format is chosen by the extension of the
// filename.
package snapshot

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/glfbo/curated"
	"github.com/jetsetilly/glfbo/framebuffer"
	"github.com/jetsetilly/glfbo/gpu"
	"github.com/jetsetilly/glfbo/logger"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Sentinal error patterns.
const (
	UnsupportedFormat = "snapshot: unsupported file format (%s)"
	SaveFailed        = "snapshot: save failed: %v"
)

// Read the currently bound target of the device into a new image. The rows
// are flipped so that the first row of the image is the top of the target.
func Read(dev gpu.Device, width int, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	pix := make([]uint8, width*height*4)
	dev.ReadPixels(0, 0, width, height, pix)

	stride := width * 4
	for y := 0; y < height; y++ {
		src := pix[(height-1-y)*stride : (height-y)*stride]
		copy(img.Pix[y*img.Stride:], src)
	}

	return img
}

// Capture the contents of the frame buffer. The default frame buffer is bound
// when the function returns.
func Capture(fb *framebuffer.FrameBuffer, dev gpu.Device) *image.RGBA {
	fb.Begin()
	defer fb.End()
	return Read(dev, fb.Width(), fb.Height())
}

// Encode the image to the writer using the format named by ext. The ext
// argument is a filename extension, with or without the leading dot.
func Encode(w io.Writer, img image.Image, ext string) error {
	var err error

	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "png":
		err = png.Encode(w, img)
	case "jpg", "jpeg":
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: 100})
	case "bmp":
		err = bmp.Encode(w, img)
	case "tif", "tiff":
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return curated.Errorf(UnsupportedFormat, ext)
	}

	if err != nil {
		return curated.Errorf(SaveFailed, err)
	}

	return nil
}

// Save the image to the specified path.
func Save(img image.Image, path string) error {
	ext := filepath.Ext(path)
	if ext == "" {
		return curated.Errorf(UnsupportedFormat, "no extension")
	}

	f, err := os.Create(path)
	if err != nil {
		return curated.Errorf(SaveFailed, err)
	}

	err = Encode(f, img, ext)
	if err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}

	err = f.Close()
	if err != nil {
		return curated.Errorf(SaveFailed, err)
	}

	logger.Logf(logger.Allow, "snapshot", "saved: %s", path)

	return nil
}

// Filename returns a filename for a snapshot of a frame buffer of the given
// size.
func Filename(width int, height int, ext string) string {
	return fmt.Sprintf("fbo_%dx%d.%s", width, height, strings.TrimPrefix(ext, "."))
}
