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
// Package digest produces a cryptographic hash of captured frame buffer
// images. The hash can be compared with a previously recorded value to see if
// the output of a render has changed.
//
// Successive images are chained: the hash of an image includes the hash of
// the previous image. A single image can be hashed by calling ResetDigest()
// first.
package digest

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"
	"image"
)

// Digest implementations should return a cryptographic hash in response to a
// Hash() request. Generation of the hash achieved via another function.
type Digest interface {
	Hash() string
	ResetDigest()
}

// Image is an implementation of the Digest interface for RGBA images.
type Image struct {
	digest [sha1.Size]byte
	pixels []byte
	frames int
}

// NewImage is the preferred method of initialisation for the Image type.
func NewImage() *Image {
	return &Image{}
}

// Hash implements the Digest interface.
func (dig *Image) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Image) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
	dig.frames = 0
}

// Frames returns the number of images added since the last call to
// ResetDigest().
func (dig *Image) Frames() int {
	return dig.frames
}

// Add an image to the digest. The dimensions of the image are part of the
// hash, so a 1x4 image and a 4x1 image of the same colour hash differently.
func (dig *Image) Add(img *image.RGBA) {
	b := img.Bounds()
	rowLen := b.Dx() * 4

	// preserve the first few bytes for a chained fingerprint and the
	// dimensions of the image
	hdr := len(dig.digest) + 8
	l := hdr + rowLen*b.Dy()
	if cap(dig.pixels) < l {
		dig.pixels = make([]byte, l)
	}
	dig.pixels = dig.pixels[:l]

	n := copy(dig.pixels, dig.digest[:])
	binary.BigEndian.PutUint32(dig.pixels[n:], uint32(b.Dx()))
	binary.BigEndian.PutUint32(dig.pixels[n+4:], uint32(b.Dy()))

	// the image may be a sub-image so copy row by row
	for y := 0; y < b.Dy(); y++ {
		i := img.PixOffset(b.Min.X, b.Min.Y+y)
		copy(dig.pixels[hdr+y*rowLen:], img.Pix[i:i+rowLen])
	}

	dig.digest = sha1.Sum(dig.pixels)
	dig.frames++
}
