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
package gpu

import (
	"fmt"
	"strings"
)

// Target is the binding point of a texture.
type Target int

// List of valid Target values.
const (
	Texture2D Target = iota
)

func (t Target) String() string {
	switch t {
	case Texture2D:
		return "texture2D"
	}
	return fmt.Sprintf("target(%d)", int(t))
}

// Status is the result of a frame buffer completeness check. Values not
// listed below are raw device status codes and are reported by String() in
// hexadecimal.
//
// The zero value is not StatusComplete. A device reports zero when the check
// itself failed.
type Status uint32

// List of Status values with special meaning.
const (
	StatusComplete Status = iota + 1
	StatusUnsupported
	StatusIncompleteDimensions
	StatusIncompleteAttachment
	StatusMissingAttachment
)

func (s Status) String() string {
	switch s {
	case StatusComplete:
		return "complete"
	case StatusUnsupported:
		return "unsupported"
	case StatusIncompleteDimensions:
		return "incomplete dimensions"
	case StatusIncompleteAttachment:
		return "incomplete attachment"
	case StatusMissingAttachment:
		return "missing attachment"
	}
	return fmt.Sprintf("status %#04x", uint32(s))
}

// Format of a texture's pixel data on the device.
type Format int

// List of valid Format values. The zero value is RGBA.
const (
	RGBA Format = iota
	RGB
)

func (f Format) String() string {
	switch f {
	case RGBA:
		return "rgba"
	case RGB:
		return "rgb"
	}
	return fmt.Sprintf("format(%d)", int(f))
}

// ParseFormat converts a string to a Format value. The test is case
// insensitive.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rgba", "":
		return RGBA, nil
	case "rgb":
		return RGB, nil
	}
	return RGBA, fmt.Errorf("gpu: unrecognised format (%s)", s)
}

// Filter used when sampling a texture. The zero value is Linear.
type Filter int

// List of valid Filter values.
const (
	Linear Filter = iota
	Nearest
)

func (f Filter) String() string {
	switch f {
	case Linear:
		return "linear"
	case Nearest:
		return "nearest"
	}
	return fmt.Sprintf("filter(%d)", int(f))
}

// ParseFilter converts a string to a Filter value. The test is case
// insensitive.
func ParseFilter(s string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "linear", "":
		return Linear, nil
	case "nearest":
		return Nearest, nil
	}
	return Linear, fmt.Errorf("gpu: unrecognised filter (%s)", s)
}

// Wrap mode used when sampling outside of a texture. The zero value is
// ClampToEdge.
type Wrap int

// List of valid Wrap values.
const (
	ClampToEdge Wrap = iota
	Repeat
)

func (w Wrap) String() string {
	switch w {
	case ClampToEdge:
		return "clamp"
	case Repeat:
		return "repeat"
	}
	return fmt.Sprintf("wrap(%d)", int(w))
}

// ParseWrap converts a string to a Wrap value. The test is case insensitive.
func ParseWrap(s string) (Wrap, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "clamp", "":
		return ClampToEdge, nil
	case "repeat":
		return Repeat, nil
	}
	return ClampToEdge, fmt.Errorf("gpu: unrecognised wrap mode (%s)", s)
}
