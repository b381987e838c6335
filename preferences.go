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
	"github.com/jetsetilly/glfbo/framebuffer"
	"github.com/jetsetilly/glfbo/gpu"
	"github.com/jetsetilly/glfbo/paths"
	"github.com/jetsetilly/glfbo/prefs"
)

// preferences for the frame buffers created by the program.
type preferences struct {
	dsk *prefs.Disk

	width  prefs.Int
	height prefs.Int
	format prefs.String
	filter prefs.String
	wrap   prefs.String

	windowVisible prefs.Bool
}

func newPreferences(path string) (*preferences, error) {
	p := &preferences{}

	var err error
	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}

	p.format.SetHookPre(func(v prefs.Value) error {
		_, err := gpu.ParseFormat(v.(string))
		return err
	})
	p.filter.SetHookPre(func(v prefs.Value) error {
		_, err := gpu.ParseFilter(v.(string))
		return err
	})
	p.wrap.SetHookPre(func(v prefs.Value) error {
		_, err := gpu.ParseWrap(v.(string))
		return err
	})

	err = p.dsk.Add("fbo.width", &p.width)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("fbo.height", &p.height)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("fbo.format", &p.format)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("fbo.filter", &p.filter)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("fbo.wrap", &p.wrap)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("window.visible", &p.windowVisible)
	if err != nil {
		return nil, err
	}

	err = p.setDefaults()
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (p *preferences) setDefaults() error {
	if err := p.width.Set(256); err != nil {
		return err
	}
	if err := p.height.Set(256); err != nil {
		return err
	}
	if err := p.format.Set(gpu.RGBA.String()); err != nil {
		return err
	}
	if err := p.filter.Set(gpu.Linear.String()); err != nil {
		return err
	}
	if err := p.wrap.Set(gpu.ClampToEdge.String()); err != nil {
		return err
	}
	return p.windowVisible.Set(false)
}

func loadPreferences() (*preferences, error) {
	err := paths.EnsureBasePath()
	if err != nil {
		return nil, err
	}
	return newPreferences(paths.ResourcePath("preferences"))
}

// source returns a FromSize value for the preferred frame buffer settings.
// The hooks guarantee that the string values parse.
func (p *preferences) source() framebuffer.FromSize {
	format, _ := gpu.ParseFormat(p.format.String())
	filter, _ := gpu.ParseFilter(p.filter.String())
	wrap, _ := gpu.ParseWrap(p.wrap.String())
	return framebuffer.FromSize{
		Width:  p.width.Get().(int),
		Height: p.height.Get().(int),
		Format: format,
		Filter: filter,
		Wrap:   wrap,
	}
}
