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
// Package glcontext wraps a gpu.Device with the information that the device
// itself does not carry: the current size of the screen and the list of
// objects that must be recreated when the device context is lost.
//
// Objects that own device resources implement the Recreatable interface and
// register themselves with AddManagedObject(). After a context loss the owner
// of the Context calls Restore(), which calls Recreate() on every registered
// object in the order in which they were registered.
package glcontext

import (
	"github.com/jetsetilly/glfbo/curated"
	"github.com/jetsetilly/glfbo/gpu"
	"github.com/jetsetilly/glfbo/logger"
)

// Sentinal error patterns.
const (
	NoDevice    = "glcontext: no device specified"
	RestoreFail = "glcontext: restore: %v"
)

// Recreatable is implemented by any type that holds device resources which
// can be rebuilt after the device context has been lost.
type Recreatable interface {
	Recreate() error
}

// Context is the graphics context used by textures and frame buffers.
type Context struct {
	dev    gpu.Device
	width  int
	height int

	managed []Recreatable
}

// New is the preferred method of initialisation for the Context type. The
// width and height are the dimensions of the screen.
func New(dev gpu.Device, width int, height int) (*Context, error) {
	if dev == nil {
		return nil, curated.Errorf(NoDevice)
	}

	ctx := &Context{dev: dev}
	ctx.Resize(width, height)

	return ctx, nil
}

// Device returns the underlying device.
func (ctx *Context) Device() gpu.Device {
	return ctx.dev
}

// Width of the screen.
func (ctx *Context) Width() int {
	return ctx.width
}

// Height of the screen.
func (ctx *Context) Height() int {
	return ctx.height
}

// Resize should be called whenever the screen changes size. Values less than
// one are treated as one.
func (ctx *Context) Resize(width int, height int) {
	ctx.width = max(1, width)
	ctx.height = max(1, height)
}

// AddManagedObject adds obj to the list of objects to be recreated by
// Restore(). Adding an object that is already in the list has no effect.
func (ctx *Context) AddManagedObject(obj Recreatable) {
	for _, o := range ctx.managed {
		if o == obj {
			return
		}
	}
	ctx.managed = append(ctx.managed, obj)
}

// RemoveManagedObject removes obj from the list of managed objects. Removing
// an object that is not in the list has no effect.
func (ctx *Context) RemoveManagedObject(obj Recreatable) {
	for i, o := range ctx.managed {
		if o == obj {
			ctx.managed = append(ctx.managed[:i], ctx.managed[i+1:]...)
			return
		}
	}
}

// Managed returns the number of managed objects.
func (ctx *Context) Managed() int {
	return len(ctx.managed)
}

// Restore recreates every managed object. It should be called after the
// device context has been lost and a new context made current.
//
// Every object is visited even if an earlier object fails. The first error is
// returned. An object that fails may remove itself from the list during its
// call to Recreate().
func (ctx *Context) Restore() error {
	// copy list because objects may remove themselves
	managed := make([]Recreatable, len(ctx.managed))
	copy(managed, ctx.managed)

	var first error

	for _, obj := range managed {
		if err := obj.Recreate(); err != nil {
			logger.Logf(logger.Allow, "glcontext", "restore: %T: %v", obj, err)
			if first == nil {
				first = err
			}
		}
	}

	logger.Logf(logger.Allow, "glcontext", "restored %d objects", len(managed))

	if first != nil {
		return curated.Errorf(RestoreFail, first)
	}

	return nil
}
