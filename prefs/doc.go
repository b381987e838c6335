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

// Package prefs facilitates the storage of preferential values in the glfbo
// system. It is intended to be used by the main program to control the
// default values of frame buffer and window creation.
//
// Preference values are declared using the types Bool, Int and String, and
// associated with a key in a Disk instance:
//
//	dsk, _ := prefs.NewDisk(paths.ResourcePath("preferences"))
//
//	var width prefs.Int
//	_ = width.Set(256)
//	_ = dsk.Add("fbo.width", &width)
//
//	_ = dsk.Load()
//
// Values are read with Get() and type asserted, or with String(). Callbacks
// can be registered with SetHookPost() to be notified when a value changes.
//
// Values can also be set from the command line using the command line stack.
// A prefs string has the form "key::value; key::value". Pushing a prefs
// string onto the stack before calling Disk.Load() means those values
// override the values stored on disk:
//
//	prefs.PushCommandLineStack("fbo.filter::nearest")
//
// Values from the command line stack are consumed when used. Whatever remains
// can be retrieved with PopCommandLineStack() and reported as unused.
package prefs
