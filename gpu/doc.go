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
// Package gpu defines the Device interface. This is the small set of native
// graphics calls required to create textures and frame buffers, to redirect
// rendering into them and to read the results back.
//
// There are two implementations. The gldevice package is backed by OpenGL
// 3.2 core using go-gl. The softgpu package is a software implementation that
// behaves like a GL device and which is used for testing and for running
// without a display.
//
// Handles returned by a Device are plain uint32 values. The zero handle means
// "no object" and, for BindFramebuffer(), the default frame buffer (the
// screen).
//
// All methods must be called from the goroutine that owns the device. For
// gldevice that is the goroutine that made the GL context current.
package gpu
