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

// Package logger is the central log repository for glfbo. There is a single
// central log which is accessed through the package level functions. Separate
// logs can be created with NewLogger(), which is mostly useful for testing.
//
// Log entries are made up of a tag and a detail. The tag identifies the part
// of the program making the entry, the detail is the message itself:
//
//	logger.Logf(logger.Allow, "glcontext", "restored %d objects", n)
//
// The detail argument to Log() can be a string, an error, a fmt.Stringer or
// any other value that can be formatted with the %v verb.
//
// Repeated identical entries are collapsed into a single entry with a repeat
// count.
//
// The Permission argument decides whether an entry is made. The Allow value
// always allows logging.
package logger
