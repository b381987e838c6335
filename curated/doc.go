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

// Package curated is a helper package for the plain Go error type. Curated
// errors are created with the Errorf() function which takes a formatting
// pattern and the values for the pattern's placeholders.
//
// The pattern is what distinguishes one curated error from another. Packages
// that return curated errors should export their patterns as constants so that
// callers can test for them with Is() or Has():
//
//	const AboveMaxSize = "framebuffer: above available renderbuffer size (%d)"
//
//	err := curated.Errorf(AboveMaxSize, 16384)
//	if curated.Is(err, AboveMaxSize) {
//		...
//	}
//
// Is() only checks the outermost error. Has() checks the entire chain of
// curated errors, where a chain is formed by passing a curated error as one of
// the values to Errorf():
//
//	f := curated.Errorf("restore: %v", err)
//
//	curated.Is(f, AboveMaxSize)  // false
//	curated.Has(f, AboveMaxSize) // true
//
// The Error() implementation normalises the message so that adjacent
// duplicate parts are removed. Parts are separated by ": ". This means that
// wrapping an error with a pattern that begins with the same prefix does not
// result in "framebuffer: framebuffer: ..." messages.
//
// Curated errors also implement Unwrap() so the standard errors.Is() and
// errors.As() functions can see any plain error values passed to Errorf().
package curated
