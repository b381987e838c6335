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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectEquality() and ExpectInequality() functions are the most basic
// and probably the most useful. Failures are reported with t.Errorf() so the
// test continues. The Demand*() equivalents use t.Fatalf() and should be used
// when the rest of the test makes no sense if the value is wrong.
//
// ExpectSuccess() and ExpectFailure() accept bool and error values (and nil).
// A bool is successful if it is true and an error is successful if it is nil.
//
// The CompareWriter type is an io.Writer that records everything written to
// it, for comparison against an expected string.
package test
