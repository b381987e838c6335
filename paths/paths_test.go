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
package paths_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/glfbo/paths"
	"github.com/jetsetilly/glfbo/test"
)

func TestPaths(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)

	// run the test from inside a temporary directory containing the local
	// resource directory
	tmp := t.TempDir()
	test.DemandSuccess(t, os.Mkdir(filepath.Join(tmp, ".glfbo"), 0700))
	test.DemandSuccess(t, os.Chdir(tmp))
	defer func() {
		_ = os.Chdir(wd)
	}()

	test.ExpectEquality(t, paths.ResourcePath("foo/bar", "baz"), ".glfbo/foo/bar/baz")
	test.ExpectEquality(t, paths.ResourcePath("foo/bar", ""), ".glfbo/foo/bar")
	test.ExpectEquality(t, paths.ResourcePath("", "baz"), ".glfbo/baz")
	test.ExpectEquality(t, paths.ResourcePath("", ""), ".glfbo")
	test.ExpectSuccess(t, paths.EnsureBasePath())
}
