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
// Package paths contains functions to prepare paths to glfbo resources.
//
// The policy of ResourcePath() is simple: if the base resource path, currently
// defined to be ".glfbo", is present in the program's current directory then
// that is the base path that will used. If it is not present, then the user's
// config directory is used. On a modern Linux system the path returned by
//
//	paths.ResourcePath("preferences")
//
// will be:
//
//	/home/user/.config/glfbo/preferences
package paths

import (
	"os"
	"path/filepath"
)

const baseResourcePath = ".glfbo"

// ResourcePath returns the resource string prepended with the config
// directory. Empty resource strings are ignored.
func ResourcePath(resource ...string) string {
	p := make([]string, 0, len(resource)+1)
	p = append(p, getBasePath())
	p = append(p, resource...)
	return filepath.Join(p...)
}

// EnsureBasePath creates the config directory if it does not exist.
func EnsureBasePath() error {
	return os.MkdirAll(getBasePath(), 0700)
}

func getBasePath() string {
	if _, err := os.Stat(baseResourcePath); err == nil {
		return baseResourcePath
	}

	home, err := os.UserConfigDir()
	if err != nil {
		return baseResourcePath
	}

	// remove the leading dot when using the user config directory
	return filepath.Join(home, baseResourcePath[1:])
}
