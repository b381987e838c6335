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
// Package statsview is a wrapper for the go-echarts statsview package. It
// serves a page of runtime statistics (heap, goroutines, GC pauses) which is
// useful when looking for leaked frame buffers or textures during long
// running renders.
package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// Address is the address the stats server listens on.
const Address = "localhost:12610"

const url = "/debug/statsview"

// Launch the statsview server in its own goroutine. The returned function
// stops the server.
func Launch(output io.Writer) func() {
	viewer.SetConfiguration(viewer.WithAddr(Address))
	mgr := statsview.New()

	go mgr.Start()

	fmt.Fprintf(output, "stats server available at http://%s%s\n", Address, url)

	return mgr.Stop
}
