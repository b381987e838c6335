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
	"strings"
	"testing"

	"github.com/jetsetilly/glfbo/curated"
	"github.com/jetsetilly/glfbo/glcontext"
	"github.com/jetsetilly/glfbo/gpu"
	"github.com/jetsetilly/glfbo/gpu/softgpu"
	"github.com/jetsetilly/glfbo/test"
)

func newSoftSession(t *testing.T) (*softgpu.Device, *glcontext.Context, func() error) {
	t.Helper()

	dev := softgpu.NewDevice(64, 64)
	ctx, err := glcontext.New(dev, 64, 64)
	test.DemandSuccess(t, err)

	lose := func() error {
		dev.Lose()
		return ctx.Restore()
	}

	return dev, ctx, lose
}

func TestChecks(t *testing.T) {
	dev, ctx, lose := newSoftSession(t)

	tw := &test.CompareWriter{}
	err := runChecks(tw, ctx, lose)
	test.ExpectSuccess(t, err)

	for _, c := range checks {
		test.ExpectSuccess(t, strings.Contains(tw.String(), "ok   "+c.name), c.name)
	}

	// every check cleans up after itself
	test.ExpectEquality(t, dev.LiveFramebuffers(), 0)
	test.ExpectEquality(t, dev.LiveTextures(), 0)
	test.ExpectEquality(t, ctx.Managed(), 0)
}

func TestChecksFail(t *testing.T) {
	dev, ctx, lose := newSoftSession(t)
	dev.ForceStatus(gpu.StatusUnsupported)

	tw := &test.CompareWriter{}
	err := runChecks(tw, ctx, lose)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, checkSummary))
	test.ExpectSuccess(t, strings.Contains(tw.String(), "FAIL check: clear colour"))

	test.ExpectEquality(t, dev.LiveFramebuffers(), 0)
	test.ExpectEquality(t, dev.LiveTextures(), 0)
}

func TestCheckRestoreWithoutLoss(t *testing.T) {
	_, ctx, _ := newSoftSession(t)
	test.ExpectFailure(t, checkRestore(ctx, nil))
}

func TestCheckCapacitySmallDevice(t *testing.T) {
	dev, ctx, _ := newSoftSession(t)

	// 1x256 no longer fits
	dev.SetMaxRenderbufferSize(128)
	test.ExpectFailure(t, checkCapacity(ctx, nil))

	dev.SetMaxRenderbufferSize(256)
	test.ExpectSuccess(t, checkCapacity(ctx, nil))
}
