// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package digest_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/digest"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/test"
)

func TestVideo(t *testing.T) {
	var r display.Readout

	a := digest.NewVideo()
	b := digest.NewVideo()
	test.Equate(t, a.Hash(), b.Hash())

	a.Frame(r)
	b.Frame(r)
	test.Equate(t, a.Hash(), b.Hash())
	test.Equate(t, a.Frames(), 1)

	// a single pixel difference changes the hash
	r[31][63] = true
	a.Frame(r)
	b.Frame(display.Readout{})
	test.ExpectedFailure(t, a.Hash() == b.Hash())

	// hashes are chained so identical frames from now on don't bring the
	// digests back together
	a.Frame(r)
	b.Frame(r)
	test.ExpectedFailure(t, a.Hash() == b.Hash())

	a.ResetDigest()
	b.ResetDigest()
	test.Equate(t, a.Hash(), b.Hash())
	test.Equate(t, a.Frames(), 0)
}

func TestVideoOrder(t *testing.T) {
	var on display.Readout
	on[0][0] = true

	a := digest.NewVideo()
	a.Frame(on)
	a.Frame(display.Readout{})

	b := digest.NewVideo()
	b.Frame(display.Readout{})
	b.Frame(on)

	test.ExpectedFailure(t, a.Hash() == b.Hash())
}

func TestAudio(t *testing.T) {
	a := digest.NewAudio()
	b := digest.NewAudio()

	// enough frames to cause a flush of the buffer
	for i := 0; i < 2000; i++ {
		a.Frame(i%60 == 0)
		b.Frame(i%60 == 0)
	}
	test.Equate(t, a.Hash(), b.Hash())

	a.Frame(true)
	b.Frame(false)
	test.ExpectedFailure(t, a.Hash() == b.Hash())

	a.ResetDigest()
	b.ResetDigest()
	test.Equate(t, a.Hash(), b.Hash())
}
