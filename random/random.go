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

package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers.
var baseSeed int64

func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Coords is a position in time within the emulation.
type Coords struct {
	Frame int
	Step  int
}

// CoordsSource is implemented by any type that knows the current position in
// time of the emulation.
type CoordsSource interface {
	GetCoords() Coords
}

// Random is a random number generator that is sensitive to time within the
// emulation.
type Random struct {
	src CoordsSource

	// use zero seed rather than the random base seed. this is only really
	// useful for tests where random numbers must be predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(src CoordsSource) *Random {
	return &Random{
		src: src,
	}
}

// steps per frame is not fixed in the emulation but a frame is never going
// to run this many instructions.
const maxStepsPerFrame = 1 << 16

func (rnd *Random) rand() *rand.Rand {
	c := rnd.src.GetCoords()
	seed := int64(c.Frame)*maxStepsPerFrame + int64(c.Step)
	if !rnd.ZeroSeed {
		seed += baseSeed
	}
	return rand.New(rand.NewSource(seed))
}

// Intn returns a number in the range 0 to n-1.
func (rnd *Random) Intn(n int) int {
	return rnd.rand().Intn(n)
}

// Byte returns a random number in the range 0x00 to 0xff.
func (rnd *Random) Byte() uint8 {
	return uint8(rnd.Intn(0x100))
}
