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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/test"
)

func TestDrawGlyph(t *testing.T) {
	// V0 = 0; V1 = 10; V2 = 4; LD F, V0; DRW V1, V2, 5
	tm := newTestMachine(t, 0x6000, 0x610a, 0x6204, 0xf029, 0xd125)
	tm.step(t, 5)

	// glyph for zero
	//
	//	****
	//	*  *
	//	*  *
	//	*  *
	//	****
	expected := []string{
		"****....",
		"*..*....",
		"*..*....",
		"*..*....",
		"****....",
	}

	for row, s := range expected {
		for col, c := range s {
			v := tm.mc.DisplayPixel(10+col, 4+row)
			if (c == '*') != (v == 1) {
				t.Errorf("pixel at %d, %d is wrong", 10+col, 4+row)
			}
		}
	}

	test.Equate(t, tm.mc.V[cpu.FlagRegister], 0)
}

func TestDrawTwiceRestores(t *testing.T) {
	// I = 0x300; V1 = 60; V2 = 30; DRW V1, V2, 4; DRW V1, V2, 4
	tm := newTestMachine(t, 0xa300, 0x613c, 0x621e, 0xd124, 0xd124)

	sprite := []uint8{0xa5, 0xff, 0x81, 0x3c}
	for i, b := range sprite {
		test.DemandSuccess(t, tm.mem.Write(0x300+uint16(i), b))
	}

	// some pixels set before drawing
	tm.dsp.SetPixel(60, 30, 1)
	tm.dsp.SetPixel(0, 0, 1)
	before := tm.dsp.Readout()

	tm.step(t, 4)
	test.Equate(t, tm.mc.V[cpu.FlagRegister], 1)

	tm.step(t, 1)
	test.Equate(t, tm.mc.V[cpu.FlagRegister], 1)

	after := tm.dsp.Readout()
	for y := 0; y < display.Height; y++ {
		for x := 0; x < display.Width; x++ {
			if before[y][x] != after[y][x] {
				t.Errorf("pixel at %d, %d was not restored", x, y)
			}
		}
	}
}

func TestDrawCollision(t *testing.T) {
	// I = 0x300; DRW V0, V0, 1; DRW V0, V0, 1
	tm := newTestMachine(t, 0xa300, 0xd001, 0xd001)
	test.DemandSuccess(t, tm.mem.Write(0x300, 0x80))

	tm.step(t, 2)
	test.Equate(t, tm.mc.V[cpu.FlagRegister], 0)
	test.Equate(t, tm.mc.DisplayPixel(0, 0), 1)

	tm.step(t, 1)
	test.Equate(t, tm.mc.V[cpu.FlagRegister], 1)
	test.Equate(t, tm.mc.DisplayPixel(0, 0), 0)
}

func TestDrawWraps(t *testing.T) {
	// I = 0x300; V1 = 62; V2 = 31; DRW V1, V2, 2
	tm := newTestMachine(t, 0xa300, 0x613e, 0x621f, 0xd122)
	test.DemandSuccess(t, tm.mem.Write(0x300, 0xf0))
	test.DemandSuccess(t, tm.mem.Write(0x301, 0xf0))
	tm.step(t, 4)

	// first row on the bottom line, wrapping horizontally
	test.Equate(t, tm.mc.DisplayPixel(62, 31), 1)
	test.Equate(t, tm.mc.DisplayPixel(63, 31), 1)
	test.Equate(t, tm.mc.DisplayPixel(0, 31), 1)
	test.Equate(t, tm.mc.DisplayPixel(1, 31), 1)
	test.Equate(t, tm.mc.DisplayPixel(2, 31), 0)

	// second row wraps to the top line
	test.Equate(t, tm.mc.DisplayPixel(62, 0), 1)
	test.Equate(t, tm.mc.DisplayPixel(1, 0), 1)
}

func TestDrawLargeCoordinates(t *testing.T) {
	// coordinates beyond the display are wrapped. V1 = 200; V2 = 255
	// I = 0x300; DRW V1, V2, 2
	tm := newTestMachine(t, 0xa300, 0x61c8, 0x62ff, 0xd122)
	test.DemandSuccess(t, tm.mem.Write(0x300, 0x80))
	test.DemandSuccess(t, tm.mem.Write(0x301, 0x80))
	tm.step(t, 4)

	// 200 % 64 = 8. 255 % 32 = 31. the y coordinate wraps to 0 (not to 32)
	// on the eight bit boundary
	test.Equate(t, tm.mc.DisplayPixel(8, 31), 1)
	test.Equate(t, tm.mc.DisplayPixel(8, 0), 1)
}
