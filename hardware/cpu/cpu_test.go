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

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/test"
)

func TestReset(t *testing.T) {
	tm := newTestMachine(t)
	test.Equate(t, tm.mc.PC, memory.ProgramOrigin)
	test.Equate(t, tm.mc.I, 0)
	test.Equate(t, len(tm.mc.Stack), 0)
	test.ExpectedFailure(t, tm.mc.Halted)
	for _, v := range tm.mc.V {
		test.Equate(t, v, 0)
	}
}

func TestLoadAndAdd(t *testing.T) {
	tm := newTestMachine(t, 0x6005, 0x7003)
	tm.step(t, 2)
	test.Equate(t, tm.mc.V[0], 8)
	test.Equate(t, tm.mc.PC, 0x204)
}

func TestLoadImmediate(t *testing.T) {
	for x := uint16(0); x < cpu.NumRegisters; x++ {
		for _, nn := range []uint16{0x00, 0x01, 0x7f, 0x80, 0xff} {
			tm := newTestMachine(t, 0x6000|x<<8|nn)
			tm.step(t, 1)
			test.Equate(t, tm.mc.V[x], int(nn))
		}
	}
}

func TestAddImmediateWraps(t *testing.T) {
	tm := newTestMachine(t, 0x61ff, 0x7102)
	tm.step(t, 2)
	test.Equate(t, tm.mc.V[1], 0x01)

	// flag register is not affected
	test.Equate(t, tm.mc.V[cpu.FlagRegister], 0)
}

func TestFlowControl(t *testing.T) {
	// 0x200 JP 0x206
	// 0x202 LD V0, 0x01
	// 0x204 RET
	// 0x206 CALL 0x202
	// 0x208 LD V1, 0x02
	tm := newTestMachine(t, 0x1206, 0x6001, 0x00ee, 0x2202, 0x6102)

	tm.step(t, 1)
	test.Equate(t, tm.mc.PC, 0x206)

	tm.step(t, 1)
	test.Equate(t, tm.mc.PC, 0x202)
	test.Equate(t, len(tm.mc.Stack), 1)
	test.Equate(t, tm.mc.Stack[0], 0x208)

	tm.step(t, 2)
	test.Equate(t, tm.mc.PC, 0x208)
	test.Equate(t, len(tm.mc.Stack), 0)
	test.Equate(t, tm.mc.V[0], 0x01)

	tm.step(t, 1)
	test.Equate(t, tm.mc.V[1], 0x02)
}

func TestJumpOffset(t *testing.T) {
	tm := newTestMachine(t, 0x6004, 0xb300)
	tm.step(t, 2)
	test.Equate(t, tm.mc.PC, 0x304)
}

func TestStackUnderflow(t *testing.T) {
	tm := newTestMachine(t, 0x00ee)
	err := tm.mc.Step()
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, cpu.StackUnderflow))
}

func TestUnrecognisedInstruction(t *testing.T) {
	tm := newTestMachine(t, 0x8128)
	err := tm.mc.Step()
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, cpu.UnrecognisedInstruction))
	test.ExpectedSuccess(t, curated.Has(err, instructions.UnrecognisedInstruction))
}

func TestFetchOutOfBounds(t *testing.T) {
	// B-family jump can take the program counter past the end of memory
	tm := newTestMachine(t, 0x60ff, 0xbfff)
	tm.step(t, 2)
	err := tm.mc.Step()
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, cpu.MemoryFault))
	test.ExpectedSuccess(t, curated.Has(err, memory.AddressError))
}

func TestSkips(t *testing.T) {
	tests := []struct {
		name    string
		ins     uint16
		skipped bool
	}{
		{"SE immediate equal", 0x3105, true},
		{"SE immediate not equal", 0x3106, false},
		{"SNE immediate equal", 0x4105, false},
		{"SNE immediate not equal", 0x4106, true},
		{"SE register equal", 0x5120, true},
		{"SE register not equal", 0x5130, false},
		{"SNE register equal", 0x9120, false},
		{"SNE register not equal", 0x9130, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// V1 = 5, V2 = 5, V3 = 6
			tm := newTestMachine(t, 0x6105, 0x6205, 0x6306, tt.ins)
			tm.step(t, 4)
			if tt.skipped {
				test.Equate(t, tm.mc.PC, 0x20a)
			} else {
				test.Equate(t, tm.mc.PC, 0x208)
			}
		})
	}
}

func TestBitwise(t *testing.T) {
	tm := newTestMachine(t, 0x61f0, 0x623c, 0x8121)
	tm.step(t, 3)
	test.Equate(t, tm.mc.V[1], 0xfc)

	tm = newTestMachine(t, 0x61f0, 0x623c, 0x8122)
	tm.step(t, 3)
	test.Equate(t, tm.mc.V[1], 0x30)

	tm = newTestMachine(t, 0x61f0, 0x623c, 0x8123)
	tm.step(t, 3)
	test.Equate(t, tm.mc.V[1], 0xcc)

	tm = newTestMachine(t, 0x61f0, 0x623c, 0x8120)
	tm.step(t, 3)
	test.Equate(t, tm.mc.V[1], 0x3c)
	test.Equate(t, tm.mc.V[2], 0x3c)
}

func TestAddRegisters(t *testing.T) {
	for _, a := range []uint16{0x00, 0x01, 0x7f, 0x80, 0xfe, 0xff} {
		for _, b := range []uint16{0x00, 0x01, 0x7f, 0x80, 0xfe, 0xff} {
			tm := newTestMachine(t, 0x6100|a, 0x6200|b, 0x8124)
			tm.step(t, 3)
			test.Equate(t, tm.mc.V[1], int((a+b)%256))
			if a+b >= 256 {
				test.Equate(t, tm.mc.V[cpu.FlagRegister], 1)
			} else {
				test.Equate(t, tm.mc.V[cpu.FlagRegister], 0)
			}
		}
	}
}

func TestSubtractRegisters(t *testing.T) {
	for _, a := range []int{0x00, 0x01, 0x7f, 0x80, 0xfe, 0xff} {
		for _, b := range []int{0x00, 0x01, 0x7f, 0x80, 0xfe, 0xff} {
			tm := newTestMachine(t, 0x6100|uint16(a), 0x6200|uint16(b), 0x8125)
			tm.step(t, 3)
			test.Equate(t, tm.mc.V[1], (a-b+256)%256)
			if a >= b {
				test.Equate(t, tm.mc.V[cpu.FlagRegister], 1)
			} else {
				test.Equate(t, tm.mc.V[cpu.FlagRegister], 0)
			}

			// reverse subtraction
			tm = newTestMachine(t, 0x6100|uint16(a), 0x6200|uint16(b), 0x8127)
			tm.step(t, 3)
			test.Equate(t, tm.mc.V[1], (b-a+256)%256)
			if b >= a {
				test.Equate(t, tm.mc.V[cpu.FlagRegister], 1)
			} else {
				test.Equate(t, tm.mc.V[cpu.FlagRegister], 0)
			}
		}
	}
}

func TestFlagRegisterAsDestination(t *testing.T) {
	// VF = 0x10, V1 = 0x20, VF = VF - V1. the borrow flag wins over the result
	tm := newTestMachine(t, 0x6f10, 0x6120, 0x8f15)
	tm.step(t, 3)
	test.Equate(t, tm.mc.V[cpu.FlagRegister], 0)

	// VF = 0xff, V1 = 0x02, VF = VF + V1. the carry flag wins over the result
	tm = newTestMachine(t, 0x6fff, 0x6102, 0x8f14)
	tm.step(t, 3)
	test.Equate(t, tm.mc.V[cpu.FlagRegister], 1)
}

func TestShifts(t *testing.T) {
	// shift right uses VY and leaves it unchanged
	tm := newTestMachine(t, 0x6205, 0x8126)
	tm.step(t, 2)
	test.Equate(t, tm.mc.V[1], 0x02)
	test.Equate(t, tm.mc.V[2], 0x05)
	test.Equate(t, tm.mc.V[cpu.FlagRegister], 1)

	tm = newTestMachine(t, 0x6204, 0x8126)
	tm.step(t, 2)
	test.Equate(t, tm.mc.V[1], 0x02)
	test.Equate(t, tm.mc.V[cpu.FlagRegister], 0)

	// shift left
	tm = newTestMachine(t, 0x6281, 0x812e)
	tm.step(t, 2)
	test.Equate(t, tm.mc.V[1], 0x02)
	test.Equate(t, tm.mc.V[2], 0x81)
	test.Equate(t, tm.mc.V[cpu.FlagRegister], 1)

	tm = newTestMachine(t, 0x6241, 0x812e)
	tm.step(t, 2)
	test.Equate(t, tm.mc.V[1], 0x82)
	test.Equate(t, tm.mc.V[cpu.FlagRegister], 0)
}

func TestIndex(t *testing.T) {
	tm := newTestMachine(t, 0xa123, 0x6110, 0xf11e)
	tm.step(t, 1)
	test.Equate(t, tm.mc.I, 0x123)
	tm.step(t, 2)
	test.Equate(t, tm.mc.I, 0x133)

	// sixteen bit wrap
	tm = newTestMachine(t, 0x6102, 0xf11e)
	tm.mc.I = 0xffff
	tm.step(t, 2)
	test.Equate(t, tm.mc.I, 0x0001)
}

func TestRandom(t *testing.T) {
	tm := newTestMachine(t, 0xc10f, 0xc2ff)
	tm.mc.Random = fixedRandom(0xa5)
	tm.step(t, 2)
	test.Equate(t, tm.mc.V[1], 0x05)
	test.Equate(t, tm.mc.V[2], 0xa5)

	// mask of zero always produces zero
	tm = newTestMachine(t, 0xc100)
	tm.step(t, 1)
	test.Equate(t, tm.mc.V[1], 0x00)
}

func TestTimers(t *testing.T) {
	// V1 = 3; DT = V1; ST = V1
	tm := newTestMachine(t, 0x6103, 0xf115, 0xf118, 0xf207)
	tm.step(t, 3)
	test.Equate(t, tm.mc.DelayTimer, 3)
	test.Equate(t, tm.mc.SoundTimer, 3)
	test.ExpectedSuccess(t, tm.mc.SoundActive())

	tm.mc.DecrementTimers()
	tm.step(t, 1)
	test.Equate(t, tm.mc.V[2], 2)

	// timers stop at zero
	for i := 0; i < 10; i++ {
		tm.mc.DecrementTimers()
	}
	test.Equate(t, tm.mc.DelayTimer, 0)
	test.Equate(t, tm.mc.SoundTimer, 0)
	test.ExpectedFailure(t, tm.mc.SoundActive())
}

func TestGlyphAndBCD(t *testing.T) {
	// V1 = 0xa; LD F, V1
	tm := newTestMachine(t, 0x610a, 0xf129)
	tm.step(t, 2)
	test.Equate(t, tm.mc.I, 50)
	tm.assertMemory(t, tm.mc.I, 0xf0)

	// V1 = 254; I = 0x300; LD B, V1
	tm = newTestMachine(t, 0x61fe, 0xa300, 0xf133)
	tm.step(t, 3)
	tm.assertMemory(t, 0x300, 2)
	tm.assertMemory(t, 0x301, 5)
	tm.assertMemory(t, 0x302, 4)
	test.Equate(t, tm.mc.I, 0x300)
}

func TestStoreLoadRegisters(t *testing.T) {
	// V0..V3 = 1,2,3,4; I = 0x300; LD [I], V3
	tm := newTestMachine(t, 0x6001, 0x6102, 0x6203, 0x6304, 0x6405, 0xa300, 0xf355)
	tm.step(t, 7)
	tm.assertMemory(t, 0x300, 1)
	tm.assertMemory(t, 0x301, 2)
	tm.assertMemory(t, 0x302, 3)
	tm.assertMemory(t, 0x303, 4)
	tm.assertMemory(t, 0x304, 0)
	test.Equate(t, tm.mc.I, 0x304)
}

func TestStoreLoadRoundTrip(t *testing.T) {
	for x := uint16(0); x < cpu.NumRegisters; x++ {
		// I = 0x400; LD [I], VX; I = 0x400; LD VX, [I]
		tm := newTestMachine(t, 0xa400, 0xf055|x<<8, 0xa400, 0xf065|x<<8)

		for i := range tm.mc.V {
			tm.mc.V[i] = uint8(i*17 + 3)
		}
		before := tm.mc.V

		tm.step(t, 2)

		// scramble registers
		for i := range tm.mc.V {
			tm.mc.V[i] = 0
		}

		tm.step(t, 2)

		for i := uint16(0); i <= x; i++ {
			test.Equate(t, tm.mc.V[i], before[i])
		}
		test.Equate(t, tm.mc.I, 0x400+int(x)+1)
	}
}

func TestStoreOutOfBounds(t *testing.T) {
	// I = 0xffe; LD [I], V3
	tm := newTestMachine(t, 0xaffe, 0xf355)
	tm.step(t, 1)
	err := tm.mc.Step()
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, cpu.MemoryFault))
	test.ExpectedSuccess(t, curated.Has(err, memory.AddressError))
}

func TestSkipKey(t *testing.T) {
	// V1 = 0xa; SKP V1
	tm := newTestMachine(t, 0x610a, 0xe19e)
	tm.mc.PressKey(0xa)
	tm.step(t, 2)
	test.Equate(t, tm.mc.PC, 0x206)

	tm = newTestMachine(t, 0x610a, 0xe19e)
	tm.step(t, 2)
	test.Equate(t, tm.mc.PC, 0x204)

	// SKNP V1
	tm = newTestMachine(t, 0x610a, 0xe1a1)
	tm.mc.PressKey(0xa)
	tm.step(t, 2)
	test.Equate(t, tm.mc.PC, 0x204)

	tm = newTestMachine(t, 0x610a, 0xe1a1)
	tm.mc.PressKey(0xb)
	tm.step(t, 2)
	test.Equate(t, tm.mc.PC, 0x206)

	// a key value outside of the keypad is never pressed
	tm = newTestMachine(t, 0x61ff, 0xe1a1)
	tm.step(t, 2)
	test.Equate(t, tm.mc.PC, 0x206)
}

func TestAwaitKey(t *testing.T) {
	// LD V5, K; LD V6, 0x01
	tm := newTestMachine(t, 0xf50a, 0x6601)

	tm.step(t, 1)
	test.ExpectedSuccess(t, tm.mc.Halted)
	test.Equate(t, tm.mc.PC, 0x202)

	// busy wait leaves the program counter where it is
	for i := 0; i < 10; i++ {
		tm.step(t, 1)
		test.ExpectedSuccess(t, tm.mc.Halted)
		test.Equate(t, tm.mc.PC, 0x202)
	}
	test.Equate(t, tm.mc.V[6], 0)

	// releasing a key that was never pressed makes no difference
	tm.mc.ReleaseKey(0x3)
	tm.step(t, 1)
	test.ExpectedSuccess(t, tm.mc.Halted)

	tm.mc.PressKey(0xe)
	tm.mc.PressKey(0x7)
	tm.step(t, 1)
	test.ExpectedFailure(t, tm.mc.Halted)
	test.Equate(t, tm.mc.V[5], 0x7)
	test.Equate(t, tm.mc.PC, 0x202)

	// the key that was taken has been released
	test.ExpectedFailure(t, tm.kb.IsPressed(0x7))
	test.ExpectedSuccess(t, tm.kb.IsPressed(0xe))

	tm.step(t, 1)
	test.Equate(t, tm.mc.V[6], 0x01)
	test.Equate(t, tm.mc.PC, 0x204)
}

func TestAwaitKeyAlreadyPressed(t *testing.T) {
	tm := newTestMachine(t, 0xf30a)
	tm.mc.PressKey(0x2)
	tm.step(t, 1)
	test.ExpectedFailure(t, tm.mc.Halted)
	test.Equate(t, tm.mc.V[3], 0x2)
	test.Equate(t, tm.mc.PC, 0x202)
}

func TestClearScreen(t *testing.T) {
	tm := newTestMachine(t, 0x00e0)
	tm.dsp.SetPixel(1, 1, 1)
	tm.dsp.SetPixel(63, 31, 1)
	tm.step(t, 1)

	for x := 0; x < display.Width; x++ {
		for y := 0; y < display.Height; y++ {
			test.Equate(t, tm.mc.DisplayPixel(x, y), 0)
		}
	}
}
