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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/keyboard"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/random"
)

// NumRegisters is the number of general purpose registers.
const NumRegisters = 16

// FlagRegister is the index of the register used to report carries, borrows,
// shifted bits and sprite collisions.
const FlagRegister = 0xf

// Memory defines the memory operations required by the CPU.
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
	LoadProgram(prog memory.Program) error
	Reset()
}

// RandomSource is used by the random number instruction (CXNN).
type RandomSource interface {
	Byte() uint8
}

// CPU is the instruction interpreter.
type CPU struct {
	V     [NumRegisters]uint8
	I     uint16
	PC    uint16
	Stack []uint16

	DelayTimer uint8
	SoundTimer uint8

	// Halted is true while the CPU is waiting for a key press
	Halted bool

	// Random can be replaced for testing purposes. by default it is an
	// instance of random.Random using the CPU's coordinates
	Random RandomSource

	mem      Memory
	display  *display.Display
	keyboard *keyboard.Keyboard

	// number of calls to Step() and DecrementTimers() since the last reset.
	// used to seed the default random number generator
	steps  int
	frames int
}

// NewCPU is the preferred method of initialisation for the CPU type. The CPU
// takes ownership of the memory, display and keyboard.
func NewCPU(mem Memory, dsp *display.Display, kb *keyboard.Keyboard) *CPU {
	mc := &CPU{
		mem:      mem,
		display:  dsp,
		keyboard: kb,
	}
	mc.Random = random.NewRandom(mc)
	mc.Reset()
	return mc
}

func (mc *CPU) String() string {
	return fmt.Sprintf("PC=%#03x I=%#03x V=% 02x DT=%d ST=%d SP=%d", mc.PC, mc.I, mc.V, mc.DelayTimer, mc.SoundTimer, len(mc.Stack))
}

// Reset returns the CPU and the hardware it owns to the power-on state.
// Memory is cleared so any program will need to be loaded again.
func (mc *CPU) Reset() {
	mc.V = [NumRegisters]uint8{}
	mc.I = 0
	mc.PC = memory.ProgramOrigin
	mc.Stack = mc.Stack[:0]
	mc.DelayTimer = 0
	mc.SoundTimer = 0
	mc.Halted = false
	mc.steps = 0
	mc.frames = 0
	mc.mem.Reset()
	mc.display.Clear()
	mc.keyboard.Reset()
}

// GetCoords implements the random.CoordsSource interface.
func (mc *CPU) GetCoords() random.Coords {
	return random.Coords{
		Frame: mc.frames,
		Step:  mc.steps,
	}
}

// LoadProgram copies the program into memory at memory.ProgramOrigin.
func (mc *CPU) LoadProgram(prog memory.Program) error {
	return mc.mem.LoadProgram(prog)
}

// DecrementTimers reduces the delay and sound timers by one, stopping at
// zero. Should be called once per frame.
func (mc *CPU) DecrementTimers() {
	mc.frames++
	if mc.DelayTimer > 0 {
		mc.DelayTimer--
	}
	if mc.SoundTimer > 0 {
		mc.SoundTimer--
	}
}

// SoundActive returns true while the sound timer is running.
func (mc *CPU) SoundActive() bool {
	return mc.SoundTimer > 0
}

// PressKey forwards the key press to the keyboard.
func (mc *CPU) PressKey(key uint8) {
	mc.keyboard.Press(key)
}

// ReleaseKey forwards the key release to the keyboard.
func (mc *CPU) ReleaseKey(key uint8) {
	mc.keyboard.Release(key)
}

// DisplayPixel returns the value of the display pixel at x, y.
func (mc *CPU) DisplayPixel(x, y int) uint8 {
	return mc.display.Pixel(x, y)
}

// DisplayReadout returns a copy of the entire display.
func (mc *CPU) DisplayReadout() display.Readout {
	return mc.display.Readout()
}

// Step fetches, decodes and executes one instruction. If the CPU is halted
// the program counter is wound back so that the key wait instruction is
// executed again.
func (mc *CPU) Step() error {
	mc.steps++

	if mc.Halted {
		mc.PC -= 2
	}

	pc := mc.PC

	hi, err := mc.mem.Read(pc)
	if err != nil {
		return curated.Errorf(MemoryFault, err, "fetch", pc)
	}
	lo, err := mc.mem.Read(pc + 1)
	if err != nil {
		return curated.Errorf(MemoryFault, err, "fetch", pc)
	}
	mc.PC += 2

	ins, err := instructions.Decode(uint16(hi)<<8 | uint16(lo))
	if err != nil {
		return curated.Errorf(UnrecognisedInstruction, err, pc)
	}

	err = mc.execute(ins, pc)
	if err != nil {
		if curated.Is(err, memory.AddressError) {
			return curated.Errorf(MemoryFault, err, ins, pc)
		}
		return err
	}

	return nil
}
