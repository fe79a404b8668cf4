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

package hardware

import (
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/keyboard"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/programloader"
	"github.com/jetsetilly/gopher8/random"
)

// InstructionsPerFrame is the number of instructions executed by RunFrame().
const InstructionsPerFrame = 10

// FramesPerSecond is the rate at which RunFrame() should be called. The
// delay and sound timers count down at this rate.
const FramesPerSecond = 60

// Machine is the main container for the emulated components.
type Machine struct {
	CPU      *cpu.CPU
	Mem      *memory.Memory
	Display  *display.Display
	Keyboard *keyboard.Keyboard

	// the program most recently attached. reloaded on Reset()
	loader *programloader.Loader

	// number of frames run since the last reset
	frameNum int

	// whether the CPU was halted at the end of the previous frame. used to
	// log transitions to and from the awaiting key state
	halted bool
}

// NewMachine creates a new Machine and everything associated with the
// hardware.
func NewMachine() *Machine {
	m := &Machine{
		Mem:      memory.NewMemory(),
		Display:  display.NewDisplay(),
		Keyboard: keyboard.NewKeyboard(),
	}
	m.CPU = cpu.NewCPU(m.Mem, m.Display, m.Keyboard)
	return m
}

// AttachProgram loads the program (if it has not already been loaded) and
// copies it into memory. The machine is reset beforehand.
func (m *Machine) AttachProgram(ld *programloader.Loader) error {
	if err := ld.Load(); err != nil {
		return err
	}
	m.loader = ld
	return m.Reset()
}

// Reset the machine to its power-on state and reload the attached program.
func (m *Machine) Reset() error {
	m.CPU.Reset()
	m.frameNum = 0
	m.halted = false

	if m.loader == nil {
		return nil
	}

	if err := m.CPU.LoadProgram(m.loader); err != nil {
		logger.Log(logger.Allow, "machine", err.Error())
		return err
	}

	return nil
}

// ZeroSeed makes the results of the random number instruction predictable.
// The same program with the same input will always produce the same output.
func (m *Machine) ZeroSeed() {
	if rnd, ok := m.CPU.Random.(*random.Random); ok {
		rnd.ZeroSeed = true
	}
}

// FrameNum returns the number of frames run since the last reset.
func (m *Machine) FrameNum() int {
	return m.frameNum
}

// RunFrame decrements the timers once and then executes InstructionsPerFrame
// instructions. Emulation stops on the first error.
func (m *Machine) RunFrame() error {
	m.CPU.DecrementTimers()

	for i := 0; i < InstructionsPerFrame; i++ {
		if err := m.CPU.Step(); err != nil {
			logger.Log(logger.Allow, "machine", err.Error())
			return err
		}
	}

	m.frameNum++

	if m.CPU.Halted != m.halted {
		m.halted = m.CPU.Halted
		if m.halted {
			logger.Logf(logger.Allow, "machine", "awaiting key (frame %d)", m.frameNum)
		} else {
			logger.Logf(logger.Allow, "machine", "key received (frame %d)", m.frameNum)
		}
	}

	return nil
}

// PressKey sets the logical key to the pressed state.
func (m *Machine) PressKey(key uint8) {
	m.CPU.PressKey(key)
}

// ReleaseKey sets the logical key to the released state.
func (m *Machine) ReleaseKey(key uint8) {
	m.CPU.ReleaseKey(key)
}

// Readout returns a copy of the display.
func (m *Machine) Readout() display.Readout {
	return m.CPU.DisplayReadout()
}
