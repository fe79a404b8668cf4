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

// Package cpu is the instruction interpreter of the machine.
//
// The CPU type owns the memory, the display and the keyboard. It holds the
// sixteen general purpose registers (V0 to VF), the index register, the
// program counter, the call stack and the two timers.
//
// The bread-and-butter of the CPU type is the Step() function. Each call
// fetches, decodes and executes exactly one instruction:
//
//	mc := cpu.NewCPU(memory.NewMemory(), display.NewDisplay(), keyboard.NewKeyboard())
//	err := mc.LoadProgram(prog)
//	if err != nil {
//		return err
//	}
//
//	for {
//		err = mc.Step()
//		if err != nil {
//			return err
//		}
//	}
//
// The CPU does not decrement the timers itself. That is the responsibility of
// the host loop, which should call DecrementTimers() once per frame,
// regardless of how many instructions are executed during the frame.
//
// The key wait instruction (FX0A) halts the CPU if no key is pressed. While
// halted every call to Step() re-executes the same instruction, polling the
// keyboard, without advancing the program counter. The CPU resumes as soon as
// a key is pressed.
//
// Step() returns an error if the instruction cannot be decoded, if a return
// instruction is executed with an empty call stack or if memory is accessed
// outside of the address space. These conditions are unrecoverable but it is
// left to the caller to decide how to react. The error patterns are exported
// for use with the curated package.
package cpu
