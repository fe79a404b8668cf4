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
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/memory"
)

// execute the decoded instruction. pc is the address the instruction was
// fetched from.
func (mc *CPU) execute(ins instructions.Instruction, pc uint16) error {
	switch ins.Operation {
	case instructions.ClearScreen:
		mc.display.Clear()

	case instructions.Return:
		if len(mc.Stack) == 0 {
			return curated.Errorf(StackUnderflow, pc)
		}
		mc.PC = mc.Stack[len(mc.Stack)-1]
		mc.Stack = mc.Stack[:len(mc.Stack)-1]

	case instructions.Jump:
		mc.PC = ins.NNN

	case instructions.Call:
		mc.Stack = append(mc.Stack, mc.PC)
		mc.PC = ins.NNN

	case instructions.SkipEqualImmediate:
		mc.skipIf(mc.V[ins.X] == ins.NN)

	case instructions.SkipNotEqualImmediate:
		mc.skipIf(mc.V[ins.X] != ins.NN)

	case instructions.SkipEqualRegister:
		mc.skipIf(mc.V[ins.X] == mc.V[ins.Y])

	case instructions.SkipNotEqualRegister:
		mc.skipIf(mc.V[ins.X] != mc.V[ins.Y])

	case instructions.LoadImmediate:
		mc.V[ins.X] = ins.NN

	case instructions.AddImmediate:
		// no carry flag for this instruction
		mc.V[ins.X] += ins.NN

	case instructions.Move:
		mc.V[ins.X] = mc.V[ins.Y]

	case instructions.Or:
		mc.V[ins.X] |= mc.V[ins.Y]

	case instructions.And:
		mc.V[ins.X] &= mc.V[ins.Y]

	case instructions.Xor:
		mc.V[ins.X] ^= mc.V[ins.Y]

	case instructions.Add:
		sum := uint16(mc.V[ins.X]) + uint16(mc.V[ins.Y])
		mc.V[ins.X] = uint8(sum)
		mc.V[FlagRegister] = uint8(sum >> 8)

	case instructions.Subtract:
		mc.V[ins.X], mc.V[FlagRegister] = subtract(mc.V[ins.X], mc.V[ins.Y])

	case instructions.SubtractReverse:
		mc.V[ins.X], mc.V[FlagRegister] = subtract(mc.V[ins.Y], mc.V[ins.X])

	case instructions.ShiftRight:
		v := mc.V[ins.Y]
		mc.V[ins.X] = v >> 1
		mc.V[FlagRegister] = v & 0x01

	case instructions.ShiftLeft:
		v := mc.V[ins.Y]
		mc.V[ins.X] = v << 1
		mc.V[FlagRegister] = v >> 7

	case instructions.LoadIndex:
		mc.I = ins.NNN

	case instructions.JumpOffset:
		mc.PC = ins.NNN + uint16(mc.V[0])

	case instructions.Random:
		mc.V[ins.X] = mc.Random.Byte() & ins.NN

	case instructions.Draw:
		return mc.draw(ins)

	case instructions.SkipKeyPressed:
		mc.skipIf(mc.keyboard.IsPressed(mc.V[ins.X]))

	case instructions.SkipKeyNotPressed:
		mc.skipIf(!mc.keyboard.IsPressed(mc.V[ins.X]))

	case instructions.LoadDelay:
		mc.V[ins.X] = mc.DelayTimer

	case instructions.AwaitKey:
		mc.Halted = true
		if key, ok := mc.keyboard.TakeAnyPressed(); ok {
			mc.Halted = false
			mc.V[ins.X] = key
		}

	case instructions.SetDelay:
		mc.DelayTimer = mc.V[ins.X]

	case instructions.SetSound:
		mc.SoundTimer = mc.V[ins.X]

	case instructions.AddIndex:
		mc.I += uint16(mc.V[ins.X])

	case instructions.LoadGlyph:
		mc.I = memory.FontOrigin + uint16(mc.V[ins.X])*memory.GlyphSize

	case instructions.StoreBCD:
		v := mc.V[ins.X]
		for i, d := range [3]uint8{v / 100, (v / 10) % 10, v % 10} {
			if err := mc.mem.Write(mc.I+uint16(i), d); err != nil {
				return err
			}
		}

	case instructions.StoreRegisters:
		for i := uint16(0); i <= uint16(ins.X); i++ {
			if err := mc.mem.Write(mc.I+i, mc.V[i]); err != nil {
				return err
			}
		}
		mc.I += uint16(ins.X) + 1

	case instructions.LoadRegisters:
		for i := uint16(0); i <= uint16(ins.X); i++ {
			v, err := mc.mem.Read(mc.I + i)
			if err != nil {
				return err
			}
			mc.V[i] = v
		}
		mc.I += uint16(ins.X) + 1
	}

	return nil
}

// skip the next instruction if the condition is true.
func (mc *CPU) skipIf(condition bool) {
	if condition {
		mc.PC += 2
	}
}

// subtract b from a. the flag is 1 if there was no borrow.
func subtract(a, b uint8) (uint8, uint8) {
	if a >= b {
		return a - b, 1
	}
	return a - b, 0
}

// draw the sprite at the index register. the flag register is set if any
// pixel was changed from set to unset.
func (mc *CPU) draw(ins instructions.Instruction) error {
	x := int(mc.V[ins.X])
	y := mc.V[ins.Y]

	collision := false

	for row := uint16(0); row < uint16(ins.N); row++ {
		data, err := mc.mem.Read(mc.I + row)
		if err != nil {
			return err
		}

		// the row wraps on the eight bit boundary before being wrapped to
		// the display height
		dy := int(y) % display.Height

		// most significant bit is drawn leftmost
		for bit := 7; bit >= 0; bit-- {
			dx := (x + 7 - bit) % display.Width
			if mc.display.SetPixel(dx, dy, (data>>bit)&0x01) {
				collision = true
			}
		}

		y++
	}

	if collision {
		mc.V[FlagRegister] = 1
	} else {
		mc.V[FlagRegister] = 0
	}

	return nil
}
