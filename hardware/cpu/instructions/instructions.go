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

package instructions

import (
	"fmt"

	"github.com/jetsetilly/gopher8/curated"
)

// UnrecognisedInstruction is the pattern for errors returned by Decode() when
// the instruction does not match any operation.
const UnrecognisedInstruction = "unrecognised instruction (%#04x)"

// Instruction is a decoded instruction.
type Instruction struct {
	Opcode    uint16
	Operation Operation

	X   uint8
	Y   uint8
	N   uint8
	NN  uint8
	NNN uint16
}

// Decode the instruction.
func Decode(opcode uint16) (Instruction, error) {
	fam := families[opcode>>12]

	op, ok := fam.ops[opcode&fam.mask]
	if !ok {
		return Instruction{}, curated.Errorf(UnrecognisedInstruction, opcode)
	}

	return Instruction{
		Opcode:    opcode,
		Operation: op,
		X:         uint8(opcode>>8) & 0x0f,
		Y:         uint8(opcode>>4) & 0x0f,
		N:         uint8(opcode) & 0x0f,
		NN:        uint8(opcode),
		NNN:       opcode & 0x0fff,
	}, nil
}

// Family returns the top four bits of the instruction.
func (ins Instruction) Family() uint8 {
	return uint8(ins.Opcode >> 12)
}

func (ins Instruction) String() string {
	m := ins.Operation.Mnemonic()

	switch ins.Operation {
	case ClearScreen, Return:
		return m
	case Jump, Call:
		return fmt.Sprintf("%s %#03x", m, ins.NNN)
	case JumpOffset:
		return fmt.Sprintf("%s V0, %#03x", m, ins.NNN)
	case SkipEqualImmediate, SkipNotEqualImmediate, LoadImmediate, AddImmediate, Random:
		return fmt.Sprintf("%s V%X, %#02x", m, ins.X, ins.NN)
	case SkipEqualRegister, SkipNotEqualRegister, Move, Or, And, Xor, Add, Subtract, ShiftRight, SubtractReverse, ShiftLeft:
		return fmt.Sprintf("%s V%X, V%X", m, ins.X, ins.Y)
	case LoadIndex:
		return fmt.Sprintf("%s I, %#03x", m, ins.NNN)
	case Draw:
		return fmt.Sprintf("%s V%X, V%X, %d", m, ins.X, ins.Y, ins.N)
	case SkipKeyPressed, SkipKeyNotPressed:
		return fmt.Sprintf("%s V%X", m, ins.X)
	case LoadDelay:
		return fmt.Sprintf("%s V%X, DT", m, ins.X)
	case AwaitKey:
		return fmt.Sprintf("%s V%X, K", m, ins.X)
	case SetDelay:
		return fmt.Sprintf("%s DT, V%X", m, ins.X)
	case SetSound:
		return fmt.Sprintf("%s ST, V%X", m, ins.X)
	case AddIndex:
		return fmt.Sprintf("%s I, V%X", m, ins.X)
	case LoadGlyph:
		return fmt.Sprintf("%s F, V%X", m, ins.X)
	case StoreBCD:
		return fmt.Sprintf("%s B, V%X", m, ins.X)
	case StoreRegisters:
		return fmt.Sprintf("%s [I], V%X", m, ins.X)
	case LoadRegisters:
		return fmt.Sprintf("%s V%X, [I]", m, ins.X)
	}

	return fmt.Sprintf("%#04x", ins.Opcode)
}
