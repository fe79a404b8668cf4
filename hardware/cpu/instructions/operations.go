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

// Operation identifies what an instruction does.
type Operation int

// List of operations.
const (
	ClearScreen Operation = iota
	Return
	Jump
	Call
	SkipEqualImmediate
	SkipNotEqualImmediate
	SkipEqualRegister
	LoadImmediate
	AddImmediate
	Move
	Or
	And
	Xor
	Add
	Subtract
	ShiftRight
	SubtractReverse
	ShiftLeft
	SkipNotEqualRegister
	LoadIndex
	JumpOffset
	Random
	Draw
	SkipKeyPressed
	SkipKeyNotPressed
	LoadDelay
	AwaitKey
	SetDelay
	SetSound
	AddIndex
	LoadGlyph
	StoreBCD
	StoreRegisters
	LoadRegisters
)

// Mnemonic returns the conventional assembly language name of the operation.
func (op Operation) Mnemonic() string {
	switch op {
	case ClearScreen:
		return "CLS"
	case Return:
		return "RET"
	case Jump, JumpOffset:
		return "JP"
	case Call:
		return "CALL"
	case SkipEqualImmediate, SkipEqualRegister:
		return "SE"
	case SkipNotEqualImmediate, SkipNotEqualRegister:
		return "SNE"
	case Or:
		return "OR"
	case And:
		return "AND"
	case Xor:
		return "XOR"
	case AddImmediate, Add, AddIndex:
		return "ADD"
	case Subtract:
		return "SUB"
	case ShiftRight:
		return "SHR"
	case SubtractReverse:
		return "SUBN"
	case ShiftLeft:
		return "SHL"
	case Random:
		return "RND"
	case Draw:
		return "DRW"
	case SkipKeyPressed:
		return "SKP"
	case SkipKeyNotPressed:
		return "SKNP"
	}
	return "LD"
}

// family describes how the instructions of one family are decoded. a mask of
// zero means the family has exactly one operation, stored with the key zero.
type family struct {
	mask uint16
	ops  map[uint16]Operation
}

var families = [16]family{
	0x0: {mask: 0x0fff, ops: map[uint16]Operation{
		0x0e0: ClearScreen,
		0x0ee: Return,
	}},
	0x1: {ops: map[uint16]Operation{0: Jump}},
	0x2: {ops: map[uint16]Operation{0: Call}},
	0x3: {ops: map[uint16]Operation{0: SkipEqualImmediate}},
	0x4: {ops: map[uint16]Operation{0: SkipNotEqualImmediate}},
	0x5: {ops: map[uint16]Operation{0: SkipEqualRegister}},
	0x6: {ops: map[uint16]Operation{0: LoadImmediate}},
	0x7: {ops: map[uint16]Operation{0: AddImmediate}},
	0x8: {mask: 0x000f, ops: map[uint16]Operation{
		0x0: Move,
		0x1: Or,
		0x2: And,
		0x3: Xor,
		0x4: Add,
		0x5: Subtract,
		0x6: ShiftRight,
		0x7: SubtractReverse,
		0xe: ShiftLeft,
	}},
	0x9: {ops: map[uint16]Operation{0: SkipNotEqualRegister}},
	0xa: {ops: map[uint16]Operation{0: LoadIndex}},
	0xb: {ops: map[uint16]Operation{0: JumpOffset}},
	0xc: {ops: map[uint16]Operation{0: Random}},
	0xd: {ops: map[uint16]Operation{0: Draw}},
	0xe: {mask: 0x00ff, ops: map[uint16]Operation{
		0x9e: SkipKeyPressed,
		0xa1: SkipKeyNotPressed,
	}},
	0xf: {mask: 0x00ff, ops: map[uint16]Operation{
		0x07: LoadDelay,
		0x0a: AwaitKey,
		0x15: SetDelay,
		0x18: SetSound,
		0x1e: AddIndex,
		0x29: LoadGlyph,
		0x33: StoreBCD,
		0x55: StoreRegisters,
		0x65: LoadRegisters,
	}},
}
