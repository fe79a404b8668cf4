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

// Package instructions decodes the two byte instructions of the machine.
//
// Decoding happens in two stages. The top four bits of an instruction select
// the family. Families that contain more than one operation are decoded
// further by applying the family's mask to the instruction and looking up the
// result in the family's table of operations. An instruction that has no
// operation at either stage cannot be decoded.
//
// The Instruction type also contains the operand fields of the instruction.
// Not every field is meaningful for every operation. The fields are named in
// the conventional manner:
//
//	X	bits 8 to 11
//	Y	bits 4 to 7
//	N	bits 0 to 3
//	NN	bits 0 to 7
//	NNN	bits 0 to 11
package instructions
