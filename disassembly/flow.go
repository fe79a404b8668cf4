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

package disassembly

import (
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/memory"
)

// follow the flow of control from the entry point of the program. the
// destination of JumpOffset instructions can not be known so the flow of
// control ends at those instructions.
func (dsm *Disassembly) flow() {
	pending := []uint16{memory.ProgramOrigin}

	for len(pending) > 0 {
		address := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		e, ok := dsm.decode(address)
		if !ok || e.Level != EntryLevelDecoded {
			continue // for loop
		}
		e.Level = EntryLevelBlessed
		e.Next = next(e)

		pending = append(pending, e.Next...)
	}
}

// the addresses execution may continue from after the entry.
func next(e *Entry) []uint16 {
	ins := e.Instruction
	pc := e.Address + 2

	switch ins.Operation {
	case instructions.Jump:
		return []uint16{ins.NNN}
	case instructions.Call:
		return []uint16{ins.NNN, pc}
	case instructions.Return, instructions.JumpOffset:
		return nil
	case instructions.SkipEqualImmediate, instructions.SkipNotEqualImmediate,
		instructions.SkipEqualRegister, instructions.SkipNotEqualRegister,
		instructions.SkipKeyPressed, instructions.SkipKeyNotPressed:
		return []uint16{pc, pc + 2}
	}

	return []uint16{pc}
}
