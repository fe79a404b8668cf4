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

import "github.com/jetsetilly/gopher8/hardware/memory"

// decode every word from the start of the program.
func (dsm *Disassembly) linear() {
	for offset := 0; offset < dsm.prog.Size(); offset += 2 {
		dsm.decode(uint16(memory.ProgramOrigin + offset))
	}
}
