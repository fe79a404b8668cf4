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

package memory

import (
	"github.com/jetsetilly/gopher8/curated"
)

// Size of the address space in bytes.
const Size = 0x1000

// ProgramOrigin is the address at which programs are loaded and at which
// execution begins.
const ProgramOrigin = 0x200

// AddressError is the pattern for errors caused by accessing an address
// outside of the address space.
const AddressError = "memory: address out of range (%#04x)"

// Program is the source of the bytes written to memory by LoadProgram().
type Program interface {
	Size() int
	ByteAt(offset int) uint8
}

// Memory is the entire address space of the machine.
type Memory struct {
	data [Size]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	mem := &Memory{}
	mem.Reset()
	return mem
}

// Reset zeroes every address and then writes the font data.
func (mem *Memory) Reset() {
	for i := range mem.data {
		mem.data[i] = 0
	}
	copy(mem.data[FontOrigin:], Font[:])
}

// Read the byte at address.
func (mem *Memory) Read(address uint16) (uint8, error) {
	if int(address) >= Size {
		return 0, curated.Errorf(AddressError, address)
	}
	return mem.data[address], nil
}

// Write the byte to address.
func (mem *Memory) Write(address uint16, data uint8) error {
	if int(address) >= Size {
		return curated.Errorf(AddressError, address)
	}
	mem.data[address] = data
	return nil
}

// LoadProgram copies every byte of the program into memory, starting at
// ProgramOrigin. There is no check that the program fits before writing
// begins. A program that is too large will fail on the first address outside
// of the address space, leaving the bytes that did fit in place.
func (mem *Memory) LoadProgram(prog Program) error {
	for i := 0; i < prog.Size(); i++ {
		address := ProgramOrigin + i
		if address >= Size {
			return curated.Errorf(AddressError, address)
		}
		mem.data[address] = prog.ByteAt(i)
	}
	return nil
}
