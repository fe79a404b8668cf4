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

// Package memory implements the 4096 byte address space of the machine.
//
// The lowest addresses are occupied by the hexadecimal font. The glyphs are
// written when the memory is created and whenever it is Reset(). Programs
// are loaded at ProgramOrigin and must not overwrite the font.
//
// Accessing an address outside of the address space is an error. Errors are
// created with the curated package and can be tested for with the
// AddressError pattern.
package memory
