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

// list of error patterns returned by Step(). the final value of each pattern
// is the address of the instruction that caused the error.
const (
	// wraps the error returned by instructions.Decode()
	UnrecognisedInstruction = "cpu: %v at %#03x"

	StackUnderflow = "cpu: stack underflow at %#03x"

	// wraps a memory.AddressError. the second value is the instruction being
	// executed
	MemoryFault = "cpu: %v during %v at %#03x"
)
