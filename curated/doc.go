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

// Package curated provides an implementation of the error interface that
// remembers the pattern it was created with.
//
// Errors are created with Errorf(), which takes a pattern and values in the
// same way as fmt.Errorf(). The pattern is what distinguishes one curated
// error from another and so patterns that are tested for should be stored as
// exported constants in the package that produces them. For example, the
// memory package exports the AddressError pattern:
//
//	err := mem.Write(0x1000, 0xff)
//	if curated.Is(err, memory.AddressError) {
//		...
//	}
//
// Has() is similar to Is() but searches the entire chain of wrapped curated
// errors:
//
//	err := curated.Errorf("cpu: %v", curated.Errorf(memory.AddressError, 0x1000))
//	curated.Is(err, memory.AddressError)  // false
//	curated.Has(err, memory.AddressError) // true
//
// IsAny() answers whether an error was created by Errorf() at all. This is
// useful for separating expected error conditions from unexpected ones.
//
// The string returned by Error() is normalised so that duplicate adjacent
// parts of the message are removed. Parts are separated by the sub-string
// ": ". This means that a package can wrap errors with its own prefix without
// worrying whether the error already carries that prefix:
//
//	cpu: cpu: stack underflow
//
// becomes
//
//	cpu: stack underflow
package curated
