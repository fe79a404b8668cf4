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

// Package test contains helper functions that remove common boilerplate from
// the test files in the project.
//
// ExpectedSuccess() and ExpectedFailure() test a value for a success or
// failure condition appropriate to its type. For bool values true is success
// and for error values nil is success. Note that an untyped nil is also
// considered a success because that is how a nil error arrives in an
// interface{} argument.
//
// Equate() compares two values of the same type. For convenience the narrow
// unsigned types used throughout the hardware packages (uint8 and uint16) can
// be compared against an untyped integer constant.
//
// The Demand*() functions are like the Expect*() functions except that a
// failure is fatal to the test. Useful when the value being tested is used in
// subsequent tests.
//
// CompareWriter implements io.Writer and can be used to capture output that
// should be compared against a known string.
package test
