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

// Package disassembly creates a listing of a program's instructions.
//
// Programs contain no information about which bytes are instructions and
// which are data (sprites for example) so the disassembly is performed in
// two passes. The linear pass decodes every two-byte word from the start of
// the program. The flow pass follows the flow of control from the program's
// entry point, through jumps, calls and skips. Entries found in the flow pass
// are "blessed" and are more likely to be instructions.
//
// Instructions reached by the flow pass at an odd offset are included even
// though the linear pass will not have found them.
package disassembly
