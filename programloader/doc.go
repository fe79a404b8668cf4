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

// Package programloader is used to specify and load the program to run.
//
// A program is a plain sequence of bytes with no header. The bytes are loaded
// in full by Load() and are not changed afterwards. The Loader type satisfies
// the memory.Program interface and so can be handed directly to the
// LoadProgram() function of the memory or cpu packages.
//
// Programs can be loaded from the local filesystem or, if the filename is a
// http or https URL, over the network.
package programloader
