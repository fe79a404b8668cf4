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

// Package termplay implements the GUI interface for a text terminal. The
// display is drawn with Unicode half-block characters so that each character
// cell shows two rows of pixels. The terminal must be at least 64 columns
// wide and 17 rows high.
//
// Terminals do not report when a key is released. A key read from the
// terminal is instead held down for a short number of frames. Keys that
// auto-repeat are held for as long as the repeat continues.
//
// The ESC key or Ctrl-C will quit the emulation.
package termplay
