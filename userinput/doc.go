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

// Package userinput translates the events produced by a GUI into actions on
// the emulated hardware.
//
// GUI implementations produce Event values. The key names in an EventKeyboard
// are the names given to keys by SDL (eg. "Q", "4", "Escape"). Other GUI
// implementations should use the same names.
//
// The Controllers type maps sixteen physical keys on to the logical keys of
// the CHIP-8 keypad. The layout is the usual four by four block on the left
// of a QWERTY keyboard:
//
//	1 2 3 4        1 2 3 C
//	Q W E R   ->   4 5 6 D
//	A S D F        7 8 9 E
//	Z X C V        A 0 B F
//
// The Escape key is not mapped to the keypad. It quits the emulation.
package userinput
