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

// Package playmode is the main loop of the emulation. The Play() function
// runs until the user quits or the emulation encounters an error.
//
// Each iteration of the loop is a frame. During each frame:
//
//	1. the GUI is serviced and user input is forwarded to the machine
//	2. the machine runs a frame (timers then instructions)
//	3. the display is rendered by the GUI
//	4. the loop waits on the frame limiter (if enabled)
//
// The loop checks for the quit condition at the start of each frame. A quit
// is requested by the GUI (window close or the escape key) or by an
// interrupt signal (ctrl-c).
package playmode
