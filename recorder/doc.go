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

// Package recorder handles the recording and playback of user input.
//
// A Recorder is created for a machine that has just had a program attached.
// It sits between the user input and the machine (it implements the
// userinput.HandleInput interface) and writes every key press and release to
// a transcript file, along with the frame number and the video digest at the
// moment of the event. The Frame() function must be called with the display
// readout at the end of every frame.
//
// A Playback reads a transcript and feeds the recorded input to a machine at
// the recorded frame. The video digest is checked at every event and a
// mismatch is an error. A successful playback is therefore proof that the
// emulation has not changed in any way that affects the program's output.
//
// The random number instruction is zero seeded for both recording and
// playback.
package recorder
