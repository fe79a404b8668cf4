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

package userinput

import "strings"

// HandleInput is implemented by the emulation and receives the logical key
// presses and releases.
type HandleInput interface {
	PressKey(key uint8)
	ReleaseKey(key uint8)
}

// QuitKey is the name of the key that quits the emulation.
const QuitKey = "Escape"

// Keypad maps physical key names to logical keypad indices.
var Keypad = map[string]uint8{
	"X": 0x0,
	"1": 0x1,
	"2": 0x2,
	"3": 0x3,
	"Q": 0x4,
	"W": 0x5,
	"E": 0x6,
	"A": 0x7,
	"S": 0x8,
	"D": 0x9,
	"Z": 0xa,
	"C": 0xb,
	"4": 0xc,
	"R": 0xd,
	"F": 0xe,
	"V": 0xf,
}

// Controllers keeps track of the result of user input handling.
type Controllers struct {
	// is true once a quit event has been handled. it is never reset
	Quit bool
}

// HandleUserInput forwards the event to the emulation. Returns true if the
// event was a request to quit.
func (c *Controllers) HandleUserInput(ev Event, handle HandleInput) bool {
	switch ev := ev.(type) {
	case EventQuit:
		c.Quit = true

	case EventKeyboard:
		// releasing the quit key is ignored
		if ev.Key == QuitKey {
			if ev.Down {
				c.Quit = true
			}
			break
		}

		// SDL key names for letters are upper case. other GUIs might not be
		// so careful
		key, ok := Keypad[strings.ToUpper(ev.Key)]
		if !ok {
			break
		}

		if ev.Down {
			handle.PressKey(key)
		} else {
			handle.ReleaseKey(key)
		}
	}

	return c.Quit
}
