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

// Package keyboard implements the 16 key hexadecimal keypad of the machine.
//
// There is no key history, no debouncing and no repeat. The state of each
// key is simply pressed or not pressed.
package keyboard

// NumKeys is the number of keys on the keypad. Keys are indexed 0x0 to 0xf.
const NumKeys = 16

// Keyboard is the press state of every key.
type Keyboard struct {
	keys [NumKeys]bool
}

// NewKeyboard is the preferred method of initialisation for the Keyboard type.
func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

// Press the key. Keys outside of the keypad are ignored.
func (kb *Keyboard) Press(key uint8) {
	if key < NumKeys {
		kb.keys[key] = true
	}
}

// Release the key. Keys outside of the keypad are ignored.
func (kb *Keyboard) Release(key uint8) {
	if key < NumKeys {
		kb.keys[key] = false
	}
}

// IsPressed returns true if the key is pressed. Keys outside of the keypad
// are never pressed.
func (kb *Keyboard) IsPressed(key uint8) bool {
	return key < NumKeys && kb.keys[key]
}

// TakeAnyPressed finds the lowest numbered key that is pressed, releases it,
// and returns it. Returns false if no key is pressed.
func (kb *Keyboard) TakeAnyPressed() (uint8, bool) {
	for i := range kb.keys {
		if kb.keys[i] {
			kb.keys[i] = false
			return uint8(i), true
		}
	}
	return 0, false
}

// Reset releases every key.
func (kb *Keyboard) Reset() {
	kb.keys = [NumKeys]bool{}
}
