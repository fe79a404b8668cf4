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

package termplay

import (
	"strings"

	"github.com/jetsetilly/gopher8/gui/termplay/easyterm"
	"github.com/jetsetilly/gopher8/userinput"
)

// the number of frames a key is held down after it has been read
const holdFrames = 10

// keyHold tracks the keys that have been read from the terminal and are
// considered to be pressed.
type keyHold struct {
	held map[string]int
}

func newKeyHold() keyHold {
	return keyHold{held: make(map[string]int)}
}

// tick counts down the hold period of each key. keys for which the hold
// period has expired are released.
func (k *keyHold) tick(send func(userinput.Event)) {
	for key, n := range k.held {
		n--
		if n <= 0 {
			delete(k.held, key)
			send(userinput.EventKeyboard{Key: key, Down: false})
		} else {
			k.held[key] = n
		}
	}
}

// input decodes bytes read from the terminal.
func (k *keyHold) input(b []byte, send func(userinput.Event)) {
	for i := 0; i < len(b); i++ {
		switch b[i] {
		case easyterm.KeyCtrlC:
			send(userinput.EventQuit{})
			return

		case easyterm.KeyEsc:
			// a lone escape byte is the escape key. otherwise it is the start
			// of an escape sequence, which we skip
			if i+1 >= len(b) || b[i+1] != easyterm.KeyEscCursor {
				send(userinput.EventKeyboard{Key: userinput.QuitKey, Down: true})
				return
			}
			i++
			for i+1 < len(b) && (b[i+1] < 0x40 || b[i+1] > 0x7e) {
				i++
			}
			i++

		default:
			if b[i] < 0x20 || b[i] >= 0x7f {
				continue
			}

			key := strings.ToUpper(string(b[i]))
			if _, ok := k.held[key]; !ok {
				send(userinput.EventKeyboard{Key: key, Down: true})
			}
			k.held[key] = holdFrames
		}
	}
}
