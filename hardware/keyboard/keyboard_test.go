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

package keyboard_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/keyboard"
	"github.com/jetsetilly/gopher8/test"
)

func TestPressRelease(t *testing.T) {
	kb := keyboard.NewKeyboard()

	for k := uint8(0); k < keyboard.NumKeys; k++ {
		test.ExpectedFailure(t, kb.IsPressed(k))
	}

	kb.Press(0xa)
	test.ExpectedSuccess(t, kb.IsPressed(0xa))
	test.ExpectedFailure(t, kb.IsPressed(0xb))

	kb.Release(0xa)
	test.ExpectedFailure(t, kb.IsPressed(0xa))

	// out of range keys
	kb.Press(0x10)
	test.ExpectedFailure(t, kb.IsPressed(0x10))
	test.ExpectedFailure(t, kb.IsPressed(0x0))
	kb.Release(0xff)
}

func TestTakeAnyPressed(t *testing.T) {
	kb := keyboard.NewKeyboard()

	_, ok := kb.TakeAnyPressed()
	test.ExpectedFailure(t, ok)

	// lowest index wins
	kb.Press(0xc)
	kb.Press(0x3)
	key, ok := kb.TakeAnyPressed()
	test.ExpectedSuccess(t, ok)
	test.Equate(t, key, 0x3)

	// the key found is released
	test.ExpectedFailure(t, kb.IsPressed(0x3))
	test.ExpectedSuccess(t, kb.IsPressed(0xc))

	key, ok = kb.TakeAnyPressed()
	test.ExpectedSuccess(t, ok)
	test.Equate(t, key, 0xc)

	_, ok = kb.TakeAnyPressed()
	test.ExpectedFailure(t, ok)
}

func TestReset(t *testing.T) {
	kb := keyboard.NewKeyboard()
	kb.Press(0x0)
	kb.Press(0xf)
	kb.Reset()

	_, ok := kb.TakeAnyPressed()
	test.ExpectedFailure(t, ok)
}
