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

package playmode

import (
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/logger"
)

// keypad input is discarded while a playback is in progress.
type discardInput struct{}

func (discardInput) PressKey(uint8)   {}
func (discardInput) ReleaseKey(uint8) {}

// handleEvents forwards all pending user input to the machine. Returns true
// if a quit event was received. Events following the quit event are not
// handled.
func (pl *playmode) handleEvents() bool {
	for {
		select {
		case ev := <-pl.userinput:
			if pl.controllers.HandleUserInput(ev, pl.handle) {
				return true
			}
		default:
			return false
		}
	}
}

// setState notifies the GUI of changes to the emulation state.
func (pl *playmode) setState(state gui.EmulationState) {
	if pl.state == state {
		return
	}
	pl.state = state

	if err := pl.scr.SetFeature(gui.ReqState, state); err != nil {
		logger.Log(logger.Allow, "playmode", err.Error())
	}
}

// playback applies the recorded input for the coming frame. once the
// playback has ended the user has control of the keypad.
func (pl *playmode) playback() error {
	if pl.plb == nil {
		return nil
	}

	ended, err := pl.plb.EndFrame()
	if err != nil {
		return curated.Errorf(PlayError, err)
	}

	if ended {
		logger.Logf(logger.Allow, "playmode", "playback ended. user has control (frame %d)", pl.machine.FrameNum())
		pl.plb = nil
		pl.handle = pl.machine
	}

	return nil
}
