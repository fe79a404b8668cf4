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

package sdlplay

import (
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/userinput"

	"github.com/veandco/go-sdl2/sdl"
)

func setupService() {
	// mouse events are of no use to us and would only fill the event queue
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)
	sdl.EventState(sdl.MOUSEBUTTONDOWN, sdl.IGNORE)
	sdl.EventState(sdl.MOUSEBUTTONUP, sdl.IGNORE)
	sdl.EventState(sdl.MOUSEWHEEL, sdl.IGNORE)
}

// Service implements the gui.GUI interface.
func (scr *SdlPlay) Service() {
	// loop until there are no more events to retrieve. all events must be
	// consumed even if there is nowhere to send them
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		if scr.events == nil {
			continue
		}

		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			scr.send(userinput.EventQuit{})

		case *sdl.KeyboardEvent:
			// key repeats are not interesting. a key remains pressed until
			// the key up event
			if ev.Repeat != 0 {
				continue
			}

			switch ev.Type {
			case sdl.KEYDOWN:
				scr.send(userinput.EventKeyboard{
					Key:  sdl.GetKeyName(ev.Keysym.Sym),
					Down: true,
				})
			case sdl.KEYUP:
				scr.send(userinput.EventKeyboard{
					Key:  sdl.GetKeyName(ev.Keysym.Sym),
					Down: false,
				})
			}
		}
	}
}

func (scr *SdlPlay) send(ev userinput.Event) {
	select {
	case scr.events <- ev:
	default:
		logger.Logf(logger.Allow, "sdlplay", "dropped input event (%T)", ev)
	}
}
