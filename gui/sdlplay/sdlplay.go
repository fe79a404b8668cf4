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
	"fmt"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/userinput"
	"github.com/jetsetilly/gopher8/version"

	"github.com/veandco/go-sdl2/sdl"
)

// SDLError is the pattern for all errors originating from the SDL library.
const SDLError = "sdl: %v"

// SdlPlay is a simple SDL implementation of the GUI interface.
type SdlPlay struct {
	window   *sdl.Window
	renderer *sdl.Renderer

	// events are sent to this channel. set with ReqSetEventChannel
	events chan userinput.Event

	// size of each display pixel in screen pixels
	scale int32

	// pixel rectangles are reused between frames
	rects []sdl.Rect

	title string
	state gui.EmulationState
}

// NewSdlPlay is the preferred method of initialisation for the SdlPlay type.
// The window is created at a scale of one. Use the ReqSetScale feature
// request to change it.
func NewSdlPlay() (*SdlPlay, error) {
	scr := &SdlPlay{
		rects: make([]sdl.Rect, 0, display.Width*display.Height),
	}

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS)
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	setupService()

	// window size is set in the setScale() function
	scr.window, err = sdl.CreateWindow(version.ApplicationName,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		display.Width, display.Height,
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf(SDLError, err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		scr.window.Destroy()
		sdl.Quit()
		return nil, curated.Errorf(SDLError, err)
	}

	scr.scale = 1

	return scr, nil
}

func (scr *SdlPlay) setScale(scale int) error {
	if scale < 1 {
		return curated.Errorf(SDLError, fmt.Sprintf("scale must be positive (%d)", scale))
	}
	scr.scale = int32(scale)
	scr.window.SetSize(display.Width*scr.scale, display.Height*scr.scale)
	logger.Logf(logger.Allow, "sdlplay", "window resized to %dx%d", display.Width*scr.scale, display.Height*scr.scale)
	return nil
}

func (scr *SdlPlay) setTitle() {
	t := version.ApplicationName
	if scr.title != "" {
		t = fmt.Sprintf("%s - %s", t, scr.title)
	}
	if scr.state == gui.StateAwaitingKey {
		t = fmt.Sprintf("%s (%s)", t, scr.state)
	}
	scr.window.SetTitle(t)
}

// Render implements the gui.GUI interface.
func (scr *SdlPlay) Render(r display.Readout) error {
	err := scr.renderer.SetDrawColor(0, 0, 0, 255)
	if err != nil {
		return curated.Errorf(SDLError, err)
	}

	err = scr.renderer.Clear()
	if err != nil {
		return curated.Errorf(SDLError, err)
	}

	scr.rects = scr.rects[:0]
	for y := range r {
		for x := range r[y] {
			if r[y][x] {
				scr.rects = append(scr.rects, sdl.Rect{
					X: int32(x) * scr.scale,
					Y: int32(y) * scr.scale,
					W: scr.scale,
					H: scr.scale,
				})
			}
		}
	}

	if len(scr.rects) > 0 {
		err = scr.renderer.SetDrawColor(255, 255, 255, 255)
		if err != nil {
			return curated.Errorf(SDLError, err)
		}

		err = scr.renderer.FillRects(scr.rects)
		if err != nil {
			return curated.Errorf(SDLError, err)
		}
	}

	scr.renderer.Present()

	return nil
}

// Destroy implements the gui.GUI interface.
func (scr *SdlPlay) Destroy() {
	if scr.renderer != nil {
		scr.renderer.Destroy()
	}
	if scr.window != nil {
		scr.window.Destroy()
	}
	sdl.Quit()
	logger.Log(logger.Allow, "sdlplay", "destroyed window")
}
