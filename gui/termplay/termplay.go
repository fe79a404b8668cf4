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
	"fmt"
	"os"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/gui/termplay/easyterm"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/userinput"
	"github.com/jetsetilly/gopher8/version"
)

// TermPlay implements the GUI interface for a text terminal.
type TermPlay struct {
	term easyterm.Terminal

	// events are sent to this channel. set with ReqSetEventChannel
	events chan userinput.Event

	keys  keyHold
	input []byte

	title string
	state gui.EmulationState

	// output is built here before being written to the terminal in one go
	sb strings.Builder
}

// NewTermPlay is the preferred method of initialisation for the TermPlay
// type. The terminal is put into raw mode until Destroy() is called.
func NewTermPlay(input, output *os.File) (*TermPlay, error) {
	trm := &TermPlay{
		keys:  newKeyHold(),
		input: make([]byte, 64),
	}

	err := trm.term.Initialise(input, output)
	if err != nil {
		return nil, err
	}

	err = trm.term.RawMode()
	if err != nil {
		trm.term.CleanUp()
		return nil, err
	}

	trm.term.Print("%s%s", easyterm.ClearScreen, easyterm.CursorHide)

	g := trm.term.Geometry()
	logger.Logf(logger.Allow, "termplay", "terminal is %dx%d", g.Cols, g.Rows)

	return trm, nil
}

// SetFeature implements the gui.GUI interface.
func (trm *TermPlay) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) (returnedErr error) {
	defer func() {
		if r := recover(); r != nil {
			returnedErr = curated.Errorf("termplay: %v: %v", request, r)
		}
	}()

	switch request {
	case gui.ReqSetEventChannel:
		trm.events = args[0].(chan userinput.Event)
	case gui.ReqState:
		trm.state = args[0].(gui.EmulationState)
	case gui.ReqSetTitle:
		trm.title = args[0].(string)
	default:
		return curated.Errorf(gui.UnsupportedGuiFeature, request)
	}

	return nil
}

// Service implements the gui.GUI interface.
func (trm *TermPlay) Service() {
	trm.keys.tick(trm.send)

	for {
		n, err := trm.term.ReadKeys(trm.input)
		if err != nil {
			logger.Log(logger.Allow, "termplay", err.Error())
			return
		}
		if n == 0 {
			return
		}
		trm.keys.input(trm.input[:n], trm.send)
	}
}

func (trm *TermPlay) send(ev userinput.Event) {
	if trm.events == nil {
		return
	}
	select {
	case trm.events <- ev:
	default:
		logger.Logf(logger.Allow, "termplay", "dropped input event (%T)", ev)
	}
}

// Render implements the gui.GUI interface.
func (trm *TermPlay) Render(r display.Readout) error {
	trm.sb.Reset()
	trm.sb.WriteString(easyterm.CursorHome)

	g := trm.term.Geometry()
	if g.Cols < display.Width || g.Rows < displayRows+1 {
		trm.sb.WriteString(easyterm.ClearScreen)
		trm.sb.WriteString(fmt.Sprintf("terminal too small (%dx%d)", g.Cols, g.Rows))
	} else {
		drawReadout(&trm.sb, r)
		trm.sb.WriteString(easyterm.InversePen)
		trm.sb.WriteString(trm.status())
		trm.sb.WriteString(easyterm.NormalPen)
		trm.sb.WriteString(easyterm.ClearToEnd)
	}

	_, err := trm.term.Write([]byte(trm.sb.String()))
	if err != nil {
		return curated.Errorf("termplay: %v", err)
	}
	return nil
}

func (trm *TermPlay) status() string {
	s := version.ApplicationName
	if trm.title != "" {
		s = fmt.Sprintf("%s - %s", s, trm.title)
	}
	if trm.state == gui.StateAwaitingKey {
		s = fmt.Sprintf("%s (%s)", s, trm.state)
	}
	return s
}

// Destroy implements the gui.GUI interface.
func (trm *TermPlay) Destroy() {
	trm.term.Print("%s%s%s", easyterm.NormalPen, easyterm.CursorShow, "\r\n")
	trm.term.CleanUp()
	logger.Log(logger.Allow, "termplay", "restored terminal")
}
