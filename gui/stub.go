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

package gui

import (
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/userinput"
)

// Stub implements the GUI interface without presenting anything. Events can
// be queued for delivery by Service() and the most recent Render() is kept.
//
// Useful for testing and for headless operation.
type Stub struct {
	// events to be sent on the next call to Service(). indexed by the number
	// of Service() calls that have been made
	Events map[int][]userinput.Event

	// number of calls to Service() and Render()
	Serviced int
	Rendered int

	// most recent state sent with ReqState
	State EmulationState

	// most recent Render()
	Readout display.Readout

	events chan userinput.Event
}

// SetFeature implements the GUI interface.
func (stb *Stub) SetFeature(request FeatureReq, args ...FeatureReqData) error {
	switch request {
	case ReqSetEventChannel:
		stb.events = args[0].(chan userinput.Event)
	case ReqState:
		stb.State = args[0].(EmulationState)
	case ReqSetTitle:
	default:
		return curated.Errorf(UnsupportedGuiFeature, request)
	}
	return nil
}

// Service implements the GUI interface.
func (stb *Stub) Service() {
	if stb.events != nil {
		for _, ev := range stb.Events[stb.Serviced] {
			stb.events <- ev
		}
	}
	stb.Serviced++
}

// Render implements the GUI interface.
func (stb *Stub) Render(r display.Readout) error {
	stb.Readout = r
	stb.Rendered++
	return nil
}

// Destroy implements the GUI interface.
func (stb *Stub) Destroy() {
}
