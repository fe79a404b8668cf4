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
	"github.com/jetsetilly/gopher8/hardware/display"
)

// GUI defines the operations that can be performed on visual user interfaces.
//
// None of the functions are safe to call from more than one goroutine. For SDL
// based implementations, the functions must be called from the main thread.
type GUI interface {
	// Send a request to set a GUI feature.
	SetFeature(request FeatureReq, args ...FeatureReqData) error

	// Service collects pending user input and forwards it to the event
	// channel set with ReqSetEventChannel. Should be called once per frame.
	Service()

	// Render presents the display. The readout is entirely redrawn each time.
	Render(r display.Readout) error

	// Destroy releases all resources used by the GUI.
	Destroy()
}

// UnsupportedGuiFeature is returned by SetFeature() for requests that the GUI
// does not handle.
const UnsupportedGuiFeature = "unsupported gui feature: %v"
