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

// FeatureReq is used to request the setting of a gui attribute
// eg. toggling the scale.
type FeatureReq string

// FeatureReqData represents the information associated with a FeatureReq. See
// commentary for the defined FeatureReq values for the underlying type.
type FeatureReqData interface{}

// EmulationState indicates to the GUI the current state of the emulation.
type EmulationState int

// List of valid emulation states.
const (
	StateRunning EmulationState = iota
	StateAwaitingKey
	StateEnding
)

func (s EmulationState) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateAwaitingKey:
		return "awaiting key"
	case StateEnding:
		return "ending"
	}
	return "unknown state"
}

// List of valid feature requests. argument must be of the type specified or
// else the interface{} type conversion will fail and the application will
// probably crash.
const (
	// the channel user input events are sent to. events should be sent
	// without blocking
	ReqSetEventChannel FeatureReq = "ReqSetEventChannel" // chan userinput.Event

	// notify GUI of emulation state
	ReqState FeatureReq = "ReqState" // EmulationState

	// the name of the program being run
	ReqSetTitle FeatureReq = "ReqSetTitle" // string

	// magnification of the display. not all GUIs support this
	ReqSetScale FeatureReq = "ReqSetScale" // int
)
