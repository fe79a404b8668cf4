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
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/userinput"
)

// SetFeature implements the gui.GUI interface.
func (scr *SdlPlay) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) (returnedErr error) {
	// lazy (but clear) handling of type assertion errors
	defer func() {
		if r := recover(); r != nil {
			returnedErr = curated.Errorf("sdlplay: %v: %v", request, r)
		}
	}()

	switch request {
	case gui.ReqSetEventChannel:
		scr.events = args[0].(chan userinput.Event)

	case gui.ReqState:
		scr.state = args[0].(gui.EmulationState)
		scr.setTitle()

	case gui.ReqSetTitle:
		scr.title = args[0].(string)
		scr.setTitle()

	case gui.ReqSetScale:
		return scr.setScale(args[0].(int))

	default:
		return curated.Errorf(gui.UnsupportedGuiFeature, request)
	}

	return nil
}
