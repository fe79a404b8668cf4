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

package gui_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/test"
	"github.com/jetsetilly/gopher8/userinput"
)

func TestStub(t *testing.T) {
	var stb gui.Stub
	var g gui.GUI = &stb

	events := make(chan userinput.Event, 4)
	test.DemandSuccess(t, g.SetFeature(gui.ReqSetEventChannel, events))

	stb.Events = map[int][]userinput.Event{
		1: {userinput.EventQuit{}},
	}

	g.Service()
	test.Equate(t, len(events), 0)
	g.Service()
	test.Equate(t, len(events), 1)
	test.Equate(t, stb.Serviced, 2)

	test.DemandSuccess(t, g.SetFeature(gui.ReqState, gui.StateAwaitingKey))
	test.Equate(t, stb.State.String(), "awaiting key")

	err := g.SetFeature(gui.ReqSetScale, 2)
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, gui.UnsupportedGuiFeature))
}
