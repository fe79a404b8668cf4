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
	"os"
	"os/signal"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/paths"
	"github.com/jetsetilly/gopher8/performance/limiter"
	"github.com/jetsetilly/gopher8/programloader"
	"github.com/jetsetilly/gopher8/recorder"
	"github.com/jetsetilly/gopher8/userinput"
)

// size of the buffered channel for userinput events
const eventChannelSize = 256

// PlayError is the pattern for errors returned by Play().
const PlayError = "playmode: %v"

type playmode struct {
	machine *hardware.Machine
	scr     gui.GUI

	controllers userinput.Controllers
	userinput   chan userinput.Event
	intChan     chan os.Signal

	// user input is forwarded to handle. this will be the machine or the
	// recorder
	handle userinput.HandleInput

	// at most one of rec and plb will be non-nil
	rec *recorder.Recorder
	plb *recorder.Playback

	// nil if the frame rate is not capped
	lmtr *limiter.FpsLimiter

	state gui.EmulationState

	// maximum number of frames to run. zero means no limit. used for testing
	maxFrames int
}

// Play attaches the program to a new machine and runs it. The function
// returns when the user quits (with a nil error) or when an error occurs.
//
// If newRecording is true then user input is recorded to the transcript
// file. A unique filename is created if the transcript is empty. If newRecording is false and a transcript is named then the input
// in the transcript is played back before control is handed to the user. In
// that case the program loader can be nil, in which case the program named
// in the transcript is used.
func Play(scr gui.GUI, ld *programloader.Loader, fpsCap bool, transcript string, newRecording bool) error {
	var plb *recorder.Playback

	if transcript != "" && !newRecording {
		var err error
		plb, err = recorder.NewPlayback(transcript)
		if err != nil {
			return curated.Errorf(PlayError, err)
		}
		if ld == nil {
			l := plb.Loader()
			ld = &l
		}
	}

	if ld == nil {
		return curated.Errorf(PlayError, "no program specified")
	}

	m := hardware.NewMachine()
	if err := m.AttachProgram(ld); err != nil {
		return curated.Errorf(PlayError, err)
	}

	pl, err := newPlaymode(m, scr, fpsCap)
	if err != nil {
		return err
	}

	if plb != nil {
		if ld.Hash != plb.ProgramHash {
			return curated.Errorf(PlayError, "program does not match the program in the playback transcript")
		}
		if err := plb.AttachToMachine(m); err != nil {
			return curated.Errorf(PlayError, err)
		}
		pl.plb = plb
		pl.handle = discardInput{}
	} else if newRecording {
		if transcript == "" {
			transcript = paths.UniqueFilename("recording", ld.ShortName())
		}
		pl.rec, err = recorder.NewRecorder(transcript, m, ld)
		if err != nil {
			return curated.Errorf(PlayError, err)
		}
		pl.handle = pl.rec

		defer func() {
			if err := pl.rec.End(); err != nil {
				logger.Log(logger.Allow, "playmode", err.Error())
			}
		}()
	}

	if err := scr.SetFeature(gui.ReqSetTitle, ld.ShortName()); err != nil {
		return curated.Errorf(PlayError, err)
	}

	// redirect interrupt signal to intChan. the interrupt is checked at the
	// start of every frame. this also means that the recording is always
	// ended correctly
	signal.Notify(pl.intChan, os.Interrupt)
	defer signal.Stop(pl.intChan)

	return pl.run()
}

func newPlaymode(m *hardware.Machine, scr gui.GUI, fpsCap bool) (*playmode, error) {
	pl := &playmode{
		machine:   m,
		scr:       scr,
		userinput: make(chan userinput.Event, eventChannelSize),
		intChan:   make(chan os.Signal, 1),
		handle:    m,
		state:     gui.StateRunning,
	}

	if fpsCap {
		var err error
		pl.lmtr, err = limiter.NewFPSLimiter(hardware.FramesPerSecond)
		if err != nil {
			return nil, curated.Errorf(PlayError, err)
		}
	}

	if err := scr.SetFeature(gui.ReqSetEventChannel, pl.userinput); err != nil {
		return nil, curated.Errorf(PlayError, err)
	}

	return pl, nil
}

func (pl *playmode) run() error {
	logger.Log(logger.Allow, "playmode", "starting")
	defer logger.Logf(logger.Allow, "playmode", "ending after %d frames", pl.machine.FrameNum())

	for {
		if pl.controllers.Quit {
			pl.setState(gui.StateEnding)
			return nil
		}

		if pl.maxFrames > 0 && pl.machine.FrameNum() >= pl.maxFrames {
			return nil
		}

		select {
		case <-pl.intChan:
			logger.Log(logger.Allow, "playmode", "interrupted")
			pl.controllers.Quit = true
			continue // for loop
		default:
		}

		pl.scr.Service()
		if pl.handleEvents() {
			continue // for loop
		}

		if err := pl.playback(); err != nil {
			return err
		}

		if err := pl.machine.RunFrame(); err != nil {
			return curated.Errorf(PlayError, err)
		}

		r := pl.machine.Readout()
		if pl.rec != nil {
			pl.rec.Frame(r)
		}
		if pl.plb != nil {
			pl.plb.Frame(r)
		}

		if pl.machine.CPU.Halted {
			pl.setState(gui.StateAwaitingKey)
		} else {
			pl.setState(gui.StateRunning)
		}

		if err := pl.scr.Render(r); err != nil {
			return curated.Errorf(PlayError, err)
		}

		if pl.lmtr != nil {
			pl.lmtr.Wait()
		}
	}
}
