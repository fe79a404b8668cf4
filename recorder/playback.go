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

package recorder

import (
	"fmt"
	"os"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/digest"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/programloader"
)

// Patterns for errors returned during playback. A PlaybackHashError means
// that the transcript was read correctly but that the emulation did not
// produce the recorded output.
const (
	PlaybackError     = "playback: %v"
	PlaybackHashError = "playback: digest mismatch at frame %d (line %d)"
)

type playbackEntry struct {
	frame int
	event string
	key   uint8
	hash  string

	// the line in the transcript the entry appears
	line int
}

// Playback feeds the input in a transcript to a machine.
type Playback struct {
	Transcript string

	// the program information from the transcript header
	ProgramName string
	ProgramHash string

	sequence []playbackEntry
	seqCt    int

	machine *hardware.Machine
	digest  *digest.Video

	// the frame of the end event
	endFrame int
}

// NewPlayback reads and parses the transcript.
func NewPlayback(transcript string) (*Playback, error) {
	data, err := os.ReadFile(transcript)
	if err != nil {
		return nil, curated.Errorf(PlaybackError, err)
	}

	plb := &Playback{
		Transcript: transcript,
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if err := plb.readHeader(lines); err != nil {
		return nil, err
	}

	prevFrame := 0
	for i := numHeaderLines; i < len(lines); i++ {
		entry, err := parseEntry(lines[i], i+1)
		if err != nil {
			return nil, err
		}
		if entry.frame < prevFrame {
			return nil, curated.Errorf(PlaybackError, fmt.Sprintf("frame number goes backwards at line %d", i+1))
		}
		prevFrame = entry.frame

		plb.sequence = append(plb.sequence, entry)

		if entry.event == eventEnd {
			if i != len(lines)-1 {
				return nil, curated.Errorf(PlaybackError, fmt.Sprintf("end event is not last at line %d", i+1))
			}
			plb.endFrame = entry.frame
		}
	}

	if len(plb.sequence) == 0 || plb.sequence[len(plb.sequence)-1].event != eventEnd {
		return nil, curated.Errorf(PlaybackError, "transcript is truncated")
	}

	return plb, nil
}

// Loader returns a program loader for the program named in the transcript.
// Loading will fail if the program does not match the recorded hash.
func (plb *Playback) Loader() programloader.Loader {
	ld := programloader.NewLoader(plb.ProgramName)
	ld.Hash = plb.ProgramHash
	return ld
}

// AttachToMachine prepares the machine for playback. The machine should have
// had the program attached immediately beforehand.
func (plb *Playback) AttachToMachine(m *hardware.Machine) error {
	if m.FrameNum() != 0 {
		return curated.Errorf(PlaybackError, "machine has already started")
	}

	plb.machine = m
	plb.digest = digest.NewVideo()
	plb.seqCt = 0

	m.ZeroSeed()

	return nil
}

func (plb *Playback) String() string {
	if plb.machine == nil || plb.endFrame == 0 {
		return fmt.Sprintf("%d/%d", 0, plb.endFrame)
	}
	curr := plb.machine.FrameNum()
	return fmt.Sprintf("%d/%d (%.1f%%)", curr, plb.endFrame, 100*(float64(curr)/float64(plb.endFrame)))
}

// EndFrame applies the input recorded for the current frame. It should be
// called before every frame is run. Returns true once the end of the
// transcript has been reached.
func (plb *Playback) EndFrame() (bool, error) {
	if plb.machine == nil {
		return false, curated.Errorf(PlaybackError, "no machine attached")
	}

	frame := plb.machine.FrameNum()

	for plb.seqCt < len(plb.sequence) {
		entry := plb.sequence[plb.seqCt]
		if entry.frame > frame {
			return false, nil
		}

		if entry.hash != plb.digest.Hash() {
			return false, curated.Errorf(PlaybackHashError, frame, entry.line)
		}

		switch entry.event {
		case eventPress:
			plb.machine.PressKey(entry.key)
		case eventRelease:
			plb.machine.ReleaseKey(entry.key)
		case eventEnd:
			logger.Logf(logger.Allow, "playback", "%s ended successfully after %d frames", plb.Transcript, frame)
			return true, nil
		}

		plb.seqCt++
	}

	return false, nil
}

// Frame should be called with the display readout at the end of every frame.
func (plb *Playback) Frame(r display.Readout) {
	plb.digest.Frame(r)
}

// Run the attached machine until the end of the transcript. The progress
// function is called once per frame and may be nil.
func (plb *Playback) Run(progress func()) error {
	for {
		ended, err := plb.EndFrame()
		if err != nil {
			return err
		}
		if ended {
			return nil
		}

		if err := plb.machine.RunFrame(); err != nil {
			return curated.Errorf(PlaybackError, err)
		}
		plb.Frame(plb.machine.Readout())

		if progress != nil {
			progress()
		}
	}
}
