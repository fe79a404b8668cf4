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
	"io"
	"os"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/digest"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/programloader"
)

// RecordingError is the pattern used for errors during recording.
const RecordingError = "recording: %v"

// Recorder transcribes user input to a file.
type Recorder struct {
	transcript string
	output     io.WriteCloser

	machine *hardware.Machine
	digest  *digest.Video
}

// NewRecorder creates a transcript file for the machine. The machine should
// have had the program attached immediately beforehand and not yet run any
// frames.
func NewRecorder(transcript string, m *hardware.Machine, ld *programloader.Loader) (*Recorder, error) {
	if m.FrameNum() != 0 {
		return nil, curated.Errorf(RecordingError, "machine has already started")
	}
	if !ld.HasLoaded() {
		return nil, curated.Errorf(RecordingError, "program has not been loaded")
	}

	f, err := os.Create(transcript)
	if err != nil {
		return nil, curated.Errorf(RecordingError, err)
	}

	rec := &Recorder{
		transcript: transcript,
		output:     f,
		machine:    m,
		digest:     digest.NewVideo(),
	}

	m.ZeroSeed()

	if err := rec.writeHeader(ld.Filename, ld.Hash); err != nil {
		f.Close()
		return nil, err
	}

	logger.Logf(logger.Allow, "recorder", "recording to %s", transcript)

	return rec, nil
}

func (rec *Recorder) write(line string) error {
	n, err := fmt.Fprintln(rec.output, line)
	if err != nil {
		return curated.Errorf(RecordingError, err)
	}
	if n != len(line)+1 {
		return curated.Errorf(RecordingError, "output truncated")
	}
	return nil
}

// Transcript returns the name of the transcript file.
func (rec *Recorder) Transcript() string {
	return rec.transcript
}

// PressKey implements the userinput.HandleInput interface.
func (rec *Recorder) PressKey(key uint8) {
	rec.transcribe(eventPress, key)
	rec.machine.PressKey(key)
}

// ReleaseKey implements the userinput.HandleInput interface.
func (rec *Recorder) ReleaseKey(key uint8) {
	rec.transcribe(eventRelease, key)
	rec.machine.ReleaseKey(key)
}

func (rec *Recorder) transcribe(event string, key uint8) {
	// the machine ignores keys that are out of range. don't record them
	if key > 0xf {
		return
	}
	if err := rec.writeEntry(event, fmt.Sprintf("%X", key)); err != nil {
		logger.Log(logger.Allow, "recorder", err.Error())
	}
}

// Frame should be called with the display readout at the end of every frame.
func (rec *Recorder) Frame(r display.Readout) {
	rec.digest.Frame(r)
}

// End the recording and close the transcript file.
func (rec *Recorder) End() error {
	err := rec.writeEntry(eventEnd, noKey)

	if cerr := rec.output.Close(); cerr != nil && err == nil {
		err = curated.Errorf(RecordingError, cerr)
	}

	logger.Logf(logger.Allow, "recorder", "recording ended after %d frames", rec.machine.FrameNum())

	return err
}
