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
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// NotAPlaybackFile is the pattern returned by IsPlaybackFile() when the file
// is not a transcript.
const NotAPlaybackFile = "not a playback file: %v"

// the first line of every transcript
const magicString = "gopher8 recording"

// header lines
const (
	lineMagic int = iota
	lineProgramName
	lineProgramHash
	numHeaderLines
)

// fields of every line after the header
const (
	fieldFrame int = iota
	fieldEvent
	fieldKey
	fieldHash
	numFields
)

const fieldSep = ", "

// event names used in the transcript
const (
	eventPress   = "press"
	eventRelease = "release"
	eventEnd     = "end"
)

// placeholder key for the end event
const noKey = "-"

// IsPlaybackFile checks whether the file looks like a transcript. Returns nil
// if it does.
func IsPlaybackFile(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return curated.Errorf(NotAPlaybackFile, err)
	}
	defer f.Close()

	s := bufio.NewScanner(f)
	if !s.Scan() || s.Text() != magicString {
		return curated.Errorf(NotAPlaybackFile, filename)
	}

	return nil
}

func (rec *Recorder) writeHeader(name string, hash string) error {
	lines := make([]string, numHeaderLines)
	lines[lineMagic] = magicString
	lines[lineProgramName] = name
	lines[lineProgramHash] = hash

	return rec.write(strings.Join(lines, "\n"))
}

func (rec *Recorder) writeEntry(event string, key string) error {
	fields := make([]string, numFields)
	fields[fieldFrame] = strconv.Itoa(rec.machine.FrameNum())
	fields[fieldEvent] = event
	fields[fieldKey] = key
	fields[fieldHash] = rec.digest.Hash()

	return rec.write(strings.Join(fields, fieldSep))
}

func (plb *Playback) readHeader(lines []string) error {
	if len(lines) < numHeaderLines {
		return curated.Errorf(PlaybackError, "transcript header is incomplete")
	}
	if lines[lineMagic] != magicString {
		return curated.Errorf(NotAPlaybackFile, plb.Transcript)
	}

	plb.ProgramName = lines[lineProgramName]
	plb.ProgramHash = lines[lineProgramHash]

	return nil
}

func parseEntry(line string, lineNum int) (playbackEntry, error) {
	toks := strings.Split(line, fieldSep)
	if len(toks) != numFields {
		return playbackEntry{}, curated.Errorf(PlaybackError, fmt.Sprintf("expected %d fields at line %d", numFields, lineNum))
	}

	entry := playbackEntry{
		event: toks[fieldEvent],
		hash:  toks[fieldHash],
		line:  lineNum,
	}

	var err error

	entry.frame, err = strconv.Atoi(toks[fieldFrame])
	if err != nil {
		return playbackEntry{}, curated.Errorf(PlaybackError, fmt.Sprintf("%v at line %d", err, lineNum))
	}

	switch entry.event {
	case eventPress, eventRelease:
		k, err := strconv.ParseUint(toks[fieldKey], 16, 8)
		if err != nil || k > 0xf {
			return playbackEntry{}, curated.Errorf(PlaybackError, fmt.Sprintf("bad key (%s) at line %d", toks[fieldKey], lineNum))
		}
		entry.key = uint8(k)
	case eventEnd:
	default:
		return playbackEntry{}, curated.Errorf(PlaybackError, fmt.Sprintf("unknown event (%s) at line %d", entry.event, lineNum))
	}

	return entry, nil
}
