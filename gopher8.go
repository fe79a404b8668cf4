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

package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/disassembly"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/gui/sdlplay"
	"github.com/jetsetilly/gopher8/gui/termplay"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/modalflag"
	"github.com/jetsetilly/gopher8/performance"
	"github.com/jetsetilly/gopher8/performance/limiter"
	"github.com/jetsetilly/gopher8/playmode"
	"github.com/jetsetilly/gopher8/programloader"
	"github.com/jetsetilly/gopher8/recorder"
	"github.com/jetsetilly/gopher8/statsview"
	"github.com/jetsetilly/gopher8/version"
)

// exit values
const (
	exitOK         = 0
	exitParseError = 10
	exitModeError  = 20
)

func init() {
	// SDL requires that all calls are made from the main thread
	runtime.LockOSThread()
}

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("PLAY", "TERM", "PERFORMANCE", "PLAYBACK", "DISASM", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	switch md.Mode() {
	case "PLAY":
		err = play(md, output)

	case "TERM":
		err = term(md)

	case "PERFORMANCE":
		err = perform(md, output)

	case "PLAYBACK":
		err = playback(md, output)

	case "DISASM":
		err = disasm(md, output)

	case "VERSION":
		fmt.Fprintln(output, version.Summary())
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %v\n", md, err)
		return exitModeError
	}

	return exitOK
}

func setLogEcho(log bool, output io.Writer) {
	if log {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}
}

func play(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	scale := md.AddInt("scale", 10, "window scale")
	fpsCap := md.AddBool("fpscap", true, "cap fps to 60")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	record := md.AddBool("record", false, "record user input to a new file")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	md.AdditionalHelp("program can be a filename, a http/https URL or a playback file. ESC quits")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if err := md.ExactArgs(1); err != nil {
		return err
	}

	setLogEcho(*log, output)

	if stats != nil && *stats {
		statsview.Launch(output)
	}

	// load before creating the window so that a bad program path doesn't
	// cause a window to open and immediately close
	ld, transcript, err := prepareProgram(md.GetArg(0), *record)
	if err != nil {
		return err
	}

	scr, err := sdlplay.NewSdlPlay()
	if err != nil {
		return err
	}
	defer scr.Destroy()

	err = scr.SetFeature(gui.ReqSetScale, *scale)
	if err != nil {
		return err
	}

	return playmode.Play(scr, ld, *fpsCap, transcript, *record)
}

func term(md *modalflag.Modes) error {
	md.NewMode()

	fpsCap := md.AddBool("fpscap", true, "cap fps to 60")
	record := md.AddBool("record", false, "record user input to a new file")

	md.AdditionalHelp("program can be a filename, a http/https URL or a playback file. ESC or ctrl-c quits")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if err := md.ExactArgs(1); err != nil {
		return err
	}

	// log echo is never enabled in terminal mode. it would corrupt the
	// display
	setLogEcho(false, nil)

	ld, transcript, err := prepareProgram(md.GetArg(0), *record)
	if err != nil {
		return err
	}

	var scr gui.GUI
	scr, err = termplay.NewTermPlay(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}

	err = playmode.Play(scr, ld, *fpsCap, transcript, *record)
	scr.Destroy()

	// print the tail of the log on error. the terminal will have been
	// restored by this point
	if err != nil {
		logger.Tail(os.Stdout, 10)
	}

	return err
}

// prepareProgram checks whether the argument is a playback file. If it is
// then the loader is nil and the argument is returned as the transcript. If
// it is not then the program is loaded.
func prepareProgram(arg string, record bool) (*programloader.Loader, string, error) {
	if recorder.IsPlaybackFile(arg) == nil {
		if record {
			return nil, "", fmt.Errorf("cannot make a recording of a playback file (%s)", arg)
		}
		return nil, arg, nil
	}

	ld := programloader.NewLoader(arg)
	if err := ld.Load(); err != nil {
		return nil, "", err
	}

	return &ld, "", nil
}

func perform(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration")
	profile := md.AddString("profile", "NONE", "run performance check with profiling: NONE, CPU, MEM, TRACE (comma separated)")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if err := md.ExactArgs(1); err != nil {
		return err
	}

	setLogEcho(*log, output)

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	ld := programloader.NewLoader(md.GetArg(0))
	return performance.Check(output, prf, &ld, *duration)
}

func disasm(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")
	flowOnly := md.AddBool("flowonly", false, "only show instructions reachable from the program entry point")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if err := md.ExactArgs(1); err != nil {
		return err
	}

	ld := programloader.NewLoader(md.GetArg(0))
	dsm, err := disassembly.FromLoader(&ld)
	if err != nil {
		return err
	}

	return dsm.Write(output, disassembly.WriteAttr{
		ByteCode: *bytecode,
		FlowOnly: *flowOnly,
	})
}

func playback(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	log := md.AddBool("log", false, "echo debugging log to stdout")

	md.AdditionalHelp("checks that each playback file produces the recorded output")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) == 0 {
		return fmt.Errorf("at least one playback file required for %s mode", md)
	}

	setLogEcho(*log, output)

	// display progress meter every second
	lmtr, err := limiter.NewFPSLimiter(1)
	if err != nil {
		return err
	}

	var failed int

	for _, transcript := range md.RemainingArgs() {
		msg := fmt.Sprintf("playback: %s", transcript)
		fmt.Fprint(output, msg)

		plb, err := recorder.NewPlayback(transcript)
		if err != nil {
			return err
		}

		ld := plb.Loader()
		m := hardware.NewMachine()
		if err := m.AttachProgram(&ld); err != nil {
			return err
		}
		if err := plb.AttachToMachine(m); err != nil {
			return err
		}

		err = plb.Run(func() {
			if lmtr.HasWaited() {
				fmt.Fprintf(output, "\r%s [%s]", msg, plb)
			}
		})

		if err != nil {
			if !curated.Is(err, recorder.PlaybackHashError) {
				fmt.Fprintln(output)
				return err
			}
			failed++
			fmt.Fprintf(output, "\r%s [failed] %v\n", msg, err)
			continue // for loop
		}

		fmt.Fprintf(output, "\r%s [ok] %d frames\n", msg, m.FrameNum())
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d playbacks failed", failed, len(md.RemainingArgs()))
	}

	return nil
}
