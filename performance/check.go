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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/digest"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/paths"
	"github.com/jetsetilly/gopher8/programloader"
)

// the number of frames between checks of the clock
const performanceBrake = 100

// Check the performance of the emulator using the supplied program. Runs for
// the given duration (parsed with time.ParseDuration) and writes the result
// to output.
func Check(output io.Writer, profile Profile, ld *programloader.Loader, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}
	if dur <= 0 {
		return curated.Errorf("performance: %v", fmt.Sprintf("duration must be positive (%s)", duration))
	}

	m := hardware.NewMachine()
	if err := m.AttachProgram(ld); err != nil {
		return curated.Errorf("performance: %v", err)
	}

	vid := digest.NewVideo()
	aud := digest.NewAudio()

	var elapsed time.Duration

	runner := func() error {
		start := time.Now()
		brake := 0

		for {
			if err := m.RunFrame(); err != nil {
				return err
			}
			vid.Frame(m.Readout())
			aud.Frame(m.CPU.SoundActive())

			brake++
			if brake >= performanceBrake {
				brake = 0
				elapsed = time.Since(start)
				if elapsed >= dur {
					return nil
				}
			}
		}
	}

	logger.Logf(logger.Allow, "performance", "running %s for %s (profile %s)", ld.ShortName(), dur, profile)

	err = RunProfiler(profile, paths.UniqueFilename("performance", ld.ShortName()), runner)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	numFrames := m.FrameNum()
	fps, accuracy := CalcFPS(numFrames, elapsed.Seconds())
	ips := fps * hardware.InstructionsPerFrame

	fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, elapsed.Seconds(), accuracy)
	fmt.Fprintf(output, "%.0f instructions per second\n", ips)
	fmt.Fprintf(output, "video digest: %s\n", vid.Hash())
	fmt.Fprintf(output, "audio digest: %s\n", aud.Hash())

	return nil
}
