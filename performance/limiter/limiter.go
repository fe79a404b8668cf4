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

// Package limiter is used to pace the emulation to a fixed number of frames
// per second.
package limiter

import (
	"fmt"
	"time"

	"github.com/jetsetilly/gopher8/curated"
)

// FpsLimiter will trigger every frames per second.
type FpsLimiter struct {
	framesPerSecond int
	secondsPerFrame time.Duration

	// the time at which the next frame is due
	next time.Time
}

// NewFPSLimiter is the preferred method of initialisation for FpsLimiter type.
func NewFPSLimiter(framesPerSecond int) (*FpsLimiter, error) {
	lim := &FpsLimiter{}
	if err := lim.SetLimit(framesPerSecond); err != nil {
		return nil, err
	}
	return lim, nil
}

// SetLimit changes the limit at which the FpsLimiter waits.
func (lim *FpsLimiter) SetLimit(framesPerSecond int) error {
	if framesPerSecond <= 0 {
		return curated.Errorf("limiter: %v", fmt.Sprintf("frames per second must be positive (%d)", framesPerSecond))
	}
	lim.framesPerSecond = framesPerSecond
	lim.secondsPerFrame = time.Second / time.Duration(framesPerSecond)
	lim.next = time.Time{}
	return nil
}

// Wait will block until the trigger is received. The first call never blocks.
func (lim *FpsLimiter) Wait() {
	now := time.Now()

	if lim.next.IsZero() {
		lim.next = now.Add(lim.secondsPerFrame)
		return
	}

	if d := lim.next.Sub(now); d > 0 {
		time.Sleep(d)
		lim.next = lim.next.Add(lim.secondsPerFrame)
		return
	}

	// we've fallen behind. rather than trying to catch up (by not waiting on
	// the next few frames) we start the pacing again from now
	lim.next = now.Add(lim.secondsPerFrame)
}

// HasWaited returns true if the next frame is due. Unlike Wait() it never
// blocks. If it returns true then the following frame is scheduled.
func (lim *FpsLimiter) HasWaited() bool {
	now := time.Now()
	if now.Before(lim.next) {
		return false
	}
	lim.next = now.Add(lim.secondsPerFrame)
	return true
}
