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

package logger_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/test"
)

type deny struct{}

func (deny) AllowLogging() bool {
	return false
}

func TestLogger(t *testing.T) {
	log := logger.NewLogger(100)
	tw := &test.CompareWriter{}

	log.Write(tw)
	test.ExpectedSuccess(t, tw.Compare(""))

	log.Log(logger.Allow, "test", "this is a test")
	log.Write(tw)
	test.ExpectedSuccess(t, tw.Compare("test: this is a test\n"))

	tw.Clear()
	log.Logf(logger.Allow, "test2", "this is test number %d", 2)
	log.Write(tw)
	test.ExpectedSuccess(t, tw.Compare("test: this is a test\ntest2: this is test number 2\n"))

	// asking for too many entries in a Tail() should be okay
	tw.Clear()
	log.Tail(tw, 100)
	test.ExpectedSuccess(t, tw.Compare("test: this is a test\ntest2: this is test number 2\n"))

	// fewer entries
	tw.Clear()
	log.Tail(tw, 1)
	test.ExpectedSuccess(t, tw.Compare("test2: this is test number 2\n"))

	// and no entries
	tw.Clear()
	log.Tail(tw, 0)
	test.ExpectedSuccess(t, tw.Compare(""))

	// denied entries are not added
	tw.Clear()
	log.Clear()
	log.Log(deny{}, "test", "denied")
	log.Write(tw)
	test.ExpectedSuccess(t, tw.Compare(""))
}

func TestRepeatedEntries(t *testing.T) {
	log := logger.NewLogger(100)
	tw := &test.CompareWriter{}

	log.Log(logger.Allow, "cpu", "awaiting key")
	log.Log(logger.Allow, "cpu", "awaiting key")
	log.Log(logger.Allow, "cpu", "awaiting key")
	log.Write(tw)
	test.ExpectedSuccess(t, tw.Compare("cpu: awaiting key (repeat x3)\n"))
}

func TestMaxEntries(t *testing.T) {
	log := logger.NewLogger(2)
	tw := &test.CompareWriter{}

	log.Log(logger.Allow, "a", "1")
	log.Log(logger.Allow, "b", "2")
	log.Log(logger.Allow, "c", "3")
	log.Write(tw)
	test.ExpectedSuccess(t, tw.Compare("b: 2\nc: 3\n"))
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(10)
	tw := &test.CompareWriter{}

	log.SetEcho(tw)
	log.Log(logger.Allow, "echo", "on")
	log.SetEcho(nil)
	log.Log(logger.Allow, "echo", "off")
	test.ExpectedSuccess(t, tw.Compare("echo: on\n"))
}
