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

package performance_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/performance"
	"github.com/jetsetilly/gopher8/programloader"
	"github.com/jetsetilly/gopher8/test"
)

func loader(t *testing.T, program []byte) *programloader.Loader {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "program.ch8")
	test.DemandSuccess(t, os.WriteFile(fn, program, 0o600))
	ld := programloader.NewLoader(fn)
	return &ld
}

func TestParseProfile(t *testing.T) {
	p, err := performance.ParseProfile("none")
	test.DemandSuccess(t, err)
	test.ExpectedSuccess(t, p == performance.ProfileNone)
	test.Equate(t, p.String(), "NONE")

	p, err = performance.ParseProfile("cpu,TRACE")
	test.DemandSuccess(t, err)
	test.ExpectedSuccess(t, p == performance.ProfileCPU|performance.ProfileTrace)
	test.Equate(t, p.String(), "CPU,TRACE")

	_, err = performance.ParseProfile("CPU,FOO")
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, performance.ProfileError))
}

func TestCalcFPS(t *testing.T) {
	fps, accuracy := performance.CalcFPS(120, 2.0)
	test.ExpectedSuccess(t, fps == 60.0)
	test.ExpectedSuccess(t, accuracy == 100.0)

	fps, _ = performance.CalcFPS(120, 0)
	test.ExpectedSuccess(t, fps == 0)
}

func TestCheck(t *testing.T) {
	// LD I, 0; DRW V0, V0, 5; JP 0x202. the glyph is drawn and erased
	// alternately
	ld := loader(t, []byte{0xa0, 0x00, 0xd0, 0x05, 0x12, 0x02})

	var out bytes.Buffer
	err := performance.Check(&out, performance.ProfileNone, ld, "50ms")
	test.DemandSuccess(t, err)

	s := out.String()
	test.ExpectedSuccess(t, strings.Contains(s, "fps"))
	test.ExpectedSuccess(t, strings.Contains(s, "instructions per second"))
	test.ExpectedSuccess(t, strings.Contains(s, "video digest: "))
}

func TestCheckFailure(t *testing.T) {
	var out bytes.Buffer

	// RET with an empty stack
	err := performance.Check(&out, performance.ProfileNone, loader(t, []byte{0x00, 0xee}), "1s")
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Has(err, cpu.StackUnderflow))

	err = performance.Check(&out, performance.ProfileNone, loader(t, []byte{0x12, 0x00}), "soon")
	test.ExpectedFailure(t, err)

	test.Equate(t, out.Len(), 0)
}
