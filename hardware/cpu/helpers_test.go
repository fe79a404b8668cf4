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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/keyboard"
	"github.com/jetsetilly/gopher8/hardware/memory"
)

type program []uint8

func (p program) Size() int {
	return len(p)
}

func (p program) ByteAt(offset int) uint8 {
	return p[offset]
}

// fixedRandom always returns the same value.
type fixedRandom uint8

func (r fixedRandom) Byte() uint8 {
	return uint8(r)
}

// testMachine bundles the CPU with the hardware it owns so that tests can
// inspect the hardware directly.
type testMachine struct {
	mc  *cpu.CPU
	mem *memory.Memory
	dsp *display.Display
	kb  *keyboard.Keyboard
}

func newTestMachine(t *testing.T, instructions ...uint16) *testMachine {
	t.Helper()

	tm := &testMachine{
		mem: memory.NewMemory(),
		dsp: display.NewDisplay(),
		kb:  keyboard.NewKeyboard(),
	}
	tm.mc = cpu.NewCPU(tm.mem, tm.dsp, tm.kb)

	var p program
	for _, ins := range instructions {
		p = append(p, uint8(ins>>8), uint8(ins))
	}

	if err := tm.mc.LoadProgram(p); err != nil {
		t.Fatal(err)
	}

	return tm
}

func (tm *testMachine) step(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if err := tm.mc.Step(); err != nil {
			t.Fatal(err)
		}
	}
}

func (tm *testMachine) assertMemory(t *testing.T, address uint16, value uint8) {
	t.Helper()
	d, err := tm.mem.Read(address)
	if err != nil {
		t.Fatal(err)
	}
	if d != value {
		t.Errorf("memory assertion failed (%#02x  - wanted %#02x at address %#03x)", d, value, address)
	}
}
