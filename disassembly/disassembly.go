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

package disassembly

import (
	"sort"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/programloader"
)

// DisasmError is the pattern used for disassembly errors.
const DisasmError = "disassembly: %v"

// EntryLevel describes the reliability of an Entry.
type EntryLevel int

// List of valid EntryLevel values.
const (
	// the word does not decode as an instruction. it is probably data
	EntryLevelUndecodable EntryLevel = iota

	// the word decodes as an instruction but it was not reached by the flow
	// pass
	EntryLevelDecoded

	// the instruction was reached by the flow pass
	EntryLevelBlessed
)

// Entry is a single word of the disassembly.
type Entry struct {
	Level   EntryLevel
	Address uint16

	// the opcode. for the final byte of a program with an odd number of
	// bytes the low byte is zero and Partial is true
	Bytecode uint16
	Partial  bool

	// valid only if Level is not EntryLevelUndecodable
	Instruction instructions.Instruction

	// addresses that the flow pass continued to from this entry
	Next []uint16
}

// Disassembly is the result of disassembling a program.
type Disassembly struct {
	prog memory.Program

	// indexed by address
	entries map[uint16]*Entry
}

// FromLoader loads the program and disassembles it.
func FromLoader(ld *programloader.Loader) (*Disassembly, error) {
	if err := ld.Load(); err != nil {
		return nil, curated.Errorf(DisasmError, err)
	}
	return FromProgram(ld)
}

// FromProgram disassembles the program. The program is assumed to be loaded
// at memory.ProgramOrigin.
func FromProgram(prog memory.Program) (*Disassembly, error) {
	if prog.Size() == 0 {
		return nil, curated.Errorf(DisasmError, "program is empty")
	}
	if memory.ProgramOrigin+prog.Size() > memory.Size {
		return nil, curated.Errorf(DisasmError, "program is too large")
	}

	dsm := &Disassembly{
		prog:    prog,
		entries: make(map[uint16]*Entry),
	}

	dsm.linear()
	dsm.flow()

	return dsm, nil
}

// word returns the word at the address and whether the word is only partially
// inside the program. the final return value is false if the address is
// outside the program entirely.
func (dsm *Disassembly) word(address uint16) (uint16, bool, bool) {
	offset := int(address) - memory.ProgramOrigin
	if offset < 0 || offset >= dsm.prog.Size() {
		return 0, false, false
	}
	w := uint16(dsm.prog.ByteAt(offset)) << 8
	if offset+1 >= dsm.prog.Size() {
		return w, true, true
	}
	return w | uint16(dsm.prog.ByteAt(offset+1)), false, true
}

// decode the word at the address and add it to the list of entries. if an
// entry already exists for the address it is returned unchanged
func (dsm *Disassembly) decode(address uint16) (*Entry, bool) {
	if e, ok := dsm.entries[address]; ok {
		return e, true
	}

	w, partial, ok := dsm.word(address)
	if !ok {
		return nil, false
	}

	e := &Entry{
		Address:  address,
		Bytecode: w,
		Partial:  partial,
	}

	if !partial {
		ins, err := instructions.Decode(w)
		if err == nil {
			e.Level = EntryLevelDecoded
			e.Instruction = ins
		}
	}

	dsm.entries[address] = e
	return e, true
}

// Get returns the entry at the address.
func (dsm *Disassembly) Get(address uint16) (*Entry, bool) {
	e, ok := dsm.entries[address]
	return e, ok
}

// Entries returns all entries ordered by address.
func (dsm *Disassembly) Entries() []*Entry {
	l := make([]*Entry, 0, len(dsm.entries))
	for _, e := range dsm.entries {
		l = append(l, e)
	}
	sort.Slice(l, func(i, j int) bool {
		return l[i].Address < l[j].Address
	})
	return l
}

// Count returns the number of entries at the given level.
func (dsm *Disassembly) Count(level EntryLevel) int {
	n := 0
	for _, e := range dsm.entries {
		if e.Level == level {
			n++
		}
	}
	return n
}
