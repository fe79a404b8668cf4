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
	"fmt"
	"io"
)

// WriteAttr controls what is printed by the Write() function.
type WriteAttr struct {
	// include the raw bytecode
	ByteCode bool

	// only include entries found by the flow pass
	FlowOnly bool
}

// Write the disassembly to the output.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	for _, e := range dsm.Entries() {
		if attr.FlowOnly && e.Level != EntryLevelBlessed {
			continue // for loop
		}
		if err := dsm.WriteLine(output, attr, e); err != nil {
			return err
		}
	}
	return nil
}

// WriteLine writes a single entry to the output. Entries found by the flow
// pass are marked with an asterisk.
func (dsm *Disassembly) WriteLine(output io.Writer, attr WriteAttr, e *Entry) error {
	marker := " "
	if e.Level == EntryLevelBlessed {
		marker = "*"
	}

	s := fmt.Sprintf("%s %#03x ", marker, e.Address)
	if attr.ByteCode {
		if e.Partial {
			s = fmt.Sprintf("%s%02x   ", s, e.Bytecode>>8)
		} else {
			s = fmt.Sprintf("%s%04x ", s, e.Bytecode)
		}
	}

	_, err := fmt.Fprintf(output, "%s %s\n", s, e)
	return err
}

func (e *Entry) String() string {
	switch {
	case e.Partial:
		return fmt.Sprintf("DB %#02x", e.Bytecode>>8)
	case e.Level == EntryLevelUndecodable:
		return fmt.Sprintf("DW %#04x", e.Bytecode)
	}
	return e.Instruction.String()
}
