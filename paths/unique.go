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

package paths

import (
	"fmt"
	"strings"
	"time"
)

// the timestamp layout used by UniqueFilename()
const timestampLayout = "20060102_150405"

// UniqueFilename creates a filename that (assuming a functioning clock) should
// not collide with any existing file. The program name can be empty.
//
// Whitespace in the program name is replaced with underscores and any
// filename extension is removed.
func UniqueFilename(prepend string, programName string) string {
	return uniqueFilename(prepend, programName, time.Now())
}

func uniqueFilename(prepend string, programName string, t time.Time) string {
	timestamp := t.Format(timestampLayout)

	p := strings.TrimSpace(programName)
	if i := strings.LastIndex(p, "."); i > 0 {
		p = p[:i]
	}
	p = strings.Join(strings.Fields(p), "_")

	if len(p) == 0 {
		return fmt.Sprintf("%s_%s", prepend, timestamp)
	}
	return fmt.Sprintf("%s_%s_%s", prepend, p, timestamp)
}
