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

package termplay

import (
	"strings"

	"github.com/jetsetilly/gopher8/hardware/display"
)

// the number of character rows required to show the display
const displayRows = (display.Height + 1) / 2

// half-block characters indexed by top pixel and bottom pixel
var blocks = [2][2]string{
	{" ", "▄"},
	{"▀", "█"},
}

// drawReadout writes the readout to the builder using half-block characters.
// lines are terminated with CRLF because the terminal is in raw mode.
func drawReadout(sb *strings.Builder, r display.Readout) {
	for y := 0; y < display.Height; y += 2 {
		for x := 0; x < display.Width; x++ {
			top := 0
			if r[y][x] {
				top = 1
			}
			bottom := 0
			if y+1 < display.Height && r[y+1][x] {
				bottom = 1
			}
			sb.WriteString(blocks[top][bottom])
		}
		sb.WriteString("\r\n")
	}
}
