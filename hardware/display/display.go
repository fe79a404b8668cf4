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

// Package display implements the monochrome pixel grid of the machine.
//
// Pixels are never simply turned on. SetPixel() combines the new value with
// the existing value using exclusive-or, and reports whether a pixel that was
// set has been unset as a result. Coordinates are not bounds checked. It is
// the responsibility of the caller to wrap coordinates to the dimensions of
// the grid.
package display

// Dimensions of the pixel grid.
const (
	Width  = 64
	Height = 32
)

// Readout is a copy of the entire pixel grid, suitable for presentation. It
// is indexed by row and then by column.
type Readout [Height][Width]bool

// Display is the pixel grid. Each cell holds either 0 (unset) or 1 (set).
type Display struct {
	pixels [Width][Height]uint8
}

// NewDisplay is the preferred method of initialisation for the Display type.
func NewDisplay() *Display {
	return &Display{}
}

// SetPixel exclusive-ors value into the pixel at x, y. Returns true if the
// pixel changed from set to unset.
func (dsp *Display) SetPixel(x, y int, value uint8) bool {
	prev := dsp.pixels[x][y]
	dsp.pixels[x][y] ^= value
	return prev == 1 && dsp.pixels[x][y] == 0
}

// Pixel returns the value of the pixel at x, y.
func (dsp *Display) Pixel(x, y int) uint8 {
	return dsp.pixels[x][y]
}

// Clear unsets every pixel.
func (dsp *Display) Clear() {
	dsp.pixels = [Width][Height]uint8{}
}

// Readout returns a copy of the pixel grid.
func (dsp *Display) Readout() Readout {
	var r Readout
	for x := 0; x < Width; x++ {
		for y := 0; y < Height; y++ {
			r[y][x] = dsp.pixels[x][y] != 0
		}
	}
	return r
}
