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

// Package video implements the 64x32 monochrome display of the CHIP-8
// machine. The display is mutated in only two ways: Clear() turns every
// pixel off and Blit() XOR-composites a sprite at a wrapped coordinate.
package video

import (
	"strings"
)

// Display dimensions in pixels.
const (
	Cols = 64
	Rows = 32
)

// Video is the display buffer of the CHIP-8 machine.
type Video struct {
	pixels [Rows][Cols]bool
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{}
}

// Clear turns every pixel off.
func (vid *Video) Clear() {
	vid.pixels = [Rows][Cols]bool{}
}

// Reset is an alias of Clear. The initial snapshot of the display is all off.
func (vid *Video) Reset() {
	vid.Clear()
}

// Blit XOR-composites the sprite onto the display with its top-left corner at
// (x, y). Each sprite byte is one row of 8 pixels, most significant bit
// leftmost. Both coordinates wrap, columns modulo 64 and rows modulo 32.
//
// Returns true if any pixel that was on is being turned off by the blit,
// false otherwise.
func (vid *Video) Blit(x uint8, y uint8, sprite []uint8) bool {
	collision := false

	row := int(y)
	for _, b := range sprite {
		col := int(x)
		for bit := 0; bit < 8; bit++ {
			px := b&(0x80>>bit) != 0
			r := row % Rows
			c := col % Cols
			if vid.pixels[r][c] && px {
				collision = true
			}
			vid.pixels[r][c] = vid.pixels[r][c] != px
			col++
		}
		row++
	}

	return collision
}

// Pixel returns the state of the pixel at (col, row). Coordinates wrap as
// they do for Blit().
func (vid *Video) Pixel(col int, row int) bool {
	return vid.pixels[row%Rows][col%Cols]
}

// Snapshot returns a copy of the display buffer.
func (vid *Video) Snapshot() [Rows][Cols]bool {
	return vid.pixels
}

// String returns the display buffer rendered with block characters, suitable
// for terminal output.
func (vid *Video) String() string {
	s := strings.Builder{}
	s.WriteString("┌")
	s.WriteString(strings.Repeat("─", Cols))
	s.WriteString("┐\n")
	for row := 0; row < Rows; row++ {
		s.WriteString("│")
		for col := 0; col < Cols; col++ {
			if vid.pixels[row][col] {
				s.WriteString("█")
			} else {
				s.WriteString("·")
			}
		}
		s.WriteString("│\n")
	}
	s.WriteString("└")
	s.WriteString(strings.Repeat("─", Cols))
	s.WriteString("┘\n")
	return s.String()
}
