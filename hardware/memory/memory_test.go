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

package memory_test

import (
	"testing"

	"github.com/hazeltine/gopher8/curated"
	"github.com/hazeltine/gopher8/hardware/memory"
	"github.com/hazeltine/gopher8/test"
)

func TestNewMemory(t *testing.T) {
	mem, err := memory.NewMemory([]uint8{0x12, 0x34})
	test.ExpectedSuccess(t, err)

	// font glyph for the digit 0 begins at address 0x000
	test.Equate(t, mem.Read8(0x000), 0xf0)
	test.Equate(t, mem.Read8(0x001), 0x90)

	// font glyph for the digit F begins at address 0x04b
	test.Equate(t, mem.Read8(15*memory.GlyphSize), 0xf0)

	// program bytes at the origin, big-endian
	test.Equate(t, mem.Read8(0x200), 0x12)
	test.Equate(t, mem.Read8(0x201), 0x34)
	test.Equate(t, mem.Read16(0x200), 0x1234)
}

func TestReset(t *testing.T) {
	mem, err := memory.NewMemory([]uint8{0x12, 0x34})
	test.ExpectedSuccess(t, err)

	mem.Write8(0x200, 0xff)
	mem.Write8(0x300, 0xff)
	test.Equate(t, mem.Read8(0x200), 0xff)

	mem.Reset()
	test.Equate(t, mem.Read8(0x200), 0x12)
	test.Equate(t, mem.Read8(0x300), 0x00)
}

func TestAddressWrap(t *testing.T) {
	mem, err := memory.NewMemory(nil)
	test.ExpectedSuccess(t, err)

	// addresses are 12 bits. the 13th bit is masked away
	mem.Write8(0x0123, 0xab)
	test.Equate(t, mem.Read8(0x1123), 0xab)
}

func TestProgramTooLarge(t *testing.T) {
	prog := make([]uint8, memory.MemorySize-memory.Origin+1)
	_, err := memory.NewMemory(prog)
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, memory.ProgramTooLarge), true)

	// exactly filling the program space is fine
	prog = prog[:memory.MemorySize-memory.Origin]
	_, err = memory.NewMemory(prog)
	test.ExpectedSuccess(t, err)
}
