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

package memory

import (
	"github.com/hazeltine/gopher8/curated"
)

// error patterns for the memory package
const (
	// program too large for the program space
	ProgramTooLarge = "memory: program of %d bytes does not fit in program space (%d bytes)"
)

// MemorySize is the extent of the CHIP-8 address space in bytes.
const MemorySize = 4096

// Origin is the address at which program bytes are loaded and at which
// execution begins.
const Origin = 0x0200

// addressMask reduces an address to the meaningful 12 bits.
const addressMask = MemorySize - 1

// Memory is the 4096 byte address space of the CHIP-8 machine.
type Memory struct {
	data [MemorySize]uint8

	// copy of the program bytes most recently attached, replayed on Reset()
	program []uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The returned memory has the sprite font in place and the program attached.
func NewMemory(program []uint8) (*Memory, error) {
	mem := &Memory{}
	if err := mem.Attach(program); err != nil {
		return nil, err
	}
	return mem, nil
}

// Attach replaces the current program with a new one and resets memory.
func (mem *Memory) Attach(program []uint8) error {
	if len(program) > MemorySize-Origin {
		return curated.Errorf(ProgramTooLarge, len(program), MemorySize-Origin)
	}
	mem.program = make([]uint8, len(program))
	copy(mem.program, program)
	mem.Reset()
	return nil
}

// Reset restores memory to its initial snapshot: zeroed, font at 0x000 and
// the attached program at Origin.
func (mem *Memory) Reset() {
	for i := range mem.data {
		mem.data[i] = 0
	}
	copy(mem.data[:], font)
	copy(mem.data[Origin:], mem.program)
}

// Read8 returns the 8-bit value at the specified address.
func (mem *Memory) Read8(address uint16) uint8 {
	return mem.data[address&addressMask]
}

// Write8 writes an 8-bit value to the specified address.
func (mem *Memory) Write8(address uint16, data uint8) {
	mem.data[address&addressMask] = data
}

// Read16 returns the big-endian 16-bit value at the specified address. CHIP-8
// opcodes are stored big-endian.
func (mem *Memory) Read16(address uint16) uint16 {
	return uint16(mem.Read8(address))<<8 | uint16(mem.Read8(address+1))
}

// ProgramLen returns the length in bytes of the attached program.
func (mem *Memory) ProgramLen() int {
	return len(mem.program)
}
