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
	"github.com/hazeltine/gopher8/cartridgeloader"
	"github.com/hazeltine/gopher8/hardware/cpu/instructions"
	"github.com/hazeltine/gopher8/hardware/memory"
)

// Disassembly is the result of the linear pass over a ROM.
type Disassembly struct {
	Entries []Entry
}

// FromCartridge is the preferred method of initialisation for the
// Disassembly type. The ROM is loaded if the loader has not already done so.
func FromCartridge(cartload cartridgeloader.Loader) (*Disassembly, error) {
	err := cartload.Load()
	if err != nil {
		return nil, err
	}
	return FromBytes(cartload.Data), nil
}

// FromBytes disassembles a raw program image. The image is assumed to start
// at the machine's program origin. A trailing odd byte is ignored.
func FromBytes(data []byte) *Disassembly {
	dsm := &Disassembly{
		Entries: make([]Entry, 0, len(data)/2),
	}

	for i := 0; i+1 < len(data); i += 2 {
		opcode := uint16(data[i])<<8 | uint16(data[i+1])
		ins, err := instructions.Decode(opcode)
		dsm.Entries = append(dsm.Entries, Entry{
			Address:     uint16(memory.Origin + i),
			Opcode:      opcode,
			Instruction: ins,
			DecodeErr:   err,
		})
	}

	return dsm
}

// EntryAt returns the entry at the given address.
func (dsm *Disassembly) EntryAt(address uint16) (Entry, bool) {
	idx := (int(address) - memory.Origin) / 2
	if idx < 0 || idx >= len(dsm.Entries) || address%2 != 0 {
		return Entry{}, false
	}
	return dsm.Entries[idx], true
}
