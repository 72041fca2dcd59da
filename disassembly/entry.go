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

	"github.com/hazeltine/gopher8/hardware/cpu/instructions"
)

// Entry is a single address in the disassembly: the raw word found there and
// the result of decoding it.
type Entry struct {
	Address uint16
	Opcode  uint16

	// Instruction is meaningful only when DecodeErr is nil
	Instruction instructions.Instruction
	DecodeErr   error
}

// IsInstruction returns false for words that did not decode.
func (e Entry) IsInstruction() bool {
	return e.DecodeErr == nil
}

// String returns the mnemonic/operand text for the entry. Undecodable words
// are rendered as data.
func (e Entry) String() string {
	if e.DecodeErr != nil {
		return fmt.Sprintf("%-6s 0x%04x", "DATA", e.Opcode)
	}
	return e.Instruction.String()
}
