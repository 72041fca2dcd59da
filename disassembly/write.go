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

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	// include the raw opcode word in each line
	ByteCode bool
}

// Write the entire disassembly to io.Writer.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	var err error
	for i := range dsm.Entries {
		err = dsm.WriteEntry(output, attr, dsm.Entries[i])
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteEntry writes a single disassembly line to io.Writer.
func (dsm *Disassembly) WriteEntry(output io.Writer, attr WriteAttr, e Entry) error {
	var err error
	if attr.ByteCode {
		_, err = fmt.Fprintf(output, "0x%04x  %04x  %s\n", e.Address, e.Opcode, e.String())
	} else {
		_, err = fmt.Fprintf(output, "0x%04x  %s\n", e.Address, e.String())
	}
	return err
}
