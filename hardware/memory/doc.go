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

// Package memory implements the 4096 byte address space of the CHIP-8
// machine. Addresses 0x000 to 0x1ff hold the hexadecimal sprite font and
// program bytes are loaded from address 0x200 (the Origin).
//
// Addresses are 12 bits; the Read8() and Write8() functions mask their
// address argument accordingly, so the address space wraps rather than
// errors.
package memory
