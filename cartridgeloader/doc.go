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

// Package cartridgeloader is used to specify the ROM data that is to be
// attached to the emulated machine.
//
// The simplest instance of the Loader type:
//
//	cl := cartridgeloader.NewLoader("roms/pong.ch8")
//
// When the ROM is ready to be loaded into the emulator, the Load() function
// should be used. After a successful Load() the Data field holds the ROM
// bytes and the Hash field the SHA1 digest of those bytes.
package cartridgeloader
