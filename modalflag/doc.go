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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides sub-mode parsing: the command line is treated as a
// series of modes, each with its own flags. For example:
//
//	gopher8 play -scale 16 rom.ch8
//	gopher8 analyze -dot rom.ch8
//
// The Modes type is initialised with NewArgs(). Each layer of parsing is
// introduced with NewMode(), sub-modes are registered with AddSubModes() and
// flags with the Add*() functions. Parse() then consumes arguments up to and
// including the selected sub-mode.
//
// The first sub-mode in the AddSubModes() list is the default, chosen when
// the first argument does not name a sub-mode. Sub-mode comparison is case
// insensitive.
package modalflag
