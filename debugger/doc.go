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

// Package debugger is a terminal monitor for the emulated machine. It runs
// entirely in the terminal the emulator was started from, driven by single
// keypresses in cbreak mode:
//
//	s, space    step one instruction
//	r           run; any key stops
//	g           register dump
//	d           display dump
//	l           disassembly around the program counter
//	z           reset the machine
//	q           quit
//
// The debugger owns the machine. While the monitor prompt is showing nothing
// else is stepping the machine and the timers are frozen; the machine only
// moves during step and run commands.
package debugger
