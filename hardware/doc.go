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

// Package hardware ties the sub-packages of the emulated machine together:
// the CPU, memory, video and keypad. The Chip8 type is the root of the
// hierarchy and the type that collaborators (GUI, debugger, performance
// measurement) hold on to.
//
// Machine state is guarded by a single coarse lock. The Run() loop mutates
// state only with the lock held and any other goroutine wanting a consistent
// view of the machine must take the lock too, most conveniently with the
// Borrow() function. There is no finer-grained locking; a borrower sees the
// state between two discrete Step() calls, never mid-instruction.
package hardware
