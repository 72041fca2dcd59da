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

// Package cpu implements the CHIP-8 execution engine. The CPU owns the
// registers, the program counter, the call stack and the timers; memory, the
// display and the keypad are attached through the bus interfaces declared in
// this package.
//
// Step() executes exactly one instruction. It never blocks and it never
// loops: the keypad-wait instruction retries on the next call to Step() and
// a jump to its own address reports Loop rather than spinning. The delay and
// sound timers are not decremented by Step(); the surrounding harness drives
// TickTimers() at 60Hz so that timer behaviour does not vary with the
// configured instruction rate.
package cpu
