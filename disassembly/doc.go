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

// Package disassembly decodes a ROM into a linear list of Entry values and,
// from that list, reconstructs the program's static control-flow graph.
//
// The linear pass walks the ROM two bytes at a time without executing
// anything. Words that do not decode are kept in the list as data; a ROM is
// free to interleave sprite data with code and the linear pass cannot tell
// the difference.
//
// The flow pass (see the FlowGraph type) builds a graph of basic blocks from
// the linear list: one block per instruction to begin with, then coalesced
// by Reduce() and classified by Reachability(). The graph never loses nodes
// to classification; unreachable blocks are only flagged, which makes the
// result useful for finding dead code and data regions.
package disassembly
