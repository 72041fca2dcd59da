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

// Reachability marks every block transitively reachable from the entry
// address. Unreachable blocks are only flagged, never removed; the flag on
// every block is recomputed on each call.
//
// The traversal uses an explicit work-list rather than recursion so that a
// large or cyclic graph cannot exhaust the stack.
func (fg *FlowGraph) Reachability() {
	for _, blk := range fg.Blocks {
		blk.Reachable = false
	}

	entry, ok := fg.Blocks[fg.Entry]
	if !ok {
		return
	}

	worklist := []*Block{entry}
	entry.Reachable = true

	for len(worklist) > 0 {
		blk := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		for _, succ := range blk.Next {
			target := fg.Blocks[succ]
			if !target.Reachable {
				target.Reachable = true
				worklist = append(worklist, target)
			}
		}
	}
}
