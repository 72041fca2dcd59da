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

// Reduce coalesces straight-line runs of blocks into basic blocks, repeating
// until a fixed point is reached. The returned count is the number of blocks
// absorbed; on an already-reduced graph it is zero.
//
// A block absorbs its successor when it is the successor's only way in and
// the successor is its only way out. A block ending in a subroutine call
// never absorbs: the call's return lands at the boundary being erased, so
// the boundary must stay. The entry block is never absorbed for the same
// reason, and a block is never absorbed into itself.
//
// Termination is guaranteed because every absorption removes a node. The
// graph is validated after every absorption.
func (fg *FlowGraph) Reduce() (int, error) {
	absorbed := 0

	for {
		candidate := fg.findReducible()
		if candidate == nil {
			return absorbed, nil
		}

		fg.absorb(candidate)
		absorbed++

		err := fg.Check()
		if err != nil {
			return absorbed, err
		}
	}
}

func (fg *FlowGraph) findReducible() *Block {
	// walking the keys in address order keeps reduction deterministic,
	// which matters only for reproducible reports and tests
	for _, address := range fg.Addresses() {
		blk := fg.Blocks[address]

		if blk.HasReturn || len(blk.Next) != 1 {
			continue
		}

		succ := blk.Next[0]
		if succ == blk.Address || succ == fg.Entry {
			continue
		}

		target := fg.Blocks[succ]
		if len(target.Prev) != 1 {
			continue
		}

		return blk
	}

	return nil
}

// absorb the block's sole successor. The successor's code, successor set and
// call boundary all move onto the absorbing block; every reference to the
// absorbed address is redirected.
func (fg *FlowGraph) absorb(blk *Block) {
	target := fg.Blocks[blk.Next[0]]

	blk.Code = append(blk.Code, target.Code...)
	blk.Next = append([]uint16(nil), target.Next...)
	blk.HasReturn = target.HasReturn
	blk.ReturnAddr = target.ReturnAddr

	delete(fg.Blocks, target.Address)

	for _, succ := range blk.Next {
		fg.Blocks[succ].Prev = replaceAddress(fg.Blocks[succ].Prev, target.Address, blk.Address)
	}
}
