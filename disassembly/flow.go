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
	"sort"

	"github.com/hazeltine/gopher8/curated"
	"github.com/hazeltine/gopher8/hardware/cpu/instructions"
	"github.com/hazeltine/gopher8/hardware/memory"
)

// GraphFault is the error pattern for a structural invariant violation in a
// FlowGraph. It indicates a defect in graph construction or reduction, not a
// property of the program being analysed.
const GraphFault = "flow: %v"

// Block is a node in the FlowGraph. Immediately after construction every
// block holds at most one instruction; Reduce() coalesces straight-line runs
// into larger blocks.
type Block struct {
	// Address is the block's key in the graph
	Address uint16

	// the instructions belonging to the block, in address order. empty for a
	// placeholder block (an edge target outside the decoded range, or a word
	// that did not decode)
	Code []instructions.Instruction

	// edge sets, kept sorted. every address in Next must name a block whose
	// Prev contains this block's address
	Prev []uint16
	Next []uint16

	// computed by Reachability()
	Reachable bool

	// HasReturn marks a block ending in a subroutine call; ReturnAddr is the
	// address the called subroutine returns to. such a block is a boundary
	// that Reduce() never coalesces across
	HasReturn  bool
	ReturnAddr uint16
}

// String returns the block in a form suitable for the analysis report.
func (blk *Block) String() string {
	return fmt.Sprintf("block 0x%04x (%d instructions)", blk.Address, len(blk.Code))
}

// FlowGraph is the static control-flow graph of a disassembled program.
type FlowGraph struct {
	// Entry is the address execution begins at
	Entry uint16

	// Blocks indexed by start address
	Blocks map[uint16]*Block
}

// NewFlowGraph builds a graph from the linear disassembly: one block per
// entry, forward edges from each instruction's static successor set,
// backward edges derived by inversion. The graph is validated before being
// returned.
func NewFlowGraph(dsm *Disassembly) (*FlowGraph, error) {
	fg := &FlowGraph{
		Entry:  memory.Origin,
		Blocks: make(map[uint16]*Block, len(dsm.Entries)),
	}

	for _, e := range dsm.Entries {
		blk := &Block{Address: e.Address}
		if e.IsInstruction() {
			blk.Code = []instructions.Instruction{e.Instruction}
			blk.Next = successors(e.Address, e.Instruction)
			if e.Instruction.Defn().Effect == instructions.Subroutine {
				blk.HasReturn = true
				blk.ReturnAddr = e.Address + 2
			}
		}
		fg.Blocks[e.Address] = blk
	}

	// an edge target outside the decoded range becomes an empty placeholder
	for _, blk := range fg.Blocks {
		for _, succ := range blk.Next {
			if _, ok := fg.Blocks[succ]; !ok {
				fg.Blocks[succ] = &Block{Address: succ}
			}
		}
	}

	// invert forward edges
	for _, blk := range fg.Blocks {
		for _, succ := range blk.Next {
			fg.Blocks[succ].Prev = insertAddress(fg.Blocks[succ].Prev, blk.Address)
		}
	}

	err := fg.Check()
	if err != nil {
		return nil, err
	}

	return fg, nil
}

// successors is a pure function of (address, instruction). Note that a
// subroutine call contributes only its target; the return path is recorded
// on the block as ReturnAddr rather than as an edge, because the return is
// resolved by the runtime call stack and not by fallthrough.
func successors(address uint16, ins instructions.Instruction) []uint16 {
	switch ins.Defn().Effect {
	case instructions.Normal:
		return []uint16{address + 2}
	case instructions.Skip:
		return []uint16{address + 2, address + 4}
	case instructions.Flow, instructions.Subroutine:
		return []uint16{ins.Address}
	}

	// Return targets live on the call stack; Indirect targets depend on a
	// register value; Halt ends the program. none can be resolved statically
	return nil
}

// Check that every recorded edge is symmetric and lands on an existing node.
// Failure matches the GraphFault pattern.
func (fg *FlowGraph) Check() error {
	for _, blk := range fg.Blocks {
		for _, succ := range blk.Next {
			target, ok := fg.Blocks[succ]
			if !ok {
				return curated.Errorf(GraphFault,
					fmt.Sprintf("block 0x%04x: successor 0x%04x does not exist", blk.Address, succ))
			}
			if !containsAddress(target.Prev, blk.Address) {
				return curated.Errorf(GraphFault,
					fmt.Sprintf("block 0x%04x: successor 0x%04x does not list it as a predecessor", blk.Address, succ))
			}
		}
		for _, pred := range blk.Prev {
			source, ok := fg.Blocks[pred]
			if !ok {
				return curated.Errorf(GraphFault,
					fmt.Sprintf("block 0x%04x: predecessor 0x%04x does not exist", blk.Address, pred))
			}
			if !containsAddress(source.Next, blk.Address) {
				return curated.Errorf(GraphFault,
					fmt.Sprintf("block 0x%04x: predecessor 0x%04x does not list it as a successor", blk.Address, pred))
			}
		}
	}
	return nil
}

// Addresses returns the block keys in ascending order. Iteration over the
// Blocks map directly is fine for graph work but reports want a stable
// order.
func (fg *FlowGraph) Addresses() []uint16 {
	addresses := make([]uint16, 0, len(fg.Blocks))
	for address := range fg.Blocks {
		addresses = append(addresses, address)
	}
	sort.Slice(addresses, func(i, j int) bool { return addresses[i] < addresses[j] })
	return addresses
}

func containsAddress(s []uint16, address uint16) bool {
	for _, a := range s {
		if a == address {
			return true
		}
	}
	return false
}

// insertAddress adds an address to a sorted set, keeping it sorted and
// duplicate free.
func insertAddress(s []uint16, address uint16) []uint16 {
	i := sort.Search(len(s), func(i int) bool { return s[i] >= address })
	if i < len(s) && s[i] == address {
		return s
	}
	s = append(s, 0)
	copy(s[i+1:], s[i:])
	s[i] = address
	return s
}

// removeAddress removes an address from a set. Removing an address that is
// not present is a no-op.
func removeAddress(s []uint16, address uint16) []uint16 {
	for i, a := range s {
		if a == address {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}

// replaceAddress substitutes one address for another, preserving sortedness.
func replaceAddress(s []uint16, from uint16, to uint16) []uint16 {
	return insertAddress(removeAddress(s, from), to)
}
