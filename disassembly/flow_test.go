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

package disassembly_test

import (
	"testing"

	"github.com/hazeltine/gopher8/curated"
	"github.com/hazeltine/gopher8/disassembly"
	"github.com/hazeltine/gopher8/test"
)

func fromOpcodes(opcodes ...uint16) *disassembly.Disassembly {
	data := make([]byte, 0, len(opcodes)*2)
	for _, opcode := range opcodes {
		data = append(data, uint8(opcode>>8), uint8(opcode))
	}
	return disassembly.FromBytes(data)
}

func TestConstruction(t *testing.T) {
	// LOAD; SKE; SYS 0
	fg, err := disassembly.NewFlowGraph(fromOpcodes(0x6001, 0x3001, 0x0000))
	test.ExpectedSuccess(t, err)
	test.Equate(t, len(fg.Blocks), 4)

	// a straight-line instruction has one successor
	test.Equate(t, len(fg.Blocks[0x0200].Next), 1)
	test.Equate(t, fg.Blocks[0x0200].Next[0], 0x0202)

	// a skip instruction has two
	test.Equate(t, len(fg.Blocks[0x0202].Next), 2)
	test.Equate(t, fg.Blocks[0x0202].Next[0], 0x0204)
	test.Equate(t, fg.Blocks[0x0202].Next[1], 0x0206)

	// the halt instruction has none
	test.Equate(t, len(fg.Blocks[0x0204].Next), 0)

	// the skip's long edge landed outside the decoded range so 0x0206 is a
	// placeholder with a derived predecessor
	test.Equate(t, len(fg.Blocks[0x0206].Code), 0)
	test.Equate(t, len(fg.Blocks[0x0206].Prev), 1)
	test.Equate(t, fg.Blocks[0x0206].Prev[0], 0x0202)
}

func TestConstructionData(t *testing.T) {
	// LOAD; undecodable word
	fg, err := disassembly.NewFlowGraph(fromOpcodes(0x6001, 0x5001))
	test.ExpectedSuccess(t, err)

	blk := fg.Blocks[0x0202]
	test.Equate(t, len(blk.Code), 0)
	test.Equate(t, len(blk.Next), 0)
	test.Equate(t, len(blk.Prev), 1)
	test.Equate(t, blk.Prev[0], 0x0200)
}

func TestCheck(t *testing.T) {
	fg, err := disassembly.NewFlowGraph(fromOpcodes(0x6001, 0x0000))
	test.ExpectedSuccess(t, err)
	test.ExpectedSuccess(t, fg.Check())

	// a dangling forward edge is a structural fault
	fg.Blocks[0x0202].Next = append(fg.Blocks[0x0202].Next, 0x0999)
	err = fg.Check()
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, disassembly.GraphFault), true)

	// an asymmetric edge likewise
	fg, _ = disassembly.NewFlowGraph(fromOpcodes(0x6001, 0x0000))
	fg.Blocks[0x0202].Prev = nil
	err = fg.Check()
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, disassembly.GraphFault), true)
}

// a straight-line stream of any length reduces to exactly one block
func TestReduceStraightLine(t *testing.T) {
	fg, err := disassembly.NewFlowGraph(fromOpcodes(0x6001, 0x6102, 0x6203, 0x6304, 0x0000))
	test.ExpectedSuccess(t, err)
	test.Equate(t, len(fg.Blocks), 5)

	absorbed, err := fg.Reduce()
	test.ExpectedSuccess(t, err)
	test.Equate(t, absorbed, 4)
	test.Equate(t, len(fg.Blocks), 1)

	blk := fg.Blocks[0x0200]
	test.Equate(t, len(blk.Code), 5)
	test.Equate(t, len(blk.Next), 0)
}

func TestReduceIdempotent(t *testing.T) {
	fg, err := disassembly.NewFlowGraph(fromOpcodes(0x6001, 0x6102, 0x0000))
	test.ExpectedSuccess(t, err)

	_, err = fg.Reduce()
	test.ExpectedSuccess(t, err)

	absorbed, err := fg.Reduce()
	test.ExpectedSuccess(t, err)
	test.Equate(t, absorbed, 0)
}

// a call boundary is never crossed by coalescing and survives reduction
func TestReduceCallBoundary(t *testing.T) {
	// 0x200 CALL 0x206; 0x202 SYS 0; 0x204 data; 0x206 LOAD; 0x208 RTS
	fg, err := disassembly.NewFlowGraph(fromOpcodes(0x2206, 0x0000, 0xffff, 0x6001, 0x00ee))
	test.ExpectedSuccess(t, err)

	call := fg.Blocks[0x0200]
	test.Equate(t, call.HasReturn, true)
	test.Equate(t, call.ReturnAddr, 0x0202)
	test.Equate(t, len(call.Next), 1)
	test.Equate(t, call.Next[0], 0x0206)

	_, err = fg.Reduce()
	test.ExpectedSuccess(t, err)

	// the subroutine coalesced but the call block did not absorb it
	test.Equate(t, len(fg.Blocks), 4)
	test.Equate(t, fg.Blocks[0x0200].HasReturn, true)
	test.Equate(t, len(fg.Blocks[0x0206].Code), 2)
}

// a block whose final instruction becomes a call through absorption inherits
// the call boundary
func TestReduceInheritsBoundary(t *testing.T) {
	// 0x200 LOAD; 0x202 CALL 0x206; 0x204 SYS 0; 0x206 RTS
	fg, err := disassembly.NewFlowGraph(fromOpcodes(0x6001, 0x2206, 0x0000, 0x00ee))
	test.ExpectedSuccess(t, err)

	_, err = fg.Reduce()
	test.ExpectedSuccess(t, err)

	blk := fg.Blocks[0x0200]
	test.Equate(t, len(blk.Code), 2)
	test.Equate(t, blk.HasReturn, true)
	test.Equate(t, blk.ReturnAddr, 0x0204)
}

// the entry block is never absorbed and a self-loop never collapses
func TestReduceGuards(t *testing.T) {
	// 0x200 JUMP 0x200
	fg, err := disassembly.NewFlowGraph(fromOpcodes(0x1200))
	test.ExpectedSuccess(t, err)

	absorbed, err := fg.Reduce()
	test.ExpectedSuccess(t, err)
	test.Equate(t, absorbed, 0)
	test.Equate(t, len(fg.Blocks), 1)

	// 0x200 LOAD; 0x202 JUMP 0x200. the entry survives with a self edge
	fg, err = disassembly.NewFlowGraph(fromOpcodes(0x6001, 0x1200))
	test.ExpectedSuccess(t, err)

	_, err = fg.Reduce()
	test.ExpectedSuccess(t, err)
	test.Equate(t, len(fg.Blocks), 1)

	blk := fg.Blocks[0x0200]
	test.Equate(t, len(blk.Next), 1)
	test.Equate(t, blk.Next[0], 0x0200)
	test.ExpectedSuccess(t, fg.Check())
}

func TestReachability(t *testing.T) {
	// 0x200 JUMP 0x206; 0x202 LOAD; 0x204 LOAD; 0x206 SYS 0
	fg, err := disassembly.NewFlowGraph(fromOpcodes(0x1206, 0x6001, 0x6102, 0x0000))
	test.ExpectedSuccess(t, err)

	_, err = fg.Reduce()
	test.ExpectedSuccess(t, err)
	fg.Reachability()

	test.Equate(t, fg.Blocks[0x0200].Reachable, true)
	test.Equate(t, fg.Blocks[0x0206].Reachable, true)

	// the skipped-over code is flagged, not removed
	blk, ok := fg.Blocks[0x0202]
	test.Equate(t, ok, true)
	test.Equate(t, blk.Reachable, false)
}

func TestReachabilityCycle(t *testing.T) {
	// 0x200 LOAD; 0x202 SKE; 0x204 JUMP 0x200; 0x206 SYS 0
	fg, err := disassembly.NewFlowGraph(fromOpcodes(0x6001, 0x3001, 0x1200, 0x0000))
	test.ExpectedSuccess(t, err)

	fg.Reachability()

	for _, address := range fg.Addresses() {
		test.Equate(t, fg.Blocks[address].Reachable, true)
	}
}

func TestAnalyze(t *testing.T) {
	an := disassembly.Analyze(fromOpcodes(0x6001, 0x6102, 0x0000))
	test.Equate(t, len(an.Faults), 0)
	test.Equate(t, len(an.Graph.Blocks), 1)
	test.Equate(t, an.Graph.Blocks[0x0200].Reachable, true)
}
