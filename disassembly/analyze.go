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
	"io"

	"github.com/bradleyjkemp/memviz"
)

// Analysis is the product of the full flow pass: construction, reduction and
// reachability over a linear disassembly.
type Analysis struct {
	// Graph is nil if construction itself faulted
	Graph *FlowGraph

	// structural invariant violations found during construction or
	// reduction. always empty unless the flow pass has a defect
	Faults []error
}

// Analyze runs the full flow pass. It mutates no engine state; the result is
// purely informational.
func Analyze(dsm *Disassembly) *Analysis {
	an := &Analysis{}

	fg, err := NewFlowGraph(dsm)
	if err != nil {
		an.Faults = append(an.Faults, err)
		return an
	}
	an.Graph = fg

	_, err = fg.Reduce()
	if err != nil {
		an.Faults = append(an.Faults, err)
	}

	fg.Reachability()

	return an
}

// FlowAttr controls what is printed by Analysis.Write().
type FlowAttr struct {
	// include unreachable blocks in the listing
	Unreachable bool
}

// Write the analysis report to io.Writer.
func (an *Analysis) Write(output io.Writer, attr FlowAttr) error {
	for _, flt := range an.Faults {
		_, err := fmt.Fprintf(output, "fault: %v\n", flt)
		if err != nil {
			return err
		}
	}

	if an.Graph == nil {
		return nil
	}

	reachable := 0
	for _, blk := range an.Graph.Blocks {
		if blk.Reachable {
			reachable++
		}
	}
	_, err := fmt.Fprintf(output, "%d blocks (%d reachable)\n", len(an.Graph.Blocks), reachable)
	if err != nil {
		return err
	}

	for _, address := range an.Graph.Addresses() {
		blk := an.Graph.Blocks[address]
		if !blk.Reachable && !attr.Unreachable {
			continue
		}

		_, err = fmt.Fprintf(output, "\n%s%s\n", blk, flowNotes(blk))
		if err != nil {
			return err
		}

		addr := blk.Address
		for _, ins := range blk.Code {
			_, err = fmt.Fprintf(output, "  0x%04x  %s\n", addr, ins)
			if err != nil {
				return err
			}
			addr += 2
		}

		for _, succ := range blk.Next {
			_, err = fmt.Fprintf(output, "  -> 0x%04x\n", succ)
			if err != nil {
				return err
			}
		}
	}

	return nil
}

func flowNotes(blk *Block) string {
	s := ""
	if !blk.Reachable {
		s += " [unreachable]"
	}
	if blk.HasReturn {
		s += fmt.Sprintf(" [returns to 0x%04x]", blk.ReturnAddr)
	}
	if len(blk.Code) == 0 {
		s += " [data]"
	}
	return s
}

// WriteDot renders the graph in graphviz dot form.
func (an *Analysis) WriteDot(output io.Writer) {
	if an.Graph == nil {
		return
	}
	memviz.Map(output, an.Graph)
}
