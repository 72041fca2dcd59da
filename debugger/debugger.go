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

package debugger

import (
	"os"

	"github.com/hazeltine/gopher8/cartridgeloader"
	"github.com/hazeltine/gopher8/debugger/terminal"
	"github.com/hazeltine/gopher8/disassembly"
	"github.com/hazeltine/gopher8/hardware"
	"github.com/hazeltine/gopher8/hardware/cpu"
	"github.com/hazeltine/gopher8/logger"
)

// the number of disassembly lines shown either side of the program counter
// by the 'l' command
const disasmWindow = 4

// Debugger is the terminal monitor. It owns the machine for the duration of
// the session.
type Debugger struct {
	ch8  *hardware.Chip8
	dsm  *disassembly.Disassembly
	term *terminal.Terminal

	// instruction rate for the run command
	ips int

	// single reader goroutine. both the monitor prompt and the run command
	// take keys from here
	keys chan byte

	quit bool
}

// NewDebugger is the preferred method of initialisation for the Debugger
// type.
func NewDebugger(cartload cartridgeloader.Loader, ips int) (*Debugger, error) {
	var err error

	dbg := &Debugger{ips: ips}

	dbg.ch8, err = hardware.NewChip8(cartload, false)
	if err != nil {
		return nil, err
	}

	dbg.dsm, err = disassembly.FromCartridge(cartload)
	if err != nil {
		return nil, err
	}

	dbg.term, err = terminal.NewTerminal(os.Stdin, os.Stdout)
	if err != nil {
		return nil, err
	}

	logger.Log("debugger", cartload.ShortName())

	return dbg, nil
}

// Start the monitor loop. Returns when the user quits.
func (dbg *Debugger) Start() error {
	err := dbg.term.CBreakMode()
	if err != nil {
		return err
	}
	defer dbg.term.CanonicalMode()

	dbg.keys = make(chan byte)
	go func() {
		for {
			k, err := dbg.term.ReadKey()
			if err != nil {
				close(dbg.keys)
				return
			}
			dbg.keys <- k
		}
	}()

	dbg.help()

	for !dbg.quit {
		dbg.prompt()

		k, ok := <-dbg.keys
		if !ok {
			return nil
		}
		dbg.term.Print("\n")

		switch k {
		case 's', ' ':
			dbg.step()
		case 'r':
			dbg.run()
		case 'g':
			dbg.ch8.Borrow(func() {
				dbg.term.Print("%s\n", dbg.ch8.CPU)
			})
		case 'd':
			dbg.ch8.Borrow(func() {
				dbg.term.Print("%s", dbg.ch8.Video)
			})
		case 'l':
			dbg.listing()
		case 'z':
			dbg.ch8.Reset()
			dbg.term.Print("machine reset\n")
		case 'q':
			dbg.quit = true
		default:
			dbg.help()
		}
	}

	return nil
}

func (dbg *Debugger) help() {
	dbg.term.Print("s, space step  r run (any key stops)  g registers  d display\n")
	dbg.term.Print("l listing  z reset  q quit\n")
}

func (dbg *Debugger) prompt() {
	dbg.ch8.Borrow(func() {
		ins, err := dbg.ch8.CPU.CurrentInstruction()
		if err != nil {
			dbg.term.Print("[0x%04x  ???] ", dbg.ch8.CPU.PC)
			return
		}
		dbg.term.Print("[0x%04x  %s] ", dbg.ch8.CPU.PC, ins)
	})
}

func (dbg *Debugger) step() {
	var result cpu.StepResult
	var err error

	dbg.ch8.Borrow(func() {
		result, err = dbg.ch8.CPU.Step()
	})

	if err != nil {
		dbg.term.Print("error: %v\n", err)
		return
	}

	switch result {
	case cpu.Loop:
		dbg.term.Print("tight loop\n")
	case cpu.Halt:
		dbg.term.Print("halted\n")
	}
}

// run the machine at the configured instruction rate until a key is pressed
// or the program ends.
func (dbg *Debugger) run() {
	dbg.term.Print("running...\n")

	err := dbg.ch8.Run(dbg.ips, func(result cpu.StepResult) (bool, error) {
		if result == cpu.Loop {
			dbg.term.Print("tight loop\n")
			return false, nil
		}
		select {
		case <-dbg.keys:
			return false, nil
		default:
			return true, nil
		}
	})
	if err != nil {
		dbg.term.Print("error: %v\n", err)
	}
}

// listing prints the disassembly either side of the program counter.
func (dbg *Debugger) listing() {
	var pc uint16
	dbg.ch8.Borrow(func() {
		pc = dbg.ch8.CPU.PC
	})

	for offset := -disasmWindow; offset <= disasmWindow; offset++ {
		address := int(pc) + offset*2
		if address < 0 {
			continue
		}

		e, ok := dbg.dsm.EntryAt(uint16(address))
		if !ok {
			continue
		}

		cursor := " "
		if e.Address == pc {
			cursor = ">"
		}
		dbg.term.Print("%s 0x%04x  %s\n", cursor, e.Address, e)
	}
}
