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

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/hazeltine/gopher8/cartridgeloader"
	"github.com/hazeltine/gopher8/debugger"
	"github.com/hazeltine/gopher8/disassembly"
	"github.com/hazeltine/gopher8/gui/sdlplay"
	"github.com/hazeltine/gopher8/hardware"
	"github.com/hazeltine/gopher8/hardware/cpu"
	"github.com/hazeltine/gopher8/logger"
	"github.com/hazeltine/gopher8/modalflag"
	"github.com/hazeltine/gopher8/performance"
	"github.com/hazeltine/gopher8/statsview"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "PLAY", "DEBUG", "DISASM", "ANALYZE", "PERFORMANCE")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		fallthrough
	case "PLAY":
		err = play(md)

	case "DEBUG":
		err = debug(md)

	case "DISASM":
		err = disasm(md)

	case "ANALYZE":
		err = analyze(md)

	case "PERFORMANCE":
		err = perform(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %v\n", md.String(), err)
		os.Exit(20)
	}
}

// romArg returns the single ROM filename argument expected by every mode.
func romArg(md *modalflag.Modes) (cartridgeloader.Loader, error) {
	if len(md.RemainingArgs()) != 1 {
		return cartridgeloader.Loader{}, fmt.Errorf("%s mode expects a single ROM file", md.Mode())
	}
	return cartridgeloader.NewLoader(md.GetArg(0)), nil
}

func play(md *modalflag.Modes) error {
	md.NewMode()

	ips := md.AddInt("ips", 1000, "target instructions per second")
	scale := md.AddInt("scale", 12, "window pixel scale")
	debugEcho := md.AddBool("debug", false, "echo machine state to the terminal")
	zeroSeed := md.AddBool("zeroseed", false, "predictable random number generation")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	}

	cartload, err := romArg(md)
	if err != nil {
		return err
	}

	ch8, err := hardware.NewChip8(cartload, *zeroSeed)
	if err != nil {
		return err
	}

	logger.Logf("play", "starting %s", cartload.ShortName())

	scr, err := sdlplay.NewSdlPlay(ch8, *scale)
	if err != nil {
		return err
	}
	defer scr.Destroy()

	// the machine runs in its own goroutine; SDL servicing stays on the
	// main goroutine
	quit := make(chan bool)
	machineErr := make(chan error, 1)

	go func() {
		machineErr <- ch8.Run(*ips, func(_ cpu.StepResult) (bool, error) {
			select {
			case <-quit:
				return false, nil
			default:
				return true, nil
			}
		})
	}()

	if *debugEcho {
		go func() {
			tick := time.NewTicker(500 * time.Millisecond)
			defer tick.Stop()
			for {
				select {
				case <-quit:
					return
				case <-tick.C:
					ch8.Borrow(func() {
						fmt.Printf("%s\n", ch8.CPU)
					})
				}
			}
		}()
	}

	machineDone := false

	defer func() {
		close(quit)
		if !machineDone {
			<-machineErr
		}
	}()

	// the window outlives the program it shows. a ROM that halts leaves its
	// final frame visible until the window is closed
	for {
		cont, err := scr.Service()
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}

		if !machineDone {
			select {
			case err := <-machineErr:
				machineDone = true
				if err != nil {
					return err
				}
				logger.Log("play", "machine stopped")
			default:
			}
		}
	}
}

func debug(md *modalflag.Modes) error {
	md.NewMode()

	ips := md.AddInt("ips", 1000, "target instructions per second for the run command")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cartload, err := romArg(md)
	if err != nil {
		return err
	}

	dbg, err := debugger.NewDebugger(cartload, *ips)
	if err != nil {
		return err
	}

	return dbg.Start()
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	bytecode := md.AddBool("bytecode", false, "include opcode words in disassembly")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cartload, err := romArg(md)
	if err != nil {
		return err
	}

	dsm, err := disassembly.FromCartridge(cartload)
	if err != nil {
		return err
	}

	return dsm.Write(md.Output, disassembly.WriteAttr{ByteCode: *bytecode})
}

func analyze(md *modalflag.Modes) error {
	md.NewMode()

	dotFile := md.AddString("dot", "", "write the graph in graphviz dot form to this file")
	unreachable := md.AddBool("unreachable", false, "include unreachable blocks in the listing")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cartload, err := romArg(md)
	if err != nil {
		return err
	}

	dsm, err := disassembly.FromCartridge(cartload)
	if err != nil {
		return err
	}

	an := disassembly.Analyze(dsm)

	err = an.Write(md.Output, disassembly.FlowAttr{Unreachable: *unreachable})
	if err != nil {
		return err
	}

	if *dotFile != "" {
		f, err := os.Create(*dotFile)
		if err != nil {
			return err
		}
		defer f.Close()
		an.WriteDot(f)
	}

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration")
	profile := md.AddBool("profile", false, "produce cpu and memory profiling reports")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cartload, err := romArg(md)
	if err != nil {
		return err
	}

	if statsview.Available() {
		statsview.Launch(md.Output)
	}

	return performance.Check(md.Output, *profile, cartload, *duration)
}
