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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/hazeltine/gopher8/cartridgeloader"
	"github.com/hazeltine/gopher8/curated"
	"github.com/hazeltine/gopher8/hardware"
	"github.com/hazeltine/gopher8/hardware/cpu"
)

// Check runs the emulation as fast as possible for the period of time given
// by runTime (parsed by time.ParseDuration) and writes the achieved
// instruction rate to output. ROMs that halt or settle into an idle loop
// before time is up end the measurement early.
func Check(output io.Writer, profile bool, cartload cartridgeloader.Loader, runTime string) error {
	duration, err := time.ParseDuration(runTime)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	ch8, err := hardware.NewChip8(cartload, false)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	instructions := 0
	startTime := time.Now()

	err = cpuProfile(profile, "cpu.profile", func() error {
		timesUp := make(chan bool, 1)
		time.AfterFunc(duration, func() {
			timesUp <- true
		})

		// checking the clock through a channel select is cheap enough to do
		// on every instruction; no need for the PerformanceBrake filter
		return ch8.Run(0, func(result cpu.StepResult) (bool, error) {
			instructions++
			if result == cpu.Loop {
				return false, nil
			}
			select {
			case <-timesUp:
				return false, nil
			default:
				return true, nil
			}
		})
	})
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	elapsed := time.Since(startTime).Seconds()
	fmt.Fprintf(output, "%.0f instructions per second (%d instructions in %.2f seconds)\n",
		float64(instructions)/elapsed, instructions, elapsed)

	err = memProfile(profile, "mem.profile")
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	return nil
}
