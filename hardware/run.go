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

package hardware

import (
	"time"

	"github.com/hazeltine/gopher8/hardware/cpu"
	"github.com/hazeltine/gopher8/performance/limiter"
)

// The continueCheck() function runs after every instruction. A full check
// can be expensive; PerformanceBrake is a standard value that can be used to
// filter out expensive code paths within a continueCheck() implementation.
// For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if endCondition {
//			return false, nil
//		}
//	}
//	return true, nil
const PerformanceBrake = 100

// TimerRate is the cadence at which the delay and sound timers are
// decremented, independent of the instruction rate.
const TimerRate = 60

// Run steps the machine at the given instruction rate until the program
// halts, a fatal error occurs, or continueCheck() returns false. An
// instruction rate of zero or less means no limit.
//
// The timers are decremented at TimerRate by a separate goroutine taking the
// machine lock, so timer-dependent program behaviour does not vary with the
// configured instruction rate.
//
// continueCheck() receives the most recent step result. It may be nil, in
// which case the machine runs until Halt. Note that a Loop result does not
// end the run by itself: the machine idles at the limited rate, which is
// what a player wants of a game that has ended on an idle spin. A
// continueCheck() that prefers to finish on Loop can say so.
func (ch8 *Chip8) Run(ips int, continueCheck func(result cpu.StepResult) (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func(_ cpu.StepResult) (bool, error) { return true, nil }
	}

	var lim *limiter.RateLimiter
	if ips > 0 {
		lim = limiter.NewRateLimiter(ips)
	}

	done := make(chan bool)
	defer close(done)

	go func() {
		tick := time.NewTicker(time.Second / TimerRate)
		defer tick.Stop()
		for {
			select {
			case <-done:
				return
			case <-tick.C:
				ch8.crit.Lock()
				ch8.CPU.TickTimers()
				ch8.crit.Unlock()
			}
		}
	}()

	for {
		if lim != nil {
			lim.Wait()
		}

		ch8.crit.Lock()
		result, err := ch8.CPU.Step()
		ch8.crit.Unlock()

		if err != nil {
			return err
		}

		if result == cpu.Halt {
			return nil
		}

		cont, err := continueCheck(result)
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
}
