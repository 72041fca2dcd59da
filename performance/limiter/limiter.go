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

// Package limiter provides a rough and ready way of limiting events to a
// fixed rate.
//
// A new RateLimiter can be created with:
//
//	lim := limiter.NewRateLimiter(1000)
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		lim.Wait()
//		stepMachine()
//	}
package limiter

import (
	"fmt"
	"time"
)

// only any good if base performance of the machine is well above the
// required rate, which for instruction-at-a-time emulation it always is.

// RateLimiter will trigger at a fixed number of events per second.
type RateLimiter struct {
	eventsPerSecond int
	secondsPerEvent time.Duration

	tick chan bool
}

// NewRateLimiter is the preferred method of initialisation for the
// RateLimiter type.
func NewRateLimiter(eventsPerSecond int) *RateLimiter {
	lim := &RateLimiter{}
	lim.SetLimit(eventsPerSecond)

	lim.tick = make(chan bool)

	// run ticker concurrently
	go func() {
		adjustedSecondPerEvent := lim.secondsPerEvent
		t := time.Now()
		for {
			lim.tick <- true
			time.Sleep(adjustedSecondPerEvent)
			nt := time.Now()
			adjustedSecondPerEvent -= nt.Sub(t) - lim.secondsPerEvent
			t = nt
		}
	}()

	return lim
}

// SetLimit changes the rate at which the RateLimiter waits.
func (lim *RateLimiter) SetLimit(eventsPerSecond int) {
	lim.eventsPerSecond = eventsPerSecond
	lim.secondsPerEvent, _ = time.ParseDuration(fmt.Sprintf("%fs", float64(1.0)/float64(eventsPerSecond)))
}

// Wait will block until trigger.
func (lim *RateLimiter) Wait() {
	<-lim.tick
}

// HasWaited will return true if time has already elapsed and false if it is
// still yet to happen.
func (lim *RateLimiter) HasWaited() bool {
	select {
	case <-lim.tick:
		return true
	default:
		return false
	}
}
