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

// Package random is the random number source for the RAND instruction.
// Normally the source is seeded from the wall clock but a zero seed can be
// requested, giving a predictable sequence. Useful for testing and for
// comparing two runs of the same ROM.
package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers
var baseSeed int64

func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Random is the random number source attached to the machine.
type Random struct {
	rnd *rand.Rand
}

// NewRandom is the preferred method of initialisation for the Random type.
// With zeroSeed true the sequence of numbers is the same on every run.
func NewRandom(zeroSeed bool) *Random {
	seed := baseSeed
	if zeroSeed {
		seed = 0
	}
	return &Random{
		rnd: rand.New(rand.NewSource(seed)),
	}
}

// Intn returns a random number in the range [0, n], inclusive at both ends.
func (rnd *Random) Intn(n int) int {
	return rnd.rnd.Intn(n + 1)
}
