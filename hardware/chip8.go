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
	"sync"

	"github.com/hazeltine/gopher8/cartridgeloader"
	"github.com/hazeltine/gopher8/hardware/cpu"
	"github.com/hazeltine/gopher8/hardware/input"
	"github.com/hazeltine/gopher8/hardware/memory"
	"github.com/hazeltine/gopher8/hardware/video"
	"github.com/hazeltine/gopher8/random"
)

// Chip8 is the root of the emulated machine.
type Chip8 struct {
	CPU    *cpu.CPU
	Mem    *memory.Memory
	Video  *video.Video
	Keypad *input.Keypad

	// critical sectioning. see Borrow()
	crit sync.Mutex
}

// NewChip8 creates the machine and everything associated with it. It is used
// for all aspects of emulation: debugging sessions, regular play and
// performance measurement. The ROM is loaded if the loader has not already
// done so.
func NewChip8(cartload cartridgeloader.Loader, zeroSeed bool) (*Chip8, error) {
	err := cartload.Load()
	if err != nil {
		return nil, err
	}

	ch8 := &Chip8{}

	ch8.Mem, err = memory.NewMemory(cartload.Data)
	if err != nil {
		return nil, err
	}

	ch8.Video = video.NewVideo()
	ch8.Keypad = input.NewKeypad()
	ch8.CPU = cpu.NewCPU(ch8.Mem, ch8.Video, ch8.Keypad, random.NewRandom(zeroSeed))

	return ch8, nil
}

// Reset restores the machine to its initial snapshot: registers, pc, call
// stack and timers cleared; font and program reloaded; display and keypad
// cleared.
func (ch8 *Chip8) Reset() {
	ch8.crit.Lock()
	defer ch8.crit.Unlock()

	ch8.Mem.Reset()
	ch8.Video.Reset()
	ch8.Keypad.Reset()
	ch8.CPU.Reset()
}

// Borrow the machine for the duration of the supplied function, which will
// run with the machine lock held. The borrower sees a fully consistent
// snapshot taken between discrete Step() calls.
func (ch8 *Chip8) Borrow(f func()) {
	ch8.crit.Lock()
	defer ch8.crit.Unlock()
	f()
}
