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

// Package input implements the 16-key keypad of the CHIP-8 machine. The
// keypad is written to by the input collaborator (the SDL window or the
// debugger) and read by the execution engine. Synchronisation is the coarse
// machine lock in the hardware package, not this type.
package input

// NumKeys is the number of keys on the keypad, one per hexadecimal digit.
const NumKeys = 16

// Keypad is the current up/down state of the 16 keys.
type Keypad struct {
	keys [NumKeys]bool
}

// NewKeypad is the preferred method of initialisation for the Keypad type.
func NewKeypad() *Keypad {
	return &Keypad{}
}

// Reset releases every key.
func (kp *Keypad) Reset() {
	kp.keys = [NumKeys]bool{}
}

// Press marks the key as held down. Out of range keys are ignored.
func (kp *Keypad) Press(key int) {
	if key >= 0 && key < NumKeys {
		kp.keys[key] = true
	}
}

// Release marks the key as up. Out of range keys are ignored.
func (kp *Keypad) Release(key int) {
	if key >= 0 && key < NumKeys {
		kp.keys[key] = false
	}
}

// IsPressed returns the state of the key. An out of range key is reported as
// not pressed, never as an error.
func (kp *Keypad) IsPressed(key int) bool {
	if key < 0 || key >= NumKeys {
		return false
	}
	return kp.keys[key]
}

// FirstPressed returns the lowest numbered key that is currently held down.
// The second return value is false if no key is down.
func (kp *Keypad) FirstPressed() (int, bool) {
	for k := 0; k < NumKeys; k++ {
		if kp.keys[k] {
			return k, true
		}
	}
	return 0, false
}
