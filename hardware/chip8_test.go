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

package hardware_test

import (
	"testing"

	"github.com/hazeltine/gopher8/cartridgeloader"
	"github.com/hazeltine/gopher8/hardware"
	"github.com/hazeltine/gopher8/hardware/cpu"
	"github.com/hazeltine/gopher8/test"
)

func loaderFor(opcodes ...uint16) cartridgeloader.Loader {
	data := make([]byte, 0, len(opcodes)*2)
	for _, opcode := range opcodes {
		data = append(data, uint8(opcode>>8), uint8(opcode))
	}
	return cartridgeloader.Loader{Data: data}
}

func TestRunUntilHalt(t *testing.T) {
	// LOAD V0, 0x05; ADD V0, 0x01; SYS 0
	ch8, err := hardware.NewChip8(loaderFor(0x6005, 0x7001, 0x0000), true)
	test.ExpectedSuccess(t, err)

	err = ch8.Run(0, nil)
	test.ExpectedSuccess(t, err)

	ch8.Borrow(func() {
		test.Equate(t, ch8.CPU.Reg[0], 6)
		test.Equate(t, ch8.CPU.PC, 0x0204)
	})
}

func TestRunContinueCheck(t *testing.T) {
	// an endless counting loop: ADD V0, 0x01; JUMP 0x200
	ch8, err := hardware.NewChip8(loaderFor(0x7001, 0x1200), true)
	test.ExpectedSuccess(t, err)

	instructions := 0
	err = ch8.Run(0, func(_ cpu.StepResult) (bool, error) {
		instructions++
		return instructions < 100, nil
	})
	test.ExpectedSuccess(t, err)
	test.Equate(t, instructions, 100)
}

func TestRunFatalError(t *testing.T) {
	// RTS with an empty call stack
	ch8, err := hardware.NewChip8(loaderFor(0x00ee), true)
	test.ExpectedSuccess(t, err)

	err = ch8.Run(0, nil)
	test.ExpectedFailure(t, err)
}

func TestReset(t *testing.T) {
	ch8, err := hardware.NewChip8(loaderFor(0x6005, 0x0000), true)
	test.ExpectedSuccess(t, err)

	err = ch8.Run(0, nil)
	test.ExpectedSuccess(t, err)

	ch8.Keypad.Press(3)
	ch8.Reset()

	ch8.Borrow(func() {
		test.Equate(t, ch8.CPU.PC, 0x0200)
		test.Equate(t, ch8.CPU.Reg[0], 0)
		test.Equate(t, ch8.Keypad.IsPressed(3), false)
	})
}
