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

package instructions_test

import (
	"testing"

	"github.com/hazeltine/gopher8/curated"
	"github.com/hazeltine/gopher8/hardware/cpu/instructions"
	"github.com/hazeltine/gopher8/test"
)

func TestDecode(t *testing.T) {
	ins, err := instructions.Decode(0x1234)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ins.Operator == instructions.JUMP, true)
	test.Equate(t, ins.Address, 0x0234)

	ins, err = instructions.Decode(0x00e0)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ins.Operator == instructions.CLR, true)

	ins, err = instructions.Decode(0x00ee)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ins.Operator == instructions.RTS, true)

	// 0nnn opcodes that aren't CLR or RTS are SYS
	ins, err = instructions.Decode(0x0000)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ins.Operator == instructions.SYS, true)
	test.Equate(t, ins.Address, 0x0000)

	ins, err = instructions.Decode(0x8ab4)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ins.Operator == instructions.ADDR, true)
	test.Equate(t, ins.X, 0x0a)
	test.Equate(t, ins.Y, 0x0b)

	ins, err = instructions.Decode(0xd125)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ins.Operator == instructions.DRAW, true)
	test.Equate(t, ins.X, 1)
	test.Equate(t, ins.Y, 2)
	test.Equate(t, ins.N, 5)

	ins, err = instructions.Decode(0xf365)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ins.Operator == instructions.READ, true)
	test.Equate(t, ins.X, 3)
}

func TestDecodeUnknown(t *testing.T) {
	// no secondary selector matches for these opcodes
	for _, opcode := range []uint16{0x5001, 0x5abf, 0x8007, 0x800f, 0x9005, 0xe000, 0xe1ff, 0xf000, 0xf0ff} {
		_, err := instructions.Decode(opcode)
		test.ExpectedFailure(t, err)
		test.Equate(t, curated.Is(err, instructions.UnknownOpcode), true)
	}
}

// every representable opcode must survive the decode/encode round trip
func TestRoundTrip(t *testing.T) {
	for opcode := 0; opcode <= 0xffff; opcode++ {
		ins, err := instructions.Decode(uint16(opcode))
		if err != nil {
			continue
		}
		test.Equate(t, instructions.Encode(ins), uint16(opcode))
	}
}

// the other direction: decoding an encoded instruction must return the
// identical instruction value
func TestRoundTripInstructions(t *testing.T) {
	examples := []instructions.Instruction{
		{Operator: instructions.SYS, Address: 0x123},
		{Operator: instructions.CLR},
		{Operator: instructions.RTS},
		{Operator: instructions.JUMP, Address: 0x200},
		{Operator: instructions.CALL, Address: 0xfff},
		{Operator: instructions.SKE, X: 4, Value: 0xff},
		{Operator: instructions.SKNE, X: 15, Value: 0x01},
		{Operator: instructions.SKRE, X: 1, Y: 2},
		{Operator: instructions.LOAD, X: 0, Value: 0x00},
		{Operator: instructions.ADD, X: 7, Value: 0x80},
		{Operator: instructions.MOVE, X: 3, Y: 4},
		{Operator: instructions.OR, X: 3, Y: 4},
		{Operator: instructions.AND, X: 3, Y: 4},
		{Operator: instructions.XOR, X: 3, Y: 4},
		{Operator: instructions.ADDR, X: 3, Y: 4},
		{Operator: instructions.SUB, X: 3, Y: 4},
		{Operator: instructions.SHR, X: 3, Y: 4},
		{Operator: instructions.SHL, X: 3, Y: 4},
		{Operator: instructions.SKRNE, X: 14, Y: 15},
		{Operator: instructions.LOADI, Address: 0x0},
		{Operator: instructions.JUMPI, Address: 0x456},
		{Operator: instructions.RAND, X: 9, Value: 0x0f},
		{Operator: instructions.DRAW, X: 1, Y: 2, N: 15},
		{Operator: instructions.SKPR, X: 6},
		{Operator: instructions.SKUP, X: 6},
		{Operator: instructions.MOVED, X: 6},
		{Operator: instructions.KEYD, X: 6},
		{Operator: instructions.LOADD, X: 6},
		{Operator: instructions.LOADS, X: 6},
		{Operator: instructions.ADDI, X: 6},
		{Operator: instructions.LDSPR, X: 6},
		{Operator: instructions.BCD, X: 6},
		{Operator: instructions.STOR, X: 6},
		{Operator: instructions.READ, X: 6},
	}

	for _, ins := range examples {
		d, err := instructions.Decode(instructions.Encode(ins))
		test.ExpectedSuccess(t, err)
		test.Equate(t, d == ins, true)
	}
}

func TestString(t *testing.T) {
	ins, _ := instructions.Decode(0x1234)
	test.Equate(t, ins.String(), "JUMP   0x0234")

	ins, _ = instructions.Decode(0x00e0)
	test.Equate(t, ins.String(), "CLR   ")

	ins, _ = instructions.Decode(0x6a0f)
	test.Equate(t, ins.String(), "LOAD   VA, 0x0f")

	ins, _ = instructions.Decode(0x8ab4)
	test.Equate(t, ins.String(), "ADDR   VA, VB")

	ins, _ = instructions.Decode(0xd125)
	test.Equate(t, ins.String(), "DRAW   V1, V2, 5")
}
