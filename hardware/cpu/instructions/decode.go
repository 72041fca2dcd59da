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

package instructions

import "github.com/hazeltine/gopher8/curated"

// UnknownOpcode is the error pattern returned when an opcode does not match
// any instruction in the instruction set.
const UnknownOpcode = "instructions: unknown opcode (%#04x)"

// operand extraction. the names reflect the conventional opcode notation:
// the opcode nibbles are written as hex digits with x and y marking the
// register operands, eg. 8xy4

func decodeAddr(opcode uint16) uint16 {
	return opcode & 0x0fff
}

func decodeValue(opcode uint16) uint8 {
	return uint8(opcode & 0x00ff)
}

func decodeX(opcode uint16) uint8 {
	return uint8((opcode & 0x0f00) >> 8)
}

func decodeY(opcode uint16) uint8 {
	return uint8((opcode & 0x00f0) >> 4)
}

// Decode a 16-bit opcode into an Instruction. The top nibble selects the
// operator; the top nibbles 0x0, 0x5, 0x8, 0x9, 0xe and 0xf require a
// secondary dispatch on a low nibble or low byte. Opcodes that match no
// secondary selector return an error matching the UnknownOpcode pattern.
func Decode(opcode uint16) (Instruction, error) {
	switch opcode & 0xf000 {
	case 0x0000:
		switch opcode {
		case 0x00e0:
			return Instruction{Operator: CLR}, nil
		case 0x00ee:
			return Instruction{Operator: RTS}, nil
		}
		return Instruction{Operator: SYS, Address: decodeAddr(opcode)}, nil

	case 0x1000:
		return Instruction{Operator: JUMP, Address: decodeAddr(opcode)}, nil

	case 0x2000:
		return Instruction{Operator: CALL, Address: decodeAddr(opcode)}, nil

	case 0x3000:
		return Instruction{Operator: SKE, X: decodeX(opcode), Value: decodeValue(opcode)}, nil

	case 0x4000:
		return Instruction{Operator: SKNE, X: decodeX(opcode), Value: decodeValue(opcode)}, nil

	case 0x5000:
		if opcode&0x000f == 0x0 {
			return Instruction{Operator: SKRE, X: decodeX(opcode), Y: decodeY(opcode)}, nil
		}

	case 0x6000:
		return Instruction{Operator: LOAD, X: decodeX(opcode), Value: decodeValue(opcode)}, nil

	case 0x7000:
		return Instruction{Operator: ADD, X: decodeX(opcode), Value: decodeValue(opcode)}, nil

	case 0x8000:
		var op Operator
		switch opcode & 0x000f {
		case 0x0:
			op = MOVE
		case 0x1:
			op = OR
		case 0x2:
			op = AND
		case 0x3:
			op = XOR
		case 0x4:
			op = ADDR
		case 0x5:
			op = SUB
		case 0x6:
			op = SHR
		case 0xe:
			op = SHL
		default:
			return Instruction{}, curated.Errorf(UnknownOpcode, opcode)
		}
		return Instruction{Operator: op, X: decodeX(opcode), Y: decodeY(opcode)}, nil

	case 0x9000:
		if opcode&0x000f == 0x0 {
			return Instruction{Operator: SKRNE, X: decodeX(opcode), Y: decodeY(opcode)}, nil
		}

	case 0xa000:
		return Instruction{Operator: LOADI, Address: decodeAddr(opcode)}, nil

	case 0xb000:
		return Instruction{Operator: JUMPI, Address: decodeAddr(opcode)}, nil

	case 0xc000:
		return Instruction{Operator: RAND, X: decodeX(opcode), Value: decodeValue(opcode)}, nil

	case 0xd000:
		return Instruction{Operator: DRAW, X: decodeX(opcode), Y: decodeY(opcode), N: uint8(opcode & 0x000f)}, nil

	case 0xe000:
		switch opcode & 0x00ff {
		case 0x9e:
			return Instruction{Operator: SKPR, X: decodeX(opcode)}, nil
		case 0xa1:
			return Instruction{Operator: SKUP, X: decodeX(opcode)}, nil
		}

	case 0xf000:
		var op Operator
		switch opcode & 0x00ff {
		case 0x07:
			op = MOVED
		case 0x0a:
			op = KEYD
		case 0x15:
			op = LOADD
		case 0x18:
			op = LOADS
		case 0x1e:
			op = ADDI
		case 0x29:
			op = LDSPR
		case 0x33:
			op = BCD
		case 0x55:
			op = STOR
		case 0x65:
			op = READ
		default:
			return Instruction{}, curated.Errorf(UnknownOpcode, opcode)
		}
		return Instruction{Operator: op, X: decodeX(opcode)}, nil
	}

	return Instruction{}, curated.Errorf(UnknownOpcode, opcode)
}

// Encode an Instruction back into its 16-bit opcode. For any opcode that
// decodes successfully, Encode(Decode(opcode)) == opcode.
func Encode(ins Instruction) uint16 {
	defn := ins.Defn()
	opcode := defn.Pattern

	switch defn.Class {
	case Address:
		opcode |= ins.Address & 0x0fff
	case RegisterValue:
		opcode |= uint16(ins.X&0x0f) << 8
		opcode |= uint16(ins.Value)
	case RegisterPair:
		opcode |= uint16(ins.X&0x0f) << 8
		opcode |= uint16(ins.Y&0x0f) << 4
	case Register:
		opcode |= uint16(ins.X&0x0f) << 8
	case Sprite:
		opcode |= uint16(ins.X&0x0f) << 8
		opcode |= uint16(ins.Y&0x0f) << 4
		opcode |= uint16(ins.N & 0x0f)
	}

	return opcode
}
