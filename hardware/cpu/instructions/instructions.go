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

import "fmt"

// Operator identifies each instruction in the CHIP-8 instruction set.
type Operator int

// List of operators in the CHIP-8 instruction set.
const (
	SYS   Operator = iota // 0nnn (0x0000 is the graceful halt)
	CLR                   // 00E0
	RTS                   // 00EE
	JUMP                  // 1nnn
	CALL                  // 2nnn
	SKE                   // 3xnn
	SKNE                  // 4xnn
	SKRE                  // 5xy0
	LOAD                  // 6xnn
	ADD                   // 7xnn
	MOVE                  // 8xy0
	OR                    // 8xy1
	AND                   // 8xy2
	XOR                   // 8xy3
	ADDR                  // 8xy4
	SUB                   // 8xy5
	SHR                   // 8xy6
	SHL                   // 8xyE
	SKRNE                 // 9xy0
	LOADI                 // Annn
	JUMPI                 // Bnnn
	RAND                  // Cxnn
	DRAW                  // Dxyn
	SKPR                  // Ex9E
	SKUP                  // ExA1
	MOVED                 // Fx07
	KEYD                  // Fx0A
	LOADD                 // Fx15
	LOADS                 // Fx18
	ADDI                  // Fx1E
	LDSPR                 // Fx29
	BCD                   // Fx33
	STOR                  // Fx55
	READ                  // Fx65
)

// Class describes the operand payload carried by an instruction.
type Class int

// List of operand classes.
const (
	// no operands. CLR and RTS
	None Class = iota

	// a 12-bit address. SYS, JUMP, CALL, LOADI and JUMPI
	Address

	// a register index and an 8-bit immediate value
	RegisterValue

	// two register indices
	RegisterPair

	// a single register index
	Register

	// two register indices and a 4-bit row count. DRAW only
	Sprite
)

// Effect categorises an instruction by its effect on the program counter.
// The disassembly package leans on this category when computing static
// successor addresses.
type Effect int

// List of effect categories.
const (
	// pc advances to the next instruction
	Normal Effect = iota

	// pc advances by 2 or by 4 depending on a runtime comparison
	Skip

	// pc becomes the 12-bit address operand. JUMP only
	Flow

	// pc becomes the 12-bit address operand and the current pc is pushed
	// onto the call stack. CALL only
	Subroutine

	// pc is popped from the call stack. RTS only
	Return

	// pc becomes the 12-bit address operand offset by the value of register
	// zero; the target cannot be known statically. JUMPI only
	Indirect

	// execution ends, gracefully for an address operand of zero and fatally
	// otherwise. SYS only
	Halt
)

// Definition defines each instruction in the instruction set; one per
// operator.
type Definition struct {
	Operator Operator
	Mnemonic string
	Class    Class
	Effect   Effect

	// the bit pattern of the instruction with all operand bits at zero.
	// Encode() builds on this value and Decode() dispatches to it
	Pattern uint16
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	return fmt.Sprintf("%s [pattern=%04x class=%d effect=%d]", defn.Mnemonic, defn.Pattern, defn.Class, defn.Effect)
}

// Definitions is the table of instruction definitions, indexed by Operator.
var Definitions = []Definition{
	SYS:   {Operator: SYS, Mnemonic: "SYS", Class: Address, Effect: Halt, Pattern: 0x0000},
	CLR:   {Operator: CLR, Mnemonic: "CLR", Class: None, Effect: Normal, Pattern: 0x00e0},
	RTS:   {Operator: RTS, Mnemonic: "RTS", Class: None, Effect: Return, Pattern: 0x00ee},
	JUMP:  {Operator: JUMP, Mnemonic: "JUMP", Class: Address, Effect: Flow, Pattern: 0x1000},
	CALL:  {Operator: CALL, Mnemonic: "CALL", Class: Address, Effect: Subroutine, Pattern: 0x2000},
	SKE:   {Operator: SKE, Mnemonic: "SKE", Class: RegisterValue, Effect: Skip, Pattern: 0x3000},
	SKNE:  {Operator: SKNE, Mnemonic: "SKNE", Class: RegisterValue, Effect: Skip, Pattern: 0x4000},
	SKRE:  {Operator: SKRE, Mnemonic: "SKRE", Class: RegisterPair, Effect: Skip, Pattern: 0x5000},
	LOAD:  {Operator: LOAD, Mnemonic: "LOAD", Class: RegisterValue, Effect: Normal, Pattern: 0x6000},
	ADD:   {Operator: ADD, Mnemonic: "ADD", Class: RegisterValue, Effect: Normal, Pattern: 0x7000},
	MOVE:  {Operator: MOVE, Mnemonic: "MOVE", Class: RegisterPair, Effect: Normal, Pattern: 0x8000},
	OR:    {Operator: OR, Mnemonic: "OR", Class: RegisterPair, Effect: Normal, Pattern: 0x8001},
	AND:   {Operator: AND, Mnemonic: "AND", Class: RegisterPair, Effect: Normal, Pattern: 0x8002},
	XOR:   {Operator: XOR, Mnemonic: "XOR", Class: RegisterPair, Effect: Normal, Pattern: 0x8003},
	ADDR:  {Operator: ADDR, Mnemonic: "ADDR", Class: RegisterPair, Effect: Normal, Pattern: 0x8004},
	SUB:   {Operator: SUB, Mnemonic: "SUB", Class: RegisterPair, Effect: Normal, Pattern: 0x8005},
	SHR:   {Operator: SHR, Mnemonic: "SHR", Class: RegisterPair, Effect: Normal, Pattern: 0x8006},
	SHL:   {Operator: SHL, Mnemonic: "SHL", Class: RegisterPair, Effect: Normal, Pattern: 0x800e},
	SKRNE: {Operator: SKRNE, Mnemonic: "SKRNE", Class: RegisterPair, Effect: Skip, Pattern: 0x9000},
	LOADI: {Operator: LOADI, Mnemonic: "LOADI", Class: Address, Effect: Normal, Pattern: 0xa000},
	JUMPI: {Operator: JUMPI, Mnemonic: "JUMPI", Class: Address, Effect: Indirect, Pattern: 0xb000},
	RAND:  {Operator: RAND, Mnemonic: "RAND", Class: RegisterValue, Effect: Normal, Pattern: 0xc000},
	DRAW:  {Operator: DRAW, Mnemonic: "DRAW", Class: Sprite, Effect: Normal, Pattern: 0xd000},
	SKPR:  {Operator: SKPR, Mnemonic: "SKPR", Class: Register, Effect: Skip, Pattern: 0xe09e},
	SKUP:  {Operator: SKUP, Mnemonic: "SKUP", Class: Register, Effect: Skip, Pattern: 0xe0a1},
	MOVED: {Operator: MOVED, Mnemonic: "MOVED", Class: Register, Effect: Normal, Pattern: 0xf007},
	KEYD:  {Operator: KEYD, Mnemonic: "KEYD", Class: Register, Effect: Normal, Pattern: 0xf00a},
	LOADD: {Operator: LOADD, Mnemonic: "LOADD", Class: Register, Effect: Normal, Pattern: 0xf015},
	LOADS: {Operator: LOADS, Mnemonic: "LOADS", Class: Register, Effect: Normal, Pattern: 0xf018},
	ADDI:  {Operator: ADDI, Mnemonic: "ADDI", Class: Register, Effect: Normal, Pattern: 0xf01e},
	LDSPR: {Operator: LDSPR, Mnemonic: "LDSPR", Class: Register, Effect: Normal, Pattern: 0xf029},
	BCD:   {Operator: BCD, Mnemonic: "BCD", Class: Register, Effect: Normal, Pattern: 0xf033},
	STOR:  {Operator: STOR, Mnemonic: "STOR", Class: Register, Effect: Normal, Pattern: 0xf055},
	READ:  {Operator: READ, Mnemonic: "READ", Class: Register, Effect: Normal, Pattern: 0xf065},
}

// Instruction is a single decoded CHIP-8 instruction. Instructions are
// immutable values; the fields that are meaningful depend on the operand
// Class of the operator's Definition. Unused fields are always zero, which
// makes Instruction values directly comparable.
type Instruction struct {
	Operator Operator

	// register indices (0 to 15). X is the first operand register, Y the
	// second
	X uint8
	Y uint8

	// an 8-bit immediate value
	Value uint8

	// a 12-bit address
	Address uint16

	// a 4-bit row count. DRAW only
	N uint8
}

// Defn returns the Definition for the instruction's operator.
func (ins Instruction) Defn() Definition {
	return Definitions[ins.Operator]
}

// String returns the instruction in a fixed-width mnemonic/operand form.
func (ins Instruction) String() string {
	defn := ins.Defn()
	switch defn.Class {
	case None:
		return fmt.Sprintf("%-6s", defn.Mnemonic)
	case Address:
		return fmt.Sprintf("%-6s 0x%04x", defn.Mnemonic, ins.Address)
	case RegisterValue:
		return fmt.Sprintf("%-6s V%X, 0x%02x", defn.Mnemonic, ins.X, ins.Value)
	case RegisterPair:
		return fmt.Sprintf("%-6s V%X, V%X", defn.Mnemonic, ins.X, ins.Y)
	case Register:
		return fmt.Sprintf("%-6s V%X", defn.Mnemonic, ins.X)
	case Sprite:
		return fmt.Sprintf("%-6s V%X, V%X, %d", defn.Mnemonic, ins.X, ins.Y, ins.N)
	}
	return fmt.Sprintf("%-6s", defn.Mnemonic)
}
