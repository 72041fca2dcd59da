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

package cpu

import (
	"fmt"
	"strings"

	"github.com/hazeltine/gopher8/curated"
	"github.com/hazeltine/gopher8/hardware/cpu/instructions"
	"github.com/hazeltine/gopher8/random"
)

// error patterns for the cpu package. all of these are fatal to the run.
const (
	// an opcode that did not decode was reached by the program counter. the
	// wrapped error matches instructions.UnknownOpcode
	ExecutionError = "cpu: %v"

	// RTS with nothing on the call stack
	EmptyStack = "cpu: return with empty call stack (pc=0x%04x)"

	// LDSPR for a register value with no font glyph
	SpriteIndex = "cpu: no font glyph for value %d (maximum 15)"

	// any SYS opcode other than SYS 0
	SystemCall = "cpu: system call to 0x%03x"
)

// NumRegisters is the number of general purpose registers.
const NumRegisters = 16

// Flag is the index of the register that doubles as the carry/collision flag.
const Flag = 0x0f

// ResetAddress is the value of the program counter after a reset.
const ResetAddress = 0x0200

// glyphSize is the number of bytes per font glyph in memory
const glyphSize = 5

// Memory is the bus to the 4096 byte address space.
type Memory interface {
	Read8(address uint16) uint8
	Write8(address uint16, data uint8)
	Read16(address uint16) uint16
}

// Video is the bus to the display buffer.
type Video interface {
	Clear()
	Blit(x uint8, y uint8, sprite []uint8) bool
}

// Keypad is the bus to the keypad. The CPU only ever reads the keypad.
type Keypad interface {
	IsPressed(key int) bool
	FirstPressed() (int, bool)
}

// StepResult describes the outcome of a single call to Step().
type StepResult int

// List of valid StepResult values.
const (
	// the program continues
	Running StepResult = iota

	// the program continues and the display buffer has changed
	VideoUpdated

	// a jump or call instruction targets its own address. the program
	// counter has not moved and every subsequent Step() will return Loop
	// again. reported so that the caller can stop rather than spin
	Loop

	// the program has ended gracefully (SYS 0)
	Halt
)

// CPU implements the CHIP-8 execution engine.
type CPU struct {
	// the sixteen 8-bit registers. by convention of specific opcodes,
	// register 15 doubles as the carry/collision flag
	Reg [NumRegisters]uint8

	// the 16-bit address register. only the low 12 bits are meaningful
	Index uint16

	// the program counter. always even. starts at ResetAddress
	PC uint16

	// program counters saved by CALL, popped by RTS. depth is not bounded
	Stack []uint16

	// the delay and sound timers. decremented by TickTimers(), never by
	// Step()
	Delay uint8
	Sound uint8

	mem  Memory
	vid  Video
	keys Keypad
	rnd  *random.Random
}

// NewCPU is the preferred method of initialisation for the CPU type.
func NewCPU(mem Memory, vid Video, keys Keypad, rnd *random.Random) *CPU {
	mc := &CPU{
		mem:  mem,
		vid:  vid,
		keys: keys,
		rnd:  rnd,
	}
	mc.Reset()
	return mc
}

// Reset restores the registers, program counter, call stack and timers to
// their initial snapshot. Memory, display and keypad are owned by their own
// packages and are reset separately.
func (mc *CPU) Reset() {
	mc.Reg = [NumRegisters]uint8{}
	mc.Index = 0
	mc.PC = ResetAddress
	mc.Stack = mc.Stack[:0]
	mc.Delay = 0
	mc.Sound = 0
}

func (mc *CPU) String() string {
	s := strings.Builder{}

	instr := "????"
	if ins, err := mc.CurrentInstruction(); err == nil {
		instr = ins.String()
	}

	s.WriteString(fmt.Sprintf("pc: 0x%04x | %-16s | idx: 0x%03x | stack: %d\n", mc.PC, instr, mc.Index, len(mc.Stack)))
	for i := 0; i < NumRegisters; i++ {
		s.WriteString(fmt.Sprintf("V%X=%02x ", i, mc.Reg[i]))
	}
	s.WriteString(fmt.Sprintf("| delay: %d", mc.Delay))

	return s.String()
}

// CurrentInstruction decodes the instruction at the current program counter
// without executing it.
func (mc *CPU) CurrentInstruction() (instructions.Instruction, error) {
	return instructions.Decode(mc.mem.Read16(mc.PC))
}

// TickTimers decrements the delay and sound timers, saturating at zero. The
// harness calls this at a fixed 60Hz cadence, independently of the
// instruction rate.
func (mc *CPU) TickTimers() {
	if mc.Delay > 0 {
		mc.Delay--
	}
	if mc.Sound > 0 {
		mc.Sound--
	}
}

// the universal skip-instruction convention: the skip family advances the
// program counter by four rather than two when the condition holds
func (mc *CPU) skip(condition bool) {
	if condition {
		mc.PC += 4
	} else {
		mc.PC += 2
	}
}

// Step executes the instruction at the current program counter. Fatal
// conditions (an opcode that does not decode, RTS with an empty call stack, a
// font index with no glyph, a non-zero SYS) are returned as errors and the
// machine should not be stepped again without a Reset().
func (mc *CPU) Step() (StepResult, error) {
	ins, err := mc.CurrentInstruction()
	if err != nil {
		return Halt, curated.Errorf(ExecutionError, err)
	}

	switch ins.Operator {
	case instructions.SYS:
		if ins.Address == 0 {
			return Halt, nil
		}
		return Halt, curated.Errorf(SystemCall, ins.Address)

	case instructions.CLR:
		mc.vid.Clear()
		mc.PC += 2
		return VideoUpdated, nil

	case instructions.RTS:
		if len(mc.Stack) == 0 {
			return Halt, curated.Errorf(EmptyStack, mc.PC)
		}
		mc.PC = mc.Stack[len(mc.Stack)-1]
		mc.Stack = mc.Stack[:len(mc.Stack)-1]

		// execution resumes at the instruction after the original CALL
		mc.PC += 2

	case instructions.JUMP:
		// the high nibble of the program counter is preserved. for a 12-bit
		// address space it is always zero but the historical machine kept it
		target := (mc.PC & 0xf000) | (ins.Address & 0x0fff)
		if target == mc.PC {
			return Loop, nil
		}
		mc.PC = target

	case instructions.CALL:
		if ins.Address == mc.PC {
			return Loop, nil
		}
		mc.Stack = append(mc.Stack, mc.PC)
		mc.PC = ins.Address

	case instructions.JUMPI:
		target := ins.Address + uint16(mc.Reg[0])
		if target == mc.PC {
			return Loop, nil
		}
		mc.PC = target

	case instructions.SKE:
		mc.skip(mc.Reg[ins.X] == ins.Value)

	case instructions.SKNE:
		mc.skip(mc.Reg[ins.X] != ins.Value)

	case instructions.SKRE:
		mc.skip(mc.Reg[ins.X] == mc.Reg[ins.Y])

	case instructions.SKRNE:
		mc.skip(mc.Reg[ins.X] != mc.Reg[ins.Y])

	case instructions.LOAD:
		mc.Reg[ins.X] = ins.Value
		mc.PC += 2

	case instructions.ADD:
		// wraps modulo 256 and records the carry, exactly as the register
		// form does
		sum := uint16(mc.Reg[ins.X]) + uint16(ins.Value)
		mc.Reg[ins.X] = uint8(sum)
		if sum > 0xff {
			mc.Reg[Flag] = 1
		} else {
			mc.Reg[Flag] = 0
		}
		mc.PC += 2

	case instructions.MOVE:
		mc.Reg[ins.X] = mc.Reg[ins.Y]
		mc.PC += 2

	case instructions.OR:
		mc.Reg[ins.X] |= mc.Reg[ins.Y]
		mc.PC += 2

	case instructions.AND:
		mc.Reg[ins.X] &= mc.Reg[ins.Y]
		mc.PC += 2

	case instructions.XOR:
		mc.Reg[ins.X] ^= mc.Reg[ins.Y]
		mc.PC += 2

	case instructions.ADDR:
		sum := uint16(mc.Reg[ins.X]) + uint16(mc.Reg[ins.Y])
		mc.Reg[ins.X] = uint8(sum)
		if sum > 0xff {
			mc.Reg[Flag] = 1
		} else {
			mc.Reg[Flag] = 0
		}
		mc.PC += 2

	case instructions.SUB:
		// wraps silently. unlike ADDR there is no borrow flag
		mc.Reg[ins.X] -= mc.Reg[ins.Y]
		mc.PC += 2

	case instructions.SHR:
		// the flag bit and the result destination are both the second
		// operand register. this deviates from the commonly documented ISA
		// (which uses the first operand for both) and is reproduced on
		// purpose. the flag is taken from the pre-shift value so that a
		// shift targeting VF leaves the result, not the flag
		mc.Reg[Flag] = mc.Reg[ins.Y] & 0x01
		mc.Reg[ins.Y] = mc.Reg[ins.X] >> 1
		mc.PC += 2

	case instructions.SHL:
		mc.Reg[Flag] = (mc.Reg[ins.Y] & 0x80) >> 7
		mc.Reg[ins.Y] = mc.Reg[ins.X] << 1
		mc.PC += 2

	case instructions.LOADI:
		mc.Index = ins.Address
		mc.PC += 2

	case instructions.ADDI:
		mc.Index += uint16(mc.Reg[ins.X])
		mc.PC += 2

	case instructions.STOR:
		// the index register is mutated as a side effect, not restored
		for r := 0; r <= int(ins.X); r++ {
			mc.mem.Write8(mc.Index, mc.Reg[r])
			mc.Index++
		}
		mc.PC += 2

	case instructions.READ:
		for r := 0; r <= int(ins.X); r++ {
			mc.Reg[r] = mc.mem.Read8(mc.Index)
			mc.Index++
		}
		mc.PC += 2

	case instructions.SKPR:
		mc.skip(mc.keys.IsPressed(int(mc.Reg[ins.X])))

	case instructions.SKUP:
		mc.skip(!mc.keys.IsPressed(int(mc.Reg[ins.X])))

	case instructions.KEYD:
		// busy-poll. the program counter does not advance until a key is
		// seen, so the instruction is retried on the next Step()
		if key, ok := mc.keys.FirstPressed(); ok {
			mc.Reg[ins.X] = uint8(key)
			mc.PC += 2
		}

	case instructions.MOVED:
		mc.Reg[ins.X] = mc.Delay
		mc.PC += 2

	case instructions.LOADD:
		mc.Delay = mc.Reg[ins.X]
		mc.PC += 2

	case instructions.LOADS:
		// the sound timer is maintained but nothing renders it. sound
		// emulation is out of scope
		mc.Sound = mc.Reg[ins.X]
		mc.PC += 2

	case instructions.LDSPR:
		if mc.Reg[ins.X] > 15 {
			return Halt, curated.Errorf(SpriteIndex, mc.Reg[ins.X])
		}
		mc.Index = uint16(mc.Reg[ins.X]) * glyphSize
		mc.PC += 2

	case instructions.BCD:
		v := mc.Reg[ins.X]
		mc.mem.Write8(mc.Index, v/100)
		mc.mem.Write8(mc.Index+1, (v%100)/10)
		mc.mem.Write8(mc.Index+2, v%10)
		mc.PC += 2

	case instructions.RAND:
		mc.Reg[ins.X] = uint8(mc.rnd.Intn(int(ins.Value)))
		mc.PC += 2

	case instructions.DRAW:
		sprite := make([]uint8, ins.N)
		for i := range sprite {
			sprite[i] = mc.mem.Read8(mc.Index + uint16(i))
		}
		if mc.vid.Blit(mc.Reg[ins.X], mc.Reg[ins.Y], sprite) {
			mc.Reg[Flag] = 1
		} else {
			mc.Reg[Flag] = 0
		}
		mc.PC += 2
		return VideoUpdated, nil
	}

	return Running, nil
}
