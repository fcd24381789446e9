// Package program defines the instruction model for the stack language along
// with its source parser.
package program

import (
	"fmt"
)

// Instruction is a single stack operation.
type Instruction struct {
	// Opcode is the operation to perform.
	Opcode Opcode
	// Operand is the value pushed by OpcodePush. It's ignored for all other
	// opcodes.
	Operand uint64
}

// String provides a human-readable representation of an instruction.
func (i Instruction) String() string {
	if i.Opcode == OpcodePush {
		return fmt.Sprintf("%s %d", i.Opcode, i.Operand)
	}
	return i.Opcode.String()
}

// Program is a sequence of instructions executed in order.
type Program []Instruction

// Push creates a push instruction.
func Push(value uint64) Instruction {
	return Instruction{Opcode: OpcodePush, Operand: value}
}

// Add creates an add instruction.
func Add() Instruction {
	return Instruction{Opcode: OpcodeAdd}
}

// Minus creates a minus instruction.
func Minus() Instruction {
	return Instruction{Opcode: OpcodeMinus}
}

// Dump creates a dump instruction.
func Dump() Instruction {
	return Instruction{Opcode: OpcodeDump}
}

// Example is a small demonstration program that prints 69 and 420.
var Example = Program{
	Push(34),
	Push(35),
	Add(),
	Dump(),
	Push(430),
	Push(10),
	Minus(),
	Dump(),
}
