package program

import (
	"fmt"

	"github.com/pkg/errors"
)

// UnderflowError indicates that an instruction requires more stack values than
// are available.
type UnderflowError struct {
	// Index is the index of the failing instruction within the program.
	Index int
	// Instruction is the failing instruction.
	Instruction Instruction
	// Depth is the stack depth at the failing instruction.
	Depth int
}

// Error implements error.Error.
func (e *UnderflowError) Error() string {
	return fmt.Sprintf(
		"stack underflow at instruction %d (%s): requires %d value(s), have %d",
		e.Index, e.Instruction, e.Instruction.Opcode.Inputs(), e.Depth,
	)
}

// Validate statically verifies that p never underflows the stack. Since the
// language has no control flow, the stack depth at each instruction is known
// ahead of time.
func Validate(p Program) error {
	var depth int
	for i, instruction := range p {
		if depth < instruction.Opcode.Inputs() {
			return &UnderflowError{Index: i, Instruction: instruction, Depth: depth}
		}
		switch instruction.Opcode {
		case OpcodePush:
			depth++
		case OpcodeAdd, OpcodeMinus, OpcodeDump:
			depth--
		default:
			return errors.Errorf("unknown opcode at instruction %d: %d", i, instruction.Opcode)
		}
	}
	return nil
}
